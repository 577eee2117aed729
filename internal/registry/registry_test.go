package registry

import (
	"errors"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"testing"

	"github.com/mpyw/singletonsafe/internal/typespec"
)

func newNamed(path, name string) *types.Named {
	pkg := types.NewPackage(path, filepath.Base(path))
	obj := types.NewTypeName(token.NoPos, pkg, name, nil)
	return types.NewNamed(obj, types.NewStruct(nil, nil), nil)
}

func TestParseLifetime(t *testing.T) {
	tests := []struct {
		input   string
		want    Lifetime
		wantErr bool
	}{
		{input: "singleton", want: Shared},
		{input: " Singleton ", want: Shared},
		{input: "scoped", want: NonShared},
		{input: "TRANSIENT", want: NonShared},
		{input: "prototype", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLifetime(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownLifetime) {
					t.Fatalf("ParseLifetime(%q) error = %v, want ErrUnknownLifetime", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLifetime(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLifetime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTableLifetimeOf(t *testing.T) {
	service := newNamed("example.com/app", "Service")
	scope := newNamed("example.com/app", "RequestScope")
	dep := newNamed("example.com/dep", "Client")
	unknown := newNamed("example.com/app", "Unknown")

	table := New()
	table.RegisterSpecs(typespec.MustParse("example.com/app.Service"), Shared)
	table.RegisterObject(scope.Obj(), NonShared)
	table.SetFallback(func(obj *types.TypeName) (Lifetime, bool) {
		if obj == dep.Obj() {
			return Shared, true
		}
		return Unregistered, false
	})

	tests := []struct {
		name string
		typ  types.Type
		want Lifetime
	}{
		{name: "spec", typ: service, want: Shared},
		{name: "spec through pointer", typ: types.NewPointer(service), want: Shared},
		{name: "object", typ: scope, want: NonShared},
		{name: "fallback", typ: dep, want: Shared},
		{name: "unregistered", typ: unknown, want: Unregistered},
		{name: "unnamed", typ: types.NewSlice(service), want: Unregistered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.LifetimeOf(tt.typ); got != tt.want {
				t.Errorf("LifetimeOf(%s) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}

	if got := table.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestTableLastRegistrationWins(t *testing.T) {
	service := newNamed("example.com/app", "Service")

	table := New()
	table.RegisterSpecs(typespec.MustParse("example.com/app.Service"), Shared)
	table.RegisterSpecs(typespec.MustParse("example.com/app.Service"), NonShared)

	if got := table.LifetimeOf(service); got != NonShared {
		t.Errorf("LifetimeOf() = %v, want %v", got, NonShared)
	}
}

func TestNilTable(t *testing.T) {
	var table *Table
	if got := table.LifetimeOf(types.Typ[types.Int]); got != Unregistered {
		t.Errorf("nil table LifetimeOf() = %v, want %v", got, Unregistered)
	}
	if table.Len() != 0 {
		t.Error("nil table Len() should be 0")
	}
}

func TestDecode(t *testing.T) {
	want := []Registration{
		{Spec: typespec.Spec{PkgPath: "example.com/app", TypeName: "Service"}, Lifetime: Shared},
		{Spec: typespec.Spec{PkgPath: "example.com/app", TypeName: "RequestScope"}, Lifetime: NonShared},
	}

	inputs := map[Format]string{
		YAML: `
registrations:
  - type: example.com/app.Service
    lifetime: singleton
  - type: example.com/app.RequestScope
    lifetime: scoped
`,
		TOML: `
[[registrations]]
type = "example.com/app.Service"
lifetime = "singleton"

[[registrations]]
type = "example.com/app.RequestScope"
lifetime = "scoped"
`,
	}

	for format, input := range inputs {
		t.Run(string(format), func(t *testing.T) {
			got, err := Decode([]byte(input), format)
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("Decode() returned %d registrations, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("Decode()[%d] = %+v, want %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		wantErr error
	}{
		{
			name:    "unknown lifetime",
			format:  YAML,
			input:   "registrations:\n  - type: example.com/app.Service\n    lifetime: prototype\n",
			wantErr: ErrUnknownLifetime,
		},
		{
			name:   "bad type spec",
			format: YAML,
			input:  "registrations:\n  - type: Service\n    lifetime: singleton\n",
		},
		{
			name:   "unknown yaml field",
			format: YAML,
			input:  "registrations:\n  - type: example.com/app.Service\n    scope: singleton\n",
		},
		{
			name:   "unknown toml key",
			format: TOML,
			input:  "[[registrations]]\ntype = \"example.com/app.Service\"\nscope = \"singleton\"\n",
		},
		{
			name:    "unsupported format",
			format:  Format("json"),
			input:   "{}",
			wantErr: ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input), tt.format)
			if err == nil {
				t.Fatal("Decode() succeeded, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeEmptyYAML(t *testing.T) {
	got, err := Decode(nil, YAML)
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Decode() returned %d registrations, want 0", len(got))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "registrations.yml")
	content := "registrations:\n  - type: example.com/app.Service\n    lifetime: transient\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	regs, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if len(regs) != 1 || regs[0].Lifetime != NonShared {
		t.Errorf("Load() = %+v, want one non-shared registration", regs)
	}

	if _, err := Load(filepath.Join(dir, "registrations.json")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load(.json) error = %v, want ErrUnsupportedFormat", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) succeeded, want error")
	}
}
