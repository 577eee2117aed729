package mutation

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"

	internalssa "github.com/mpyw/singletonsafe/internal/ssa"
)

const src = `package p

type Config struct {
	timeout int
}

type Service struct {
	count   int
	cfg     Config
	arr     [4]int
	items   []int
	name    string
	cache   map[string]int
	byValue int
	late    int
	ptr     *Config
}

func NewService(name string) *Service {
	s := &Service{}
	s.name = name
	s.cache = make(map[string]int)
	return s
}

func (s *Service) Inc()           { s.count++ }
func (s *Service) SetTimeout(d int) { s.cfg.timeout = d }
func (s *Service) SetSlot(i, v int) { s.arr[i] = v }
func (s *Service) SetItem(i, v int) { s.items[i] = v }
func (s *Service) Put(k string, v int) { s.cache[k] = v }
func (s Service) Copy()          { s.byValue = 1 }
func (s *Service) Later() {
	go func() { s.late = 1 }()
}
func (s *Service) Tune(d int) { s.ptr.timeout = d }
func (s *Service) Clone() *Service {
	c := &Service{}
	c.count = s.count
	return c
}
`

func buildMethods(t *testing.T) (*types.Package, []*ssa.Function) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", src, 0)
	if err != nil {
		t.Fatal(err)
	}

	pkg := types.NewPackage("p", "p")
	ssaPkg, _, err := ssautil.BuildPackage(&types.Config{}, fset, pkg, []*ast.File{file}, ssa.SanityCheckFunctions)
	if err != nil {
		t.Fatal(err)
	}

	var methods []*ssa.Function
	for fn := range ssautil.AllFunctions(ssaPkg.Prog) {
		if fn.Pkg != ssaPkg || fn.Synthetic != "" {
			continue
		}
		if internalssa.Receiver(fn) != nil {
			methods = append(methods, fn)
		}
	}

	return pkg, methods
}

func field(t *testing.T, pkg *types.Package, typeName, fieldName string) *types.Var {
	t.Helper()

	st := pkg.Scope().Lookup(typeName).Type().Underlying().(*types.Struct)
	for f := range st.Fields() {
		if f.Name() == fieldName {
			return f
		}
	}

	t.Fatalf("field %s.%s not found", typeName, fieldName)
	return nil
}

func TestScanFuncs(t *testing.T) {
	pkg, methods := buildMethods(t)
	set := ScanFuncs(methods)

	tests := []struct {
		typeName string
		field    string
		want     bool
	}{
		{typeName: "Service", field: "count", want: true},
		{typeName: "Service", field: "cfg", want: true},
		{typeName: "Config", field: "timeout", want: true},
		{typeName: "Service", field: "arr", want: true},
		{typeName: "Service", field: "late", want: true},
		{typeName: "Service", field: "items", want: false},
		{typeName: "Service", field: "name", want: false},
		{typeName: "Service", field: "cache", want: false},
		{typeName: "Service", field: "byValue", want: false},
		{typeName: "Service", field: "ptr", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.typeName+"."+tt.field, func(t *testing.T) {
			if got := set.Contains(field(t, pkg, tt.typeName, tt.field)); got != tt.want {
				t.Errorf("Contains(%s.%s) = %v, want %v", tt.typeName, tt.field, got, tt.want)
			}
		})
	}

	if got := len(set.Fields()); got != set.Len() {
		t.Errorf("Fields() returned %d fields, Len() = %d", got, set.Len())
	}
}

func TestNilSet(t *testing.T) {
	var set *Set
	if set.Contains(nil) || set.Len() != 0 || set.Fields() != nil {
		t.Error("nil set should be empty")
	}
}
