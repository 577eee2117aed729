package singletonsafe

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/types"
	"log/slog"
	"os"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/singletonsafe/internal/directives"
	"github.com/mpyw/singletonsafe/internal/directives/lifetime"
	"github.com/mpyw/singletonsafe/internal/directives/trust"
	"github.com/mpyw/singletonsafe/internal/members"
	"github.com/mpyw/singletonsafe/internal/mutation"
	"github.com/mpyw/singletonsafe/internal/registry"
	"github.com/mpyw/singletonsafe/internal/safety"
	internalssa "github.com/mpyw/singletonsafe/internal/ssa"
	"github.com/mpyw/singletonsafe/internal/typespec"
)

// Flags for the analyzer.
var (
	singletons     string
	transients     string
	registrations  string
	immutableTypes string

	reportIncomplete bool
	trace            bool
)

func init() {
	Analyzer.Flags.StringVar(&singletons, "singletons", "",
		"comma-separated list of types registered as singletons (e.g., github.com/example/app.Service)")
	Analyzer.Flags.StringVar(&transients, "transients", "",
		"comma-separated list of types registered as transient or scoped")
	Analyzer.Flags.StringVar(&registrations, "registrations", "",
		"path to a YAML or TOML registration snapshot")
	Analyzer.Flags.StringVar(&immutableTypes, "immutable-types", "",
		"comma-separated list of additional types to treat as immutable (e.g., github.com/example/immutable.List)")

	Analyzer.Flags.BoolVar(&reportIncomplete, "report-incomplete", true,
		"report singletons whose check was inconclusive because of cyclic type dependencies")
	Analyzer.Flags.BoolVar(&trace, "trace", false, "log type evaluation to stderr")
}

// Analyzer is the main analyzer for singletonsafe.
var Analyzer = &analysis.Analyzer{
	Name:      "singletonsafe",
	Doc:       "checks that types registered as singletons do not expose unsynchronized mutable state",
	Requires:  []*analysis.Analyzer{inspect.Analyzer, internalssa.BuildSSAAnalyzer},
	Run:       run,
	Flags:     flag.FlagSet{},
	FactTypes: []analysis.Fact{new(trustedFact), new(mutatedFact), new(lifetimeFact)},
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

// trustedFact marks a field or method carrying //singletonsafe:trusted.
type trustedFact struct{}

func (*trustedFact) AFact()         {}
func (*trustedFact) String() string { return "trusted" }

// mutatedFact marks a field stored to after construction.
type mutatedFact struct{}

func (*mutatedFact) AFact()         {}
func (*mutatedFact) String() string { return "mutated" }

// lifetimeFact records a lifetime directive on a type.
type lifetimeFact struct {
	Lifetime registry.Lifetime
}

func (*lifetimeFact) AFact()           {}
func (f *lifetimeFact) String() string { return "lifetime(" + f.Lifetime.String() + ")" }

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Collect directive and SSA knowledge, and share it with importers
	trusted := trust.Build(pass.TypesInfo, insp)
	entries := lifetime.Build(pass.TypesInfo, insp)
	mutated := mutation.Scan(internalssa.Build(pass))
	exportFacts(pass, trusted, entries, mutated)

	// Report directives that are neither lifetimes nor trust markers
	reportUnknownDirectives(pass, skipFiles)

	table, err := buildRegistry(pass, entries)
	if err != nil {
		return nil, err
	}

	known, err := typespec.ParseList(immutableTypes)
	if err != nil {
		return nil, fmt.Errorf("parse -immutable-types: %w", err)
	}

	checker, err := safety.New(safety.Config{
		Provider: members.New(members.Options{
			Trusted: func(obj types.Object) bool {
				return trusted.Contains(obj) || importFact(pass, obj, new(trustedFact))
			},
			Mutated: func(field *types.Var) bool {
				return mutated.Contains(field) || importFact(pass, field.Origin(), new(mutatedFact))
			},
		}),
		Registrations:        table,
		KnownNotMutableTypes: append(safety.DefaultKnownNotMutableTypes(), known...),
		Logger:               newLogger(pass),
	})
	if err != nil {
		return nil, err
	}

	checkSingletons(pass, checker, table, skipFiles)

	return nil, nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		// Always skip generated files
		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// exportFacts publishes what this package knows about its own objects.
func exportFacts(pass *analysis.Pass, trusted trust.Set, entries []lifetime.Entry, mutated *mutation.Set) {
	for obj := range trusted {
		if obj.Pkg() == pass.Pkg {
			pass.ExportObjectFact(obj, new(trustedFact))
		}
	}

	for _, entry := range entries {
		pass.ExportObjectFact(entry.Obj, &lifetimeFact{Lifetime: entry.Lifetime})
	}

	for _, field := range mutated.Fields() {
		if field.Pkg() == pass.Pkg {
			pass.ExportObjectFact(field, new(mutatedFact))
		}
	}
}

// importFact looks up a fact on an object declared in another package.
func importFact(pass *analysis.Pass, obj types.Object, fact analysis.Fact) bool {
	if obj == nil || obj.Pkg() == nil || obj.Pkg() == pass.Pkg {
		return false
	}

	return pass.ImportObjectFact(obj, fact)
}

// buildRegistry creates the registration table from flags, the registration
// file and lifetime directives.
func buildRegistry(pass *analysis.Pass, entries []lifetime.Entry) (*registry.Table, error) {
	table := registry.New()

	for _, entry := range entries {
		table.RegisterObject(entry.Obj, entry.Lifetime)
	}

	if registrations != "" {
		regs, err := registry.Load(registrations)
		if err != nil {
			return nil, fmt.Errorf("load registrations: %w", err)
		}
		table.Register(regs...)
	}

	// Flags are registered last so they override the file
	for _, opt := range []struct {
		name     string
		value    string
		lifetime registry.Lifetime
	}{
		{"singletons", singletons, registry.Shared},
		{"transients", transients, registry.NonShared},
	} {
		specs, err := typespec.ParseList(opt.value)
		if err != nil {
			return nil, fmt.Errorf("parse -%s: %w", opt.name, err)
		}
		table.RegisterSpecs(specs, opt.lifetime)
	}

	table.SetFallback(func(obj *types.TypeName) (registry.Lifetime, bool) {
		var fact lifetimeFact
		if importFact(pass, obj, &fact) {
			return fact.Lifetime, true
		}
		return registry.Unregistered, false
	})

	return table, nil
}

// reportUnknownDirectives reports singletonsafe directives with an unknown name.
func reportUnknownDirectives(pass *analysis.Pass, skipFiles map[string]bool) {
	for _, file := range pass.Files {
		if skipFiles[pass.Fset.Position(file.Pos()).Filename] {
			continue
		}

		for _, d := range directives.Scan(pass.Fset, file) {
			if d.Name == trust.Name || lifetime.IsLifetime(d.Name) {
				continue
			}
			pass.Reportf(d.Pos, "unknown singletonsafe directive %q", d.Name)
		}
	}
}

// newLogger returns a debug logger when -trace is set.
func newLogger(pass *analysis.Pass) *slog.Logger {
	if !trace {
		return nil
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})

	return slog.New(handler).With(slog.String("package", pass.Pkg.Path()))
}
