package directives

import (
	"go/ast"
	"go/token"
	"strings"
)

// Prefix starts every singletonsafe directive.
const Prefix = "singletonsafe:"

// Directive is a parsed comment directive.
type Directive struct {
	Pos  token.Pos
	Name string // e.g. "singleton", "trusted"
	Args string // arguments before any "- reason"
}

// Parse parses a directive comment and returns its name and arguments.
// Returns false if the comment is not a singletonsafe directive.
//
// Supported formats:
//   - //singletonsafe:trusted                 -> name "trusted"
//   - //singletonsafe:trusted - reason        -> name "trusted", reason dropped
//   - //singletonsafe:singleton // note       -> name "singleton", note dropped
func Parse(text string) (name, args string, ok bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, Prefix) {
		return "", "", false
	}

	rest := strings.TrimPrefix(text, Prefix)
	name, args, _ = strings.Cut(rest, " ")
	if name == "" {
		return "", "", false
	}

	args = " " + args
	// Stop at comment markers: " - ", " // ", or " //"
	if idx := strings.Index(args, " - "); idx >= 0 {
		args = args[:idx]
	}
	if idx := strings.Index(args, " //"); idx >= 0 {
		args = args[:idx]
	}
	args = strings.TrimSpace(args)
	if args == "-" {
		args = ""
	}

	return name, args, true
}

// Lines maps line numbers to the directives found on them.
type Lines map[int]Directive

// Scan collects every singletonsafe directive in file by line.
func Scan(fset *token.FileSet, file *ast.File) Lines {
	lines := make(Lines)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			name, args, ok := Parse(c.Text)
			if !ok {
				continue
			}

			line := fset.Position(c.Pos()).Line
			lines[line] = Directive{Pos: c.Pos(), Name: name, Args: args}
		}
	}

	return lines
}

// Find returns the first accepted directive in the comment groups, which
// are typically a node's doc comment and its trailing line comment.
func Find(accept func(name string) bool, groups ...*ast.CommentGroup) (Directive, bool) {
	for _, cg := range groups {
		if cg == nil {
			continue
		}

		for _, c := range cg.List {
			name, args, ok := Parse(c.Text)
			if ok && accept(name) {
				return Directive{Pos: c.Pos(), Name: name, Args: args}, true
			}
		}
	}

	return Directive{}, false
}
