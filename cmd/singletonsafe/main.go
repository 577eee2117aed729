// Command singletonsafe is a linter that checks singleton-registered types
// for unsynchronized mutable state.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/singletonsafe"
)

func main() {
	singlechecker.Main(singletonsafe.Analyzer)
}
