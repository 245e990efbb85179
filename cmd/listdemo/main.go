// Command listdemo builds a persistent list from its arguments, doubles every
// element, and prints half of each doubled element on its own line.
package main

import (
	"os"

	"listdemo/pkg/buildinfo"
	"listdemo/pkg/demo"
	"listdemo/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &demo.Program{})))
}
