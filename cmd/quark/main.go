// Command quark is the workspace tool for quark applications: it scaffolds
// new app projects and validates existing workspaces.
package main

import "github.com/nextcore/quark/cmd/quark/cmd"

func main() {
	cmd.Execute()
}
