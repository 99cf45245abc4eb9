// Command ariascope builds, matches, and renders ARIA accessibility-tree
// snapshots from HTML fixtures.
package main

import "github.com/kitetree/ariascope/cmd"

func main() {
	cmd.Execute()
}
