// Command packing searches for a dense periodic packing of a regular
// polygon under a chosen wallpaper group's symmetry.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
