// Package main provides the popover CLI.
//
// Usage:
//
//	popover place --anchor 100,50,80,20 --panel 120,40   Compute a panel position
//	popover demo                                         Print a scripted session
//	popover run                                          Try the popovers interactively
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
