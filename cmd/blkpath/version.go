package main

import "fmt"

// version output variables
var (
	commit  = "unknown"
	version = "unknown"
	date    = "unknown"
)

func printVersion() {
	fmt.Printf(`
Version info:
  Version:    %s
  Git Commit: %s
  Built:      %s

`, version, commit, date)
}
