package main

import "github.com/bnema/shade/internal/cli/cmd"

// Build-time variables (set via ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cmd.SetVersion(version, commit)
	cmd.Execute()
}
