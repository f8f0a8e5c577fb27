package main

import (
	"fmt"
	"log"
	"os"

	"github.com/zbst/ad-schemas/cmd/schemactl/commands"
)

// Version info for the schemactl tool
// These variables are injected at build time via ldflags
var (
	// Version is the current version of the schemactl tool
	Version = "dev"

	// BuildTime is the time at which the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit that was compiled
	GitCommit = "unknown"
)

func main() {
	log.SetFlags(0) // Remove timestamp from logs

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "validate":
		err = commands.ValidateCommand(os.Args[2:])
	case "examples":
		err = commands.ExamplesCommand(os.Args[2:])
	case "generate":
		err = commands.GenerateCommand(os.Args[2:])
	case "constraints":
		err = commands.ConstraintsCommand(os.Args[2:])
	case "new":
		err = commands.NewCommand(os.Args[2:])
	case "--version", "-v", "version":
		log.Printf("schemactl %s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
		return
	case "--help", "-h", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	_, _ = fmt.Fprintln(os.Stdout, "zbst Ad-Schemas Tool")
	_, _ = fmt.Fprintln(os.Stdout)
	_, _ = fmt.Fprintln(os.Stdout, "Usage:")
	_, _ = fmt.Fprintln(os.Stdout, "  schemactl <command> [arguments]")
	_, _ = fmt.Fprintln(os.Stdout)
	_, _ = fmt.Fprintln(os.Stdout, "Commands:")
	_, _ = fmt.Fprintln(os.Stdout, "  validate      Check every schema against the Draft-07 meta-schema")
	_, _ = fmt.Fprintln(os.Stdout, "  examples      Validate embedded examples against their own schema")
	_, _ = fmt.Fprintln(os.Stdout, "  generate      Emit Go data-model source for every schema")
	_, _ = fmt.Fprintln(os.Stdout, "  constraints   Check and list the cross-schema business rules")
	_, _ = fmt.Fprintln(os.Stdout, "  new           Scaffold a new schema document")
	_, _ = fmt.Fprintln(os.Stdout)
	_, _ = fmt.Fprintln(os.Stdout, "Use 'schemactl <command> --help' for more information about a command.")
}
