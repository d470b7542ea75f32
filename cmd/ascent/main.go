// Ascent is a single-player, turn-based text adventure: climb the
// tower, clear each room's challenges, and light the rooftop beacon.
// Usage: ascent [--version] [--plain] [--script <file>]
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/nathoo/ascent/cli"
	"github.com/nathoo/ascent/engine"
	"github.com/nathoo/ascent/tui"
	"github.com/nathoo/ascent/world"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("ascent %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			fmt.Fprintf(os.Stderr, "Usage: ascent [--version] [--plain] [--script <file>]\n")
			os.Exit(1)
		}
	}

	w := world.New()

	// Script mode: read name and commands from the file, echo input.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(w)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use the plain CLI if --plain or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(w)
		c.Run()
		return
	}

	// The TUI takes over the screen, so ask for the name first.
	name := promptName()
	g := engine.New(w, name)
	if err := tui.Run(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// promptName reads the player's name from stdin. Empty input defaults
// to "Unknown" inside engine.New.
func promptName() string {
	fmt.Print("What is your name? ")
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
