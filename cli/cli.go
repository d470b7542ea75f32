// Package cli provides plain terminal I/O and the read-dispatch-print
// loop for the Ascent game.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/ascent/engine"
	"github.com/nathoo/ascent/world"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	World     *world.World
	In        io.Reader
	Out       io.Writer
	EchoInput bool // echo each input line after the prompt (for script playback)

	// Game is created in Run once the player has named themselves.
	Game *engine.Game

	lastCmd string // for "again"/"g" repeat
}

// New creates a CLI attached to stdin/stdout.
func New(w *world.World) *CLI {
	return &CLI{
		World: w,
		In:    os.Stdin,
		Out:   os.Stdout,
	}
}

// Run starts the game loop: prompt for a name, enter the start room,
// then loop prompt → input → dispatch → output until a terminal state.
func (c *CLI) Run() {
	scanner := bufio.NewScanner(c.In)

	name := c.promptName(scanner)
	c.Game = engine.New(c.World, name)

	c.printLine(fmt.Sprintf("Welcome, %s. The only way out is up.", c.Game.Player.Name))
	c.printLine("")
	c.printLines(c.Game.Enter())

	for !c.Game.Status.Over() {
		c.print("Command> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		// "again" / "g" repeats the last game command.
		lower := strings.ToLower(input)
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printLine("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		result := c.Game.Step(input)
		c.printLines(result.Output)
	}
}

// promptName asks for the player's name. Empty input (or EOF) falls
// back to "Unknown" inside engine.New.
func (c *CLI) promptName(scanner *bufio.Scanner) string {
	c.print("What is your name? ")
	if !scanner.Scan() {
		return ""
	}
	name := strings.TrimSpace(scanner.Text())
	if c.EchoInput && name != "" {
		c.printLine(name)
	}
	return name
}

func (c *CLI) printLines(lines []string) {
	for _, line := range lines {
		c.printLine(line)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}
