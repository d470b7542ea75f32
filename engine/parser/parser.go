// Package parser converts command lines into Intent structs.
// Intentionally dumb: whitespace splitting and alias expansion only.
package parser

import (
	"strings"

	"github.com/nathoo/ascent/types"
)

// Bare directions act as shortcuts for "go <direction>".
var directionShortcuts = map[string]string{
	"n":     "north",
	"s":     "south",
	"e":     "east",
	"w":     "west",
	"north": "north",
	"south": "south",
	"east":  "east",
	"west":  "west",
}

var verbAliases = map[string]string{
	// Look
	"l":       "look",
	"examine": "look",
	"inspect": "look",

	// Movement
	"move": "go",
	"walk": "go",
	"run":  "go",
	"head": "go",

	// Combat
	"hit":    "attack",
	"fight":  "attack",
	"strike": "attack",
	"kill":   "attack",
	"a":      "attack",

	// Puzzles
	"answer": "solve",
	"guess":  "solve",

	// Status
	"stats":  "status",
	"health": "status",
	"hp":     "status",

	// Meta
	"m":    "map",
	"h":    "help",
	"?":    "help",
	"q":    "quit",
	"exit": "quit",
	"bye":  "quit",
}

// Parse converts a raw command line into an Intent. The verb is
// lowercased; args keep their original case (puzzle answers are
// canonicalized later, at the point of comparison).
func Parse(input string) types.Intent {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return types.Intent{}
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	// Bare "n" / "north" etc. → go <direction>.
	if len(fields) == 1 {
		if dir, ok := directionShortcuts[verb]; ok {
			return types.Intent{Verb: "go", Args: []string{dir}}
		}
	}

	if alias, ok := verbAliases[verb]; ok {
		verb = alias
	}

	return types.Intent{Verb: verb, Args: args}
}
