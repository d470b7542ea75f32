// Package engine provides the Step() orchestrator that wires together
// parsing, command dispatch, and terminal-condition checks into a
// single turn.
package engine

import (
	"fmt"

	"github.com/nathoo/ascent/engine/parser"
	"github.com/nathoo/ascent/types"
	"github.com/nathoo/ascent/world"
)

// Game holds the complete mutable game state. One instance per
// playthrough, threaded explicitly into every command — no globals.
type Game struct {
	World   *world.World
	Player  *world.Player
	Current *world.Room
	Status  types.Status
	Turns   int
}

// New creates a game positioned at the world's start room.
func New(w *world.World, playerName string) *Game {
	return &Game{
		World:   w,
		Player:  world.NewPlayer(playerName),
		Current: w.Start,
		Status:  types.StatusPlaying,
	}
}

// Step processes one player command and returns the result. Commands
// never crash the game: a panic inside a handler is recovered at the
// dispatch boundary and reported as a recoverable error.
func (g *Game) Step(input string) types.Result {
	var result types.Result

	intent := parser.Parse(input)

	// The quit verb passes through the terminal gate: a player who has
	// already won or lost still needs a way out of the loop.
	if g.Status.Over() {
		if intent.Verb == "quit" {
			result.Output = append(result.Output, g.dispatch(commands["quit"], intent.Args)...)
			return result
		}
		result.Output = append(result.Output, "The adventure is over. Type quit to exit.")
		return result
	}

	if intent.Verb == "" {
		result.Output = append(result.Output, "What do you want to do? (try: help)")
		return result
	}

	cmd, ok := commands[intent.Verb]
	if !ok {
		result.Output = append(result.Output, fmt.Sprintf("I don't understand %q. Type help for commands.", intent.Verb))
		return result
	}

	result.Output = append(result.Output, g.dispatch(cmd, intent.Args)...)
	g.Turns++

	g.checkTerminal(&result)
	return result
}

// dispatch runs a command handler behind a recover boundary.
func (g *Game) dispatch(cmd *command, args []string) (out []string) {
	defer func() {
		if r := recover(); r != nil {
			out = append(out, fmt.Sprintf("Something went wrong (%v), but the adventure continues.", r))
		}
	}()
	return cmd.run(g, args)
}

// checkTerminal re-evaluates win/lose conditions after every turn.
// Quit is set directly by the quit command.
func (g *Game) checkTerminal(result *types.Result) {
	if g.Status.Over() {
		return
	}

	if !g.Player.Alive() {
		g.Status = types.StatusLost
		result.Output = append(result.Output,
			"Your strength gives out. The tower claims another climber.",
			"*** You have died. ***")
		return
	}

	if g.Current == g.World.Final && g.Current.Complete() {
		g.Status = types.StatusWon
		result.Output = append(result.Output,
			fmt.Sprintf("The beacon blazes to life above the %s.", g.Current.Name),
			fmt.Sprintf("*** Congratulations, %s — you have conquered the tower! ***", g.Player.Name))
	}
}

// Enter announces the current room; used for the initial unconditional
// room entry and by the look command.
func (g *Game) Enter() []string {
	return g.Current.Enter(g.Player)
}

// ChallengesCleared counts completed challenges across the whole world.
func (g *Game) ChallengesCleared() (cleared, total int) {
	for _, r := range g.World.Rooms {
		for _, c := range r.Challenges {
			total++
			if c.Complete() {
				cleared++
			}
		}
	}
	return cleared, total
}
