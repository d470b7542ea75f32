package engine

import (
	"fmt"
	"strings"

	"github.com/nathoo/ascent/types"
	"github.com/nathoo/ascent/world"
)

// command is a single user-invokable action, dispatched by name.
type command struct {
	name  string
	usage string
	help  string
	run   func(g *Game, args []string) []string
}

// commands is the dispatch table. Keys are lowercase command names;
// the parser maps aliases onto these before dispatch.
var commands = map[string]*command{}

// commandOrder fixes the listing order for the help command.
var commandOrder = []string{"go", "attack", "solve", "look", "status", "map", "help", "quit"}

func register(c *command) {
	commands[c.name] = c
}

func init() {
	register(&command{
		name:  "go",
		usage: "go <north|south|east|west>",
		help:  "Move to an adjacent room (or just type n/s/e/w)",
		run:   cmdGo,
	})
	register(&command{
		name:  "attack",
		usage: "attack",
		help:  "Strike the enemy in this room",
		run:   cmdAttack,
	})
	register(&command{
		name:  "solve",
		usage: "solve <answer>",
		help:  "Answer the puzzle in this room",
		run:   cmdSolve,
	})
	register(&command{
		name:  "look",
		usage: "look",
		help:  "Describe the room again",
		run:   cmdLook,
	})
	register(&command{
		name:  "status",
		usage: "status",
		help:  "Show your health and progress",
		run:   cmdStatus,
	})
	register(&command{
		name:  "map",
		usage: "map",
		help:  "Show the tower map",
		run:   cmdMap,
	})
	register(&command{
		name:  "help",
		usage: "help",
		help:  "Show this list",
		run:   cmdHelp,
	})
	register(&command{
		name:  "quit",
		usage: "quit",
		help:  "Give up and leave the tower",
		run:   cmdQuit,
	})
}

func cmdGo(g *Game, args []string) []string {
	if len(args) < 1 {
		return []string{"Go where? Usage: " + commands["go"].usage}
	}

	dir, ok := world.ParseDirection(args[0])
	if !ok {
		return []string{fmt.Sprintf("You can't go %q.", args[0])}
	}

	if !g.Current.Complete() {
		return []string{"Something here still bars your way. Deal with it first."}
	}

	next := g.Current.Neighbor(dir)
	if next == nil {
		return []string{"You can't go that way."}
	}

	g.Current = next
	return g.Enter()
}

func cmdAttack(g *Game, args []string) []string {
	enc := firstOpenEncounter(g.Current)
	if enc == nil {
		return []string{"There is nothing here to attack."}
	}
	return enc.HandleInput("attack", g.Player)
}

func cmdSolve(g *Game, args []string) []string {
	if len(args) < 1 {
		return []string{"Solve what? Usage: " + commands["solve"].usage}
	}

	pz := firstOpenPuzzle(g.Current)
	if pz == nil {
		return []string{"There is no puzzle to solve here."}
	}
	return pz.HandleInput(strings.Join(args, " "), g.Player)
}

func cmdLook(g *Game, args []string) []string {
	return g.Enter()
}

func cmdStatus(g *Game, args []string) []string {
	cleared, total := g.ChallengesCleared()
	out := []string{
		fmt.Sprintf("%s — %d HP, attack %d", g.Player.Name, g.Player.Health, g.Player.AttackPower),
		fmt.Sprintf("Location: %s", g.Current.Name),
		fmt.Sprintf("Challenges cleared: %d/%d", cleared, total),
	}
	for _, c := range g.Current.Challenges {
		out = append(out, "  here: "+c.Describe())
	}
	return out
}

// cmdMap draws the tower as a vertical chain, top floor first, with a
// marker on the player's current room.
func cmdMap(g *Game, args []string) []string {
	var out []string
	rooms := g.World.Rooms
	for i := len(rooms) - 1; i >= 0; i-- {
		line := "  " + rooms[i].Name
		if rooms[i] == g.Current {
			line += "  <- you are here"
		}
		out = append(out, line)
		if i > 0 {
			out = append(out, "    |")
		}
	}
	return out
}

func cmdHelp(g *Game, args []string) []string {
	out := []string{"Commands:"}
	for _, name := range commandOrder {
		c := commands[name]
		out = append(out, fmt.Sprintf("  %-30s %s", c.usage, c.help))
	}
	return out
}

func cmdQuit(g *Game, args []string) []string {
	g.Status = types.StatusQuit
	return []string{fmt.Sprintf("Farewell, %s. The tower will be waiting.", g.Player.Name)}
}

// firstOpenEncounter returns the first incomplete enemy encounter in
// the room, or nil.
func firstOpenEncounter(r *world.Room) *world.EnemyEncounter {
	for _, c := range r.Challenges {
		if enc, ok := c.(*world.EnemyEncounter); ok && !enc.Complete() {
			return enc
		}
	}
	return nil
}

// firstOpenPuzzle returns the first incomplete puzzle in the room, or nil.
func firstOpenPuzzle(r *world.Room) *world.Puzzle {
	for _, c := range r.Challenges {
		if pz, ok := c.(*world.Puzzle); ok && !pz.Complete() {
			return pz
		}
	}
	return nil
}
