package world

import "strings"

// Direction is one of the four compass directions a room can link to.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	numDirections
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction, used when wiring both sides
// of a room link.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// ParseDirection converts player input to a Direction. Single-letter
// abbreviations are accepted.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	default:
		return 0, false
	}
}

// Room is a node in the world graph. Challenges gate traversal: the
// room must be complete before the player can move on. Neighbor links
// are set during world construction and never change afterward. The
// east/west slots exist but the current world wires only north/south.
type Room struct {
	Name        string
	Description string
	Challenges  []Challenge

	neighbors [numDirections]*Room
}

// NewRoom creates a room with its challenges attached in display order.
func NewRoom(name, description string, challenges ...Challenge) *Room {
	return &Room{Name: name, Description: description, Challenges: challenges}
}

// Neighbor returns the room in the given direction, or nil.
func (r *Room) Neighbor(d Direction) *Room {
	if d < 0 || d >= numDirections {
		return nil
	}
	return r.neighbors[d]
}

// SetNeighbor wires a one-way link. World construction only.
func (r *Room) SetNeighbor(d Direction, to *Room) {
	r.neighbors[d] = to
}

// Complete reports whether every challenge in the room is complete.
// A room with no challenges is trivially complete.
func (r *Room) Complete() bool {
	for _, c := range r.Challenges {
		if !c.Complete() {
			return false
		}
	}
	return true
}

// Enter announces the room and prompts every challenge that is still
// open. Completed challenges are skipped on re-entry.
func (r *Room) Enter(p *Player) []string {
	out := []string{"== " + r.Name + " ==", r.Description}
	for _, c := range r.Challenges {
		if c.Complete() {
			continue
		}
		out = append(out, c.OnEnter()...)
	}
	if r.Complete() {
		out = append(out, "The room is quiet. Nothing stands in your way.")
	}
	return out
}

// Exits lists the directions with a wired neighbor, in fixed order.
func (r *Room) Exits() []Direction {
	var dirs []Direction
	for d := Direction(0); d < numDirections; d++ {
		if r.neighbors[d] != nil {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
