// Package types defines the shared data structures for the Ascent engine.
// This package contains only small value types — no game logic.
package types

// Intent is the parsed representation of a player command.
type Intent struct {
	Verb string
	Args []string
}

// Result is the output of a single game step.
type Result struct {
	Output []string
}

// Status is the game's lifecycle state.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
	StatusQuit
)

// Over reports whether the status is terminal (Won, Lost, or Quit).
func (s Status) Over() bool {
	return s != StatusPlaying
}

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}
