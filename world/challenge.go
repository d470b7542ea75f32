package world

import (
	"fmt"
	"strings"
)

// Challenge is a completable obstacle in a room. The set of
// implementations is closed: Puzzle and EnemyEncounter.
type Challenge interface {
	// Complete reports whether the challenge has been overcome.
	// Completion is permanent.
	Complete() bool
	// Describe returns a one-line summary for status displays.
	Describe() string
	// OnEnter returns the lines announced when the player enters the
	// room while this challenge is still open.
	OnEnter() []string
	// HandleInput feeds player input to the challenge and returns
	// feedback lines. It may mutate the challenge and the player.
	HandleInput(input string, p *Player) []string
}

// Puzzle is a riddle with a fixed answer and a limited number of
// attempts. Once solved it stays solved; once attempts run out,
// further input is ignored without comment.
type Puzzle struct {
	Description string
	answer      string // canonical form: lower-cased, trimmed
	attempts    int
	solved      bool
}

// NewPuzzle creates a puzzle. The answer is canonicalized so that
// matching is case-insensitive. attempts must be positive.
func NewPuzzle(description, answer string, attempts int) *Puzzle {
	return &Puzzle{
		Description: description,
		answer:      canonical(answer),
		attempts:    attempts,
	}
}

// Complete reports whether the puzzle has been solved.
func (z *Puzzle) Complete() bool {
	return z.solved
}

// AttemptsLeft returns the remaining attempt count. Never negative.
func (z *Puzzle) AttemptsLeft() int {
	return z.attempts
}

func (z *Puzzle) Describe() string {
	if z.solved {
		return "puzzle (solved)"
	}
	return "puzzle"
}

func (z *Puzzle) OnEnter() []string {
	return []string{
		z.Description,
		fmt.Sprintf("(%d attempts remain — answer with: solve <answer>)", z.attempts),
	}
}

// HandleInput checks an answer. The attempt is spent before the
// comparison, so a correct answer on the last attempt still solves the
// puzzle. Input after completion or exhaustion is silently ignored.
func (z *Puzzle) HandleInput(input string, p *Player) []string {
	if z.solved || z.attempts <= 0 {
		return nil
	}

	z.attempts--
	if canonical(input) == z.answer {
		z.solved = true
		return []string{"That's it! The way forward feels a little lighter."}
	}

	return []string{fmt.Sprintf("That's not it. %d attempts remain.", z.attempts)}
}

// EnemyEncounter wraps a single enemy. Completion is derived from the
// enemy being defeated, never stored separately.
type EnemyEncounter struct {
	Enemy *Enemy
}

// NewEnemyEncounter creates an encounter around the given enemy.
func NewEnemyEncounter(e *Enemy) *EnemyEncounter {
	return &EnemyEncounter{Enemy: e}
}

// Complete reports whether the wrapped enemy is defeated.
func (c *EnemyEncounter) Complete() bool {
	return c.Enemy.Defeated()
}

func (c *EnemyEncounter) Describe() string {
	if c.Complete() {
		return fmt.Sprintf("%s (defeated)", c.Enemy.Name)
	}
	return c.Enemy.Name
}

func (c *EnemyEncounter) OnEnter() []string {
	return []string{fmt.Sprintf("A %s blocks your path! (%d HP)", c.Enemy.Name, c.Enemy.Health)}
}

// HandleInput reacts only to the literal token "attack". The player
// strikes first; the enemy retaliates only if it survives the blow.
func (c *EnemyEncounter) HandleInput(input string, p *Player) []string {
	if canonical(input) != "attack" {
		return nil
	}
	if c.Complete() {
		return []string{fmt.Sprintf("The %s is already defeated.", c.Enemy.Name)}
	}

	c.Enemy.TakeDamage(p.AttackPower)
	out := []string{fmt.Sprintf("You hit the %s for %d damage.", c.Enemy.Name, p.AttackPower)}

	if c.Enemy.Defeated() {
		out = append(out, fmt.Sprintf("The %s collapses!", c.Enemy.Name))
		return out
	}

	p.TakeDamage(c.Enemy.Damage)
	out = append(out, fmt.Sprintf("The %s strikes back for %d damage. (%d HP left, you have %d)",
		c.Enemy.Name, c.Enemy.Damage, c.Enemy.Health, p.Health))
	return out
}

// canonical normalizes puzzle answers and combat tokens for comparison.
func canonical(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
