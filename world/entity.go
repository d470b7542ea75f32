package world

import "strings"

// Default player stats.
const (
	DefaultHealth      = 100
	DefaultAttackPower = 10
)

// Player is the adventurer's runtime state. Name and attack power are
// fixed at construction; only health changes during play.
type Player struct {
	Name        string
	Health      int
	AttackPower int
}

// NewPlayer creates a player with default stats. An empty or
// whitespace-only name becomes "Unknown".
func NewPlayer(name string) *Player {
	if strings.TrimSpace(name) == "" {
		name = "Unknown"
	}
	return &Player{
		Name:        name,
		Health:      DefaultHealth,
		AttackPower: DefaultAttackPower,
	}
}

// TakeDamage reduces health by amount, never below zero.
func (p *Player) TakeDamage(amount int) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
}

// Alive reports whether the player can still act.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Enemy is a hostile combatant. Damage is fixed at construction.
type Enemy struct {
	Name   string
	Health int
	Damage int
}

// NewEnemy creates an enemy with the given stats.
func NewEnemy(name string, health, damage int) *Enemy {
	return &Enemy{Name: name, Health: health, Damage: damage}
}

// TakeDamage reduces health by amount, never below zero.
func (e *Enemy) TakeDamage(amount int) {
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
}

// Defeated reports whether the enemy is out of the fight.
func (e *Enemy) Defeated() bool {
	return e.Health <= 0
}
