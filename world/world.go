// Package world models the game content: the player, enemies, puzzles,
// rooms, and the fixed tower the player climbs. Construction is fully
// deterministic — the same world every run.
package world

// World is the fixed room graph. Rooms holds the linear south-to-north
// chain in order; Start is the southernmost room and Final the goal.
type World struct {
	Rooms []*Room
	Start *Room
	Final *Room
}

// New builds the seven-room tower: 5 enemies, 4 puzzles, rooms linked
// bidirectionally north/south along one path.
//
//	Entrance ↔ Corridor ↔ Library ↔ Theatre ↔ Lab ↔ Stairwell ↔ Rooftop
func New() *World {
	entrance := NewRoom("Entrance",
		"A heavy iron door groans shut behind you. Dust hangs in the torchlight.",
		NewEnemyEncounter(NewEnemy("Gatekeeper Ghoul", 20, 4)),
	)

	corridor := NewRoom("Corridor",
		"A narrow passage of cracked flagstones. Words are scratched into the wall.",
		NewPuzzle(
			"The wall reads: 'I speak without a mouth and hear without ears. What am I?'",
			"echo", 3,
		),
	)

	library := NewRoom("Library",
		"Shelves sag under mouldering books. Something moves between the stacks.",
		NewEnemyEncounter(NewEnemy("Spectral Librarian", 30, 5)),
		NewPuzzle(
			"An open ledger asks: 'What is the answer to life, the universe and everything?'",
			"42", 3,
		),
	)

	theatre := NewRoom("Theatre",
		"Rows of rotten seats face a collapsed stage. A single spotlight still burns.",
		NewPuzzle(
			"A playbill riddles: 'The more you take of me, the more you leave behind. What am I?'",
			"footsteps", 4,
		),
	)

	lab := NewRoom("Lab",
		"Shattered glassware and scorched benches. Something bubbles in the dark.",
		NewEnemyEncounter(NewEnemy("Alchemical Horror", 40, 6)),
	)

	stairwell := NewRoom("Stairwell",
		"A spiral stair climbs into cold wind. Armor clanks on the steps above.",
		NewEnemyEncounter(NewEnemy("Hollow Knight", 35, 7)),
	)

	rooftop := NewRoom("Rooftop",
		"Open sky at last. The tower's master waits beside a sealed beacon.",
		NewEnemyEncounter(NewEnemy("Tower Warden", 50, 8)),
		NewPuzzle(
			"The beacon's seal asks: 'What can you keep only after giving it to someone else?'",
			"your word", 3,
		),
	)

	rooms := []*Room{entrance, corridor, library, theatre, lab, stairwell, rooftop}
	for i := 0; i < len(rooms)-1; i++ {
		link(rooms[i], North, rooms[i+1])
	}

	return &World{
		Rooms: rooms,
		Start: entrance,
		Final: rooftop,
	}
}

// link wires a bidirectional connection: a→b in the given direction,
// b→a in the opposite.
func link(a *Room, d Direction, b *Room) {
	a.SetNeighbor(d, b)
	b.SetNeighbor(d.Opposite(), a)
}
