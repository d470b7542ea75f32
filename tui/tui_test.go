package tui

import "testing"

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line string
		want lineKind
	}{
		{"== Library ==", kindRoomName},
		{"*** You have died. ***", kindTerminal},
		{"*** Congratulations, Rhea — you have conquered the tower! ***", kindTerminal},
		{"You hit the Wraith for 10 damage.", kindCombat},
		{"The Wraith strikes back for 5 damage. (20 HP left, you have 95)", kindCombat},
		{"A Gatekeeper Ghoul blocks your path! (20 HP)", kindCombat},
		{"The Wraith collapses!", kindCombat},
		{"(3 attempts remain — answer with: solve <answer>)", kindHint},
		{"You can't go that way.", kindError},
		{`I don't understand "dance". Type help for commands.`, kindError},
		{"That's not it. 2 attempts remain.", kindError},
		{"There is no puzzle to solve here.", kindError},
		{"Something here still bars your way. Deal with it first.", kindError},
		{"A heavy iron door groans shut behind you.", kindNarrative},
		{"", kindNarrative},
	}
	for _, tt := range tests {
		if got := classifyLine(tt.line); got != tt.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestHistory_Navigation(t *testing.T) {
	h := newHistory(10)
	h.push("look")
	h.push("attack")
	h.push("go north")

	if got, ok := h.older(); !ok || got != "go north" {
		t.Errorf("older() = (%q, %v), want (go north, true)", got, ok)
	}
	if got, ok := h.older(); !ok || got != "attack" {
		t.Errorf("older() = (%q, %v), want (attack, true)", got, ok)
	}
	if got, ok := h.newer(); !ok || got != "go north" {
		t.Errorf("newer() = (%q, %v), want (go north, true)", got, ok)
	}
	if got, ok := h.newer(); ok {
		t.Errorf("newer() past the end = (%q, %v), want fresh input", got, ok)
	}
}

func TestHistory_PushLeavesNavigationMode(t *testing.T) {
	h := newHistory(10)
	h.push("look")
	h.push("attack")

	if got, ok := h.older(); !ok || got != "attack" {
		t.Fatalf("older() = (%q, %v), want (attack, true)", got, ok)
	}

	// Submitting a command ends navigation: the next older() starts
	// from the newest entry again.
	h.push("go north")
	if got, ok := h.older(); !ok || got != "go north" {
		t.Errorf("older() after push = (%q, %v), want (go north, true)", got, ok)
	}
}

func TestHistory_OlderStopsAtOldest(t *testing.T) {
	h := newHistory(10)
	h.push("look")
	h.push("attack")

	h.older() // attack
	h.older() // look
	if got, ok := h.older(); !ok || got != "look" {
		t.Errorf("older() at the oldest entry = (%q, %v), want (look, true)", got, ok)
	}
}

func TestHistory_SkipsConsecutiveDuplicates(t *testing.T) {
	h := newHistory(10)
	h.push("attack")
	h.push("attack")
	h.push("attack")

	if len(h.entries) != 1 {
		t.Errorf("len(entries) = %d, want 1", len(h.entries))
	}
}

func TestHistory_Bounded(t *testing.T) {
	h := newHistory(3)
	for _, cmd := range []string{"a", "b", "c", "d"} {
		h.push(cmd)
	}
	if len(h.entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(h.entries))
	}
	if h.entries[0] != "b" {
		t.Errorf("oldest entry = %q, want b (a evicted)", h.entries[0])
	}
}

func TestHistory_EmptyOlder(t *testing.T) {
	h := newHistory(10)
	if got, ok := h.older(); ok {
		t.Errorf("older() on empty history = (%q, %v), want not ok", got, ok)
	}
}
