// Package tui provides a Bubble Tea terminal UI for the Ascent game.
package tui

// history is a bounded command history. pos is the navigation index;
// pos == len(entries) means not navigating (fresh input line).
type history struct {
	entries []string
	limit   int
	pos     int
}

func newHistory(limit int) *history {
	return &history{limit: limit}
}

// push records a command and leaves navigation mode. Consecutive
// duplicates are not stored twice.
func (h *history) push(cmd string) {
	if n := len(h.entries); n == 0 || h.entries[n-1] != cmd {
		h.entries = append(h.entries, cmd)
		if len(h.entries) > h.limit {
			h.entries = h.entries[1:]
		}
	}
	h.pos = len(h.entries)
}

// older steps toward the oldest entry and returns it. At the oldest
// entry it keeps returning it.
func (h *history) older() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.pos > 0 {
		h.pos--
	}
	return h.entries[h.pos], true
}

// newer steps toward the newest entry. Past the newest it returns
// ("", false): the input line goes back to fresh.
func (h *history) newer() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return "", false
	}
	return h.entries[h.pos], true
}
