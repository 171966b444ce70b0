package shell

// History is the append-only list of submitted lines with a recall cursor.
type History struct {
	entries []string
	cursor  int // -1 = not navigating, 0..len-1 = position in entries
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Push appends a line and resets the cursor. Duplicates are kept.
func (h *History) Push(line string) {
	h.entries = append(h.entries, line)
	h.cursor = -1
}

// Prev moves to the previous (older) entry and returns it.
// Returns ("", false) if history is empty. At the oldest entry the cursor
// stays put and the same entry is returned.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == -1 {
		h.cursor = len(h.entries) - 1
	} else if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next moves to the next (newer) entry and returns it. Without a selection
// it starts from the oldest entry. Returns ("", false) when moving past the
// most recent entry, which also resets the cursor.
func (h *History) Next() (string, bool) {
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

// Entries returns a copy of the stored lines, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}
