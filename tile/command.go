package tile

// CommandKind tags a queued grid mutation.
type CommandKind uint8

const (
	// CommandPlace writes Command.Type at Command.At.
	CommandPlace CommandKind = iota
	// CommandDestroy clears Command.At to Empty.
	CommandDestroy
)

func (k CommandKind) String() string {
	switch k {
	case CommandPlace:
		return "place"
	case CommandDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Command is a queued tile mutation.
type Command struct {
	Kind CommandKind
	At   Coord
	Type Type
}

// Change is an applied mutation.
type Change struct {
	At       Coord
	Old, New Type
}

// Enqueue queues cmd for the next ApplyPending. Safe to call while queries are
// running. Placing an unknown tag panics.
func (g *Grid) Enqueue(cmd Command) {
	if cmd.Kind == CommandPlace {
		mustKnown(cmd.Type)
	}
	g.pendingMu.Lock()
	g.pending = append(g.pending, cmd)
	g.pendingMu.Unlock()
}

// Pending returns the number of queued commands.
func (g *Grid) Pending() int {
	g.pendingMu.Lock()
	defer g.pendingMu.Unlock()
	return len(g.pending)
}

// ApplyPending applies every queued command in order while holding the write
// lock, then notifies listeners. Commands that address out-of-bounds cells or
// leave a cell unchanged are dropped from the returned list.
func (g *Grid) ApplyPending() []Change {
	g.pendingMu.Lock()
	cmds := g.pending
	g.pending = nil
	g.pendingMu.Unlock()
	if len(cmds) == 0 {
		return nil
	}

	var changes []Change
	g.mu.Lock()
	for _, cmd := range cmds {
		if !g.InBounds(cmd.At.Col, cmd.At.Row) {
			continue
		}
		next := cmd.Type
		if cmd.Kind == CommandDestroy {
			next = Empty
		}
		old := g.swap(cmd.At.Col, cmd.At.Row, next)
		if old != next {
			changes = append(changes, Change{At: cmd.At, Old: old, New: next})
		}
	}
	g.mu.Unlock()

	for _, c := range changes {
		g.notify(c.At, c.Old, c.New)
	}
	return changes
}
