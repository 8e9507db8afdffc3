// Package gate provides a one-shot completion gate: it expects n distinct
// signals and fires exactly once, on the signal that completes the set.
package gate

// Gate is not safe for concurrent use; each reader session owns its own.
type Gate struct {
	expected int
	seen     map[int]struct{}
	fired    bool
}

// New returns a gate waiting for signals 0..n-1.
func New(n int) *Gate {
	if n < 0 {
		n = 0
	}
	return &Gate{expected: n, seen: make(map[int]struct{}, n)}
}

// Signal records signal i and reports whether this call fired the gate.
// Repeated and out-of-range signals are ignored.
func (g *Gate) Signal(i int) bool {
	if g.fired || i < 0 || i >= g.expected {
		return false
	}
	if _, ok := g.seen[i]; ok {
		return false
	}
	g.seen[i] = struct{}{}
	if len(g.seen) == g.expected {
		g.fired = true
		return true
	}
	return false
}

func (g *Gate) Fired() bool {
	return g.fired
}

// Remaining is the number of signals still outstanding.
func (g *Gate) Remaining() int {
	return g.expected - len(g.seen)
}
