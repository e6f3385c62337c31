package uno

// Cycle tracks the turns of the game: a circular index over a fixed,
// ordered set of items. Advance moves around the circle, wrapping
// automatically, and Reverse flips the direction that Advance takes.
type Cycle[T any] struct {
	items    []T
	pos      int
	reversed bool
}

// NewCycle constructs a cycle starting at the first item, moving forward.
func NewCycle[T any](items []T) *Cycle[T] {
	return &Cycle[T]{items: items}
}

// Current returns the item at the current position.
func (c *Cycle[T]) Current() T {
	return c.items[c.pos]
}

// PeekNext returns the item step positions away, direction-aware, without
// moving the cycle.
func (c *Cycle[T]) PeekNext(step int) T {
	return c.items[c.wrap(c.pos+c.signed(step))]
}

// Advance moves the position by step, plus one extra step if skip is set,
// and returns the new current item.
func (c *Cycle[T]) Advance(step int, skip bool) T {
	if skip {
		step++
	}
	c.pos = c.wrap(c.pos + c.signed(step))
	return c.items[c.pos]
}

// Reverse toggles the direction of the cycle. The position does not move.
func (c *Cycle[T]) Reverse() {
	c.reversed = !c.reversed
}

func (c *Cycle[T]) signed(step int) int {
	if c.reversed {
		return -step
	}
	return step
}

func (c *Cycle[T]) wrap(i int) int {
	i %= len(c.items)
	if i < 0 {
		i += len(c.items)
	}
	return i
}
