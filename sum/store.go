// SPDX-License-Identifier: MIT

package sum

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/struqture/coefficient"
)

// Term is one key/coefficient pair of a container.
type Term[K any] struct {
	Key   K
	Value coefficient.Complex
}

// mapping is the abstract ordered mapping behind a Store.
// Keys are the canonical String() form of the product.
type mapping[K any] interface {
	get(id string) (Term[K], bool)
	put(id string, t Term[K])
	remove(id string) (Term[K], bool)
	size() int
	each(yield func(Term[K]) bool)
	clone() mapping[K]
}

// Store maps canonical keys to coefficients and never keeps exact zeros.
type Store[K fmt.Stringer] struct {
	backing Backing
	m       mapping[K]
}

// NewStore returns an empty Store with the configured backing.
func NewStore[K fmt.Stringer](opts ...Option) *Store[K] {
	o := gatherOptions(opts...)

	return newStore[K](o.backing)
}

func newStore[K fmt.Stringer](b Backing) *Store[K] {
	s := &Store[K]{backing: b}
	switch b {
	case Hashed:
		s.m = &hashedMapping[K]{entries: make(map[string]Term[K])}
	default:
		s.m = &orderedMapping[K]{index: make(map[string]int)}
	}

	return s
}

// Backing reports the mapping implementation in use.
func (s *Store[K]) Backing() Backing { return s.backing }

// Len returns the number of stored terms.
func (s *Store[K]) Len() int { return s.m.size() }

// Lookup returns the coefficient of k and whether it is present.
func (s *Store[K]) Lookup(k K) (coefficient.Complex, bool) {
	t, ok := s.m.get(k.String())

	return t.Value, ok
}

// Get returns the coefficient of k, or zero when absent.
func (s *Store[K]) Get(k K) coefficient.Complex {
	v, _ := s.Lookup(k)

	return v
}

// Set stores v under k; an exact-zero v removes the key.
// It returns the previous coefficient, if any.
func (s *Store[K]) Set(k K, v coefficient.Complex) (coefficient.Complex, bool) {
	id := k.String()
	if v.IsZero() {
		old, ok := s.m.remove(id)

		return old.Value, ok
	}
	old, ok := s.m.get(id)
	s.m.put(id, Term[K]{Key: k, Value: v})

	return old.Value, ok
}

// Add accumulates v into k with zero removal.
func (s *Store[K]) Add(k K, v coefficient.Complex) {
	s.Set(k, s.Get(k).Add(v))
}

// Remove deletes k and returns its coefficient.
func (s *Store[K]) Remove(k K) (coefficient.Complex, bool) {
	old, ok := s.m.remove(k.String())

	return old.Value, ok
}

// All iterates over key/coefficient pairs in backing order.
func (s *Store[K]) All() iter.Seq2[K, coefficient.Complex] {
	return func(yield func(K, coefficient.Complex) bool) {
		s.m.each(func(t Term[K]) bool { return yield(t.Key, t.Value) })
	}
}

// Terms returns a snapshot of all terms in backing order.
func (s *Store[K]) Terms() []Term[K] {
	out := make([]Term[K], 0, s.m.size())
	s.m.each(func(t Term[K]) bool {
		out = append(out, t)
		return true
	})

	return out
}

// Keys returns a snapshot of keys in backing order.
func (s *Store[K]) Keys() []K {
	out := make([]K, 0, s.m.size())
	s.m.each(func(t Term[K]) bool {
		out = append(out, t.Key)
		return true
	})

	return out
}

// Values returns a snapshot of coefficients in backing order.
func (s *Store[K]) Values() []coefficient.Complex {
	out := make([]coefficient.Complex, 0, s.m.size())
	s.m.each(func(t Term[K]) bool {
		out = append(out, t.Value)
		return true
	})

	return out
}

// Clone returns an independent copy with the same backing.
func (s *Store[K]) Clone() *Store[K] {
	return &Store[K]{backing: s.backing, m: s.m.clone()}
}

// empty returns a new Store sharing only the backing choice.
func (s *Store[K]) empty() *Store[K] { return newStore[K](s.backing) }

// Equal reports identical key sets with equal coefficients, ignoring order.
func (s *Store[K]) Equal(o *Store[K]) bool {
	if s.Len() != o.Len() {
		return false
	}
	equal := true
	s.m.each(func(t Term[K]) bool {
		other, ok := o.m.get(t.Key.String())
		equal = ok && other.Value.Equal(t.Value)
		return equal
	})

	return equal
}

// String renders "{key: value, ...}" in backing order.
func (s *Store[K]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.m.each(func(t Term[K]) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(t.Key.String())
		b.WriteString(": ")
		b.WriteString(t.Value.String())
		return true
	})
	b.WriteByte('}')

	return b.String()
}

// ---------- insertion-order backing ----------

// orderedMapping removes by tombstoning the slot and compacts once dead
// slots outnumber live ones, so removal stays O(1) amortized.
type orderedMapping[K any] struct {
	index map[string]int // id -> position in slots
	slots []orderedSlot[K]
	dead  int
}

type orderedSlot[K any] struct {
	id   string
	term Term[K]
	live bool
}

// minCompact keeps tiny stores from compacting on every removal.
const minCompact = 32

func (m *orderedMapping[K]) get(id string) (Term[K], bool) {
	i, ok := m.index[id]
	if !ok {
		return Term[K]{}, false
	}

	return m.slots[i].term, true
}

func (m *orderedMapping[K]) put(id string, t Term[K]) {
	if i, ok := m.index[id]; ok {
		m.slots[i].term = t
		return
	}
	m.index[id] = len(m.slots)
	m.slots = append(m.slots, orderedSlot[K]{id: id, term: t, live: true})
}

func (m *orderedMapping[K]) remove(id string) (Term[K], bool) {
	i, ok := m.index[id]
	if !ok {
		return Term[K]{}, false
	}
	old := m.slots[i].term
	delete(m.index, id)
	m.slots[i] = orderedSlot[K]{}
	m.dead++
	if m.dead >= minCompact && m.dead > len(m.index) {
		m.compact()
	}

	return old, true
}

// compact drops tombstones in place and rebuilds the positions.
func (m *orderedMapping[K]) compact() {
	live := m.slots[:0]
	for _, sl := range m.slots {
		if sl.live {
			m.index[sl.id] = len(live)
			live = append(live, sl)
		}
	}
	clear(m.slots[len(live):])
	m.slots = live
	m.dead = 0
}

func (m *orderedMapping[K]) size() int { return len(m.index) }

func (m *orderedMapping[K]) each(yield func(Term[K]) bool) {
	for _, sl := range m.slots {
		if sl.live && !yield(sl.term) {
			return
		}
	}
}

func (m *orderedMapping[K]) clone() mapping[K] {
	c := &orderedMapping[K]{
		index: make(map[string]int, len(m.index)),
		slots: make([]orderedSlot[K], 0, len(m.index)),
	}
	for _, sl := range m.slots {
		if sl.live {
			c.index[sl.id] = len(c.slots)
			c.slots = append(c.slots, sl)
		}
	}

	return c
}

// ---------- hashed backing ----------

type hashedMapping[K any] struct {
	entries map[string]Term[K]
}

func (m *hashedMapping[K]) get(id string) (Term[K], bool) {
	t, ok := m.entries[id]

	return t, ok
}

func (m *hashedMapping[K]) put(id string, t Term[K]) { m.entries[id] = t }

func (m *hashedMapping[K]) remove(id string) (Term[K], bool) {
	t, ok := m.entries[id]
	if ok {
		delete(m.entries, id)
	}

	return t, ok
}

func (m *hashedMapping[K]) size() int { return len(m.entries) }

func (m *hashedMapping[K]) each(yield func(Term[K]) bool) {
	for _, t := range m.entries {
		if !yield(t) {
			return
		}
	}
}

func (m *hashedMapping[K]) clone() mapping[K] {
	c := &hashedMapping[K]{entries: make(map[string]Term[K], len(m.entries))}
	for id, t := range m.entries {
		c.entries[id] = t
	}

	return c
}
