// Package marble provides the list data model and persistence for marbles.
package marble

import (
	"math/rand/v2"
	"sort"
)

// List is a named, deduplicated collection of items.
// Items are stored as a set; Items() exposes them in lexicographic order,
// which is also the order they are persisted in.
type List struct {
	name  string
	items map[string]struct{}
	rng   *rand.Rand
}

// NewList creates an empty list with the given name.
func NewList(name string) *List {
	return &List{
		name:  name,
		items: make(map[string]struct{}),
	}
}

// NewListWithRand creates an empty list using the given random source for
// draws. Used by tests that need deterministic rolls.
func NewListWithRand(name string, rng *rand.Rand) *List {
	l := NewList(name)
	l.rng = rng
	return l
}

// Name returns the list's name.
func (l *List) Name() string {
	return l.name
}

// Len returns the number of items in the list.
func (l *List) Len() int {
	return len(l.items)
}

// Contains reports whether the item is in the list.
func (l *List) Contains(item string) bool {
	_, ok := l.items[item]
	return ok
}

// Items returns the items in lexicographic order.
func (l *List) Items() []string {
	items := make([]string, 0, len(l.items))
	for item := range l.items {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// Add inserts an item. Returns true if the item was newly inserted,
// false if it was already present (a no-op, not an error).
func (l *List) Add(item string) bool {
	if _, ok := l.items[item]; ok {
		return false
	}
	l.items[item] = struct{}{}
	return true
}

// Remove deletes an item. Returns true if the item was present.
func (l *List) Remove(item string) bool {
	if _, ok := l.items[item]; !ok {
		return false
	}
	delete(l.items, item)
	return true
}

// TakeRandom selects one item uniformly at random, removes it from the
// list, and returns it. Returns false if the list is empty.
func (l *List) TakeRandom() (string, bool) {
	if len(l.items) == 0 {
		return "", false
	}

	items := l.Items()
	var idx int
	if l.rng != nil {
		idx = l.rng.IntN(len(items))
	} else {
		idx = rand.IntN(len(items))
	}

	item := items[idx]
	delete(l.items, item)
	return item, true
}
