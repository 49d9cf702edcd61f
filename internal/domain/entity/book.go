package entity

import "github.com/younwookim/zgame/internal/domain/spell"

// SpellBook holds a mob's known spells and the selected one
type SpellBook struct {
	spells   []spell.Spell
	selected int
}

// NewSpellBook creates a book; the first spell starts selected
func NewSpellBook(spells ...spell.Spell) *SpellBook {
	return &SpellBook{spells: spells}
}

// Len returns the number of known spells
func (b *SpellBook) Len() int { return len(b.spells) }

// Learn appends a spell
func (b *SpellBook) Learn(s spell.Spell) {
	b.spells = append(b.spells, s)
}

// Selected returns the selected spell, or nil when the book is empty
func (b *SpellBook) Selected() spell.Spell {
	if len(b.spells) == 0 {
		return nil
	}
	return b.spells[b.selected]
}

// SelectedIndex returns the index of the selected spell
func (b *SpellBook) SelectedIndex() int { return b.selected }

// Select selects the spell at i. Out of range indexes are ignored.
func (b *SpellBook) Select(i int) bool {
	if i < 0 || i >= len(b.spells) {
		return false
	}
	b.selected = i
	return true
}

// Cycle moves the selection by delta, wrapping around
func (b *SpellBook) Cycle(delta int) {
	n := len(b.spells)
	if n == 0 {
		return
	}
	b.selected = ((b.selected+delta)%n + n) % n
}

// Names returns the spell names in book order
func (b *SpellBook) Names() []string {
	names := make([]string, len(b.spells))
	for i, s := range b.spells {
		names[i] = s.Name()
	}
	return names
}
