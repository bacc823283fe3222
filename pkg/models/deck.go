package models

// Deck holds the ordered in-memory card sequence and the navigation
// state machine: the current index and the current side. Cards are only
// appended and navigated, never removed.
//
// Every transition persists the outgoing editor text into the record
// for the side being left, so callers pass the text they are leaving
// behind instead of saving separately.
type Deck struct {
	cards   []Card
	index   int
	side    Side
	titleFn func(string) string
}

// NewDeck creates a deck seeded with a first card. titleFn derives a
// card title from raw front text; it is applied whenever a front side
// is saved.
func NewDeck(titleFn func(string) string, first Card) *Deck {
	if first.Title == "" {
		first.Title = titleFn(first.Front)
	}
	return &Deck{
		cards:   []Card{first},
		titleFn: titleFn,
	}
}

func (d *Deck) Len() int   { return len(d.cards) }
func (d *Deck) Index() int { return d.index }
func (d *Deck) Side() Side { return d.side }

// Current returns a copy of the card under the cursor.
func (d *Deck) Current() Card { return d.cards[d.index] }

// CurrentText returns the raw text of the side currently being edited.
func (d *Deck) CurrentText() string { return d.cards[d.index].Text(d.side) }

// CanPrev reports whether a previous card exists.
func (d *Deck) CanPrev() bool { return d.index > 0 }

// CanNext reports whether a following card exists.
func (d *Deck) CanNext() bool { return d.index < len(d.cards)-1 }

// SaveCurrent writes text into the current side of the current card.
// The title is recomputed only when the front side is saved.
func (d *Deck) SaveCurrent(text string) {
	c := &d.cards[d.index]
	if d.side == SideBack {
		c.Back = text
		return
	}
	c.Front = text
	c.Title = d.titleFn(text)
}

// Append persists the outgoing text, appends a new card, jumps to it
// and resets the side to front.
func (d *Deck) Append(outgoing string, c Card) {
	d.SaveCurrent(outgoing)
	if c.Title == "" {
		c.Title = d.titleFn(c.Front)
	}
	d.cards = append(d.cards, c)
	d.index = len(d.cards) - 1
	d.side = SideFront
}

// Prev moves to the previous card after persisting the outgoing text.
// It reports whether the cursor moved; the index never goes below 0.
func (d *Deck) Prev(outgoing string) bool {
	if d.index <= 0 {
		return false
	}
	d.SaveCurrent(outgoing)
	d.index--
	return true
}

// Next moves to the following card after persisting the outgoing text.
// It reports whether the cursor moved; no wraparound.
func (d *Deck) Next(outgoing string) bool {
	if d.index >= len(d.cards)-1 {
		return false
	}
	d.SaveCurrent(outgoing)
	d.index++
	return true
}

// Switch changes the edited side after persisting the outgoing text.
// Switching to the side already shown is a no-op.
func (d *Deck) Switch(side Side, outgoing string) bool {
	if side == d.side {
		return false
	}
	d.SaveCurrent(outgoing)
	d.side = side
	return true
}

// Jump moves the cursor to idx after persisting the outgoing text.
// Out-of-range indices are ignored.
func (d *Deck) Jump(idx int, outgoing string) bool {
	if idx < 0 || idx >= len(d.cards) || idx == d.index {
		return false
	}
	d.SaveCurrent(outgoing)
	d.index = idx
	return true
}

// Titles returns the card titles in deck order.
func (d *Deck) Titles() []string {
	out := make([]string, len(d.cards))
	for i, c := range d.cards {
		out[i] = c.Title
	}
	return out
}
