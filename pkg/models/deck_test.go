package models

import (
	"strings"
	"testing"
)

// naiveTitle mimics title derivation without pulling in the transform
// package: first "# " line wins, default otherwise.
func naiveTitle(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return DefaultTitle
}

func newTestDeck() *Deck {
	return NewDeck(naiveTitle, Card{Front: "# First\n\nHello"})
}

func TestNewDeckDerivesTitle(t *testing.T) {
	d := newTestDeck()
	if got := d.Current().Title; got != "First" {
		t.Fatalf("title = %q, want %q", got, "First")
	}
	if d.Side() != SideFront {
		t.Fatalf("new deck should start on the front side")
	}
}

func TestPrevNextBounded(t *testing.T) {
	d := newTestDeck()

	if d.Prev("x") {
		t.Fatalf("Prev moved below index 0")
	}
	if d.Next("x") {
		t.Fatalf("Next moved past the last card")
	}
	if d.Index() != 0 {
		t.Fatalf("index = %d after bounded moves, want 0", d.Index())
	}

	d.Append("# First\n\nHello", Card{Front: "# Second"})
	if d.Index() != 1 {
		t.Fatalf("index = %d after append, want 1", d.Index())
	}
	if d.Next("x") {
		t.Fatalf("Next wrapped around")
	}
	if !d.Prev("# Second") {
		t.Fatalf("Prev refused a legal move")
	}
	if d.Index() != 0 {
		t.Fatalf("index = %d, want 0", d.Index())
	}
}

func TestTransitionsPersistOutgoingText(t *testing.T) {
	d := newTestDeck()
	d.Append("# Edited First", Card{Front: "# Second"})

	// Append must have saved the outgoing front text and recomputed the title.
	first := d.cards[0]
	if first.Front != "# Edited First" {
		t.Fatalf("front = %q, want persisted outgoing text", first.Front)
	}
	if first.Title != "Edited First" {
		t.Fatalf("title = %q, want %q", first.Title, "Edited First")
	}
}

func TestSwitchSideKeepsTitle(t *testing.T) {
	d := newTestDeck()

	if !d.Switch(SideBack, "# First\n\nHello") {
		t.Fatalf("Switch to back refused")
	}
	if d.Switch(SideBack, "ignored") {
		t.Fatalf("Switch to the current side should be a no-op")
	}

	// Saving back text must not touch the title.
	d.SaveCurrent("# Not A Title\nback body")
	if got := d.Current().Title; got != "First" {
		t.Fatalf("title changed on back save: %q", got)
	}
	if got := d.Current().Back; got != "# Not A Title\nback body" {
		t.Fatalf("back = %q", got)
	}

	if !d.Switch(SideFront, d.CurrentText()) {
		t.Fatalf("Switch to front refused")
	}
	if d.CurrentText() != "# First\n\nHello" {
		t.Fatalf("front text = %q after side round-trip", d.CurrentText())
	}
}

func TestAppendResetsSideToFront(t *testing.T) {
	d := newTestDeck()

	if !d.Switch(SideBack, d.CurrentText()) {
		t.Fatalf("Switch to back refused")
	}
	d.Append("back body", Card{Front: "# Second"})

	if d.Side() != SideFront {
		t.Fatalf("side = %v after append, want front", d.Side())
	}
	if d.Index() != 1 {
		t.Fatalf("index = %d after append, want 1", d.Index())
	}
	// The outgoing text landed on the old card's back.
	if got := d.cards[0].Back; got != "back body" {
		t.Fatalf("back = %q, want persisted outgoing text", got)
	}
}

func TestJumpBounds(t *testing.T) {
	d := newTestDeck()
	d.Append(d.CurrentText(), Card{Front: "# Second"})
	d.Append(d.CurrentText(), Card{Front: "# Third"})

	if d.Jump(-1, "x") || d.Jump(3, "x") {
		t.Fatalf("Jump accepted an out-of-range index")
	}
	if !d.Jump(0, d.CurrentText()) {
		t.Fatalf("Jump refused a legal index")
	}
	if d.Index() != 0 {
		t.Fatalf("index = %d after jump, want 0", d.Index())
	}
}

func TestTitles(t *testing.T) {
	d := newTestDeck()
	d.Append(d.CurrentText(), Card{Front: "no heading here"})
	got := d.Titles()
	if len(got) != 2 || got[0] != "First" || got[1] != DefaultTitle {
		t.Fatalf("titles = %v", got)
	}
}

func TestCardHashChangesWithContent(t *testing.T) {
	a := Card{Front: "# A", Back: "b", Title: "A"}
	b := a
	if a.Hash() != b.Hash() {
		t.Fatalf("identical cards should hash identically")
	}
	b.Back = "changed"
	if a.Hash() == b.Hash() {
		t.Fatalf("hash did not change with content")
	}
}
