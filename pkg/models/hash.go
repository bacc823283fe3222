package models

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Hash returns a deterministic BLAKE3 hash of the card content.
// Autosave compares hashes to skip writes when nothing changed.
func (c Card) Hash() string {
	h := blake3.New()

	// Null delimiters keep field boundaries unambiguous.
	h.Write([]byte(c.Title))
	h.Write([]byte{0})
	h.Write([]byte(c.Front))
	h.Write([]byte{0})
	h.Write([]byte(c.Back))

	return hex.EncodeToString(h.Sum(nil))
}
