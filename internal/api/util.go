package api

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"regexp"
	"strings"
)

// Ambiguous glyphs (I, O, 0, 1) are excluded from lobby codes.
const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
const codeLength = 5

// generateJoinCode creates a short code for joining matches.
func generateJoinCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}

var joinCodeRegex = regexp.MustCompile("^[A-HJ-NP-Z2-9]{5}$")

func normalizeJoinCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// newSeed draws a deck seed from the OS entropy source so match decks are
// not predictable from the clock.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.Int63()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
