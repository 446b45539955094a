package core

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"time"
)

// idAlphabet is the set the random id suffix is drawn from: uppercase
// alphanumerics with the easily confused characters (0, O, 1, I, L) removed.
const idAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const idSuffixLen = 4

// IDGenerator produces short human-readable transaction identifiers of the
// form PREFIX-YYYYMMDD-SUFFIX. Collisions are not checked for: with a
// 31-character alphabet and 4 positions the odds within a single low-volume
// session are accepted as negligible.
type IDGenerator struct {
	rand io.Reader
}

// NewIDGenerator creates a generator drawing randomness from r.
// Pass nil to use crypto/rand.
func NewIDGenerator(r io.Reader) *IDGenerator {
	if r == nil {
		r = rand.Reader
	}
	return &IDGenerator{rand: r}
}

// NewID builds an identifier from the category and date: the first three
// characters of the category uppercased (shorter categories are used as-is),
// the date as YYYYMMDD, and a random 4-character suffix, joined with dashes.
func (g *IDGenerator) NewID(category string, date Date) string {
	prefix := category
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	prefix = strings.ToUpper(prefix)
	return prefix + "-" + date.Compact() + "-" + g.suffix()
}

func (g *IDGenerator) suffix() string {
	buf := make([]byte, idSuffixLen)
	if _, err := io.ReadFull(g.rand, buf); err != nil {
		// Fallback to a timestamp-derived suffix if the random source fails
		return fmt.Sprintf("%04d", time.Now().UnixNano()%10000)
	}
	out := make([]byte, idSuffixLen)
	for i, b := range buf {
		out[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(out)
}
