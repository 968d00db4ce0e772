package token

import (
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// DefaultReserved lists the markers recognized if a client does not configure
// its own set.
var DefaultReserved = []string{
	"define", "if", "else", "end", "function", "while", "=>",
}

// ReservedSet is an ordered set of reserved marker words. Insertion order is
// kept for display purposes; lookup is by exact match.
//
// A nil *ReservedSet is a valid, empty set.
type ReservedSet struct {
	words *linkedhashset.Set
}

// NewReservedSet creates a set from a list of words. Surrounding white space
// is trimmed, empty words are ignored.
func NewReservedSet(words ...string) *ReservedSet {
	rs := &ReservedSet{words: linkedhashset.New()}
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			rs.words.Add(w)
		}
	}
	return rs
}

// Contains is a predicate: is w a reserved word?
func (rs *ReservedSet) Contains(w string) bool {
	if rs == nil || rs.words == nil {
		return false
	}
	return rs.words.Contains(w)
}

// Size returns the number of reserved words.
func (rs *ReservedSet) Size() int {
	if rs == nil || rs.words == nil {
		return 0
	}
	return rs.words.Size()
}

// Words returns the reserved words in insertion order.
func (rs *ReservedSet) Words() []string {
	if rs == nil || rs.words == nil {
		return nil
	}
	words := make([]string, 0, rs.words.Size())
	for _, w := range rs.words.Values() {
		words = append(words, w.(string))
	}
	return words
}

func (rs *ReservedSet) String() string {
	return "{" + strings.Join(rs.Words(), " ") + "}"
}
