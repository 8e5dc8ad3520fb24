// Package collation builds sort keys that order names by the Turkish alphabet.
package collation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Unknown is the token emitted for runes outside the alphabet.
const Unknown = "99"

// Alphabet lists the 29 letters in collation order. Rank is index+1.
const Alphabet = "abcçdefgğhıijklmnoöprsştuüvyz"

var ranks = buildRanks()

func buildRanks() map[rune]int {
	m := make(map[rune]int, 32)
	rank := 1
	for _, r := range Alphabet {
		m[r] = rank
		rank++
	}
	// circumflex variants share the rank of their base letter
	m['â'] = m['a']
	m['î'] = m['i']
	m['û'] = m['u']
	return m
}

// Rank returns the 1-based alphabet rank of a lower-case rune.
func Rank(r rune) (int, bool) {
	n, ok := ranks[r]
	return n, ok
}

// Key returns a fixed-width key: two digits per rune, 99 for unrecognized runes.
// Lexicographic order of keys follows alphabetical order of names.
func Key(name string) string {
	lower := cases.Lower(language.Turkish).String(norm.NFC.String(name))

	var b strings.Builder
	b.Grow(2 * len(lower))
	for _, r := range lower {
		n, ok := ranks[r]
		if !ok {
			b.WriteString(Unknown)
			continue
		}
		b.WriteByte(byte('0' + n/10))
		b.WriteByte(byte('0' + n%10))
	}
	return b.String()
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return Key(a) < Key(b)
}
