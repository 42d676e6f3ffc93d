// Package orbs defines the token domain for the match-three board: the Orb
// value itself, the cleared-cell sentinel, and ordered sets of playable types.
package orbs

// An Orb is a single typed token occupying one grid cell. Equality is the
// only operation matching logic ever needs.
type Orb uint8

// Empty marks a cell that was cleared by cascade resolution. It is never a
// playable orb type and must not survive past the gravity pass.
const Empty Orb = 0

// Rune returns the display character for an orb: '.' for a cleared cell,
// letters starting at 'A' otherwise.
func (o Orb) Rune() rune {
	if o == Empty {
		return '.'
	}
	return 'A' + rune(o) - 1
}

// A Set is an ordered list of playable orb types.
type Set []Orb

// StandardSet returns the first n orb types, A through whatever.
func StandardSet(n int) Set {
	s := make(Set, n)
	for i := range s {
		s[i] = Orb(i + 1)
	}
	return s
}

// Contains reports whether o is a member of the set.
func (s Set) Contains(o Orb) bool {
	for _, m := range s {
		if m == o {
			return true
		}
	}
	return false
}

// Distinct counts the distinct playable (non-empty) types in the set.
func (s Set) Distinct() int {
	seen := make(map[Orb]bool, len(s))
	for _, m := range s {
		if m != Empty {
			seen[m] = true
		}
	}
	return len(seen)
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	copy(c, s)
	return c
}
