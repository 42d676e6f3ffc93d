package orbs

import (
	"testing"

	"github.com/matryer/is"
)

func TestStandardSet(t *testing.T) {
	is := is.New(t)
	s := StandardSet(4)
	is.Equal(s, Set{1, 2, 3, 4})
	is.Equal(s.Distinct(), 4)
	is.True(s.Contains(3))
	is.True(!s.Contains(5))
	is.True(!s.Contains(Empty))
}

func TestDistinctIgnoresDuplicatesAndEmpty(t *testing.T) {
	is := is.New(t)
	is.Equal(Set{1, 1, 2, Empty}.Distinct(), 2)
	is.Equal(Set{}.Distinct(), 0)
}

func TestRune(t *testing.T) {
	is := is.New(t)
	is.Equal(Empty.Rune(), '.')
	is.Equal(Orb(1).Rune(), 'A')
	is.Equal(Orb(26).Rune(), 'Z')
}

func TestCloneIsIndependent(t *testing.T) {
	is := is.New(t)
	s := StandardSet(3)
	c := s.Clone()
	c[0] = 9
	is.Equal(s[0], Orb(1))
}
