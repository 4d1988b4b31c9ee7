package freq

import (
	"fmt"
	"strings"
)

// -------------------------------------------------------------------------
// Levels

// Levels is an insertion ordered set of normalised values. The zero
// value is an empty set ready to use.
type Levels struct {
	index map[interface{}]int
	elems []interface{}
}

// NewLevels returns the set of the given values. Duplicates are kept once.
func NewLevels(init ...interface{}) *Levels {
	s := &Levels{}
	for _, v := range init {
		s.Add(v)
	}
	return s
}

func (s *Levels) String() string {
	t := make([]string, len(s.elems))
	for i, x := range s.elems {
		t[i] = fmt.Sprintf("%v", x)
	}
	return "[" + strings.Join(t, " ") + "]"
}

// Add adds x to s and returns its position. The result added is false
// if x was already present.
func (s *Levels) Add(x interface{}) (i int, added bool) {
	if s.index == nil {
		s.index = make(map[interface{}]int)
	}
	if i, ok := s.index[x]; ok {
		return i, false
	}
	s.index[x] = len(s.elems)
	s.elems = append(s.elems, x)
	return len(s.elems) - 1, true
}

// Index returns the position of x in s or -1.
func (s *Levels) Index(x interface{}) int {
	if i, ok := s.index[x]; ok {
		return i
	}
	return -1
}

// Contains reports membership of x in s.
func (s *Levels) Contains(x interface{}) bool {
	_, ok := s.index[x]
	return ok
}

// Len is the number of elements in s.
func (s *Levels) Len() int { return len(s.elems) }

// Elements returns the elements of s in insertion order.
func (s *Levels) Elements() []interface{} {
	elems := make([]interface{}, len(s.elems))
	copy(elems, s.elems)
	return elems
}
