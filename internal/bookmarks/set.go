package bookmarks

import "sort"

// Set holds the bookmarked verse indexes of one chapter.
type Set map[int]struct{}

// NewSet builds a set from indexes, dropping duplicates and negatives.
func NewSet(indexes ...int) Set {
	s := make(Set, len(indexes))
	for _, i := range indexes {
		s.Add(i)
	}
	return s
}

func (s Set) Has(i int) bool {
	_, ok := s[i]
	return ok
}

func (s Set) Add(i int) {
	if i >= 0 {
		s[i] = struct{}{}
	}
}

func (s Set) Remove(i int) {
	delete(s, i)
}

// Toggle flips membership of i and reports whether it is now present.
func (s Set) Toggle(i int) bool {
	if s.Has(i) {
		s.Remove(i)
		return false
	}
	s.Add(i)
	return s.Has(i)
}

func (s Set) Clone() Set {
	c := make(Set, len(s))
	for i := range s {
		c[i] = struct{}{}
	}
	return c
}

// Indexes returns the members in ascending order.
func (s Set) Indexes() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Lowest returns the smallest member.
func (s Set) Lowest() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	lowest := -1
	for i := range s {
		if lowest < 0 || i < lowest {
			lowest = i
		}
	}
	return lowest, true
}
