package Trees

import (
	"golang.org/x/exp/constraints"
)

// CBSTree is the variant of BSTree for keys ordered by a user function.
type CBSTree[K any, V any, S constraints.Unsigned] struct {
	base[K, V, S]
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	//It must be a total order.
	Cmp func(K, K) int
}

// NewC empty tree ordered by cmp with room for hint entries.
func NewC[K any, V any, S constraints.Unsigned](hint S, cmp func(K, K) int) *CBSTree[K, V, S] {
	return &CBSTree[K, V, S]{makeBase[K, V, S](hint), cmp}
}

// FromC is From using cmp to check ks.
func FromC[K any, V any, S constraints.Unsigned](ks []K, vs []V, cmp func(K, K) int, safe bool) *CBSTree[K, V, S] {
	if safe {
		for i := 1; i < len(ks); i++ {
			if cmp(ks[i-1], ks[i]) >= 0 {
				panic(InvalidSliceError{i, ks[i-1], ks[i]})
			}
		}
	}
	return &CBSTree[K, V, S]{fromBase[K, V, S](ks, vs), cmp}
}

// Insert [Map.Insert].
// Time: O(D)
func (u *CBSTree[K, V, S]) Insert(k K, v V) {
	var p S
	right := false
	for curI := u.root; curI != 0; {
		if order := u.Cmp(k, u.ks[curI-1]); order < 0 {
			p, right, curI = curI, false, u.ifs[curI].l
		} else if order > 0 {
			p, right, curI = curI, true, u.ifs[curI].r
		} else {
			u.vs[curI-1] = v
			return
		}
	}
	u.attach(p, right, k, v)
}

// Remove [Map.Remove].
// Time: O(D)
func (u *CBSTree[K, V, S]) Remove(k K) bool {
	for curI := &u.root; *curI != 0; {
		if order := u.Cmp(k, u.ks[*curI-1]); order < 0 {
			curI = &u.ifs[*curI].l
		} else if order > 0 {
			curI = &u.ifs[*curI].r
		} else {
			u.unlink(curI)
			return true
		}
	}
	return false
}

func (u *CBSTree[K, V, S]) find(k K) S {
	for curI := u.root; curI != 0; {
		if order := u.Cmp(k, u.ks[curI-1]); order < 0 {
			curI = u.ifs[curI].l
		} else if order > 0 {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// Get [Map.Get].
// Time: O(D); Space: O(1)
func (u *CBSTree[K, V, S]) Get(k K) (V, bool) {
	if i := u.find(k); i != 0 {
		return u.vs[i-1], true
	}
	return *new(V), false
}

// Has [Map.Has]
// Time: O(D); Space: O(1)
func (u *CBSTree[K, V, S]) Has(k K) bool {
	return u.find(k) != 0
}

// Corrupt [Map.Corrupt]
// Time: O(n); Space: O(n)
func (u *CBSTree[K, V, S]) Corrupt() bool {
	return u.corrupt(u.Cmp)
}
