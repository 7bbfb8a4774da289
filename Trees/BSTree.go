package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// BSTree is an unbalanced binary search tree for keys that are cmp.Ordered.
type BSTree[K cmp.Ordered, V any, S constraints.Unsigned] struct {
	base[K, V, S]
}

// New empty tree with room for hint entries.
func New[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *BSTree[K, V, S] {
	return &BSTree[K, V, S]{makeBase[K, V, S](hint)}
}

// From the given keys and values, directly build a balanced tree. ks must be sorted in ascending order without
// repetitions and vs[i] is the value of ks[i]. If safe==true, this function will check if ks is sorted and panic
// with InvalidSliceError otherwise; if safe==false it's up to the caller and an unsorted ks gives a corrupt tree.
// It always panics with LengthMismatchError if len(ks)!=len(vs).
// The slices are handed to the tree and mustn't be used by the caller later.
// Time: O(n).
func From[K cmp.Ordered, V any, S constraints.Unsigned](ks []K, vs []V, safe bool) *BSTree[K, V, S] {
	if safe {
		for i := 1; i < len(ks); i++ {
			if !(ks[i-1] < ks[i]) {
				panic(InvalidSliceError{i, ks[i-1], ks[i]})
			}
		}
	}
	return &BSTree[K, V, S]{fromBase[K, V, S](ks, vs)}
}

// Insert [Map.Insert].
// Time: O(D)
func (u *BSTree[K, V, S]) Insert(k K, v V) {
	var p S
	right := false
	for curI := u.root; curI != 0; {
		if ck := u.ks[curI-1]; k < ck {
			p, right, curI = curI, false, u.ifs[curI].l
		} else if k > ck {
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
func (u *BSTree[K, V, S]) Remove(k K) bool {
	for curI := &u.root; *curI != 0; {
		if ck := u.ks[*curI-1]; k < ck {
			curI = &u.ifs[*curI].l
		} else if k > ck {
			curI = &u.ifs[*curI].r
		} else {
			u.unlink(curI)
			return true
		}
	}
	return false
}

func (u *BSTree[K, V, S]) find(k K) S {
	for curI := u.root; curI != 0; {
		if ck := u.ks[curI-1]; k < ck {
			curI = u.ifs[curI].l
		} else if k > ck {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// Get [Map.Get].
// Time: O(D); Space: O(1)
func (u *BSTree[K, V, S]) Get(k K) (V, bool) {
	if i := u.find(k); i != 0 {
		return u.vs[i-1], true
	}
	return *new(V), false
}

// Has [Map.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V, S]) Has(k K) bool {
	return u.find(k) != 0
}

// Corrupt [Map.Corrupt]
// Time: O(n); Space: O(n)
func (u *BSTree[K, V, S]) Corrupt() bool {
	return u.corrupt(cmp.Compare[K])
}
