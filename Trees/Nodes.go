package Trees

import (
	"golang.org/x/exp/constraints"
	"math/bits"
)

// A node in the tree: indexes of the children in the arena. 0 means absent.
// The zero value is a leaf.
type info[S constraints.Unsigned] struct {
	l, r S
}

// Entry is a key and a copy of its value, as handed out by the collectors.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// buildIfs of size n that represents a complete binary tree over the indexes 1..n, so that
// the in-order of the indexes is ascending.
func buildIfs[S constraints.Unsigned](n S) (root S, ifs []info[S]) {
	ifs = make([]info[S], int(n)+1)
	if n == 0 {
		return
	}
	st := make([][3]S, 0, bits.Len64(uint64(n))+1) //[left,right,mid]
	{
		root = 1 + (n-1)>>1
		st = append(st, [3]S{1, n, root})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top[0] < top[2] {
			nr := top[2] - 1
			ifs[top[2]].l = top[0] + (nr-top[0])>>1
			st = append(st, [3]S{top[0], nr, ifs[top[2]].l})
		}
		if top[2] < top[1] {
			nl := top[2] + 1
			ifs[top[2]].r = nl + (top[1]-nl)>>1
			st = append(st, [3]S{nl, top[1], ifs[top[2]].r})
		}
	}
	return
}
