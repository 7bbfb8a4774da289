package Trees

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/go-bst/Queues"
	"github.com/g-m-twostay/go-bst/Trees/internal"
	"golang.org/x/exp/constraints"
)

// base is the arena shared by the trees. Node i has its children in ifs[i] and its entry in ks[i-1], vs[i-1].
type base[K any, V any, S constraints.Unsigned] struct {
	root, free, sz S         // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	ifs            []info[S] // ifs[0] is the nil node and stays zero. len(ifs)=len(ks)+1
	ks             []K
	vs             []V
}

func makeBase[K any, V any, S constraints.Unsigned](hint S) base[K, V, S] {
	return base[K, V, S]{ifs: make([]info[S], 1, int(hint)+1), ks: make([]K, 0, hint), vs: make([]V, 0, hint)}
}

func fromBase[K any, V any, S constraints.Unsigned](ks []K, vs []V) base[K, V, S] {
	if len(ks) != len(vs) {
		panic(LengthMismatchError{len(ks), len(vs)})
	}
	if uint64(len(ks)) > uint64(^S(0)) {
		panic(CapacityError{uint64(^S(0))})
	}
	root, ifs := buildIfs(S(len(ks)))
	return base[K, V, S]{root: root, sz: S(len(ks)), ifs: ifs, ks: ks, vs: vs}
}

// addFree index once. The entry is zeroed so that the arena doesn't keep it alive.
func (u *base[K, V, S]) addFree(a S) {
	u.ks[a-1], u.vs[a-1] = *new(K), *new(V)
	u.ifs[a] = info[S]{u.free, 0}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[K, V, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a leaf holding k and v. Holes are filled first before appending to the arena, which can't grow past
// ^S(0) entries since index 0 is nil.
func (u *base[K, V, S]) alloc(k K, v V) (i S) {
	if i = u.popFree(); i == 0 {
		if uint64(len(u.ks)) >= uint64(^S(0)) {
			panic(CapacityError{uint64(^S(0))})
		}
		u.ifs = append(u.ifs, info[S]{})
		u.ks, u.vs = append(u.ks, k), append(u.vs, v)
		return S(len(u.ks))
	}
	u.ifs[i] = info[S]{}
	u.ks[i-1], u.vs[i-1] = k, v
	return
}

// attach a new leaf for k and v below p, on the right if right is true. p==0 means the tree is empty.
func (u *base[K, V, S]) attach(p S, right bool, k K, v V) {
	// alloc may grow ifs, so the link is written through the index afterward.
	i := u.alloc(k, v)
	if p == 0 {
		u.root = i
	} else if right {
		u.ifs[p].r = i
	} else {
		u.ifs[p].l = i
	}
	u.sz++
}

// unlink the node *link points to. link is either &u.root or the address of a child field in ifs.
// A node with 2 children keeps its index and left link; it takes the entry of its successor, the minimum of
// its right subtree, which is then spliced out instead.
func (u *base[K, V, S]) unlink(link *S) {
	i := *link
	if cur := u.ifs[i]; cur.l == 0 {
		*link = cur.r
	} else if cur.r == 0 {
		*link = cur.l
	} else {
		si := &u.ifs[i].r
		for u.ifs[*si].l != 0 {
			si = &u.ifs[*si].l
		}
		s := *si
		u.ks[i-1], u.vs[i-1] = u.ks[s-1], u.vs[s-1]
		*si = u.ifs[s].r
		i = s
	}
	u.addFree(i)
	u.sz--
}

// Len is the number of entries.
// Time: O(1)
func (u *base[K, V, S]) Len() S {
	return u.sz
}

func (u *base[K, V, S]) minI() S {
	curI := u.root
	for curI != 0 && u.ifs[curI].l != 0 {
		curI = u.ifs[curI].l
	}
	return curI
}

func (u *base[K, V, S]) maxI() S {
	curI := u.root
	for curI != 0 && u.ifs[curI].r != 0 {
		curI = u.ifs[curI].r
	}
	return curI
}

// Min value of the tree, the one of the smallest key.
// Time: O(D)
func (u *base[K, V, S]) Min() (V, bool) {
	if i := u.minI(); i != 0 {
		return u.vs[i-1], true
	}
	return *new(V), false
}

// Max value of the tree, the one of the greatest key.
// Time: O(D)
func (u *base[K, V, S]) Max() (V, bool) {
	if i := u.maxI(); i != 0 {
		return u.vs[i-1], true
	}
	return *new(V), false
}

func (u *base[K, V, S]) MinKey() (K, bool) {
	if i := u.minI(); i != 0 {
		return u.ks[i-1], true
	}
	return *new(K), false
}

func (u *base[K, V, S]) MaxKey() (K, bool) {
	if i := u.maxI(); i != 0 {
		return u.ks[i-1], true
	}
	return *new(K), false
}

// Height is the number of nodes on the longest path from the root to a leaf.
// Time: O(n); Space: O(D)
func (u *base[K, V, S]) Height() (h S) {
	if u.root == 0 {
		return
	}
	st := [][2]S{{u.root, 1}} //[index,depth]
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, top[1])
		if cur := u.ifs[top[0]]; cur.l != 0 {
			st = append(st, [2]S{cur.l, top[1] + 1})
		}
		if cur := u.ifs[top[0]]; cur.r != 0 {
			st = append(st, [2]S{cur.r, top[1] + 1})
		}
	}
	return
}

// Clear the tree. The arena keeps its capacity, its content is zeroed.
func (u *base[K, V, S]) Clear() {
	clear(u.ks)
	clear(u.vs)
	clear(u.ifs)
	u.ifs, u.ks, u.vs = u.ifs[:1], u.ks[:0], u.vs[:0]
	u.root, u.free, u.sz = 0, 0, 0
}

// InOrder traversal of the tree in ascending order of keys; f returning false stops it. When st==nil, uses morris
// traversal, which threads right links during the walk and restores them before returning; otherwise, use normal
// stack based iterative traversal and returns st for reuse.
// The tree mustn't be modified by f.
func (u *base[K, V, S]) InOrder(f func(K, V) bool, st []S) []S {
	if curI := u.root; st == nil { //use morris traversal
	iter1:
		for curI != 0 {
			if u.ifs[curI].l == 0 {
				if !f(u.ks[curI-1], u.vs[curI-1]) {
					curI = u.ifs[curI].r
					break
				}
				curI = u.ifs[curI].r
			} else {
				for next := &u.ifs[u.ifs[curI].l]; ; next = &u.ifs[next.r] {
					if next.r == 0 {
						next.r = curI
						curI = u.ifs[curI].l
						break
					} else if next.r == curI {
						next.r = 0
						if !f(u.ks[curI-1], u.vs[curI-1]) {
							curI = u.ifs[curI].r
							break iter1
						}
						curI = u.ifs[curI].r
						break
					}
				}
			}
		}
		for curI != 0 { //deplete the remaining traversal.
			if u.ifs[curI].l == 0 {
				curI = u.ifs[curI].r
			} else {
				for next := &u.ifs[u.ifs[curI].l]; ; next = &u.ifs[next.r] {
					if next.r == 0 {
						next.r = curI
						curI = u.ifs[curI].l
						break
					} else if next.r == curI {
						next.r = 0
						curI = u.ifs[curI].r
						break
					}
				}
			}
		}
	} else { //use normal traversal
		for st = st[:0]; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
		for len(st) > 0 {
			curI, st = st[len(st)-1], st[:len(st)-1]
			if !f(u.ks[curI-1], u.vs[curI-1]) {
				break
			}
			for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
				st = append(st, curI)
			}
		}
	}
	return st
}

// InOrderR is InOrder in descending order of keys. It's always stack based; st==nil is allowed.
func (u *base[K, V, S]) InOrderR(f func(K, V) bool, st []S) []S {
	curI := u.root
	for st = st[:0]; curI != 0; curI = u.ifs[curI].r {
		st = append(st, curI)
	}
	for len(st) > 0 {
		curI, st = st[len(st)-1], st[:len(st)-1]
		if !f(u.ks[curI-1], u.vs[curI-1]) {
			break
		}
		for curI = u.ifs[curI].l; curI != 0; curI = u.ifs[curI].r {
			st = append(st, curI)
		}
	}
	return st
}

// WidthFirst traversal of the tree. f gets the depth of the node, starting from 0 at the root, and returning false
// stops it. Both children are queued even when absent; absent ones are dropped when dequeued. q is cleared before
// use; when q==nil a new queue is made.
// Time: O(n); Space: O(width)
func (u *base[K, V, S]) WidthFirst(f func(int, K, V) bool, q Queues.ArrayQueue[S]) {
	if q == nil {
		q = Queues.MakeArrayQueue[S](16)
	} else {
		q.Clear()
	}
	q.Push(u.root)
	for level := 0; !q.Empty(); level++ {
		for n := q.Size(); n > 0; n-- {
			curI, _ := q.Pop()
			if curI == 0 {
				continue
			}
			if !f(level, u.ks[curI-1], u.vs[curI-1]) {
				q.Clear()
				return
			}
			q.Push(u.ifs[curI].l)
			q.Push(u.ifs[curI].r)
		}
	}
}

// Entries in ascending order of keys.
func (u *base[K, V, S]) Entries() []Entry[K, V] {
	es := make([]Entry[K, V], 0, u.sz)
	u.InOrder(func(k K, v V) bool {
		es = append(es, Entry[K, V]{k, v})
		return true
	}, make([]S, 0, 16))
	return es
}

// Levels of the tree from the root down, each in left to right order.
func (u *base[K, V, S]) Levels() (ls [][]Entry[K, V]) {
	u.WidthFirst(func(level int, k K, v V) bool {
		if level == len(ls) {
			ls = append(ls, nil)
		}
		ls[level] = append(ls[level], Entry[K, V]{k, v})
		return true
	}, nil)
	return
}

// Print the entries in ascending order of keys as "[key:k,value:v] ", followed by a newline.
func (u *base[K, V, S]) Print(w io.Writer) (err error) {
	u.InOrder(func(k K, v V) bool {
		_, err = fmt.Fprintf(w, "[key:%v,value:%v] ", k, v)
		return err == nil
	}, make([]S, 0, 16))
	if err == nil {
		_, err = io.WriteString(w, "\n")
	}
	return
}

// PrintWidthFirst prints the entries in width first order as "[k,v]". Unlike Print, no newline is written at the end.
func (u *base[K, V, S]) PrintWidthFirst(w io.Writer) (err error) {
	u.WidthFirst(func(_ int, k K, v V) bool {
		_, err = fmt.Fprintf(w, "[%v,%v]", k, v)
		return err == nil
	}, nil)
	return
}

// corrupt checks the arena against cmp: keys strictly ordered along every path, every index either reachable once
// from root or in the free list once, and sz matching the reachable count.
func (u *base[K, V, S]) corrupt(cmp func(K, K) int) bool {
	if len(u.ks) != len(u.vs) || len(u.ifs) != len(u.ks)+1 || u.ifs[0] != (info[S]{}) {
		return true
	}
	seen := internal.NewBitArray(len(u.ifs))
	seen.Up(0)
	for a := u.free; a != 0; a = u.ifs[a].l {
		if int(a) >= len(u.ifs) || seen.TestAndUp(int(a)) {
			return true
		}
	}
	var count S
	st := [][3]S{{u.root, 0, 0}} //[index,lower bound index,upper bound index], 0 is unbounded
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top[0] == 0 {
			continue
		}
		if int(top[0]) >= len(u.ifs) || seen.TestAndUp(int(top[0])) {
			return true
		}
		k := u.ks[top[0]-1]
		if top[1] != 0 && cmp(u.ks[top[1]-1], k) >= 0 || top[2] != 0 && cmp(k, u.ks[top[2]-1]) >= 0 {
			return true
		}
		count++
		st = append(st, [3]S{u.ifs[top[0]].l, top[1], top[0]}, [3]S{u.ifs[top[0]].r, top[0], top[2]})
	}
	return count != u.sz || seen.Count() != len(u.ifs)
}
