package Trees

import (
	"io"
	"sync"

	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// SyncTree guards a Map with a single RWMutex. Modifications, and InOrder with a nil buffer,
// hold the write lock; everything else holds the read lock. The callbacks run while the lock
// is held, so they mustn't call back into the SyncTree.
type SyncTree[K any, V any, S constraints.Unsigned] struct {
	m sync.RWMutex
	t Map[K, V, S]
}

// NewSync wraps t, which mustn't be used directly afterward.
func NewSync[K any, V any, S constraints.Unsigned](t Map[K, V, S]) *SyncTree[K, V, S] {
	return &SyncTree[K, V, S]{t: t}
}

func (u *SyncTree[K, V, S]) Insert(k K, v V) {
	u.m.Lock()
	defer u.m.Unlock()
	u.t.Insert(k, v)
}

func (u *SyncTree[K, V, S]) Remove(k K) bool {
	u.m.Lock()
	defer u.m.Unlock()
	return u.t.Remove(k)
}

func (u *SyncTree[K, V, S]) Clear() {
	u.m.Lock()
	defer u.m.Unlock()
	u.t.Clear()
}

func (u *SyncTree[K, V, S]) Get(k K) (V, bool) {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.Get(k)
}

func (u *SyncTree[K, V, S]) Has(k K) bool {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.Has(k)
}

func (u *SyncTree[K, V, S]) Min() (V, bool) {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.Min()
}

func (u *SyncTree[K, V, S]) Max() (V, bool) {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.Max()
}

func (u *SyncTree[K, V, S]) MinKey() (K, bool) {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.MinKey()
}

func (u *SyncTree[K, V, S]) MaxKey() (K, bool) {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.MaxKey()
}

func (u *SyncTree[K, V, S]) Len() S {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.Len()
}

func (u *SyncTree[K, V, S]) Height() S {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.Height()
}

func (u *SyncTree[K, V, S]) InOrder(f func(K, V) bool, st []S) []S {
	if st == nil {
		u.m.Lock()
		defer u.m.Unlock()
	} else {
		u.m.RLock()
		defer u.m.RUnlock()
	}
	return u.t.InOrder(f, st)
}

func (u *SyncTree[K, V, S]) InOrderR(f func(K, V) bool, st []S) []S {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.InOrderR(f, st)
}

func (u *SyncTree[K, V, S]) WidthFirst(f func(int, K, V) bool, q Queues.ArrayQueue[S]) {
	u.m.RLock()
	defer u.m.RUnlock()
	u.t.WidthFirst(f, q)
}

func (u *SyncTree[K, V, S]) Entries() []Entry[K, V] {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.Entries()
}

func (u *SyncTree[K, V, S]) Levels() [][]Entry[K, V] {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.Levels()
}

func (u *SyncTree[K, V, S]) Print(w io.Writer) error {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.Print(w)
}

func (u *SyncTree[K, V, S]) PrintWidthFirst(w io.Writer) error {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.PrintWidthFirst(w)
}

func (u *SyncTree[K, V, S]) Corrupt() bool {
	u.m.RLock()
	defer u.m.RUnlock()
	return u.t.Corrupt()
}

var (
	_ Map[int, string, uint] = (*BSTree[int, string, uint])(nil)
	_ Map[int, string, uint] = (*CBSTree[int, string, uint])(nil)
	_ Map[int, string, uint] = (*SyncTree[int, string, uint])(nil)
)
