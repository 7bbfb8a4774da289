package comparisons

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchmarkItemCount = 1 << 14

// keys in random order, the favorable case for an unbalanced tree.
var keys = rand.New(rand.NewSource(0)).Perm(benchmarkItemCount)

type kv struct{ k, v int }

func (a kv) Less(than llrb.Item) bool {
	return a.k < than.(kv).k
}

func lessKV(a, b kv) bool {
	return a.k < b.k
}

func setupBSTree(b *testing.B) *Trees.BSTree[int, int, uint32] {
	b.Helper()
	m := Trees.New[int, int, uint32](benchmarkItemCount)
	for _, k := range keys {
		m.Insert(k, k)
	}
	return m
}

func setupRBTree(b *testing.B) *redblacktree.Tree {
	b.Helper()
	m := redblacktree.NewWithIntComparator()
	for _, k := range keys {
		m.Put(k, k)
	}
	return m
}

func setupBTree(b *testing.B) *btree.BTreeG[kv] {
	b.Helper()
	m := btree.NewG[kv](32, lessKV)
	for _, k := range keys {
		m.ReplaceOrInsert(kv{k, k})
	}
	return m
}

func setupLLRB(b *testing.B) *llrb.LLRB {
	b.Helper()
	m := llrb.New()
	for _, k := range keys {
		m.ReplaceOrInsert(kv{k, k})
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[int, int] {
	b.Helper()
	m := hashmap.New[int, int]()
	for _, k := range keys {
		m.Set(k, k)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[int, int] {
	b.Helper()
	m := haxmap.New[int, int]()
	for _, k := range keys {
		m.Set(k, k)
	}
	return m
}

func BenchmarkInsertBSTree(b *testing.B) {
	for range b.N {
		setupBSTree(b)
	}
}

func BenchmarkInsertRBTree(b *testing.B) {
	for range b.N {
		setupRBTree(b)
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	for range b.N {
		setupBTree(b)
	}
}

func BenchmarkInsertLLRB(b *testing.B) {
	for range b.N {
		setupLLRB(b)
	}
}

func BenchmarkReadBSTree(b *testing.B) {
	m := setupBSTree(b)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadRBTree(b *testing.B) {
	m := setupRBTree(b)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j.(int) != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadBTree(b *testing.B) {
	m := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchmarkItemCount; i++ {
			if j, _ := m.Get(kv{k: i}); j.v != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadLLRB(b *testing.B) {
	m := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchmarkItemCount; i++ {
			if j := m.Get(kv{k: i}); j.(kv).v != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for i := 0; i < benchmarkItemCount; i++ {
			if j, _ := m.Get(i); j != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkRemoveBSTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		m := setupBSTree(b)
		b.StartTimer()
		for _, k := range keys {
			m.Remove(k)
		}
	}
}

func BenchmarkRemoveRBTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		m := setupRBTree(b)
		b.StartTimer()
		for _, k := range keys {
			m.Remove(k)
		}
	}
}

func BenchmarkRemoveBTree(b *testing.B) {
	for range b.N {
		b.StopTimer()
		m := setupBTree(b)
		b.StartTimer()
		for _, k := range keys {
			m.Delete(kv{k: k})
		}
	}
}

func BenchmarkRemoveLLRB(b *testing.B) {
	for range b.N {
		b.StopTimer()
		m := setupLLRB(b)
		b.StartTimer()
		for _, k := range keys {
			m.Delete(kv{k: k})
		}
	}
}

func BenchmarkInOrderBSTree(b *testing.B) {
	m := setupBSTree(b)
	b.ResetTimer()
	for range b.N {
		m.InOrder(func(int, int) bool { return true }, nil)
	}
}

func BenchmarkInOrderBTree(b *testing.B) {
	m := setupBTree(b)
	b.ResetTimer()
	for range b.N {
		m.Ascend(func(kv) bool { return true })
	}
}

func BenchmarkInOrderLLRB(b *testing.B) {
	m := setupLLRB(b)
	b.ResetTimer()
	for range b.N {
		m.AscendGreaterOrEqual(m.Min(), func(llrb.Item) bool { return true })
	}
}
