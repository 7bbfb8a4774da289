package Trees

import (
	"io"

	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// Map represents an ordered map implemented as a binary search tree whose nodes live in an arena
// indexed by S. Index 0 is reserved, so a tree holds at most the maximum of S entries; choose S as
// a wide upperbound of the size of the tree.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Min on
// an empty tree, the return value will be (x V, false bool), and x is
// the zero value of V.
// Values are handed out by copy, never as pointers into the tree.
// Nothing here is safe for concurrent use; see SyncTree.
// All methods are implemented iteratively, so the depth of the tree,
// which is unbounded, never grows the goroutine stack.
type Map[K any, V any, S constraints.Unsigned] interface {
	//Insert k with value v. If k is already in the Map, only its value is replaced.
	//The tree isn't rebalanced, so its shape depends on the order of insertions.
	//Panics with CapacityError when k is new and the tree already holds the maximum of S entries.
	Insert(k K, v V)
	//Get the value of k.
	Get(k K) (V, bool)
	//Has k. Same as the second return value of Get.
	Has(k K) bool
	//Remove k. Returns true if k was in the Map. A node with two children
	//is replaced by its successor, the minimum of its right subtree.
	Remove(k K) bool
	//Min is the value of the smallest key.
	Min() (V, bool)
	//Max is the value of the greatest key.
	Max() (V, bool)
	MinKey() (K, bool)
	MaxKey() (K, bool)
	//Len of the Map.
	Len() S
	//Height of the tree, 0 when empty.
	Height() S
	//InOrder calls f on every entry in ascending order of keys until f returns false.
	//st is a reusable buffer and is returned grown. When st==nil, the traversal
	//uses no buffer but temporarily modifies the tree, so it counts as a write.
	//The tree must not be modified by f.
	InOrder(f func(K, V) bool, st []S) []S
	//InOrderR is InOrder in descending order. It never modifies the tree.
	InOrderR(f func(K, V) bool, st []S) []S
	//WidthFirst calls f on every entry level by level, left to right, with the
	//depth of the entry, until f returns false. q is a reusable queue; it may be nil.
	WidthFirst(f func(int, K, V) bool, q Queues.ArrayQueue[S])
	//Entries in ascending order of keys.
	Entries() []Entry[K, V]
	//Levels of the tree as collected by WidthFirst.
	Levels() [][]Entry[K, V]
	//Print the entries in ascending order of keys to w.
	Print(w io.Writer) error
	//PrintWidthFirst prints the entries in width first order to w, without a trailing newline.
	PrintWidthFirst(w io.Writer) error
	//Clear the Map.
	Clear()
	//Corrupt returns whether the tree has corrupt structures: keys out of order
	//or repeated, nodes reachable twice, or a Len that doesn't match the nodes.
	Corrupt() bool
}
