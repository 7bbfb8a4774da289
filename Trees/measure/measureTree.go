// Command measure shows how the insertion order shapes an unbalanced tree: for growing sizes it builds a tree from
// keys in random order and from keys in ascending order, and reports the height and the time taken per operation.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/g-m-twostay/go-bst/Trees"
)

var (
	bAddN  = flag.Uint("n", 20000, "size of the largest tree")
	bSteps = flag.Uint("steps", 10, "number of sizes measured")
	bSeed  = flag.Int64("seed", 0, "seed of the random order")
)

type result struct {
	height uint32
	ms     float64
}

func measure(all []int) result {
	var tree *Trees.BSTree[int, int, uint32]
	br := testing.Benchmark(func(b *testing.B) {
		for range b.N {
			tree = Trees.New[int, int, uint32](uint32(len(all)))
			for _, v := range all {
				tree.Insert(v, v)
			}
			for _, v := range all {
				if _, ok := tree.Get(v); !ok {
					b.Fatalf("lost key %d", v)
				}
			}
		}
	})
	return result{tree.Height(), float64(br.T.Microseconds()) / 1000 / float64(br.N)}
}

func stats(cs []float64) (avg, stddev float64) {
	for _, v := range cs {
		avg += v
	}
	avg /= float64(len(cs))
	for _, v := range cs {
		a := v - avg
		stddev += a * a
	}
	return avg, math.Sqrt(stddev / float64(len(cs)))
}

func main() {
	testing.Init()
	flag.Parse()
	if *bSteps == 0 {
		*bSteps = 1
	}
	R := rand.New(rand.NewSource(*bSeed))
	var perKey [2][]float64
	fmt.Printf("%8s %14s %14s %14s %14s\n", "n", "random height", "random ms/op", "sorted height", "sorted ms/op")
	for i := uint(1); i <= *bSteps; i++ {
		n := int(*bAddN / *bSteps * i)
		if n == 0 {
			continue
		}
		all := R.Perm(n)
		rr := measure(all)
		slices.Sort(all)
		sr := measure(all)
		perKey[0] = append(perKey[0], rr.ms/float64(n))
		perKey[1] = append(perKey[1], sr.ms/float64(n))
		fmt.Printf("%8d %14d %14.3f %14d %14.3f\n", n, rr.height, rr.ms, sr.height, sr.ms)
	}
	for i, name := range []string{"random", "sorted"} {
		avg, stddev := stats(perKey[i])
		fmt.Printf("%s: average %fms/key, stddev %fms/key\n", name, avg, stddev)
	}
}
