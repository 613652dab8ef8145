package linearmap

import (
	"testing"

	"github.com/scottcagno/linmap/pkg/util"
)

func makeTestMap() *LinearMap[int, string] {
	lm := New[int, string]()
	lm.Set(0, "Hello")
	lm.Set(1, "World!")
	return lm
}

func Test_LinearMap_Iter(t *testing.T) {
	lm := makeTestMap()
	it := lm.Iter()
	key, val, ok := it.Next()
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 0, key)
	util.AssertExpected(t, "Hello", val)
	key, val, ok = it.Next()
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 1, key)
	util.AssertExpected(t, "World!", val)
	_, _, ok = it.Next()
	util.AssertFalse(t, ok)
	// an exhausted iterator stays exhausted
	_, _, ok = it.Next()
	util.AssertFalse(t, ok)
}

func Test_LinearMap_IterMut(t *testing.T) {
	lm := makeTestMap()
	it := lm.IterMut()
	for _, val, ok := it.Next(); ok; _, val, ok = it.Next() {
		*val = (*val)[1:]
	}
	val, _ := lm.Get(0)
	util.AssertExpected(t, "ello", val)
	val, _ = lm.Get(1)
	util.AssertExpected(t, "orld!", val)
}

func Test_LinearMap_IntoIter(t *testing.T) {
	lm := makeTestMap()
	it := lm.IntoIter()

	// the map has been consumed
	util.AssertTrue(t, lm.IsEmpty())
	util.AssertExpected(t, 0, lm.Len())

	key, val, ok := it.Next()
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 0, key)
	util.AssertExpected(t, "Hello", val)
	key, val, ok = it.Next()
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 1, key)
	util.AssertExpected(t, "World!", val)
	_, _, ok = it.Next()
	util.AssertFalse(t, ok)
}

func Test_LinearMap_Keys(t *testing.T) {
	lm := makeTestMap()
	it := lm.Keys()
	key, ok := it.Next()
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 0, key)
	key, ok = it.Next()
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 1, key)
	_, ok = it.Next()
	util.AssertFalse(t, ok)
}

func Test_LinearMap_Values(t *testing.T) {
	lm := makeTestMap()
	it := lm.Values()
	val, ok := it.Next()
	util.AssertTrue(t, ok)
	util.AssertExpected(t, "Hello", val)
	val, ok = it.Next()
	util.AssertTrue(t, ok)
	util.AssertExpected(t, "World!", val)
	_, ok = it.Next()
	util.AssertFalse(t, ok)
}

func Test_LinearMap_ValuesMut(t *testing.T) {
	lm := makeTestMap()
	it := lm.ValuesMut()
	for val, ok := it.Next(); ok; val, ok = it.Next() {
		*val = (*val)[1:]
	}
	val, _ := lm.Get(0)
	util.AssertExpected(t, "ello", val)
	val, _ = lm.Get(1)
	util.AssertExpected(t, "orld!", val)
}

func Test_LinearMap_All(t *testing.T) {
	lm := makeTestMap()
	var keys []int
	var vals []string
	for key, val := range lm.All() {
		keys = append(keys, key)
		vals = append(vals, val)
	}
	util.AssertExpected(t, []int{0, 1}, keys)
	util.AssertExpected(t, []string{"Hello", "World!"}, vals)

	// the view restarts on a fresh call
	var count int
	for range lm.All() {
		count++
		break
	}
	util.AssertExpected(t, 1, count)
}

func Test_LinearMap_Range(t *testing.T) {
	lm := makeTestMap()
	var counted int
	lm.Range(func(key int, value string) bool {
		if value != "" {
			counted++
			return true
		}
		return false
	})
	util.AssertExpected(t, 2, counted)

	// ranging stops when the iterator function returns false
	counted = 0
	lm.Range(func(key int, value string) bool {
		counted++
		return false
	})
	util.AssertExpected(t, 1, counted)
}

func Test_LinearMap_IterGuard(t *testing.T) {
	lm := makeTestMap()
	it := lm.Iter()
	lm.Del(0)
	util.AssertPanic(t, "linearmap: map modified during iteration", func() {
		it.Next()
	})
}

func Test_LinearMap_AllGuard(t *testing.T) {
	lm := makeTestMap()
	util.AssertPanic(t, "linearmap: map modified during iteration", func() {
		for key := range lm.All() {
			lm.Del(key)
		}
	})
}

func Test_LinearMap_IterGuardAllowsValueOverwrite(t *testing.T) {
	lm := makeTestMap()
	it := lm.Iter()
	// replacing the value of a present key is not a structural change
	lm.Set(0, "Again")
	key, val, ok := it.Next()
	util.AssertTrue(t, ok)
	util.AssertExpected(t, 0, key)
	util.AssertExpected(t, "Again", val)
}

func Test_LinearMap_IterationCompleteness(t *testing.T) {
	const n = 25
	lm := New[int, int]()
	for i := 0; i < n; i++ {
		lm.Set(i, i*i)
	}
	seen := make(map[int]int, n)
	it := lm.Iter()
	for key, val, ok := it.Next(); ok; key, val, ok = it.Next() {
		seen[key] = val
	}
	util.AssertExpected(t, n, len(seen))
	for i := 0; i < n; i++ {
		util.AssertExpected(t, i*i, seen[i])
	}
}
