package pure_test

import (
	"testing"

	"github.com/on-the-ground/underbar_go/pure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(n int) bool { return n%2 == 0 }

func TestEach_VisitsInOrderWithIndex(t *testing.T) {
	xs := []string{"a", "b", "c"}
	var seen []string
	pure.Each(xs, func(v string, i int, all []string) {
		assert.Equal(t, xs[i], v)
		assert.Equal(t, xs, all)
		seen = append(seen, v)
	})
	assert.Equal(t, xs, seen)
}

func TestMap(t *testing.T) {
	xs := []int{1, 2, 3}
	assert.Equal(t, []int{2, 4, 6}, pure.Map(xs, func(n int) int { return n * 2 }))
	assert.Equal(t, []int{1, 2, 3}, xs)
	assert.Empty(t, pure.Map([]int(nil), pure.Identity[int]))
}

func TestFilterAndReject(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5, 6}
	assert.Equal(t, []int{2, 4, 6}, pure.Filter(xs, isEven))
	assert.Equal(t, []int{1, 3, 5}, pure.Reject(xs, isEven))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, xs)
}

func TestFilterAndReject_PartitionDuplicatesByPosition(t *testing.T) {
	// A predicate that accepts only the first occurrence of 2: equal values
	// must still land on different sides.
	seen := false
	firstTwo := func(n int) bool {
		if n == 2 && !seen {
			seen = true
			return true
		}
		return false
	}
	kept, rejected := pure.Partition([]int{2, 1, 2, 2}, firstTwo)
	assert.Equal(t, []int{2}, kept)
	assert.Equal(t, []int{1, 2, 2}, rejected)

	xs := []int{3, 3, 4, 4, 3}
	assert.ElementsMatch(t, xs, append(pure.Filter(xs, isEven), pure.Reject(xs, isEven)...))
	assert.Len(t, pure.Filter(xs, isEven), 2)
	assert.Len(t, pure.Reject(xs, isEven), 3)
}

func TestReduce_WithoutInitialSkipsSeed(t *testing.T) {
	calls := 0
	sum := func(acc, n int) int {
		calls++
		return acc + n
	}

	got, ok := pure.Reduce([]int{1, 2, 3}, sum, pure.Absent[int]()).Get()
	require.True(t, ok)
	assert.Equal(t, 6, got)
	assert.Equal(t, 2, calls)
}

func TestReduce_SingleElementNeverCallsIterator(t *testing.T) {
	got := pure.Reduce([]int{5}, func(acc, n int) int {
		t.Fatal("iterator must not run")
		return acc + n*n
	}, pure.Absent[int]())
	assert.Equal(t, pure.Present(5), got)
}

func TestReduce_WithInitial(t *testing.T) {
	var firstCall [2]int
	calls := 0
	got := pure.Reduce([]int{1, 2, 3}, func(acc, n int) int {
		if calls == 0 {
			firstCall = [2]int{acc, n}
		}
		calls++
		return acc + n
	}, pure.Present(0))

	assert.Equal(t, pure.Present(6), got)
	assert.Equal(t, [2]int{0, 1}, firstCall)
	assert.Equal(t, 3, calls)
}

func TestReduce_EmptyInput(t *testing.T) {
	sum := func(acc, n int) int { return acc + n }
	assert.False(t, pure.Reduce(nil, sum, pure.Absent[int]()).IsPresent())
	assert.Equal(t, pure.Present(7), pure.Reduce(nil, sum, pure.Present(7)))
}

func TestReduceInto(t *testing.T) {
	lengths := pure.ReduceInto([]string{"ab", "c", ""}, func(acc []int, s string) []int {
		return append(acc, len(s))
	}, []int{})
	assert.Equal(t, []int{2, 1, 0}, lengths)
}

func TestContains(t *testing.T) {
	assert.True(t, pure.Contains([]string{"a", "b"}, "b"))
	assert.False(t, pure.Contains([]string{"a", "b"}, "c"))
	assert.False(t, pure.Contains(nil, 0))
}

func TestEvery(t *testing.T) {
	assert.True(t, pure.Every([]int{2, 4}, isEven))
	assert.False(t, pure.Every([]int{2, 3, 4}, isEven))
	assert.True(t, pure.Every([]int{}, isEven))

	calls := 0
	pure.Every([]int{1, 2, 3}, func(n int) bool {
		calls++
		return isEven(n)
	})
	assert.Equal(t, 1, calls, "every stops at the first failure")
}

func TestSome(t *testing.T) {
	assert.True(t, pure.Some([]int{1, 2}, isEven))
	assert.False(t, pure.Some([]int{1, 3}, isEven))
	assert.False(t, pure.Some([]int{}, isEven))

	calls := 0
	pure.Some([]int{1, 2, 3, 4}, func(n int) bool {
		calls++
		return isEven(n)
	})
	assert.Equal(t, 2, calls, "some stops at the first success")
}

func TestEveryAndSome_WithoutPredicateUseTruthiness(t *testing.T) {
	assert.True(t, pure.Every([]any{1, "x", true, []int{}}, nil))
	assert.False(t, pure.Every([]any{1, 0, true}, nil))
	assert.False(t, pure.Every([]any{1, nil}, nil))

	assert.True(t, pure.Some([]any{0, "", false, "yes"}, nil))
	assert.False(t, pure.Some([]any{0, "", false, nil}, nil))
	assert.True(t, pure.Some([]bool{false, true}, nil))
}

func TestTruthy(t *testing.T) {
	for _, v := range []any{nil, 0, 0.0, "", false, (*int)(nil), []int(nil), struct{}{}} {
		assert.Falsef(t, pure.Truthy(v), "%#v", v)
	}
	n := 0
	for _, v := range []any{1, -1, "0", true, &n, []int{}, struct{ A int }{1}} {
		assert.Truef(t, pure.Truthy(v), "%#v", v)
	}
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 1, pure.IndexOf([]int{4, 5, 5}, 5))
	assert.Equal(t, -1, pure.IndexOf([]int{4, 5}, 6))
}

func TestFirstAndLast(t *testing.T) {
	xs := []int{1, 2, 3}
	assert.Equal(t, pure.Present(1), pure.First(xs))
	assert.Equal(t, pure.Present(3), pure.Last(xs))
	assert.False(t, pure.First([]int{}).IsPresent())
	assert.False(t, pure.Last([]int{}).IsPresent())

	assert.Equal(t, []int{1, 2}, pure.FirstN(xs, 2))
	assert.Equal(t, []int{1, 2, 3}, pure.FirstN(xs, 5))
	assert.Equal(t, []int{}, pure.FirstN(xs, -1))
	assert.Equal(t, []int{2, 3}, pure.LastN(xs, 2))
	assert.Equal(t, []int{1, 2, 3}, pure.LastN(xs, 5))
	assert.Equal(t, []int{}, pure.LastN(xs, 0))

	head := pure.FirstN(xs, 1)
	head[0] = 100
	assert.Equal(t, 1, xs[0])
}

type person struct {
	Name string
	Age  int
	note string
}

func TestPluck(t *testing.T) {
	people := []person{{Name: "moe", Age: 40}, {Name: "curly", Age: 60}}
	assert.Equal(t, []string{"moe", "curly"}, pure.Pluck[person, string](people, "Name"))
	assert.Equal(t, []int{40, 60}, pure.Pluck[person, int](people, "Age"))

	// unexported and missing fields read as zero values
	assert.Equal(t, []string{"", ""}, pure.Pluck[person, string](people, "note"))
	assert.Equal(t, []string{"", ""}, pure.Pluck[person, string](people, "Missing"))

	rows := []map[string]any{{"id": 1}, {"id": 2}, {}}
	assert.Equal(t, []int{1, 2, 0}, pure.Pluck[map[string]any, int](rows, "id"))

	assert.Panics(t, func() { pure.Pluck[person, string](people, "Age") })
}
