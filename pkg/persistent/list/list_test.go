package list

import (
	"encoding/json"
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"listdemo/pkg/tt"
)

func collect[T any](l *List[T]) []T {
	var s []T
	for v := range l.All() {
		s = append(s, v)
	}
	return s
}

func TestOf(t *testing.T) {
	tt.Test(t, tt.Fn("collect(Of(...))", func(elems ...int) []int {
		return collect(Of(elems...))
	}),
		tt.Args().Rets([]int(nil)),
		tt.Args(1).Rets([]int{1}),
		tt.Args(3, 4, 5).Rets([]int{3, 4, 5}),
		tt.Args(5, 5, 1, 0, -2).Rets([]int{5, 5, 1, 0, -2}),
	)
}

func TestOf_Empty(t *testing.T) {
	l := Of[int]()
	if l != nil {
		t.Errorf("Of() -> %v, want nil", l)
	}
	if !l.IsEmpty() {
		t.Errorf("Of().IsEmpty() -> false")
	}
	if n := l.Len(); n != 0 {
		t.Errorf("Of().Len() -> %d, want 0", n)
	}
	count := 0
	for range l.All() {
		count++
	}
	if count != 0 {
		t.Errorf("iterating Of() yields %d values, want 0", count)
	}
}

func TestOf_DoesNotRetainInput(t *testing.T) {
	elems := []string{"a", "b"}
	l := Of(elems...)
	elems[0] = "changed"
	if diff := cmp.Diff([]string{"a", "b"}, collect(l)); diff != "" {
		t.Errorf("list changed after modifying input (-want +got):\n%s", diff)
	}
}

func TestConsFirstRest(t *testing.T) {
	l := Of(2, 3)
	l2 := l.Cons(1)

	if diff := cmp.Diff([]int{1, 2, 3}, collect(l2)); diff != "" {
		t.Errorf("Cons (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3}, collect(l)); diff != "" {
		t.Errorf("Cons modified the original list (-want +got):\n%s", diff)
	}
	if l2.Rest() != l {
		t.Errorf("Cons doesn't share the tail")
	}
	if l2.First() != 1 || l2.Len() != 3 {
		t.Errorf("First, Len -> %v, %v; want 1, 3", l2.First(), l2.Len())
	}
}

func TestFirstRest_Empty(t *testing.T) {
	var l *List[string]
	if v := l.First(); v != "" {
		t.Errorf("First of empty list -> %q, want zero value", v)
	}
	if r := l.Rest(); r != nil {
		t.Errorf("Rest of empty list -> %v, want nil", r)
	}
}

func TestLen(t *testing.T) {
	tt.Test(t, tt.Fn("Of(...).Len()", func(elems ...int) int {
		return Of(elems...).Len()
	}),
		tt.Args().Rets(0),
		tt.Args(1).Rets(1),
		tt.Args(1, 2, 3, 4).Rets(4),
	)
}

func TestMap(t *testing.T) {
	l := Of(3, 4, 5)
	doubled := Map(l, func(x int) int { return x * 2 })

	if diff := cmp.Diff([]int{6, 8, 10}, collect(doubled)); diff != "" {
		t.Errorf("Map (-want +got):\n%s", diff)
	}
	if doubled.Len() != l.Len() {
		t.Errorf("Map changed length from %d to %d", l.Len(), doubled.Len())
	}
	if diff := cmp.Diff([]int{3, 4, 5}, collect(l)); diff != "" {
		t.Errorf("Map modified the original list (-want +got):\n%s", diff)
	}
}

func TestMap_ChangesType(t *testing.T) {
	l := Map(Of(1, 22, 333), strconv.Itoa)
	if diff := cmp.Diff([]string{"1", "22", "333"}, collect(l)); diff != "" {
		t.Errorf("Map (-want +got):\n%s", diff)
	}
}

func TestMap_Empty(t *testing.T) {
	called := false
	l := Map(Of[int](), func(x int) int { called = true; return x })
	if l != nil {
		t.Errorf("Map of empty list -> %v, want nil", l)
	}
	if called {
		t.Errorf("Map of empty list called f")
	}
}

func TestMap_IsEagerAndInOrder(t *testing.T) {
	var calls []int
	Map(Of(1, 2, 3), func(x int) int {
		calls = append(calls, x)
		return x
	})
	if diff := cmp.Diff([]int{1, 2, 3}, calls); diff != "" {
		t.Errorf("calls to f (-want +got):\n%s", diff)
	}
}

func TestMap_AllocatesFreshNodes(t *testing.T) {
	l := Of(1, 2)
	m := Map(l, func(x int) int { return x })
	for a, b := l, m; a != nil; a, b = a.Rest(), b.Rest() {
		if a == b {
			t.Errorf("Map shares node %v with its input", a)
		}
	}
}

func TestAll_IsRestartable(t *testing.T) {
	l := Of("a", "b", "c")
	seq := l.All()
	first := make([]string, 0)
	for v := range seq {
		first = append(first, v)
	}
	second := make([]string, 0)
	for v := range seq {
		second = append(second, v)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second iteration differs (-first +second):\n%s", diff)
	}
}

func TestAll_StopsEarly(t *testing.T) {
	var got []int
	for v := range Of(1, 2, 3, 4).All() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	if diff := cmp.Diff([]int{1, 2}, got); diff != "" {
		t.Errorf("early break (-want +got):\n%s", diff)
	}
}

func TestCursor(t *testing.T) {
	l := Of(1, 2)
	c1 := l.Cursor()
	c2 := l.Cursor()

	tt.Test(t, tt.Fn("c1.Next", c1.Next),
		tt.Args().Rets(1, true),
	)
	tt.Test(t, tt.Fn("c2.Next", c2.Next),
		tt.Args().Rets(1, true),
	)
	tt.Test(t, tt.Fn("c1.Next", c1.Next),
		tt.Args().Rets(2, true),
	)
	tt.Test(t, tt.Fn("c1.Next", c1.Next),
		tt.Args().Rets(0, false),
	)
	tt.Test(t, tt.Fn("c1.Next", c1.Next),
		tt.Args().Rets(0, false),
	)
	tt.Test(t, tt.Fn("c2.Next", c2.Next),
		tt.Args().Rets(2, true),
	)
}

func TestCursor_Empty(t *testing.T) {
	v, ok := Of[string]().Cursor().Next()
	if v != "" || ok {
		t.Errorf("Next on empty list -> (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestFind(t *testing.T) {
	multipleOf3 := func(x int) bool { return x%3 == 0 }
	tt.Test(t, tt.Fn("Of(...).Find(multipleOf3)", func(elems ...int) (int, bool) {
		return Of(elems...).Find(multipleOf3)
	}),
		tt.Args(1, 2, 3, 4).Rets(3, true),
		tt.Args(6, 9).Rets(6, true),
		tt.Args(1, 2, 4).Rets(0, false),
		tt.Args().Rets(0, false),
	)
}

func TestSlice(t *testing.T) {
	l := Of(1, 2, 3)
	s := l.Slice()
	s[0] = 100
	if diff := cmp.Diff([]int{1, 2, 3}, l.Slice()); diff != "" {
		t.Errorf("Slice shares storage with the list (-want +got):\n%s", diff)
	}
	if s := Of[int]().Slice(); s == nil || len(s) != 0 {
		t.Errorf("Slice of empty list -> %#v, want empty non-nil slice", s)
	}
}

func TestString(t *testing.T) {
	tt.Test(t, tt.Fn("Of(...).String()", func(elems ...any) string {
		return Of(elems...).String()
	}),
		tt.Args().Rets("()"),
		tt.Args(3).Rets("(3)"),
		tt.Args(3, 4, 5).Rets("(3 4 5)"),
		tt.Args("a", 1.5).Rets("(a 1.5)"),
	)
}

func TestMarshalJSON(t *testing.T) {
	tt.Test(t, tt.Fn("json.Marshal", func(l *List[int]) string {
		b, err := l.MarshalJSON()
		if err != nil {
			return "error: " + err.Error()
		}
		return string(b)
	}),
		tt.Args(Of[int]()).Rets("[]"),
		tt.Args(Of(3, 4, 5)).Rets("[3,4,5]"),
	)

	// As a field of a struct, the list is encoded through the json.Marshaler
	// interface.
	b, err := json.Marshal(struct {
		L *List[string] `json:"l"`
	}{Of("x", "y")})
	if err != nil || string(b) != `{"l":["x","y"]}` {
		t.Errorf("json.Marshal -> (%s, %v), want %s", b, err, `{"l":["x","y"]}`)
	}
}

func TestConcurrentReaders(t *testing.T) {
	l := Of(1, 2, 3, 4, 5)
	var wg sync.WaitGroup
	results := make([][]int, 8)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = collect(Map(l, func(x int) int { return x + i }))
		}()
	}
	wg.Wait()
	for i, got := range results {
		want := []int{1 + i, 2 + i, 3 + i, 4 + i, 5 + i}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("reader %d (-want +got):\n%s", i, diff)
		}
	}
}
