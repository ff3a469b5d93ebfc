package opt

import (
	"errors"
	"strings"
	"testing"

	"github.com/ib-77/fnblock/pkg/fnb"
)

func TestMap_PresentAndAbsent(t *testing.T) {
	t.Parallel()

	out := Map(fnb.Some("Foo"), strings.ToLower)
	if v, ok := out.Get(); !ok || v != "foo" {
		t.Fatalf("expected Some(foo), got: some=%v, val=%q", ok, v)
	}

	called := false
	none := Map(fnb.None[string](), func(in string) string {
		called = true
		return in
	})
	if none.IsSome() || called {
		t.Fatalf("expected None without calling onSome; some=%v, called=%v", none.IsSome(), called)
	}
}

func TestSwitch(t *testing.T) {
	t.Parallel()

	firstWord := func(in string) fnb.Option[string] {
		fields := strings.Fields(in)
		if len(fields) == 0 {
			return fnb.None[string]()
		}
		return fnb.Some(fields[0])
	}

	if out := Switch(fnb.Some("hello world"), firstWord); out.Value() != "hello" {
		t.Fatalf("expected hello, got %q", out.Value())
	}
	if out := Switch(fnb.Some("   "), firstWord); out.IsSome() {
		t.Fatalf("expected None for blank input")
	}
	if out := Switch(fnb.None[string](), firstWord); out.IsSome() {
		t.Fatalf("expected None to propagate")
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	long := func(in string) bool { return len(in) >= 3 }

	if out := Filter(fnb.Some("Foobar"), long); !out.IsSome() {
		t.Fatalf("expected value to pass the filter")
	}
	if out := Filter(fnb.Some("Fo"), long); out.IsSome() {
		t.Fatalf("expected short value to be dropped")
	}
	if out := Filter(fnb.None[string](), long); out.IsSome() {
		t.Fatalf("expected None to stay None")
	}
}

func TestOr(t *testing.T) {
	t.Parallel()

	if out := Or(fnb.Some(1), fnb.Some(2)); out.Value() != 1 {
		t.Fatalf("expected first value 1, got %d", out.Value())
	}
	if out := Or(fnb.None[int](), fnb.Some(2)); out.Value() != 2 {
		t.Fatalf("expected alternative 2, got %d", out.Value())
	}
	if out := Or(fnb.None[int](), fnb.None[int]()); out.IsSome() {
		t.Fatalf("expected None when both absent")
	}
}

func TestTee(t *testing.T) {
	t.Parallel()

	var seen int
	out := Tee(fnb.Some(9), func(in int) { seen = in })
	if seen != 9 || out.Value() != 9 {
		t.Fatalf("expected side effect with 9 and unchanged option, got: seen=%d, val=%d", seen, out.Value())
	}

	called := false
	Tee(fnb.None[int](), func(in int) { called = true })
	if called {
		t.Fatalf("onSome should not run for None")
	}
}

func TestCollect(t *testing.T) {
	t.Parallel()

	out := Collect(fnb.Some(1), fnb.Some(2), fnb.Some(3))
	vs, ok := out.Get()
	if !ok || len(vs) != 3 || vs[0] != 1 || vs[2] != 3 {
		t.Fatalf("expected [1 2 3], got: some=%v, vals=%v", ok, vs)
	}

	if out := Collect(fnb.Some(1), fnb.None[int](), fnb.Some(3)); out.IsSome() {
		t.Fatalf("expected None when any input is absent")
	}

	empty, ok := Collect[int]().Get()
	if !ok || len(empty) != 0 {
		t.Fatalf("expected Some of empty slice for no inputs, got: some=%v, vals=%v", ok, empty)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	got := Finally(fnb.Some(5),
		func(in int) string { return "have" },
		func() string { return "miss" })
	if got != "have" {
		t.Fatalf("expected have, got %q", got)
	}

	got = Finally(fnb.None[int](),
		func(in int) string { return "have" },
		func() string { return "miss" })
	if got != "miss" {
		t.Fatalf("expected miss, got %q", got)
	}
}

func TestToResult(t *testing.T) {
	t.Parallel()

	missing := errors.New("missing")

	r := ToResult(fnb.Some(4), missing)
	if !r.IsOk() || r.Value() != 4 {
		t.Fatalf("expected Ok(4), got: ok=%v, err=%v", r.IsOk(), r.Err())
	}

	r = ToResult(fnb.None[int](), missing)
	if r.IsOk() || !errors.Is(r.Err(), missing) {
		t.Fatalf("expected failure 'missing', got: ok=%v, err=%v", r.IsOk(), r.Err())
	}
}

func TestFromResult(t *testing.T) {
	t.Parallel()

	if out := FromResult(fnb.Ok("v")); out.Value() != "v" {
		t.Fatalf("expected v, got %q", out.Value())
	}
	if out := FromResult(fnb.Err[string](errors.New("x"))); out.IsSome() {
		t.Fatalf("expected None for failure")
	}
}

func TestFromGetter(t *testing.T) {
	t.Parallel()

	if out := FromGetter[int](fnb.Ok(3)); out.Value() != 3 {
		t.Fatalf("expected 3 from a Result getter, got %d", out.Value())
	}
	if out := FromGetter[int](fnb.None[int]()); out.IsSome() {
		t.Fatalf("expected None from an absent getter")
	}
}
