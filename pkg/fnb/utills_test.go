package fnb

import (
	"errors"
	"testing"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	if !IsNil(nil) {
		t.Fatalf("expected nil to be nil")
	}

	var p *int
	if !IsNil(p) {
		t.Fatalf("expected typed nil pointer to be nil")
	}

	var e error = p2err(nil)
	if !IsNil(e) {
		t.Fatalf("expected typed nil error to be nil")
	}

	if IsNil(errors.New("x")) {
		t.Fatalf("expected real error to be non nil")
	}
	if IsNil(0) || IsNil("") {
		t.Fatalf("expected zero values to be non nil")
	}
}

type fakeErr struct{ msg string }

func (f *fakeErr) Error() string { return f.msg }

func p2err(f *fakeErr) error { return f }

func TestGetErrors_Flat(t *testing.T) {
	t.Parallel()

	if got := GetErrors(nil); len(got) != 0 {
		t.Fatalf("expected no leaves for nil, got %d", len(got))
	}

	single := errors.New("one")
	got := GetErrors(single)
	if len(got) != 1 || got[0] != single {
		t.Fatalf("expected [one], got %v", got)
	}
}

func TestGetErrors_NestedJoins(t *testing.T) {
	t.Parallel()

	a := errors.New("a")
	b := errors.New("b")
	c := errors.New("c")
	joined := errors.Join(errors.Join(a, b), c)

	got := GetErrors(joined)
	if len(got) != 3 {
		t.Fatalf("expected 3 leaves, got %d: %v", len(got), got)
	}
	for i, want := range []error{a, b, c} {
		if got[i] != want {
			t.Fatalf("leaf %d: expected %v, got %v", i, want, got[i])
		}
	}
}
