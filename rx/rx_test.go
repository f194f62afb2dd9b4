package rx

import (
	"testing"

	"github.com/go-rex/rex/charset"
)

func TestConcatIdentities(t *testing.T) {
	a := Letter('a')
	if got := Concat(Phi(), a); got.Kind() != KindPhi {
		t.Errorf("Phi . r should be Phi")
	}
	if got := Concat(a, Phi()); got.Kind() != KindPhi {
		t.Errorf("r . Phi should be Phi")
	}
	if got := Concat(Empty(), a); !Equal(got, a) {
		t.Errorf("Empty . r should be r")
	}
	if got := Concat(a, Empty()); !Equal(got, a) {
		t.Errorf("r . Empty should be r")
	}
}

func TestChoiceIdentities(t *testing.T) {
	a := Letter('a')
	if got := Choice(Phi(), a); !Equal(got, a) {
		t.Errorf("Phi + r should be r")
	}
	if got := Choice(a, Phi()); !Equal(got, a) {
		t.Errorf("r + Phi should be r")
	}
}

func TestStarIdentities(t *testing.T) {
	a := Letter('a')
	star := Star(a)
	if got := Star(star); !Equal(got, star) {
		t.Errorf("Star(Star(r)) should be Star(r)")
	}
	if got := Star(Empty()); got.Kind() != KindEmpty {
		t.Errorf("Star(Empty) should be Empty")
	}
	if got := Star(Phi()); got.Kind() != KindEmpty {
		t.Errorf("Star(Phi) should be Empty")
	}
}

func TestRepeatZeroZeroIsEmpty(t *testing.T) {
	if got := Repeat(Letter('a'), 0, 0); got.Kind() != KindEmpty {
		t.Errorf("Repeat(r, 0, 0) should be Empty")
	}
}

func TestRepeatLoGreaterThanHiPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for lo > hi")
		}
	}()
	Repeat(Letter('a'), 3, 1)
}

func TestEqualStructural(t *testing.T) {
	a := Concat(Letter('a'), Letter('b'))
	b := Concat(Letter('a'), Letter('b'))
	if !Equal(a, b) {
		t.Error("structurally identical Rx values should compare equal")
	}
	c := Concat(Letter('a'), Letter('c'))
	if Equal(a, c) {
		t.Error("structurally different Rx values should not compare equal")
	}
}

func TestNullable(t *testing.T) {
	tests := []struct {
		name string
		r    *Rx
		want bool
	}{
		{"phi", Phi(), false},
		{"empty", Empty(), true},
		{"letter", Letter('a'), false},
		{"star", Star(Letter('a')), true},
		{"question", Question(Letter('a')), true},
		{"plus", Plus(Letter('a')), false},
		{"concat-both-nullable", Concat(Question(Letter('a')), Question(Letter('b'))), true},
		{"concat-one-not", Concat(Letter('a'), Question(Letter('b'))), false},
		{"choice-either", Choice(Letter('a'), Empty()), true},
		{"repeat-zero-lo", Repeat(Letter('a'), 0, 3), true},
		{"repeat-pos-lo", Repeat(Letter('a'), 1, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nullable(tt.r); got != tt.want {
				t.Errorf("Nullable(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestLettersEmptySetIsPhi(t *testing.T) {
	if got := Letters(charset.Empty); got.Kind() != KindPhi {
		t.Errorf("Letters(empty set) should collapse to Phi")
	}
}

func TestVarNullablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for Nullable(Var)")
		}
	}()
	Nullable(Var(0))
}
