package common

import "testing"

func TestLerp(t *testing.T) {
	cases := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{2, 4, 0.5, 3},
		{-4, 4, 0.25, -2},
	}
	for _, c := range cases {
		if got := Lerp(c.a, c.b, c.t); got != c.want {
			t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, want float64
	}{
		{-2, -1},
		{-1, -1},
		{0.3, 0.3},
		{1, 1},
		{5, 1},
	}
	for _, c := range cases {
		if got := Clamp(c.v, -1, 1); got != c.want {
			t.Fatalf("Clamp(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestSign(t *testing.T) {
	if Sign(true) != 1 || Sign(false) != -1 {
		t.Fatalf("unexpected signs %v %v", Sign(true), Sign(false))
	}
}
