package math

import (
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{3, 4, 5}
	got := a.Add(b)
	want := Vec3{4, 6, 8}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{3, 4, 0}
	got := v.Length()
	want := 5.0
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 2, 0}
	if got, want := a.Min(b), (Vec3{-1, -2, 0}); got != want {
		t.Errorf("Vec3.Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{1, 2, 3}); got != want {
		t.Errorf("Vec3.Max() = %v, want %v", got, want)
	}
}

func TestBoundsEmpty(t *testing.T) {
	var b Bounds
	if !b.Empty() {
		t.Error("zero Bounds should be empty")
	}
	if b.Size() != (Vec3{}) {
		t.Errorf("empty Bounds.Size() = %v, want zero", b.Size())
	}
	if b.String() != "(empty)" {
		t.Errorf("empty Bounds.String() = %q", b.String())
	}
}

func TestBoundsExtend(t *testing.T) {
	var b Bounds
	b.Extend(Vec3{1, 1, 1})
	b.Extend(Vec3{-1, 3, 0})
	b.Extend(Vec3{0, 2, 5})

	if b.Min != (Vec3{-1, 1, 0}) {
		t.Errorf("Min = %v, want (-1, 1, 0)", b.Min)
	}
	if b.Max != (Vec3{1, 3, 5}) {
		t.Errorf("Max = %v, want (1, 3, 5)", b.Max)
	}
	if b.Center() != (Vec3{0, 2, 2.5}) {
		t.Errorf("Center = %v, want (0, 2, 2.5)", b.Center())
	}
}

func TestBoundsSinglePoint(t *testing.T) {
	var b Bounds
	b.Extend(Vec3{2, 2, 2})
	if b.Diagonal() != 0 {
		t.Errorf("single point Diagonal() = %v, want 0", b.Diagonal())
	}
}
