package utils

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5, 0, 10) = %f", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("Clamp(-1, 0, 10) = %f", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("Clamp(11, 0, 10) = %f", got)
	}
}

func TestDist(t *testing.T) {
	d := Dist(mgl64.Vec2{0, 0}, mgl64.Vec2{3, 4})
	if math.Abs(d-5) > 1e-9 {
		t.Fatalf("Dist = %f, want 5", d)
	}
}

func TestContains(t *testing.T) {
	c := mgl64.Vec2{100, 100}
	if !Contains(c, 25, mgl64.Vec2{110, 110}) {
		t.Fatal("point inside circle reported outside")
	}
	if Contains(c, 25, mgl64.Vec2{200, 200}) {
		t.Fatal("point outside circle reported inside")
	}
}

func TestSafeNormalize(t *testing.T) {
	v := SafeNormalize(mgl64.Vec2{0, 0})
	if v.X() != 0 || v.Y() != 0 {
		t.Fatalf("SafeNormalize(0) = %v, want zero vector", v)
	}
	n := SafeNormalize(mgl64.Vec2{3, 4})
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Fatalf("normalized length = %f, want 1", n.Len())
	}
}
