package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func newTestCamera() *LookAtCamera {
	return New(
		mgl32.Vec3{0, 0.5, 2.5},
		mgl32.Vec3{0, 0.5, 0},
		mgl32.Vec3{0, 1, 0},
		DefaultProjection(),
	)
}

func TestDollyRoundTrip(t *testing.T) {
	for _, amount := range []float32{0.016, 0.5, 3, -1.25} {
		c := newTestCamera()
		eye, center := c.Eye(), c.Center()

		c.Dolly(amount)
		c.Dolly(-amount)

		if !c.Eye().ApproxEqualThreshold(eye, epsilon) {
			t.Errorf("Dolly(%v) round trip: eye %v, want %v", amount, c.Eye(), eye)
		}
		if !c.Center().ApproxEqualThreshold(center, epsilon) {
			t.Errorf("Dolly(%v) round trip: center %v, want %v", amount, c.Center(), center)
		}
	}
}

func TestDollyMovesAlongViewDirection(t *testing.T) {
	c := newTestCamera()
	c.Dolly(1)

	want := mgl32.Vec3{0, 0.5, 1.5}
	if !c.Eye().ApproxEqualThreshold(want, epsilon) {
		t.Errorf("Dolly(1): eye %v, want %v", c.Eye(), want)
	}
	if !c.Center().ApproxEqualThreshold(mgl32.Vec3{0, 0.5, -1}, epsilon) {
		t.Errorf("Dolly(1): center %v, want (0, 0.5, -1)", c.Center())
	}
}

func TestTruckStrafesRight(t *testing.T) {
	c := newTestCamera()
	c.Truck(0.5)

	if !c.Eye().ApproxEqualThreshold(mgl32.Vec3{0.5, 0.5, 2.5}, epsilon) {
		t.Errorf("Truck(0.5): eye %v, want (0.5, 0.5, 2.5)", c.Eye())
	}
	if !c.Center().ApproxEqualThreshold(mgl32.Vec3{0.5, 0.5, 0}, epsilon) {
		t.Errorf("Truck(0.5): center %v, want (0.5, 0.5, 0)", c.Center())
	}

	c.Truck(-0.5)
	if !c.Eye().ApproxEqualThreshold(mgl32.Vec3{0, 0.5, 2.5}, epsilon) {
		t.Errorf("Truck round trip: eye %v", c.Eye())
	}
}

func TestPanKeepsEyeAndTurnsRight(t *testing.T) {
	c := newTestCamera()
	eye := c.Eye()
	dist := c.Center().Sub(c.Eye()).Len()

	c.Pan(float32(math.Pi / 2))

	if c.Eye() != eye {
		t.Errorf("Pan moved eye: %v, want %v", c.Eye(), eye)
	}
	// Looking down -Z, a quarter turn right looks down +X.
	want := mgl32.Vec3{2.5, 0.5, 2.5}
	if !c.Center().ApproxEqualThreshold(want, 1e-4) {
		t.Errorf("Pan(pi/2): center %v, want %v", c.Center(), want)
	}
	if got := c.Center().Sub(c.Eye()).Len(); math.Abs(float64(got-dist)) > 1e-4 {
		t.Errorf("Pan changed view distance: %v, want %v", got, dist)
	}
}

func TestViewMatrixFollowsState(t *testing.T) {
	c := newTestCamera()
	moves := []func(){
		func() { c.Dolly(0.3) },
		func() { c.Truck(-0.2) },
		func() { c.Pan(0.7) },
	}

	for i, move := range moves {
		move()
		want := mgl32.LookAtV(c.Eye(), c.Center(), c.Up())
		if c.ViewMatrix() != want {
			t.Errorf("move %d: view matrix not recomputed", i)
		}
		// The eye maps to the view-space origin.
		origin := c.ViewMatrix().Mul4x1(c.Eye().Vec4(1)).Vec3()
		if origin.Len() > 1e-4 {
			t.Errorf("move %d: eye in view space = %v, want origin", i, origin)
		}
	}
}

func TestComputeProjectionMatrixStable(t *testing.T) {
	c := newTestCamera()

	c.ComputeProjectionMatrix(1280, 720)
	first := c.ProjMatrix()
	c.ComputeProjectionMatrix(1280, 720)
	second := c.ProjMatrix()

	if first != second {
		t.Errorf("projection differs between identical calls:\n%v\n%v", first, second)
	}
	if first[11] != -1 {
		t.Errorf("perspective [11] should be -1, got %f", first[11])
	}
	if first[15] != 0 {
		t.Errorf("perspective [15] should be 0, got %f", first[15])
	}
}

func TestComputeProjectionMatrixZeroHeight(t *testing.T) {
	c := newTestCamera()
	c.ComputeProjectionMatrix(800, 0)

	for i, v := range c.ProjMatrix() {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("projection element %d is %v after zero-height resize", i, v)
		}
	}

	clamped := newTestCamera()
	clamped.ComputeProjectionMatrix(800, 1)
	if c.ProjMatrix() != clamped.ProjMatrix() {
		t.Error("zero height should behave like height 1")
	}
}

func TestProjectionIgnoresCameraPose(t *testing.T) {
	a := newTestCamera()
	b := newTestCamera()
	b.Dolly(2)
	b.Pan(1)

	a.ComputeProjectionMatrix(640, 480)
	b.ComputeProjectionMatrix(640, 480)
	if a.ProjMatrix() != b.ProjMatrix() {
		t.Error("projection should depend only on the viewport")
	}
}
