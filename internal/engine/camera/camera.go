// Package camera provides the first-person look-at camera used to walk the scene.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Projection holds the fixed perspective constants.
type Projection struct {
	FOVY float32 // Vertical field of view, radians
	Near float32
	Far  float32
}

// DefaultProjection returns a 70 degree frustum from 0.1 to 5 units.
func DefaultProjection() Projection {
	return Projection{
		FOVY: mgl32.DegToRad(70),
		Near: 0.1,
		Far:  5,
	}
}

// LookAtCamera is a camera defined by eye, center and up vectors.
// The view matrix is always lookAt(eye, center, up); the projection matrix
// depends only on the viewport aspect ratio and the Projection constants.
type LookAtCamera struct {
	eye    mgl32.Vec3
	center mgl32.Vec3
	up     mgl32.Vec3

	projection Projection

	viewMatrix mgl32.Mat4
	projMatrix mgl32.Mat4
}

// New creates a camera at eye looking towards center. The projection matrix
// starts as the identity until ComputeProjectionMatrix is called.
func New(eye, center, up mgl32.Vec3, projection Projection) *LookAtCamera {
	c := &LookAtCamera{
		eye:        eye,
		center:     center,
		up:         up,
		projection: projection,
		projMatrix: mgl32.Ident4(),
	}
	c.computeViewMatrix()
	return c
}

// Eye returns the camera position in world space.
func (c *LookAtCamera) Eye() mgl32.Vec3 {
	return c.eye
}

// Center returns the point the camera looks at.
func (c *LookAtCamera) Center() mgl32.Vec3 {
	return c.center
}

// Up returns the camera up vector.
func (c *LookAtCamera) Up() mgl32.Vec3 {
	return c.up
}

// ViewMatrix returns the current view matrix.
func (c *LookAtCamera) ViewMatrix() mgl32.Mat4 {
	return c.viewMatrix
}

// ProjMatrix returns the current projection matrix.
func (c *LookAtCamera) ProjMatrix() mgl32.Mat4 {
	return c.projMatrix
}

// ComputeProjectionMatrix derives the perspective projection for a viewport.
// Non-positive sizes are clamped to 1 so a minimized window never divides by zero.
func (c *LookAtCamera) ComputeProjectionMatrix(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	c.projMatrix = mgl32.Perspective(c.projection.FOVY, aspect, c.projection.Near, c.projection.Far)
}

// Dolly moves eye and center together along the view direction.
func (c *LookAtCamera) Dolly(amount float32) {
	forward := c.forward()
	c.eye = c.eye.Add(forward.Mul(amount))
	c.center = c.center.Add(forward.Mul(amount))
	c.computeViewMatrix()
}

// Truck moves eye and center together sideways; positive amounts strafe right.
func (c *LookAtCamera) Truck(amount float32) {
	left := c.up.Cross(c.forward())
	c.eye = c.eye.Sub(left.Mul(amount))
	c.center = c.center.Sub(left.Mul(amount))
	c.computeViewMatrix()
}

// Pan turns the view about the up axis through eye; positive amounts turn right.
// Eye stays fixed and center is rotated around it.
func (c *LookAtCamera) Pan(amount float32) {
	rotation := mgl32.HomogRotate3D(-amount, c.up.Normalize())
	offset := rotation.Mul4x1(c.center.Sub(c.eye).Vec4(0)).Vec3()
	c.center = c.eye.Add(offset)
	c.computeViewMatrix()
}

func (c *LookAtCamera) forward() mgl32.Vec3 {
	return c.center.Sub(c.eye).Normalize()
}

func (c *LookAtCamera) computeViewMatrix() {
	c.viewMatrix = mgl32.LookAtV(c.eye, c.center, c.up)
}
