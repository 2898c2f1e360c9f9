package control

// Speeds holds the per-axis magnitude applied while a key is held.
type Speeds struct {
	Dolly float32
	Truck float32
	Pan   float32
}

// DefaultSpeeds returns unit speeds on every axis.
func DefaultSpeeds() Speeds {
	return Speeds{Dolly: 1, Truck: 1, Pan: 1}
}

// Velocity tracks the current signed speed on each axis.
//
// A key-down always overwrites its axis. A key-up only clears the axis when
// the current speed still has the released key's sign, so releasing a stale
// key after a direction reversal keeps the newer direction active.
type Velocity struct {
	magnitude [3]float32
	speed     [3]float32
}

// NewVelocity creates a mapper with the given magnitudes.
func NewVelocity(s Speeds) *Velocity {
	return &Velocity{
		magnitude: [3]float32{AxisDolly: s.Dolly, AxisTruck: s.Truck, AxisPan: s.Pan},
	}
}

// KeyDown applies a press of the key bound to d. DirectionNone is ignored.
func (v *Velocity) KeyDown(d Direction) {
	axis, sign, ok := d.axisSign()
	if !ok {
		return
	}
	v.speed[axis] = sign * v.magnitude[axis]
}

// KeyUp applies a release of the key bound to d.
func (v *Velocity) KeyUp(d Direction) {
	axis, sign, ok := d.axisSign()
	if !ok {
		return
	}
	if v.speed[axis]*sign > 0 {
		v.speed[axis] = 0
	}
}

// Stop zeroes every axis.
func (v *Velocity) Stop() {
	v.speed = [3]float32{}
}

// Dolly returns the forward/backward speed.
func (v *Velocity) Dolly() float32 { return v.speed[AxisDolly] }

// Truck returns the sideways speed.
func (v *Velocity) Truck() float32 { return v.speed[AxisTruck] }

// Pan returns the turning speed.
func (v *Velocity) Pan() float32 { return v.speed[AxisPan] }

// Moving reports whether any axis has a non-zero speed.
func (v *Velocity) Moving() bool {
	return v.speed != [3]float32{}
}
