package gamemath

import "math"

// Vec3 is a point or direction in world units. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// HorizLen is the length of the XZ projection.
func (v Vec3) HorizLen() float64 {
	return math.Hypot(v.X, v.Z)
}

// HorizDist is the ground-plane distance between two points, ignoring Y.
func HorizDist(a, b Vec3) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}

// HorizNormalize returns the XZ direction of v with unit length and Y zeroed.
// The zero vector is returned unchanged.
func (v Vec3) HorizNormalize() Vec3 {
	l := v.HorizLen()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, 0, v.Z / l}
}

// HorizDot is the XZ dot product.
func HorizDot(a, b Vec3) float64 {
	return a.X*b.X + a.Z*b.Z
}

// RotateY rotates v around the Y axis by yaw radians.
func (v Vec3) RotateY(yaw float64) Vec3 {
	sin, cos := math.Sincos(yaw)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// DampFactor returns the per-step decay multiplier for an exponential decay
// at the given rate. Frame-rate independent: applying it every step converges
// to the same curve for any dt.
func DampFactor(rate, dt float64) float64 {
	return math.Exp(-rate * dt)
}

// BlendFactor returns the per-step interpolation weight for an exponential
// approach toward a target at the given rate.
func BlendFactor(rate, dt float64) float64 {
	return 1 - math.Exp(-rate*dt)
}

// WrapAngle maps an angle to (-pi, pi].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// TurnToward rotates the current angle toward target by at most maxDelta
// radians, taking the shortest arc.
func TurnToward(current, target, maxDelta float64) float64 {
	diff := WrapAngle(target - current)
	if math.Abs(diff) <= maxDelta {
		return target
	}
	if diff > 0 {
		return WrapAngle(current + maxDelta)
	}
	return WrapAngle(current - maxDelta)
}
