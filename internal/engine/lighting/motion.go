// Package lighting moves point lights and packs them for upload.
package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/surfgen/internal/engine/input"
)

// DefaultSpeed is the key-driven light speed in world units per second.
const DefaultSpeed = 10.0

// Axis returns -1, 0 or +1 depending on which of the two keys is held.
// Holding both cancels out.
func Axis(keys input.Reader, negative, positive input.Key) float64 {
	v := 0.0
	if keys == nil {
		return v
	}
	if keys.IsDown(negative) {
		v--
	}
	if keys.IsDown(positive) {
		v++
	}
	return v
}

// Step moves pos along dir at speed for dt seconds. A non-positive dt is a no-op.
func Step(pos, dir mgl64.Vec3, speed, dt float64) mgl64.Vec3 {
	if dt <= 0 || dir == (mgl64.Vec3{}) {
		return pos
	}
	return pos.Add(dir.Mul(speed * dt))
}

// Path computes a light position from elapsed time.
type Path interface {
	Position(elapsed float64) (mgl64.Vec3, error)
}

// PathFunc adapts a function to Path.
type PathFunc func(elapsed float64) (mgl64.Vec3, error)

// Position implements Path.
func (f PathFunc) Position(elapsed float64) (mgl64.Vec3, error) { return f(elapsed) }

// Orbit circles the light around Center at Radius, one lap per Period
// seconds, at Elevation degrees above the horizon.
type Orbit struct {
	Center    mgl64.Vec3
	Radius    float64
	Period    float64
	Elevation float64
}

// Position implements Path.
func (o Orbit) Position(elapsed float64) (mgl64.Vec3, error) {
	longitude := 0.0
	if o.Period > 0 {
		longitude = math.Mod(elapsed/o.Period, 1) * 360
	}
	return o.Center.Add(SunDirection(longitude, o.Elevation).Mul(o.Radius)), nil
}

// SunDirection converts longitude/latitude in degrees to a unit vector.
// Longitude rotates around Y; latitude is elevation from the horizon.
func SunDirection(longitude, latitude float64) mgl64.Vec3 {
	lon := mgl64.DegToRad(longitude)
	lat := mgl64.DegToRad(latitude)
	return mgl64.Vec3{
		math.Cos(lat) * math.Sin(lon),
		math.Sin(lat),
		math.Cos(lat) * math.Cos(lon),
	}
}
