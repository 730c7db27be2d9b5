// Package systems holds the per-tick generation systems and the runner that
// drives them over an ecs.Registry.
package systems

import "github.com/Faultbox/surfgen/internal/game/ecs"

//go:generate mockgen -destination=mock/mock_system.go -package=systemsmock github.com/Faultbox/surfgen/internal/game/systems System

// System mutates the registry once per tick.
type System interface {
	// Name identifies the system in logs and errors.
	Name() string

	// Update advances the system to elapsed seconds since start. Calling it
	// twice with the same elapsed leaves the registry unchanged.
	Update(elapsed float64, r *ecs.Registry) error
}
