package render

import (
	"slices"

	"github.com/Faultbox/surfgen/internal/game/ecs"
	"github.com/Faultbox/surfgen/pkg/mesh"
)

// Diff lists drawables whose buffers must be uploaded and those that are gone.
type Diff struct {
	Changed []ecs.Entity
	Removed []ecs.Entity
}

// Empty reports whether nothing changed.
func (d Diff) Empty() bool { return len(d.Changed) == 0 && len(d.Removed) == 0 }

type uploaded struct {
	digest   uint64
	vertices []float32
	indices  []uint32
}

// Tracker remembers what was last uploaded per entity.
type Tracker struct {
	seen map[ecs.Entity]uploaded
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[ecs.Entity]uploaded)}
}

// Update compares f against the previous upload and records f as current.
// Changed keeps frame order and Removed is sorted.
func (t *Tracker) Update(f Frame) Diff {
	var d Diff
	current := make(map[ecs.Entity]struct{}, len(f.Drawables))

	for _, dr := range f.Drawables {
		current[dr.Entity] = struct{}{}
		prev, ok := t.seen[dr.Entity]
		if ok && prev.digest == dr.Digest &&
			mesh.EqualBuffers(prev.vertices, dr.Vertices) &&
			mesh.EqualIndices(prev.indices, dr.Indices) {
			continue
		}
		d.Changed = append(d.Changed, dr.Entity)
		t.seen[dr.Entity] = uploaded{digest: dr.Digest, vertices: dr.Vertices, indices: dr.Indices}
	}

	for e := range t.seen {
		if _, ok := current[e]; !ok {
			d.Removed = append(d.Removed, e)
			delete(t.seen, e)
		}
	}
	slices.Sort(d.Removed)
	return d
}

// Len returns the number of tracked drawables.
func (t *Tracker) Len() int { return len(t.seen) }
