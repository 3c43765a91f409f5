// Package picker turns pointer positions into scene hits.
package picker

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"

	"go-neon-scene/internal/scene"
	"go-neon-scene/internal/swarm"
	"go-neon-scene/pkg/geom"
)

// HitKind tells which candidate group a pick landed on.
type HitKind int

const (
	HitProp HitKind = iota
	HitSwarm
)

// NoInstance is the Instance of a result that is not a swarm hit.
const NoInstance = -1

func (k HitKind) String() string {
	if k == HitSwarm {
		return "swarm"
	}
	return "prop"
}

// PickResult is the nearest object under the pointer. Prop and Mesh are set for
// HitProp, Instance for HitSwarm. Instance is NoInstance on prop hits.
type PickResult struct {
	Kind       HitKind
	Prop       *scene.CameraProp
	Mesh       *scene.Mesh
	Instance   int
	WorldPoint r3.Vector
	Distance   float64
}

// CandidateSet is what a pick is tested against. Either part may be empty.
type CandidateSet struct {
	Props []*scene.CameraProp
	Swarm *swarm.Swarm
}

// Resolve casts the camera ray through ndc and returns the nearest hit.
func Resolve(ndc geom.NDC, cam *scene.Camera, set CandidateSet) (PickResult, bool) {
	if cam == nil {
		return PickResult{}, false
	}
	return Cast(cam.Ray(ndc), set)
}

// Cast returns the nearest hit along ray.
func Cast(ray geom.Ray, set CandidateSet) (PickResult, bool) {
	hits := propHits(ray, set.Props)
	if hit, ok := swarmHit(ray, set.Swarm); ok {
		hits = append(hits, hit)
	}
	if len(hits) == 0 {
		return PickResult{}, false
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits[0], true
}

func propHits(ray geom.Ray, props []*scene.CameraProp) []PickResult {
	meshes := lo.FlatMap(props, func(p *scene.CameraProp, _ int) []*scene.Mesh {
		return p.Parts
	})
	var hits []PickResult
	for _, m := range meshes {
		t, ok := m.Bounds.HitTransformed(ray, m.World(), 0, math.Inf(1))
		if !ok {
			continue
		}
		hits = append(hits, PickResult{
			Kind:       HitProp,
			Prop:       m.Prop,
			Instance:   NoInstance,
			Mesh:       m,
			WorldPoint: ray.At(t),
			Distance:   t,
		})
	}
	return hits
}

// swarmHit checks the combined volume first, then the bounding sphere of every
// active instance.
func swarmHit(ray geom.Ray, sw *swarm.Swarm) (PickResult, bool) {
	if sw == nil || sw.Len() == 0 {
		return PickResult{}, false
	}
	if _, ok := sw.HitVolume().Hit(ray, 0, math.Inf(1)); !ok {
		return PickResult{}, false
	}
	best := PickResult{Kind: HitSwarm, Instance: NoInstance, Distance: math.Inf(1)}
	for i := 0; i < sw.Len(); i++ {
		sphere, ok := sw.HitSphere(i)
		if !ok {
			continue
		}
		t, ok := sphere.Hit(ray, 0, best.Distance)
		if !ok {
			continue
		}
		best.Instance = i
		best.Distance = t
		best.WorldPoint = ray.At(t)
	}
	return best, best.Instance >= 0
}
