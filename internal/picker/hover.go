package picker

import (
	"go-neon-scene/internal/config"
	"go-neon-scene/internal/scene"
)

// Hover keeps at most one prop mesh highlighted.
type Hover struct {
	current *scene.Mesh
}

// Update applies a pick result and reports whether the highlighted mesh changed.
// Swarm hits keep the current highlight.
func (h *Hover) Update(res PickResult, ok bool) bool {
	if !ok {
		return h.Clear()
	}
	if res.Kind == HitSwarm || res.Mesh == h.current {
		return false
	}
	if h.current != nil {
		h.current.SetHighlight(config.HighlightBase)
	}
	res.Mesh.SetHighlight(config.HighlightActive)
	h.current = res.Mesh
	return true
}

// Clear restores the highlighted mesh to baseline.
func (h *Hover) Clear() bool {
	if h.current == nil {
		return false
	}
	h.current.SetHighlight(config.HighlightBase)
	h.current = nil
	return true
}

// Current returns the highlighted mesh, or nil.
func (h *Hover) Current() *scene.Mesh {
	return h.current
}
