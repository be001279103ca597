package scene

import "slices"

// Compositor draws a World onto a Canvas in the fixed layer order. It keeps
// no entity state; its own RNG drives per-frame flicker and grain so that
// rendering never perturbs the simulation streams.
type Compositor struct {
	rng *Rand

	city     *skylineIndex
	cityHead *Building
	cityLen  int
	visible  []int
}

const saltCompositor = 0x5EED

func NewCompositor(seed uint64) *Compositor {
	return &Compositor{rng: NewRand(seed ^ saltCompositor)}
}

type layerPainter func(cp *Compositor, c Canvas, w *World)

var painters = [...]layerPainter{
	LayerSky:           (*Compositor).drawSky,
	LayerCloudsBack:    (*Compositor).drawCloudsBack,
	LayerBuildings:     (*Compositor).drawBuildings,
	LayerReflections:   (*Compositor).drawReflections,
	LayerPuddles:       (*Compositor).drawPuddles,
	LayerSplashes:      (*Compositor).drawSplashes,
	LayerRoad:          (*Compositor).drawRoad,
	LayerTrafficLights: (*Compositor).drawTrafficLights,
	LayerVehicles:      (*Compositor).drawVehicles,
	LayerPedestrians:   (*Compositor).drawPedestrians,
	LayerRain:          (*Compositor).drawRain,
	LayerCloudsFront:   (*Compositor).drawCloudsFront,
	LayerLetterbox:     (*Compositor).drawLetterbox,
	LayerGrain:         (*Compositor).drawGrain,
}

// RenderFrame composites one frame. World layers are drawn under the camera
// transform; the letterbox and grain are drawn in screen space after it is
// popped.
func (cp *Compositor) RenderFrame(c Canvas, w *World) {
	if cp == nil || c == nil || w == nil {
		return
	}
	marker, _ := c.(LayerMarker)
	cp.cull(w)

	c.PushTransform(w.Camera.View(w.Bounds.ViewW, w.Bounds.ViewH))
	pushed := true
	for _, l := range Layers {
		if l >= LayerLetterbox && pushed {
			c.PopTransform()
			pushed = false
		}
		if marker != nil {
			marker.BeginLayer(l)
		}
		painters[l](cp, c, w)
	}
	if pushed {
		c.PopTransform()
	}
}

// cull collects the buildings the camera can see, in skyline order. The
// index is rebuilt whenever the world's building slice changes.
func (cp *Compositor) cull(w *World) {
	cp.visible = cp.visible[:0]
	if len(w.Buildings) == 0 {
		return
	}
	if cp.city == nil || cp.cityHead != &w.Buildings[0] || cp.cityLen != len(w.Buildings) {
		cp.city = indexBuildings(w.Buildings, w.Bounds.GroundY)
		cp.cityHead = &w.Buildings[0]
		cp.cityLen = len(w.Buildings)
	}
	cp.city.Query(w.Camera.ViewRect(w.Bounds.ViewW, w.Bounds.ViewH), &cp.visible)
	slices.Sort(cp.visible)
}

func f32(v float64) float32 { return float32(v) }
