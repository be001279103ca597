package scene

import (
	"cmp"
	"math"
	"slices"
)

// RectF is an axis-aligned rectangle in world space.
type RectF struct {
	X0, Y0 float64
	X1, Y1 float64
}

func (r RectF) Intersects(o RectF) bool {
	return r.X0 < o.X1 && r.X1 > o.X0 && r.Y0 < o.Y1 && r.Y1 > o.Y0
}

// skylineIndex answers view queries over spans sorted by left edge.
// reach[i] is the furthest right edge among spans[0..i], which keeps the
// lower bound a binary search even when spans overlap.
type skylineIndex struct {
	ids   []int
	spans []RectF
	reach []float64
}

func newSkylineIndex(spans []RectF) *skylineIndex {
	ids := make([]int, len(spans))
	for i := range ids {
		ids[i] = i
	}
	slices.SortStableFunc(ids, func(a, b int) int { return cmp.Compare(spans[a].X0, spans[b].X0) })

	ix := &skylineIndex{
		ids:   ids,
		spans: make([]RectF, len(spans)),
		reach: make([]float64, len(spans)),
	}
	far := math.Inf(-1)
	for k, id := range ids {
		ix.spans[k] = spans[id]
		far = math.Max(far, spans[id].X1)
		ix.reach[k] = far
	}
	return ix
}

// Query appends, in left-edge order, the ids of every span overlapping r.
func (ix *skylineIndex) Query(r RectF, out *[]int) {
	k, _ := slices.BinarySearchFunc(ix.reach, r.X0, func(reach, x float64) int {
		if reach > x {
			return 1
		}
		return -1
	})
	for ; k < len(ix.spans) && ix.spans[k].X0 < r.X1; k++ {
		if ix.spans[k].Intersects(r) {
			*out = append(*out, ix.ids[k])
		}
	}
}

// buildingSpan is a building's footprint including its mirrored reflection
// and roof ornaments.
func buildingSpan(b *Building, groundY float64) RectF {
	return RectF{
		X0: b.X,
		Y0: math.Min(b.Y, groundY-b.H),
		X1: b.X + b.W,
		Y1: b.Y + b.H + antennaHeight,
	}
}

func indexBuildings(bs []Building, groundY float64) *skylineIndex {
	spans := make([]RectF, len(bs))
	for i := range bs {
		spans[i] = buildingSpan(&bs[i], groundY)
	}
	return newSkylineIndex(spans)
}

// ViewRect is the world-space rectangle the camera currently shows.
func (c *Camera) ViewRect(w, h float64) RectF {
	z := c.Zoom
	if z <= 0 {
		z = 1
	}
	hw, hh := w*0.5, h*0.5
	return RectF{
		X0: hw + c.PanX - hw/z,
		Y0: hh - hh/z,
		X1: hw + c.PanX + hw/z,
		Y1: hh + hh/z,
	}
}
