package scene

type RoofStyle uint8

const (
	RoofFlat RoofStyle = iota
	RoofStepped
	RoofAntenna
	roofStyles
)

type Building struct {
	X, Y, W, H    float64
	Base          Color
	BrightWindows bool
	Roof          RoofStyle
}

type Cloud struct {
	X, Y  float64
	Speed float64
	Size  float64
	Depth float64 // 0..1; below CloudFrontDepth draws behind buildings
}

const (
	CloudFrontDepth = 0.5

	buildingMinW = 70
	buildingVarW = 140
	buildingMinH = 160
	buildingVarH = 320
)

// BuildCity lays buildings left to right, edge to edge, from x=0 until the
// row covers twice the viewport width. The last building is trimmed to end
// exactly at 2*viewW.
func BuildCity(r *Rand, viewW, groundY float64) []Building {
	worldW := 2 * viewW
	out := make([]Building, 0, int(worldW/buildingMinW)+1)
	x := 0.0
	for x < worldW {
		w := float64(buildingMinW + r.Intn(buildingVarW))
		h := float64(buildingMinH + r.Intn(buildingVarH))
		if x+w > worldW {
			w = worldW - x
		}
		out = append(out, Building{
			X: x, Y: groundY, W: w, H: h,
			Base: RGB(
				0.12+float32(r.Intn(6))*0.06,
				0.12+float32(r.Intn(5))*0.05,
				0.16+float32(r.Intn(6))*0.04,
			),
			BrightWindows: r.Intn(3) == 0,
			Roof:          RoofStyle(r.Intn(int(roofStyles))),
		})
		x += w
	}
	return out
}

// BuildClouds scatters n clouds across the double-width sky.
func BuildClouds(r *Rand, n int, viewW, viewH float64) []Cloud {
	out := make([]Cloud, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Cloud{
			X:     float64(r.Intn(int(2 * viewW))),
			Y:     viewH - 120 - float64(r.Intn(220)),
			Speed: 0.06 + float64(r.Intn(12))*0.02,
			Size:  float64(50 + r.Intn(80)),
			Depth: 0.2 + float64(r.Intn(80))/100.0,
		})
	}
	return out
}
