package scene

import "github.com/go-gl/mathgl/mgl32"

type BlendMode uint8

const (
	BlendAlpha    BlendMode = iota // src*a + dst*(1-a)
	BlendAdditive                  // src*a + dst
	BlendOpaque                    // src
)

// Canvas is the drawing surface a backend hands to the compositor. Coordinates
// are pixels with y growing upward; colours carry their own alpha.
type Canvas interface {
	Point(x, y float32, c Color)
	Line(x0, y0, x1, y1 float32, c Color)
	FillRect(x, y, w, h float32, c Color)
	FillCircle(cx, cy, r float32, c Color)
	SetBlend(m BlendMode)
	PushTransform(m mgl32.Mat4)
	PopTransform()
}

type Layer uint8

const (
	LayerSky Layer = iota
	LayerCloudsBack
	LayerBuildings
	LayerReflections
	LayerPuddles
	LayerSplashes
	LayerRoad
	LayerTrafficLights
	LayerVehicles
	LayerPedestrians
	LayerRain
	LayerCloudsFront
	LayerLetterbox
	LayerGrain
)

// Layers is the compositing order, back to front.
var Layers = []Layer{
	LayerSky,
	LayerCloudsBack,
	LayerBuildings,
	LayerReflections,
	LayerPuddles,
	LayerSplashes,
	LayerRoad,
	LayerTrafficLights,
	LayerVehicles,
	LayerPedestrians,
	LayerRain,
	LayerCloudsFront,
	LayerLetterbox,
	LayerGrain,
}

var layerNames = [...]string{
	LayerSky:           "sky",
	LayerCloudsBack:    "clouds-back",
	LayerBuildings:     "buildings",
	LayerReflections:   "reflections",
	LayerPuddles:       "puddles",
	LayerSplashes:      "splashes",
	LayerRoad:          "road",
	LayerTrafficLights: "traffic-lights",
	LayerVehicles:      "vehicles",
	LayerPedestrians:   "pedestrians",
	LayerRain:          "rain",
	LayerCloudsFront:   "clouds-front",
	LayerLetterbox:     "letterbox",
	LayerGrain:         "grain",
}

func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "unknown"
}

// LayerMarker is implemented by canvases that want to know which layer is
// being drawn, e.g. to batch per layer or record the order.
type LayerMarker interface {
	BeginLayer(l Layer)
}
