package scene

type VehicleKind uint8

const (
	Car VehicleKind = iota
	Bike
)

func (k VehicleKind) String() string {
	if k == Bike {
		return "bike"
	}
	return "car"
}

type Vehicle struct {
	Kind        VehicleKind
	X, Y        float64
	Speed       float64
	TargetSpeed float64
	Dir         int // +1 rightward, -1 leftward
}

// LightSite is a traffic-light position along the street.
type LightSite struct {
	X float64
}

type vehicleTuning struct {
	retargetPerMille int
	targetBase       float64
	targetLo         float64
	targetHi         float64
	spawnBase        float64
	accel            float64
	decel            float64
	bodyW, bodyH     float64
	wheelR           float64
	laneY            float64
	laneJitter       int
}

var tunings = [...]vehicleTuning{
	Car: {
		retargetPerMille: 3,
		targetBase:       0.5,
		targetLo:         0.5,
		targetHi:         3.0,
		spawnBase:        1.6,
		accel:            0.04,
		decel:            0.06,
		bodyW:            80,
		bodyH:            26,
		wheelR:           8,
		laneY:            72,
	},
	Bike: {
		retargetPerMille: 4,
		targetBase:       0.8,
		targetLo:         0.8,
		targetHi:         4.0,
		spawnBase:        2.0,
		accel:            0.05,
		decel:            0.07,
		bodyW:            44,
		bodyH:            14,
		wheelR:           7,
		laneY:            72,
		laneJitter:       8,
	},
}

func (v *Vehicle) tuning() vehicleTuning { return tunings[v.Kind] }

const (
	lightApproach = 120.0
	vehicleMargin = 300.0
)

// TrafficSystem owns cars, bikes and the fixed light sites.
type TrafficSystem struct {
	Vehicles []Vehicle
	Sites    []LightSite

	cars, bikes int
	bounds      *Bounds
	rng         *Rand
}

func NewTrafficSystem(cars, bikes int, b *Bounds, rng *Rand) *TrafficSystem {
	ts := &TrafficSystem{
		cars:   cars,
		bikes:  bikes,
		bounds: b,
		rng:    rng,
		Sites: []LightSite{
			{X: b.ViewW * 0.5},
			{X: b.ViewW * 1.1},
		},
	}
	ts.Respawn()
	return ts
}

// Respawn replaces both fleets with fresh vehicles.
func (ts *TrafficSystem) Respawn() {
	ts.Vehicles = ts.Vehicles[:0]
	for i := 0; i < ts.cars; i++ {
		ts.Vehicles = append(ts.Vehicles, ts.spawn(Car))
	}
	for i := 0; i < ts.bikes; i++ {
		ts.Vehicles = append(ts.Vehicles, ts.spawn(Bike))
	}
}

func (ts *TrafficSystem) spawn(kind VehicleKind) Vehicle {
	tu := tunings[kind]
	y := tu.laneY
	if tu.laneJitter > 0 {
		y += float64(ts.rng.Intn(tu.laneJitter))
	}
	speed := tu.spawnBase + float64(ts.rng.Intn(30))/20.0
	return Vehicle{
		Kind:        kind,
		X:           float64(ts.rng.Intn(int(ts.bounds.WorldW()))),
		Y:           y,
		Speed:       speed,
		TargetSpeed: speed,
		Dir:         ts.rng.Sign(),
	}
}

// approachingLight reports whether a light site lies ahead of v within the
// braking distance.
func (ts *TrafficSystem) approachingLight(v *Vehicle) bool {
	for _, s := range ts.Sites {
		ahead := s.X - v.X
		if v.Dir < 0 {
			ahead = v.X - s.X
		}
		if ahead > 0 && ahead < lightApproach {
			return true
		}
	}
	return false
}

// seek moves speed toward the target: throttle at the accel rate, brake at
// the faster decel rate.
func (v *Vehicle) seek(dt float64) {
	tu := v.tuning()
	v.Speed = approach(v.Speed, v.TargetSpeed, tu.accel*dt*frameUnits, tu.decel*dt*frameUnits)
}

func (ts *TrafficSystem) Update(dt float64, phase LightPhase) {
	if ts == nil || dt <= 0 {
		return
	}
	worldW := ts.bounds.WorldW()
	for i := range ts.Vehicles {
		v := &ts.Vehicles[i]
		tu := v.tuning()

		if ts.rng.Intn(1000) < tu.retargetPerMille {
			v.TargetSpeed = clampF(tu.targetBase+float64(ts.rng.Intn(40))/20.0, tu.targetLo, tu.targetHi)
		}
		if phase == PhaseStop && ts.approachingLight(v) {
			v.TargetSpeed = 0
		}

		v.seek(dt)
		v.X += float64(v.Dir) * v.Speed * dt * frameUnits

		if v.X < -vehicleMargin {
			v.X = worldW + vehicleMargin
		} else if v.X > worldW+vehicleMargin {
			v.X = -vehicleMargin
		}
	}
}

// StoppedCount returns the number of vehicles standing still.
func (ts *TrafficSystem) StoppedCount() int {
	n := 0
	for i := range ts.Vehicles {
		if ts.Vehicles[i].Speed == 0 {
			n++
		}
	}
	return n
}
