package scene

import "math"

type Person struct {
	X, Y    float64
	Dir     int
	Speed   float64
	Phase   float64 // walk-cycle offset
	Waiting bool
	GoalX   float64
}

const (
	repelRadius    = 14.0
	repelPush      = 0.02
	crosswalkGate  = 60.0
	waitRollSides  = 17
	waitRollBelow  = 10 // waits when roll < waitRollBelow
	goalTolerance  = 8.0
	goalStride     = 90.0
	spawnGoal      = 120.0
	personWrapOut  = 60.0
	personWrapBack = 40.0
)

// NeighborQuery finds people near person i. Implementations must skip i
// itself by index.
type NeighborQuery interface {
	Neighbors(people []Person, i int, radius float64, fn func(j int))
}

// pairwiseNeighbors scans everyone: O(n²) per tick, fine for street-sized
// crowds.
type pairwiseNeighbors struct{}

func (pairwiseNeighbors) Neighbors(people []Person, i int, radius float64, fn func(j int)) {
	x := people[i].X
	for j := range people {
		if j == i {
			continue
		}
		if math.Abs(people[j].X-x) < radius {
			fn(j)
		}
	}
}

// PedestrianSystem owns the people on the sidewalk.
type PedestrianSystem struct {
	People []Person

	count     int
	bounds    *Bounds
	rng       *Rand
	neighbors NeighborQuery
}

func NewPedestrianSystem(n int, b *Bounds, rng *Rand) *PedestrianSystem {
	ps := &PedestrianSystem{
		count:     n,
		bounds:    b,
		rng:       rng,
		neighbors: pairwiseNeighbors{},
	}
	ps.Respawn()
	return ps
}

// SetNeighborQuery swaps the proximity search, e.g. for a spatial index.
func (ps *PedestrianSystem) SetNeighborQuery(q NeighborQuery) {
	if q == nil {
		q = pairwiseNeighbors{}
	}
	ps.neighbors = q
}

func (ps *PedestrianSystem) Respawn() {
	ps.People = ps.People[:0]
	for i := 0; i < ps.count; i++ {
		x := float64(ps.rng.Intn(int(ps.bounds.WorldW())))
		p := Person{
			X:     x,
			Y:     ps.bounds.GroundY + 12 + float64(ps.rng.Intn(6)),
			Dir:   ps.rng.Sign(),
			Speed: 0.35 + float64(ps.rng.Intn(8))*0.03,
			Phase: float64(ps.rng.Intn(100)) / 20.0,
		}
		p.GoalX = x + float64(ps.rng.Sign())*spawnGoal
		ps.People = append(ps.People, p)
	}
}

// mustWait rolls the crosswalk gate. It ignores the vehicle light phase:
// pedestrians and drivers follow separate policies.
func (ps *PedestrianSystem) mustWait(x float64, sites []LightSite) bool {
	wait := false
	for _, s := range sites {
		if math.Abs(x-s.X) < crosswalkGate && ps.rng.Intn(waitRollSides) < waitRollBelow {
			wait = true
		}
	}
	return wait
}

func (ps *PedestrianSystem) Update(dt float64, sites []LightSite) {
	if ps == nil || dt <= 0 {
		return
	}
	worldW := ps.bounds.WorldW()
	for i := range ps.People {
		p := &ps.People[i]

		push := 0.0
		ps.neighbors.Neighbors(ps.People, i, repelRadius, func(j int) {
			if ps.People[j].X-p.X > 0 {
				push -= repelPush
			} else {
				push += repelPush
			}
		})

		if ps.mustWait(p.X, sites) {
			p.Waiting = true
			continue
		}
		p.Waiting = false

		dir := signF(p.GoalX - p.X)
		step := clampF(p.Speed+push*dir, 0, p.Speed) * dt * frameUnits
		if dist := math.Abs(p.GoalX - p.X); step > dist {
			step = dist
		}
		p.X += dir * step
		p.Dir = int(dir)

		if math.Abs(p.GoalX-p.X) < goalTolerance {
			p.GoalX = p.X + float64(ps.rng.Sign())*goalStride
		}

		to := p.X
		if p.X < -personWrapOut {
			to = worldW + personWrapBack
		} else if p.X > worldW+personWrapOut {
			to = -personWrapBack
		}
		p.GoalX += to - p.X
		p.X = to
	}
}

func (ps *PedestrianSystem) WaitingCount() int {
	n := 0
	for i := range ps.People {
		if ps.People[i].Waiting {
			n++
		}
	}
	return n
}
