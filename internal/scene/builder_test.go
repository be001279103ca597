package scene

import "testing"

func TestBuildCityCoversStreetWithoutGaps(t *testing.T) {
	for _, seed := range []uint64{1, 2, 42, 1 << 40} {
		city := BuildCity(NewRand(seed), 1280, 140)
		if len(city) == 0 {
			t.Fatalf("seed %d: empty city", seed)
		}
		if city[0].X != 0 {
			t.Errorf("seed %d: first building at %v, want 0", seed, city[0].X)
		}
		for i, b := range city {
			if b.W <= 0 || b.H <= 0 {
				t.Errorf("seed %d building %d: size %vx%v", seed, i, b.W, b.H)
			}
			if b.H < buildingMinH || b.H >= buildingMinH+buildingVarH {
				t.Errorf("seed %d building %d: height %v out of range", seed, i, b.H)
			}
			if b.Y != 140 {
				t.Errorf("seed %d building %d: Y = %v, want ground 140", seed, i, b.Y)
			}
			if b.Roof >= roofStyles {
				t.Errorf("seed %d building %d: roof %d", seed, i, b.Roof)
			}
			for _, ch := range []float32{b.Base.R, b.Base.G, b.Base.B} {
				if ch < 0 || ch > 1 {
					t.Errorf("seed %d building %d: colour %v outside [0,1]", seed, i, b.Base)
				}
			}
			if i > 0 {
				prev := city[i-1]
				if b.X != prev.X+prev.W {
					t.Errorf("seed %d: gap between building %d and %d", seed, i-1, i)
				}
			}
		}
		last := city[len(city)-1]
		if last.X+last.W != 2560 {
			t.Errorf("seed %d: row ends at %v, want 2560", seed, last.X+last.W)
		}
	}
}

func TestBuildCityDeterministic(t *testing.T) {
	a := BuildCity(NewRand(99), 1280, 140)
	b := BuildCity(NewRand(99), 1280, 140)
	if len(a) != len(b) {
		t.Fatalf("len %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("building %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}

	c := BuildCity(NewRand(100), 1280, 140)
	same := len(a) == len(c)
	for i := 0; same && i < len(a); i++ {
		same = a[i] == c[i]
	}
	if same {
		t.Error("different seeds built the same city")
	}
}

func TestBuildClouds(t *testing.T) {
	clouds := BuildClouds(NewRand(3), 14, 1280, 780)
	if len(clouds) != 14 {
		t.Fatalf("clouds = %d, want 14", len(clouds))
	}
	for i, c := range clouds {
		if c.Depth < 0.2 || c.Depth >= 1.0 {
			t.Errorf("cloud %d depth %v outside [0.2,1.0)", i, c.Depth)
		}
		if c.X < 0 || c.X >= 2560 {
			t.Errorf("cloud %d X %v outside [0,2560)", i, c.X)
		}
		if c.Speed <= 0 || c.Size <= 0 {
			t.Errorf("cloud %d speed %v size %v", i, c.Speed, c.Size)
		}
	}
}
