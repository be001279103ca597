package scene

import "math"

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// approach moves cur toward target by at most up (when rising) or down
// (when falling), never past target.
func approach(cur, target, up, down float64) float64 {
	if cur < target {
		cur += up
		if cur > target {
			cur = target
		}
		return cur
	}
	if cur > target {
		cur -= down
		if cur < target {
			cur = target
		}
	}
	return cur
}

// wrapAngle folds a into [0, 2π).
func wrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func signF(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
