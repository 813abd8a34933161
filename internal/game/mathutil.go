package game

import "math"

func approach(cur, target, maxDelta float64) float64 {
	if cur < target {
		cur += maxDelta
		if cur > target {
			cur = target
		}
		return cur
	}
	if cur > target {
		cur -= maxDelta
		if cur < target {
			cur = target
		}
	}
	return cur
}

// footPan maps a foot to a small stereo offset, left foot left.
func footPan(foot int) float64 {
	if foot == 0 {
		return -0.35
	}
	return 0.35
}

// bob is a 0..1 oscillation used to float the exit beacon.
func bob(t, speed float64) float64 {
	return 0.5 + 0.5*math.Sin(t*speed)
}
