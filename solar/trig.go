package solar

import (
	"math"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

func sind(x float64) float64 {
	return math.Sin(x * degToRad)
}

func cosd(x float64) float64 {
	return math.Cos(x * degToRad)
}

func atan2d(y, x float64) float64 {
	return radToDeg * math.Atan2(y, x)
}

func asind(x float64) float64 {
	return radToDeg * math.Asin(x)
}
