package solar

import (
	"math"
)

// Orbital elements of the sun, as seen from the earth, and their drift
// per day of timescale.
const (
	PerihelionLongitude      = 282.9404
	PerihelionLongitudeDrift = 4.70935e-5

	Eccentricity      = 0.016709
	EccentricityDrift = -1.151e-9

	MeanAnomalyAtEpoch = 356.0470
	MeanAnomalyRate    = 0.9856002585

	Obliquity      = 23.4393
	ObliquityDrift = -3.563e-7

	FullCircle = 360.0
)

// Position is the sun's location along its apparent orbit at a single
// point in time
type Position struct {
	Longitude   float64 // ecliptic longitude, degrees in [0, 360)
	Distance    float64 // earth-sun distance in AU
	MeanAnomaly float64 // degrees in [0, 360)
	TrueAnomaly float64 // degrees in (-180, 180]
	Declination float64 // degrees north of the celestial equator
}

// LongitudeOfPerihelion calculates the angle between the vernal
// equinox and the point where the earth is closest to the sun.
func LongitudeOfPerihelion(timescale float64) float64 {
	return PerihelionLongitude + PerihelionLongitudeDrift*timescale
}

// OrbitalEccentricity calculates how elliptical the earth's orbit
// is at a given time
func OrbitalEccentricity(timescale float64) float64 {
	return Eccentricity + EccentricityDrift*timescale
}

// ObliquityOfEcliptic calculates the tilt of the earth's axis relative
// to the plane of its orbit
func ObliquityOfEcliptic(timescale float64) float64 {
	return Obliquity + ObliquityDrift*timescale
}

// Declination converts an ecliptic longitude into the sun's angle north
// of the celestial equator
func Declination(longitude, obliquity float64) float64 {
	return asind(sind(obliquity) * sind(longitude))
}

// SolarMeanAnomaly calculates the angular distance travelled by the
// mean sun since perihelion.
func SolarMeanAnomaly(timescale float64) float64 {
	return Normalize(MeanAnomalyAtEpoch + MeanAnomalyRate*timescale)
}

// EccentricAnomaly approximates the eccentric anomaly from the mean
// anomaly using the first order expansion of Kepler's equation. This is
// accurate enough for the earth's nearly circular orbit.
//
// https://en.wikipedia.org/wiki/Eccentric_anomaly
func EccentricAnomaly(meanAnomaly, eccentricity float64) float64 {
	return meanAnomaly + radToDeg*eccentricity*sind(meanAnomaly)*(1+eccentricity*cosd(meanAnomaly))
}

// Locate calculates the sun's position for the given timescale value
func Locate(timescale float64) Position {
	w := LongitudeOfPerihelion(timescale)
	e := OrbitalEccentricity(timescale)
	m := SolarMeanAnomaly(timescale)
	E := EccentricAnomaly(m, e)

	// rectangular coordinates in the plane of the orbit, x pointing
	// towards perihelion
	x := cosd(E) - e
	y := sind(E) * math.Sqrt(1-e*e)

	v := atan2d(y, x)
	longitude := Normalize(v + w)
	return Position{
		Longitude:   longitude,
		Distance:    math.Hypot(x, y),
		MeanAnomaly: m,
		TrueAnomaly: v,
		Declination: Declination(longitude, ObliquityOfEcliptic(timescale)),
	}
}

// EclipticLongitude calculates the sun's distance along the
// ecliptic, measured from the vernal equinox
func EclipticLongitude(timescale float64) float64 {
	return Locate(timescale).Longitude
}

// Normalize reduces an angle in degrees to the range [0, 360).
//
// math.Mod keeps the sign of its first argument, so negative results are
// shifted up one revolution. Adding 360 to a tiny negative remainder can
// round to exactly 360, which is folded back to 0.
func Normalize(degrees float64) float64 {
	d := math.Mod(degrees, FullCircle)
	if d < 0 {
		d += FullCircle
	}
	if d >= FullCircle {
		d = 0
	}
	return d
}
