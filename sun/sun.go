// Package sun computes UTC sunrise/sunset and twilight times for a
// civil date and geographic location, using the low-precision NOAA
// solar position series (Jean Meeus's Astronomical Algorithms). It is
// grounded 1:1 on hdate_get_utc_sun_time_deg/_full in
// hdate_sun_time.c. Longitude follows the teacher's
// zmanim/calculator/geo_location.go convention: east of Greenwich is
// negative, west is positive.
package sun

import "math"

// Altitude angles (degrees below zenith) for conventional sun-related
// times, matching hdate_get_utc_sun_time_full's fixed call sites.
const (
	AltitudeSunriseSunset  = 90.833
	AltitudeFirstLight     = 106.01 // alot hashachar
	AltitudeTalit          = 101.0
	AltitudeFirstStars     = 96.0 // tzeit hakochavim
	AltitudeThreeStars     = 98.5
)

// DomainError is the sentinel minute value returned for both sunrise
// and sunset when the requested altitude is never reached on the given
// date/latitude (polar day or night).
const DomainError = -720

// GeoLocation is a point on Earth. Latitude is degrees, positive
// north. Longitude is degrees; per this package's convention (matching
// the teacher's), east of Greenwich is negative, west is positive.
type GeoLocation struct {
	Latitude  float64
	Longitude float64
}

func dayOfYear(day, month, year int) int {
	jd := (1461*(year+4800+(month-14)/12))/4 +
		(367*(month-2-12*((month-14)/12)))/12 -
		(3*((year+4900+(month-14)/12)/100))/4 + day
	jan1 := (1461*(year+4799))/4 + 367*11/12 - (3*((year+4899)/100))/4
	return jd - jan1
}

// AtAltitude returns the UTC sunrise and sunset minutes-of-day for the
// given Gregorian date, location and target sun altitude in degrees
// below zenith. If the sun never reaches that altitude on this date at
// this latitude, both returned values are DomainError.
func AtAltitude(day, month, year int, loc GeoLocation, altitudeDeg float64) (sunrise, sunset int) {
	doy := dayOfYear(day, month, year)

	gamma := 2.0 * math.Pi * (float64(doy-1) / 365.0)

	eqtime := 229.18 * (0.000075 + 0.001868*math.Cos(gamma) -
		0.032077*math.Sin(gamma) - 0.014615*math.Cos(2.0*gamma) -
		0.040849*math.Sin(2.0*gamma))

	decl := 0.006918 - 0.399912*math.Cos(gamma) + 0.070257*math.Sin(gamma) -
		0.006758*math.Cos(2.0*gamma) + 0.000907*math.Sin(2.0*gamma) -
		0.002697*math.Cos(3.0*gamma) + 0.00148*math.Sin(3.0*gamma)

	latRad := math.Pi * loc.Latitude / 180.0
	altRad := math.Pi * altitudeDeg / 180.0

	cosHA := math.Cos(altRad)/(math.Cos(latRad)*math.Cos(decl)) - math.Tan(latRad)*math.Tan(decl)
	if cosHA < -1 || cosHA > 1 {
		return DomainError, DomainError
	}
	ha := math.Acos(cosHA)
	ha = 720.0 * ha / math.Pi

	// Longitude is east-negative, so solar noon is 720 + 4*Longitude.
	sunrise = int(720.0 + 4.0*loc.Longitude - ha - eqtime)
	sunset = int(720.0 + 4.0*loc.Longitude + ha - eqtime)
	return sunrise, sunset
}

// Times returns UTC sunrise/sunset minutes-of-day at the conventional
// 90.833 degree altitude (accounting for atmospheric refraction and the
// sun's apparent radius).
func Times(day, month, year int, loc GeoLocation) (sunrise, sunset int) {
	return AtAltitude(day, month, year, loc, AltitudeSunriseSunset)
}

// Full bundles the eight quantities derived from the core sun-time
// calculation: the length of a halachic "solar hour" (1/12 of daylight,
// in minutes), first light, talit time, sunrise, midday, sunset, first
// stars and three stars, all in UTC minutes-of-day.
type Full struct {
	SolarHour   int
	FirstLight  int
	Talit       int
	Sunrise     int
	Midday      int
	Sunset      int
	FirstStars  int
	ThreeStars  int
}

// TimesFull computes the full bundle of solar times for a date and
// location.
func TimesFull(day, month, year int, loc GeoLocation) Full {
	sunrise, sunset := Times(day, month, year, loc)

	firstLight, _ := AtAltitude(day, month, year, loc, AltitudeFirstLight)
	talit, _ := AtAltitude(day, month, year, loc, AltitudeTalit)
	_, firstStars := AtAltitude(day, month, year, loc, AltitudeFirstStars)
	_, threeStars := AtAltitude(day, month, year, loc, AltitudeThreeStars)

	return Full{
		SolarHour:  (sunset - sunrise) / 12,
		FirstLight: firstLight,
		Talit:      talit,
		Sunrise:    sunrise,
		Midday:     (sunset + sunrise) / 2,
		Sunset:     sunset,
		FirstStars: firstStars,
		ThreeStars: threeStars,
	}
}
