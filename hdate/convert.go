// Standalone conversions and classifiers: the part of the public surface
// that doesn't go through DateFacts. hdate_julian.c exposes
// hdate_gdate_to_jd/hdate_jd_to_gdate/hdate_hdate_to_jd/hdate_jd_to_hdate
// and hdate_get_size_of_hebrew_year/hdate_get_year_type as free functions
// callers can reach directly, not only through the full date object; this
// file re-exports the same cut, matching the teacher's non-internal
// timeutil/jdt package for the equivalent Gregorian/Julian conversion
// concern.
package hdate

import (
	"github.com/levavi/hdate/internal/hebrewyear"
	"github.com/levavi/hdate/internal/julian"
)

// ErrImpossibleYearType re-exports internal/hebrewyear's sentinel so
// callers of YearType can errors.Is against it without importing an
// internal package.
var ErrImpossibleYearType = hebrewyear.ErrImpossibleYearType

// GregorianToJDN converts a proleptic Gregorian date to a Julian Day
// Number. Every (day, month, year) triple is accepted; callers wanting
// calendar validation should go through FromGregorian instead.
func GregorianToJDN(day, month, year int) int {
	return julian.GregorianToJDN(day, month, year)
}

// JDNToGregorian converts a Julian Day Number back to a proleptic
// Gregorian date.
func JDNToGregorian(jdn int) (day, month, year int) {
	return julian.JDNToGregorian(jdn)
}

// HebrewToJDN converts a Hebrew calendar date to a Julian Day Number,
// also returning the JDN of 1 Tishrei of the given year and of the year
// following it (§6's "also returns JDN of 1 Tishrei of this and next
// year"). Returns ok=false for a day outside 1..30, a month outside
// 1..14, or month 13/14 in a non-leap year; day 30 of a 29-day month is
// not rejected.
func HebrewToJDN(day, month, year int) (jdn, jdnTishrei1, jdnTishrei1Next int, ok bool) {
	if day < 1 || day > 30 || month < 1 || month > 14 {
		return 0, 0, 0, false
	}

	yearLength := hebrewyear.YearLength(year)
	if month >= 13 && yearLength <= 365 {
		return 0, 0, 0, false
	}

	daysFromEpoch := hebrewyear.DaysFromEpoch(year)
	jdn = julian.HebrewToJDN(day, month, julian.HebrewToJDNParams{
		DaysFromEpoch: daysFromEpoch,
		YearLength:    yearLength,
	})
	jdnTishrei1 = julian.JDNOfTishrei1(daysFromEpoch)
	jdnTishrei1Next = julian.JDNOfTishrei1(hebrewyear.DaysFromEpoch(year + 1))
	return jdn, jdnTishrei1, jdnTishrei1Next, true
}

// JDNToHebrew converts a Julian Day Number to a Hebrew calendar date.
// Every signed JDN is valid input.
func JDNToHebrew(jdn int) (day, month, year int) {
	facts, _ := fromJDN(jdn)
	return facts.HDay, facts.HMon, facts.HYear
}

// HebrewYearLength returns the number of days in the given Hebrew year.
func HebrewYearLength(year int) int {
	return hebrewyear.YearLength(year)
}

// YearType classifies a Hebrew year by its (length, new-year-weekday)
// pair into one of the 14 legal combinations. Unlike the DateFacts
// construction path, this never panics: an impossible combination from
// caller-supplied input is reported as ErrImpossibleYearType, not an
// invariant violation.
func YearType(length, newYearWeekday int) (int, error) {
	return hebrewyear.YearType(length, newYearWeekday)
}
