// Package hdate assembles the canonical DateFacts record from any one of
// the three calendar representations (Gregorian, Hebrew, Julian Day
// Number) and exposes the holiday/parasha/omer queries that are pure
// functions of it. Every constructor funnels through a Julian Day
// Number, mirroring hdate_set_gdate/hdate_set_hdate/hdate_set_jd in
// hdate_julian.c — one conversion plus one year-length lookup fills
// every field.
package hdate

import (
	"time"

	"github.com/levavi/hdate/holiday"
	"github.com/levavi/hdate/internal/hebrewyear"
	"github.com/levavi/hdate/internal/julian"
	"github.com/levavi/hdate/parasha"
)

// Weekday values: 1=Sunday .. 7=Saturday, stable across versions.
const (
	Sunday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// Hebrew month values. Non-leap years never produce AdarI/AdarII; Adar
// itself (6) stands in for both.
const (
	Tishrei = iota + 1
	Cheshvan
	Kislev
	Tevet
	Shvat
	Adar
	Nisan
	Iyyar
	Sivan
	Tammuz
	Av
	Elul
	AdarI
	AdarII
)

// now backs the "today" sentinel on FromGregorian(0, 0, _). Overridable
// in tests only; library consumers must not reassign it.
var now = time.Now

// DateFacts is the canonical record produced for any input date. It is
// immutable after construction; all downstream queries are pure
// functions of it.
type DateFacts struct {
	GDay, GMon, GYear int
	HDay, HMon, HYear int
	JDN               int
	Weekday           int
	YearLength        int
	NewYearWeekday    int
	YearType          int
	DaysSinceRH       int
	WeeksSinceRH      int
}

// FromGregorian builds a DateFacts from a proleptic Gregorian date. A
// zero day or month means "today", read from the overridable clock.
// Any other day outside 1..31 or month outside 1..12 is rejected.
func FromGregorian(day, month, year int) (DateFacts, bool) {
	if day == 0 || month == 0 {
		t := now()
		day, month, year = t.Day(), int(t.Month()), t.Year()
	} else if day < 1 || day > 31 || month < 1 || month > 12 {
		return DateFacts{}, false
	}

	return fromJDN(julian.GregorianToJDN(day, month, year))
}

// FromHebrew builds a DateFacts from a Hebrew calendar date. Month 13/14
// are rejected outside leap years. Per spec, year < 1 is undefined
// behavior, not validated here.
func FromHebrew(day, month, year int) (DateFacts, bool) {
	if day < 1 || day > 30 || month < 1 || month > 14 {
		return DateFacts{}, false
	}

	yearLength := hebrewyear.YearLength(year)
	if month >= 13 && yearLength <= 365 {
		return DateFacts{}, false
	}

	params := julian.HebrewToJDNParams{
		DaysFromEpoch: hebrewyear.DaysFromEpoch(year),
		YearLength:    yearLength,
	}
	return fromJDN(julian.HebrewToJDN(day, month, params))
}

// FromJDN builds a DateFacts from a Julian Day Number directly. Every
// signed integer is a valid JDN; this constructor never rejects input.
func FromJDN(jdn int) (DateFacts, bool) {
	return fromJDN(jdn)
}

func fromJDN(jdn int) (DateFacts, bool) {
	gDay, gMon, gYear := julian.JDNToGregorian(jdn)

	// Guess the Hebrew year as Gregorian year + 3760, then correct if
	// that guess underestimated it.
	hYear := gYear + 3760
	tishrei1JDN := julian.JDNOfTishrei1(hebrewyear.DaysFromEpoch(hYear))
	nextTishrei1JDN := julian.JDNOfTishrei1(hebrewyear.DaysFromEpoch(hYear + 1))
	if nextTishrei1JDN <= jdn {
		hYear++
		tishrei1JDN = nextTishrei1JDN
		nextTishrei1JDN = julian.JDNOfTishrei1(hebrewyear.DaysFromEpoch(hYear + 1))
	}

	hDay, hMon := julian.JDNToHebrew(jdn, julian.HebrewFromJDNParams{
		JDNTishrei1:     tishrei1JDN,
		JDNTishrei1Next: nextTishrei1JDN,
	})

	yearLength := nextTishrei1JDN - tishrei1JDN
	newYearWeekday := julian.Weekday(tishrei1JDN)
	weekday := julian.Weekday(jdn)

	// yearLength and newYearWeekday are this function's own arithmetic,
	// not caller input, so a non-nil error here is an assertion failure
	// in the Hebrew-year engine, not a bad date: fail loud rather than
	// build a DateFacts around a YearType of 0.
	yearType, err := hebrewyear.YearType(yearLength, newYearWeekday)
	if err != nil {
		hebrewyear.Fail(err, hYear)
	}

	daysSinceRH := jdn - tishrei1JDN + 1
	weeksSinceRH := (daysSinceRH-1+newYearWeekday-1)/7 + 1

	return DateFacts{
		GDay: gDay, GMon: gMon, GYear: gYear,
		HDay: hDay, HMon: hMon, HYear: hYear,
		JDN:            jdn,
		Weekday:        weekday,
		YearLength:     yearLength,
		NewYearWeekday: newYearWeekday,
		YearType:       yearType,
		DaysSinceRH:    daysSinceRH,
		WeeksSinceRH:   weeksSinceRH,
	}, true
}

// Holiday resolves the holiday id (0..37) for this date.
func (f DateFacts) Holiday(diaspora bool) holiday.ID {
	return holiday.Resolve(holiday.Input{
		HMon:       f.HMon,
		HDay:       f.HDay,
		Weekday:    f.Weekday,
		YearLength: f.YearLength,
		GYear:      f.GYear,
	}, diaspora)
}

// Parasha resolves the weekly Torah reading id (0..61) for this date.
func (f DateFacts) Parasha(diaspora bool) parasha.ID {
	return parasha.Resolve(parasha.Input{
		HMon:           f.HMon,
		HDay:           f.HDay,
		Weekday:        f.Weekday,
		WeeksSinceRH:   f.WeeksSinceRH,
		NewYearWeekday: f.NewYearWeekday,
		YearLength:     f.YearLength,
		YearType:       f.YearType,
	}, diaspora)
}

// OmerDay returns the day of the omer count (1..49), or 0 outside
// [16 Nisan, 5 Sivan].
func (f DateFacts) OmerDay() int {
	sixteenNisan, ok := FromHebrew(16, Nisan, f.HYear)
	if !ok {
		return 0
	}

	day := f.JDN - sixteenNisan.JDN + 1
	if day > 49 || day < 0 {
		return 0
	}
	return day
}
