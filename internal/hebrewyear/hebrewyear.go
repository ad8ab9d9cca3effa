// Package hebrewyear implements the rabbinic molad calculation and the
// dechiyot (postponement rules) that together determine, for any Hebrew
// year, how many days have elapsed since a fixed epoch and how long the
// year itself runs. It is grounded on hdate_days_from_3744 and
// hdate_get_year_type in the py-libhdate C core (hdate_julian.c); the
// part/hour/day unit names follow the teacher's
// hebrewcalendar/timeutil/jdt/moladchalakim.go constants. Divisions here
// use floor semantics throughout (per spec.md §4.1's explicit "floor"),
// not Go's truncate-toward-zero "/", because the molad arithmetic runs
// negative for Hebrew years before 3744.
package hebrewyear

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/levavi/hdate/internal/xlog"
)

// Units of the molad calculation: 1 hour = 1080 chalakim ("parts"), 1 day
// = 24 hours, 1 week = 7 days.
const (
	PartsPerHour = 1080
	PartsPerDay  = 24 * PartsPerHour
	PartsPerWeek = 7 * PartsPerDay
)

// parts builds a part count from hours and parts-of-an-hour, mirroring
// the C macro M(h,p).
func parts(hours, p int) int {
	return hours*PartsPerHour + p
}

// MeanLunation is the part of the mean lunar month (29 days, 12 hours,
// 793 parts) beyond 28 whole days: 1 day, 12 hours, 793 parts. The
// remaining 28 days per month are added separately (months*28).
const MeanLunation = PartsPerDay + 12*PartsPerHour + 793

// epochMolad is the molad of 1 Tishrei 3744 (the calculation's fixed
// starting point): 7 hours and 779 parts into the day.
const epochMolad = PartsPerHour*7 + 779

// FirstYear is the earliest Hebrew year this package will compute for.
// Per spec §7, year < 1 is undefined behavior; callers must not ask.
const FirstYear = 1

// cacheSize is generous: a caller walking a century of Hebrew years keeps
// every one resident without eviction thrashing.
const cacheSize = 4096

var (
	yearCache   = mustCache()
	flightGroup singleflight.Group
)

func mustCache() *lru.Cache[int, int] {
	c, err := lru.New[int, int](cacheSize)
	if err != nil {
		// cacheSize is a positive compile-time constant; lru.New only
		// fails for size <= 0.
		panic(err)
	}
	return c
}

// DaysFromEpoch returns the elapsed-day count of 1 Tishrei of the given
// Hebrew year, applying the Molad Zaken and Lo ADU Rosh postponements.
// The count is offset by two from a plain "days since 1 Tishrei 3744"
// (DaysFromEpoch(3744) is -2); the difference between two years' counts
// is the number of days between their new years, and
// julian.JDNOfTishrei1 turns a count into a Julian Day Number. Results are memoized: within a process, repeated
// calls for the same year (common when scanning adjacent years to find a
// containing year, or when many goroutines convert dates in the same
// Hebrew year concurrently) hit an in-memory cache instead of
// recomputing the molad arithmetic, and singleflight ensures concurrent
// first-time lookups for the same year compute it only once.
func DaysFromEpoch(year int) int {
	if v, ok := yearCache.Get(year); ok {
		return v
	}

	v, _, _ := flightGroup.Do(itoa(year), func() (any, error) {
		if v, ok := yearCache.Get(year); ok {
			return v, nil
		}
		computed := daysFromEpochUncached(year)
		yearCache.Add(year, computed)
		return computed, nil
	})

	return v.(int)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func daysFromEpochUncached(year int) int {
	n := year - 3744

	leapLeft := mod(7*n+1, 19)
	leapMonths := floorDiv(7*n+1, 19)
	months := 12*n + leapMonths

	total := months*MeanLunation + epochMolad
	days := months*28 + floorDiv(total, PartsPerDay) - 2

	partsInDay := mod(total, PartsPerDay)
	weekDay := floorDiv(mod(total, PartsPerWeek), PartsPerDay)

	// Molad Zaken: GaTRaD (fewer than 12 months left in the current
	// leap cycle, molad on Tuesday at or after 9h204p) and BeTuTaKFoT
	// (fewer than 7 months left, molad on Monday at or after 15h589p).
	if (weekDay == 3 && partsInDay >= parts(9+6, 204) && leapLeft < 12) ||
		(weekDay == 2 && partsInDay >= parts(15+6, 589) && leapLeft < 7) {
		days++
		weekDay++
	}

	// Lo ADU Rosh: Rosh Hashana never falls on Sunday(1), Wednesday(4)
	// or Friday(6), checked against the same week_day the Molad Zaken
	// step above may already have advanced.
	if weekDay == 1 || weekDay == 4 || weekDay == 6 {
		days++
	}

	return days
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// IsLeapYear reports whether a Hebrew year is a leap year (13 months):
// years 3, 6, 8, 11, 14, 17, 19 of the 19-year Metonic cycle.
func IsLeapYear(year int) bool {
	return mod(7*year+1, 19) < 7
}

// YearLength returns the number of days in the given Hebrew year.
func YearLength(year int) int {
	return DaysFromEpoch(year+1) - DaysFromEpoch(year)
}

// NewYearWeekday returns the weekday (1=Sunday..7=Saturday) of 1 Tishrei
// of the given Hebrew year.
func NewYearWeekday(year int) int {
	return mod(DaysFromEpoch(year)+1, 7) + 1
}

// yearTypeOffsets reproduces hdate_get_year_type's 24-slot table
// verbatim; a 0 marks an (length,weekday) combination that cannot occur.
var yearTypeOffsets = [24]int{
	1, 0, 0, 2, 0, 3, 4, 0, 5, 0, 6, 7,
	8, 0, 9, 10, 0, 11, 0, 0, 12, 0, 13, 14,
}

// ErrImpossibleYearType is returned by YearType for a (length, weekday)
// combination that cannot occur by construction; it indicates a caller
// bug (e.g. a weekday outside {2,3,5,7}) rather than a valid calendar
// edge case.
var ErrImpossibleYearType = errors.New("hebrewyear: impossible (length, new_year_weekday) combination")

// YearType classifies a Hebrew year by its (length, new-year-weekday)
// pair into one of the 14 legal combinations (§4.1). It mirrors
// hdate_get_year_type's offset arithmetic exactly.
func YearType(length, newYearWeekday int) (int, error) {
	offset := (newYearWeekday+1)/2 + 4*((length%10-3)+(length/10-35))
	if offset < 1 || offset > 24 {
		return 0, ErrImpossibleYearType
	}
	t := yearTypeOffsets[offset-1]
	if t == 0 {
		return 0, ErrImpossibleYearType
	}
	return t, nil
}

// Fail logs and panics on an impossible (length, new-year-weekday)
// combination. Only call this from a path that computed both arguments
// itself (e.g. hdate.fromJDN, which derives them from its own verified
// year-length and weekday arithmetic) — a non-nil error there means this
// package's own arithmetic is wrong, not that a caller passed bad input.
// YearType itself never panics: callers feeding it arbitrary input get
// the error back to handle themselves.
func Fail(err error, year int) {
	xlog.Fail("hebrewyear", err, map[string]any{"year": year})
}
