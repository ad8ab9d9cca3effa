// Package julian implements the raw, stateless conversions between the
// proleptic Gregorian calendar, the Hebrew calendar and Julian Day
// Numbers. Every formula here is grounded on the py-libhdate C core
// (hdate_julian.c): the Fliegel/Van Flandern JDN algorithm for Gregorian
// conversion and Amos Shapir's elapsed-days arithmetic for Hebrew
// conversion. No calendar-table knowledge beyond raw day counts lives
// here — year length and year type are internal/hebrewyear's job.
package julian

// JewishEpochOffset is added to the elapsed-day count produced by the
// Hebrew-year engine to land on a Julian Day Number. A day count of 0
// lands on JDN 1715119 via JDNOfTishrei1 (which adds one more); 1 Tishrei
// 3744 itself has a day count of -2 and is JDN 1715117.
const JewishEpochOffset = 1715118

// GregorianToJDN converts a proleptic Gregorian calendar date to a Julian
// Day Number using the standard Fliegel/Van Flandern formula. No
// year-zero skip is applied — year is a signed astronomical year number.
func GregorianToJDN(day, month, year int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// JDNToGregorian is the inverse of GregorianToJDN.
func JDNToGregorian(jdn int) (day, month, year int) {
	l := jdn + 68569
	n := (4 * l) / 146097
	l = l - (146097*n+3)/4
	i := (4000 * (l + 1)) / 1461001
	l = l - (1461*i)/4 + 31
	j := (80 * l) / 2447
	day = l - (2447*j)/80
	l = j / 11
	month = j + 2 - 12*l
	year = 100*(n-49) + i + l

	return day, month, year
}

// Weekday returns 1=Sunday..7=Saturday for a Julian Day Number.
func Weekday(jdn int) int {
	return (jdn+1)%7 + 1
}

// HebrewToJDNParams bundles the year-length figures the Hebrew-year
// engine must hand the converter: the elapsed-day count of the year's
// own 1 Tishrei (relative to the epoch used by internal/hebrewyear), and
// the year's length.
type HebrewToJDNParams struct {
	// DaysFromEpoch is internal/hebrewyear's days_from_epoch(year).
	DaysFromEpoch int
	// YearLength is the length in days of the Hebrew year containing
	// the date being converted (353..355 or 383..385).
	YearLength int
}

// HebrewToJDN converts a Hebrew calendar date to a Julian Day Number.
// Month 13 (Adar I) is folded to month 6 (Adar); month 14 (Adar II) is
// folded to month 6 with 30 added to the day, mirroring hdate_hdate_to_jd.
func HebrewToJDN(day, month int, p HebrewToJDNParams) int {
	if month == 13 {
		month = 6
	} else if month == 14 {
		month = 6
		day += 30
	}

	d := p.DaysFromEpoch + (59*(month-1)+1)/2 + day

	if p.YearLength%10 > 4 && month > 2 { // long Cheshvan
		d++
	}
	if p.YearLength%10 < 4 && month > 3 { // short Kislev
		d--
	}
	if p.YearLength > 365 && month > 6 { // leap year, Nisan or later
		d += 30
	}

	return d + JewishEpochOffset
}

// JDNOfTishrei1 converts a days_from_epoch(year) value into the Julian
// Day Number of 1 Tishrei of that year.
func JDNOfTishrei1(daysFromEpoch int) int {
	return daysFromEpoch + JewishEpochOffset + 1
}

// HebrewFromJDNParams is what the caller must supply to resolve a Julian
// Day Number into a Hebrew date: the Julian Day Numbers of 1 Tishrei of
// the containing Hebrew year and of the year after it. The caller corrects
// its year guess before filling these in; their difference is the
// containing year's length.
type HebrewFromJDNParams struct {
	JDNTishrei1     int
	JDNTishrei1Next int
}

// JDNToHebrew converts a Julian Day Number to a Hebrew calendar date,
// given the JDN of 1 Tishrei of the (already resolved) containing Hebrew
// year and of the following year. Mirrors hdate_jd_to_hdate's body once
// the year has been pinned down by the caller (hdate.fromJDN).
func JDNToHebrew(jdn int, p HebrewFromJDNParams) (day, month int) {
	yearLength := p.JDNTishrei1Next - p.JDNTishrei1
	days := jdn - p.JDNTishrei1

	if days >= yearLength-236 { // last 8 months always have 236 days
		days -= yearLength - 236
		m := days * 2 / 59
		day = days - (m*59+1)/2 + 1
		m += 4 + 1

		if yearLength > 355 && m <= 6 { // leap year
			m += 8
		}
		return day, m
	}

	switch {
	case yearLength%10 > 4 && days == 59: // long Cheshvan, day 30
		month, day = 2, 30
	case yearLength%10 > 4 && days > 59: // long Cheshvan
		month = (days - 1) * 2 / 59
		day = days - (month*59+1)/2
		month++
	case yearLength%10 < 4 && days > 87: // short Kislev
		month = (days + 1) * 2 / 59
		day = days - (month*59+1)/2 + 2
		month++
	default:
		month = days * 2 / 59
		day = days - (month*59+1)/2 + 1
		month++
	}

	return day, month
}
