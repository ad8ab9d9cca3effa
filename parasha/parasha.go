// Package parasha schedules the weekly Torah reading for a Hebrew
// calendar date. It is grounded 1:1 on hdate_get_parasha in
// hdate_parasha.c: the week-of-year decision tree for weeks 1-4, the
// general-case Pesach/Shavuot decrements (in that order), and the
// 2x14x7 join-flag table that folds seven pairs of single readings
// into combined ids 55..61.
package parasha

// ID is a parasha identifier: 0 (none), 1..54 single readings, 55..61
// combined pairs.
type ID int

// Input bundles the DateFacts fields the scheduler needs, so this
// package has no dependency on the hdate package that calls it.
type Input struct {
	HMon, HDay     int
	Weekday        int
	WeeksSinceRH   int
	NewYearWeekday int
	YearLength     int
	YearType       int
}

// joinFlags is join_flags from hdate_parasha.c, indexed
// [diaspora][year_type-1][pair_index]. Pair index 0..6 corresponds to
// the thresholds 22, 27, 29, 32, 39, 42, 51 (combined ids 55..61).
var joinFlags = [2][14][7]bool{
	{ // Israel
		{true, true, true, true, false, true, true},
		{true, true, true, true, false, true, false},
		{true, true, true, true, false, true, true},
		{true, true, true, false, false, true, false},
		{true, true, true, true, false, true, true},
		{false, true, true, true, false, true, false},
		{true, true, true, true, false, true, true},
		{false, false, false, false, false, true, true},
		{false, false, false, false, false, false, false},
		{false, false, false, false, false, true, true},
		{false, false, false, false, false, false, false},
		{false, false, false, false, false, false, false},
		{false, false, false, false, false, false, true},
		{false, false, false, false, false, true, true},
	},
	{ // Diaspora
		{true, true, true, true, false, true, true},
		{true, true, true, true, false, true, false},
		{true, true, true, true, true, true, true},
		{true, true, true, true, false, true, false},
		{true, true, true, true, true, true, true},
		{false, true, true, true, false, true, false},
		{true, true, true, true, false, true, true},
		{false, false, false, false, true, true, true},
		{false, false, false, false, false, false, false},
		{false, false, false, false, false, true, true},
		{false, false, false, false, false, true, false},
		{false, false, false, false, false, true, false},
		{false, false, false, false, false, false, true},
		{false, false, false, false, true, true, true},
	},
}

// joinThresholds[i] is the reading number that opens the i'th
// combinable pair; combinedID[i] is the id it collapses to.
var joinThresholds = [7]int{22, 27, 29, 32, 39, 42, 51}
var combinedID = [7]ID{55, 56, 57, 58, 59, 60, 61}

// Resolve returns the parasha id (0..61) for the given date.
func Resolve(in Input, diaspora bool) ID {
	// Simchat Torah / Vezot Habracha: Israel reads it on 22 Tishrei,
	// diaspora on 23 Tishrei (spec.md's explicit split; the raw C
	// source has a second, unconditional "day==22" check left over
	// from an earlier revision that would also fire in diaspora — not
	// reproduced here, see DESIGN.md).
	if in.HMon == Tishrei {
		if in.HDay == 22 && !diaspora {
			return 54
		}
		if in.HDay == 23 && diaspora {
			return 54
		}
	}

	if in.Weekday != 7 {
		return 0
	}

	dia := 0
	if diaspora {
		dia = 1
	}

	switch in.WeeksSinceRH {
	case 1:
		switch in.NewYearWeekday {
		case 7:
			return 0 // Rosh Hashana
		case 2, 3:
			return 52 // Ha'Azinu
		default: // 5
			return 53 // Vayeilech
		}
	case 2:
		if in.NewYearWeekday == 5 {
			return 0 // Yom Kippur
		}
		return 53
	case 3:
		return 0 // Sukkot
	case 4:
		if in.NewYearWeekday == 7 {
			if !diaspora {
				return 54 // Simchat Torah in Israel
			}
			return 0
		}
		return 1 // Bereshit
	}

	reading := in.WeeksSinceRH - 3
	if in.NewYearWeekday == 7 {
		reading--
	}

	if reading < 22 {
		return ID(reading)
	}

	// Pesach: Shabbat falling within the festival reads no weekly
	// parasha.
	if in.HMon == Nisan && in.HDay > 14 {
		if diaspora && in.HDay <= 22 {
			return 0
		}
		if !diaspora && in.HDay < 22 {
			return 0
		}
	}

	// Pesach always removes one reading once past it.
	if (in.HMon == Nisan && in.HDay > 21) || (in.HMon > Nisan && in.HMon < AdarI) {
		reading--

		// In diaspora, the 8th day of Pesach falls on Shabbat when
		// next Rosh Hashana falls on Monday.
		if diaspora && (in.NewYearWeekday+in.YearLength)%7 == 2 {
			reading--
		}
	}

	// In diaspora, Shavuot may fall on Shabbat if next Rosh Hashana
	// falls on Shabbat.
	if diaspora && in.HMon < AdarI &&
		(in.HMon > Sivan || (in.HMon == Sivan && in.HDay >= 7)) &&
		(in.NewYearWeekday+in.YearLength)%7 == 0 {
		if in.HMon == Sivan && in.HDay == 7 {
			return 0
		}
		reading--
	}

	for i, threshold := range joinThresholds {
		if !joinFlags[dia][in.YearType-1][i] || reading < threshold {
			continue
		}
		if reading == threshold {
			return combinedID[i]
		}
		reading++
	}

	return ID(reading)
}

// Hebrew month values, mirroring hdate's enumeration (avoids an import
// cycle with the hdate package, which depends on this one).
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

// names is the English long-form reading-name table from
// hdate_strings.c, indexed by id (index 0, i.e. id 0, is "none").
var names = [62]string{
	"none", "Bereshit", "Noach",
	"Lech-Lecha", "Vayera", "Chayei Sara",
	"Toldot", "Vayetzei", "Vayishlach",
	"Vayeshev", "Miketz", "Vayigash",
	"Vayechi", "Shemot", "Vaera",
	"Bo", "Beshalach", "Yitro",
	"Mishpatim", "Terumah", "Tetzaveh",
	"Ki Tisa", "Vayakhel", "Pekudei",
	"Vayikra", "Tzav", "Shmini",
	"Tazria", "Metzora", "Achrei Mot",
	"Kedoshim", "Emor", "Behar",
	"Bechukotai", "Bamidbar", "Nasso",
	"Beha'alotcha", "Sh'lach", "Korach",
	"Chukat", "Balak", "Pinchas",
	"Matot", "Masei", "Devarim",
	"Vaetchanan", "Eikev", "Re'eh",
	"Shoftim", "Ki Teitzei", "Ki Tavo",
	"Nitzavim", "Vayeilech", "Ha'Azinu",
	"Vezot Habracha",
	"Vayakhel-Pekudei", "Tazria-Metzora", "Achrei Mot-Kedoshim",
	"Behar-Bechukotai", "Chukat-Balak", "Matot-Masei",
	"Nitzavim-Vayeilech",
}

// Name returns the English name of a parasha id, or "" for an id
// outside 0..61.
func Name(id ID) string {
	if id < 0 || int(id) >= len(names) {
		return ""
	}
	return names[id]
}
