// Package holiday resolves a Hebrew calendar date to the holiday
// observed on it, and classifies holidays by type. It is grounded
// 1:1 on hdate_get_holyday and hdate_get_holyday_type in
// hdate_holyday.c: the 14x30 base table, the weekday displacement
// rules, the civil-era gates and the diaspora/Israel fold are all
// reproduced in the same order the C source applies them, since later
// rules can override earlier ones (e.g. in Israel the fold turns 22
// Tishrei's Shmini Atzeret into Simchat Torah only after the rule that
// clears Simchat Torah's separate day has already run).
package holiday

// ID is a holiday identifier, 0 (none) through 37. Ids are stable
// across versions; see Name and Type.
type ID int

// Input bundles the DateFacts fields the resolver needs, so this
// package has no dependency on the hdate package that calls it.
type Input struct {
	HMon, HDay int
	Weekday    int
	YearLength int
	GYear      int
}

// table is holydays_table from hdate_holyday.c, verbatim: row per
// Hebrew month (Tishrei..AdarII), column per day of month (1..30).
var table = [14][30]ID{
	{ // Tishrei
		1, 2, 3, 3, 0, 0, 0, 0, 37, 4,
		0, 0, 0, 0, 5, 31, 6, 6, 6, 6,
		7, 27, 8, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Cheshvan
		0, 0, 0, 0, 0, 0, 0, 0, 0, 35,
		35, 35, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Kislev
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 9, 9, 9, 9, 9, 9,
	},
	{ // Tevet
		9, 9, 9, 0, 0, 0, 0, 0, 0, 10,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Shvat
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 11, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 33,
	},
	{ // Adar
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		12, 0, 12, 13, 14, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Nisan
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 15, 32, 16, 16, 16, 16,
		28, 29, 0, 0, 0, 24, 24, 24, 0, 0,
	},
	{ // Iyyar
		0, 17, 17, 17, 17, 17, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 18, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 26, 0, 0,
	},
	{ // Sivan
		0, 0, 0, 0, 19, 20, 30, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Tammuz
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 21, 21, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 36, 36,
	},
	{ // Av
		0, 0, 0, 0, 0, 0, 0, 0, 22, 22,
		0, 0, 0, 0, 23, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Elul
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Adar I
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	{ // Adar II
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		12, 0, 12, 13, 14, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
}

// Resolve returns the holiday id (0..37) observed on the given date.
func Resolve(in Input, diaspora bool) ID {
	if in.HMon < 1 || in.HMon > 14 || in.HDay < 1 || in.HDay > 30 {
		return 0
	}

	id := table[in.HMon-1][in.HDay-1]

	// Tzom Gedaliah: suppressed on Shabbat; the next day carries it
	// only when that day is Sunday.
	if id == 3 && (in.Weekday == 7 || (in.HDay == 4 && in.Weekday != 1)) {
		id = 0
	}
	// 17 Tammuz
	if id == 21 && (in.Weekday == 7 || (in.HDay == 18 && in.Weekday != 1)) {
		id = 0
	}
	// 9 Av
	if id == 22 && (in.Weekday == 7 || (in.HDay == 10 && in.Weekday != 1)) {
		id = 0
	}

	// Hanukkah's 8th day lands on 3 Tevet only in a short-Kislev year.
	if id == 9 && in.YearLength%10 != 3 && in.HDay == 3 {
		id = 0
	}

	// Ta'anit Esther moves off Shabbat to the preceding Thursday.
	if id == 12 && (in.Weekday == 7 || (in.HDay == 11 && in.Weekday != 5)) {
		id = 0
	}

	// Yom Yerushalayim: not observed before 1968.
	if id == 26 && in.GYear < 1968 {
		id = 0
	}

	if id == 17 {
		id = resolveAtzmautZikaron(in)
	}

	// Yom HaShoah: not observed before 1958; moved off Friday/Sunday.
	if id == 24 {
		switch {
		case in.GYear < 1958:
			id = 0
		case in.HDay == 26 && in.Weekday != 5:
			id = 0
		case in.HDay == 28 && in.Weekday != 2:
			id = 0
		case in.HDay == 27 && (in.Weekday == 6 || in.Weekday == 1):
			id = 0
		}
	}

	// Rabin memorial day: not observed before 1997.
	if id == 35 {
		switch {
		case in.GYear < 1997:
			id = 0
		case (in.HDay == 10 || in.HDay == 11) && in.Weekday != 5:
			id = 0
		case in.HDay == 12 && (in.Weekday == 6 || in.Weekday == 7):
			id = 0
		}
	}

	// Zhabotinsky day: not observed before 2005.
	if id == 36 {
		switch {
		case in.GYear < 2005:
			id = 0
		case in.HDay == 30 && in.Weekday != 1:
			id = 0
		case in.HDay == 29 && in.Weekday == 7:
			id = 0
		}
	}

	// diaspora / Israel fold
	if id == 8 && !diaspora {
		id = 0
	}
	// The base table carries the diaspora layout for Tishrei 22/23
	// (22=Shmini Atzeret, 23=Simchat Torah as a separate second day);
	// Israel observes both under one day and one name, Simchat Torah,
	// on the 22nd (see DESIGN.md).
	if id == 27 && in.HDay == 22 && !diaspora {
		id = 8
	}
	if id == 31 && !diaspora {
		id = 6
	}
	if id == 32 && !diaspora {
		id = 16
	}
	if id == 30 && !diaspora {
		id = 0
	}
	if id == 29 && !diaspora {
		id = 0
	}

	return id
}

// resolveAtzmautZikaron applies the (h_day, weekday) lookup for Yom
// HaAtzma'ut (17) / Yom HaZikaron (25), with the rule change taking
// effect in g_year >= 2004. Branch order matches hdate_holyday.c
// exactly; h_day=4,weekday=5 matches the id-17 branch before the id-25
// branch is ever reached.
func resolveAtzmautZikaron(in Input) ID {
	if in.GYear < 1948 {
		return 0
	}

	if in.GYear < 2004 {
		switch {
		case in.HDay == 3 && in.Weekday == 5:
			return 17
		case in.HDay == 4 && in.Weekday == 5:
			return 17
		case in.HDay == 5 && in.Weekday != 6 && in.Weekday != 7:
			return 17
		case in.HDay == 2 && in.Weekday == 4:
			return 25
		case in.HDay == 3 && in.Weekday == 4:
			return 25
		case in.HDay == 4 && in.Weekday != 5 && in.Weekday != 6:
			return 25
		default:
			return 0
		}
	}

	switch {
	case in.HDay == 3 && in.Weekday == 5:
		return 17
	case in.HDay == 4 && in.Weekday == 5:
		return 17
	case in.HDay == 6 && in.Weekday == 3:
		return 17
	case in.HDay == 5 && in.Weekday != 6 && in.Weekday != 7 && in.Weekday != 2:
		return 17
	case in.HDay == 2 && in.Weekday == 4:
		return 25
	case in.HDay == 3 && in.Weekday == 4:
		return 25
	case in.HDay == 5 && in.Weekday == 2:
		return 25
	case in.HDay == 4 && in.Weekday != 5 && in.Weekday != 6 && in.Weekday != 1:
		return 25
	default:
		return 0
	}
}

// Holiday type values (Type's return), matching hdate_get_holyday_type.
const (
	TypeRegular = iota
	TypeYomTov
	TypeErevYomKippur
	TypeCholHamoed
	TypeHanukkahPurim
	TypeFast
	TypeIndependence
	TypeMinorJoyous
	TypeMemorial
	TypeNational
)

// Type classifies a holiday id into one of the 10 categories above.
func Type(id ID) int {
	switch id {
	case 0:
		return TypeRegular
	case 1, 2, 4, 5, 8, 15, 20, 27, 28, 29, 30, 31, 32:
		return TypeYomTov
	case 37:
		return TypeErevYomKippur
	case 6, 7, 16:
		return TypeCholHamoed
	case 9, 13, 14:
		return TypeHanukkahPurim
	case 3, 10, 12, 21, 22:
		return TypeFast
	case 17, 26:
		return TypeIndependence
	case 18, 23, 11:
		return TypeMinorJoyous
	case 24, 25:
		return TypeMemorial
	default:
		return TypeNational
	}
}

// names is the English long-form name table from hdate_strings.c,
// indexed 0 for id 1.
var names = [37]string{
	"Rosh Hashana I", "Rosh Hashana II",
	"Tzom Gedaliah", "Yom Kippur",
	"Sukkot", "Hol hamoed Sukkot",
	"Hoshana raba", "Simchat Torah",
	"Chanukah", "Asara B'Tevet",
	"Tu B'Shvat", "Ta'anit Esther",
	"Purim", "Shushan Purim",
	"Pesach", "Hol hamoed Pesach",
	"Yom HaAtzma'ut", "Lag B'Omer",
	"Erev Shavuot", "Shavuot",
	"Tzom Tammuz", "Tish'a B'Av",
	"Tu B'Av", "Yom HaShoah",
	"Yom HaZikaron", "Yom Yerushalayim",
	"Shmini Atzeret", "Pesach VII",
	"Pesach VIII", "Shavuot II",
	"Sukkot II", "Pesach II",
	"Family Day", "Memorial day for fallen whose place of burial is unknown",
	"Yitzhak Rabin memorial day", "Zeev Zhabotinsky day",
	"Erev Yom Kippur",
}

// Name returns the English name of a holiday id, or "" for 0 or an id
// outside 1..37.
func Name(id ID) string {
	if id < 1 || int(id) > len(names) {
		return ""
	}
	return names[id-1]
}
