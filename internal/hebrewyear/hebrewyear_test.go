package hebrewyear

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLeapYear(t *testing.T) {
	leap := map[int]bool{
		5770: false, 5771: true, 5772: false, 5773: false, 5774: true,
		5775: false, 5776: true, 5777: false, 5778: false, 5779: true,
		5780: false, 5781: false, 5782: true, 5783: false, 5784: true,
		5785: false, 5786: false, 5787: true, 5788: false, 5789: false,
		5790: true, 5791: false, 5792: false, 5793: true, 5794: false,
		5795: true,
	}
	for year, want := range leap {
		assert.Equal(t, want, IsLeapYear(year), "year %d", year)
	}
}

func TestYearLengthClosure(t *testing.T) {
	valid := map[int]bool{353: true, 354: true, 355: true, 383: true, 384: true, 385: true}
	for year := 5700; year < 5900; year++ {
		assert.True(t, valid[YearLength(year)], "year %d length %d", year, YearLength(year))
	}
}

func TestNewYearWeekdayNeverForbidden(t *testing.T) {
	for year := 5700; year < 5900; year++ {
		dw := NewYearWeekday(year)
		assert.NotEqual(t, 1, dw, "year %d", year)
		assert.NotEqual(t, 4, dw, "year %d", year)
		assert.NotEqual(t, 6, dw, "year %d", year)
	}
}

func TestYearTypeRoundTrip(t *testing.T) {
	for year := 5700; year < 5900; year++ {
		length := YearLength(year)
		dw := NewYearWeekday(year)
		yt, err := YearType(length, dw)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, yt, 1)
		assert.LessOrEqual(t, yt, 14)
	}
}

func TestYearTypeImpossibleCombination(t *testing.T) {
	_, err := YearType(353, 5)
	assert.ErrorIs(t, err, ErrImpossibleYearType)
}

func TestDaysFromEpochConcurrentCallersAgree(t *testing.T) {
	want := DaysFromEpoch(5784)

	done := make(chan int, 16)
	for i := 0; i < 16; i++ {
		go func() { done <- DaysFromEpoch(5784) }()
	}
	for i := 0; i < 16; i++ {
		assert.Equal(t, want, <-done)
	}
}
