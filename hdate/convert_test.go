package hdate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGregorianToJDNMatchesLiteralScenario(t *testing.T) {
	assert.Equal(t, 2451545, GregorianToJDN(1, 1, 2000))
}

func TestJDNToGregorianRoundTrips(t *testing.T) {
	day, month, year := JDNToGregorian(2451545)
	assert.Equal(t, 1, day)
	assert.Equal(t, 1, month)
	assert.Equal(t, 2000, year)
}

func TestHebrewToJDNMatchesConstructor(t *testing.T) {
	facts, ok := FromHebrew(1, Tishrei, 5784)
	require.True(t, ok)

	jdn, jdnTishrei1, jdnTishrei1Next, ok := HebrewToJDN(1, Tishrei, 5784)
	require.True(t, ok)
	assert.Equal(t, facts.JDN, jdn)
	assert.Equal(t, facts.JDN, jdnTishrei1)
	assert.Greater(t, jdnTishrei1Next, jdnTishrei1)
}

func TestHebrewToJDNRejectsAdarIIInNonLeapYear(t *testing.T) {
	_, _, _, ok := HebrewToJDN(1, AdarII, 5783)
	assert.False(t, ok)
}

func TestJDNToHebrewMatchesConstructor(t *testing.T) {
	facts, ok := FromGregorian(1, 1, 2000)
	require.True(t, ok)

	day, month, year := JDNToHebrew(facts.JDN)
	assert.Equal(t, facts.HDay, day)
	assert.Equal(t, facts.HMon, month)
	assert.Equal(t, facts.HYear, year)
}

func TestHebrewYearLengthMatchesConstructor(t *testing.T) {
	facts, ok := FromHebrew(1, Tishrei, 5784)
	require.True(t, ok)
	assert.Equal(t, facts.YearLength, HebrewYearLength(5784))
}

func TestYearTypeMatchesConstructor(t *testing.T) {
	facts, ok := FromHebrew(1, Tishrei, 5784)
	require.True(t, ok)

	yearType, err := YearType(facts.YearLength, facts.NewYearWeekday)
	require.NoError(t, err)
	assert.Equal(t, facts.YearType, yearType)
}

func TestYearTypeRejectsImpossibleCombinationWithoutPanicking(t *testing.T) {
	_, err := YearType(360, 2)
	assert.True(t, errors.Is(err, ErrImpossibleYearType))
}
