package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMlToOz(t *testing.T) {
	assert.Equal(t, 33.8, MlToOz(1000))
	assert.Equal(t, 8.5, MlToOz(250))
	assert.Equal(t, 0.0, MlToOz(0))
}

func TestOzToMl(t *testing.T) {
	assert.Equal(t, 295.7, OzToMl(10))
	assert.Equal(t, 29.6, OzToMl(1))
}

func TestConvert_Identity(t *testing.T) {
	assert.Equal(t, 123.4, Convert(123.4, UnitMl, UnitMl))
	assert.Equal(t, 8.0, Convert(8.0, UnitOz, UnitOz))
}

func TestConvert_BetweenUnits(t *testing.T) {
	assert.Equal(t, MlToOz(500), Convert(500, UnitMl, UnitOz))
	assert.Equal(t, OzToMl(8), Convert(8, UnitOz, UnitMl))
}

func TestFormatAmount_Ml(t *testing.T) {
	assert.Equal(t, "250ml", FormatAmount(250, UnitMl))
	assert.Equal(t, "999ml", FormatAmount(999, UnitMl))
	assert.Equal(t, "1.0L", FormatAmount(1000, UnitMl))
	assert.Equal(t, "1.5L", FormatAmount(1500, UnitMl))
	assert.Equal(t, "2.3L", FormatAmount(2300, UnitMl))
}

func TestFormatAmount_Oz(t *testing.T) {
	assert.Equal(t, "12oz", FormatAmount(12, UnitOz))
	assert.Equal(t, "33.8oz", FormatAmount(33.8, UnitOz))
}

func TestHourRange_Contains(t *testing.T) {
	hr := HourRange{Start: 8, End: 22}
	assert.True(t, hr.Contains(8))
	assert.True(t, hr.Contains(15))
	assert.True(t, hr.Contains(22))
	assert.False(t, hr.Contains(7))
	assert.False(t, hr.Contains(23))
}
