package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{"plain", "19:00", TimeString("19:00"), false},
		{"midnight", "00:00", TimeString("00:00"), false},
		{"with seconds", "19:00:00", TimeString("19:00"), false},
		{"garbage", "late", "", true},
		{"out of range hour", "25:00", "", true},
		{"out of range minute", "19:61", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinutesSinceMidnight(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"18:40", 1120},
		{"22:00", 1320},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := TimeString(tt.input).MinutesSinceMidnight()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %s", tt.input)
	}

	_, err := TimeString("not-a-time").MinutesSinceMidnight()
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	got, err := TimeString("19:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("20:15"), got)

	// переход через полночь
	got, err = TimeString("23:50").AddMinutes(20)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:10"), got)
}

func TestComparisons(t *testing.T) {
	a := TimeString("18:40")
	b := TimeString("22:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 5, 10, 19, 5, 30, 0, time.UTC))
	assert.Equal(t, TimeString("19:05"), ts)
	assert.False(t, ts.IsZero())
	assert.True(t, TimeString("").IsZero())
}
