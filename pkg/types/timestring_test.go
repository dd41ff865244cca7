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
		{name: "already normalized", input: "09:05", want: "09:05"},
		{name: "single digit components", input: "9:5", want: "09:05"},
		{name: "single digit hour", input: "9:30", want: "09:30"},
		{name: "midnight", input: "0:0", want: "00:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "surrounding whitespace", input: " 10:00 ", want: "10:00"},
		{name: "empty", input: "", wantErr: true},
		{name: "no colon", input: "0905", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "not a number", input: "aa:bb", wantErr: true},
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

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2024, 3, 11, 9, 5, 42, 0, time.Local)
	assert.Equal(t, TimeString("09:05"), NewTimeString(moment))
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := TimeString("10:30")

	end, err := start.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), end)

	// Переход через полночь
	late := TimeString("23:30")
	wrapped, err := late.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), wrapped)

	_, err = TimeString("oops").AddMinutes(10)
	require.Error(t, err)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("10:00").IsZero())
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("08:15").Validate())
	assert.Error(t, TimeString("8:15").Validate())
	assert.Error(t, TimeString("").Validate())
}
