package validate

import (
	"testing"
	"time"

	"github.com/buurtmarkt/backend/internal/fault"
	"github.com/stretchr/testify/require"
)

func TestFirst_ReturnsFirstFailure(t *testing.T) {
	err := First(
		Rule{OK: func() bool { return true }, Message: "first"},
		Rule{OK: func() bool { return false }, Message: "second"},
		Rule{OK: func() bool { return false }, Message: "third"},
	)
	require.Error(t, err)
	var ve *fault.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "second", ve.Message)
}

func TestFirst_AllPass(t *testing.T) {
	require.NoError(t, First(
		Rule{OK: func() bool { return true }, Message: "a"},
		Rule{OK: func() bool { return true }, Message: "b"},
	))
}

func TestIsHHMM(t *testing.T) {
	valid := []string{"00:00", "09:30", "9:30", "13:05", "23:59"}
	for _, s := range valid {
		require.True(t, IsHHMM(s), "expected %q to be valid", s)
	}
	invalid := []string{"24:00", "13:60", "1300", "13:00:00", "", "noon"}
	for _, s := range invalid {
		require.False(t, IsHHMM(s), "expected %q to be invalid", s)
	}
}

func TestIsWeekday(t *testing.T) {
	for _, d := range Weekdays {
		require.True(t, IsWeekday(d))
	}
	require.False(t, IsWeekday("monday"))
	require.False(t, IsWeekday("Maandag"))
	require.False(t, IsWeekday(""))
}

func TestParseDateAndInFuture(t *testing.T) {
	past, err := ParseDate("2020-01-01T00:00:00.000Z")
	require.NoError(t, err)
	require.False(t, InFuture(past))

	future, err := ParseDate(time.Now().Add(time.Hour).Format(time.RFC3339))
	require.NoError(t, err)
	require.True(t, InFuture(future))

	_, err = ParseDate("30-12-2024")
	require.Error(t, err)
}
