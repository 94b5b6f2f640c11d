package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := ParseDate("2025-01-31")
		require.NoError(t, err)
		assert.Equal(t, NewDate(2025, time.January, 31), d)
	})

	t.Run("round trip", func(t *testing.T) {
		d, err := ParseDate("2024-02-29")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-29", d.String())
	})

	t.Run("rejects wrong layout", func(t *testing.T) {
		for _, input := range []string{"31-01-2025", "2025/01/31", "2025-1-31", "2025-01-31T00:00:00Z", ""} {
			_, err := ParseDate(input)
			assert.Error(t, err, "input %q", input)
		}
	})

	t.Run("rejects impossible date", func(t *testing.T) {
		_, err := ParseDate("2025-02-30")
		assert.Error(t, err)
	})
}

func TestDateAddDays(t *testing.T) {
	t.Run("crosses month boundary", func(t *testing.T) {
		d := NewDate(2025, time.January, 31)
		assert.Equal(t, "2025-02-01", d.AddDays(1).String())
	})

	t.Run("crosses year boundary", func(t *testing.T) {
		d := NewDate(2024, time.December, 31)
		assert.Equal(t, "2025-01-01", d.AddDays(1).String())
	})

	t.Run("leap day", func(t *testing.T) {
		d := NewDate(2024, time.February, 28)
		assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	})

	t.Run("long span has no drift", func(t *testing.T) {
		start := NewDate(2025, time.January, 1)
		d := start
		for i := 0; i < 365; i++ {
			d = d.AddDays(1)
		}
		assert.Equal(t, "2026-01-01", d.String())
		assert.Equal(t, 365, d.DaysSince(start))
	})
}

func TestDateWeekday(t *testing.T) {
	// 2025-01-05 is a Sunday
	d := NewDate(2025, time.January, 5)
	assert.Equal(t, time.Sunday, d.Weekday())
	assert.Equal(t, "الأحد", ArabicWeekdays[d.Weekday()])

	assert.Equal(t, time.Wednesday, NewDate(2025, time.January, 1).Weekday())
}

func TestDateJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		b, err := json.Marshal(NewDate(2025, time.March, 7))
		require.NoError(t, err)
		assert.Equal(t, `"2025-03-07"`, string(b))
	})

	t.Run("unmarshal", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2025-03-07"`), &d))
		assert.Equal(t, NewDate(2025, time.March, 7), d)
	})

	t.Run("unmarshal rejects bad input", func(t *testing.T) {
		var d Date
		err := json.Unmarshal([]byte(`"07/03/2025"`), &d)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("round trip in struct", func(t *testing.T) {
		type payload struct {
			Day Date `json:"day"`
		}
		in := payload{Day: NewDate(2025, time.December, 31)}
		b, err := json.Marshal(in)
		require.NoError(t, err)

		var out payload
		require.NoError(t, json.Unmarshal(b, &out))
		assert.Equal(t, in, out)
	})
}

func TestDateIsValid(t *testing.T) {
	assert.True(t, NewDate(2025, time.June, 15).IsValid())
	assert.False(t, Date{}.IsValid())
	assert.False(t, NewDate(2025, time.February, 30).IsValid())
}
