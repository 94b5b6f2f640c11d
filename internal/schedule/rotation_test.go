package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("four staff over four days", func(t *testing.T) {
		staff := []string{"نايف", "عبيد", "عوض", "سند"}
		// 2025-01-01 is a Wednesday
		assignments, err := Generate(NewDate(2025, time.January, 1), 4, staff)
		require.NoError(t, err)
		require.Len(t, assignments, 4)

		assert.Equal(t, Assignment{Date: NewDate(2025, time.January, 1), WeekdayName: "الأربعاء", StaffName: "نايف"}, assignments[0])
		assert.Equal(t, Assignment{Date: NewDate(2025, time.January, 2), WeekdayName: "الخميس", StaffName: "عبيد"}, assignments[1])
		assert.Equal(t, Assignment{Date: NewDate(2025, time.January, 3), WeekdayName: "الجمعة", StaffName: "عوض"}, assignments[2])
		assert.Equal(t, Assignment{Date: NewDate(2025, time.January, 4), WeekdayName: "السبت", StaffName: "سند"}, assignments[3])
	})

	t.Run("rotation wraps around the staff list", func(t *testing.T) {
		staff := []string{"نايف", "عبيد"}
		assignments, err := Generate(NewDate(2025, time.January, 1), 5, staff)
		require.NoError(t, err)
		require.Len(t, assignments, 5)

		names := make([]string, len(assignments))
		for i, a := range assignments {
			names[i] = a.StaffName
		}
		assert.Equal(t, []string{"نايف", "عبيد", "نايف", "عبيد", "نايف"}, names)
	})

	t.Run("dates are consecutive across month boundary", func(t *testing.T) {
		assignments, err := Generate(NewDate(2025, time.January, 30), 4, []string{"نايف"})
		require.NoError(t, err)

		want := []string{"2025-01-30", "2025-01-31", "2025-02-01", "2025-02-02"}
		for i, a := range assignments {
			assert.Equal(t, want[i], a.Date.String())
		}
	})

	t.Run("weekday names follow the arabic table", func(t *testing.T) {
		// 2025-01-05 is a Sunday, so seven days walk the whole table in order
		assignments, err := Generate(NewDate(2025, time.January, 5), 7, []string{"نايف"})
		require.NoError(t, err)

		for i, a := range assignments {
			assert.Equal(t, ArabicWeekdays[i], a.WeekdayName)
		}
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		staff := []string{"نايف", "عبيد", "عوض"}
		first, err := Generate(NewDate(2025, time.June, 1), 30, staff)
		require.NoError(t, err)
		second, err := Generate(NewDate(2025, time.June, 1), 30, staff)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("rejects empty staff", func(t *testing.T) {
		_, err := Generate(NewDate(2025, time.January, 1), 4, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects non-positive day count", func(t *testing.T) {
		for _, days := range []int{0, -1} {
			_, err := Generate(NewDate(2025, time.January, 1), days, []string{"نايف"})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		}
	})

	t.Run("rejects invalid start date", func(t *testing.T) {
		_, err := Generate(Date{}, 4, []string{"نايف"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
	})
}
