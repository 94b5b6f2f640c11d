package schedule

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a pure calendar date with no time-of-day and no timezone. It always
// serializes as "YYYY-MM-DD" so a date saved on one machine reloads as the
// same date everywhere, without off-by-one-day drift.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates an instant to its calendar date in the instant's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

func Today() Date {
	return DateOf(time.Now())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: تاريخ غير صالح: %s", ErrValidation, s)
	}
	return DateOf(t), nil
}

// utc pins the date to midnight UTC, which makes day arithmetic immune to DST.
func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsValid reports whether the fields denote a real calendar date, i.e. they
// survive normalization (e.g. February 30th does not).
func (d Date) IsValid() bool {
	return d != Date{} && DateOf(d.utc()) == d
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.utc().AddDate(0, 0, n))
}

// DaysSince returns the number of whole days from o to d.
func (d Date) DaysSince(o Date) int {
	return int(d.utc().Sub(o.utc()) / (24 * time.Hour))
}

func (d Date) Before(o Date) bool { return d.utc().Before(o.utc()) }
func (d Date) After(o Date) bool  { return d.utc().After(o.utc()) }

// Weekday follows time.Weekday numbering: Sunday = 0.
func (d Date) Weekday() time.Weekday {
	return d.utc().Weekday()
}

func (d Date) String() string {
	return d.utc().Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: تاريخ غير صالح: %+v", ErrValidation, d)
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("%w: يجب أن يكون التاريخ بصيغة YYYY-MM-DD", ErrValidation)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value makes Date usable as a Postgres "date" parameter.
func (d Date) Value() (driver.Value, error) {
	return d.utc(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("%w: لا يمكن قراءة التاريخ من %T", ErrValidation, src)
	}
}
