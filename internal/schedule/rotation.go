package schedule

import "fmt"

// ArabicWeekdays maps time.Weekday (Sunday = 0) to the Arabic day name shown
// on the duty table.
var ArabicWeekdays = [7]string{
	"الأحد",
	"الإثنين",
	"الثلاثاء",
	"الأربعاء",
	"الخميس",
	"الجمعة",
	"السبت",
}

// Assignment is one day of duty. StaffName is a copy of the roster name at
// generation time, not a live reference: renaming a staff member later never
// relabels assignments that were already generated.
type Assignment struct {
	Date        Date   `json:"date"`
	WeekdayName string `json:"weekdayName"`
	StaffName   string `json:"staffName"`
}

// Period is a generated block of consecutive daily assignments. It is created
// atomically and only ever deleted as a whole unit.
type Period struct {
	StartDate   Date         `json:"startDate"`
	EndDate     Date         `json:"endDate"`
	Assignments []Assignment `json:"assignments"`
}

// Generate produces days consecutive assignments starting at start, cycling
// through staff round-robin. It is deterministic: identical inputs always
// yield the identical sequence.
func Generate(start Date, days int, staff []string) ([]Assignment, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: عدد الأيام يجب أن يكون أكبر من صفر", ErrValidation)
	}
	if len(staff) == 0 {
		return nil, fmt.Errorf("%w: لا يوجد مناوبون مختارون", ErrValidation)
	}
	if !start.IsValid() {
		return nil, fmt.Errorf("%w: تاريخ البداية غير صالح", ErrValidation)
	}

	assignments := make([]Assignment, days)
	for i := range assignments {
		date := start.AddDays(i)
		assignments[i] = Assignment{
			Date:        date,
			WeekdayName: ArabicWeekdays[date.Weekday()],
			StaffName:   staff[i%len(staff)],
		}
	}

	return assignments, nil
}
