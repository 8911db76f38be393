package agency

import "time"

// Statutory periods under the RTI Act, 2005. The response window runs from
// filing (Section 7(1)); the first appeal window from the response deadline
// (Section 19(1)); the second appeal window from the first appeal deadline
// (Section 19(3)). Each period is a fixed day count, not calendar months.
const (
	ResponseDays     = 30
	FirstAppealDays  = 30
	SecondAppealDays = 90
)

// ResponseDeadline is the date by which the PIO must respond.
func ResponseDeadline(filed time.Time) time.Time {
	return filed.AddDate(0, 0, ResponseDays)
}

// FirstAppealDeadline is the last date to file a first appeal, counted from
// the response deadline.
func FirstAppealDeadline(filed time.Time) time.Time {
	return ResponseDeadline(filed).AddDate(0, 0, FirstAppealDays)
}

// SecondAppealDeadline is the last date to approach the Information
// Commission, counted from the first appeal deadline.
func SecondAppealDeadline(filed time.Time) time.Time {
	return FirstAppealDeadline(filed).AddDate(0, 0, SecondAppealDays)
}

// AppealWindowFrom recomputes the first appeal deadline once an actual
// appeal has been filed: the appellate authority has 30 days to decide.
func AppealWindowFrom(appealFiled time.Time) time.Time {
	return appealFiled.AddDate(0, 0, FirstAppealDays)
}

// SecondAppealWindowFrom recomputes the second appeal deadline after a
// second appeal is filed with the Information Commission.
func SecondAppealWindowFrom(appealFiled time.Time) time.Time {
	return appealFiled.AddDate(0, 0, SecondAppealDays)
}
