package timetable

import "fmt"

// ViolationKind names the category of a single entry in a Diagnostics
// record, so a caller can render or aggregate without re-deriving why a
// penalty was charged.
type ViolationKind string

const (
	// LecturerConflict marks two courses sharing a lecturer that overlap in time.
	LecturerConflict ViolationKind = "lecturer-conflict"
	// ClassConflict marks two courses sharing a class identity that overlap in time.
	ClassConflict ViolationKind = "class-conflict"
	// CreditOverflow marks a (session-band, program, semester, class, weekday)
	// group whose summed credits exceed the daily room budget.
	CreditOverflow ViolationKind = "credit-overflow"
	// PreferenceViolation marks a course scheduled against its lecturer's
	// stated (weekday, session) preference.
	PreferenceViolation ViolationKind = "preference-violation"
)

// Violation is one individually-penalized conflict or preference mismatch.
type Violation struct {
	Kind ViolationKind
	// ScheduleIDs holds the schedule-id(s) involved: two for conflicts, one
	// for preference violations and credit overflows (for an overflow, the
	// first course of the overflowing group in timetable order).
	ScheduleIDs []int
	Penalty     float64
	Detail      string
}

// Diagnostics is the optional, human-readable explanation of a fitness
// score: the list of individual conflicts and preference violations that sum
// to it.
type Diagnostics struct {
	Violations []Violation
}

// Total sums the penalty of every recorded violation; it must equal the
// scalar fitness returned alongside the Diagnostics.
func (d *Diagnostics) Total() float64 {
	var total float64
	for _, v := range d.Violations {
		total += v.Penalty
	}
	return total
}

// Add records a violation if d is non-nil, so callers can pass a nil
// *Diagnostics when the caller only wants the scalar penalty.
func (d *Diagnostics) Add(kind ViolationKind, penalty float64, detail string, scheduleIDs ...int) {
	if d == nil {
		return
	}
	d.Violations = append(d.Violations, Violation{
		Kind:        kind,
		ScheduleIDs: scheduleIDs,
		Penalty:     penalty,
		Detail:      detail,
	})
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %v: %.1f (%s)", v.Kind, v.ScheduleIDs, v.Penalty, v.Detail)
}
