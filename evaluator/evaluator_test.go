package evaluator

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ahmadyovan/schedule-optimization/timetable"
)

func scheduled(id, lecturer, class int, day timetable.Weekday, start, credits int) timetable.ScheduledCourse {
	return timetable.ScheduledCourse{
		Course: timetable.Course{
			ScheduleID: id,
			LecturerID: lecturer,
			ClassID:    class,
			Program:    7,
			Semester:   1,
			Credits:    credits,
		},
		Weekday:     day,
		StartMinute: start,
		EndMinute:   start + timetable.Duration(credits),
	}
}

func TestEvaluate_NoViolationsIsZero(t *testing.T) {
	tt := timetable.Timetable{
		scheduled(1, 1, 1, timetable.Monday, 480, 2),
		scheduled(2, 2, 2, timetable.Tuesday, 480, 2),
	}
	if got := Evaluate(tt, nil, nil); got != 0 {
		t.Errorf("Evaluate() = %v, want 0", got)
	}
}

func TestEvaluate_LecturerConflict(t *testing.T) {
	tt := timetable.Timetable{
		scheduled(1, 9, 1, timetable.Monday, 480, 2),
		scheduled(2, 9, 2, timetable.Monday, 480, 2),
	}
	var diag timetable.Diagnostics
	got := Evaluate(tt, nil, &diag)
	if got != conflictPenalty {
		t.Errorf("Evaluate() = %v, want %v", got, conflictPenalty)
	}
	want := []timetable.Violation{
		{Kind: timetable.LecturerConflict, ScheduleIDs: []int{1, 2}, Penalty: conflictPenalty, Detail: "overlapping schedule"},
	}
	if diff := cmp.Diff(want, diag.Violations); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_ClassConflict(t *testing.T) {
	tt := timetable.Timetable{
		scheduled(1, 1, 5, timetable.Monday, 480, 2),
		scheduled(2, 2, 5, timetable.Monday, 480, 2),
	}
	var diag timetable.Diagnostics
	got := Evaluate(tt, nil, &diag)
	if got != conflictPenalty {
		t.Errorf("Evaluate() = %v, want %v", got, conflictPenalty)
	}
	want := []timetable.Violation{
		{Kind: timetable.ClassConflict, ScheduleIDs: []int{1, 2}, Penalty: conflictPenalty, Detail: "overlapping schedule"},
	}
	if diff := cmp.Diff(want, diag.Violations); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_NonOverlappingSameLecturerNoConflict(t *testing.T) {
	tt := timetable.Timetable{
		scheduled(1, 9, 1, timetable.Monday, 480, 2),
		scheduled(2, 9, 2, timetable.Monday, 560, 2),
	}
	if got := Evaluate(tt, nil, nil); got != 0 {
		t.Errorf("Evaluate() = %v, want 0 for back-to-back non-overlapping courses", got)
	}
}

func TestEvaluate_DuplicatePairCountedOnce(t *testing.T) {
	tt := timetable.Timetable{
		scheduled(1, 9, 1, timetable.Monday, 480, 2),
		scheduled(2, 9, 2, timetable.Monday, 480, 2),
	}
	var diag timetable.Diagnostics
	Evaluate(tt, nil, &diag)
	if len(diag.Violations) != 1 {
		t.Errorf("len(Violations) = %d, want 1 (no double counting)", len(diag.Violations))
	}
}

func TestEvaluate_CreditOverflow(t *testing.T) {
	tt := timetable.Timetable{
		scheduled(1, 1, 1, timetable.Monday, 480, 4),
		scheduled(2, 2, 1, timetable.Monday, 640, 4),
	}
	want := float64(creditOverflowPerCredit * (8 - creditBudget))
	if got := Evaluate(tt, nil, nil); got != want {
		t.Errorf("Evaluate() = %v, want %v", got, want)
	}
}

func TestEvaluate_PreferenceViolation(t *testing.T) {
	prefs := timetable.NewPreferenceTable([]timetable.Preference{
		{LecturerID: 1, MondayMorning: false},
	})
	tt := timetable.Timetable{
		scheduled(1, 1, 1, timetable.Monday, 480, 2),
	}
	got := Evaluate(tt, prefs, nil)
	if got != preferencePenalty {
		t.Errorf("Evaluate() = %v, want %v", got, preferencePenalty)
	}
}

func TestEvaluate_AbsentLecturerUnconstrained(t *testing.T) {
	prefs := timetable.NewPreferenceTable(nil)
	tt := timetable.Timetable{
		scheduled(1, 42, 1, timetable.Monday, 480, 2),
	}
	if got := Evaluate(tt, prefs, nil); got != 0 {
		t.Errorf("Evaluate() = %v, want 0 for lecturer absent from preference table", got)
	}
}

func TestEvaluate_DiagnosticsTotalMatchesScalar(t *testing.T) {
	prefs := timetable.NewPreferenceTable([]timetable.Preference{
		{LecturerID: 1, MondayMorning: false},
	})
	tt := timetable.Timetable{
		scheduled(1, 1, 1, timetable.Monday, 480, 4),
		scheduled(2, 1, 1, timetable.Monday, 480, 4),
	}
	var diag timetable.Diagnostics
	got := Evaluate(tt, prefs, &diag)
	if got != diag.Total() {
		t.Errorf("Evaluate() = %v, diag.Total() = %v, want equal", got, diag.Total())
	}
}
