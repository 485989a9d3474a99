// Package evaluator scores a decoded timetable: a pure function from
// timetable and lecturer preferences to a non-negative penalty, optionally
// explained by a Diagnostics record.
package evaluator

import "github.com/ahmadyovan/schedule-optimization/timetable"

// Penalty weights, per the canonical resolution: conflicts, credit overflow,
// and preference violations are all penalized per unit at 100 — the weight
// the original evaluators actually use (see DESIGN.md).
const (
	conflictPenalty        = 100
	creditOverflowPerCredit = 100
	creditBudget            = 6
	preferencePenalty       = 100
)

// Evaluate computes the total penalty for tt under prefs. diag may be nil;
// when non-nil it is populated with every individual violation so callers
// can explain a score without recomputing it.
func Evaluate(tt timetable.Timetable, prefs timetable.PreferenceTable, diag *timetable.Diagnostics) float64 {
	var total float64
	total += conflicts(tt, diag)
	total += creditOverflow(tt, diag)
	total += preferenceViolations(tt, prefs, diag)
	return total
}

func conflicts(tt timetable.Timetable, diag *timetable.Diagnostics) float64 {
	var total float64
	for i := 0; i < len(tt); i++ {
		for j := i + 1; j < len(tt); j++ {
			a, b := tt[i], tt[j]
			if a.Weekday != b.Weekday || !a.Overlaps(b) {
				continue
			}
			sameLecturer := a.LecturerID == b.LecturerID
			sameClass := a.ClassKey() == b.ClassKey()
			if !sameLecturer && !sameClass {
				continue
			}
			kind := timetable.ClassConflict
			if sameLecturer {
				kind = timetable.LecturerConflict
			}
			total += conflictPenalty
			diag.Add(kind, conflictPenalty, "overlapping schedule", a.ScheduleID, b.ScheduleID)
		}
	}
	return total
}

type overflowKey struct {
	band     timetable.SessionBand
	program  int
	semester int
	classID  int
	weekday  timetable.Weekday
}

func creditOverflow(tt timetable.Timetable, diag *timetable.Diagnostics) float64 {
	sums := map[overflowKey]int{}
	first := map[overflowKey]int{}
	for _, sc := range tt {
		key := overflowKey{sc.SessionBand, sc.Program, sc.Semester, sc.ClassID, sc.Weekday}
		if _, ok := first[key]; !ok {
			first[key] = sc.ScheduleID
		}
		sums[key] += sc.Credits
	}

	var total float64
	for key, sum := range sums {
		if sum <= creditBudget {
			continue
		}
		penalty := float64(creditOverflowPerCredit * (sum - creditBudget))
		total += penalty
		diag.Add(timetable.CreditOverflow, penalty, "daily credit budget exceeded", first[key])
	}
	return total
}

func preferenceViolations(tt timetable.Timetable, prefs timetable.PreferenceTable, diag *timetable.Diagnostics) float64 {
	var total float64
	for _, sc := range tt {
		if prefs.Tolerates(sc.LecturerID, sc.Weekday, sc.StartMinute) {
			continue
		}
		total += preferencePenalty
		diag.Add(timetable.PreferenceViolation, preferencePenalty, "scheduled against lecturer preference", sc.ScheduleID)
	}
	return total
}
