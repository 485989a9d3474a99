package timetable

// Preference records one lecturer's willingness to teach in each of the ten
// (weekday, session) slots. A missing entry for a lecturer in a PreferenceTable
// means "unconstrained" — courses for that lecturer incur no preference
// penalty.
type Preference struct {
	LecturerID int

	MondayMorning    bool
	MondayEvening    bool
	TuesdayMorning   bool
	TuesdayEvening   bool
	WednesdayMorning bool
	WednesdayEvening bool
	ThursdayMorning  bool
	ThursdayEvening  bool
	FridayMorning    bool
	FridayEvening    bool
}

// slot looks up whether the lecturer tolerates teaching on the given weekday
// during the given session.
func (p Preference) slot(day Weekday, morning bool) bool {
	switch day {
	case Monday:
		if morning {
			return p.MondayMorning
		}
		return p.MondayEvening
	case Tuesday:
		if morning {
			return p.TuesdayMorning
		}
		return p.TuesdayEvening
	case Wednesday:
		if morning {
			return p.WednesdayMorning
		}
		return p.WednesdayEvening
	case Thursday:
		if morning {
			return p.ThursdayMorning
		}
		return p.ThursdayEvening
	case Friday:
		if morning {
			return p.FridayMorning
		}
		return p.FridayEvening
	default:
		return true
	}
}

// PreferenceTable is the immutable, per-run lookup from lecturer-id to their
// declared preference. Lecturers absent from the table are unconstrained.
type PreferenceTable map[int]Preference

// NewPreferenceTable builds a lookup table keyed by lecturer-id from a flat
// list of preferences.
func NewPreferenceTable(prefs []Preference) PreferenceTable {
	t := make(PreferenceTable, len(prefs))
	for _, p := range prefs {
		t[p.LecturerID] = p
	}
	return t
}

// Tolerates reports whether lecturerID is willing to teach on day during the
// session that starts at startMinute, treating an absent lecturer as
// unconstrained.
func (t PreferenceTable) Tolerates(lecturerID int, day Weekday, startMinute int) bool {
	pref, ok := t[lecturerID]
	if !ok {
		return true
	}
	return pref.slot(day, startMinute < eveningSessionStart)
}
