// Package ingest reads the tabular course and preference records described
// in the external interface: one row per record, unsigned integers and
// booleans in a fixed column order. Malformed input is surfaced as a plain
// error; no run is started on a parse failure.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ahmadyovan/schedule-optimization/timetable"
)

// courseColumns is the fixed column order of a course row: schedule-id,
// subject-id, lecturer-id, session-band-id, class-id, semester, credits,
// program. Program is an unsigned program identifier, not a code string.
const courseColumns = 8

// LoadCourses reads course rows from path. Each row must have courseColumns
// fields in the documented order.
func LoadCourses(path string) ([]timetable.Course, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	courses := make([]timetable.Course, 0, len(records))
	for i, row := range records {
		if len(row) != courseColumns {
			return nil, fmt.Errorf("ingest: course row %d has %d fields, want %d", i, len(row), courseColumns)
		}
		scheduleID, err1 := strconv.Atoi(row[0])
		subjectID, err2 := strconv.Atoi(row[1])
		lecturerID, err3 := strconv.Atoi(row[2])
		sessionBand, err4 := strconv.Atoi(row[3])
		classID, err5 := strconv.Atoi(row[4])
		semester, err6 := strconv.Atoi(row[5])
		credits, err7 := strconv.Atoi(row[6])
		program, err8 := strconv.Atoi(row[7])
		if err := firstErr(err1, err2, err3, err4, err5, err6, err7, err8); err != nil {
			return nil, fmt.Errorf("ingest: course row %d: %w", i, err)
		}
		courses = append(courses, timetable.Course{
			ScheduleID:  scheduleID,
			SubjectID:   subjectID,
			LecturerID:  lecturerID,
			SessionBand: timetable.SessionBand(sessionBand),
			ClassID:     classID,
			Semester:    semester,
			Credits:     credits,
			Program:     program,
		})
	}
	return courses, nil
}

// preferenceColumns is the fixed column order of a preference row:
// lecturer-id followed by ten weekday/session booleans.
const preferenceColumns = 11

// LoadPreferences reads preference rows from path.
func LoadPreferences(path string) ([]timetable.Preference, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	prefs := make([]timetable.Preference, 0, len(records))
	for i, row := range records {
		if len(row) != preferenceColumns {
			return nil, fmt.Errorf("ingest: preference row %d has %d fields, want %d", i, len(row), preferenceColumns)
		}
		lecturerID, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("ingest: preference row %d: %w", i, err)
		}
		bools := make([]bool, 10)
		for j := 0; j < 10; j++ {
			b, err := strconv.ParseBool(row[j+1])
			if err != nil {
				return nil, fmt.Errorf("ingest: preference row %d column %d: %w", i, j+1, err)
			}
			bools[j] = b
		}
		prefs = append(prefs, timetable.Preference{
			LecturerID:       lecturerID,
			MondayMorning:    bools[0],
			MondayEvening:    bools[1],
			TuesdayMorning:   bools[2],
			TuesdayEvening:   bools[3],
			WednesdayMorning: bools[4],
			WednesdayEvening: bools[5],
			ThursdayMorning:  bools[6],
			ThursdayEvening:  bools[7],
			FridayMorning:    bools[8],
			FridayEvening:    bools[9],
		})
	}
	return prefs, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", path, err)
	}
	return records, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
