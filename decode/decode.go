// Package decode turns a particle's continuous position vector into a
// concrete timetable: which day and time window each requested course lands
// in, and which room its class is assigned.
package decode

import (
	"sort"

	"github.com/ahmadyovan/schedule-optimization/timetable"
)

// fourCourseDayBudget and defaultDayBudget are the per-day credit budgets
// used while packing a group's courses across the week (§4.2 step B). A
// group of exactly four courses gets the tighter budget; this mirrors a
// heuristic that limits daily load for the common four-subject semester.
const (
	fourCourseDayBudget = 3
	defaultDayBudget    = 6
	fourCourseGroupSize = 4

	lastWeekday = timetable.Friday
)

type scored struct {
	course   timetable.Course
	dayOrder float64
	timeOrder float64
}

// Decode maps position (length 2*len(courses), laid out as
// [dayOrder0, timeOrder0, dayOrder1, timeOrder1, ...] in courses' input
// order) onto a scheduled timetable. Position values outside [0,1) are
// accepted; only relative order within a group matters.
func Decode(position []float64, courses []timetable.Course) timetable.Timetable {
	scoredCourses := attachScores(position, courses)
	byDay := packDays(scoredCourses)
	return packTimes(byDay)
}

func attachScores(position []float64, courses []timetable.Course) []scored {
	out := make([]scored, len(courses))
	for i, c := range courses {
		out[i] = scored{
			course:    c,
			dayOrder:  position[2*i],
			timeOrder: position[2*i+1],
		}
	}
	return out
}

// dayAssigned is a course paired with the weekday step B assigned it.
type dayAssigned struct {
	scored
	weekday timetable.Weekday
}

func packDays(scoredCourses []scored) []dayAssigned {
	byGroup := map[interface{}][]int{}

	for i, sc := range scoredCourses {
		key := sc.course.GroupKey()
		byGroup[key] = append(byGroup[key], i)
	}

	result := make([]dayAssigned, len(scoredCourses))

	for _, idxs := range byGroup {
		sort.SliceStable(idxs, func(a, b int) bool {
			return scoredCourses[idxs[a]].dayOrder < scoredCourses[idxs[b]].dayOrder
		})

		budget := defaultDayBudget
		if len(idxs) == fourCourseGroupSize {
			budget = fourCourseDayBudget
		}

		var load [lastWeekday + 1]int
		day := timetable.Monday

		for _, idx := range idxs {
			c := scoredCourses[idx].course
			for day <= lastWeekday && load[day]+c.Credits > budget {
				day++
			}
			var assigned timetable.Weekday
			if day <= lastWeekday {
				assigned = day
				load[day] += c.Credits
			} else {
				assigned = lastWeekday
			}
			result[idx] = dayAssigned{scored: scoredCourses[idx], weekday: assigned}
		}
	}

	return result
}

type timeGroupKey struct {
	program     int
	semester    int
	classID     int
	sessionBand timetable.SessionBand
	weekday     timetable.Weekday
}

func packTimes(assigned []dayAssigned) timetable.Timetable {
	byGroup := map[timeGroupKey][]int{}
	for i, da := range assigned {
		key := timeGroupKey{
			program:     da.course.Program,
			semester:    da.course.Semester,
			classID:     da.course.ClassID,
			sessionBand: da.course.SessionBand,
			weekday:     da.weekday,
		}
		byGroup[key] = append(byGroup[key], i)
	}

	out := make(timetable.Timetable, len(assigned))
	rooms := roomAssignments(assigned)

	for _, idxs := range byGroup {
		sort.SliceStable(idxs, func(a, b int) bool {
			return assigned[idxs[a]].timeOrder < assigned[idxs[b]].timeOrder
		})

		da0 := assigned[idxs[0]]
		start, end := timetable.SessionWindow(da0.course.SessionBand)
		cursor := start

		for _, idx := range idxs {
			da := assigned[idx]
			duration := timetable.Duration(da.course.Credits)
			if cursor+duration > end {
				cursor = start
			}
			out[idx] = timetable.ScheduledCourse{
				Course:      da.course,
				Weekday:     da.weekday,
				StartMinute: cursor,
				EndMinute:   cursor + duration,
				Room:        rooms[da.course.ClassKey()],
			}
			cursor += duration
		}
	}

	return out
}

// roomAssignments numbers each distinct (program, semester, class) identity
// by first-encounter order in the input, starting at 1.
func roomAssignments(assigned []dayAssigned) map[interface{}]int {
	rooms := map[interface{}]int{}
	next := 1
	for _, da := range assigned {
		key := da.course.ClassKey()
		if _, ok := rooms[key]; !ok {
			rooms[key] = next
			next++
		}
	}
	return rooms
}
