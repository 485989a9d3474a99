package swarm

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/ahmadyovan/schedule-optimization/progress"
	"github.com/ahmadyovan/schedule-optimization/timetable"
)

func testCourses() []timetable.Course {
	return []timetable.Course{
		{ScheduleID: 1, LecturerID: 1, ClassID: 1, Program: 7, Semester: 1, SessionBand: timetable.SessionMorning, Credits: 2},
		{ScheduleID: 2, LecturerID: 2, ClassID: 1, Program: 7, Semester: 1, SessionBand: timetable.SessionMorning, Credits: 2},
		{ScheduleID: 3, LecturerID: 3, ClassID: 1, Program: 7, Semester: 1, SessionBand: timetable.SessionMorning, Credits: 2},
	}
}

func TestEngine_RunReturnsNonNegativeFitness(t *testing.T) {
	conf := DefaultConfig()
	conf.NumParticles = 8
	conf.MaxIterations = 20

	e := New(conf, testCourses(), nil, rand.New(rand.NewSource(1)), nil, nil, 0, 1)
	_, fitness, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if fitness < 0 {
		t.Errorf("fitness = %v, want >= 0", fitness)
	}
}

func TestEngine_StopFlagHaltsEarly(t *testing.T) {
	conf := DefaultConfig()
	conf.NumParticles = 4
	conf.MaxIterations = 1000

	stop := &progress.StopFlag{}
	stop.Stop()

	e := New(conf, testCourses(), nil, rand.New(rand.NewSource(1)), nil, stop, 0, 1)
	_, fitness, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// Stopped before the first iteration: nothing was evaluated.
	if !math.IsInf(fitness, 1) {
		t.Errorf("fitness = %v, want +Inf (no iteration run)", fitness)
	}
}

func TestEngine_PublishesFinalSnapshot(t *testing.T) {
	conf := DefaultConfig()
	conf.NumParticles = 4
	conf.MaxIterations = 3

	b := progress.NewBroadcaster()
	sub := b.Subscribe()

	e := New(conf, testCourses(), nil, rand.New(rand.NewSource(2)), b, nil, 0, 1)
	if _, _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	b.Close()

	var last progress.Snapshot
	for snap := range sub {
		last = snap
	}
	if !last.Finished {
		t.Errorf("final snapshot Finished = false, want true")
	}
}

func TestEngine_GlobalBestNeverWorsens(t *testing.T) {
	conf := DefaultConfig()
	conf.NumParticles = 6
	conf.MaxIterations = 1

	e := New(conf, testCourses(), nil, rand.New(rand.NewSource(3)), nil, nil, 0, 1)
	before := e.globalBestFitness
	if _, after, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	} else if after > before {
		t.Errorf("global best worsened: %v -> %v", before, after)
	}
}
