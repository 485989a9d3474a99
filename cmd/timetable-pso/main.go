// Command timetable-pso runs the particle swarm optimizer against a CSV
// course list and an optional CSV preference table, and prints the
// resulting timetable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ahmadyovan/schedule-optimization/ingest"
	"github.com/ahmadyovan/schedule-optimization/internal/convergence"
	"github.com/ahmadyovan/schedule-optimization/internal/telemetry"
	"github.com/ahmadyovan/schedule-optimization/progress"
	"github.com/ahmadyovan/schedule-optimization/runcontrol"
	"github.com/ahmadyovan/schedule-optimization/swarm"
	"github.com/ahmadyovan/schedule-optimization/timetable"
)

func main() {
	coursesPath := flag.String("courses", "", "path to course CSV (required)")
	prefsPath := flag.String("preferences", "", "path to preference CSV (optional)")
	numParticles := flag.Int("particles", 30, "swarm size")
	maxIterations := flag.Int("iterations", 200, "maximum iterations per run")
	numRuns := flag.Int("runs", runcontrol.DefaultRuns, "number of independent runs")
	inertia := flag.Float64("inertia", 0.7, "inertia weight (w)")
	cognitive := flag.Float64("cognitive", 1.5, "cognitive weight (c1)")
	social := flag.Float64("social", 1.5, "social weight (c2)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "controller RNG seed")
	plotPath := flag.String("plot", "", "if set, write a convergence chart PNG/PDF to this path")
	prod := flag.Bool("prod", false, "use production logging")
	flag.Parse()

	if *coursesPath == "" {
		fmt.Fprintln(os.Stderr, "timetable-pso: -courses is required")
		os.Exit(2)
	}

	if err := telemetry.Init(*prod); err != nil {
		fmt.Fprintf(os.Stderr, "timetable-pso: init logging: %v\n", err)
		os.Exit(1)
	}
	logger := telemetry.L()
	defer logger.Sync()

	courses, err := ingest.LoadCourses(*coursesPath)
	if err != nil {
		logger.Sugar().Fatalf("load courses: %v", err)
	}

	prefTable, err := loadPreferenceTable(*prefsPath)
	if err != nil {
		logger.Sugar().Fatalf("load preferences: %v", err)
	}

	conf := runcontrol.Config{
		Swarm: swarm.Config{
			NumParticles:  *numParticles,
			MaxIterations: *maxIterations,
			Inertia:       *inertia,
			Cogitive:      *cognitive,
			Social:        *social,
			ClampVelocity: true,
		},
		Runs: *numRuns,
	}

	broadcaster := progress.NewBroadcaster()
	stop := &progress.StopFlag{}

	var points []convergence.Point
	sub := broadcaster.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for snap := range sub {
			logger.Sugar().Infof("run %d/%d iter %d best=%.2f finished=%v",
				snap.RunIndex+1, snap.TotalRuns, snap.Iteration, snap.GlobalBest, snap.Finished)
			points = append(points, convergence.Point{Iteration: snap.Iteration, Best: snap.GlobalBest})
		}
	}()

	result := runcontrol.Run(context.Background(), conf, courses, prefTable, *seed, broadcaster, stop)
	broadcaster.Close()
	<-done

	if !result.Success {
		logger.Sugar().Fatal("no run completed successfully")
	}

	fmt.Printf("best fitness: %.2f\n", result.BestFitness)
	fmt.Printf("per-run best: %v\n", result.PerRunBest)
	for _, sc := range result.FinalTimetable {
		fmt.Printf("schedule %d: weekday=%d %02d:%02d-%02d:%02d room=%d\n",
			sc.ScheduleID, sc.Weekday, sc.StartMinute/60, sc.StartMinute%60, sc.EndMinute/60, sc.EndMinute%60, sc.Room)
	}

	if *plotPath != "" {
		if err := convergence.Save(points, 0, *plotPath); err != nil {
			logger.Sugar().Errorf("save convergence chart: %v", err)
		}
	}
}

func loadPreferenceTable(path string) (timetable.PreferenceTable, error) {
	if path == "" {
		return nil, nil
	}
	prefs, err := ingest.LoadPreferences(path)
	if err != nil {
		return nil, err
	}
	return timetable.NewPreferenceTable(prefs), nil
}
