// Package runcontrol drives independent swarm runs and aggregates their
// results, since PSO's sensitivity to initialization is best mitigated by
// restarting rather than by any single run's internal mechanics.
package runcontrol

import (
	"context"
	"math"
	"math/rand"

	"github.com/ahmadyovan/schedule-optimization/decode"
	"github.com/ahmadyovan/schedule-optimization/progress"
	"github.com/ahmadyovan/schedule-optimization/swarm"
	"github.com/ahmadyovan/schedule-optimization/timetable"
)

// Config bundles a swarm configuration with the number of independent runs
// to perform. DefaultRuns is 1; the dominant deployment configuration uses 5.
type Config struct {
	Swarm swarm.Config
	Runs  int
}

// DefaultRuns is the run count used when a caller hasn't chosen one.
const DefaultRuns = 1

// Result is the outcome of a full multi-run optimization.
type Result struct {
	Success        bool
	BestFitness    float64
	PerRunBest     []float64
	FinalTimetable timetable.Timetable
}

// Run executes conf.Runs independent engine runs over courses and prefs,
// seeding each from seed so the whole controller is reproducible, and
// returns the aggregated result. broadcaster and stop may be nil.
func Run(ctx context.Context, conf Config, courses []timetable.Course, prefs timetable.PreferenceTable, seed int64, broadcaster *progress.Broadcaster, stop *progress.StopFlag) Result {
	runs := conf.Runs
	if runs <= 0 {
		runs = DefaultRuns
	}

	controllerRNG := rand.New(rand.NewSource(seed))

	bestOverallFitness := math.Inf(1)
	var bestOverallPos []float64
	perRunBest := make([]float64, 0, runs)

	for r := 0; r < runs; r++ {
		if stop != nil && stop.Stopped() {
			break
		}

		engine := swarm.New(conf.Swarm, courses, prefs, rand.New(rand.NewSource(controllerRNG.Int63())), broadcaster, stop, r, runs)
		pos, fitness, err := engine.Run(ctx)
		if err != nil {
			continue
		}

		perRunBest = append(perRunBest, fitness)
		if fitness < bestOverallFitness {
			bestOverallFitness = fitness
			bestOverallPos = append([]float64(nil), pos...)
		}
	}

	result := Result{
		Success:     len(perRunBest) > 0,
		BestFitness: bestOverallFitness,
		PerRunBest:  perRunBest,
	}
	if bestOverallPos != nil {
		result.FinalTimetable = decode.Decode(bestOverallPos, courses)
	}
	return result
}
