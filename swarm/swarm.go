// Package swarm implements the PSO engine: a single run of a swarm of
// particles against a fixed course list and preference table, decoding and
// evaluating in parallel each iteration and reporting progress as it goes.
package swarm

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/ahmadyovan/schedule-optimization/decode"
	"github.com/ahmadyovan/schedule-optimization/evaluator"
	"github.com/ahmadyovan/schedule-optimization/internal/nursery"
	"github.com/ahmadyovan/schedule-optimization/particle"
	"github.com/ahmadyovan/schedule-optimization/progress"
	"github.com/ahmadyovan/schedule-optimization/timetable"
	"github.com/ahmadyovan/schedule-optimization/vec"
)

// earlyStopThreshold is the global-best fitness below which a run exits
// before exhausting MaxIterations.
const earlyStopThreshold = 0.001

// Config holds the parameters of a single engine run. All fields are
// immutable once a run starts.
type Config struct {
	NumParticles  int
	MaxIterations int

	Inertia  float64 // w
	Cogitive float64 // c1
	Social   float64 // c2

	ClampVelocity bool
}

// DefaultConfig returns parameters matching the commonly-used standard PSO
// coefficients (w=0.7, c1=c2=1.5).
func DefaultConfig() Config {
	return Config{
		NumParticles:  30,
		MaxIterations: 200,
		Inertia:       0.7,
		Cogitive:      1.5,
		Social:        1.5,
		ClampVelocity: true,
	}
}

// Engine owns one swarm's particles and global-best state for the
// duration of a single run.
type Engine struct {
	conf    Config
	courses []timetable.Course
	prefs   timetable.PreferenceTable

	particles []*particle.Particle

	globalBestPos     vec.Vec
	globalBestFitness float64

	broadcaster *progress.Broadcaster
	stop        *progress.StopFlag

	runIndex, totalRuns int
}

// New constructs an engine with a freshly seeded swarm. rng seeds every
// particle's own generator, so independent runs never share RNG state.
func New(conf Config, courses []timetable.Course, prefs timetable.PreferenceTable, rng *rand.Rand, broadcaster *progress.Broadcaster, stop *progress.StopFlag, runIndex, totalRuns int) *Engine {
	dim := 2 * len(courses)
	particles := make([]*particle.Particle, conf.NumParticles)
	for i := range particles {
		particles[i] = particle.New(dim, rand.New(rand.NewSource(rng.Int63())))
	}
	return &Engine{
		conf:              conf,
		courses:           courses,
		prefs:             prefs,
		particles:         particles,
		globalBestPos:     vec.New(dim),
		globalBestFitness: math.Inf(1),
		broadcaster:       broadcaster,
		stop:              stop,
		runIndex:          runIndex,
		totalRuns:         totalRuns,
	}
}

// Run executes the iteration loop of §4.4 and returns the global-best
// position and fitness found. It always emits a final progress snapshot
// with Finished=true before returning, whether it stopped normally, early,
// or via cancellation.
func (e *Engine) Run(ctx context.Context) (vec.Vec, float64, error) {
	start := time.Now()
	iteration := 0

	for ; iteration < e.conf.MaxIterations; iteration++ {
		if e.stop != nil && e.stop.Stopped() {
			break
		}

		if err := e.evaluateAndTrackBest(ctx); err != nil {
			return e.globalBestPos, e.globalBestFitness, err
		}
		e.gatherGlobalBest()
		if err := e.move(ctx); err != nil {
			return e.globalBestPos, e.globalBestFitness, err
		}

		e.publish(iteration, start, false)

		if e.globalBestFitness < earlyStopThreshold {
			iteration++
			break
		}
	}

	e.publish(iteration, start, true)
	return e.globalBestPos, e.globalBestFitness, nil
}

func (e *Engine) evaluateAndTrackBest(ctx context.Context) error {
	return nursery.RunIndexed(ctx, len(e.particles), func(_ context.Context, i int) error {
		p := e.particles[i]
		tt := decode.Decode(p.Pos, e.courses)
		p.Fitness = evaluator.Evaluate(tt, e.prefs, nil)
		p.UpdateBest()
		return nil
	})
}

func (e *Engine) gatherGlobalBest() {
	for _, p := range e.particles {
		if math.IsInf(p.BestFitness, 1) || !(p.BestFitness < e.globalBestFitness) {
			continue
		}
		e.globalBestPos.Replace(p.BestPos)
		e.globalBestFitness = p.BestFitness
	}
}

func (e *Engine) move(ctx context.Context) error {
	return nursery.RunIndexed(ctx, len(e.particles), func(_ context.Context, i int) error {
		e.particles[i].Move(e.globalBestPos, e.conf.Inertia, e.conf.Cogitive, e.conf.Social, e.conf.ClampVelocity)
		return nil
	})
}

func (e *Engine) publish(iteration int, start time.Time, finished bool) {
	if e.broadcaster == nil {
		return
	}
	e.broadcaster.Publish(progress.Snapshot{
		RunIndex:   e.runIndex,
		TotalRuns:  e.totalRuns,
		Iteration:  iteration,
		Elapsed:    time.Since(start),
		GlobalBest: e.globalBestFitness,
		Finished:   finished,
	})
}
