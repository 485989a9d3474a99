// Package particle implements the continuous PSO particle: a position and
// velocity in the 2N-dimensional search space together with the
// personal-best state tracked across iterations. Positions start in [0,1)
// but are not kept there as the particle moves.
package particle

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/ahmadyovan/schedule-optimization/vec"
)

const (
	positionLow, positionHigh = 0.0, 1.0
	velocityLow, velocityHigh = -0.1, 0.1

	// ClampLow and ClampHigh bound velocity after an update when clamping is
	// enabled. The decoder only reads relative order within small groups, so
	// unclamped drift never breaks correctness; clamping is a pure stability
	// safeguard.
	ClampLow, ClampHigh = -0.5, 0.5
)

// Particle is one member of the swarm: a position/velocity pair in the
// continuous search space, its most recently evaluated fitness, and the best
// position/fitness it has ever observed.
type Particle struct {
	Pos, Vel vec.Vec
	Fitness  float64

	BestPos     vec.Vec
	BestFitness float64

	// Rand is this particle's own source, so parallel particles never share
	// generator state.
	Rand *rand.Rand
}

// New samples a particle of the given dimension: position components
// uniform in [0,1), velocity components uniform in [-0.1,0.1). The
// personal-best position starts as a copy of the initial position, and both
// the current and personal-best fitness start at +Inf, since no evaluation
// has happened yet.
func New(dim int, rng *rand.Rand) *Particle {
	pos := vec.NewFFilled(dim, func() float64 {
		return positionLow + rng.Float64()*(positionHigh-positionLow)
	})
	vel := vec.NewFFilled(dim, func() float64 {
		return velocityLow + rng.Float64()*(velocityHigh-velocityLow)
	})
	return &Particle{
		Pos:         pos,
		Vel:         vel,
		Fitness:     math.Inf(1),
		BestPos:     pos.Copy(),
		BestFitness: math.Inf(1),
		Rand:        rng,
	}
}

// UpdateBest copies the current position and fitness into the personal best
// if the current fitness is finite and strictly better.
func (p *Particle) UpdateBest() {
	if math.IsInf(p.Fitness, 0) || !(p.Fitness < p.BestFitness) {
		return
	}
	p.BestPos.Replace(p.Pos)
	p.BestFitness = p.Fitness
}

// Move applies the standard PSO velocity update toward the particle's own
// best and the supplied global best, then the position update. When clamp
// is true, velocity components are bounded to [ClampLow, ClampHigh]
// afterward.
func (p *Particle) Move(global vec.Vec, w, c1, c2 float64, clamp bool) {
	if len(global) != len(p.Pos) {
		panic(fmt.Sprintf("particle: global best dimension %d != particle dimension %d", len(global), len(p.Pos)))
	}
	for i := range p.Vel {
		r1, r2 := p.Rand.Float64(), p.Rand.Float64()
		p.Vel[i] = w*p.Vel[i] + c1*r1*(p.BestPos[i]-p.Pos[i]) + c2*r2*(global[i]-p.Pos[i])
		if clamp {
			p.Vel[i] = math.Min(ClampHigh, math.Max(ClampLow, p.Vel[i]))
		}
	}
	p.Pos.AddBy(p.Vel)
}

func (p *Particle) String() string {
	return fmt.Sprintf("f=%.4f x=%.3f bf=%.4f bx=%.3f", p.Fitness, p.Pos, p.BestFitness, p.BestPos)
}
