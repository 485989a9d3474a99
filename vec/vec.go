// Package vec provides the slice-of-float64 point type shared by the
// particle and swarm packages: a particle's position, velocity, and
// personal best, and the swarm's global best, are all points in the same
// continuous search space. The package keeps only the operations the PSO
// update equations and their tests actually perform on such points.
package vec

import (
	"fmt"
	"math"
)

// Vec is a point or displacement in the continuous search space the swarm
// explores: one component per decision dimension of the timetable encoding.
type Vec []float64

func assertSameLen(a, b Vec) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vec: mismatched lengths %d and %d", len(a), len(b)))
	}
}

// New returns a zeroed vector of the given dimension.
func New(size int) Vec {
	return Vec(make([]float64, size))
}

// NewFFilled returns a vector of the given dimension with each component
// sampled by an independent call to f, used to draw a particle's initial
// position and velocity one dimension at a time.
func NewFFilled(size int, f func() float64) Vec {
	v := New(size)
	for i := range v {
		v[i] = f()
	}
	return v
}

// Replace overwrites v in place with other's components, used to snapshot
// the current position into a particle's personal best.
func (v Vec) Replace(other Vec) Vec {
	assertSameLen(v, other)
	copy(v, other)
	return v
}

// Copy returns a new vector with its own backing array holding the same
// components as v.
func (v Vec) Copy() Vec {
	return New(len(v)).Replace(v)
}

// AddBy adds other into v component-wise in place: the position-update half
// of the PSO equations, v[i] += other[i].
func (v Vec) AddBy(other Vec) Vec {
	assertSameLen(v, other)
	for i, val := range other {
		v[i] += val
	}
	return v
}

// Sub returns a new vector holding v[i] - other[i], used to measure how far
// a particle's current position has drifted from its personal best.
func (v Vec) Sub(other Vec) Vec {
	assertSameLen(v, other)
	out := New(len(v))
	for i, val := range v {
		out[i] = val - other[i]
	}
	return out
}

// Norm returns the degree-norm of v. Degree 2 is euclidean distance from the
// origin; degree must be positive.
func (v Vec) Norm(degree float64) float64 {
	if degree <= 0.0 {
		panic(fmt.Sprintf("vec: non-positive norm degree %v", degree))
	}
	s := 0.0
	if degree == 1.0 {
		for _, val := range v {
			s += math.Abs(val)
		}
		return s
	}
	for _, val := range v {
		s += math.Pow(math.Abs(val), degree)
	}
	return math.Pow(s, 1.0/degree)
}
