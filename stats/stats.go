// Package stats has running statistics for batches of computer games.
package stats

import "math"

const Epsilon = 1e-6

func FuzzyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Statistic accumulates a mean and variance one sample at a time, using
// Welford's method.
type Statistic struct {
	n    int
	mean float64
	m2   float64
	min  float64
	max  float64
}

func (s *Statistic) Push(val float64) {
	s.n++
	if s.n == 1 {
		s.min, s.max = val, val
	} else {
		s.min = min(s.min, val)
		s.max = max(s.max, val)
	}
	delta := val - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (val - s.mean)
}

func (s *Statistic) Count() int {
	return s.n
}

func (s *Statistic) Mean() float64 {
	return s.mean
}

// Variance is the sample variance. It is 0 for fewer than two samples.
func (s *Statistic) Variance() float64 {
	if s.n < 2 {
		return 0
	}
	return s.m2 / float64(s.n-1)
}

func (s *Statistic) Stdev() float64 {
	return math.Sqrt(s.Variance())
}

func (s *Statistic) StdErr() float64 {
	if s.n == 0 {
		return 0
	}
	return math.Sqrt(s.Variance() / float64(s.n))
}

func (s *Statistic) Min() float64 {
	return s.min
}

func (s *Statistic) Max() float64 {
	return s.max
}
