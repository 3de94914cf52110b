package services

import "time"

// Clock abstracts the current-time lookup, the only impurity of the
// reduction pipeline.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func NewClock() Clock {
	return systemClock{}
}
