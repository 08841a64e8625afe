// Package pomodoro implements the focus timer as an explicit state machine.
// Nothing here runs in the background; the caller drives transitions by
// passing the current time to Tick.
package pomodoro

import (
	"errors"
	"time"
)

var (
	ErrAlreadyRunning = errors.New("pomodoro session already running")
	ErrNotRunning     = errors.New("no pomodoro session running")
)

// Phase is the current timer state.
type Phase string

const (
	PhaseIdle  Phase = "idle"
	PhaseWork  Phase = "work"
	PhaseBreak Phase = "break"
)

// Session tracks one pomodoro run: alternating work and break intervals.
type Session struct {
	workDuration  time.Duration
	breakDuration time.Duration

	phase      Phase
	phaseStart time.Time
	completed  int // finished work intervals
}

// NewSession creates an idle session with the given interval lengths.
func NewSession(work, breakDur time.Duration) *Session {
	if work <= 0 {
		work = 25 * time.Minute
	}
	if breakDur <= 0 {
		breakDur = 5 * time.Minute
	}
	return &Session{
		workDuration:  work,
		breakDuration: breakDur,
		phase:         PhaseIdle,
	}
}

func (s *Session) Phase() Phase   { return s.phase }
func (s *Session) Completed() int { return s.completed }

// Start begins the first work interval.
func (s *Session) Start(now time.Time) error {
	if s.phase != PhaseIdle {
		return ErrAlreadyRunning
	}
	s.phase = PhaseWork
	s.phaseStart = now
	return nil
}

// Tick advances the state machine to the given time, applying as many phase
// transitions as have elapsed, and returns the current phase.
func (s *Session) Tick(now time.Time) Phase {
	for s.phase != PhaseIdle {
		length := s.workDuration
		if s.phase == PhaseBreak {
			length = s.breakDuration
		}
		end := s.phaseStart.Add(length)
		if now.Before(end) {
			break
		}
		if s.phase == PhaseWork {
			s.completed++
			s.phase = PhaseBreak
		} else {
			s.phase = PhaseWork
		}
		s.phaseStart = end
	}
	return s.phase
}

// Remaining reports how much of the current phase is left.
func (s *Session) Remaining(now time.Time) time.Duration {
	if s.phase == PhaseIdle {
		return 0
	}
	length := s.workDuration
	if s.phase == PhaseBreak {
		length = s.breakDuration
	}
	rem := s.phaseStart.Add(length).Sub(now)
	if rem < 0 {
		return 0
	}
	return rem
}

// Stop ends the session.
func (s *Session) Stop() error {
	if s.phase == PhaseIdle {
		return ErrNotRunning
	}
	s.phase = PhaseIdle
	return nil
}
