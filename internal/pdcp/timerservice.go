package pdcp

import "time"

// afterFuncTimer adapts time.AfterFunc to the Timer interface. Grounded on
// the pack's own use of time.AfterFunc for scoped, cancellable countdowns
// (the teacher's status-bar clear timer); no ecosystem scheduler in the
// retrieval pack models "arm N independent countdowns keyed by an opaque
// token" any more directly than the standard library already does.
type afterFuncTimer struct {
	t *time.Timer
}

func (a *afterFuncTimer) Stop() { a.t.Stop() }

// StdTimerService is a TimerService backed by time.AfterFunc. The callback
// passed to Arm runs as given; the timer holds whatever the closure
// captures until it fires or is stopped.
type StdTimerService struct{}

// NewStdTimerService returns the default TimerService implementation.
func NewStdTimerService() *StdTimerService { return &StdTimerService{} }

// Arm starts a one-shot timer that invokes fn after d.
func (s *StdTimerService) Arm(d time.Duration, fn func()) Timer {
	return &afterFuncTimer{t: time.AfterFunc(d, fn)}
}
