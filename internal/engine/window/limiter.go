package window

import "time"

// Limiter caps the frame rate by sleeping out the rest of each frame's budget.
type Limiter struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewLimiter creates a limiter for fps frames per second. fps <= 0 disables it.
func NewLimiter(fps int) *Limiter {
	l := &Limiter{now: time.Now, sleep: time.Sleep}
	if fps > 0 {
		l.interval = time.Second / time.Duration(fps)
	}
	return l
}

// Interval returns the per-frame budget, zero when uncapped.
func (l *Limiter) Interval() time.Duration {
	return l.interval
}

// Wait blocks until at least one interval has passed since the previous Wait.
func (l *Limiter) Wait() {
	if l.interval <= 0 {
		return
	}
	now := l.now()
	if !l.last.IsZero() {
		if d := l.interval - now.Sub(l.last); d > 0 {
			l.sleep(d)
			now = now.Add(d)
		}
	}
	l.last = now
}
