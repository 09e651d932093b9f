package domain

type CooldownTarget struct {
	seconds int64
}

func NewCooldownTarget(seconds int64) (CooldownTarget, error) {
	if seconds < 0 {
		return CooldownTarget{}, ErrInvalidDuration
	}

	return CooldownTarget{seconds: seconds}, nil
}

// CooldownTargetFromStore accepts whatever another client wrote. Negative
// values are read as zero.
func CooldownTargetFromStore(seconds int64) CooldownTarget {
	if seconds < 0 {
		seconds = 0
	}

	return CooldownTarget{seconds: seconds}
}

func (c CooldownTarget) Seconds() int64 {
	return c.seconds
}

type CountdownState string

const (
	CountdownIdle     CountdownState = "idle"
	CountdownCounting CountdownState = "counting"
)

// Countdown derives the remaining seconds from the last stored target.
// Idle holds zero; Counting holds a positive value.
type Countdown struct {
	remaining int64
}

// Reset applies a new target from the store.
func (c *Countdown) Reset(target CooldownTarget) {
	c.remaining = target.Seconds()
}

// Tick decrements by one second, floored at zero. It reports whether the
// remaining value changed.
func (c *Countdown) Tick() bool {
	if c.remaining <= 0 {
		return false
	}

	c.remaining--

	return true
}

func (c *Countdown) Remaining() int64 {
	return c.remaining
}

func (c *Countdown) State() CountdownState {
	if c.remaining > 0 {
		return CountdownCounting
	}

	return CountdownIdle
}
