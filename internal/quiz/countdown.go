package quiz

// Countdown counts whole seconds down to zero. It is not safe for
// concurrent use; the owning Flow serialises access.
type Countdown struct {
	remaining int
	fired     bool
}

func NewCountdown(seconds int) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	return &Countdown{remaining: seconds}
}

func (c *Countdown) Remaining() int {
	return c.remaining
}

func (c *Countdown) Expired() bool {
	return c.remaining == 0
}

// Tick removes one second. It returns true exactly once, on the tick that
// reaches zero.
func (c *Countdown) Tick() bool {
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 && !c.fired {
		c.fired = true
		return true
	}
	return false
}
