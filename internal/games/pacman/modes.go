package pacman

// GhostMode is the behavioral state of a ghost.
type GhostMode uint8

const (
	ModeScatter GhostMode = iota
	ModeChase
	ModeFrightened
	ModeEaten
)

func (m GhostMode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	default:
		return "eaten"
	}
}

// modePhase is one leg of the scatter/chase alternation. A non-positive
// duration means the phase never ends.
type modePhase struct {
	mode GhostMode
	secs float64
}

// scheduleForLevel returns the scatter/chase timetable for a level.
// Scatter windows shrink as levels climb; every schedule ends in an
// indefinite chase.
func scheduleForLevel(level int) []modePhase {
	scatter := func(s float64) modePhase { return modePhase{mode: ModeScatter, secs: s} }
	chase := func(s float64) modePhase { return modePhase{mode: ModeChase, secs: s} }

	switch {
	case level <= 1:
		return []modePhase{
			scatter(7), chase(20),
			scatter(7), chase(20),
			scatter(5), chase(20),
			scatter(5), chase(0),
		}
	case level <= 4:
		return []modePhase{
			scatter(5), chase(20),
			scatter(5), chase(20),
			scatter(5), chase(20),
			scatter(3), chase(0),
		}
	default:
		return []modePhase{
			scatter(3), chase(20),
			scatter(3), chase(20),
			scatter(3), chase(20),
			scatter(1), chase(0),
		}
	}
}

// FrightenedDuration returns the frightened-mode length for a level,
// shrinking linearly until it floors at zero. At zero a power pellet still
// scores but no longer frightens.
func FrightenedDuration(level int, base, decayPerLevel float64) float64 {
	d := base - decayPerLevel*float64(level-1)
	if d < 0 {
		return 0
	}
	return d
}

// ModeClock drives the global scatter/chase alternation and the frightened
// countdown. While frightened time remains, the scheduled alternation is
// frozen.
type ModeClock struct {
	phases     []modePhase
	idx        int
	remaining  float64
	frightened float64
}

// NewModeClock returns a clock positioned at the start of the level's
// schedule.
func NewModeClock(level int) *ModeClock {
	c := &ModeClock{}
	c.Reset(level)
	return c
}

// Reset rewinds the clock onto the given level's schedule and clears any
// frightened time.
func (c *ModeClock) Reset(level int) {
	c.phases = scheduleForLevel(level)
	c.idx = 0
	c.remaining = c.phases[0].secs
	c.frightened = 0
}

// Scheduled returns the mode the alternation currently prescribes,
// regardless of frightened time.
func (c *ModeClock) Scheduled() GhostMode {
	return c.phases[c.idx].mode
}

// FrightenedActive reports whether frightened time remains.
func (c *ModeClock) FrightenedActive() bool {
	return c.frightened > 0
}

// Frighten starts (or restarts) the frightened countdown. A non-positive
// duration is ignored.
func (c *ModeClock) Frighten(secs float64) {
	if secs <= 0 {
		return
	}
	c.frightened = secs
}

// ClearFrightened cancels any remaining frightened time without reporting
// an expiry. Used when a life is lost mid-fright.
func (c *ModeClock) ClearFrightened() {
	c.frightened = 0
}

// Advance moves the clock by dt seconds. flipped reports that the scheduled
// mode changed this step; frightEnded reports that the frightened countdown
// ran out this step. At most one of the two is true per call.
func (c *ModeClock) Advance(dt float64) (flipped, frightEnded bool) {
	if c.frightened > 0 {
		c.frightened -= dt
		if c.frightened <= 0 {
			c.frightened = 0
			return false, true
		}
		return false, false
	}

	if c.phases[c.idx].secs <= 0 {
		return false, false // terminal indefinite phase
	}
	c.remaining -= dt
	for c.remaining <= 0 && c.idx < len(c.phases)-1 {
		c.idx++
		c.remaining += c.phases[c.idx].secs
		flipped = true
		if c.phases[c.idx].secs <= 0 {
			break
		}
	}
	return flipped, false
}
