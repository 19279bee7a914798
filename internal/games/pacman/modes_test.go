package pacman

import "testing"

func TestScheduleShape(t *testing.T) {
	for _, level := range []int{1, 2, 5, 20} {
		phases := scheduleForLevel(level)
		if phases[0].mode != ModeScatter {
			t.Errorf("level %d: schedule starts with %v, want scatter", level, phases[0].mode)
		}
		last := phases[len(phases)-1]
		if last.mode != ModeChase || last.secs > 0 {
			t.Errorf("level %d: schedule must end in indefinite chase, got %+v", level, last)
		}
	}
}

func TestScheduleShrinksWithLevel(t *testing.T) {
	early := scheduleForLevel(1)[0].secs
	late := scheduleForLevel(9)[0].secs
	if late >= early {
		t.Errorf("first scatter at level 9 (%vs) should be shorter than level 1 (%vs)", late, early)
	}
}

func TestModeClockAlternation(t *testing.T) {
	c := NewModeClock(1)
	if c.Scheduled() != ModeScatter {
		t.Fatalf("fresh clock scheduled %v, want scatter", c.Scheduled())
	}

	flipped, _ := c.Advance(7.01)
	if !flipped || c.Scheduled() != ModeChase {
		t.Fatalf("after 7s: flipped=%v scheduled=%v, want flip to chase", flipped, c.Scheduled())
	}

	flipped, _ = c.Advance(20.0)
	if !flipped || c.Scheduled() != ModeScatter {
		t.Fatalf("after chase window: flipped=%v scheduled=%v, want flip to scatter", flipped, c.Scheduled())
	}
}

func TestModeClockIndefiniteChase(t *testing.T) {
	c := NewModeClock(1)
	c.Advance(1000) // run far past the whole timetable
	if c.Scheduled() != ModeChase {
		t.Fatalf("scheduled %v, want terminal chase", c.Scheduled())
	}
	for i := 0; i < 10; i++ {
		if flipped, _ := c.Advance(100); flipped {
			t.Fatal("terminal chase must never flip")
		}
	}
}

func TestModeClockFrightenedFreezesSchedule(t *testing.T) {
	c := NewModeClock(1)
	c.Advance(5) // 2s of scatter left

	c.Frighten(4)
	if !c.FrightenedActive() {
		t.Fatal("frightened should be active")
	}

	// The scheduled alternation must not progress while frightened.
	flipped, ended := c.Advance(3)
	if flipped || ended || !c.FrightenedActive() {
		t.Fatalf("mid-fright: flipped=%v ended=%v active=%v", flipped, ended, c.FrightenedActive())
	}

	flipped, ended = c.Advance(1.5)
	if flipped || !ended || c.FrightenedActive() {
		t.Fatalf("fright expiry: flipped=%v ended=%v active=%v", flipped, ended, c.FrightenedActive())
	}

	// Schedule resumes with its 2 remaining scatter seconds.
	if flipped, _ := c.Advance(1); flipped {
		t.Fatal("schedule should still be in scatter")
	}
	if flipped, _ := c.Advance(1.5); !flipped || c.Scheduled() != ModeChase {
		t.Fatal("schedule should flip to chase after its remaining scatter time")
	}
}

func TestModeClockIgnoresNonPositiveFright(t *testing.T) {
	c := NewModeClock(1)
	c.Frighten(0)
	c.Frighten(-3)
	if c.FrightenedActive() {
		t.Fatal("non-positive frighten must be ignored")
	}
}

func TestFrightenedDuration(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, 6},
		{4, 3},
		{7, 0},
		{8, 0}, // floors at zero, never negative
	}
	for _, tt := range tests {
		if got := FrightenedDuration(tt.level, 6, 1); got != tt.want {
			t.Errorf("FrightenedDuration(level %d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
