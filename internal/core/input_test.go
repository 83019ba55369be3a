package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Fatal("new frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionUp)
	if !f.Has(ActionFire) || !f.Has(ActionUp) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate the action map")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.Pointer(); ok {
		t.Fatal("new frame should have no pointer")
	}

	f.SetPointer(12, 7)
	p, ok := f.Pointer()
	if !ok || p != (Pointer{X: 12, Y: 7}) {
		t.Errorf("Pointer() = %+v, %v, expected {12 7}, true", p, ok)
	}

	f.Clear()
	if _, ok := f.Pointer(); ok {
		t.Error("Clear should drop the pointer")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"orange", ColorOrange, true},
		{" Bright_Blue ", ColorBrightBlue, true},
		{"olive", ColorOlive, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseColor(%q) = %v, %v, expected %v, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRunStatsAccuracy(t *testing.T) {
	if (RunStats{}).Accuracy() != 0 {
		t.Error("accuracy without shots should be 0")
	}
	s := RunStats{Shots: 8, Hits: 2}
	if s.Accuracy() != 0.25 {
		t.Errorf("Accuracy() = %v, expected 0.25", s.Accuracy())
	}
}
