package core

import "testing"

func TestInputFrameSetAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)

	if !f.WasJustPressed(ActionJump) || !f.IsPressed(ActionJump) {
		t.Fatal("Set should mark the action as pressed and just pressed")
	}
	if f.Has(ActionRestart) {
		t.Error("unset action should not be reported")
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionJump) || f.IsPressed(ActionJump) {
		t.Error("Clear should reset all actions")
	}
	if !clone.Has(ActionJump) {
		t.Error("Clone should not share maps with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || f.IsPressed(ActionJump) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionJump) // Should not panic
	if !f.Has(ActionJump) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestEdgeDetectorHeldKeyFiresOnce(t *testing.T) {
	d := NewEdgeDetector()

	samples := [][]Action{
		{},
		{ActionJump},
		{ActionJump},
		{ActionJump},
		{},
		{ActionJump},
	}
	expectedEdges := []bool{false, true, false, false, false, true}
	expectedHeld := []bool{false, true, true, true, false, true}

	for i, down := range samples {
		f := d.Sample(down...)
		if got := f.WasJustPressed(ActionJump); got != expectedEdges[i] {
			t.Errorf("tick %d: WasJustPressed = %v, expected %v", i, got, expectedEdges[i])
		}
		if got := f.IsPressed(ActionJump); got != expectedHeld[i] {
			t.Errorf("tick %d: IsPressed = %v, expected %v", i, got, expectedHeld[i])
		}
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionJump:    "Jump",
		ActionRestart: "Restart",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, expected := range tests {
		if a.String() != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), a.String(), expected)
		}
	}
}
