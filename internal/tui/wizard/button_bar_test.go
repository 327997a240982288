package wizard

import "testing"

func TestButtonBarFocusTraversal(t *testing.T) {
	bar := NewButtonBar(CreateBackNextButtons(true, "Next →"))

	bar.FocusFirst()
	if bar.FocusedButton() != ButtonBack {
		t.Errorf("expected Back focused first, got %v", bar.FocusedButton())
	}

	if !bar.FocusNext() {
		t.Fatal("expected focus to move to Next")
	}
	if bar.FocusedButton() != ButtonNext {
		t.Errorf("expected Next focused, got %v", bar.FocusedButton())
	}

	// Moving past the last button leaves the bar.
	if bar.FocusNext() {
		t.Error("expected focus to leave the bar at the end")
	}

	bar.FocusLast()
	if bar.FocusedButton() != ButtonNext {
		t.Errorf("expected Next focused last, got %v", bar.FocusedButton())
	}
	if !bar.FocusPrev() {
		t.Fatal("expected focus to move back to Back")
	}
	if bar.FocusPrev() {
		t.Error("expected focus to leave the bar at the start")
	}
}

func TestButtonBarSkipsDisabled(t *testing.T) {
	// First step: Back is disabled.
	bar := NewButtonBar(CreateBackNextButtons(false, "Next →"))

	bar.FocusFirst()
	if bar.FocusedButton() != ButtonNext {
		t.Errorf("expected disabled Back skipped, got %v", bar.FocusedButton())
	}

	bar.FocusLast()
	if bar.FocusedButton() != ButtonNext {
		t.Errorf("expected Next focused, got %v", bar.FocusedButton())
	}
	if bar.FocusPrev() {
		t.Error("expected no focusable button before Next")
	}
}

func TestButtonBarBlur(t *testing.T) {
	bar := NewButtonBar(CreateBackNextButtons(true, "Checkout"))

	bar.FocusFirst()
	bar.Blur()
	if bar.FocusedButton() != ButtonNone {
		t.Errorf("expected no focus after Blur, got %v", bar.FocusedButton())
	}
}
