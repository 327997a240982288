package wizard

// TabExitForwardMsg is sent by a step when Tab is pressed on its last
// focusable element, asking the parent to move focus to the button bar.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent by a step when Shift+Tab is pressed on its
// first focusable element, asking the parent to move focus to the button
// bar from the end.
type TabExitBackwardMsg struct{}
