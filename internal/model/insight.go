package model

// Insight is a pre-generated recommendation entry shown in the AI panel.
// The Action label names the acknowledgment button; firing it notifies the
// registered action handler and nothing else.
type Insight struct {
	ID     int
	Title  string
	Text   string
	Action string
}
