package messages

import (
	"picren/internal/watch"
)

type ErrorMsg struct {
	Err error
}

// StatusMsg replaces the status bar text.
type StatusMsg struct {
	Text string
}

// ChangeMsg carries a burst of changes in the watched directory.
type ChangeMsg struct {
	Changes []watch.Change
}

// IdleMsg runs the callbacks queued with IdleAdd.
type IdleMsg struct{}
