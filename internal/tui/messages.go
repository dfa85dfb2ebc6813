package tui

import (
	"github.com/qlmock/qlmock/pkg/executor"
	"github.com/qlmock/qlmock/pkg/playground"
)

// execDoneMsg is sent when a mocked execution finishes. It carries the
// execution it belongs to so a stale result, from an execute started
// before the most recent one, can be recognized and dropped.
type execDoneMsg struct {
	execution *playground.Execution
	result    *executor.Result
}
