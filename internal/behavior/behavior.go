// Package behavior implements the analyses that telegram-analyzer runs over
// exported chat logs and the dispatcher that selects and runs them.
//
// Every analysis satisfies Behavior. The set of variants is closed: each
// models.BehaviorType has exactly one constructor in the dispatch table, and
// batches are plain ordered slices run with a fail-fast fold.
package behavior

import (
	"io"
	"os"

	"github.com/harrison/telegram-analyzer/internal/models"
	"github.com/spf13/afero"
)

// Behavior is one independently invokable analysis.
type Behavior interface {
	// Type returns the tag used to filter group runs.
	Type() models.BehaviorType
	// Name returns the command name, e.g. "count-urls".
	Name() string
	// Input returns the path the behavior reads.
	Input() string
	// Run performs the analysis, writing to the environment's output and
	// filesystem only.
	Run() error
}

// Logger receives progress messages from behaviors and batches.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogBatchStart(runID, mode string, total int)
	LogBehaviorStart(index, total int, name, input string)
	LogBehaviorResult(result models.BehaviorResult) error
	LogBatchSummary(result models.BatchResult)
}

// Env carries the side-effect sinks shared by all behaviors.
type Env struct {
	Fs  afero.Fs  // Filesystem for inputs and report files
	Out io.Writer // Destination of console output
	Log Logger    // Progress logging; nil discards
}

// withDefaults fills unset fields: the OS filesystem, stdout, and a logger
// that drops everything.
func (e Env) withDefaults() Env {
	if e.Fs == nil {
		e.Fs = afero.NewOsFs()
	}
	if e.Out == nil {
		e.Out = os.Stdout
	}
	if e.Log == nil {
		e.Log = nopLogger{}
	}
	return e
}

type nopLogger struct{}

func (nopLogger) LogTrace(string) {}
func (nopLogger) LogDebug(string) {}
func (nopLogger) LogInfo(string) {}
func (nopLogger) LogWarn(string) {}
func (nopLogger) LogBatchStart(string, string, int) {}
func (nopLogger) LogBehaviorStart(int, int, string, string) {}
func (nopLogger) LogBehaviorResult(models.BehaviorResult) error { return nil }
func (nopLogger) LogBatchSummary(models.BatchResult) {}
