package behavior

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/harrison/telegram-analyzer/internal/models"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// testEnv returns an in-memory environment and the buffer receiving console output.
func testEnv(t *testing.T) (Env, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	out := &bytes.Buffer{}
	return Env{Fs: afero.NewMemMapFs(), Out: out}, out
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}

// recordingLogger captures batch events for assertions.
type recordingLogger struct {
	started  []string
	results  []models.BehaviorResult
	summary  *models.BatchResult
	warnings []string
	traces   []string
}

func (l *recordingLogger) LogTrace(message string) {
	l.traces = append(l.traces, message)
}
func (l *recordingLogger) LogDebug(string) {}
func (l *recordingLogger) LogInfo(string) {}
func (l *recordingLogger) LogWarn(message string) {
	l.warnings = append(l.warnings, message)
}
func (l *recordingLogger) LogBatchStart(string, string, int) {}
func (l *recordingLogger) LogBehaviorStart(_, _ int, name, _ string) {
	l.started = append(l.started, name)
}
func (l *recordingLogger) LogBehaviorResult(result models.BehaviorResult) error {
	l.results = append(l.results, result)
	return nil
}
func (l *recordingLogger) LogBatchSummary(result models.BatchResult) {
	l.summary = &result
}
