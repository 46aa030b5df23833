package behavior

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/harrison/telegram-analyzer/internal/display"
	"github.com/harrison/telegram-analyzer/internal/models"
)

// MessageStats counts the messages of a JSON array and the distinct users
// who sent them.
type MessageStats struct {
	path     string
	env      Env
	renderer *display.Renderer
}

// NewMessageStats returns the behavior reading the JSON array at path.
func NewMessageStats(path string, env Env) *MessageStats {
	env = env.withDefaults()
	return &MessageStats{path: path, env: env, renderer: display.NewConsoleRenderer(env.Out)}
}

func (s *MessageStats) Type() models.BehaviorType { return models.TypeMessageStats }
func (s *MessageStats) Name() string { return "message-stats" }
func (s *MessageStats) Input() string { return s.path }

// Run counts every object element as a message. The sender is identified by
// "from_id", or by "from" when no id is present.
func (s *MessageStats) Run() error {
	messages := 0
	users := make(map[string]struct{})

	err := forEachRecord(s.env.Fs, s.path, func(raw json.RawMessage) {
		fields, ok := recordFields(raw)
		if !ok {
			return
		}
		messages++
		if sender := senderOf(fields); sender != "" {
			users[sender] = struct{}{}
		}
	})
	if err != nil {
		return err
	}

	_, err = s.renderer.Render(display.Report{
		BaseName:    "message_stats",
		LabelHeader: "Metric",
		Layout:      display.LabelFirst,
		Rows: []models.AnalysisRow{
			{Label: "messages", Count: messages},
			{Label: "users", Count: len(users)},
		},
		Summary: fmt.Sprintf("Analyzed %d messages", messages),
	})
	return err
}

// senderOf returns a stable identity for the record's sender, or "".
func senderOf(fields map[string]json.RawMessage) string {
	for _, key := range []string{"from_id", "from"} {
		if id := scalarText(fields[key]); id != "" {
			return id
		}
	}
	return ""
}

// scalarText renders a JSON string or number as text. Other values, null
// and empty strings yield "".
func scalarText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(raw)
	default:
		return ""
	}
}
