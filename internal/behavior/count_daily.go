package behavior

import (
	"encoding/json"
	"fmt"

	"github.com/harrison/telegram-analyzer/internal/display"
	"github.com/harrison/telegram-analyzer/internal/models"
)

// CountDaily tallies timestamped records per UTC calendar day.
type CountDaily struct {
	path     string
	env      Env
	renderer *display.Renderer
}

// NewCountDaily returns the behavior reading the JSON array at path. Results
// always go to the console.
func NewCountDaily(path string, env Env) *CountDaily {
	env = env.withDefaults()
	return &CountDaily{path: path, env: env, renderer: display.NewConsoleRenderer(env.Out)}
}

func (c *CountDaily) Type() models.BehaviorType { return models.TypeDaily }
func (c *CountDaily) Name() string { return "count-daily" }
func (c *CountDaily) Input() string { return c.path }

// Run prints one "YYYY-MM-DD<TAB>count" line per day seen, oldest first.
func (c *CountDaily) Run() error {
	tally := models.NewTally()
	processed := 0

	err := forEachRecord(c.env.Fs, c.path, func(raw json.RawMessage) {
		t, ok := recordDate(raw)
		if !ok {
			return
		}
		tally.Add(t.Format("2006-01-02"))
		processed++
	})
	if err != nil {
		return err
	}

	_, err = c.renderer.Render(display.Report{
		BaseName:    "messages_per_day",
		LabelHeader: "Day",
		Layout:      display.LabelFirst,
		Rows:        tally.Sorted(),
		Summary:     fmt.Sprintf("Analyzed %d messages", processed),
	})
	return err
}
