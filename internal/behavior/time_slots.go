package behavior

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harrison/telegram-analyzer/internal/display"
	"github.com/harrison/telegram-analyzer/internal/models"
)

// CountTimeSlots buckets the timestamped records of a JSON array into the 48
// half-hour slots of a UTC day.
type CountTimeSlots struct {
	path     string
	env      Env
	renderer *display.Renderer
}

// NewCountTimeSlots validates opts and returns the behavior.
func NewCountTimeSlots(path string, opts display.RenderOptions, env Env) (*CountTimeSlots, error) {
	env = env.withDefaults()
	renderer, err := display.NewRenderer(opts, env.Fs, env.Out)
	if err != nil {
		return nil, err
	}
	return &CountTimeSlots{path: path, env: env, renderer: renderer}, nil
}

func (c *CountTimeSlots) Type() models.BehaviorType { return models.TypeTimeSlot }
func (c *CountTimeSlots) Name() string { return "count-time-slots" }
func (c *CountTimeSlots) Input() string { return c.path }

// Run tallies the records and renders every slot, including empty ones, in
// chronological order.
func (c *CountTimeSlots) Run() error {
	tally := models.NewTally()
	processed := 0
	skipped := 0

	err := forEachRecord(c.env.Fs, c.path, func(raw json.RawMessage) {
		t, ok := recordDate(raw)
		if !ok {
			skipped++
			return
		}
		slot := models.SlotLabel(t.Hour(), t.Minute())
		c.env.Log.LogTrace(fmt.Sprintf("count-time-slots: %s -> %s", t.Format(time.RFC3339), slot))
		tally.Add(slot)
		processed++
	})
	if err != nil {
		return err
	}
	if skipped > 0 {
		c.env.Log.LogDebug(fmt.Sprintf("count-time-slots: skipped %d records without a valid date", skipped))
	}

	report := display.Report{
		BaseName:    "messages_per_slot",
		LabelHeader: "Slot",
		Layout:      display.LabelFirst,
		Rows:        tally.Over(models.SlotUniverse()),
		Summary:     fmt.Sprintf("Analyzed %d messages", processed),
	}

	written, err := c.renderer.Render(report)
	if err != nil {
		return err
	}
	if written != "" {
		fmt.Fprintf(c.env.Out, "%s: analyzed %d messages, results saved to %s\n", c.Name(), processed, written)
	}
	return nil
}
