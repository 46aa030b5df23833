package behavior

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/harrison/telegram-analyzer/internal/display"
	"github.com/harrison/telegram-analyzer/internal/models"
)

// CountURLs tallies every URL found in a line-oriented text file and renders
// them most frequent first.
type CountURLs struct {
	path     string
	env      Env
	renderer *display.Renderer
}

// NewCountURLs validates opts and returns the behavior. Invalid options fail
// here, before the input or output directory is touched.
func NewCountURLs(path string, opts display.RenderOptions, env Env) (*CountURLs, error) {
	env = env.withDefaults()
	renderer, err := display.NewRenderer(opts, env.Fs, env.Out)
	if err != nil {
		return nil, err
	}
	return &CountURLs{path: path, env: env, renderer: renderer}, nil
}

func (c *CountURLs) Type() models.BehaviorType { return models.TypeURLCount }
func (c *CountURLs) Name() string { return "count-urls" }
func (c *CountURLs) Input() string { return c.path }

// Run counts the URLs and renders the report.
func (c *CountURLs) Run() error {
	tally, err := c.count()
	if err != nil {
		return err
	}

	report := display.Report{
		BaseName:    "urls_count",
		LabelHeader: "URL",
		Layout:      display.CountFirst,
		Rows:        tally.Ranked(),
		Summary:     fmt.Sprintf("Found %d unique URLs", len(tally)),
	}

	written, err := c.renderer.Render(report)
	if err != nil {
		return err
	}
	if written != "" {
		fmt.Fprintf(c.env.Out, "%s: found %d unique URLs, results saved to %s\n", c.Name(), len(tally), written)
	}
	return nil
}

func (c *CountURLs) count() (models.Tally, error) {
	f, err := openRegularFile(c.env.Fs, c.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tally := models.NewTally()
	reader := bufio.NewReader(f)
	for {
		line, readErr := reader.ReadString('\n')
		for _, url := range urlPattern.FindAllString(line, -1) {
			tally.Add(url)
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("read %s: %w", c.path, readErr)
		}
	}

	c.env.Log.LogDebug(fmt.Sprintf("count-urls: %d matches, %d unique in %s", tally.Total(), len(tally), c.path))
	return tally, nil
}
