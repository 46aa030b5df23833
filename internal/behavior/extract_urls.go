package behavior

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/harrison/telegram-analyzer/internal/models"
)

// ExtractURLs prints every URL found in the string values of a JSON
// document, in document order.
type ExtractURLs struct {
	path string
	env  Env
}

// NewExtractURLs returns the behavior reading the JSON document at path.
func NewExtractURLs(path string, env Env) *ExtractURLs {
	return &ExtractURLs{path: path, env: env.withDefaults()}
}

func (e *ExtractURLs) Type() models.BehaviorType { return models.TypeURL }
func (e *ExtractURLs) Name() string { return "extract-urls" }
func (e *ExtractURLs) Input() string { return e.path }

// Run decodes the document and prints one URL per line followed by the total.
func (e *ExtractURLs) Run() error {
	f, err := openRegularFile(e.env.Fs, e.path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, e.path, err)
	}

	var sb strings.Builder
	found := 0
	walkStrings(doc, func(s string) {
		for _, url := range urlPattern.FindAllString(s, -1) {
			sb.WriteString(url)
			sb.WriteString("\n")
			found++
		}
	})
	fmt.Fprintf(&sb, "Extracted %d URLs\n", found)

	if _, err := io.WriteString(e.env.Out, sb.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}

// walkStrings calls fn for every string value under v. Object members are
// visited in key order so output does not depend on map iteration.
func walkStrings(v interface{}, fn func(string)) {
	switch val := v.(type) {
	case string:
		fn(val)
	case []interface{}:
		for _, item := range val {
			walkStrings(item, fn)
		}
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walkStrings(val[k], fn)
		}
	}
}
