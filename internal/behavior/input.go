package behavior

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// urlPattern matches an http(s) URL up to the first character outside
// [A-Za-z0-9./?=+_-]. Matches are maximal and never overlap.
var urlPattern = regexp.MustCompile(`https?://[A-Za-z0-9./?=+_\-]+`)

// openRegularFile opens path for reading, failing with ErrInputNotFound when
// it does not name an existing regular file.
func openRegularFile(fs afero.Fs, path string) (afero.File, error) {
	info, err := fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not an existing file", ErrInputNotFound, path)
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// requireDir fails with ErrInputNotFound unless path is an existing directory.
func requireDir(fs afero.Fs, path string) error {
	info, err := fs.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s is not an existing directory", ErrInputNotFound, path)
	}
	return nil
}

// forEachRecord streams the elements of the top-level JSON array in path,
// calling fn with each raw element. A document whose top level is not an
// array fails with ErrMalformedDocument before fn is ever called.
func forEachRecord(fs afero.Fs, path string, fn func(raw json.RawMessage)) error {
	f, err := openRegularFile(fs, path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return fmt.Errorf("%w: %s: expected top-level JSON array", ErrMalformedDocument, path)
	}

	for dec.More() {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, path, err)
		}
		fn(raw)
	}

	tok, err = dec.Token()
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedDocument, path, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != ']' {
		return fmt.Errorf("%w: %s: unterminated array", ErrMalformedDocument, path)
	}

	// Nothing but whitespace may follow the array.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: trailing content after array", ErrMalformedDocument, path)
	}
	return nil
}

// recordFields decodes a record as a JSON object. ok is false for any other
// JSON value.
func recordFields(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// recordDate extracts the record's "date" field as an RFC 3339 instant in
// UTC. ok is false when the record is not an object, the field is missing or
// not a string, or the value does not parse.
func recordDate(raw json.RawMessage) (time.Time, bool) {
	fields, ok := recordFields(raw)
	if !ok {
		return time.Time{}, false
	}

	dateRaw, ok := fields["date"]
	if !ok {
		return time.Time{}, false
	}

	var s string
	if err := json.Unmarshal(dateRaw, &s); err != nil {
		return time.Time{}, false
	}

	t, err := parseRFC3339(s)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

// parseRFC3339 accepts the full RFC 3339 grammar, which time.RFC3339 narrows:
// the "T" and "Z" designators may be lowercase, and a leap second ":60" is
// read as the last second of its minute.
func parseRFC3339(s string) (time.Time, error) {
	s = strings.ToUpper(s)
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}

	// "2006-01-02T15:04:05": the seconds are at [17:19].
	if len(s) >= 19 && s[16] == ':' && s[17:19] == "60" {
		return time.Parse(time.RFC3339, s[:17]+"59"+s[19:])
	}
	return time.Time{}, err
}
