// Package input reads identifiers to beautify from files and stdin.
package input

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ArmisSecurity/beautify-cli/internal/progress"
)

// MaxFileSize caps the size of an input file.
const MaxFileSize = 50 * 1024 * 1024

// Stdin is the path that selects standard input.
const Stdin = "-"

// Entry is one identifier read from an input. Value holds the raw decoded
// value for JSON inputs, which may be something other than a string.
type Entry struct {
	Value any
	Line  int
}

// StringEntries wraps plain identifiers, numbering them from 1.
func StringEntries(names []string) []Entry {
	entries := make([]Entry, 0, len(names))
	for i, name := range names {
		entries = append(entries, Entry{Value: name, Line: i + 1})
	}
	return entries
}

// SanitizePath cleans a relative or absolute file path and rejects parent
// directory traversal.
func SanitizePath(p string) (string, error) {
	if p == "" {
		return "", errors.New("empty path")
	}

	cleaned := filepath.Clean(p)
	if cleaned == "." {
		return "", errors.New("invalid path")
	}

	for _, part := range strings.Split(filepath.ToSlash(cleaned), "/") {
		if part == ".." {
			return "", errors.New("path traversal detected")
		}
	}

	return cleaned, nil
}

// Open opens path for reading, or stdin when path is "-". Regular files larger
// than progress.MinSize are wrapped with a progress bar unless noProgress is set.
func Open(path string, noProgress bool) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}

	cleaned, err := SanitizePath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid input path %q: %w", path, err)
	}

	info, err := os.Stat(cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", cleaned)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("file size (%d bytes) exceeds maximum allowed size (%d bytes)", info.Size(), MaxFileSize)
	}

	f, err := os.Open(cleaned) // #nosec G304 -- path sanitized above
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r := progress.NewReader(f, info.Size(), "Reading "+filepath.Base(cleaned), noProgress)
	return readCloser{Reader: r, Closer: f}, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

// ReadLines reads one identifier per line. Surrounding whitespace is trimmed;
// blank lines and lines starting with '#' are skipped.
func ReadLines(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, Entry{Value: line, Line: lineNum})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read identifiers: %w", err)
	}
	return entries, nil
}

// ReadJSON reads a JSON array of identifiers. Elements are kept as decoded so
// that non-string elements can be reported individually.
func ReadJSON(r io.Reader) ([]Entry, error) {
	var values []any
	if err := json.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("failed to decode JSON array: %w", err)
	}
	entries := make([]Entry, 0, len(values))
	for i, v := range values {
		entries = append(entries, Entry{Value: v, Line: i + 1})
	}
	return entries, nil
}

// ReadCSVHeader returns the column names from the first row of a CSV input.
func ReadCSVHeader(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("CSV input has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	entries := make([]Entry, 0, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		entries = append(entries, Entry{Value: strings.TrimSpace(name), Line: i + 1})
	}
	return entries, nil
}

// ReadJSONKeys returns the keys of a JSON object, or the union of keys of an
// array of objects, in first-seen order.
func ReadJSONKeys(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("JSON input is empty")
	}

	var objects []json.RawMessage
	switch trimmed[0] {
	case '{':
		objects = []json.RawMessage{trimmed}
	case '[':
		if err := json.Unmarshal(trimmed, &objects); err != nil {
			return nil, fmt.Errorf("failed to decode JSON array: %w", err)
		}
	default:
		return nil, errors.New("JSON input must be an object or an array of objects")
	}

	seen := make(map[string]bool)
	var entries []Entry
	for i, raw := range objects {
		keys, err := objectKeys(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		for _, key := range keys {
			if seen[key] {
				continue
			}
			seen[key] = true
			entries = append(entries, Entry{Value: key, Line: len(entries) + 1})
		}
	}
	return entries, nil
}

// objectKeys returns the top-level keys of a JSON object in document order.
// encoding/json maps do not preserve order, so the object is walked by token.
func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON object: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a JSON object")
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode JSON object: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New("expected a JSON object key")
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, fmt.Errorf("failed to decode value of %q: %w", key, err)
		}
	}
	return keys, nil
}
