// Package journal implements the append-only JSON Lines transaction log.
// Every processed record is appended as one JSON object per line, tagged
// with a record-type discriminator. The application never reads the file
// back; the export command does.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"finecto/internal/apperr"
	"finecto/internal/logger"
)

const missingTypeMessage = `The object must include a "type" field (e.g., "vendor", "invoice").`

// Writer appends records to a flat journal file. The directory and file are
// created on first append. Appends are serialised in-process; across
// processes only O_APPEND semantics apply, so deployments must run a single
// writer per file.
type Writer struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

// NewWriter creates a writer for the given journal path.
func NewWriter(path string) *Writer {
	return &Writer{
		path: path,
		log:  logger.WithComponent("journal"),
	}
}

// Append writes the record as a single JSON line followed by a newline. The
// record must carry a non-empty "type" discriminator; a record without one
// is a caller programming error and is rejected before anything is written.
func (w *Writer) Append(record map[string]any) error {
	const op = "Append"

	recordType, _ := record["type"].(string)
	if recordType == "" {
		return apperr.Conflict(missingTypeMessage)
	}

	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%s: failed to encode record: %w", op, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%s: failed to create journal directory: %w", op, err)
		}
	}

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("%s: failed to open journal: %w", op, err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("%s: failed to append record: %w", op, err)
	}

	w.log.Debug().
		Str("type", recordType).
		Str("path", w.path).
		Msg("Record appended to journal")

	return nil
}

// Record tags a value with its record type, flattening the value's fields
// through their JSON tags into a single map.
func Record(recordType string, v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s record: %w", recordType, err)
	}
	var rec map[string]any
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to flatten %s record: %w", recordType, err)
	}
	rec["type"] = recordType
	return rec, nil
}

// Reader reads a journal file back, one decoded record per line.
type Reader struct {
	path string
}

// NewReader creates a reader for the given journal path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// ReadAll decodes every record in the journal in append order.
func (r *Reader) ReadAll() ([]map[string]any, error) {
	const op = "ReadAll"

	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to open journal: %w", op, err)
	}
	defer f.Close()

	var records []map[string]any
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("%s: malformed record at line %d: %w", op, lineNo, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: failed to read journal: %w", op, err)
	}

	return records, nil
}
