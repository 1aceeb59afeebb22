package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Frame is one CSV file parsed into a header and records, before
// normalization and merging.
type Frame struct {
	Path    string
	Columns []string
	Records [][]string
}

var errNoFiles = errors.New("no CSV files found")

// Load reads every CSV file in dir into a Frame, newest-modified-first.
// Empty files are skipped with a warning and parse failures are skipped with
// an error log; both are non-fatal. It fails only when no file parses at all.
func Load(dir string) ([]Frame, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", errNoFiles, dir)
	}

	// Newest first. Display/debug ordering only; every row is merged anyway.
	sort.Slice(paths, func(i, j int) bool {
		return modTime(paths[i]).After(modTime(paths[j]))
	})
	log.Printf("📊 Loading %d extracted files: %s", len(paths), strings.Join(baseNames(paths), ", "))

	var frames []Frame
	for _, path := range paths {
		frame, err := readCSV(path)
		if err != nil {
			log.Printf("❌ Error loading %s: %v", path, err)
			continue
		}
		if len(frame.Records) == 0 {
			log.Printf("⚠️  Warning: %s is empty and was skipped", path)
			continue
		}
		log.Printf("✅ Loaded %s (%d rows, %d columns)", path, len(frame.Records), len(frame.Columns))
		frames = append(frames, frame)
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("no valid data loaded from %s", dir)
	}
	return frames, nil
}

// readCSV parses one file. A UTF-8 byte order mark on the header is
// tolerated and stripped.
func readCSV(path string) (Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Frame{}, fmt.Errorf("read: %w", err)
	}

	text := strings.TrimPrefix(string(data), "\ufeff")
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1 // ragged rows are padded against the header below

	rows, err := r.ReadAll()
	if err != nil {
		return Frame{}, fmt.Errorf("parse: %w", err)
	}
	if len(rows) == 0 {
		return Frame{}, errors.New("parse: no header row")
	}

	frame := Frame{Path: path, Columns: rows[0]}
	for _, rec := range rows[1:] {
		if len(rec) < len(frame.Columns) {
			padded := make([]string, len(frame.Columns))
			copy(padded, rec)
			rec = padded
		}
		frame.Records = append(frame.Records, rec)
	}
	return frame, nil
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names
}
