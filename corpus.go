package tempeval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Record pairs one ground-truth annotation with one model prediction.
type Record struct {
	GroundTruth string
	Prediction  string
}

type rawRecord struct {
	GroundTruth *string         `json:"ground_truth"`
	Prediction  json.RawMessage `json:"prediction"`
	Result      json.RawMessage `json:"result"`
}

// UnmarshalJSON decodes a record. The prediction is read from "prediction",
// falling back to "result"; either may be a string or a non-empty array of
// strings, in which case only the first element is used.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.GroundTruth == nil {
		return errors.New("missing ground_truth")
	}

	field, value := "prediction", raw.Prediction
	if isAbsent(value) {
		field, value = "result", raw.Result
	}
	if isAbsent(value) {
		return errors.New("missing prediction or result")
	}

	text, err := decodeText(value)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}

	r.GroundTruth = *raw.GroundTruth
	r.Prediction = text
	return nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeText(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if trimmed[0] != '[' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var list []string
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return "", err
	}
	if len(list) == 0 {
		return "", errors.New("empty array")
	}
	return list[0], nil
}

// File is a loaded input file.
type File struct {
	Name    string // base filename without extension
	Path    string
	Records []Record
}

// FileName returns the report key for path: its base name without extension.
func FileName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseRecords decodes a JSON array of records.
func ParseRecords(data []byte) ([]Record, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrLoadFile, err)
	}

	records := make([]Record, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &records[i]); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrInvalidRecord, i, err)
		}
	}
	return records, nil
}

// LoadFile reads and decodes an input file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFile, err)
	}

	records, err := ParseRecords(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return &File{
		Name:    FileName(path),
		Path:    path,
		Records: records,
	}, nil
}

// LoadDir loads every .json file in dir, in directory order.
func LoadDir(dir string) ([]*File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read dir: %w", ErrLoadFile, err)
	}

	var files []*File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".json" {
			continue
		}

		f, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, nil
}

// LoadPaths loads each path, expanding directories with LoadDir.
func LoadPaths(paths []string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	var files []*File
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadFile, err)
		}
		if info.IsDir() {
			dirFiles, err := LoadDir(p)
			if err != nil {
				return nil, err
			}
			files = append(files, dirFiles...)
			continue
		}

		f, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
