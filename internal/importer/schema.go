// Package importer parses, validates, and converts JSON backup files into
// domain state. Two on-disk shapes are accepted: the full {settings,
// entries} backup and the bare entry array written by older exports.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/tempus/internal/domain"
)

// ErrUnrecognizedShape is returned for well-formed JSON that is neither a
// full backup object nor a bare entry array.
var ErrUnrecognizedShape = errors.New("unrecognized backup shape")

// Backup is the parsed content of a backup file. Settings is nil when the
// file was a bare entry array; import then keeps the current wage
// configuration.
type Backup struct {
	Settings *domain.WageConfig `json:"settings,omitempty"`
	Entries  []EntryRecord      `json:"entries"`
}

// EntryRecord is one entry in the backup file. Field names match the JSON
// written by every version of the export, including the original browser
// one.
type EntryRecord struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	ClockIn      string  `json:"clockIn"`
	ClockOut     string  `json:"clockOut,omitempty"`
	BreakMinutes int     `json:"breakTime"`
	TotalHours   float64 `json:"totalHours"`
	Overtime     bool    `json:"isOvertime"`
}

// NewEntryRecord converts a domain entry to its backup representation.
func NewEntryRecord(e *domain.ShiftEntry) EntryRecord {
	rec := EntryRecord{
		ID:           e.ID,
		Name:         e.Name,
		Category:     e.Category,
		ClockIn:      e.ClockIn.String(),
		BreakMinutes: e.BreakMinutes,
		TotalHours:   e.TotalHours,
		Overtime:     e.Overtime,
	}
	if e.ClockOut != nil {
		rec.ClockOut = e.ClockOut.String()
	}
	return rec
}

// LoadBackup reads and parses a backup file.
func LoadBackup(path string) (*Backup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBackup(data)
}

// ParseBackup parses backup bytes, distinguishing malformed JSON from a
// well-formed document of the wrong shape.
func ParseBackup(data []byte) (*Backup, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing backup file: %w", err)
	}

	switch probe.(type) {
	case map[string]any:
		var full struct {
			Settings *domain.WageConfig `json:"settings"`
			Entries  *[]EntryRecord     `json:"entries"`
		}
		if err := json.Unmarshal(data, &full); err != nil {
			return nil, fmt.Errorf("parsing backup file: %w", err)
		}
		// The full shape requires both keys, as every full export
		// writes both.
		if full.Entries == nil || full.Settings == nil {
			return nil, ErrUnrecognizedShape
		}
		return &Backup{Settings: full.Settings, Entries: *full.Entries}, nil
	case []any:
		var bare []EntryRecord
		if err := json.Unmarshal(data, &bare); err != nil {
			return nil, fmt.Errorf("parsing backup file: %w", err)
		}
		return &Backup{Entries: bare}, nil
	default:
		return nil, ErrUnrecognizedShape
	}
}
