package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/importer"
)

// WriteJSON writes an indented JSON backup containing the wage
// configuration and every entry, in the shape the importer accepts.
func WriteJSON(w io.Writer, entries []*domain.ShiftEntry, cfg *domain.WageConfig) error {
	backup := importer.Backup{
		Settings: cfg,
		Entries:  make([]importer.EntryRecord, 0, len(entries)),
	}
	for _, e := range entries {
		backup.Entries = append(backup.Entries, importer.NewEntryRecord(e))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup); err != nil {
		return fmt.Errorf("writing JSON backup: %w", err)
	}
	return nil
}
