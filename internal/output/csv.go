package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mosallam/sam-finder/internal/models"
)

const timestampFormat = "20060102_150405"

// Writer writes result tables as CSV files under a single directory.
// Files are write-once; nothing here reads them back.
type Writer struct {
	Dir string
}

// NewWriter creates the output directory if needed. Creating an
// existing directory is not an error.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}
	return &Writer{Dir: dir}, nil
}

// WriteProfile writes one profile's table as
// sam_opportunities_<tag>_<timestamp>.csv and returns the path.
func (w *Writer) WriteProfile(tag string, records []models.Record, now time.Time) (string, error) {
	name := fmt.Sprintf("sam_opportunities_%s_%s.csv", tag, now.Format(timestampFormat))
	return w.write(name, records)
}

// WriteCombined writes the deduplicated combined table as
// sam_combined_<timestamp>.csv and returns the path.
func (w *Writer) WriteCombined(records []models.Record, now time.Time) (string, error) {
	name := fmt.Sprintf("sam_combined_%s.csv", now.Format(timestampFormat))
	return w.write(name, records)
}

func (w *Writer) write(name string, records []models.Record) (string, error) {
	path := filepath.Join(w.Dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(models.Columns); err != nil {
		return "", fmt.Errorf("writing header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			return "", fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flushing %s: %w", path, err)
	}
	return path, nil
}
