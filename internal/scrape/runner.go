package scrape

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/mosallam/sam-finder/internal/config"
	"github.com/mosallam/sam-finder/internal/models"
	"github.com/mosallam/sam-finder/internal/output"
	"github.com/mosallam/sam-finder/internal/ui"
)

// ProfileResult captures one profile's outcome. A failed profile keeps
// its error here instead of aborting the run.
type ProfileResult struct {
	Profile config.Profile
	Records []models.Record
	Err     error
}

// Runner drives the pagination driver once per profile, then combines,
// deduplicates, and writes the results.
type Runner struct {
	Driver      *Driver
	Writer      *output.Writer
	PreviewRows int
	Console     io.Writer

	// Now stamps output filenames. Tests override it.
	Now func() time.Time
}

func NewRunner(driver *Driver, writer *output.Writer) *Runner {
	return &Runner{
		Driver:      driver,
		Writer:      writer,
		PreviewRows: 20,
		Console:     os.Stdout,
		Now:         time.Now,
	}
}

// RunAll executes every profile in declared order and returns the
// per-profile results plus the deduplicated combined table. It errors
// only when no profile succeeded.
func (r *Runner) RunAll(ctx context.Context, profiles []config.Profile) ([]ProfileResult, []models.Record, error) {
	runID := uuid.NewString()
	log.WithFields(log.Fields{"run_id": runID, "profiles": len(profiles)}).Info("starting run")

	results := make([]ProfileResult, 0, len(profiles))
	failed := 0

	for _, profile := range profiles {
		fmt.Fprintln(r.Console, ui.Banner(profile.Label))

		records, err := r.Driver.Run(ctx, profile)
		results = append(results, ProfileResult{Profile: profile, Records: records, Err: err})

		if err != nil {
			failed++
			log.WithFields(log.Fields{"run_id": runID, "profile": profile.ID}).
				Errorf("profile failed: %v", err)
			fmt.Fprintln(r.Console, ui.ErrorLine(fmt.Sprintf("%s failed: %v", profile.ID, err)))
			continue
		}
		if len(records) == 0 {
			fmt.Fprintln(r.Console, ui.Dim("No opportunities found."))
			continue
		}

		path, err := r.Writer.WriteProfile(profile.Tag(), records, r.Now())
		if err != nil {
			failed++
			results[len(results)-1].Err = err
			log.WithFields(log.Fields{"run_id": runID, "profile": profile.ID}).
				Errorf("write failed: %v", err)
			continue
		}
		fmt.Fprintln(r.Console, ui.Success(fmt.Sprintf("Saved %d opportunities to %s", len(records), path)))
	}

	if failed == len(profiles) && len(profiles) > 0 {
		return results, nil, fmt.Errorf("all %d profiles failed", failed)
	}

	combined := Combine(results)
	if len(combined) == 0 {
		fmt.Fprintln(r.Console, ui.Dim("No opportunities found across any profile."))
		return results, combined, nil
	}

	path, err := r.Writer.WriteCombined(combined, r.Now())
	if err != nil {
		return results, combined, fmt.Errorf("writing combined table: %w", err)
	}

	fmt.Fprintln(r.Console, ui.Banner(fmt.Sprintf("TOTAL: %d unique opportunities saved to %s", len(combined), path)))
	if failed > 0 {
		fmt.Fprintln(r.Console, ui.ErrorLine(fmt.Sprintf("%d of %d profiles failed; results are partial", failed, len(profiles))))
	}

	fmt.Fprintf(r.Console, "\nTop %d results:\n", r.PreviewRows)
	output.RenderPreview(r.Console, combined, r.PreviewRows)

	log.WithFields(log.Fields{"run_id": runID, "unique": len(combined), "failed": failed}).
		Info("run complete")
	return results, combined, nil
}

// Combine concatenates the non-empty result tables in profile order and
// deduplicates them.
func Combine(results []ProfileResult) []models.Record {
	var all []models.Record
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		all = append(all, res.Records...)
	}
	return Dedupe(all)
}

// Dedupe drops records whose non-empty notice ID was already seen,
// keeping the first occurrence. Records without an ID are all kept: an
// empty ID is not a natural key.
func Dedupe(records []models.Record) []models.Record {
	seen := make(map[string]bool, len(records))
	out := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if rec.NoticeID != "" {
			if seen[rec.NoticeID] {
				continue
			}
			seen[rec.NoticeID] = true
		}
		out = append(out, rec)
	}
	return out
}
