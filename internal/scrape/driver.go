package scrape

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mosallam/sam-finder/internal/config"
	"github.com/mosallam/sam-finder/internal/models"
	"github.com/mosallam/sam-finder/internal/samgov"
)

const (
	defaultPageSize   = 100
	defaultMaxResults = 500

	// courtesyDelay is a self-imposed pause between page requests; the
	// API does not mandate it.
	courtesyDelay = time.Second
)

// PageFetcher is the one-call-per-page contract the driver paginates over.
type PageFetcher interface {
	FetchPage(ctx context.Context, p samgov.SearchParams) (*samgov.SearchResponse, error)
}

// Driver walks a profile's result set page by page: sequential requests
// against an advancing offset until the cap, an empty page, or the
// service-reported total is reached.
type Driver struct {
	Fetcher PageFetcher
	Delay   time.Duration

	// Sleep is called between pages. Tests replace it.
	Sleep func(time.Duration)
}

func NewDriver(fetcher PageFetcher) *Driver {
	return &Driver{
		Fetcher: fetcher,
		Delay:   courtesyDelay,
		Sleep:   time.Sleep,
	}
}

// Run accumulates all records for one profile. A fetch failure aborts
// the profile run; partial pages are not salvaged.
func (d *Driver) Run(ctx context.Context, profile config.Profile) ([]models.Record, error) {
	pageSize := profile.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > samgov.MaxPageSize {
		pageSize = samgov.MaxPageSize
	}
	maxResults := profile.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	log.WithFields(log.Fields{
		"profile":   profile.ID,
		"keyword":   profile.Keyword,
		"naics":     profile.NAICSCode,
		"type":      profile.NoticeType,
		"set_aside": profile.SetAside,
		"days_back": profile.DaysBack,
	}).Info("searching sam.gov")

	var all []models.Record
	offset := 0

	for offset < maxResults {
		page, err := d.Fetcher.FetchPage(ctx, samgov.SearchParams{
			Keyword:      profile.Keyword,
			NAICSCode:    profile.NAICSCode,
			PostedFrom:   profile.PostedFrom,
			PostedTo:     profile.PostedTo,
			SetAside:     profile.SetAside,
			NoticeType:   profile.NoticeType,
			LookbackDays: profile.DaysBack,
			Limit:        pageSize,
			Offset:       offset,
		})
		if err != nil {
			return nil, fmt.Errorf("fetch at offset %d: %w", offset, err)
		}

		records := ExtractRecords(page)
		if len(records) == 0 {
			break
		}

		all = append(all, records...)
		offset += pageSize

		total := page.TotalRecords
		log.WithFields(log.Fields{"profile": profile.ID, "offset": offset}).
			Infof("fetched %d/%d opportunities", len(all), min(total, maxResults))

		if offset >= total {
			break
		}

		d.Sleep(d.Delay)
	}

	return all, nil
}
