package scrape

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mosallam/sam-finder/internal/samgov"
)

func TestExtractRecordsLink(t *testing.T) {
	tests := []struct {
		name     string
		noticeID string
		wantLink string
	}{
		{"with notice id", "ABC123", "https://sam.gov/opp/ABC123/view"},
		{"without notice id", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := &samgov.SearchResponse{
				OpportunitiesData: []samgov.RawOpportunity{{NoticeID: tt.noticeID}},
			}
			records := ExtractRecords(page)
			if len(records) != 1 {
				t.Fatalf("expected 1 record, got %d", len(records))
			}
			if records[0].Link != tt.wantLink {
				t.Errorf("Link = %q, want %q", records[0].Link, tt.wantLink)
			}
		})
	}
}

func TestExtractRecordsTruncatesDescription(t *testing.T) {
	long := strings.Repeat("x", 1200)
	page := &samgov.SearchResponse{
		OpportunitiesData: []samgov.RawOpportunity{
			{NoticeID: "A", Description: long},
			{NoticeID: "B", Description: "short"},
			{NoticeID: "C"},
		},
	}

	records := ExtractRecords(page)

	if got := records[0].Description; got != long[:500] {
		t.Errorf("long description not cut to first 500 chars (len %d)", len(got))
	}
	if got := records[1].Description; got != "short" {
		t.Errorf("short description changed: %q", got)
	}
	if got := records[2].Description; got != "" {
		t.Errorf("absent description should stay empty, got %q", got)
	}
}

func TestExtractRecordsTruncatesMultibyteDescription(t *testing.T) {
	long := strings.Repeat("é", 751)
	page := &samgov.SearchResponse{
		OpportunitiesData: []samgov.RawOpportunity{{NoticeID: "A", Description: long}},
	}

	got := ExtractRecords(page)[0].Description
	if !utf8.ValidString(got) {
		t.Fatal("truncation produced invalid UTF-8")
	}
	if n := utf8.RuneCountInString(got); n != 500 {
		t.Errorf("expected first 500 characters, got %d runes", n)
	}
	if got != strings.Repeat("é", 500) {
		t.Error("output is not the input's first 500 characters")
	}
}

func TestTruncateProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("long input yields exactly its first 500 characters", prop.ForAll(
		func(s string) bool {
			long := s + strings.Repeat("é", descriptionLimit)
			out := truncate(long, descriptionLimit)
			return utf8.RuneCountInString(out) == descriptionLimit &&
				out == string([]rune(long)[:descriptionLimit]) &&
				utf8.ValidString(out)
		},
		gen.AnyString(),
	))

	properties.Property("input at or under the limit is unchanged", prop.ForAll(
		func(s string) bool {
			if runes := []rune(s); len(runes) > descriptionLimit {
				s = string(runes[:descriptionLimit])
			}
			return truncate(s, descriptionLimit) == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestExtractRecordsPreservesOrder(t *testing.T) {
	page := &samgov.SearchResponse{
		OpportunitiesData: []samgov.RawOpportunity{
			{NoticeID: "first", Title: "t1"},
			{NoticeID: "second", Title: "t2"},
			{NoticeID: "third", Title: "t3"},
		},
	}

	records := ExtractRecords(page)
	want := []string{"first", "second", "third"}
	for i, id := range want {
		if records[i].NoticeID != id {
			t.Errorf("records[%d].NoticeID = %q, want %q", i, records[i].NoticeID, id)
		}
	}
}

func TestExtractRecordsFieldMapping(t *testing.T) {
	page := &samgov.SearchResponse{
		OpportunitiesData: []samgov.RawOpportunity{{
			NoticeID:           "N1",
			Title:              "Engine overhaul",
			Department:         "DEPT OF DEFENSE",
			SubTier:            "DEPT OF THE AIR FORCE",
			Office:             "FA8117",
			PostedDate:         "2026-08-20",
			ResponseDeadLine:   "2026-09-20T17:00:00-05:00",
			Type:               "Solicitation",
			TypeOfSetAside:     "SBA",
			NAICSCode:          "541330",
			ClassificationCode: "J",
			Active:             "Yes",
		}},
	}

	rec := ExtractRecords(page)[0]
	if rec.Department != "DEPT OF DEFENSE" || rec.SubTier != "DEPT OF THE AIR FORCE" || rec.Office != "FA8117" {
		t.Errorf("hierarchy fields mismapped: %+v", rec)
	}
	if rec.NoticeType != "Solicitation" || rec.SetAside != "SBA" {
		t.Errorf("type fields mismapped: %+v", rec)
	}
	if rec.ResponseDeadline != "2026-09-20T17:00:00-05:00" {
		t.Errorf("ResponseDeadline = %q", rec.ResponseDeadline)
	}
}
