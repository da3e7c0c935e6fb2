package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mosallam/sam-finder/internal/models"
)

func TestRenderPreviewOmitsEmptyColumns(t *testing.T) {
	records := []models.Record{
		{Title: "Alpha", Department: "DOD", PostedDate: "2026-08-20"},
		{Title: "Beta", Department: "NASA", PostedDate: "2026-08-21"},
	}

	var buf bytes.Buffer
	RenderPreview(&buf, records, 20)

	out := buf.String()
	for _, want := range []string{"TITLE", "DEPARTMENT", "POSTED_DATE", "Alpha", "NASA"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
	for _, absent := range []string{"NAICS_CODE", "NOTICE_TYPE", "RESPONSE_DEADLINE"} {
		if strings.Contains(out, absent) {
			t.Errorf("preview should omit empty column %q:\n%s", absent, out)
		}
	}
}

func TestRenderPreviewLimitsRows(t *testing.T) {
	var records []models.Record
	for i := 0; i < 30; i++ {
		records = append(records, models.Record{Title: "row", NoticeID: "N"})
	}

	var buf bytes.Buffer
	RenderPreview(&buf, records, 5)

	if got := strings.Count(buf.String(), "row"); got != 5 {
		t.Errorf("expected 5 previewed rows, got %d", got)
	}
}

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Engineering  Services", "Engineering Services"},
		{"tags stripped", "<p>Engine <b>overhaul</b></p>", "Engine overhaul"},
		{"entities decoded", "R&amp;D support", "R&D support"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := htmlToText(tt.in); got != tt.want {
				t.Errorf("htmlToText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
