package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mosallam/sam-finder/internal/models"
)

const titleWidth = 60

// previewColumns is the fixed projection shown on the console, in order.
var previewColumns = []string{
	"title", "department", "notice_type", "naics_code", "posted_date", "response_deadline",
}

// RenderPreview prints the top n combined rows as a table, limited to
// the preview columns that actually carry a value in those rows.
func RenderPreview(w io.Writer, records []models.Record, n int) {
	if len(records) == 0 {
		return
	}
	if n > len(records) {
		n = len(records)
	}
	rows := records[:n]

	cols := presentColumns(rows)

	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := make(table.Row, 0, len(cols))
	for _, c := range cols {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for _, rec := range rows {
		row := make(table.Row, 0, len(cols))
		for _, c := range cols {
			row = append(row, cell(rec, c))
		}
		t.AppendRow(row)
	}
	t.Render()
}

// presentColumns keeps the preview columns with at least one non-empty
// value among the previewed rows.
func presentColumns(rows []models.Record) []string {
	var cols []string
	for _, c := range previewColumns {
		for _, rec := range rows {
			if cell(rec, c) != "" {
				cols = append(cols, c)
				break
			}
		}
	}
	return cols
}

func cell(rec models.Record, col string) string {
	switch col {
	case "title":
		return clip(htmlToText(rec.Title), titleWidth)
	case "department":
		return rec.Department
	case "notice_type":
		return rec.NoticeType
	case "naics_code":
		return rec.NAICSCode
	case "posted_date":
		return rec.PostedDate
	case "response_deadline":
		return rec.ResponseDeadline
	}
	return ""
}
