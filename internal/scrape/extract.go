package scrape

import (
	"fmt"

	"github.com/mosallam/sam-finder/internal/models"
	"github.com/mosallam/sam-finder/internal/samgov"
)

// descriptionLimit caps free-text descriptions; anything longer is
// dropped, not summarized.
const descriptionLimit = 500

// ExtractRecords flattens one page response into records, preserving
// the server's order. It never errors: fields the payload lacks stay
// empty, and a record without a notice ID gets an empty link.
func ExtractRecords(page *samgov.SearchResponse) []models.Record {
	records := make([]models.Record, 0, len(page.OpportunitiesData))
	for _, opp := range page.OpportunitiesData {
		link := ""
		if opp.NoticeID != "" {
			link = fmt.Sprintf("https://sam.gov/opp/%s/view", opp.NoticeID)
		}
		records = append(records, models.Record{
			NoticeID:           opp.NoticeID,
			Title:              opp.Title,
			Department:         opp.Department,
			SubTier:            opp.SubTier,
			Office:             opp.Office,
			PostedDate:         opp.PostedDate,
			ResponseDeadline:   opp.ResponseDeadLine,
			NoticeType:         opp.Type,
			SetAside:           opp.TypeOfSetAside,
			NAICSCode:          opp.NAICSCode,
			ClassificationCode: opp.ClassificationCode,
			Active:             opp.Active,
			Description:        truncate(opp.Description, descriptionLimit),
			Link:               link,
		})
	}
	return records
}

// truncate cuts s to at most n characters. No ellipsis: the tail is
// silently discarded.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
