package models

// Record is one flattened contract opportunity as written to CSV.
// Field order here matches the output column order.
type Record struct {
	NoticeID           string `json:"notice_id"`
	Title              string `json:"title"`
	Department         string `json:"department"`
	SubTier            string `json:"sub_tier"`
	Office             string `json:"office"`
	PostedDate         string `json:"posted_date"`
	ResponseDeadline   string `json:"response_deadline"`
	NoticeType         string `json:"notice_type"`
	SetAside           string `json:"set_aside"`
	NAICSCode          string `json:"naics_code"`
	ClassificationCode string `json:"classification_code"`
	Active             string `json:"active"`
	Description        string `json:"description"`
	Link               string `json:"link"`
}

// Columns is the CSV header, in Record field order.
var Columns = []string{
	"notice_id", "title", "department", "sub_tier", "office",
	"posted_date", "response_deadline", "notice_type", "set_aside",
	"naics_code", "classification_code", "active", "description", "link",
}

// Row returns the record's values in Columns order.
func (r Record) Row() []string {
	return []string{
		r.NoticeID, r.Title, r.Department, r.SubTier, r.Office,
		r.PostedDate, r.ResponseDeadline, r.NoticeType, r.SetAside,
		r.NAICSCode, r.ClassificationCode, r.Active, r.Description, r.Link,
	}
}
