package samgov

// SearchResponse matches the SAM.gov Opportunities v2 search schema.
type SearchResponse struct {
	TotalRecords      int              `json:"totalRecords"`
	OpportunitiesData []RawOpportunity `json:"opportunitiesData"`
}

// RawOpportunity is a single opportunity as returned by the API.
// Fields the service omits decode to their zero values.
type RawOpportunity struct {
	NoticeID           string `json:"noticeId"`
	Title              string `json:"title"`
	Department         string `json:"department"`
	SubTier            string `json:"subTier"`
	Office             string `json:"office"`
	PostedDate         string `json:"postedDate"`
	ResponseDeadLine   string `json:"responseDeadLine"`
	Type               string `json:"type"`
	TypeOfSetAside     string `json:"typeOfSetAside"`
	NAICSCode          string `json:"naicsCode"`
	ClassificationCode string `json:"classificationCode"`
	Active             string `json:"active"`
	Description        string `json:"description"`
}
