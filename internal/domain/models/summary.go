package models

// SummaryEntry is one headline row forwarded to the reporting service.
type SummaryEntry struct {
	Series         string                 `json:"series"`
	Model          string                 `json:"model"`
	HeadlineAmount float64                `json:"headline_amount"`
	Currency       string                 `json:"currency"`
	Details        map[string]interface{} `json:"details,omitempty"`
}

// SummaryBridgeItem pairs a valuation endpoint with the raw output it
// produced, so the bridge can map it to a headline entry.
type SummaryBridgeItem struct {
	Endpoint string                 `json:"endpoint" validate:"required"`
	Output   map[string]interface{} `json:"output" validate:"required"`
}

type SummaryBridgeRequest struct {
	Items []SummaryBridgeItem `json:"items" validate:"required,min=1,dive"`
}

type SummaryBridgeResponse struct {
	Forwarded int            `json:"forwarded"`
	Skipped   []string       `json:"skipped,omitempty"`
	Entries   []SummaryEntry `json:"entries"`
}
