package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BucketTotal is one aging bucket column in a summary row. Buckets are
// kept as an ordered slice so the response preserves the scheme's column
// order.
type BucketTotal struct {
	Bucket string          `json:"bucket"`
	Amount decimal.Decimal `json:"amount"`
}

// AgingSummaryRow is one supplier's payables position or one customer's
// receivables position, bucketed by days outstanding as of the report
// date. The totals row produced by the synthesizer reuses this shape with
// the party name set to the totals label.
type AgingSummaryRow struct {
	PartyID       uuid.UUID       `json:"party_id"`
	PartyName     string          `json:"party_name"`
	Buckets       []BucketTotal   `json:"buckets"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	SettledAmount decimal.Decimal `json:"settled_amount"`
	Balance       decimal.Decimal `json:"balance"`
}

// AgingDetailRow is one open purchase or order in an aging detail report.
type AgingDetailRow struct {
	ID              uuid.UUID       `json:"id"`
	PartyID         uuid.UUID       `json:"party_id"`
	PartyName       string          `json:"party_name"`
	Date            time.Time       `json:"date"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	SettledAmount   decimal.Decimal `json:"settled_amount"`
	Balance         decimal.Decimal `json:"balance"`
	Bucket          string          `json:"bucket"`
	DaysOutstanding int             `json:"days_outstanding"`
}
