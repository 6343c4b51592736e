package domain

import "time"

// TabStatus indicates the state of a guest tab.
type TabStatus string

const (
	TabOpen    TabStatus = "OPEN"
	TabSettled TabStatus = "SETTLED"
)

// Deckel is a guest's open running tab. Its transactions are the ledger
// the receipt pipeline consumes when the tab is settled.
type Deckel struct {
	TabID         string    `json:"tabID"` // Primary key (UUID)
	GuestName     string    `json:"guestName"`
	TableID       string    `json:"tableID,omitempty"`
	Status        TabStatus `json:"status"`
	OpenedAt      time.Time `json:"openedAt"`
	SettledAt     *time.Time `json:"settledAt,omitempty"`
	ReceiptNumber string    `json:"receiptNumber,omitempty"` // set when settled
	AuditFields
}
