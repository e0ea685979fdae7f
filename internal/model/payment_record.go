package model

import (
	"time"
)

// PaymentRecord marks a ledger transaction signature as consumed. Rows are
// append-only: the unique index on Signature is the replay-protection
// invariant, and no code path updates or deletes a record once written.
type PaymentRecord struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Signature      string    `json:"signature" gorm:"not null;uniqueIndex"`
	WalletAddress  string    `json:"wallet_address" gorm:"not null;index"`
	AmountLamports int64     `json:"amount_lamports" gorm:"not null"`
	CreatedAt      time.Time `json:"created_at"`
}
