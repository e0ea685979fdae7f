package model

import (
	"time"
)

// UserStats aggregates outcomes per wallet. Counters only ever grow;
// SuccessRate is round(TotalCertificates/TotalTests*100). Updates must go
// through UserStatsRepository.ApplySubmission, which serializes them per
// wallet.
type UserStats struct {
	WalletAddress       string    `gorm:"primarykey" json:"wallet_address"`
	TotalTests          int       `json:"total_tests" gorm:"not null;default:0"`
	TotalCertificates   int       `json:"total_certificates" gorm:"not null;default:0"`
	SuccessRate         int       `json:"success_rate" gorm:"not null;default:0"`
	TotalEarnedLamports int64     `json:"total_earned_lamports" gorm:"not null;default:0"`
	UpdatedAt           time.Time `json:"updated_at"`
}
