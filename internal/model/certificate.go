package model

import (
	"time"
)

// Certificate is issued only for passing results. NftMint may carry a
// placeholder identifier when the minting collaborator was unavailable; a
// later backfill can reconcile those by the MOCK- prefix.
type Certificate struct {
	ID             string    `gorm:"primarykey" json:"id"`
	WalletAddress  string    `json:"wallet_address" gorm:"not null;index"`
	Topic          string    `json:"topic" gorm:"not null"`
	Level          string    `json:"level" gorm:"not null"`
	Score          int       `json:"score" gorm:"not null"`
	NftMint        string    `json:"nft_mint,omitempty"`
	NftMetadataURI string    `json:"nft_metadata_uri,omitempty"`
	EarnedAt       time.Time `json:"earned_at" gorm:"autoCreateTime"`
}
