package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// mintTimeout bounds the minting round trip; scoring falls back to a
// placeholder mint when it is exceeded.
const mintTimeout = 30 * time.Second

// MintResult identifies the on-chain credential backing a certificate.
type MintResult struct {
	Mint        string
	MetadataURI string
}

// NFTMetadata is the off-chain metadata document attached to a certificate
// mint.
type NFTMetadata struct {
	Name        string         `json:"name"`
	Symbol      string         `json:"symbol"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Attributes  []NFTAttribute `json:"attributes"`
}

type NFTAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// CertificateMinter is the external minting collaborator boundary. Callers
// must tolerate failure: scoring substitutes a placeholder identifier so the
// submission flow never blocks on minting availability.
type CertificateMinter interface {
	Mint(ctx context.Context, recipientAddress, topic, level string, score int) (*MintResult, error)
}

type devnetMinter struct{}

// NewDevnetMinter returns the devnet minter. It builds real metadata but
// issues generated mint identifiers instead of driving a funded minting
// wallet; a production deployment swaps in a Metaplex-backed implementation
// behind the same interface.
func NewDevnetMinter() CertificateMinter {
	return &devnetMinter{}
}

func (m *devnetMinter) Mint(ctx context.Context, recipientAddress, topic, level string, score int) (*MintResult, error) {
	ctx, cancel := context.WithTimeout(ctx, mintTimeout)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	metadata := NFTMetadata{
		Name:        fmt.Sprintf("%s - %s Certificate", topic, level),
		Symbol:      "SKILL",
		Description: fmt.Sprintf("Professional %s level certificate for %s. Score: %d. Issued by SkillChain on Solana.", level, topic, score),
		Image:       fmt.Sprintf("https://skillchain.app/certificates/%s.png", strings.ToLower(level)),
		Attributes: []NFTAttribute{
			{TraitType: "Topic", Value: topic},
			{TraitType: "Level", Value: level},
			{TraitType: "Score", Value: score},
			{TraitType: "Platform", Value: "SkillChain"},
			{TraitType: "Blockchain", Value: "Solana Devnet"},
		},
	}

	mint := uuid.NewString()
	uri := fmt.Sprintf("https://arweave.net/%s", strings.ReplaceAll(mint, "-", ""))

	log.Info().
		Str("mint", mint).
		Str("recipient", recipientAddress).
		Str("level", level).
		Str("topic", topic).
		Interface("metadata", metadata).
		Msg("Certificate NFT generated (devnet)")

	return &MintResult{Mint: mint, MetadataURI: uri}, nil
}

// PlaceholderMint builds the locally generated fallback identifier used when
// the minting collaborator errors. The MOCK- prefix lets a later backfill
// find certificates that still need a real mint.
func PlaceholderMint() *MintResult {
	id := uuid.NewString()
	return &MintResult{
		Mint:        "MOCK-" + id[:8],
		MetadataURI: fmt.Sprintf("https://arweave.net/%s", strings.ReplaceAll(id, "-", "")),
	}
}
