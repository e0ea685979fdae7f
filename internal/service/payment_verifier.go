package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/skillchain/skillchain-api/config"
	"github.com/skillchain/skillchain-api/internal/model"
	"github.com/skillchain/skillchain-api/internal/repository"
	"github.com/skillchain/skillchain-api/internal/solana"
)

// DeclineReason classifies why a payment was not accepted. Every reason is
// user-recoverable: retry with a new or corrected transaction.
type DeclineReason string

const (
	DeclineAlreadyUsed         DeclineReason = "AlreadyUsed"
	DeclineNotFound            DeclineReason = "NotFound"
	DeclineExecutionFailed     DeclineReason = "ExecutionFailed"
	DeclinePayerMismatch       DeclineReason = "PayerMismatch"
	DeclineTreasuryNotInvolved DeclineReason = "TreasuryNotInvolved"
	DeclineInsufficientAmount  DeclineReason = "InsufficientAmount"
)

// VerificationError is a verification decline, as opposed to an
// infrastructure fault (RPC unreachable, storage down) which surfaces as an
// ordinary error.
type VerificationError struct {
	Reason DeclineReason
	Detail string
}

func (e *VerificationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("payment declined: %s", e.Reason)
	}
	return fmt.Sprintf("payment declined: %s: %s", e.Reason, e.Detail)
}

func decline(reason DeclineReason, detail string) error {
	return &VerificationError{Reason: reason, Detail: detail}
}

// PaymentVerifier is the sole authority on whether a claimed payment is
// real, sufficient, unspent, and attributable to the claimed payer.
type PaymentVerifier interface {
	// Verify validates the payment end-to-end and, only if every check
	// passes, atomically records the signature as consumed. Declines are
	// returned as *VerificationError; nothing is written on any decline path.
	Verify(ctx context.Context, signature, expectedPayer string) (*model.PaymentRecord, error)
}

type paymentVerifier struct {
	ledger      solana.Client
	paymentRepo repository.PaymentRecordRepository
	cfg         config.Payment
}

func NewPaymentVerifier(ledger solana.Client, paymentRepo repository.PaymentRecordRepository, cfg *config.Config) PaymentVerifier {
	return &paymentVerifier{
		ledger:      ledger,
		paymentRepo: paymentRepo,
		cfg:         cfg.Payment,
	}
}

func (v *paymentVerifier) Verify(ctx context.Context, signature, expectedPayer string) (*model.PaymentRecord, error) {
	// Replay check first; a known-spent signature never costs an RPC call.
	used, err := v.paymentRepo.IsUsed(signature)
	if err != nil {
		return nil, fmt.Errorf("checking signature ledger: %w", err)
	}
	if used {
		log.Warn().Str("signature", signature).Msg("Payment signature already used")
		return nil, decline(DeclineAlreadyUsed, "payment signature has already been used")
	}

	tx, err := v.ledger.GetTransaction(ctx, signature)
	if err != nil {
		if errors.Is(err, solana.ErrTransactionNotFound) {
			return nil, decline(DeclineNotFound, "transaction not found on-chain")
		}
		return nil, fmt.Errorf("fetching transaction %s: %w", signature, err)
	}

	if tx.Failed {
		return nil, decline(DeclineExecutionFailed, "transaction failed on-chain")
	}

	if payer := tx.FeePayer(); payer != expectedPayer {
		log.Warn().
			Str("signature", signature).
			Str("expected", expectedPayer).
			Str("actual", payer).
			Msg("Payment sender mismatch")
		return nil, decline(DeclinePayerMismatch, "transaction was not signed by the requesting wallet")
	}

	delta, involved := tx.BalanceDelta(v.cfg.TreasuryAddress)
	if !involved {
		return nil, decline(DeclineTreasuryNotInvolved, "treasury account not involved in transaction")
	}

	required := int64(v.cfg.Tolerance * float64(v.cfg.PriceLamports))
	if delta < required {
		log.Warn().
			Str("signature", signature).
			Int64("expected_lamports", v.cfg.PriceLamports).
			Int64("received_lamports", delta).
			Msg("Insufficient payment amount")
		return nil, decline(DeclineInsufficientAmount, "payment amount below the required test fee")
	}
	if delta < v.cfg.PriceLamports {
		// Within tolerance but short of the full fee; worth a trace.
		log.Info().Str("signature", signature).Int64("shortfall_lamports", v.cfg.PriceLamports-delta).Msg("Payment accepted within fee tolerance")
	}

	record := &model.PaymentRecord{
		Signature:      signature,
		WalletAddress:  expectedPayer,
		AmountLamports: delta,
		CreatedAt:      time.Now(),
	}
	inserted, err := v.paymentRepo.InsertIfAbsent(record)
	if err != nil {
		return nil, fmt.Errorf("recording payment signature: %w", err)
	}
	if !inserted {
		// A concurrent request with the same signature won the insert race.
		log.Warn().Str("signature", signature).Msg("Payment signature consumed concurrently")
		return nil, decline(DeclineAlreadyUsed, "payment signature has already been used")
	}

	log.Info().
		Str("signature", signature).
		Str("payer", expectedPayer).
		Int64("amount_lamports", delta).
		Msg("Payment verified")
	return record, nil
}
