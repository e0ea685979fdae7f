package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/skillchain/skillchain-api/config"
	"github.com/skillchain/skillchain-api/internal/dto"
	"github.com/skillchain/skillchain-api/internal/model"
	"github.com/skillchain/skillchain-api/internal/repository"
	"github.com/skillchain/skillchain-api/internal/solana"
)

// ErrTestNotFound is returned when a test id does not exist.
var ErrTestNotFound = errors.New("test not found")

// TestGenerationService gates test creation behind verified payment.
type TestGenerationService interface {
	// Generate verifies the claimed payment, generates the questions and
	// persists the test. The verification decline (if any) is returned as a
	// *VerificationError in the chain; no AI call is made for declined
	// payments.
	Generate(ctx context.Context, req dto.GenerateTestRequest) (*dto.GenerateTestResponse, error)
	// GetTest returns the sanitized test view for the taking client.
	GetTest(testID string) (*dto.TestPublicDTO, error)
}

type testGenerationService struct {
	verifier  PaymentVerifier
	generator QuestionGenerator
	testRepo  repository.TestRepository
	cfg       *config.Config
}

func NewTestGenerationService(
	verifier PaymentVerifier,
	generator QuestionGenerator,
	testRepo repository.TestRepository,
	cfg *config.Config,
) TestGenerationService {
	return &testGenerationService{
		verifier:  verifier,
		generator: generator,
		testRepo:  testRepo,
		cfg:       cfg,
	}
}

func (s *testGenerationService) Generate(ctx context.Context, req dto.GenerateTestRequest) (*dto.GenerateTestResponse, error) {
	if _, err := s.verifier.Verify(ctx, req.PaymentSignature, req.WalletAddress); err != nil {
		return nil, fmt.Errorf("payment verification: %w", err)
	}

	// The signature is consumed from here on. A failure below leaves the
	// user charged with no test issued; the log line carries everything the
	// refund/backfill path needs.
	questions, err := s.generator.GenerateQuestions(ctx, req.MainCategory, req.NarrowCategory, req.SpecificCategory)
	if err != nil {
		log.Error().Err(err).
			Str("signature", req.PaymentSignature).
			Str("wallet", req.WalletAddress).
			Msg("Question generation failed after payment was consumed; needs reconciliation")
		return nil, fmt.Errorf("generating questions: %w", err)
	}

	topic := fmt.Sprintf("%s > %s > %s", req.MainCategory, req.NarrowCategory, req.SpecificCategory)
	test := model.Test{
		ID:               fmt.Sprintf("%s-%s", req.WalletAddress, uuid.NewString()),
		Topic:            topic,
		MainCategory:     req.MainCategory,
		NarrowCategory:   req.NarrowCategory,
		SpecificCategory: req.SpecificCategory,
		CreatedAt:        time.Now(),
	}
	for i, q := range questions {
		opts, err := model.EncodeOptions(q.Options)
		if err != nil {
			return nil, fmt.Errorf("encoding options: %w", err)
		}
		test.Questions = append(test.Questions, model.Question{
			Label:         fmt.Sprintf("q-%d", i+1),
			Prompt:        q.Prompt,
			Options:       opts,
			CorrectOption: q.CorrectOption,
			Points:        s.cfg.Scoring.PointsPerQuestion,
			OrderInTest:   i + 1,
		})
	}

	if err := s.testRepo.Create(&test); err != nil {
		log.Error().Err(err).
			Str("signature", req.PaymentSignature).
			Str("wallet", req.WalletAddress).
			Msg("Persisting test failed after payment was consumed; needs reconciliation")
		return nil, fmt.Errorf("persisting test: %w", err)
	}

	// Read back to confirm durability before answering the client.
	persisted, err := s.testRepo.FindByIDWithQuestions(test.ID)
	if err != nil {
		log.Error().Err(err).Str("test_id", test.ID).Msg("Persisted test could not be read back")
		return nil, fmt.Errorf("confirming persisted test: %w", err)
	}

	log.Info().
		Str("test_id", persisted.ID).
		Str("wallet", req.WalletAddress).
		Str("topic", topic).
		Msg("Test generated")

	return &dto.GenerateTestResponse{
		Test:            sanitizeTest(persisted),
		PaymentRequired: true,
		Amount:          solana.LamportsToSol(s.cfg.Payment.PriceLamports),
	}, nil
}

func (s *testGenerationService) GetTest(testID string) (*dto.TestPublicDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("loading test %s: %w", testID, err)
	}
	public := sanitizeTest(test)
	return &public, nil
}

// sanitizeTest strips grading-relevant fields from a test before it is sent
// to a client that has not submitted yet.
func sanitizeTest(test *model.Test) dto.TestPublicDTO {
	public := dto.TestPublicDTO{
		ID:        test.ID,
		Topic:     test.Topic,
		CreatedAt: test.CreatedAt,
	}
	for _, q := range test.Questions {
		public.Questions = append(public.Questions, dto.QuestionPublicDTO{
			ID:       q.Label,
			Question: q.Prompt,
			Options:  q.OptionList(),
		})
	}
	return public
}
