package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/skillchain/skillchain-api/config"
	"github.com/skillchain/skillchain-api/internal/dto"
	"github.com/skillchain/skillchain-api/internal/model"
	"github.com/skillchain/skillchain-api/internal/repository"
	"github.com/skillchain/skillchain-api/internal/solana"
)

// ErrAlreadySubmitted is returned when a test already has a graded result.
var ErrAlreadySubmitted = errors.New("test has already been submitted")

// ScoringService grades submissions, issues rewards and certificates, and
// keeps per-wallet aggregates.
type ScoringService interface {
	Submit(ctx context.Context, req dto.SubmitTestRequest) (*dto.TestResultDTO, error)
	GetUserStats(walletAddress string) (*dto.UserStatsDTO, error)
}

type scoringService struct {
	testRepo   repository.TestRepository
	resultRepo repository.TestResultRepository
	certRepo   repository.CertificateRepository
	statsRepo  repository.UserStatsRepository
	minter     CertificateMinter
	cfg        *config.Config
}

func NewScoringService(
	testRepo repository.TestRepository,
	resultRepo repository.TestResultRepository,
	certRepo repository.CertificateRepository,
	statsRepo repository.UserStatsRepository,
	minter CertificateMinter,
	cfg *config.Config,
) ScoringService {
	return &scoringService{
		testRepo:   testRepo,
		resultRepo: resultRepo,
		certRepo:   certRepo,
		statsRepo:  statsRepo,
		minter:     minter,
		cfg:        cfg,
	}
}

func (s *scoringService) Submit(ctx context.Context, req dto.SubmitTestRequest) (*dto.TestResultDTO, error) {
	test, err := s.testRepo.FindByIDWithQuestions(req.TestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTestNotFound
		}
		return nil, fmt.Errorf("loading test %s: %w", req.TestID, err)
	}

	// Positional grading: a missing or out-of-range answer is simply wrong.
	correct := 0
	for i, q := range test.Questions {
		if i < len(req.Answers) && req.Answers[i] == q.CorrectOption {
			correct++
		}
	}
	score := correct * s.cfg.Scoring.PointsPerQuestion
	level, passed, rewardFraction := s.tierFor(score)
	rewardLamports := int64(rewardFraction * float64(s.cfg.Payment.PriceLamports))

	result := model.TestResult{
		TestID:         req.TestID,
		WalletAddress:  req.WalletAddress,
		Topic:          test.Topic,
		Score:          score,
		CorrectAnswers: correct,
		TotalQuestions: len(test.Questions),
		TotalPoints:    len(test.Questions) * s.cfg.Scoring.PointsPerQuestion,
		Level:          level,
		Passed:         passed,
		RewardLamports: rewardLamports,
	}

	created, err := s.resultRepo.CreateOnce(&result)
	if err != nil {
		return nil, fmt.Errorf("persisting result: %w", err)
	}
	if !created {
		return nil, ErrAlreadySubmitted
	}

	if passed {
		if err := s.issueCertificate(ctx, req.WalletAddress, test.Topic, level, score); err != nil {
			return nil, err
		}
	}

	stats, err := s.statsRepo.ApplySubmission(req.WalletAddress, passed, rewardLamports)
	if err != nil {
		return nil, fmt.Errorf("updating user stats: %w", err)
	}

	log.Info().
		Str("test_id", req.TestID).
		Str("wallet", req.WalletAddress).
		Int("score", score).
		Str("level", level).
		Bool("passed", passed).
		Int("total_tests", stats.TotalTests).
		Msg("Submission graded")

	var resp dto.TestResultDTO
	if err := copier.Copy(&resp, &result); err != nil {
		return nil, fmt.Errorf("preparing result response: %w", err)
	}
	resp.SolReward = solana.LamportsToSol(result.RewardLamports)
	return &resp, nil
}

// issueCertificate mints the credential and persists the certificate.
// Minting failures are recovered with a placeholder identifier; only a
// storage fault can fail this step.
func (s *scoringService) issueCertificate(ctx context.Context, walletAddress, topic, level string, score int) error {
	minted, err := s.minter.Mint(ctx, walletAddress, topic, level, score)
	if err != nil {
		log.Error().Err(err).Str("wallet", walletAddress).Msg("NFT minting failed, issuing placeholder mint")
		minted = PlaceholderMint()
	}

	cert := model.Certificate{
		ID:             uuid.NewString(),
		WalletAddress:  walletAddress,
		Topic:          topic,
		Level:          level,
		Score:          score,
		NftMint:        minted.Mint,
		NftMetadataURI: minted.MetadataURI,
	}
	if err := s.certRepo.Create(&cert); err != nil {
		return fmt.Errorf("persisting certificate: %w", err)
	}
	return nil
}

func (s *scoringService) GetUserStats(walletAddress string) (*dto.UserStatsDTO, error) {
	stats, err := s.statsRepo.GetOrCreate(walletAddress)
	if err != nil {
		return nil, fmt.Errorf("loading user stats: %w", err)
	}
	certs, err := s.certRepo.FindByWallet(walletAddress)
	if err != nil {
		return nil, fmt.Errorf("loading certificates: %w", err)
	}

	resp := dto.UserStatsDTO{
		WalletAddress:     stats.WalletAddress,
		TotalTests:        stats.TotalTests,
		TotalCertificates: stats.TotalCertificates,
		SuccessRate:       stats.SuccessRate,
		TotalSolEarned:    solana.LamportsToSol(stats.TotalEarnedLamports),
		Certificates:      []dto.CertificateDTO{},
	}
	for _, c := range certs {
		var certDTO dto.CertificateDTO
		if err := copier.Copy(&certDTO, &c); err != nil {
			return nil, fmt.Errorf("preparing certificate response: %w", err)
		}
		resp.Certificates = append(resp.Certificates, certDTO)
	}
	return &resp, nil
}

// tierFor maps a score to level, pass/fail and reward fraction. Thresholds
// are evaluated high to low; the first match wins.
func (s *scoringService) tierFor(score int) (level string, passed bool, rewardFraction float64) {
	cfg := s.cfg.Scoring
	switch {
	case score >= cfg.SeniorThreshold:
		return model.LevelSenior, true, cfg.RewardSenior
	case score >= cfg.MiddleThreshold:
		return model.LevelMiddle, true, cfg.RewardMiddle
	case score >= cfg.PassThreshold:
		return model.LevelJunior, true, cfg.RewardJunior
	default:
		return model.LevelFailed, false, 0
	}
}
