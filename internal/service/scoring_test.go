package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/skillchain/skillchain-api/config"
	"github.com/skillchain/skillchain-api/internal/dto"
	"github.com/skillchain/skillchain-api/internal/model"
	"github.com/skillchain/skillchain-api/internal/repository"
	"github.com/skillchain/skillchain-api/internal/testutil"
)

type fakeMinter struct {
	MintFn func(ctx context.Context, recipientAddress, topic, level string, score int) (*MintResult, error)
}

func (f *fakeMinter) Mint(ctx context.Context, recipientAddress, topic, level string, score int) (*MintResult, error) {
	if f.MintFn != nil {
		return f.MintFn(ctx, recipientAddress, topic, level, score)
	}
	return &MintResult{Mint: "mint-ok", MetadataURI: "https://arweave.net/meta"}, nil
}

type scoringFixture struct {
	svc      ScoringService
	db       *gorm.DB
	certRepo repository.CertificateRepository
	minter   *fakeMinter
}

func newScoringFixture(t *testing.T) *scoringFixture {
	t.Helper()
	db := testutil.NewTestDB(t,
		&model.Test{}, &model.Question{}, &model.TestResult{},
		&model.Certificate{}, &model.UserStats{},
	)
	cfg := &config.Config{
		Payment: config.Payment{PriceLamports: 1_000_000_000},
		Scoring: config.Scoring{
			QuestionsPerTest:  10,
			PointsPerQuestion: 10,
			PassThreshold:     70,
			SeniorThreshold:   90,
			MiddleThreshold:   80,
			RewardSenior:      0.15,
			RewardMiddle:      0.12,
			RewardJunior:      0.10,
		},
	}
	minter := &fakeMinter{}
	certRepo := repository.NewCertificateRepository(db)
	svc := NewScoringService(
		repository.NewTestRepository(db),
		repository.NewTestResultRepository(db),
		certRepo,
		repository.NewUserStatsRepository(db),
		minter,
		cfg,
	)
	return &scoringFixture{svc: svc, db: db, certRepo: certRepo, minter: minter}
}

// seedTest inserts a ten-question test where every correct option is 0.
func (f *scoringFixture) seedTest(t *testing.T, testID, wallet string) {
	t.Helper()
	test := model.Test{
		ID:    testID,
		Topic: "Programming > Go > Concurrency",
	}
	for i := 1; i <= 10; i++ {
		opts, err := model.EncodeOptions([]string{"right", "wrong", "wrong", "wrong"})
		require.NoError(t, err)
		test.Questions = append(test.Questions, model.Question{
			Label:         fmt.Sprintf("q-%d", i),
			Prompt:        fmt.Sprintf("question %d", i),
			Options:       opts,
			CorrectOption: 0,
			Points:        10,
			OrderInTest:   i,
		})
	}
	require.NoError(t, f.db.Create(&test).Error)
}

// answers builds a slice with the given number of correct answers followed by
// wrong ones, ten in total.
func answers(correct int) []int {
	out := make([]int, 10)
	for i := correct; i < 10; i++ {
		out[i] = 3
	}
	return out
}

func TestSubmit_TierBoundaries(t *testing.T) {
	cases := []struct {
		correct    int
		wantLevel  string
		wantPassed bool
		wantReward int64
	}{
		{correct: 10, wantLevel: model.LevelSenior, wantPassed: true, wantReward: 150_000_000},
		{correct: 9, wantLevel: model.LevelSenior, wantPassed: true, wantReward: 150_000_000},
		{correct: 8, wantLevel: model.LevelMiddle, wantPassed: true, wantReward: 120_000_000},
		{correct: 7, wantLevel: model.LevelJunior, wantPassed: true, wantReward: 100_000_000},
		{correct: 6, wantLevel: model.LevelFailed, wantPassed: false, wantReward: 0},
		{correct: 0, wantLevel: model.LevelFailed, wantPassed: false, wantReward: 0},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d correct is %s", tc.correct, tc.wantLevel), func(t *testing.T) {
			f := newScoringFixture(t)
			f.seedTest(t, "test-1", "wallet-1")

			result, err := f.svc.Submit(context.Background(), dto.SubmitTestRequest{
				TestID:        "test-1",
				WalletAddress: "wallet-1",
				Answers:       answers(tc.correct),
			})
			require.NoError(t, err)
			assert.Equal(t, tc.correct*10, result.Score)
			assert.Equal(t, tc.correct, result.CorrectAnswers)
			assert.Equal(t, tc.wantLevel, result.Level)
			assert.Equal(t, tc.wantPassed, result.Passed)
			assert.InDelta(t, float64(tc.wantReward)/1e9, result.SolReward, 1e-12)

			certs, err := f.certRepo.FindByWallet("wallet-1")
			require.NoError(t, err)
			if tc.wantPassed {
				require.Len(t, certs, 1)
				assert.Equal(t, tc.wantLevel, certs[0].Level)
				assert.Equal(t, tc.correct*10, certs[0].Score)
			} else {
				assert.Empty(t, certs, "failed submissions earn no certificate")
			}
		})
	}
}

func TestSubmit_ShortAnswerSliceGradesAsWrong(t *testing.T) {
	f := newScoringFixture(t)
	f.seedTest(t, "test-short", "wallet-1")

	// Only three answers for ten questions; the missing seven are wrong.
	result, err := f.svc.Submit(context.Background(), dto.SubmitTestRequest{
		TestID:        "test-short",
		WalletAddress: "wallet-1",
		Answers:       []int{0, 0, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.CorrectAnswers)
	assert.Equal(t, 30, result.Score)
	assert.False(t, result.Passed)
}

func TestSubmit_OutOfRangeAnswersGradeAsWrong(t *testing.T) {
	f := newScoringFixture(t)
	f.seedTest(t, "test-oob", "wallet-1")

	in := answers(10)
	in[0] = -1
	in[1] = 99
	result, err := f.svc.Submit(context.Background(), dto.SubmitTestRequest{
		TestID:        "test-oob",
		WalletAddress: "wallet-1",
		Answers:       in,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, result.CorrectAnswers)
}

func TestSubmit_UnknownTest(t *testing.T) {
	f := newScoringFixture(t)

	_, err := f.svc.Submit(context.Background(), dto.SubmitTestRequest{
		TestID:        "nope",
		WalletAddress: "wallet-1",
		Answers:       answers(10),
	})
	assert.ErrorIs(t, err, ErrTestNotFound)
}

func TestSubmit_SecondSubmissionRejected(t *testing.T) {
	f := newScoringFixture(t)
	f.seedTest(t, "test-once", "wallet-1")

	req := dto.SubmitTestRequest{TestID: "test-once", WalletAddress: "wallet-1", Answers: answers(10)}
	_, err := f.svc.Submit(context.Background(), req)
	require.NoError(t, err)

	// A retry with different answers cannot replace the recorded result.
	req.Answers = answers(0)
	_, err = f.svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	var count int64
	require.NoError(t, f.db.Model(&model.TestResult{}).Where("test_id = ?", "test-once").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmit_MintFailureFallsBackToPlaceholder(t *testing.T) {
	f := newScoringFixture(t)
	f.seedTest(t, "test-mintfail", "wallet-1")
	f.minter.MintFn = func(ctx context.Context, recipient, topic, level string, score int) (*MintResult, error) {
		return nil, errors.New("minting rpc unavailable")
	}

	result, err := f.svc.Submit(context.Background(), dto.SubmitTestRequest{
		TestID:        "test-mintfail",
		WalletAddress: "wallet-1",
		Answers:       answers(10),
	})
	require.NoError(t, err, "minting failure must not block the submission")
	assert.True(t, result.Passed)

	certs, err := f.certRepo.FindByWallet("wallet-1")
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Contains(t, certs[0].NftMint, "MOCK-")
}

func TestSubmit_StatsAggregation(t *testing.T) {
	f := newScoringFixture(t)
	f.seedTest(t, "test-a", "wallet-stats")
	f.seedTest(t, "test-b", "wallet-stats")
	f.seedTest(t, "test-c", "wallet-stats")

	submit := func(testID string, correct int) {
		_, err := f.svc.Submit(context.Background(), dto.SubmitTestRequest{
			TestID:        testID,
			WalletAddress: "wallet-stats",
			Answers:       answers(correct),
		})
		require.NoError(t, err)
	}
	submit("test-a", 10) // Senior, 0.15 SOL
	submit("test-b", 8)  // Middle, 0.12 SOL
	submit("test-c", 5)  // Failed

	stats, err := f.svc.GetUserStats("wallet-stats")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalTests)
	assert.Equal(t, 2, stats.TotalCertificates)
	assert.Equal(t, 67, stats.SuccessRate)
	assert.InDelta(t, 0.27, stats.TotalSolEarned, 1e-12)
	assert.Len(t, stats.Certificates, 2)
}

func TestSubmit_ConcurrentSubmissionsDoNotLoseUpdates(t *testing.T) {
	f := newScoringFixture(t)
	const n = 6
	for i := 0; i < n; i++ {
		f.seedTest(t, fmt.Sprintf("test-conc-%d", i), "wallet-conc")
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.svc.Submit(context.Background(), dto.SubmitTestRequest{
				TestID:        fmt.Sprintf("test-conc-%d", i),
				WalletAddress: "wallet-conc",
				Answers:       answers(10),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	stats, err := f.svc.GetUserStats("wallet-conc")
	require.NoError(t, err)
	assert.Equal(t, n, stats.TotalTests)
	assert.Equal(t, n, stats.TotalCertificates)
	assert.Equal(t, 100, stats.SuccessRate)
}

func TestGetUserStats_UnknownWalletGetsZeroedStats(t *testing.T) {
	f := newScoringFixture(t)

	stats, err := f.svc.GetUserStats("wallet-fresh")
	require.NoError(t, err)
	assert.Equal(t, "wallet-fresh", stats.WalletAddress)
	assert.Zero(t, stats.TotalTests)
	assert.Zero(t, stats.TotalCertificates)
	assert.Zero(t, stats.TotalSolEarned)
	assert.Empty(t, stats.Certificates)
}
