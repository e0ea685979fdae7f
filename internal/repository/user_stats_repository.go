package repository

import (
	"errors"
	"math"
	"sync"

	"github.com/skillchain/skillchain-api/internal/model"
	"gorm.io/gorm"
)

type UserStatsRepository interface {
	// GetOrCreate lazily initializes the stats row for a wallet.
	GetOrCreate(walletAddress string) (*model.UserStats, error)
	// ApplySubmission folds one graded submission into the wallet's stats.
	// Calls for the same wallet are serialized so concurrent submissions
	// cannot lose an update.
	ApplySubmission(walletAddress string, passed bool, rewardLamports int64) (*model.UserStats, error)
}

type userStatsRepository struct {
	db *gorm.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewUserStatsRepository(db *gorm.DB) UserStatsRepository {
	return &userStatsRepository{
		db:    db,
		locks: make(map[string]*sync.Mutex),
	}
}

// walletLock returns the mutex guarding one wallet's read-modify-write cycle.
func (r *userStatsRepository) walletLock(walletAddress string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[walletAddress]
	if !ok {
		l = &sync.Mutex{}
		r.locks[walletAddress] = l
	}
	return l
}

func (r *userStatsRepository) GetOrCreate(walletAddress string) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.db.First(&stats, "wallet_address = ?", walletAddress).Error
	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stats = model.UserStats{WalletAddress: walletAddress}
	if err := r.db.Create(&stats).Error; err != nil {
		// Lost a creation race; the row exists now.
		if ferr := r.db.First(&stats, "wallet_address = ?", walletAddress).Error; ferr != nil {
			return nil, err
		}
	}
	return &stats, nil
}

func (r *userStatsRepository) ApplySubmission(walletAddress string, passed bool, rewardLamports int64) (*model.UserStats, error) {
	lock := r.walletLock(walletAddress)
	lock.Lock()
	defer lock.Unlock()

	stats, err := r.GetOrCreate(walletAddress)
	if err != nil {
		return nil, err
	}

	err = r.db.Transaction(func(tx *gorm.DB) error {
		stats.TotalTests++
		if passed {
			stats.TotalCertificates++
		}
		stats.TotalEarnedLamports += rewardLamports
		stats.SuccessRate = int(math.Round(float64(stats.TotalCertificates) / float64(stats.TotalTests) * 100))
		return tx.Save(stats).Error
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
