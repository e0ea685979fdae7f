package repository

import (
	"github.com/skillchain/skillchain-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentRecordRepository is the durable set of consumed payment signatures.
type PaymentRecordRepository interface {
	IsUsed(signature string) (bool, error)
	// InsertIfAbsent atomically consumes the signature. It returns false with
	// a nil error when another request already consumed it; the uniqueness
	// conflict is an expected outcome, not a fault.
	InsertIfAbsent(record *model.PaymentRecord) (bool, error)
}

type paymentRecordRepository struct {
	db *gorm.DB
}

func NewPaymentRecordRepository(db *gorm.DB) PaymentRecordRepository {
	return &paymentRecordRepository{db: db}
}

func (r *paymentRecordRepository) IsUsed(signature string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PaymentRecord{}).Where("signature = ?", signature).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *paymentRecordRepository) InsertIfAbsent(record *model.PaymentRecord) (bool, error) {
	// INSERT ... ON CONFLICT DO NOTHING keeps the check-and-consume step
	// atomic under concurrent requests carrying the same signature.
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "signature"}},
		DoNothing: true,
	}).Create(record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
