package repository

import (
	"github.com/skillchain/skillchain-api/internal/model"
	"gorm.io/gorm"
)

type CertificateRepository interface {
	Create(certificate *model.Certificate) error
	FindByWallet(walletAddress string) ([]model.Certificate, error)
}

type certificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Create(certificate *model.Certificate) error {
	return r.db.Create(certificate).Error
}

func (r *certificateRepository) FindByWallet(walletAddress string) ([]model.Certificate, error) {
	var certs []model.Certificate
	err := r.db.Where("wallet_address = ?", walletAddress).Order("earned_at desc").Find(&certs).Error
	return certs, err
}
