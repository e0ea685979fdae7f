package repository

import (
	"github.com/skillchain/skillchain-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TestResultRepository interface {
	// CreateOnce persists the result unless one already exists for the same
	// test. Returns false when the test was already submitted.
	CreateOnce(result *model.TestResult) (bool, error)
	FindByTestID(testID string) (*model.TestResult, error)
}

type testResultRepository struct {
	db *gorm.DB
}

func NewTestResultRepository(db *gorm.DB) TestResultRepository {
	return &testResultRepository{db: db}
}

func (r *testResultRepository) CreateOnce(result *model.TestResult) (bool, error) {
	res := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "test_id"}},
		DoNothing: true,
	}).Create(result)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *testResultRepository) FindByTestID(testID string) (*model.TestResult, error) {
	var result model.TestResult
	if err := r.db.First(&result, "test_id = ?", testID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
