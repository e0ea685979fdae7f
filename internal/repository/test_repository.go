package repository

import (
	"github.com/skillchain/skillchain-api/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	Create(test *model.Test) error
	FindByIDWithQuestions(id string) (*model.Test, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) Create(test *model.Test) error {
	// GORM creates the associated questions along with the test.
	return r.db.Create(test).Error
}

func (r *testRepository) FindByIDWithQuestions(id string) (*model.Test, error) {
	var test model.Test
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_test ASC")
	}).First(&test, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}
