package model

import (
	"time"
)

// Skill levels derived from the score. Failed is the only non-passing tier.
const (
	LevelSenior = "Senior"
	LevelMiddle = "Middle"
	LevelJunior = "Junior"
	LevelFailed = "Failed"
)

// TestResult is the outcome of one submission. The unique index on TestID
// enforces the single-submission policy: a test can only ever be graded once.
type TestResult struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	TestID         string    `json:"test_id" gorm:"not null;uniqueIndex"`
	WalletAddress  string    `json:"wallet_address" gorm:"not null;index"`
	Topic          string    `json:"topic" gorm:"not null"`
	Score          int       `json:"score" gorm:"not null"`
	CorrectAnswers int       `json:"correct_answers" gorm:"not null"`
	TotalQuestions int       `json:"total_questions" gorm:"not null"`
	TotalPoints    int       `json:"total_points" gorm:"not null"`
	Level          string    `json:"level" gorm:"not null"`
	Passed         bool      `json:"passed" gorm:"not null"`
	RewardLamports int64     `json:"reward_lamports" gorm:"not null"`
	CompletedAt    time.Time `json:"completed_at" gorm:"autoCreateTime"`
}
