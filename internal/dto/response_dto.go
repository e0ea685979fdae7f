package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type CategoryDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type CategoriesResponse struct {
	Categories []CategoryDTO `json:"categories"`
}

// QuestionPublicDTO is the sanitized question view served to the test-taking
// client: no correct option index, no per-question points.
type QuestionPublicDTO struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// TestPublicDTO is the sanitized test view. Grading-relevant fields never
// leave the server before submission.
type TestPublicDTO struct {
	ID        string              `json:"id"`
	Topic     string              `json:"topic"`
	Questions []QuestionPublicDTO `json:"questions"`
	CreatedAt time.Time           `json:"created_at"`
}

type GenerateTestResponse struct {
	Test            TestPublicDTO `json:"test"`
	PaymentRequired bool          `json:"paymentRequired"`
	Amount          float64       `json:"amount"` // test fee in SOL
}

type TestResultDTO struct {
	TestID         string    `json:"testId"`
	WalletAddress  string    `json:"walletAddress"`
	Topic          string    `json:"topic"`
	Score          int       `json:"score"`
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	TotalPoints    int       `json:"totalPoints"`
	Level          string    `json:"level"`
	Passed         bool      `json:"passed"`
	SolReward      float64   `json:"solReward"`
	CompletedAt    time.Time `json:"completedAt"`
}

type CertificateDTO struct {
	ID             string    `json:"id"`
	WalletAddress  string    `json:"walletAddress"`
	Topic          string    `json:"topic"`
	Level          string    `json:"level"`
	Score          int       `json:"score"`
	NftMint        string    `json:"nftMint,omitempty"`
	NftMetadataURI string    `json:"nftMetadataUri,omitempty"`
	EarnedAt       time.Time `json:"earnedAt"`
}

type UserStatsDTO struct {
	WalletAddress     string           `json:"walletAddress"`
	TotalTests        int              `json:"totalTests"`
	TotalCertificates int              `json:"totalCertificates"`
	SuccessRate       int              `json:"successRate"`
	TotalSolEarned    float64          `json:"totalSolEarned"`
	Certificates      []CertificateDTO `json:"certificates"`
}
