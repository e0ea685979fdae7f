package dto

// GenerateCategoriesRequest asks for one level of the category drill-down.
type GenerateCategoriesRequest struct {
	Level          int    `json:"level" binding:"required,min=1,max=3"`
	ParentCategory string `json:"parentCategory"`
}

// GenerateTestRequest is the paid entry point: the payment signature is the
// claimed on-chain transaction the server will independently verify.
type GenerateTestRequest struct {
	MainCategory     string `json:"mainCategory" binding:"required"`
	NarrowCategory   string `json:"narrowCategory" binding:"required"`
	SpecificCategory string `json:"specificCategory" binding:"required"`
	WalletAddress    string `json:"walletAddress" binding:"required"`
	PaymentSignature string `json:"paymentSignature" binding:"required"`
}

// SubmitTestRequest carries the ordered answer indices. Missing or
// out-of-range entries are graded as incorrect, not rejected.
type SubmitTestRequest struct {
	TestID        string `json:"testId" binding:"required"`
	WalletAddress string `json:"walletAddress" binding:"required"`
	Answers       []int  `json:"answers" binding:"required"`
}
