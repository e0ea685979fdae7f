package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/skillchain/skillchain-api/internal/dto"
	"github.com/skillchain/skillchain-api/internal/service"
)

type Controller struct {
	generator  service.QuestionGenerator
	testSvc    service.TestGenerationService
	scoringSvc service.ScoringService
}

func NewController(generator service.QuestionGenerator, testSvc service.TestGenerationService, scoringSvc service.ScoringService) *Controller {
	return &Controller{
		generator:  generator,
		testSvc:    testSvc,
		scoringSvc: scoringSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/categories", ctrl.GenerateCategoriesHandler)

		tests := api.Group("/tests")
		tests.POST("/generate", ctrl.GenerateTestHandler)
		tests.GET("/:testId", ctrl.GetTestHandler)
		tests.POST("/submit", ctrl.SubmitTestHandler)

		api.GET("/user/stats/:walletAddress", ctrl.GetUserStatsHandler)
	}
}

// GenerateCategoriesHandler godoc
// @Summary Generate skill categories
// @Description Returns AI-generated categories for the requested level of the topic tree. Levels 2 and 3 require the parent category chosen at the previous level.
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body dto.GenerateCategoriesRequest true "Category level and optional parent"
// @Success 200 {object} dto.CategoriesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Category generation failed"
// @Router /categories [post]
func (ctrl *Controller) GenerateCategoriesHandler(c *gin.Context) {
	var req dto.GenerateCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	options, err := ctrl.generator.GenerateCategories(c.Request.Context(), req.Level, req.ParentCategory)
	if err != nil {
		log.Error().Err(err).Int("level", req.Level).Msg("GenerateCategories: generation failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate categories"})
		return
	}

	resp := dto.CategoriesResponse{Categories: make([]dto.CategoryDTO, 0, len(options))}
	for _, o := range options {
		resp.Categories = append(resp.Categories, dto.CategoryDTO{ID: o.ID, Name: o.Name, Level: o.Level})
	}
	c.JSON(http.StatusOK, resp)
}

// GenerateTestHandler godoc
// @Summary Generate a paid skill test
// @Description Verifies the on-chain payment signature, then generates and persists a test for the chosen topic. Each signature is accepted exactly once.
// @Tags Tests
// @Accept json
// @Produce json
// @Param request body dto.GenerateTestRequest true "Topic path, wallet address and payment signature"
// @Success 201 {object} dto.GenerateTestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 402 {object} dto.ErrorResponse "Payment verification declined"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/generate [post]
func (ctrl *Controller) GenerateTestHandler(c *gin.Context) {
	var req dto.GenerateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	resp, err := ctrl.testSvc.Generate(c.Request.Context(), req)
	if err != nil {
		var verr *service.VerificationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: verr.Error()})
			return
		}
		log.Error().Err(err).Str("wallet", req.WalletAddress).Msg("GenerateTest: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to generate test"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetTestHandler godoc
// @Summary Get a test for taking
// @Description Returns the test with its questions. Correct answers and per-question points are never included.
// @Tags Tests
// @Produce json
// @Param testId path string true "Test ID"
// @Success 200 {object} dto.TestPublicDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{testId} [get]
func (ctrl *Controller) GetTestHandler(c *gin.Context) {
	testID := c.Param("testId")

	test, err := ctrl.testSvc.GetTest(testID)
	if err != nil {
		if errors.Is(err, service.ErrTestNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Test not found"})
			return
		}
		log.Error().Err(err).Str("testID", testID).Msg("GetTest: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load test"})
		return
	}
	c.JSON(http.StatusOK, test)
}

// SubmitTestHandler godoc
// @Summary Submit test answers for grading
// @Description Grades the submitted answers, records the result, and for passing scores mints a certificate NFT and credits the reward. A test can be submitted once.
// @Tags Tests
// @Accept json
// @Produce json
// @Param request body dto.SubmitTestRequest true "Test ID, wallet address and answer indices"
// @Success 200 {object} dto.TestResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 409 {object} dto.ErrorResponse "Test already submitted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/submit [post]
func (ctrl *Controller) SubmitTestHandler(c *gin.Context) {
	var req dto.SubmitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	result, err := ctrl.scoringSvc.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTestNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Test not found"})
		case errors.Is(err, service.ErrAlreadySubmitted):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Test has already been submitted"})
		default:
			log.Error().Err(err).Str("testID", req.TestID).Msg("SubmitTest: service error")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to grade submission"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUserStatsHandler godoc
// @Summary Get aggregate stats for a wallet
// @Description Returns test counts, success rate, total SOL earned and the wallet's certificates. Wallets with no history get zeroed stats.
// @Tags Users
// @Produce json
// @Param walletAddress path string true "Solana wallet address"
// @Success 200 {object} dto.UserStatsDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/stats/{walletAddress} [get]
func (ctrl *Controller) GetUserStatsHandler(c *gin.Context) {
	walletAddress := c.Param("walletAddress")

	stats, err := ctrl.scoringSvc.GetUserStats(walletAddress)
	if err != nil {
		log.Error().Err(err).Str("wallet", walletAddress).Msg("GetUserStats: service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to load user stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
