package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"

	"github.com/skillchain/skillchain-api/config"
)

const geminiModel = "gemini-2.5-flash"

// generationTimeout bounds every outbound Gemini call so a hung generation
// cannot pin a request goroutine indefinitely.
const generationTimeout = 60 * time.Second

// GeneratedQuestion is one multiple-choice item produced by the AI
// collaborator, before it is attached to a persisted Test.
type GeneratedQuestion struct {
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctAnswer"`
}

// CategoryOption is one entry of the category drill-down used by the client
// before purchasing a test.
type CategoryOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// QuestionGenerator is the external AI collaborator boundary.
type QuestionGenerator interface {
	// GenerateQuestions returns exactly the configured number of questions
	// for the category path, or an error. No partial results.
	GenerateQuestions(ctx context.Context, mainCategory, narrowCategory, specificCategory string) ([]GeneratedQuestion, error)
	GenerateCategories(ctx context.Context, level int, parentCategory string) ([]CategoryOption, error)
}

type geminiQuestionGenerator struct {
	client *genai.GenerativeModel
	cfg    config.Scoring
}

func NewGeminiQuestionGenerator(cfg *config.Config) (QuestionGenerator, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Question generation will be non-functional.")
		return &geminiQuestionGenerator{cfg: cfg.Scoring, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(geminiModel)
	model.ResponseMIMEType = "application/json"
	return &geminiQuestionGenerator{client: model, cfg: cfg.Scoring}, nil
}

type generatedTestPayload struct {
	Questions []GeneratedQuestion `json:"questions"`
}

func (g *geminiQuestionGenerator) GenerateQuestions(ctx context.Context, mainCategory, narrowCategory, specificCategory string) ([]GeneratedQuestion, error) {
	if g.client == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	n := g.cfg.QuestionsPerTest
	topic := fmt.Sprintf("%s > %s > %s", mainCategory, narrowCategory, specificCategory)

	var prompt strings.Builder
	prompt.WriteString("You are an expert test creator.\n")
	fmt.Fprintf(&prompt, "Generate exactly %d multiple-choice questions about %q.\n", n, topic)
	prompt.WriteString("Each question must:\n")
	prompt.WriteString("1. Be clear and specific\n")
	prompt.WriteString("2. Have exactly 4 options\n")
	prompt.WriteString("3. Have only one correct answer\n")
	prompt.WriteString("4. Be challenging but fair, testing practical knowledge\n\n")
	prompt.WriteString("Respond with JSON in this exact format:\n")
	prompt.WriteString(`{"questions":[{"question":"...","options":["...","...","...","..."],"correctAnswer":0}]}` + "\n")
	prompt.WriteString("correctAnswer is the index (0-3) of the correct option.")

	raw, err := g.generate(ctx, prompt.String())
	if err != nil {
		return nil, err
	}

	questions, err := parseGeneratedQuestions(raw, n)
	if err != nil {
		log.Error().Err(err).Str("raw", raw).Msg("Rejected generated questions")
		return nil, err
	}
	return questions, nil
}

// parseGeneratedQuestions decodes a generation response and enforces the
// contract: exactly n questions, four options each, correct index in 0..3.
// No partial results; one bad question rejects the whole batch.
func parseGeneratedQuestions(raw string, n int) ([]GeneratedQuestion, error) {
	var payload generatedTestPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("parsing generated questions: %w", err)
	}

	if len(payload.Questions) != n {
		return nil, fmt.Errorf("generator returned %d questions, expected %d", len(payload.Questions), n)
	}
	for i, q := range payload.Questions {
		if len(q.Options) != 4 {
			return nil, fmt.Errorf("question %d has %d options, expected 4", i+1, len(q.Options))
		}
		if q.CorrectOption < 0 || q.CorrectOption > 3 {
			return nil, fmt.Errorf("question %d has correct answer index %d out of range", i+1, q.CorrectOption)
		}
	}

	return payload.Questions, nil
}

type generatedCategoriesPayload struct {
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
}

func (g *geminiQuestionGenerator) GenerateCategories(ctx context.Context, level int, parentCategory string) ([]CategoryOption, error) {
	if g.client == nil {
		return nil, fmt.Errorf("gemini client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	var prompt strings.Builder
	prompt.WriteString("You are helping users pick a professional skill to be tested on.\n")
	switch {
	case level <= 1:
		prompt.WriteString("List 8 broad professional skill domains (e.g. \"Software Development\", \"Data & Analytics\").\n")
	case level == 2:
		fmt.Fprintf(&prompt, "List 8 narrower skill areas within %q.\n", parentCategory)
	default:
		fmt.Fprintf(&prompt, "List 8 specific, testable skills within %q.\n", parentCategory)
	}
	prompt.WriteString("Respond with JSON in this exact format:\n")
	prompt.WriteString(`{"categories":[{"name":"..."}]}`)

	raw, err := g.generate(ctx, prompt.String())
	if err != nil {
		return nil, err
	}

	var payload generatedCategoriesPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Error().Err(err).Str("raw", raw).Msg("Failed to parse generated categories")
		return nil, fmt.Errorf("parsing generated categories: %w", err)
	}
	if len(payload.Categories) == 0 {
		return nil, fmt.Errorf("generator returned no categories")
	}

	options := make([]CategoryOption, 0, len(payload.Categories))
	for _, c := range payload.Categories {
		options = append(options, CategoryOption{
			ID:    slug.Make(c.Name),
			Name:  c.Name,
			Level: level,
		})
	}
	return options, nil
}

// generate runs one JSON-mode Gemini call and concatenates the text parts of
// the first candidate.
func (g *geminiQuestionGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error")
		return "", fmt.Errorf("gemini api: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no content")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return out.String(), nil
}
