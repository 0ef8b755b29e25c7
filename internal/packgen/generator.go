package packgen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arnavsud/stethoquest/internal/llm"
	"github.com/arnavsud/stethoquest/internal/profile"
)

// packPalette cycles through accent colors for new packs.
var packPalette = []string{"#7C3AED", "#2563EB", "#059669", "#D97706", "#DC2626", "#0891B2"}

// Generator produces study packs and additional questions via the LLM
// provider.
type Generator struct {
	provider llm.Provider
	cfg      Config

	// Now is the clock; defaults to time.Now when nil.
	Now func() time.Time
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// GeneratePack builds a complete study pack from the input. Quiz items that
// fail structural checks are dropped; the pack is rejected only when no
// valid standard quiz question survives.
func (g *Generator) GeneratePack(ctx context.Context, input GenerateInput) (*profile.StudyPack, error) {
	ctx = llm.WithPurpose(ctx, "pack-gen")

	req := llm.Request{
		System: packSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPackUserMessage(input, g.cfg)},
		},
		Schema:      PackSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("pack generation: %w", err)
	}

	var out packOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse pack response: %w", err)
	}

	title := out.Title
	if title == "" {
		title = input.Topic
	}

	quiz := sanitizeQuestions(out.Quiz)
	if len(quiz) == 0 {
		return nil, fmt.Errorf("pack generation: no valid quiz questions for %q", input.Topic)
	}

	pack := &profile.StudyPack{
		ID:                uuid.New().String(),
		Title:             title,
		Color:             packPalette[len(title)%len(packPalette)],
		Lesson:            sanitizeLesson(out.Lesson),
		Quiz:              quiz,
		ExamQuiz:          sanitizeQuestions(out.ExamQuiz),
		FillBlanks:        sanitizeFillBlanks(out.FillBlanks),
		Glossary:          sanitizeGlossary(out.Glossary),
		OriginalQuizCount: len(quiz),
		CreatedAt:         g.now(),
	}
	return pack, nil
}

// GenerateQuestions produces additional questions for an existing pack.
// Returns an error when no generated question survives sanitization.
func (g *Generator) GenerateQuestions(ctx context.Context, input QuestionsInput) ([]profile.QuizQuestion, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: questionsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuestionsUserMessage(input, g.cfg)},
		},
		Schema:      QuestionsSchema,
		MaxTokens:   g.cfg.QuestionMaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation: %w", err)
	}

	var out questionsOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse questions response: %w", err)
	}

	qs := sanitizeQuestions(out.Questions)
	if len(qs) == 0 {
		return nil, fmt.Errorf("question generation: no valid questions for %q", input.Topic)
	}
	return qs, nil
}
