// Package tutor answers free-form study questions against the content of a
// study pack.
package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arnavsud/stethoquest/internal/llm"
)

// Apology is shown instead of an answer when the provider fails.
const Apology = "Sorry, I couldn't reach the tutor right now. Please try again in a moment."

const systemPrompt = `You are a patient medical tutor helping a student work through study material.

Rules:
- Answer the student's question using the provided lesson context. When the lesson doesn't cover it, answer from general medical knowledge and say so.
- Be concise: a few short paragraphs at most. Prefer plain language and name the clinical reasoning.
- When a quiz question is provided as context, explain the underlying concept; do not just restate the listed correct answer.
- Format the answer as markdown. Use short bullet lists where they aid recall.`

// Config controls the tutor's LLM usage.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxContextChars truncates the lesson context before prompting.
	MaxContextChars int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       1024,
		Temperature:     0.4,
		MaxContextChars: 16000,
	}
}

// Service answers tutor questions via the LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a tutor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Input carries one tutor question and its surrounding context.
type Input struct {
	// LessonContext is the rendered lesson text of the active pack.
	LessonContext string

	// QuestionContext optionally describes the quiz question the student is
	// stuck on.
	QuestionContext string

	// Question is the student's free-form question.
	Question string
}

// Ask returns a markdown answer to the student's question. On provider
// failure it returns the apology string along with the error, so callers can
// render something useful either way.
func (s *Service) Ask(ctx context.Context, input Input) (string, error) {
	ctx = llm.WithPurpose(ctx, "tutor")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: s.buildUserMessage(input)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return Apology, fmt.Errorf("tutor: %w", err)
	}
	return decodeAnswer(resp.Content), nil
}

func (s *Service) buildUserMessage(input Input) string {
	var b strings.Builder

	if input.LessonContext != "" {
		lesson := input.LessonContext
		if s.cfg.MaxContextChars > 0 && len(lesson) > s.cfg.MaxContextChars {
			lesson = lesson[:s.cfg.MaxContextChars]
		}
		b.WriteString("Lesson context:\n")
		b.WriteString(lesson)
		b.WriteString("\n\n")
	}
	if input.QuestionContext != "" {
		b.WriteString("Quiz question the student is looking at:\n")
		b.WriteString(input.QuestionContext)
		b.WriteString("\n\n")
	}
	b.WriteString("Student's question:\n")
	b.WriteString(input.Question)
	return b.String()
}

// decodeAnswer unwraps the response content. Providers return plain text for
// schemaless requests, but some wrap it as a JSON string.
func decodeAnswer(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
