package tutor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavsud/stethoquest/internal/llm"
)

func TestAsk(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Beta blockers reduce heart rate by blocking beta-1 receptors."`),
	})
	s := NewService(mock, DefaultConfig())

	answer, err := s.Ask(context.Background(), Input{
		LessonContext:   "Beta blockers antagonize beta adrenergic receptors.",
		QuestionContext: "Which beta blocker is cardioselective?",
		Question:        "Why do beta blockers lower heart rate?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Beta blockers reduce heart rate by blocking beta-1 receptors.", answer)

	require.Len(t, mock.Calls, 1)
	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "Lesson context:")
	assert.Contains(t, msg, "Quiz question the student is looking at:")
	assert.Contains(t, msg, "Why do beta blockers lower heart rate?")
	assert.Nil(t, mock.Calls[0].Schema)
}

func TestAskPlainTextResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("The SA node sets the heart's rhythm."),
	})
	s := NewService(mock, DefaultConfig())

	answer, err := s.Ask(context.Background(), Input{Question: "What does the SA node do?"})
	require.NoError(t, err)
	assert.Equal(t, "The SA node sets the heart's rhythm.", answer)
}

func TestAskProviderFailureReturnsApology(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue yields provider unavailable
	s := NewService(mock, DefaultConfig())

	answer, err := s.Ask(context.Background(), Input{Question: "anything"})
	require.Error(t, err)
	assert.Equal(t, Apology, answer)
}

func TestBuildUserMessageTruncatesLesson(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxContextChars = 10
	s := NewService(llm.NewMockProvider(), cfg)

	msg := s.buildUserMessage(Input{
		LessonContext: "0123456789ABCDEF",
		Question:      "q",
	})
	assert.Contains(t, msg, "0123456789")
	assert.NotContains(t, msg, "ABCDEF")
}
