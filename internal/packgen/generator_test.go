package packgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavsud/stethoquest/internal/llm"
	"github.com/arnavsud/stethoquest/internal/profile"
)

func packJSON(t *testing.T, out packOutput) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(out)
	require.NoError(t, err)
	return raw
}

func validQuestion(stem string) questionOut {
	return questionOut{
		Question:       stem,
		Options:        []string{"A", "B", "C", "D"},
		CorrectAnswers: []string{"A"},
		Difficulty:     "easy",
		Explanation:    "Because A.",
	}
}

func TestGeneratePack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: packJSON(t, packOutput{
			Title: "Beta Blockers",
			Lesson: []lessonBlockOut{
				{Kind: "heading", Text: "Mechanism"},
				{Kind: "text", Text: "Beta blockers antagonize beta adrenergic receptors."},
				{Kind: "list", Items: []string{"Propranolol", "Metoprolol"}},
			},
			Quiz:       []questionOut{validQuestion("Which is cardioselective?")},
			ExamQuiz:   []questionOut{validQuestion("A 54-year-old man presents with...")},
			FillBlanks: []fillBlankOut{{Sentence: "Propranolol is a ___ beta blocker.", Answer: "non-selective"}},
			Glossary:   []glossaryItemOut{{Term: "Bradycardia", Definition: "Slow heart rate."}},
		}),
	})

	g := New(mock, DefaultConfig())
	pack, err := g.GeneratePack(context.Background(), GenerateInput{Topic: "Beta blockers"})
	require.NoError(t, err)

	assert.Equal(t, "Beta Blockers", pack.Title)
	assert.NotEmpty(t, pack.ID)
	assert.Len(t, pack.Lesson, 3)
	assert.Len(t, pack.Quiz, 1)
	assert.Len(t, pack.ExamQuiz, 1)
	assert.Len(t, pack.FillBlanks, 1)
	assert.Len(t, pack.Glossary, 1)
	assert.Equal(t, 1, pack.OriginalQuizCount)
	assert.NotEmpty(t, pack.Quiz[0].ID)
	assert.NotEmpty(t, pack.Color)
}

func TestGeneratePackDropsInvalidQuestions(t *testing.T) {
	badSubset := validQuestion("Correct answer not among options?")
	badSubset.CorrectAnswers = []string{"Z"}

	noAnswers := validQuestion("No correct answers?")
	noAnswers.CorrectAnswers = nil

	tooFewOptions := validQuestion("One option only?")
	tooFewOptions.Options = []string{"A"}

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: packJSON(t, packOutput{
			Title: "Pharmacology",
			Quiz:  []questionOut{validQuestion("Keep me"), badSubset, noAnswers, tooFewOptions},
		}),
	})

	g := New(mock, DefaultConfig())
	pack, err := g.GeneratePack(context.Background(), GenerateInput{Topic: "Pharmacology"})
	require.NoError(t, err)

	require.Len(t, pack.Quiz, 1)
	assert.Equal(t, "Keep me", pack.Quiz[0].Question)
	assert.Equal(t, 1, pack.OriginalQuizCount)
}

func TestGeneratePackRejectsEmptyQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: packJSON(t, packOutput{Title: "Empty"}),
	})

	g := New(mock, DefaultConfig())
	_, err := g.GeneratePack(context.Background(), GenerateInput{Topic: "Empty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid quiz questions")
}

func TestGeneratePackIncludesSourceMaterial(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: packJSON(t, packOutput{
			Title: "ECG Basics",
			Quiz:  []questionOut{validQuestion("What does the P wave represent?")},
		}),
	})

	g := New(mock, DefaultConfig())
	_, err := g.GeneratePack(context.Background(), GenerateInput{
		Topic:      "ECG",
		SourceText: "The P wave represents atrial depolarization.",
	})
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "Source material:")
	assert.Contains(t, msg, "atrial depolarization")
}

func TestGenerateQuestionsDedupPrompt(t *testing.T) {
	raw, err := json.Marshal(questionsOutput{
		Questions: []questionOut{validQuestion("Fresh question?")},
	})
	require.NoError(t, err)

	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	g := New(mock, DefaultConfig())

	qs, err := g.GenerateQuestions(context.Background(), QuestionsInput{
		Topic:          "Beta blockers",
		Count:          5,
		PriorQuestions: []string{"Which is cardioselective?"},
	})
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.NotEmpty(t, qs[0].ID)

	require.Len(t, mock.Calls, 1)
	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "Count: 5")
	assert.Contains(t, msg, "Which is cardioselective?")
}

func TestGenerateQuestionsProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue yields provider unavailable

	g := New(mock, DefaultConfig())
	_, err := g.GenerateQuestions(context.Background(), QuestionsInput{Topic: "ECG", Count: 3})
	require.Error(t, err)
}

func TestSanitizeFillBlanks(t *testing.T) {
	out := sanitizeFillBlanks([]fillBlankOut{
		{Sentence: "The SA node is the ___ of the heart.", Answer: "pacemaker"},
		{Sentence: "No placeholder here.", Answer: "x"},
		{Sentence: "Missing ___ answer.", Answer: ""},
	})
	require.Len(t, out, 1)
	assert.Equal(t, "pacemaker", out[0].Answer)
}

func TestParseDifficultyDefaultsToMedium(t *testing.T) {
	assert.Equal(t, profile.DifficultyEasy, parseDifficulty("easy"))
	assert.Equal(t, profile.DifficultyHard, parseDifficulty("hard"))
	assert.Equal(t, profile.DifficultyMedium, parseDifficulty("medium"))
	assert.Equal(t, profile.DifficultyMedium, parseDifficulty("expert"))
	assert.Equal(t, profile.DifficultyMedium, parseDifficulty(""))
}

func TestBuildDedupCapsList(t *testing.T) {
	prior := make([]string, 40)
	for i := range prior {
		prior[i] = strings.Repeat("q", 3)
	}
	got := buildDedup(prior, 30)
	assert.Equal(t, 30, strings.Count(got, "\n")+1)
	assert.Equal(t, "None", buildDedup(nil, 30))
}
