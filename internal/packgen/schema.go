package packgen

import "github.com/arnavsud/stethoquest/internal/llm"

// questionSchema is the shared shape of one quiz item.
var questionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The question stem shown to the learner",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "4-5 answer options",
		},
		"correct_answers": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "The correct option texts, verbatim. Usually one; more for select-all-that-apply.",
		},
		"difficulty": map[string]any{
			"type":        "string",
			"enum":        []any{"easy", "medium", "hard"},
			"description": "Difficulty tier",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Why the correct answers are correct, 1-3 sentences",
		},
	},
	"required":             []any{"question", "options", "correct_answers", "difficulty", "explanation"},
	"additionalProperties": false,
}

// PackSchema defines the JSON schema for full study pack generation.
var PackSchema = &llm.Schema{
	Name:        "study-pack",
	Description: "A complete medical study pack: lesson, quizzes, fill-in-the-blanks, and glossary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short pack title, max 60 characters",
			},
			"lesson": map[string]any{
				"type":        "array",
				"description": "Ordered lesson content blocks",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"kind": map[string]any{
							"type": "string",
							"enum": []any{"heading", "text", "list", "table"},
						},
						"text": map[string]any{
							"type":        "string",
							"description": "Block text for heading and text kinds",
						},
						"items": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Bullet items for list kind",
						},
						"headers": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Column headers for table kind",
						},
						"rows": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
							"description": "Table rows for table kind",
						},
					},
					"required":             []any{"kind", "text", "items", "headers", "rows"},
					"additionalProperties": false,
				},
			},
			"quiz": map[string]any{
				"type":        "array",
				"items":       questionSchema,
				"description": "8-12 standard quiz questions",
			},
			"exam_quiz": map[string]any{
				"type":        "array",
				"items":       questionSchema,
				"description": "5-8 harder exam-style questions (clinical vignettes)",
			},
			"fill_blanks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"sentence": map[string]any{
							"type":        "string",
							"description": "A sentence containing exactly one ___ placeholder",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The word or phrase that fills the blank",
						},
					},
					"required":             []any{"sentence", "answer"},
					"additionalProperties": false,
				},
				"description": "5-8 fill-in-the-blank exercises",
			},
			"glossary": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"term":       map[string]any{"type": "string"},
						"definition": map[string]any{"type": "string"},
					},
					"required":             []any{"term", "definition"},
					"additionalProperties": false,
				},
				"description": "Key terms with concise definitions",
			},
		},
		"required":             []any{"title", "lesson", "quiz", "exam_quiz", "fill_blanks", "glossary"},
		"additionalProperties": false,
	},
}

// QuestionsSchema defines the JSON schema for generate-more responses.
var QuestionsSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "Additional quiz questions for an existing study pack",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": questionSchema,
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
