package game

import (
	"context"
	"fmt"

	"github.com/arnavsud/stethoquest/internal/notify"
	"github.com/arnavsud/stethoquest/internal/packgen"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/tutor"
)

// GenerateMoreXPPerQuestion is the flat XP paid per generated question.
const GenerateMoreXPPerQuestion = 2

// CreatePack generates a new study pack from a topic and optional source
// material, then registers it on the profile. Only one generation runs at a
// time.
func (s *Service) CreatePack(ctx context.Context, topic, sourceText string) (*profile.StudyPack, error) {
	if err := s.beginGenerate(); err != nil {
		return nil, err
	}
	defer s.generating.Store(false)

	gctx, cancel := context.WithTimeout(ctx, GenTimeout)
	defer cancel()

	pack, err := s.generator.GeneratePack(gctx, packgen.GenerateInput{
		Topic:      topic,
		SourceText: sourceText,
	})
	if err != nil {
		s.Feed.Notify(notify.KindError, fmt.Sprintf("Pack generation failed: %v", err))
		return nil, err
	}

	s.Profile.StudyPacks = append(s.Profile.StudyPacks, pack)
	s.Feed.Notify(notify.KindInfo, fmt.Sprintf("Created pack: %s", pack.Title))

	s.Quests.UpdateProgress(profile.CategoryCreatePack, 1)
	s.Streak.RecordActivity(ctx)
	s.Badges.Sweep(ctx)
	s.Persist(ctx)
	return pack, nil
}

// GenerateMoreQuestions extends a pack's question list for the given
// variant. The live session, if any, continues into the new questions. On
// failure the pack and session are left untouched.
func (s *Service) GenerateMoreQuestions(ctx context.Context, packID string, variant profile.QuizVariant, count int) ([]profile.QuizQuestion, error) {
	pack := s.Profile.Pack(packID)
	if pack == nil {
		return nil, fmt.Errorf("pack %s not found", packID)
	}
	if err := s.beginGenerate(); err != nil {
		return nil, err
	}
	defer s.generating.Store(false)

	gctx, cancel := context.WithTimeout(ctx, GenTimeout)
	defer cancel()

	prior := make([]string, 0, len(pack.Questions(variant)))
	for _, q := range pack.Questions(variant) {
		prior = append(prior, q.Question)
	}

	qs, err := s.generator.GenerateQuestions(gctx, packgen.QuestionsInput{
		Topic:          pack.Title,
		Count:          count,
		Exam:           variant == profile.VariantExam,
		PriorQuestions: prior,
	})
	if err != nil {
		s.Feed.Notify(notify.KindError, fmt.Sprintf("Question generation failed: %v", err))
		return nil, err
	}

	pack.AppendQuestions(variant, qs)
	s.Profile.GeneratedQuestionCount += len(qs)

	// Extend the live session so play continues past the old end.
	if sess := liveSession(pack, variant); sess != nil {
		ids := make([]string, len(qs))
		for i, q := range qs {
			ids[i] = q.ID
		}
		sess.ActiveQuestionIDs = append(sess.ActiveQuestionIDs, ids...)
		sess.ShowingResults = false
	}

	s.Ledger.GrantXP(ctx, float64(GenerateMoreXPPerQuestion*len(qs)), pack.ID)
	s.Badges.Sweep(ctx)
	s.Persist(ctx)
	return qs, nil
}

// liveSession returns the existing session slot without lazily creating one.
func liveSession(pack *profile.StudyPack, variant profile.QuizVariant) *profile.QuizSession {
	if variant == profile.VariantExam {
		return pack.ExamSession
	}
	return pack.QuizSession
}

// AskTutor answers a free-form question against a pack's lesson. The answer
// is markdown. Counts toward the tutor quest and badge progress even when
// the provider apologizes.
func (s *Service) AskTutor(ctx context.Context, packID, questionContext, question string) (string, error) {
	if s.tutor == nil {
		return "", fmt.Errorf("no LLM provider configured")
	}
	if err := s.beginGenerate(); err != nil {
		return "", err
	}
	defer s.generating.Store(false)

	gctx, cancel := context.WithTimeout(ctx, GenTimeout)
	defer cancel()

	lessonCtx := ""
	if pack := s.Profile.Pack(packID); pack != nil {
		lessonCtx = renderLessonText(pack.Lesson)
	}

	answer, err := s.tutor.Ask(gctx, tutor.Input{
		LessonContext:   lessonCtx,
		QuestionContext: questionContext,
		Question:        question,
	})

	s.Profile.QuestionsAskedCount++
	s.Quests.UpdateProgress(profile.CategoryAskTutor, 1)
	s.Streak.RecordActivity(ctx)
	s.Badges.Sweep(ctx)
	s.Persist(ctx)
	return answer, err
}

// renderLessonText flattens lesson blocks into plain text for LLM context.
func renderLessonText(blocks []profile.LessonBlock) string {
	var out []byte
	for _, b := range blocks {
		switch b.Kind {
		case "heading", "text":
			out = append(out, b.Text...)
			out = append(out, '\n')
		case "list":
			for _, item := range b.Items {
				out = append(out, "- "...)
				out = append(out, item...)
				out = append(out, '\n')
			}
		case "table":
			for _, row := range b.Rows {
				for i, cell := range row {
					if i > 0 {
						out = append(out, " | "...)
					}
					out = append(out, cell...)
				}
				out = append(out, '\n')
			}
		}
	}
	return string(out)
}
