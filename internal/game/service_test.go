package game

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavsud/stethoquest/internal/llm"
	"github.com/arnavsud/stethoquest/internal/packgen"
	"github.com/arnavsud/stethoquest/internal/profile"
	"github.com/arnavsud/stethoquest/internal/store"
	"github.com/arnavsud/stethoquest/internal/tutor"
)

func packResponse(t *testing.T, title string, questions int) llm.MockResponse {
	t.Helper()
	type q struct {
		Question       string   `json:"question"`
		Options        []string `json:"options"`
		CorrectAnswers []string `json:"correct_answers"`
		Difficulty     string   `json:"difficulty"`
		Explanation    string   `json:"explanation"`
	}
	qs := make([]q, questions)
	for i := range qs {
		qs[i] = q{
			Question:       "Question?",
			Options:        []string{"A", "B", "C"},
			CorrectAnswers: []string{"A"},
			Difficulty:     "easy",
			Explanation:    "Because.",
		}
	}
	raw, err := json.Marshal(map[string]any{"title": title, "quiz": qs})
	require.NoError(t, err)
	return llm.MockResponse{Content: raw}
}

func questionsResponse(t *testing.T, n int) llm.MockResponse {
	t.Helper()
	type q struct {
		Question       string   `json:"question"`
		Options        []string `json:"options"`
		CorrectAnswers []string `json:"correct_answers"`
		Difficulty     string   `json:"difficulty"`
		Explanation    string   `json:"explanation"`
	}
	qs := make([]q, n)
	for i := range qs {
		qs[i] = q{
			Question:       "Extra question?",
			Options:        []string{"A", "B"},
			CorrectAnswers: []string{"B"},
			Difficulty:     "medium",
			Explanation:    "Because.",
		}
	}
	raw, err := json.Marshal(map[string]any{"questions": qs})
	require.NoError(t, err)
	return llm.MockResponse{Content: raw}
}

func newTestService(responses ...llm.MockResponse) *Service {
	mock := llm.NewMockProvider(responses...)
	s := NewService(Options{
		Generator: packgen.New(mock, packgen.DefaultConfig()),
		Tutor:     tutor.NewService(mock, tutor.DefaultConfig()),
	})
	s.Profile.Name = "sam"
	return s
}

func TestCreatePack(t *testing.T) {
	s := newTestService(packResponse(t, "Cardiology", 3))
	ctx := context.Background()

	pack, err := s.CreatePack(ctx, "Cardiology", "")
	require.NoError(t, err)

	assert.Len(t, s.Profile.StudyPacks, 1)
	assert.Equal(t, "Cardiology", pack.Title)
	assert.Equal(t, 3, pack.OriginalQuizCount)
	assert.Equal(t, 1, s.Profile.Streak) // pack creation counts as activity
	assert.False(t, s.Generating())
}

func TestCreatePackFailureLeavesProfileUntouched(t *testing.T) {
	s := newTestService() // empty queue: provider unavailable
	ctx := context.Background()

	_, err := s.CreatePack(ctx, "Cardiology", "")
	require.Error(t, err)
	assert.Empty(t, s.Profile.StudyPacks)
	assert.False(t, s.Generating())
}

func TestGenerateMoreQuestionsExtendsLiveSession(t *testing.T) {
	s := newTestService(packResponse(t, "ECG", 2), questionsResponse(t, 3))
	ctx := context.Background()

	pack, err := s.CreatePack(ctx, "ECG", "")
	require.NoError(t, err)

	// Start a session, then extend it mid-pass.
	sess := pack.Session(profile.VariantStandard)
	require.Len(t, sess.ActiveQuestionIDs, 2)

	xpBefore := s.Profile.XP
	qs, err := s.GenerateMoreQuestions(ctx, pack.ID, profile.VariantStandard, 3)
	require.NoError(t, err)
	require.Len(t, qs, 3)

	assert.Len(t, pack.Quiz, 5)
	assert.Len(t, sess.ActiveQuestionIDs, 5)
	assert.Equal(t, 3, s.Profile.GeneratedQuestionCount)
	assert.Equal(t, xpBefore+3*GenerateMoreXPPerQuestion, s.Profile.XP)
	// Progress denominator stays at creation size.
	assert.Equal(t, 2, pack.OriginalQuizCount)
}

func TestGenerateMoreQuestionsFailureLeavesSessionUntouched(t *testing.T) {
	s := newTestService(packResponse(t, "ECG", 2))
	ctx := context.Background()

	pack, err := s.CreatePack(ctx, "ECG", "")
	require.NoError(t, err)
	sess := pack.Session(profile.VariantStandard)

	_, err = s.GenerateMoreQuestions(ctx, pack.ID, profile.VariantStandard, 3)
	require.Error(t, err)
	assert.Len(t, pack.Quiz, 2)
	assert.Len(t, sess.ActiveQuestionIDs, 2)
	assert.Equal(t, 0, s.Profile.GeneratedQuestionCount)
}

func TestAskTutorCountsEvenWhenProviderFails(t *testing.T) {
	s := newTestService() // empty queue: provider unavailable
	ctx := context.Background()

	answer, err := s.AskTutor(ctx, "", "", "Why beta blockers?")
	require.Error(t, err)
	assert.Equal(t, tutor.Apology, answer)
	assert.Equal(t, 1, s.Profile.QuestionsAskedCount)
}

func TestSingleFlightGuard(t *testing.T) {
	s := newTestService()
	require.NoError(t, s.beginGenerate())
	assert.True(t, s.Generating())

	_, err := s.CreatePack(context.Background(), "X", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")

	s.generating.Store(false)
}

func TestDeleteFolderReparentsContents(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	top, err := s.CreateFolder(ctx, "Medicine", "")
	require.NoError(t, err)
	child, err := s.CreateFolder(ctx, "Cardiology", top.ID)
	require.NoError(t, err)

	pack := &profile.StudyPack{ID: "p1", Title: "ECG", FolderID: child.ID}
	s.Profile.StudyPacks = append(s.Profile.StudyPacks, pack)

	require.NoError(t, s.DeleteFolder(ctx, child.ID))
	assert.True(t, child.Deleted)
	assert.Equal(t, top.ID, pack.FolderID)
}

func TestMoveFolderRejectsCycle(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	a, _ := s.CreateFolder(ctx, "A", "")
	b, _ := s.CreateFolder(ctx, "B", a.ID)

	err := s.MoveFolder(ctx, a.ID, b.ID)
	require.Error(t, err)
	assert.Equal(t, "", a.ParentID)
}

func TestImportRejectsInvalidBackup(t *testing.T) {
	s := newTestService()
	s.Profile.XP = 500

	err := s.Import(context.Background(), []byte(`{"name":"","studyPacks":[]}`))
	require.Error(t, err)
	assert.Equal(t, 500, s.Profile.XP) // untouched

	err = s.Import(context.Background(), []byte(`{"name":"alex","studyPacks":[],"xp":42}`))
	require.NoError(t, err)
	assert.Equal(t, 42, s.Profile.XP)
	assert.Equal(t, "alex", s.Profile.Name)
	assert.Same(t, s.Profile, s.Ledger.Profile)
}

// captureSnapshotRepo hands each saved snapshot to the test goroutine.
type captureSnapshotRepo struct {
	saved chan *store.Snapshot
}

func (r *captureSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	r.saved <- snap
	return nil
}

func (r *captureSnapshotRepo) Latest(context.Context) (*store.Snapshot, error) { return nil, nil }
func (r *captureSnapshotRepo) Prune(context.Context, int) error                { return nil }

func TestPersistDetachesSnapshotFromLiveProfile(t *testing.T) {
	repo := &captureSnapshotRepo{saved: make(chan *store.Snapshot, 1)}
	s := NewService(Options{SnapshotRepo: repo})
	s.Profile.Name = "sam"
	s.Profile.XP = 100
	s.Profile.CorrectlyAnsweredQuizIDs["q1"] = true

	s.Persist(context.Background())

	// The copy is taken before Persist returns, so mutations from the
	// event loop never reach the snapshot being written.
	s.Profile.CorrectlyAnsweredQuizIDs["q2"] = true
	s.Profile.XP = 999

	select {
	case snap := <-repo.saved:
		require.NotNil(t, snap.Profile)
		assert.NotSame(t, s.Profile, snap.Profile)
		assert.Equal(t, 100, snap.Profile.XP)
		assert.True(t, snap.Profile.CorrectlyAnsweredQuizIDs["q1"])
		assert.False(t, snap.Profile.CorrectlyAnsweredQuizIDs["q2"])
	case <-time.After(5 * time.Second):
		t.Fatal("snapshot was never saved")
	}
}

func TestResetClearsProfile(t *testing.T) {
	s := newTestService()
	s.Profile.XP = 100

	s.Reset(context.Background())
	assert.Equal(t, 0, s.Profile.XP)
	assert.False(t, s.Profile.LoggedIn())
}
