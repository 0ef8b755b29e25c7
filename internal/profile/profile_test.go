package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlockBadgeIsIdempotent(t *testing.T) {
	p := New("sam")
	assert.True(t, p.UnlockBadge("first_pack"))
	assert.False(t, p.UnlockBadge("first_pack"))
	assert.True(t, p.HasBadge("first_pack"))
}

func TestRecalcProgress(t *testing.T) {
	sp := &StudyPack{
		ID: "pack-1",
		Quiz: []QuizQuestion{
			{ID: "q1"}, {ID: "q2"}, {ID: "q3"}, {ID: "q4"},
		},
		OriginalQuizCount: 4,
	}
	correct := map[string]bool{"q1": true, "q2": true}

	completed := sp.RecalcProgress(correct)
	assert.False(t, completed)
	assert.Equal(t, 50, sp.Progress)

	// Progress never moves down.
	completed = sp.RecalcProgress(map[string]bool{"q1": true})
	assert.False(t, completed)
	assert.Equal(t, 50, sp.Progress)

	correct["q3"] = true
	correct["q4"] = true
	completed = sp.RecalcProgress(correct)
	assert.True(t, completed)
	assert.Equal(t, 100, sp.Progress)

	// Re-reaching 100 is not a new completion.
	assert.False(t, sp.RecalcProgress(correct))
}

func TestRecalcProgressClampsGeneratedQuestions(t *testing.T) {
	// Two generated questions beyond the original four: answering everything
	// still caps at 100.
	sp := &StudyPack{
		ID: "pack-1",
		Quiz: []QuizQuestion{
			{ID: "q1"}, {ID: "q2"}, {ID: "q3"}, {ID: "q4"}, {ID: "q5"}, {ID: "q6"},
		},
		OriginalQuizCount: 4,
	}
	correct := map[string]bool{
		"q1": true, "q2": true, "q3": true, "q4": true, "q5": true, "q6": true,
	}
	sp.RecalcProgress(correct)
	assert.Equal(t, 100, sp.Progress)
}

func TestRecalcProgressEmptyPack(t *testing.T) {
	sp := &StudyPack{ID: "pack-1"}
	assert.False(t, sp.RecalcProgress(map[string]bool{"q1": true}))
	assert.Zero(t, sp.Progress)
}

func TestSessionLazyCreationAndReset(t *testing.T) {
	sp := &StudyPack{
		ID:       "pack-1",
		Quiz:     []QuizQuestion{{ID: "q1"}, {ID: "q2"}},
		ExamQuiz: []QuizQuestion{{ID: "e1"}},
	}

	s := sp.Session(VariantStandard)
	require.NotNil(t, s)
	assert.Same(t, s, sp.Session(VariantStandard))

	exam := sp.Session(VariantExam)
	assert.NotSame(t, s, exam)

	sp.ResetSession(VariantStandard)
	assert.Nil(t, sp.QuizSession)
	assert.Same(t, exam, sp.ExamSession)
}

func TestPurgeDeleted(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.Local)
	p := New("sam")
	p.StudyPacks = []*StudyPack{
		{ID: "old", Deleted: true, DeletedAt: now.Add(-DeletedRetention - time.Hour)},
		{ID: "recent", Deleted: true, DeletedAt: now.Add(-24 * time.Hour)},
		{ID: "live"},
	}
	p.Folders = []*Folder{
		{ID: "f-old", Deleted: true, DeletedAt: now.Add(-DeletedRetention - time.Hour)},
		{ID: "f-live"},
	}

	purged := p.PurgeDeleted(now)
	assert.Equal(t, 2, purged)
	assert.Nil(t, p.Pack("old"))
	assert.NotNil(t, p.Pack("recent"))
	assert.NotNil(t, p.Pack("live"))
	assert.Nil(t, p.Folder("f-old"))
	assert.NotNil(t, p.Folder("f-live"))
}

func TestMoveFolderRejectsCycles(t *testing.T) {
	p := New("sam")
	p.Folders = []*Folder{
		{ID: "a"},
		{ID: "b", ParentID: "a"},
		{ID: "c", ParentID: "b"},
	}

	assert.Error(t, p.MoveFolder("a", "a"))
	assert.Error(t, p.MoveFolder("a", "c")) // c is a descendant of a
	assert.Error(t, p.MoveFolder("a", "missing"))
	assert.Error(t, p.MoveFolder("missing", "a"))

	require.NoError(t, p.MoveFolder("c", "a"))
	assert.Equal(t, "a", p.Folder("c").ParentID)

	require.NoError(t, p.MoveFolder("c", ""))
	assert.Equal(t, "", p.Folder("c").ParentID)
}

func TestMovePack(t *testing.T) {
	p := New("sam")
	p.Folders = []*Folder{{ID: "f1"}}
	p.StudyPacks = []*StudyPack{{ID: "pack-1"}}

	require.NoError(t, p.MovePack("pack-1", "f1"))
	assert.Equal(t, "f1", p.Pack("pack-1").FolderID)

	assert.Error(t, p.MovePack("pack-1", "missing"))
	assert.Error(t, p.MovePack("missing", "f1"))

	require.NoError(t, p.MovePack("pack-1", ""))
	assert.Equal(t, "", p.Pack("pack-1").FolderID)
}

func TestExportImportRoundTrip(t *testing.T) {
	p := New("sam")
	p.XP = 420
	p.StethoCoins = 77
	p.Streak = 4
	p.UnlockBadge("first_pack")
	p.StudyPacks = []*StudyPack{{ID: "pack-1", Title: "Cardiology", Progress: 60}}

	data, err := p.ExportJSON()
	require.NoError(t, err)

	got, err := ImportJSON(data)
	require.NoError(t, err)
	assert.Equal(t, "sam", got.Name)
	assert.Equal(t, 420, got.XP)
	assert.Equal(t, 77, got.StethoCoins)
	assert.True(t, got.HasBadge("first_pack"))
	require.Len(t, got.StudyPacks, 1)
	assert.Equal(t, "Cardiology", got.StudyPacks[0].Title)
}

func TestImportJSONRejectsInvalidBackups(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{not json`},
		{"missing name", `{"studyPacks": []}`},
		{"empty name", `{"name": "", "studyPacks": []}`},
		{"packs not an array", `{"name": "sam", "studyPacks": {}}`},
		{"missing packs", `{"name": "sam"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportJSON([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestCloneIsDeepCopy(t *testing.T) {
	p := New("sam")
	p.XP = 100
	p.CorrectlyAnsweredQuizIDs["q1"] = true
	p.StudyPacks = []*StudyPack{{ID: "pack-1", Title: "Cardiology"}}

	c, err := p.Clone()
	require.NoError(t, err)
	require.NotSame(t, p, c)

	p.XP = 999
	p.CorrectlyAnsweredQuizIDs["q2"] = true
	p.StudyPacks[0].Title = "Renamed"

	assert.Equal(t, 100, c.XP)
	assert.False(t, c.CorrectlyAnsweredQuizIDs["q2"])
	assert.Equal(t, "Cardiology", c.StudyPacks[0].Title)
	assert.NotNil(t, c.Inventory)
}

func TestImportJSONInitializesMaps(t *testing.T) {
	got, err := ImportJSON([]byte(`{"name": "sam", "studyPacks": []}`))
	require.NoError(t, err)
	assert.NotNil(t, got.UnlockedBadges)
	assert.NotNil(t, got.CorrectlyAnsweredQuizIDs)
	assert.NotNil(t, got.Inventory)
	assert.NotNil(t, got.BoostedPackIDs)
}
