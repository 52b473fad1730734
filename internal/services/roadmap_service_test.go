package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/danverh/careeratlas/internal/matching"
	"github.com/danverh/careeratlas/internal/models"
	"github.com/danverh/careeratlas/internal/utils"
)

type fakePathRepo struct {
	paths map[string]*models.SavedPath // keyed user_id|career_id
}

func newFakePathRepo() *fakePathRepo {
	return &fakePathRepo{paths: map[string]*models.SavedPath{}}
}

func (r *fakePathRepo) Upsert(_ context.Context, p *models.SavedPath) error {
	cp := *p
	r.paths[p.UserID+"|"+p.CareerID] = &cp
	return nil
}

func (r *fakePathRepo) GetByUserAndCareer(_ context.Context, userID, careerID string) (*models.SavedPath, error) {
	p, ok := r.paths[userID+"|"+careerID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakePathRepo) ListByUser(_ context.Context, userID string) ([]models.SavedPath, error) {
	var out []models.SavedPath
	for _, p := range r.paths {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakePersonalizer struct {
	steps []models.RoadmapStep
	err   error
	calls int
}

func (p *fakePersonalizer) Personalize(_ context.Context, _ PersonalizeRequest) ([]models.RoadmapStep, error) {
	p.calls++
	return p.steps, p.err
}

func newRoadmapFixture(ai Personalizer) (RoadmapService, *fakePathRepo, *fakeMatchRepo) {
	paths := newFakePathRepo()
	matches := newFakeMatchRepo()
	svc := NewRoadmapService(paths, matches, newFakeProfileRepo(), ai, nil)
	return svc, paths, matches
}

func TestGenerateUsesAIWhenAvailable(t *testing.T) {
	ai := &fakePersonalizer{steps: []models.RoadmapStep{
		{Type: models.StepSkill, Title: "Learn Kubernetes"},
		{Type: models.StepMilestone, Title: "Ship a cluster"},
	}}
	svc, paths, _ := newRoadmapFixture(ai)

	p, err := svc.Generate(context.Background(), testUser, "career-1", "Platform Engineer")
	require.NoError(t, err)
	assert.Equal(t, 1, ai.calls)
	require.Len(t, p.Steps, 2)
	assert.Equal(t, "Learn Kubernetes", p.Steps[0].Title)
	assert.Equal(t, models.PathActive, p.Status)
	assert.Zero(t, p.ProgressPercentage)

	saved, err := paths.GetByUserAndCareer(context.Background(), testUser, "career-1")
	require.NoError(t, err)
	assert.Equal(t, p.PathID, saved.PathID)
}

func TestGenerateFallsBackToTemplateOnAIFailure(t *testing.T) {
	ai := &fakePersonalizer{err: errors.New("model unavailable")}
	svc, _, _ := newRoadmapFixture(ai)

	p, err := svc.Generate(context.Background(), testUser, "career-1", "Data Engineer")
	require.NoError(t, err, "AI failure must not fail generation")
	assert.Equal(t, 1, ai.calls)
	require.NotEmpty(t, p.Steps)
	// Template tail is always course, project, milestone.
	n := len(p.Steps)
	assert.Equal(t, models.StepCourse, p.Steps[n-3].Type)
	assert.Equal(t, models.StepProject, p.Steps[n-2].Type)
	assert.Equal(t, models.StepMilestone, p.Steps[n-1].Type)
}

func TestGenerateFeedsSkillGapIntoTemplate(t *testing.T) {
	svc, _, matches := newRoadmapFixture(nil)

	ex := matching.Explanation{
		MatchedSkills: []string{"Go"},
		MissingSkills: []string{"Terraform", "AWS"},
	}
	blob, err := json.Marshal(ex)
	require.NoError(t, err)
	require.NoError(t, matches.UpsertBatch(context.Background(), []*models.JobMatch{{
		ID: "m1", UserID: testUser, JobID: "career-1",
		MatchExplanation: datatypes.JSON(blob),
	}}))

	p, err := svc.Generate(context.Background(), testUser, "career-1", "Cloud Engineer")
	require.NoError(t, err)
	require.Len(t, p.Steps, 5, "two skill steps plus the fixed tail")
	assert.Equal(t, "Learn Terraform", p.Steps[0].Title)
	assert.Equal(t, "Learn AWS", p.Steps[1].Title)
}

func TestGenerateValidatesInput(t *testing.T) {
	svc, _, _ := newRoadmapFixture(nil)

	_, err := svc.Generate(context.Background(), testUser, "", "Engineer")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestGetNotFound(t *testing.T) {
	svc, _, _ := newRoadmapFixture(nil)

	_, err := svc.Get(context.Background(), testUser, "career-missing")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestListMineEmptyIsNotAnError(t *testing.T) {
	svc, _, _ := newRoadmapFixture(nil)

	got, err := svc.ListMine(context.Background(), testUser)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCompleteStepProgression(t *testing.T) {
	svc, _, matches := newRoadmapFixture(nil)

	ex := matching.Explanation{MissingSkills: []string{"Rust"}}
	blob, _ := json.Marshal(ex)
	require.NoError(t, matches.UpsertBatch(context.Background(), []*models.JobMatch{{
		ID: "m1", UserID: testUser, JobID: "career-1",
		MatchExplanation: datatypes.JSON(blob),
	}}))

	p, err := svc.Generate(context.Background(), testUser, "career-1", "Systems Programmer")
	require.NoError(t, err)
	require.Len(t, p.Steps, 4)

	p, err = svc.CompleteStep(context.Background(), testUser, "career-1", 0)
	require.NoError(t, err)
	assert.True(t, p.Steps[0].Completed)
	assert.InDelta(t, 25.0, p.ProgressPercentage, 1e-9)
	assert.Equal(t, models.PathActive, p.Status)

	for i := 1; i < 4; i++ {
		p, err = svc.CompleteStep(context.Background(), testUser, "career-1", i)
		require.NoError(t, err)
	}
	assert.InDelta(t, 100.0, p.ProgressPercentage, 1e-9)
	assert.Equal(t, models.PathCompleted, p.Status)
}

func TestCompleteStepIndexOutOfRange(t *testing.T) {
	svc, paths, _ := newRoadmapFixture(nil)
	require.NoError(t, paths.Upsert(context.Background(), &models.SavedPath{
		PathID: "p1", UserID: testUser, CareerID: "career-1",
		Steps: []models.RoadmapStep{{Type: models.StepSkill, Title: "Learn Go"}},
	}))

	_, err := svc.CompleteStep(context.Background(), testUser, "career-1", 1)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

	_, err = svc.CompleteStep(context.Background(), testUser, "career-1", -1)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestCompleteStepIdempotent(t *testing.T) {
	svc, paths, _ := newRoadmapFixture(nil)
	require.NoError(t, paths.Upsert(context.Background(), &models.SavedPath{
		PathID: "p1", UserID: testUser, CareerID: "career-1",
		Steps: []models.RoadmapStep{
			{Type: models.StepSkill, Title: "Learn Go"},
			{Type: models.StepProject, Title: "Build a CLI"},
		},
	}))

	p, err := svc.CompleteStep(context.Background(), testUser, "career-1", 0)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, p.ProgressPercentage, 1e-9)

	p, err = svc.CompleteStep(context.Background(), testUser, "career-1", 0)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, p.ProgressPercentage, 1e-9, "re-completing a step must not move progress")
}
