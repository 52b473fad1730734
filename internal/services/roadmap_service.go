package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/danverh/careeratlas/internal/matching"
	"github.com/danverh/careeratlas/internal/models"
	"github.com/danverh/careeratlas/internal/providers/llm"
	mongorepo "github.com/danverh/careeratlas/internal/repositories/mongo"
	pgrepo "github.com/danverh/careeratlas/internal/repositories/postgres"
	"github.com/danverh/careeratlas/internal/utils"
)

// PersonalizeRequest carries what a personalizer needs to build a roadmap.
type PersonalizeRequest struct {
	CareerTitle   string
	UserSkills    []string
	MissingSkills []string
}

// Personalizer builds an ordered roadmap toward a career. Two
// implementations exist: an AI-backed one and a static template fallback,
// selected at call time based on upstream availability.
type Personalizer interface {
	Personalize(ctx context.Context, req PersonalizeRequest) ([]models.RoadmapStep, error)
}

type RoadmapService interface {
	// Generate builds (or rebuilds) the roadmap for a (user, career) pair,
	// feeding the stored match's skill gap into the plan. AI personalization
	// is best-effort; its failure falls back to the template, never failing
	// the operation.
	Generate(ctx context.Context, userID, careerID, careerTitle string) (*models.SavedPath, error)
	Get(ctx context.Context, userID, careerID string) (*models.SavedPath, error)
	ListMine(ctx context.Context, userID string) ([]models.SavedPath, error)
	// CompleteStep marks one step done and recomputes progress; status flips
	// to completed exactly when progress reaches 100.
	CompleteStep(ctx context.Context, userID, careerID string, stepIndex int) (*models.SavedPath, error)
}

type roadmapService struct {
	paths    mongorepo.PathRepository
	matches  pgrepo.MatchRepository
	profiles pgrepo.ProfileRepository
	ai       Personalizer
	fallback Personalizer
	log      *logrus.Logger
}

func NewRoadmapService(
	paths mongorepo.PathRepository,
	matches pgrepo.MatchRepository,
	profiles pgrepo.ProfileRepository,
	ai Personalizer,
	log *logrus.Logger,
) RoadmapService {
	if log == nil {
		log = logrus.New()
	}
	return &roadmapService{
		paths:    paths,
		matches:  matches,
		profiles: profiles,
		ai:       ai,
		fallback: TemplatePersonalizer{},
		log:      log,
	}
}

func (s *roadmapService) Generate(ctx context.Context, userID, careerID, careerTitle string) (*models.SavedPath, error) {
	const op = "RoadmapService.Generate"

	if userID == "" || careerID == "" || careerTitle == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id, career_id and career_title are required", nil)
	}

	req := PersonalizeRequest{CareerTitle: careerTitle}

	if profile, err := s.profiles.GetByUserID(ctx, userID); err == nil {
		req.UserSkills = profile.Skills
	}
	if m, err := s.matches.GetByUserAndJob(ctx, userID, careerID); err == nil {
		var ex matching.Explanation
		if jerr := json.Unmarshal(m.MatchExplanation, &ex); jerr == nil {
			req.MissingSkills = ex.MissingSkills
		}
	}

	steps, err := s.personalize(ctx, req)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to build roadmap", err)
	}

	path := &models.SavedPath{
		PathID:      uuid.NewString(),
		UserID:      userID,
		CareerID:    careerID,
		CareerTitle: careerTitle,
		Steps:       steps,
		Status:      models.PathActive,
		CreatedAt:   time.Now().UTC(),
	}
	path.RecalcProgress()

	if err := s.paths.Upsert(ctx, path); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save path", err)
	}
	return path, nil
}

// personalize tries the AI personalizer first and falls back to the static
// template on any failure.
func (s *roadmapService) personalize(ctx context.Context, req PersonalizeRequest) ([]models.RoadmapStep, error) {
	if s.ai != nil {
		steps, err := s.ai.Personalize(ctx, req)
		if err == nil && len(steps) > 0 {
			return steps, nil
		}
		if err != nil {
			s.log.WithError(err).WithField("career", req.CareerTitle).
				Warn("AI roadmap personalization failed, using template")
		}
	}
	return s.fallback.Personalize(ctx, req)
}

func (s *roadmapService) Get(ctx context.Context, userID, careerID string) (*models.SavedPath, error) {
	const op = "RoadmapService.Get"

	if userID == "" || careerID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id and career_id are required", nil)
	}
	p, err := s.paths.GetByUserAndCareer(ctx, userID, careerID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "saved path not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load path", err)
	}
	return p, nil
}

func (s *roadmapService) ListMine(ctx context.Context, userID string) ([]models.SavedPath, error) {
	const op = "RoadmapService.ListMine"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	paths, err := s.paths.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list paths", err)
	}
	if paths == nil {
		paths = []models.SavedPath{}
	}
	return paths, nil
}

func (s *roadmapService) CompleteStep(ctx context.Context, userID, careerID string, stepIndex int) (*models.SavedPath, error) {
	const op = "RoadmapService.CompleteStep"

	p, err := s.Get(ctx, userID, careerID)
	if err != nil {
		return nil, err
	}
	if stepIndex < 0 || stepIndex >= len(p.Steps) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "step index out of range", nil)
	}

	p.Steps[stepIndex].Completed = true
	p.RecalcProgress()

	if err := s.paths.Upsert(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save path", err)
	}
	return p, nil
}

// LLMPersonalizer asks the language model for a tailored step list.
type LLMPersonalizer struct {
	LLM llm.Provider
}

const roadmapPromptTemplate = `Create a learning roadmap for someone working toward a career as "%s".

Their current skills: %s
Skills they are missing: %s

Return ONLY a JSON array of step objects, ordered from first to last, in this shape:
[{"type":"skill|project|course|milestone","title":string,"description":string,"duration":string,"resources":[string]}]

6 to 10 steps. No markdown, no text outside the array.`

func (p LLMPersonalizer) Personalize(ctx context.Context, req PersonalizeRequest) ([]models.RoadmapStep, error) {
	if p.LLM == nil {
		return nil, errors.New("no language model provider configured")
	}

	prompt := fmt.Sprintf(roadmapPromptTemplate,
		req.CareerTitle,
		strings.Join(req.UserSkills, ", "),
		strings.Join(req.MissingSkills, ", "),
	)
	raw, err := p.LLM.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var steps []models.RoadmapStep
	if err := json.Unmarshal([]byte(utils.CleanJSONBlock(raw)), &steps); err != nil {
		return nil, fmt.Errorf("unparseable roadmap response: %w", err)
	}
	for i := range steps {
		if !validStepType(steps[i].Type) {
			steps[i].Type = models.StepSkill
		}
		steps[i].Completed = false
	}
	return steps, nil
}

// TemplatePersonalizer is the static fallback: one skill step per missing
// skill, then a fixed project/course/milestone tail.
type TemplatePersonalizer struct{}

func (TemplatePersonalizer) Personalize(_ context.Context, req PersonalizeRequest) ([]models.RoadmapStep, error) {
	steps := make([]models.RoadmapStep, 0, len(req.MissingSkills)+3)

	for _, skill := range req.MissingSkills {
		steps = append(steps, models.RoadmapStep{
			Type:        models.StepSkill,
			Title:       "Learn " + skill,
			Description: fmt.Sprintf("Build working knowledge of %s through documentation and hands-on practice.", skill),
			Duration:    "2-4 weeks",
		})
	}

	steps = append(steps,
		models.RoadmapStep{
			Type:        models.StepCourse,
			Title:       fmt.Sprintf("Take a foundational %s course", req.CareerTitle),
			Description: "Complete a structured course covering the fundamentals of the role.",
			Duration:    "4-6 weeks",
		},
		models.RoadmapStep{
			Type:        models.StepProject,
			Title:       "Build a portfolio project",
			Description: fmt.Sprintf("Build and publish a project demonstrating %s skills end to end.", req.CareerTitle),
			Duration:    "4-8 weeks",
		},
		models.RoadmapStep{
			Type:        models.StepMilestone,
			Title:       "Apply to " + req.CareerTitle + " roles",
			Description: "Update your resume with the new skills and projects, then start applying.",
			Duration:    "ongoing",
		},
	)
	return steps, nil
}

func validStepType(t string) bool {
	switch t {
	case models.StepSkill, models.StepProject, models.StepCourse, models.StepMilestone:
		return true
	}
	return false
}
