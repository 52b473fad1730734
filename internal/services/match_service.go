package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/danverh/careeratlas/internal/cache"
	"github.com/danverh/careeratlas/internal/matching"
	"github.com/danverh/careeratlas/internal/models"
	pgrepo "github.com/danverh/careeratlas/internal/repositories/postgres"
	"github.com/danverh/careeratlas/internal/utils"
)

const (
	// matchResultCap bounds what a refresh returns to the caller.
	// Persistence always covers the full set.
	matchResultCap = 50

	matchScoreWorkers = 8

	storedMatchTTL = 5 * time.Minute
)

// ProgressFunc reports per-job scoring progress during a refresh.
type ProgressFunc func(done, total int)

type MatchService interface {
	// Refresh recomputes all matches for the user, overwrites the stored set
	// and returns the top ranked slice.
	Refresh(ctx context.Context, userID string) ([]models.JobMatch, error)
	// RefreshWithProgress is Refresh with a progress callback (may be nil).
	RefreshWithProgress(ctx context.Context, userID string, progress ProgressFunc) ([]models.JobMatch, error)
	// Stored returns the persisted match set, ranked, without recomputation.
	Stored(ctx context.Context, userID string) ([]models.JobMatch, error)
}

type matchService struct {
	profiles pgrepo.ProfileRepository
	jobs     pgrepo.JobRepository
	matches  pgrepo.MatchRepository
	cache    cache.Cache
	log      *logrus.Logger
}

func NewMatchService(
	profiles pgrepo.ProfileRepository,
	jobs pgrepo.JobRepository,
	matches pgrepo.MatchRepository,
	c cache.Cache,
	log *logrus.Logger,
) MatchService {
	if log == nil {
		log = logrus.New()
	}
	return &matchService{profiles: profiles, jobs: jobs, matches: matches, cache: c, log: log}
}

func (s *matchService) Refresh(ctx context.Context, userID string) ([]models.JobMatch, error) {
	return s.RefreshWithProgress(ctx, userID, nil)
}

func (s *matchService) RefreshWithProgress(ctx context.Context, userID string, progress ProgressFunc) ([]models.JobMatch, error) {
	const op = "MatchService.Refresh"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodePrecondition, op, "profile not found - complete your profile first", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
	}
	if !profile.HasEmbeddings() {
		return nil, utils.E(utils.CodePrecondition, op, "profile embeddings missing - generate embeddings first", nil)
	}

	jobs, err := s.jobs.ListWithEmbeddings(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load jobs", err)
	}

	total := len(jobs)
	results := make([]*models.JobMatch, 0, total)
	var (
		mu   sync.Mutex
		done int
	)

	// Per-job scoring is independent; a bounded pool does the work and the
	// final ordering comes from the re-sort below, not completion order.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(matchScoreWorkers)
	for i := range jobs {
		job := jobs[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			m, serr := scoreJob(profile, &job)

			mu.Lock()
			done++
			d := done
			if serr != nil {
				// Partial results beat an all-or-nothing failure for a
				// ranking feature: warn and move on.
				s.log.WithFields(logrus.Fields{
					"user_id": userID,
					"job_id":  job.ID,
				}).WithError(serr).Warn("skipping job during match refresh")
			} else {
				results = append(results, m)
			}
			mu.Unlock()

			if progress != nil {
				progress(d, total)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "match computation failed", err)
	}

	sortMatches(results)

	if err := s.matches.UpsertBatch(ctx, results); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist matches", err)
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, storedMatchKey(userID))
	}

	out := make([]models.JobMatch, 0, matchResultCap)
	for i, m := range results {
		if i >= matchResultCap {
			break
		}
		out = append(out, *m)
	}
	return out, nil
}

func (s *matchService) Stored(ctx context.Context, userID string) ([]models.JobMatch, error) {
	const op = "MatchService.Stored"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	key := storedMatchKey(userID)
	if s.cache != nil {
		var cached []models.JobMatch
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	matches, err := s.matches.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load matches", err)
	}
	if matches == nil {
		matches = []models.JobMatch{}
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, matches, storedMatchTTL); err != nil {
			s.log.WithError(err).Warn("failed to cache stored matches")
		}
	}
	return matches, nil
}

// scoreJob computes the three facet cosine scores, the weighted score and
// the explanation for one candidate job.
func scoreJob(profile *models.Profile, job *models.Job) (*models.JobMatch, error) {
	if !job.HasEmbeddings() {
		return nil, errors.New("job has no embeddings")
	}

	scores := matching.FacetScores{
		Skills:     matching.Cosine(profile.SkillsEmbedding.Slice(), job.SkillsEmbedding.Slice()),
		Experience: matching.Cosine(profile.ExperienceEmbedding.Slice(), job.ExperienceEmbedding.Slice()),
		Interests:  matching.Cosine(profile.InterestsEmbedding.Slice(), job.InterestsEmbedding.Slice()),
	}

	explanation := matching.Explain(profile.Skills, job.RequiredSkills, scores)
	blob, err := json.Marshal(explanation)
	if err != nil {
		return nil, err
	}

	return &models.JobMatch{
		ID:               uuid.NewString(),
		UserID:           profile.UserID,
		JobID:            job.ID,
		Job:              *job,
		SkillsScore:      scores.Skills,
		ExperienceScore:  scores.Experience,
		InterestsScore:   scores.Interests,
		WeightedScore:    scores.Weighted(),
		MatchExplanation: datatypes.JSON(blob),
		ComputedAt:       time.Now().UTC(),
	}, nil
}

// sortMatches orders by weighted score descending with job id as the stable
// tie-break, so repeated refreshes rank identically.
func sortMatches(ms []*models.JobMatch) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].WeightedScore != ms[j].WeightedScore {
			return ms[i].WeightedScore > ms[j].WeightedScore
		}
		return ms[i].JobID < ms[j].JobID
	})
}

func storedMatchKey(userID string) string {
	return "matches:" + userID
}
