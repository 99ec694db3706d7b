package usecase

import (
	"context"
	"errors"
	"time"

	"able-match/internal/domain/matching"
	"able-match/internal/repository"

	"github.com/google/uuid"
)

// Catalog cap per ranking request; the engine itself imposes no bound,
// so the caller keeps total latency proportional to this.
const maxCatalogSize = 500

type RankingParams struct {
	Limit    int
	Offset   int
	MinScore int
}

type RankingItem struct {
	JobID      string             `json:"job_id"`
	Score      int                `json:"score"`
	MatchLevel string             `json:"match_level"`
	Breakdown  matching.Breakdown `json:"breakdown"`
	Reasons    []string           `json:"reasons"`
}

type RankingUsecase interface {
	GetRankings(ctx context.Context, userID uuid.UUID, params RankingParams) ([]RankingItem, error)
}

type Ranking struct {
	jobs       repository.JobRepository
	candidates repository.CandidateRepository
	engine     *matching.Engine
	cache      Cache
	cacheTTL   time.Duration
	announcer  Announcer
}

func NewRankingUsecase(
	jobs repository.JobRepository,
	candidates repository.CandidateRepository,
	engine *matching.Engine,
	cache Cache,
	cacheTTL time.Duration,
	announcer Announcer,
) *Ranking {
	if engine == nil {
		engine = matching.New(matching.DefaultWeights())
	}
	if announcer == nil {
		announcer = NopAnnouncer{}
	}
	return &Ranking{
		jobs:       jobs,
		candidates: candidates,
		engine:     engine,
		cache:      cache,
		cacheTTL:   cacheTTL,
		announcer:  announcer,
	}
}

func (u *Ranking) GetRankings(ctx context.Context, userID uuid.UUID, params RankingParams) ([]RankingItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if params.Limit < 0 || params.Offset < 0 {
		return nil, ErrInvalidInput
	}

	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	minScore := params.MinScore
	if minScore < 0 {
		minScore = 0
	}
	if minScore > 100 {
		minScore = 100
	}

	profile, err := u.candidates.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	key := rankingsCacheKey(userID, profile, params.Offset, limit, minScore)
	if u.cache != nil {
		var cached []RankingItem
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := u.jobs.ListActiveJobRecords(ctx, maxCatalogSize)
	if err != nil {
		return nil, ErrInternal
	}

	results := u.engine.Rank(jobs, profile)

	items := make([]RankingItem, 0, limit)
	skipped := 0
	topScore := 0
	for _, res := range results {
		if res.Score < minScore {
			continue
		}
		if skipped < params.Offset {
			skipped++
			continue
		}
		if len(items) == limit {
			break
		}
		if res.Score > topScore {
			topScore = res.Score
		}
		items = append(items, RankingItem{
			JobID:      res.JobID,
			Score:      res.Score,
			MatchLevel: matching.MatchLevel(res.Score),
			Breakdown:  res.Breakdown,
			Reasons:    res.Reasons,
		})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, items, u.cacheTTL)
	}

	// Announce only on a fresh computation; cache hits stay silent.
	u.announcer.RankingsReady(userID, len(items), topScore)

	return items, nil
}
