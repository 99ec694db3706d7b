package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"able-match/internal/domain/matching"

	"github.com/google/uuid"
)

// The key hashes the profile alongside the window so a preference edit
// naturally misses the stale entry instead of requiring invalidation.
type rankingsCacheKeyInput struct {
	UserID   string                    `json:"user_id"`
	Profile  matching.CandidateProfile `json:"profile"`
	Offset   int                       `json:"offset"`
	Limit    int                       `json:"limit"`
	MinScore int                       `json:"min_score"`
}

func rankingsCacheKey(userID uuid.UUID, profile matching.CandidateProfile, offset, limit, minScore int) string {
	normalized := profile
	normalized.Skills = normalizeTerms(profile.Skills)
	if profile.AccessibilityNeed != nil {
		need := *profile.AccessibilityNeed
		need.Accommodations = normalizeTerms(need.Accommodations)
		normalized.AccessibilityNeed = &need
	}

	in := rankingsCacheKeyInput{
		UserID:   userID.String(),
		Profile:  normalized,
		Offset:   offset,
		Limit:    limit,
		MinScore: minScore,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "rankings:" + hex.EncodeToString(sum[:])
}

func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	return out
}
