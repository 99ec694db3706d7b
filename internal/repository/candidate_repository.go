package repository

import (
	"context"
	"errors"

	"able-match/internal/database"
	"able-match/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("candidate profile not found")

type CandidateRepository interface {
	FindProfileByUserID(ctx context.Context, userID uuid.UUID) (matching.CandidateProfile, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

// FindProfileByUserID builds the engine-facing profile. The stored
// preferred-city list is ordered by priority; only the first entry is
// scored (documented single-preference behavior), so the query takes
// preferred_cities[1].
func (r *PostgresCandidateRepository) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (matching.CandidateProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(skills, '{}'), preferred_cities[1], transit_ceiling_m,
		        access_level, COALESCE(accommodations, '{}'),
		        expected_salary_min, expected_salary_max, work_arrangement_pref
		 FROM candidate_profiles
		 WHERE user_id = $1`,
		userID,
	)

	var (
		skills          []string
		preferredCity   *string
		transitCeiling  *int
		accessLevel     *string
		accommodations  []string
		expectedMin     *float64
		expectedMax     *float64
		arrangementPref *string
	)
	if err := row.Scan(&skills, &preferredCity, &transitCeiling, &accessLevel,
		&accommodations, &expectedMin, &expectedMax, &arrangementPref); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return matching.CandidateProfile{}, ErrProfileNotFound
		}
		return matching.CandidateProfile{}, err
	}

	profile := matching.CandidateProfile{
		Skills:               skills,
		PreferredCity:        preferredCity,
		TransitCeilingMeters: transitCeiling,
	}

	if accessLevel != nil || len(accommodations) > 0 {
		need := &matching.AccessibilityNeed{Accommodations: accommodations}
		if accessLevel != nil {
			lvl := matching.AccessLevel(*accessLevel)
			need.Level = &lvl
		}
		profile.AccessibilityNeed = need
	}

	if expectedMin != nil || expectedMax != nil {
		profile.SalaryExpectation = &matching.SalaryExpectation{Min: expectedMin, Max: expectedMax}
	}

	if arrangementPref != nil {
		pref := matching.WorkArrangement(*arrangementPref)
		profile.ArrangementPref = &pref
	}

	return profile, nil
}
