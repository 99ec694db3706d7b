package repository

import (
	"context"
	"errors"
	"time"

	"able-match/internal/database"
	"able-match/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// JobSummary is the public-listing shape; ranking works on the fully
// hydrated matching.JobRecord instead.
type JobSummary struct {
	ID          uuid.UUID
	Title       string
	Company     string
	City        string
	Arrangement string
	PostedAt    *time.Time
}

type JobRepository interface {
	ListJobs(ctx context.Context, limit, offset int) ([]JobSummary, error)
	ListActiveJobRecords(ctx context.Context, limit int) ([]matching.JobRecord, error)
	CountActiveJobs(ctx context.Context) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context, limit, offset int) ([]JobSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(city, ''), COALESCE(work_arrangement, ''), posted_at
		 FROM jobs
		 WHERE is_active
		 ORDER BY posted_at DESC NULLS LAST, created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobSummary, 0)
	for rows.Next() {
		var j JobSummary
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.City, &j.Arrangement, &j.PostedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) CountActiveJobs(ctx context.Context) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE is_active`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ListActiveJobRecords loads the rankable catalog: the posting row plus
// its ordered requirement strings.
func (r *PostgresJobRepository) ListActiveJobRecords(ctx context.Context, limit int) ([]matching.JobRecord, error) {
	if limit <= 0 {
		limit = 200
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(city, ''), district, transit_distance_m,
		        COALESCE(access_level, 'low'), COALESCE(access_details, '{}'),
		        salary_min, salary_max, COALESCE(salary_period, ''), COALESCE(salary_currency, ''),
		        COALESCE(work_arrangement, '')
		 FROM jobs
		 WHERE is_active
		 ORDER BY posted_at DESC NULLS LAST, created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]matching.JobRecord, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			city        string
			district    *string
			transit     *int
			level       string
			details     []string
			salaryMin   *float64
			salaryMax   *float64
			period      string
			currency    string
			arrangement string
		)
		if err := rows.Scan(&id, &city, &district, &transit, &level, &details,
			&salaryMin, &salaryMax, &period, &currency, &arrangement); err != nil {
			return nil, err
		}

		rec := matching.JobRecord{
			ID: id.String(),
			Location: matching.Location{
				City:                  city,
				District:              district,
				TransitDistanceMeters: transit,
			},
			Accessibility: matching.Accessibility{
				Level:   matching.AccessLevel(level),
				Details: details,
			},
			Arrangement: matching.WorkArrangement(arrangement),
		}
		if salaryMin != nil || salaryMax != nil {
			rec.Salary = &matching.Salary{
				Min:      salaryMin,
				Max:      salaryMax,
				Period:   period,
				Currency: currency,
			}
		}

		records = append(records, rec)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return records, nil
	}

	reqs, err := r.requirementsByJobIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Requirements = reqs[records[i].ID]
	}
	return records, nil
}

func (r *PostgresJobRepository) requirementsByJobIDs(ctx context.Context, ids []uuid.UUID) (map[string][]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_id, requirement
		 FROM job_requirements
		 WHERE job_id = ANY($1)
		 ORDER BY job_id, position`,
		ids,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return map[string][]string{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]string, len(ids))
	for rows.Next() {
		var jobID uuid.UUID
		var requirement string
		if err := rows.Scan(&jobID, &requirement); err != nil {
			return nil, err
		}
		out[jobID.String()] = append(out[jobID.String()], requirement)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
