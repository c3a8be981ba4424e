package postgres

import (
	"context"
	"errors"
	"fmt"

	"techflow-web-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// DBTX is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock pools.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type leadRepo struct {
	db DBTX
}

func NewLeadRepository(db DBTX) domain.LeadRepository {
	return &leadRepo{db: db}
}

// Save inserts the lead with status "new". Re-saving the same lead ID is a no-op.
func (r *leadRepo) Save(ctx context.Context, lead *domain.Lead) error {
	query := `INSERT INTO leads (
                id, source, name, email, phone, company, service, budget, message, consent,
                project_type, pages, features, design, timeline,
                estimate_min, estimate_max, weeks_min, weeks_max,
                client_ip, user_agent, status, submitted_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
                $11, $12, $13, $14, $15,
                $16, $17, $18, $19,
                $20, $21, 'new', $22)`

	var (
		projectType, design, timeline *string
		pages                         *int
		estMin, estMax                *int64
		weeksMin, weeksMax            *int
	)
	features := []string{}
	if a := lead.Answers; a != nil {
		pt, d, tl := string(a.ProjectType), string(a.Design), string(a.Timeline)
		projectType, design, timeline = &pt, &d, &tl
		pages = &a.Pages
		for _, f := range a.Features {
			features = append(features, string(f))
		}
	}
	if e := lead.Estimate; e != nil {
		estMin, estMax = &e.Min, &e.Max
		weeksMin, weeksMax = &e.TimeMin, &e.TimeMax
	}

	_, err := r.db.Exec(ctx, query,
		lead.ID, string(lead.Source), lead.Name, lead.Email, lead.Phone,
		nullIfEmpty(lead.Company), nullIfEmpty(lead.Service), nullIfEmpty(lead.Budget), nullIfEmpty(lead.Message), lead.Consent,
		projectType, pages, pq.Array(features), design, timeline,
		estMin, estMax, weeksMin, weeksMax,
		nullIfEmpty(lead.ClientIP), nullIfEmpty(lead.UserAgent), lead.SubmittedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil
		}
		return fmt.Errorf("insert lead %s: %w", lead.ID, err)
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
