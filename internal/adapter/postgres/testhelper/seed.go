package testhelper

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dealflow-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile creates a profile with the given role.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Profile {
	t.Helper()

	suffix := uniqueSuffix()
	p := domain.Profile{
		ID:        uuid.New(),
		Email:     "analyst-" + suffix + "@fund.example",
		FullName:  "Analyst " + suffix,
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (id, email, full_name, role, created_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.Email, p.FullName, string(p.Role), p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}
	return p
}

// SeedStage creates a pipeline stage. order <= 0 picks a random high order
// so parallel tests sharing the database do not collide.
func SeedStage(t *testing.T, pool *pgxpool.Pool, order int) domain.PipelineStage {
	t.Helper()

	if order <= 0 {
		order = 1000 + rand.IntN(1_000_000_000)
	}
	s := domain.PipelineStage{
		ID:    uuid.New(),
		Name:  "Stage " + uniqueSuffix(),
		Order: order,
		Color: "#22c55e",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO pipeline_stages (id, name, stage_order, color) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		s.ID, s.Name, s.Order, s.Color,
	).Scan(&s.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedStage: %v", err)
	}
	return s
}

// SeedCompany creates an active company in the given stage. createdAt may be
// zero for "now".
func SeedCompany(t *testing.T, pool *pgxpool.Pool, stageID *uuid.UUID, createdAt time.Time) domain.Company {
	t.Helper()

	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	createdAt = createdAt.Truncate(time.Microsecond)

	suffix := uniqueSuffix()
	c := domain.Company{
		ID:              uuid.New(),
		CompanyName:     "Company " + suffix,
		FounderName:     "Founder " + suffix,
		FounderEmail:    "founder-" + suffix + "@startup.example",
		CompanyRound:    domain.RoundSeed,
		PipelineStageID: stageID,
		PriorityLevel:   domain.PriorityMedium,
		DealSourceType:  domain.DealSourceFounderNetwork,
		ShareType:       domain.ShareTypePrimary,
		CustomTags:      []string{},
		CreatedAt:       createdAt,
		UpdatedAt:       createdAt,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO companies (id, company_name, founder_name, founder_email, pipeline_stage_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		c.ID, c.CompanyName, c.FounderName, c.FounderEmail, c.PipelineStageID, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany: %v", err)
	}
	return c
}
