package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"crewdock/internal/journey/models"
	id "crewdock/pkg/domain"
	"crewdock/pkg/platform/sentinel"
)

// PostgresStore reads journey data from PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed journey store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetJourney(ctx context.Context, journeyID id.JourneyID) (*models.Journey, error) {
	query := `
		SELECT id, owner_id, name, published, auto_approval_enabled,
		       skills, risk_level, min_experience
		FROM journeys
		WHERE id = $1
	`
	var j models.Journey
	var skills pq.StringArray
	err := s.db.QueryRowContext(ctx, query, journeyID.String()).Scan(
		&j.ID, &j.OwnerID, &j.Name, &j.Published, &j.AutoApprovalEnabled,
		&skills, &j.RiskLevel, &j.MinExperience,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get journey: %w", err)
	}
	j.Skills = skills
	return &j, nil
}

func (s *PostgresStore) GetLeg(ctx context.Context, legID id.LegID) (*models.Leg, error) {
	query := `
		SELECT id, journey_id, name, skills, risk_level, min_experience
		FROM legs
		WHERE id = $1
	`
	var l models.Leg
	var skills pq.StringArray
	err := s.db.QueryRowContext(ctx, query, legID.String()).Scan(
		&l.ID, &l.JourneyID, &l.Name, &skills, &l.RiskLevel, &l.MinExperience,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get leg: %w", err)
	}
	l.Skills = skills
	return &l, nil
}

func (s *PostgresStore) ListRequirements(ctx context.Context, journeyID id.JourneyID) ([]models.Requirement, error) {
	query := `
		SELECT id, journey_id, question_text, question_type, options,
		       is_required, weight, display_order
		FROM journey_requirements
		WHERE journey_id = $1
		ORDER BY display_order, id
	`
	rows, err := s.db.QueryContext(ctx, query, journeyID.String())
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	defer rows.Close()

	var reqs []models.Requirement
	for rows.Next() {
		var r models.Requirement
		var options pq.StringArray
		if err := rows.Scan(
			&r.ID, &r.JourneyID, &r.QuestionText, &r.QuestionType, &options,
			&r.IsRequired, &r.Weight, &r.Order,
		); err != nil {
			return nil, fmt.Errorf("scan requirement: %w", err)
		}
		r.Options = options
		reqs = append(reqs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requirements: %w", err)
	}
	return reqs, nil
}
