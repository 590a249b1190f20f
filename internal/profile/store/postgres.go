package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"crewdock/internal/profile/models"
	id "crewdock/pkg/domain"
	"crewdock/pkg/platform/sentinel"
)

// PostgresStore reads crew profiles from PostgreSQL. Skills live in a child
// table so descriptions stay attached to their skill name.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed profile store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) GetProfile(ctx context.Context, userID id.UserID) (*models.CrewProfile, error) {
	query := `
		SELECT user_id, display_name, risk_levels, sailing_experience
		FROM crew_profiles
		WHERE user_id = $1
	`
	var p models.CrewProfile
	var riskLevels pq.StringArray
	err := s.db.QueryRowContext(ctx, query, userID.String()).Scan(
		&p.UserID, &p.DisplayName, &riskLevels, &p.SailingExperience,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.RiskLevels = riskLevels

	skillQuery := `
		SELECT name, COALESCE(description, '')
		FROM crew_profile_skills
		WHERE user_id = $1
		ORDER BY name
	`
	rows, err := s.db.QueryContext(ctx, skillQuery, userID.String())
	if err != nil {
		return nil, fmt.Errorf("list profile skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var skill models.Skill
		if err := rows.Scan(&skill.Name, &skill.Description); err != nil {
			return nil, fmt.Errorf("scan profile skill: %w", err)
		}
		p.Skills = append(p.Skills, skill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profile skills: %w", err)
	}

	return &p, nil
}
