package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"crewdock/internal/registration/models"
	id "crewdock/pkg/domain"
	"crewdock/pkg/platform/sentinel"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations; the partial unique index on (leg_id, user_id) WHERE status <>
// 'Cancelled' raises it when a second active registration is inserted.
const uniqueViolation = "23505"

// PostgresRegistrationStore persists registrations in PostgreSQL.
type PostgresRegistrationStore struct {
	db *sql.DB
}

// NewPostgresRegistrations constructs a PostgreSQL-backed registration store.
func NewPostgresRegistrations(db *sql.DB) *PostgresRegistrationStore {
	return &PostgresRegistrationStore{db: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}

func (s *PostgresRegistrationStore) Create(ctx context.Context, reg *models.Registration) error {
	query := `
		INSERT INTO registrations (
			id, leg_id, user_id, status, notes, created_at, updated_at,
			ai_match_score, ai_match_reasoning, auto_approved, assessment_state
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(ctx, query,
		reg.ID, reg.LegID, reg.UserID, reg.Status.String(), reg.Notes,
		reg.CreatedAt, reg.UpdatedAt,
		reg.AIMatchScore, reg.AIMatchReasoning, reg.AutoApproved, string(reg.AssessmentState),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

const registrationColumns = `
	id, leg_id, user_id, status, notes, created_at, updated_at,
	ai_match_score, ai_match_reasoning, auto_approved, assessment_state
`

func scanRegistration(row interface{ Scan(...any) error }) (*models.Registration, error) {
	var reg models.Registration
	var status, assessmentState string
	err := row.Scan(
		&reg.ID, &reg.LegID, &reg.UserID, &status, &reg.Notes,
		&reg.CreatedAt, &reg.UpdatedAt,
		&reg.AIMatchScore, &reg.AIMatchReasoning, &reg.AutoApproved, &assessmentState,
	)
	if err != nil {
		return nil, err
	}
	reg.Status = id.RegistrationStatus(status)
	reg.AssessmentState = models.AssessmentState(assessmentState)
	return &reg, nil
}

func (s *PostgresRegistrationStore) Get(ctx context.Context, regID id.RegistrationID) (*models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`
	reg, err := scanRegistration(s.db.QueryRowContext(ctx, query, regID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	return reg, nil
}

func (s *PostgresRegistrationStore) GetByLegAndUser(ctx context.Context, legID id.LegID, userID id.UserID) (*models.Registration, error) {
	// Prefer the active row; fall back to the most recently updated
	// cancelled one for the reactivation path.
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE leg_id = $1 AND user_id = $2
		ORDER BY (status <> 'Cancelled') DESC, updated_at DESC
		LIMIT 1
	`
	reg, err := scanRegistration(s.db.QueryRowContext(ctx, query, legID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get registration by leg and user: %w", err)
	}
	return reg, nil
}

func (s *PostgresRegistrationStore) Update(ctx context.Context, reg *models.Registration) error {
	query := `
		UPDATE registrations SET
			status = $2, notes = $3, updated_at = $4,
			ai_match_score = $5, ai_match_reasoning = $6,
			auto_approved = $7, assessment_state = $8
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		reg.ID, reg.Status.String(), reg.Notes, reg.UpdatedAt,
		reg.AIMatchScore, reg.AIMatchReasoning, reg.AutoApproved, string(reg.AssessmentState),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("update registration: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update registration: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresRegistrationStore) ListByUser(ctx context.Context, userID id.UserID, filter ListFilter) ([]*models.Registration, error) {
	query := `
		SELECT ` + registrationColumns + `
		FROM registrations
		WHERE user_id = $1
		  AND ($2::uuid IS NULL OR leg_id = $2)
		  AND ($3::text IS NULL OR status = $3)
		ORDER BY created_at DESC
	`
	var legID any
	if !filter.LegID.IsNil() {
		legID = filter.LegID.String()
	}
	var status any
	if filter.Status != "" {
		status = filter.Status.String()
	}

	rows, err := s.db.QueryContext(ctx, query, userID, legID, status)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var out []*models.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		out = append(out, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registrations: %w", err)
	}
	return out, nil
}

// PostgresAnswerStore persists registration answers in PostgreSQL.
type PostgresAnswerStore struct {
	db *sql.DB
}

// NewPostgresAnswers constructs a PostgreSQL-backed answer store.
func NewPostgresAnswers(db *sql.DB) *PostgresAnswerStore {
	return &PostgresAnswerStore{db: db}
}

// ReplaceForRegistration swaps the registration's answer set in a single
// transaction so concurrent resubmissions cannot interleave into a partial
// set.
func (s *PostgresAnswerStore) ReplaceForRegistration(ctx context.Context, regID id.RegistrationID, answers []models.Answer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin answer replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM registration_answers WHERE registration_id = $1`, regID); err != nil {
		return fmt.Errorf("clear answers: %w", err)
	}

	insert := `
		INSERT INTO registration_answers (
			id, registration_id, requirement_id, answer_text, answer_json,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, ans := range answers {
		var answerJSON any
		if len(ans.AnswerJSON) > 0 {
			answerJSON = []byte(ans.AnswerJSON)
		}
		if _, err := tx.ExecContext(ctx, insert,
			ans.ID, ans.RegistrationID, ans.RequirementID,
			ans.AnswerText, answerJSON, ans.CreatedAt, ans.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert answer: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit answer replace: %w", err)
	}
	return nil
}

func (s *PostgresAnswerStore) ListByRegistration(ctx context.Context, regID id.RegistrationID) ([]models.Answer, error) {
	query := `
		SELECT id, registration_id, requirement_id, answer_text, answer_json,
		       created_at, updated_at
		FROM registration_answers
		WHERE registration_id = $1
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, regID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	var out []models.Answer
	for rows.Next() {
		var ans models.Answer
		var answerJSON []byte
		if err := rows.Scan(
			&ans.ID, &ans.RegistrationID, &ans.RequirementID,
			&ans.AnswerText, &answerJSON, &ans.CreatedAt, &ans.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		ans.AnswerJSON = answerJSON
		out = append(out, ans)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}
	return out, nil
}
