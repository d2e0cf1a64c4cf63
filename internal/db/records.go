package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/siavashv/brokerage_intake_bot/internal/flow"
)

type IntakeRequest struct {
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	Reason    string    `db:"reason"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RecordRepository implements flow.RecordStore over the intake_requests
// table, one row per user.
type RecordRepository struct {
	db *sqlx.DB
}

func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{
		db: db,
	}
}

// fieldColumns whitelists the columns a conversation step may write.
var fieldColumns = map[flow.Field]string{
	flow.FieldName:   "name",
	flow.FieldPhone:  "phone",
	flow.FieldReason: "reason",
}

func (r *RecordRepository) EnsureRow(userID string) error {
	_, err := r.db.Exec(`
	    INSERT INTO intake_requests (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)

	if err != nil {
		return fmt.Errorf("RecordRepository.EnsureRow: %w", err)
	}

	return nil
}

func (r *RecordRepository) WriteField(userID string, field flow.Field, value string) error {
	column, ok := fieldColumns[field]
	if !ok {
		return fmt.Errorf("RecordRepository.WriteField: unknown field %q", field)
	}

	res, err := r.db.Exec(fmt.Sprintf(`
	    UPDATE intake_requests
		SET %s = $1, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $2
	`, column), value, userID)

	if err != nil {
		return fmt.Errorf("RecordRepository.WriteField: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("RecordRepository.WriteField: %w", err)
	}

	if affected == 0 {
		// Upsert semantics: a write for an unknown user creates the row.
		_, err := r.db.Exec(fmt.Sprintf(`
		    INSERT INTO intake_requests (user_id, %s)
			VALUES ($1, $2)
		`, column), userID, value)

		if err != nil {
			return fmt.Errorf("RecordRepository.WriteField: %w", err)
		}
	}

	return nil
}

func (r *RecordRepository) Find(userID string) (*flow.Record, error) {
	var req IntakeRequest

	err := r.db.Get(&req, `
	    SELECT * FROM intake_requests
		WHERE user_id = $1
	`, userID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("RecordRepository.Find: %w", err)
	}

	return &flow.Record{
		UserID: req.UserID,
		Name:   req.Name,
		Phone:  req.Phone,
		Reason: req.Reason,
	}, nil
}
