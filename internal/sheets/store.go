package sheets

import (
	"fmt"

	"github.com/AlekSi/pointer"

	"github.com/siavashv/brokerage_intake_bot/internal/flow"
)

// Column layout of the sheet. Row 1 may hold a header; user ids are matched
// by exact string equality, so a header row never collides with a real id.
const (
	colUserID = 1
	colName   = 2
	colPhone  = 3
	colReason = 4
)

// Fields is a partial update: nil members are left untouched.
type Fields struct {
	Name   *string
	Phone  *string
	Reason *string
}

// Store implements flow.RecordStore on top of a spreadsheet tab.
type Store struct {
	api API
}

func NewStore(api API) *Store {
	return &Store{api: api}
}

// findRow scans the id column top to bottom and returns the 1-based row of
// the first exact match, or 0 when the user has no row yet. Linear scan over
// the full column; fine while the sheet stays small.
func (s *Store) findRow(userID string) (int, error) {
	ids, err := s.api.ColValues(colUserID)
	if err != nil {
		return 0, fmt.Errorf("Store.findRow: %w", err)
	}

	for i, id := range ids {
		if id == userID {
			return i + 1, nil
		}
	}

	return 0, nil
}

// Upsert appends a new row for an unknown user and otherwise writes only the
// supplied fields, cell by cell. Read-then-write: there is no locking against
// a concurrent writer for the same user.
func (s *Store) Upsert(userID string, fields Fields) error {
	row, err := s.findRow(userID)
	if err != nil {
		return fmt.Errorf("Store.Upsert: %w", err)
	}

	if row == 0 {
		values := []string{
			userID,
			pointer.Get(fields.Name),
			pointer.Get(fields.Phone),
			pointer.Get(fields.Reason),
		}

		if err := s.api.AppendRow(values); err != nil {
			return fmt.Errorf("Store.Upsert: %w", err)
		}

		return nil
	}

	if fields.Name != nil {
		if err := s.api.UpdateCell(row, colName, *fields.Name); err != nil {
			return fmt.Errorf("Store.Upsert: %w", err)
		}
	}

	if fields.Phone != nil {
		if err := s.api.UpdateCell(row, colPhone, *fields.Phone); err != nil {
			return fmt.Errorf("Store.Upsert: %w", err)
		}
	}

	if fields.Reason != nil {
		if err := s.api.UpdateCell(row, colReason, *fields.Reason); err != nil {
			return fmt.Errorf("Store.Upsert: %w", err)
		}
	}

	return nil
}

// EnsureRow creates an empty row for a new user and is a no-op for a known
// one, never touching fields that are already set.
func (s *Store) EnsureRow(userID string) error {
	return s.Upsert(userID, Fields{})
}

func (s *Store) WriteField(userID string, field flow.Field, value string) error {
	switch field {
	case flow.FieldName:
		return s.Upsert(userID, Fields{Name: pointer.To(value)})
	case flow.FieldPhone:
		return s.Upsert(userID, Fields{Phone: pointer.To(value)})
	case flow.FieldReason:
		return s.Upsert(userID, Fields{Reason: pointer.To(value)})
	default:
		return fmt.Errorf("Store.WriteField: unknown field %q", field)
	}
}

func (s *Store) Find(userID string) (*flow.Record, error) {
	row, err := s.findRow(userID)
	if err != nil {
		return nil, fmt.Errorf("Store.Find: %w", err)
	}

	if row == 0 {
		return nil, nil
	}

	values, err := s.api.RowValues(row)
	if err != nil {
		return nil, fmt.Errorf("Store.Find: %w", err)
	}

	cell := func(col int) string {
		if len(values) >= col {
			return values[col-1]
		}
		return ""
	}

	return &flow.Record{
		UserID: userID,
		Name:   cell(colName),
		Phone:  cell(colPhone),
		Reason: cell(colReason),
	}, nil
}
