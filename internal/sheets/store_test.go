package sheets

import (
	"fmt"
	"testing"

	"github.com/siavashv/brokerage_intake_bot/internal/flow"
)

// fakeAPI is an in-memory sheet: a slice of rows, 1-based access like the
// real client.
type fakeAPI struct {
	rows [][]string
}

func (f *fakeAPI) ColValues(col int) ([]string, error) {
	var values []string
	for _, row := range f.rows {
		if len(row) >= col {
			values = append(values, row[col-1])
		} else {
			values = append(values, "")
		}
	}

	return values, nil
}

func (f *fakeAPI) RowValues(row int) ([]string, error) {
	if row < 1 || row > len(f.rows) {
		return nil, fmt.Errorf("row %d out of range", row)
	}

	return append([]string(nil), f.rows[row-1]...), nil
}

func (f *fakeAPI) AppendRow(values []string) error {
	f.rows = append(f.rows, append([]string(nil), values...))
	return nil
}

func (f *fakeAPI) UpdateCell(row, col int, value string) error {
	if row < 1 || row > len(f.rows) {
		return fmt.Errorf("row %d out of range", row)
	}

	for len(f.rows[row-1]) < col {
		f.rows[row-1] = append(f.rows[row-1], "")
	}

	f.rows[row-1][col-1] = value
	return nil
}

func TestEnsureRowIdempotent(t *testing.T) {
	api := &fakeAPI{rows: [][]string{{"user_id", "name", "phone", "reason"}}}
	store := NewStore(api)

	if err := store.EnsureRow("42"); err != nil {
		t.Fatalf("EnsureRow: %v", err)
	}
	if err := store.WriteField("42", flow.FieldName, "علی محمدی"); err != nil {
		t.Fatalf("WriteField: %v", err)
	}
	if err := store.EnsureRow("42"); err != nil {
		t.Fatalf("EnsureRow again: %v", err)
	}

	if len(api.rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(api.rows))
	}
	if api.rows[1][1] != "علی محمدی" {
		t.Fatalf("name after re-ensure = %q, want unchanged", api.rows[1][1])
	}
}

func TestWriteFieldPartialUpdate(t *testing.T) {
	api := &fakeAPI{}
	store := NewStore(api)

	if err := store.EnsureRow("42"); err != nil {
		t.Fatalf("EnsureRow: %v", err)
	}
	if err := store.WriteField("42", flow.FieldName, "علی محمدی"); err != nil {
		t.Fatalf("WriteField name: %v", err)
	}
	if err := store.WriteField("42", flow.FieldPhone, "09123456789"); err != nil {
		t.Fatalf("WriteField phone: %v", err)
	}

	if len(api.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(api.rows))
	}

	row := api.rows[0]
	if row[0] != "42" || row[1] != "علی محمدی" || row[2] != "09123456789" {
		t.Fatalf("row = %v", row)
	}
	if row[3] != "" {
		t.Fatalf("reason = %q, want empty", row[3])
	}
}

func TestWriteFieldCreatesRowWhenAbsent(t *testing.T) {
	api := &fakeAPI{}
	store := NewStore(api)

	if err := store.WriteField("42", flow.FieldPhone, "09123456789"); err != nil {
		t.Fatalf("WriteField: %v", err)
	}

	if len(api.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(api.rows))
	}
	if api.rows[0][0] != "42" || api.rows[0][2] != "09123456789" {
		t.Fatalf("row = %v", api.rows[0])
	}
	if api.rows[0][1] != "" || api.rows[0][3] != "" {
		t.Fatalf("unset fields should be empty, row = %v", api.rows[0])
	}
}

func TestFindAbsent(t *testing.T) {
	store := NewStore(&fakeAPI{})

	record, err := store.Find("42")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if record != nil {
		t.Fatalf("record = %v, want nil", record)
	}
}

func TestFindReadsRecord(t *testing.T) {
	api := &fakeAPI{rows: [][]string{
		{"user_id", "name", "phone", "reason"},
		{"7", "رضا احمدی", "09351234567", "اعتبار"},
		{"42", "علی محمدی", "09123456789", ""},
	}}
	store := NewStore(api)

	record, err := store.Find("42")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if record == nil {
		t.Fatal("record = nil, want row")
	}
	if record.Name != "علی محمدی" || record.Phone != "09123456789" || record.Reason != "" {
		t.Fatalf("record = %+v", record)
	}
}

func TestFindRowMatchesFirstExactly(t *testing.T) {
	// "4" must not match "42"; duplicates resolve to the first row.
	api := &fakeAPI{rows: [][]string{
		{"4", "", "", ""},
		{"42", "علی محمدی", "", ""},
		{"42", "دیگری", "", ""},
	}}
	store := NewStore(api)

	record, err := store.Find("42")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if record == nil || record.Name != "علی محمدی" {
		t.Fatalf("record = %+v, want first matching row", record)
	}
}
