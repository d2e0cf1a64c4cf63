package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// API is the subset of spreadsheet operations the store needs. Rows and
// columns are 1-based, matching the spreadsheet UI.
type API interface {
	ColValues(col int) ([]string, error)
	RowValues(row int) ([]string, error)
	AppendRow(values []string) error
	UpdateCell(row, col int, value string) error
}

// Client talks to one sheet of one Google spreadsheet through the Sheets v4
// API, authenticated with a service account.
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	sheetName     string
}

func NewClient(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*Client, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets.NewClient: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

func (c *Client) ColValues(col int) ([]string, error) {
	rng := fmt.Sprintf("%s!%s:%s", c.sheetName, colLetter(col), colLetter(col))

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Do()
	if err != nil {
		return nil, fmt.Errorf("Client.ColValues: %w", err)
	}

	return flatten(resp.Values), nil
}

func (c *Client) RowValues(row int) ([]string, error) {
	rng := fmt.Sprintf("%s!%d:%d", c.sheetName, row, row)

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Do()
	if err != nil {
		return nil, fmt.Errorf("Client.RowValues: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, nil
	}

	values := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		values = append(values, fmt.Sprint(cell))
	}

	return values, nil
}

func (c *Client) AppendRow(values []string) error {
	row := make([]interface{}, 0, len(values))
	for _, v := range values {
		row = append(row, v)
	}

	vr := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.sheetName, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Do()
	if err != nil {
		return fmt.Errorf("Client.AppendRow: %w", err)
	}

	return nil
}

func (c *Client) UpdateCell(row, col int, value string) error {
	rng := fmt.Sprintf("%s!%s%d", c.sheetName, colLetter(col), row)
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{{value}}}

	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return fmt.Errorf("Client.UpdateCell: %w", err)
	}

	return nil
}

// colLetter converts a 1-based column number to its A1-notation letter. The
// record layout only uses the first four columns.
func colLetter(col int) string {
	return string(rune('A' + col - 1))
}

// flatten reduces a column read (one cell per row) to a flat slice, keeping
// empty cells so positions stay aligned with sheet rows.
func flatten(values [][]interface{}) []string {
	out := make([]string, 0, len(values))
	for _, row := range values {
		if len(row) == 0 {
			out = append(out, "")
			continue
		}
		out = append(out, fmt.Sprint(row[0]))
	}

	return out
}
