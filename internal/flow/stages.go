package flow

// Stage identifies the conversation step currently awaiting input.
type Stage string

const (
	StageName   Stage = "awaiting_name"
	StagePhone  Stage = "awaiting_phone"
	StageReason Stage = "awaiting_reason"
	StageDone   Stage = "done"
)

// Field names a single column of a user's record.
type Field string

const (
	FieldName   Field = "name"
	FieldPhone  Field = "phone"
	FieldReason Field = "reason"
)

// Record is the persisted per-user row. Empty fields are expected
// mid-conversation.
type Record struct {
	UserID string
	Name   string
	Phone  string
	Reason string
}

// RecordStore persists collected fields keyed by user id.
//
// EnsureRow is idempotent and never erases fields that are already set.
// WriteField touches exactly one column. Find returns nil when the user has
// no row yet.
type RecordStore interface {
	EnsureRow(userID string) error
	WriteField(userID string, field Field, value string) error
	Find(userID string) (*Record, error)
}

// Reply is the single outgoing message produced for a handled input. Choices,
// when present, are rendered as quick-reply options; ClearChoices removes a
// previously shown choice list.
type Reply struct {
	Text         string
	Choices      []string
	ClearChoices bool
}
