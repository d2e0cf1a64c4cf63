package flow

import (
	"fmt"
	"strings"
)

// Machine drives a user's conversation one message at a time. It owns no
// session storage; the caller tracks the current stage and feeds it back in
// with the next input.
type Machine struct {
	store RecordStore
}

func NewMachine(store RecordStore) *Machine {
	return &Machine{store: store}
}

// Start ensures a record row exists for the user and produces the greeting.
// Restarting an existing user keeps previously stored fields intact.
func (m *Machine) Start(userID string) (Stage, Reply, error) {
	if err := m.store.EnsureRow(userID); err != nil {
		return StageName, Reply{}, fmt.Errorf("Machine.Start: %w", err)
	}

	return StageName, Reply{Text: msgWelcome}, nil
}

// Handle validates text against the given stage, persists the field on
// success, and returns the next stage together with the single outgoing
// reply. A failed store write leaves the stage unchanged and produces no
// reply: the field counts as accepted only once the write succeeds.
func (m *Machine) Handle(userID string, stage Stage, text string) (Stage, Reply, error) {
	text = strings.TrimSpace(text)

	switch stage {
	case StageName:
		if !IsValidName(text) {
			return StageName, Reply{Text: msgNameInvalid}, nil
		}

		if err := m.store.WriteField(userID, FieldName, text); err != nil {
			return StageName, Reply{}, fmt.Errorf("Machine.Handle: %w", err)
		}

		return StagePhone, Reply{Text: msgAskPhone}, nil

	case StagePhone:
		if !IsValidPhone(text) {
			return StagePhone, Reply{Text: msgPhoneInvalid}, nil
		}

		if err := m.store.WriteField(userID, FieldPhone, text); err != nil {
			return StagePhone, Reply{}, fmt.Errorf("Machine.Handle: %w", err)
		}

		return StageReason, Reply{Text: msgAskReason, Choices: Reasons}, nil

	case StageReason:
		if !IsKnownReason(text) {
			return StageReason, Reply{Text: msgReasonInvalid}, nil
		}

		if err := m.store.WriteField(userID, FieldReason, text); err != nil {
			return StageReason, Reply{}, fmt.Errorf("Machine.Handle: %w", err)
		}

		return StageDone, Reply{Text: msgDone, ClearChoices: true}, nil

	default:
		// Lost or unknown stage: begin again. EnsureRow is idempotent, so
		// fields stored before the stage was lost survive.
		return m.Start(userID)
	}
}
