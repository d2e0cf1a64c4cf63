package bot

import (
	"sync"

	"github.com/siavashv/brokerage_intake_bot/internal/flow"
)

// SessionManager keeps per-chat conversation stage. Sessions live only in
// memory: a process restart loses the stage but not the stored fields, and
// the user is simply greeted from the start again.
type SessionManager struct {
	mu     sync.RWMutex
	stages map[int64]flow.Stage
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		stages: make(map[int64]flow.Stage),
	}
}

func (m *SessionManager) Get(chatID int64) (flow.Stage, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stage, ok := m.stages[chatID]
	return stage, ok
}

func (m *SessionManager) Set(chatID int64, stage flow.Stage) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stages[chatID] = stage
}

func (m *SessionManager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.stages, chatID)
}
