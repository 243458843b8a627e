package game

import "sync"

// Manager keeps the current round of every chat.
type Manager struct {
	games    map[int64]*State
	mu       sync.Mutex
	newRound func() *State
}

func NewManager() *Manager {
	return NewManagerWith(NewState)
}

// NewManagerWith uses newRound to start every round.
func NewManagerWith(newRound func() *State) *Manager {
	return &Manager{
		games:    make(map[int64]*State),
		newRound: newRound,
	}
}

func (m *Manager) Get(chatID int64) *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.games[chatID]
}

func (m *Manager) Set(chatID int64, state *State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[chatID] = state
}

func (m *Manager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, chatID)
}

// Restart throws away the chat's round and deals a new one.
func (m *Manager) Restart(chatID int64) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.newRound()
	m.games[chatID] = s
	return s.Snapshot()
}

// Do runs fn against the chat's round with the registry locked, so actions
// for the same chat are applied one at a time. ok is false when the chat
// has no round.
func (m *Manager) Do(chatID int64, fn func(*State) (Snapshot, error)) (snap Snapshot, ok bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.games[chatID]
	if s == nil {
		return Snapshot{}, false, nil
	}

	snap, err = fn(s)
	return snap, true, err
}
