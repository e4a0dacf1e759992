//go:build !production

package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/palemoky/sleeping-coders/internal/game"
)

// MockContext 实现 game.Context 的 mock
type MockContext struct {
	mock.Mock
}

func (m *MockContext) PickCard(amount int) ([]game.Card, error) {
	args := m.Called(amount)
	if cards, ok := args.Get(0).([]game.Card); ok {
		return cards, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockContext) GetAction() game.PendingAction {
	args := m.Called()
	return args.Get(0).(game.PendingAction)
}

func (m *MockContext) SetAction(a game.PendingAction) {
	m.Called(a)
}

func (m *MockContext) CurrentPlayer() *game.Player {
	args := m.Called()
	if p, ok := args.Get(0).(*game.Player); ok {
		return p
	}
	return nil
}

func (m *MockContext) NextPlayer() {
	m.Called()
}

func (m *MockContext) GetSleepingCoder(slot int) (game.Card, error) {
	args := m.Called(slot)
	if c, ok := args.Get(0).(game.Card); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockContext) SetSleepingCoder(slot int, c game.Card) error {
	args := m.Called(slot, c)
	return args.Error(0)
}

func (m *MockContext) GetSleepingCoders() []game.Card {
	args := m.Called()
	if cards, ok := args.Get(0).([]game.Card); ok {
		return cards
	}
	return nil
}
