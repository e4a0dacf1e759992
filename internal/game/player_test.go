package game_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/sleeping-coders/internal/game"
)

func TestHasWon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		coders int
		hasWon bool
	}{
		{coders: 0, hasWon: false},
		{coders: 1, hasWon: false},
		{coders: 2, hasWon: false},
		{coders: 3, hasWon: false},
		{coders: 4, hasWon: true},
		{coders: 5, hasWon: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%d coders", tt.coders), func(t *testing.T) {
			t.Parallel()
			p := game.NewPlayer("P1")
			for i := 0; i < tt.coders; i++ {
				p.Coders.AddCard(game.NewCoderCard(fmt.Sprintf("Coder%d", i)))
			}
			assert.Equal(t, tt.hasWon, p.HasWon())
		})
	}
}

func TestNewPlayerStartsEmpty(t *testing.T) {
	t.Parallel()

	p := game.NewPlayer("Ada")

	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, 0, p.Hand.GetAmount())
	assert.Equal(t, 0, p.Coders.GetAmount())
}

func TestPlayerString(t *testing.T) {
	t.Parallel()

	p := game.NewPlayer("P1")
	p.Hand.AddCard(game.NewNumberCard(3))
	p.Coders.AddCard(game.NewCoderCard("Ada"))

	assert.Equal(t, "Player(P1, Deck(NumberCard(3)), Deck(CoderCard(Ada)))", p.String())
}
