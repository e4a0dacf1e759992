package bot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/sleeping-coders/internal/bot"
	"github.com/palemoky/sleeping-coders/internal/game"
	"github.com/palemoky/sleeping-coders/internal/testutil"
)

func TestChooseHandSlotPrefersTutorWhenRowHasCoders(t *testing.T) {
	t.Parallel()

	players := testutil.NewPlayers("Bot", "P2")
	players[0].Hand.AddCards([]game.Card{game.NewNumberCard(1), game.NewTutorCard("Anna")})

	g := testutil.NewGame(players, testutil.NewNumberDeck(7), testutil.NewSleepingRow("Ada"))

	assert.Equal(t, 1, bot.ChooseHandSlot(g))
}

func TestChooseHandSlotPrefersKidnapperWhenOpponentHasCoders(t *testing.T) {
	t.Parallel()

	players := testutil.NewPlayers("Bot", "P2")
	players[0].Hand.AddCards([]game.Card{game.NewNumberCard(1), game.NewKeyboardKidnapperCard()})
	players[1].Coders.AddCard(game.NewCoderCard("Ada"))

	g := testutil.NewGame(players, testutil.NewNumberDeck(7), nil)

	assert.Equal(t, 1, bot.ChooseHandSlot(g))
}

func TestChooseHandSlotFallsBackToNumberCard(t *testing.T) {
	t.Parallel()

	// 沉睡区没有程序员牌、对手也没有收集，特攻牌都不值得出
	players := testutil.NewPlayers("Bot", "P2")
	players[0].Hand.AddCards([]game.Card{
		game.NewTutorCard("Anna"),
		game.NewKeyboardKidnapperCard(),
		game.NewNumberCard(1),
	})

	g := testutil.NewGame(players, testutil.NewNumberDeck(7), testutil.NewSleepingRow(""))

	assert.Equal(t, 2, bot.ChooseHandSlot(g))
}

func TestChooseActionTargetForPickup(t *testing.T) {
	t.Parallel()

	players := testutil.NewPlayers("Bot", "P2")
	g := testutil.NewGame(players, game.NewDeck(), testutil.NewSleepingRow("", "Grace"))
	g.SetAction(game.PickupCoder)

	target, slot, ok := bot.ChooseActionTarget(g)
	require.True(t, ok)
	assert.Same(t, players[0], target)
	assert.Equal(t, 1, slot)
}

func TestChooseActionTargetStealsFromRichestOpponent(t *testing.T) {
	t.Parallel()

	players := testutil.NewPlayers("Bot", "P2", "P3")
	players[1].Coders.AddCard(game.NewCoderCard("Ada"))
	players[2].Coders.AddCards([]game.Card{game.NewCoderCard("Grace"), game.NewCoderCard("Linus")})

	g := testutil.NewGame(players, game.NewDeck(), nil)
	g.SetAction(game.StealCoder)

	target, slot, ok := bot.ChooseActionTarget(g)
	require.True(t, ok)
	assert.Same(t, players[2], target)
	assert.Equal(t, 0, slot)
}

func TestChooseActionTargetWithNoCandidates(t *testing.T) {
	t.Parallel()

	g := testutil.NewGame(testutil.NewPlayers("Bot", "P2"), game.NewDeck(), testutil.NewSleepingRow(""))
	g.SetAction(game.PickupCoder)

	_, _, ok := bot.ChooseActionTarget(g)
	assert.False(t, ok)
}

func TestTakeTurnResolvesTutorPickup(t *testing.T) {
	t.Parallel()

	players := testutil.NewPlayers("Bot", "P2")
	tutor := game.NewTutorCard("Anna")
	players[0].Hand.AddCard(tutor)

	g := testutil.NewGame(players, testutil.NewNumberDeck(7), testutil.NewSleepingRow("Ada"))

	played, err := bot.TakeTurn(g)
	require.NoError(t, err)

	assert.Same(t, tutor, played)
	assert.Equal(t, 1, players[0].Coders.GetAmount())
	assert.Nil(t, g.GetSleepingCoders()[0])
	assert.Equal(t, game.NoAction, g.GetAction())
	assert.Same(t, players[1], g.CurrentPlayer())
}

func TestTakeTurnSkipsActionWithoutTargets(t *testing.T) {
	t.Parallel()

	// 手里只有导师牌而沉睡区已空：出牌后放弃动作并继续轮转
	players := testutil.NewPlayers("Bot", "P2")
	players[0].Hand.AddCard(game.NewTutorCard("Anna"))

	g := testutil.NewGame(players, testutil.NewNumberDeck(7), testutil.NewSleepingRow(""))

	_, err := bot.TakeTurn(g)
	require.NoError(t, err)

	assert.Equal(t, game.NoAction, g.GetAction())
	assert.Same(t, players[1], g.CurrentPlayer())
}

func TestTakeTurnSurfacesEmptyPickupPile(t *testing.T) {
	t.Parallel()

	players := testutil.NewPlayers("Bot", "P2")
	players[0].Hand.AddCard(game.NewNumberCard(3))

	g := testutil.NewGame(players, game.NewDeck(), nil)

	_, err := bot.TakeTurn(g)
	assert.Error(t, err)
	assert.Same(t, players[0], g.CurrentPlayer())
}
