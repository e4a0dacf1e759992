//go:build !production

package testutil

import "github.com/palemoky/sleeping-coders/internal/game"

// NewPlayers 创建一组空手牌的测试玩家
func NewPlayers(names ...string) []*game.Player {
	players := make([]*game.Player, 0, len(names))
	for _, name := range names {
		players = append(players, game.NewPlayer(name))
	}
	return players
}

// NewNumberDeck 用给定的数字按顺序创建一个数字牌叠
func NewNumberDeck(numbers ...int) *game.Deck {
	deck := game.NewDeck()
	for _, n := range numbers {
		deck.AddCard(game.NewNumberCard(n))
	}
	return deck
}

// NewSleepingRow 创建一个沉睡区，空字符串表示空卡槽
func NewSleepingRow(names ...string) []game.Card {
	row := make([]game.Card, len(names))
	for i, name := range names {
		if name != "" {
			row[i] = game.NewCoderCard(name)
		}
	}
	return row
}

// NewGame 用给定玩家、摸牌堆和沉睡区创建一局对局
func NewGame(players []*game.Player, pickup *game.Deck, row []game.Card) *game.CodersGame {
	return game.NewCodersGame(players, pickup, row)
}
