package game

import (
	"fmt"

	"github.com/palemoky/sleeping-coders/internal/config"
)

// NewPickupDeck 按配置生成摸牌堆：数字牌 0-9、导师牌和两种特攻牌。
// 程序员牌不进摸牌堆，它们只出现在沉睡区。
func NewPickupDeck(cfg *config.DeckConfig) *Deck {
	deck := NewDeck()
	for i := 0; i < cfg.NumberCopies; i++ {
		for n := 0; n < 10; n++ {
			deck.AddCard(NewNumberCard(n))
		}
	}
	for _, name := range cfg.Tutors {
		deck.AddCard(NewTutorCard(name))
	}
	for i := 0; i < cfg.SpecialCopies; i++ {
		deck.AddCard(NewAllNighterCard())
		deck.AddCard(NewKeyboardKidnapperCard())
	}
	return deck
}

// NewSleepingRow 按程序员名单铺设沉睡区，每个名字一张程序员牌
func NewSleepingRow(names []string) []Card {
	row := make([]Card, 0, len(names))
	for _, name := range names {
		row = append(row, NewCoderCard(name))
	}
	return row
}

// Setup 构建一局新游戏：生成并洗乱摸牌堆，给每位玩家发起始手牌，铺设沉睡区
func Setup(cfg *config.Config, names []string) (*CodersGame, error) {
	if len(names) < 2 {
		return nil, fmt.Errorf("至少需要 2 名玩家，当前只有 %d 名", len(names))
	}

	pickup := NewPickupDeck(&cfg.Deck)
	if need := len(names) * cfg.Game.HandSize; pickup.GetAmount() < need {
		return nil, fmt.Errorf("摸牌堆只有 %d 张牌，不够发 %d 张起始手牌", pickup.GetAmount(), need)
	}
	pickup.Shuffle()

	players := make([]*Player, 0, len(names))
	for _, name := range names {
		p := NewPlayer(name)
		drawn, err := pickup.Pick(cfg.Game.HandSize)
		if err != nil {
			return nil, err
		}
		p.Hand.AddCards(drawn)
		players = append(players, p)
	}

	return NewCodersGame(players, pickup, NewSleepingRow(cfg.Deck.Coders)), nil
}
