package game

import "fmt"

// WinningCoders 获胜所需收集的程序员牌数量
const WinningCoders = 4

// Player 游戏中的一名玩家
type Player struct {
	Name   string
	Hand   *Deck // 手牌
	Coders *Deck // 已收集的程序员牌
}

// NewPlayer 创建一名玩家，手牌和收集堆均为空
func NewPlayer(name string) *Player {
	return &Player{
		Name:   name,
		Hand:   NewDeck(),
		Coders: NewDeck(),
	}
}

// HasWon 收集到 4 张或以上程序员牌即获胜
func (p *Player) HasWon() bool {
	return p.Coders.GetAmount() >= WinningCoders
}

func (p *Player) String() string {
	return fmt.Sprintf("Player(%s, %s, %s)", p.Name, p.Hand, p.Coders)
}
