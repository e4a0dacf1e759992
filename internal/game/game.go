package game

import (
	"github.com/google/uuid"

	"github.com/palemoky/sleeping-coders/internal/apperrors"
)

// CodersGame 一局「沉睡的程序员」对局：摸牌堆、沉睡区、玩家与当前回合。
// 单线程回合制，一个实例同一时刻只有一个逻辑回合在执行；
// 实例之间不共享任何可变状态。
type CodersGame struct {
	ID      string
	Players []*Player

	pickup   *Deck
	sleeping []Card // 固定长度，nil 表示空卡槽
	turn     int
	action   PendingAction
}

// NewCodersGame 创建一局对局。sleeping 的长度即沉睡区的固定容量。
func NewCodersGame(players []*Player, pickup *Deck, sleeping []Card) *CodersGame {
	return &CodersGame{
		ID:       uuid.NewString(),
		Players:  players,
		pickup:   pickup,
		sleeping: sleeping,
	}
}

// PickCard 从摸牌堆顶取走 amount 张卡牌。摸牌堆的补牌策略不在本核心范围内：
// 牌不够时直接返回 ErrInsufficientCards，由外层决定如何收场。
func (g *CodersGame) PickCard(amount int) ([]Card, error) {
	return g.pickup.Pick(amount)
}

// GetPickupPile 返回摸牌堆
func (g *CodersGame) GetPickupPile() *Deck {
	return g.pickup
}

// GetAction 返回当前的待处理动作标记
func (g *CodersGame) GetAction() PendingAction {
	return g.action
}

// SetAction 设置待处理动作标记
func (g *CodersGame) SetAction(a PendingAction) {
	g.action = a
}

// CurrentPlayer 返回当前回合的玩家
func (g *CodersGame) CurrentPlayer() *Player {
	return g.Players[g.turn]
}

// CurrentTurn 返回当前回合玩家的索引
func (g *CodersGame) CurrentTurn() int {
	return g.turn
}

// NextPlayer 将回合推进到下一位玩家
func (g *CodersGame) NextPlayer() {
	g.turn = (g.turn + 1) % len(g.Players)
}

// GetSleepingCoder 返回沉睡区指定卡槽的程序员牌，空卡槽返回 nil
func (g *CodersGame) GetSleepingCoder(slot int) (Card, error) {
	if slot < 0 || slot >= len(g.sleeping) {
		return nil, apperrors.ErrOutOfRange
	}
	return g.sleeping[slot], nil
}

// SetSleepingCoder 设置沉睡区指定卡槽的程序员牌，nil 表示清空该卡槽
func (g *CodersGame) SetSleepingCoder(slot int, c Card) error {
	if slot < 0 || slot >= len(g.sleeping) {
		return apperrors.ErrOutOfRange
	}
	g.sleeping[slot] = c
	return nil
}

// GetSleepingCoders 返回完整的沉睡区序列
func (g *CodersGame) GetSleepingCoders() []Card {
	return g.sleeping
}

// PlayCard 当前玩家打出手牌中 slot 处的卡牌，返回打出的牌
func (g *CodersGame) PlayCard(slot int) (Card, error) {
	p := g.CurrentPlayer()
	c, err := p.Hand.GetCard(slot)
	if err != nil {
		return nil, err
	}
	if err := c.Play(p, g); err != nil {
		return nil, err
	}
	return c, nil
}

// ResolveAction 以选定的目标玩家和卡槽解析当前待处理的动作
func (g *CodersGame) ResolveAction(c Card, target *Player, slot int) error {
	if g.action == NoAction {
		return apperrors.ErrNoPendingAction
	}
	return c.Action(target, g, slot)
}

// CheckWinner 检查是否有玩家获胜
func (g *CodersGame) CheckWinner() (*Player, bool) {
	for _, p := range g.Players {
		if p.HasWon() {
			return p, true
		}
	}
	return nil, false
}
