// Package bot 实现简单的电脑玩家：贪心挑牌，优先抢夺程序员牌。
package bot

import "github.com/palemoky/sleeping-coders/internal/game"

// ChooseHandSlot 挑选当前玩家要打出的手牌卡槽。
// 优先级：能唤醒就出导师牌，能偷就出键盘绑匪牌，能催眠就出通宵牌，
// 否则出第一张数字牌。
func ChooseHandSlot(g *game.CodersGame) int {
	rowHasCoder := firstOccupiedSlot(g) >= 0
	victim := richestOpponent(g)

	numberSlot := -1
	for i, c := range g.CurrentPlayer().Hand.GetCards() {
		switch c.(type) {
		case *game.TutorCard:
			if rowHasCoder {
				return i
			}
		case *game.KeyboardKidnapperCard:
			if victim != nil {
				return i
			}
		case *game.AllNighterCard:
			if victim != nil && firstEmptySlot(g) >= 0 {
				return i
			}
		case *game.NumberCard:
			if numberSlot < 0 {
				numberSlot = i
			}
		}
	}
	if numberSlot >= 0 {
		return numberSlot
	}
	return 0
}

// ChooseActionTarget 为当前待处理的动作挑选目标玩家和卡槽。
// 没有合法目标时返回 false。
func ChooseActionTarget(g *game.CodersGame) (*game.Player, int, bool) {
	switch g.GetAction() {
	case game.PickupCoder:
		if slot := firstOccupiedSlot(g); slot >= 0 {
			return g.CurrentPlayer(), slot, true
		}
	case game.StealCoder, game.SleepCoder:
		if victim := richestOpponent(g); victim != nil {
			return victim, 0, true
		}
	}
	return nil, 0, false
}

// TakeTurn 让机器人完成当前玩家的一整个回合：出牌，并在需要时解析后续动作。
// 返回打出的牌。
func TakeTurn(g *game.CodersGame) (game.Card, error) {
	c, err := g.PlayCard(ChooseHandSlot(g))
	if err != nil {
		return nil, err
	}
	if g.GetAction() == game.NoAction {
		return c, nil
	}

	target, slot, ok := ChooseActionTarget(g)
	if !ok {
		// 没有合法目标，放弃本次动作并继续轮转
		g.SetAction(game.NoAction)
		g.NextPlayer()
		return c, nil
	}
	return c, g.ResolveAction(c, target, slot)
}

// firstOccupiedSlot 返回沉睡区第一个有程序员牌的卡槽，没有则返回 -1
func firstOccupiedSlot(g *game.CodersGame) int {
	for i, c := range g.GetSleepingCoders() {
		if c != nil {
			return i
		}
	}
	return -1
}

// firstEmptySlot 返回沉睡区第一个空卡槽，没有则返回 -1
func firstEmptySlot(g *game.CodersGame) int {
	for i, c := range g.GetSleepingCoders() {
		if c == nil {
			return i
		}
	}
	return -1
}

// richestOpponent 返回收集程序员牌最多的对手，对手都没有收集时返回 nil
func richestOpponent(g *game.CodersGame) *game.Player {
	current := g.CurrentPlayer()
	var victim *game.Player
	for _, p := range g.Players {
		if p == current || p.Coders.GetAmount() == 0 {
			continue
		}
		if victim == nil || p.Coders.GetAmount() > victim.Coders.GetAmount() {
			victim = p
		}
	}
	return victim
}
