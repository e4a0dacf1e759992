package game

// Context 定义卡牌操作可见的游戏上下文（用于隔离卡牌逻辑与具体对局实现）。
// CodersGame 是它在本包中的实现，测试可以用桩替代。
type Context interface {
	// PickCard 从摸牌堆顶取走 amount 张卡牌
	PickCard(amount int) ([]Card, error)
	// GetAction 返回当前的待处理动作标记
	GetAction() PendingAction
	// SetAction 设置待处理动作标记
	SetAction(a PendingAction)
	// CurrentPlayer 返回当前回合的玩家
	CurrentPlayer() *Player
	// NextPlayer 将回合推进到下一位玩家
	NextPlayer()
	// GetSleepingCoder 返回沉睡区指定卡槽的程序员牌，空卡槽返回 nil
	GetSleepingCoder(slot int) (Card, error)
	// SetSleepingCoder 设置沉睡区指定卡槽的程序员牌，nil 表示清空该卡槽
	SetSleepingCoder(slot int, c Card) error
	// GetSleepingCoders 返回完整的沉睡区序列（用于扫描空卡槽）
	GetSleepingCoders() []Card
}
