package game

import (
	"fmt"

	"github.com/palemoky/sleeping-coders/internal/apperrors"
)

// PendingAction 待处理动作标记。出牌后若标记不是 NoAction，
// 回合循环需要先征询目标卡槽，再调用卡牌的 Action 完成解析。
type PendingAction int

const (
	NoAction PendingAction = iota
	PickupCoder
	SleepCoder
	StealCoder
)

// actionNames 动作标记字符串映射表
var actionNames = map[PendingAction]string{
	NoAction:    "NO_ACTION",
	PickupCoder: "PICKUP_CODER",
	SleepCoder:  "SLEEP_CODER",
	StealCoder:  "STEAL_CODER",
}

func (a PendingAction) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "NO_ACTION"
}

// Card 定义一张卡牌。卡牌是不可变的值对象，通过指针身份在牌叠之间转移，
// 不会被隐式复制。
//
// Play 在玩家从手牌打出这张牌时调用；Action 仅在待处理动作标记不是
// NoAction 时调用，传入出牌后选定的目标卡槽。两者都不吞错误：
// 前置条件不满足时直接向调用方返回，且失败前不留下部分变更。
type Card interface {
	fmt.Stringer
	Play(p *Player, g Context) error
	Action(target *Player, g Context, slot int) error
}

// playFromHand 通用出牌流程：先从摸牌堆补一张（失败则整体不动），
// 再把打出的牌移出手牌、补牌入手，最后设置待处理动作标记。
// 手牌中按指针身份查找这张牌，重复面值的牌互不干扰。
func playFromHand(c Card, p *Player, g Context, next PendingAction) error {
	slot := -1
	for i, hc := range p.Hand.GetCards() {
		if hc == c {
			slot = i
			break
		}
	}
	if slot < 0 {
		return apperrors.ErrOutOfRange
	}

	drawn, err := g.PickCard(1)
	if err != nil {
		return err
	}

	_ = p.Hand.RemoveCard(slot) // 卡槽已校验过
	p.Hand.AddCards(drawn)
	g.SetAction(next)
	return nil
}

// firstEmptySlot 返回沉睡区第一个空卡槽（从卡槽 0 开始扫描），没有则返回 -1
func firstEmptySlot(g Context) int {
	for i, c := range g.GetSleepingCoders() {
		if c == nil {
			return i
		}
	}
	return -1
}

// NumberCard 数字牌。打出后没有后续动作，直接轮到下一位玩家。
type NumberCard struct {
	Number int
}

// NewNumberCard 创建一张数字牌
func NewNumberCard(number int) *NumberCard {
	return &NumberCard{Number: number}
}

func (c *NumberCard) Play(p *Player, g Context) error {
	if err := playFromHand(c, p, g, NoAction); err != nil {
		return err
	}
	g.NextPlayer()
	return nil
}

func (c *NumberCard) Action(_ *Player, _ Context, _ int) error {
	return nil
}

func (c *NumberCard) String() string {
	return fmt.Sprintf("NumberCard(%d)", c.Number)
}

// TutorCard 导师牌。打出后可以从沉睡区唤醒一张程序员牌。
type TutorCard struct {
	Name string
}

// NewTutorCard 创建一张导师牌
func NewTutorCard(name string) *TutorCard {
	return &TutorCard{Name: name}
}

func (c *TutorCard) Play(p *Player, g Context) error {
	return playFromHand(c, p, g, PickupCoder)
}

// Action 将沉睡区 slot 处的程序员牌移入出牌玩家的收集堆，并清空该卡槽。
// 空卡槽不是合法目标。
func (c *TutorCard) Action(target *Player, g Context, slot int) error {
	coder, err := g.GetSleepingCoder(slot)
	if err != nil {
		return err
	}
	if coder == nil {
		return apperrors.ErrOutOfRange
	}

	target.Coders.AddCard(coder)
	_ = g.SetSleepingCoder(slot, nil)
	g.SetAction(NoAction)
	g.NextPlayer()
	return nil
}

func (c *TutorCard) String() string {
	return fmt.Sprintf("TutorCard(%s)", c.Name)
}

// AllNighterCard 通宵牌。打出后可以把某位玩家收集的程序员牌放回沉睡区。
type AllNighterCard struct{}

// NewAllNighterCard 创建一张通宵牌
func NewAllNighterCard() *AllNighterCard {
	return &AllNighterCard{}
}

func (c *AllNighterCard) Play(p *Player, g Context) error {
	return playFromHand(c, p, g, SleepCoder)
}

// Action 将 target 收集堆中 slot 处的程序员牌移到沉睡区第一个空卡槽。
// 沉睡区满时失败，target 的收集堆和沉睡区都保持不变。
func (c *AllNighterCard) Action(target *Player, g Context, slot int) error {
	coder, err := target.Coders.GetCard(slot)
	if err != nil {
		return err
	}

	empty := firstEmptySlot(g)
	if empty < 0 {
		return apperrors.ErrNoEmptySlot
	}

	_ = g.SetSleepingCoder(empty, coder)
	_ = target.Coders.RemoveCard(slot)
	g.SetAction(NoAction)
	g.NextPlayer()
	return nil
}

func (c *AllNighterCard) String() string {
	return "AllNighterCard()"
}

// KeyboardKidnapperCard 键盘绑匪牌。打出后可以偷取某位玩家收集的程序员牌。
type KeyboardKidnapperCard struct{}

// NewKeyboardKidnapperCard 创建一张键盘绑匪牌
func NewKeyboardKidnapperCard() *KeyboardKidnapperCard {
	return &KeyboardKidnapperCard{}
}

func (c *KeyboardKidnapperCard) Play(p *Player, g Context) error {
	return playFromHand(c, p, g, StealCoder)
}

// Action 将 target 收集堆中 slot 处的程序员牌移入当前玩家的收集堆
func (c *KeyboardKidnapperCard) Action(target *Player, g Context, slot int) error {
	coder, err := target.Coders.GetCard(slot)
	if err != nil {
		return err
	}

	g.CurrentPlayer().Coders.AddCard(coder)
	_ = target.Coders.RemoveCard(slot)
	g.SetAction(NoAction)
	g.NextPlayer()
	return nil
}

func (c *KeyboardKidnapperCard) String() string {
	return "KeyboardKidnapperCard()"
}

// CoderCard 沉睡的程序员牌，收集 4 张即获胜。
// 它不能从手牌打出：Play 只把动作标记复位，不做任何牌叠变更，
// 也不报错（容忍非法调用）。
type CoderCard struct {
	Name string
}

// NewCoderCard 创建一张程序员牌
func NewCoderCard(name string) *CoderCard {
	return &CoderCard{Name: name}
}

func (c *CoderCard) Play(_ *Player, g Context) error {
	g.SetAction(NoAction)
	return nil
}

func (c *CoderCard) Action(_ *Player, _ Context, _ int) error {
	return nil
}

func (c *CoderCard) String() string {
	return fmt.Sprintf("CoderCard(%s)", c.Name)
}
