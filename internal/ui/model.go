package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/sleeping-coders/internal/bot"
	"github.com/palemoky/sleeping-coders/internal/game"
	"github.com/palemoky/sleeping-coders/internal/logger"
)

// phase 人机交互阶段
type phase int

const (
	phasePlay         phase = iota // 等待人类玩家选择手牌
	phaseSelectTarget              // 等待选择目标玩家（偷取/催眠）
	phaseSelectSlot                // 等待选择目标卡槽
	phaseBots                      // 机器人回合
	phaseGameOver
)

const botTurnDelay = 600 * time.Millisecond

// botTurnMsg 触发下一个机器人回合
type botTurnMsg struct{}

// Model 本地对局的 TUI 模型。人类玩家固定是 Players[0]，
// 其余玩家由 bot 包代打。
type Model struct {
	game  *game.CodersGame
	human *game.Player

	width  int
	height int

	phase   phase
	pending game.Card    // 已打出、等待解析动作的牌
	target  *game.Player // 已选定的动作目标玩家
	winner  *game.Player

	slotInput textinput.Model
	errMsg    string
	moveLog   []string
}

// NewModel 创建本地对局模型
func NewModel(g *game.CodersGame) *Model {
	slotInput := textinput.New()
	slotInput.Placeholder = "输入卡槽编号后回车"
	slotInput.CharLimit = 2
	slotInput.Width = 20

	return &Model{
		game:      g,
		human:     g.Players[0],
		phase:     phasePlay,
		slotInput: slotInput,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func botTurnCmd() tea.Cmd {
	return tea.Tick(botTurnDelay, func(time.Time) tea.Msg {
		return botTurnMsg{}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case botTurnMsg:
		return m.advanceBots()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.phase != phaseSelectSlot {
				return m, tea.Quit
			}
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey 按当前阶段分发按键
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case phasePlay:
		return m.handlePlayKey(msg)
	case phaseSelectTarget:
		return m.handleTargetKey(msg)
	case phaseSelectSlot:
		return m.handleSlotKey(msg)
	case phaseGameOver:
		if msg.String() == "enter" || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

// handlePlayKey 数字键选择手牌并打出
func (m *Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slot, err := strconv.Atoi(msg.String())
	if err != nil {
		return m, nil
	}

	played, playErr := m.game.PlayCard(slot - 1)
	if playErr != nil {
		m.errMsg = playErr.Error()
		return m, nil
	}
	m.errMsg = ""
	m.addMove(fmt.Sprintf("%s 打出了 %s", m.human.Name, played))
	logger.LogInfo("game %s: %s played %s", m.game.ID, m.human.Name, played)

	switch m.game.GetAction() {
	case game.NoAction:
		// 数字牌已经推进了回合
		return m.afterHumanTurn()
	case game.PickupCoder:
		m.pending = played
		m.target = m.human
		return m.enterSlotSelect()
	default: // 偷取 / 催眠需要先选目标玩家
		m.pending = played
		m.target = nil
		m.phase = phaseSelectTarget
		return m, nil
	}
}

// handleTargetKey 数字键选择目标玩家，esc 放弃动作
func (m *Model) handleTargetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		return m.skipAction()
	}

	idx, err := strconv.Atoi(msg.String())
	if err != nil {
		return m, nil
	}
	opponents := m.opponents()
	if idx < 1 || idx > len(opponents) {
		return m, nil
	}

	target := opponents[idx-1]
	if target.Coders.GetAmount() == 0 {
		m.errMsg = fmt.Sprintf("%s 还没有收集程序员牌", target.Name)
		return m, nil
	}
	m.errMsg = ""
	m.target = target
	return m.enterSlotSelect()
}

// handleSlotKey 通过输入框选择目标卡槽，esc 放弃动作
func (m *Model) handleSlotKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.skipAction()
	case "enter":
		slot, err := strconv.Atoi(m.slotInput.Value())
		if err != nil {
			m.errMsg = "请输入卡槽编号"
			return m, nil
		}
		if resolveErr := m.game.ResolveAction(m.pending, m.target, slot-1); resolveErr != nil {
			m.errMsg = resolveErr.Error()
			m.slotInput.SetValue("")
			return m, nil
		}
		m.errMsg = ""
		m.addMove(fmt.Sprintf("%s 的 %s 生效了", m.human.Name, m.pending))
		logger.LogInfo("game %s: %s resolved %s (action)", m.game.ID, m.human.Name, m.pending)
		m.pending = nil
		m.target = nil
		m.slotInput.Blur()
		return m.afterHumanTurn()
	}

	var cmd tea.Cmd
	m.slotInput, cmd = m.slotInput.Update(msg)
	return m, cmd
}

// enterSlotSelect 进入卡槽选择阶段
func (m *Model) enterSlotSelect() (tea.Model, tea.Cmd) {
	m.phase = phaseSelectSlot
	m.slotInput.SetValue("")
	return m, m.slotInput.Focus()
}

// skipAction 放弃当前待处理动作并继续轮转（没有合法目标时的出口）
func (m *Model) skipAction() (tea.Model, tea.Cmd) {
	m.addMove(fmt.Sprintf("%s 放弃了 %s 的动作", m.human.Name, m.pending))
	m.pending = nil
	m.target = nil
	m.errMsg = ""
	m.slotInput.Blur()
	m.game.SetAction(game.NoAction)
	m.game.NextPlayer()
	return m.afterHumanTurn()
}

// afterHumanTurn 人类回合结束后检查胜负并调度机器人回合
func (m *Model) afterHumanTurn() (tea.Model, tea.Cmd) {
	if winner, ok := m.game.CheckWinner(); ok {
		return m.finish(winner)
	}
	if m.game.CurrentPlayer() == m.human {
		m.phase = phasePlay
		return m, nil
	}
	m.phase = phaseBots
	return m, botTurnCmd()
}

// advanceBots 执行一个机器人回合，直到轮回人类玩家或分出胜负
func (m *Model) advanceBots() (tea.Model, tea.Cmd) {
	if m.phase != phaseBots {
		return m, nil
	}

	actor := m.game.CurrentPlayer()
	played, err := bot.TakeTurn(m.game)
	if err != nil {
		// 摸牌堆见底等不可恢复情形：记录并结束对局
		logger.LogError("game %s: bot %s turn failed: %v", m.game.ID, actor.Name, err)
		m.errMsg = err.Error()
		return m.finish(nil)
	}
	m.addMove(fmt.Sprintf("%s 打出了 %s", actor.Name, played))

	if winner, ok := m.game.CheckWinner(); ok {
		return m.finish(winner)
	}
	if m.game.CurrentPlayer() == m.human {
		m.phase = phasePlay
		return m, nil
	}
	return m, botTurnCmd()
}

// finish 结束对局
func (m *Model) finish(winner *game.Player) (tea.Model, tea.Cmd) {
	m.winner = winner
	m.phase = phaseGameOver
	if winner != nil {
		logger.LogInfo("game %s: winner is %s", m.game.ID, winner.Name)
	}
	return m, nil
}

// opponents 返回人类玩家的所有对手（按座位顺序）
func (m *Model) opponents() []*game.Player {
	opps := make([]*game.Player, 0, len(m.game.Players)-1)
	for _, p := range m.game.Players {
		if p != m.human {
			opps = append(opps, p)
		}
	}
	return opps
}

// addMove 追加一条对局动态，只保留最近几条
func (m *Model) addMove(move string) {
	m.moveLog = append(m.moveLog, move)
	if len(m.moveLog) > 6 {
		m.moveLog = m.moveLog[len(m.moveLog)-6:]
	}
}
