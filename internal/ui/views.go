package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/sleeping-coders/internal/game"
)

func (m *Model) View() string {
	if m.phase == phaseGameOver {
		return docStyle.Render(m.gameOverView())
	}
	return docStyle.Render(m.gameView())
}

// gameView 对局主界面：沉睡区、玩家区、手牌区与提示区
func (m *Model) gameView() string {
	var sb strings.Builder

	sb.WriteString(m.center(titleStyle("💤 沉睡的程序员")))
	sb.WriteString("\n\n")

	sb.WriteString(m.center(boxStyle.Render(m.sleepingRowView())))
	sb.WriteString("\n")
	sb.WriteString(m.center(boxStyle.Render(m.playersView())))
	sb.WriteString("\n")
	sb.WriteString(m.center(boxStyle.Render(m.handView())))
	sb.WriteString("\n")

	if len(m.moveLog) > 0 {
		sb.WriteString(m.center(dimStyle.Render(strings.Join(m.moveLog, "\n"))))
		sb.WriteString("\n")
	}

	if m.errMsg != "" {
		sb.WriteString(m.center(errorStyle.Render("⚠ " + m.errMsg)))
		sb.WriteString("\n")
	}

	sb.WriteString(m.center(promptStyle.Render(m.promptView())))
	return sb.String()
}

// sleepingRowView 渲染沉睡区
func (m *Model) sleepingRowView() string {
	row := m.game.GetSleepingCoders()
	labels := make([]string, 0, len(row))
	for i, c := range row {
		labels = append(labels, slotLabel(i, c))
	}

	var sb strings.Builder
	sb.WriteString("沉睡区:\n")
	// 每行放 4 个卡槽
	for i := 0; i < len(labels); i += 4 {
		end := min(i+4, len(labels))
		sb.WriteString("  " + strings.Join(labels[i:end], "   "))
		if end < len(labels) {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// playersView 渲染所有玩家的收集进度
func (m *Model) playersView() string {
	var sb strings.Builder
	sb.WriteString("玩家:\n")

	opponentNo := 0
	for _, p := range m.game.Players {
		prefix := "  "
		if p == m.game.CurrentPlayer() {
			prefix = TurnIcon + " "
		}

		tag := ""
		if p == m.human {
			tag = " (你)"
		} else {
			opponentNo++
			if m.phase == phaseSelectTarget {
				tag = fmt.Sprintf(" [按 %d 选择]", opponentNo)
			}
		}

		coders := make([]string, 0, p.Coders.GetAmount())
		for i, c := range p.Coders.GetCards() {
			coders = append(coders, fmt.Sprintf("[%d] %s", i+1, cardLabel(c)))
		}
		collected := dimStyle.Render("(还没有程序员牌)")
		if len(coders) > 0 {
			collected = strings.Join(coders, " ")
		}

		sb.WriteString(fmt.Sprintf("%s%s%s  手牌 %d 张  %s\n",
			prefix, p.Name, tag, p.Hand.GetAmount(), collected))
	}
	sb.WriteString(fmt.Sprintf("\n摸牌堆剩余: %d 张", m.game.GetPickupPile().GetAmount()))
	return sb.String()
}

// handView 渲染人类玩家的手牌
func (m *Model) handView() string {
	labels := make([]string, 0, m.human.Hand.GetAmount())
	for i, c := range m.human.Hand.GetCards() {
		labels = append(labels, fmt.Sprintf("[%d] %s", i+1, cardLabel(c)))
	}
	return "你的手牌:\n  " + strings.Join(labels, "   ")
}

// promptView 按阶段渲染操作提示
func (m *Model) promptView() string {
	switch m.phase {
	case phasePlay:
		return "轮到你了：按数字键打出对应手牌（q 退出）"
	case phaseSelectTarget:
		if _, ok := m.pending.(*game.KeyboardKidnapperCard); ok {
			return "选择要偷取的玩家：按对应数字键（esc 放弃）"
		}
		return "选择要催眠的玩家：按对应数字键（esc 放弃）"
	case phaseSelectSlot:
		prompt := "选择沉睡区卡槽: "
		if _, ok := m.pending.(*game.TutorCard); !ok {
			prompt = fmt.Sprintf("选择 %s 的程序员牌卡槽: ", m.target.Name)
		}
		return prompt + m.slotInput.View()
	case phaseBots:
		return dimStyle.Render(fmt.Sprintf("%s 正在思考...", m.game.CurrentPlayer().Name))
	}
	return ""
}

// gameOverView 对局结束界面
func (m *Model) gameOverView() string {
	var sb strings.Builder
	sb.WriteString(m.center(titleStyle("游戏结束")))
	sb.WriteString("\n\n")

	if m.winner == nil {
		sb.WriteString(m.center("摸牌堆见底了，本局没有赢家"))
	} else {
		line := fmt.Sprintf("%s %s 收集了 %d 张程序员牌，获胜！",
			WinnerIcon, m.winner.Name, m.winner.Coders.GetAmount())
		if m.winner == m.human {
			line = WinnerIcon + " 你赢了！"
		}
		sb.WriteString(m.center(line))
		sb.WriteString("\n\n")
		sb.WriteString(m.center(boxStyle.Render(m.playersView())))
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.center(dimStyle.Render("按回车或 q 退出")))
	return sb.String()
}

// center 按终端宽度水平居中
func (m *Model) center(s string) string {
	if m.width == 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}
