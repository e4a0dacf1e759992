package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/sleeping-coders/internal/game"
)

// Icon constants
const (
	CoderIcon  = "💤"
	WinnerIcon = "🏆"
	TurnIcon   = "▶"
)

// Lipgloss Styles
var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	promptStyle = lipgloss.NewStyle().MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	numberStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	tutorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	nighterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	kidnapStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	coderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
)

// cardLabel 返回一张卡牌的带颜色显示文本
func cardLabel(c game.Card) string {
	switch v := c.(type) {
	case *game.NumberCard:
		return numberStyle.Render(fmt.Sprintf("数字 %d", v.Number))
	case *game.TutorCard:
		return tutorStyle.Render("导师 " + v.Name)
	case *game.AllNighterCard:
		return nighterStyle.Render("通宵")
	case *game.KeyboardKidnapperCard:
		return kidnapStyle.Render("键盘绑匪")
	case *game.CoderCard:
		return coderStyle.Render(v.Name)
	default:
		return c.String()
	}
}

// slotLabel 返回沉睡区一个卡槽的显示文本，显示用 1 起始的编号
func slotLabel(slot int, c game.Card) string {
	if c == nil {
		return fmt.Sprintf("[%d] %s", slot+1, dimStyle.Render("(空)"))
	}
	return fmt.Sprintf("[%d] %s %s", slot+1, CoderIcon, cardLabel(c))
}
