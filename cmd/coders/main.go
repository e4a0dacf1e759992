package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/sleeping-coders/internal/config"
	"github.com/palemoky/sleeping-coders/internal/game"
	"github.com/palemoky/sleeping-coders/internal/logger"
	"github.com/palemoky/sleeping-coders/internal/ui"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	name := flag.String("name", "你", "玩家昵称")
	flag.Parse()

	if err := logger.Init(); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Close()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.LogError("load config: %v", err)
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	// 人类玩家坐在 0 号位，其余是机器人
	names := []string{*name}
	for i := 1; i < cfg.Game.Players; i++ {
		names = append(names, fmt.Sprintf("电脑 %d", i))
	}

	g, err := game.Setup(cfg, names)
	if err != nil {
		log.Fatalf("创建对局失败: %v", err)
	}
	logger.LogInfo("game %s started with %d players", g.ID, len(g.Players))

	p := tea.NewProgram(ui.NewModel(g), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.LogError("run: %v", err)
		log.Fatalf("启动客户端时出错: %v", err)
	}
}
