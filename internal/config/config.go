package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config 客户端配置
type Config struct {
	Game GameConfig `yaml:"game"`
	Deck DeckConfig `yaml:"deck"`
}

// GameConfig 对局配置
type GameConfig struct {
	Players  int `yaml:"players"`   // 玩家数量（含人类玩家）
	HandSize int `yaml:"hand_size"` // 起始手牌数量
}

// DeckConfig 牌组构成配置
type DeckConfig struct {
	NumberCopies  int      `yaml:"number_copies"`  // 每个数字 0-9 的张数
	SpecialCopies int      `yaml:"special_copies"` // 通宵牌和键盘绑匪牌每种的张数
	Tutors        []string `yaml:"tutors"`         // 导师名单，每个名字一张导师牌
	Coders        []string `yaml:"coders"`         // 程序员名单，决定沉睡区的容量
}

// defaultTutors 默认导师名单
var defaultTutors = []string{"Anna", "Brae", "Henry", "Kaleb"}

// defaultCoders 默认程序员名单
var defaultCoders = []string{
	"Ada", "Grace", "Linus", "Alan",
	"Margaret", "Dennis", "Ken", "Barbara",
	"Guido", "James", "Brendan", "Anders",
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Game.Players == 0 {
		cfg.Game.Players = 3
	}
	if cfg.Game.HandSize == 0 {
		cfg.Game.HandSize = 5
	}
	if cfg.Deck.NumberCopies == 0 {
		cfg.Deck.NumberCopies = 3
	}
	if cfg.Deck.SpecialCopies == 0 {
		cfg.Deck.SpecialCopies = 4
	}
	if len(cfg.Deck.Tutors) == 0 {
		cfg.Deck.Tutors = defaultTutors
	}
	if len(cfg.Deck.Coders) == 0 {
		cfg.Deck.Coders = defaultCoders
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Players:  3,
			HandSize: 5,
		},
		Deck: DeckConfig{
			NumberCopies:  3,
			SpecialCopies: 4,
			Tutors:        defaultTutors,
			Coders:        defaultCoders,
		},
	}
}
