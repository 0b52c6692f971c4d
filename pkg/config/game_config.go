// Package config 提供游戏参数的加载与校验
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏全部可调参数
// 所有字段都有内置默认值；YAML 文件只需覆盖想修改的部分
type GameConfig struct {
	Field      FieldConfig      `yaml:"field"`      // 场地尺寸
	Formation  FormationConfig  `yaml:"formation"`  // 外星人编队布局
	Player     PlayerConfig     `yaml:"player"`     // 玩家炮台参数
	Projectile ProjectileConfig `yaml:"projectile"` // 弹体参数
	Timing     TimingConfig     `yaml:"timing"`     // 各类节拍参数
	Colors     ColorsConfig     `yaml:"colors"`     // 绘制颜色
}

// FieldConfig 场地（像素缓冲区）尺寸
type FieldConfig struct {
	Width  int `yaml:"width"`  // 场地宽度（像素）
	Height int `yaml:"height"` // 场地高度（像素）
}

// FormationConfig 外星人编队布局参数
// 网格第 0 行在最下方；前 LowRows 行是低阶外星人，其余为高阶
type FormationConfig struct {
	Columns  int `yaml:"columns"`  // 列数
	Rows     int `yaml:"rows"`     // 行数
	LowRows  int `yaml:"lowRows"`  // 低阶外星人占据的行数（从底部数起）
	StartX   int `yaml:"startX"`   // 第 0 列锚点 x
	StartY   int `yaml:"startY"`   // 第 0 行锚点 y
	SpacingX int `yaml:"spacingX"` // 列间距
	SpacingY int `yaml:"spacingY"` // 行间距
}

// PlayerConfig 玩家炮台参数
type PlayerConfig struct {
	SpawnX int `yaml:"spawnX"` // 出生点 x（重生时也回到这里）
	SpawnY int `yaml:"spawnY"` // 出生点 y
	Lives  int `yaml:"lives"`  // 初始生命数
	Speed  int `yaml:"speed"`  // 每 tick 水平移动速度（乘以输入方向）
}

// ProjectileConfig 弹体参数
type ProjectileConfig struct {
	MaxCount    int `yaml:"maxCount"`    // 同屏弹体上限，池满时发射请求被丢弃
	PlayerSpeed int `yaml:"playerSpeed"` // 玩家弹体每 tick 上升量
	AlienSpeed  int `yaml:"alienSpeed"`  // 外星人弹体每 tick 下降量
}

// TimingConfig 各类节拍参数（单位均为 tick）
type TimingConfig struct {
	AlienFireInterval   int `yaml:"alienFireInterval"`   // 外星人开火间隔
	DeathCountdownTicks int `yaml:"deathCountdownTicks"` // 残骸显示时长
	FrameDuration       int `yaml:"frameDuration"`       // 外星人动画每帧时长
	TerminalLingerTicks int `yaml:"terminalLingerTicks"` // 终局画面停留时长
}

// ColorsConfig 绘制颜色（RGB 分量）
type ColorsConfig struct {
	Background RGBConfig `yaml:"background"` // 背景色
	Alien      RGBConfig `yaml:"alien"`      // 外星人与外星人弹体
	Player     RGBConfig `yaml:"player"`     // 玩家与玩家弹体
	Text       RGBConfig `yaml:"text"`       // HUD 文字
}

// RGBConfig 单个 RGB 颜色值
type RGBConfig struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// DefaultConfig 返回内置默认参数
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Field: FieldConfig{Width: 300, Height: 400},
		Formation: FormationConfig{
			Columns:  10,
			Rows:     5,
			LowRows:  2,
			StartX:   30,
			StartY:   250,
			SpacingX: 26,
			SpacingY: 23,
		},
		Player: PlayerConfig{SpawnX: 150, SpawnY: 25, Lives: 3, Speed: 2},
		Projectile: ProjectileConfig{
			MaxCount:    128,
			PlayerSpeed: 3,
			AlienSpeed:  3,
		},
		Timing: TimingConfig{
			AlienFireInterval:   30,
			DeathCountdownTicks: 10,
			FrameDuration:       10,
			TerminalLingerTicks: 180,
		},
		Colors: ColorsConfig{
			Background: RGBConfig{R: 255, G: 255, B: 255},
			Alien:      RGBConfig{R: 128, G: 0, B: 0},
			Player:     RGBConfig{R: 0, G: 0, B: 128},
			Text:       RGBConfig{R: 0, G: 128, B: 0},
		},
	}
}

// LoadGameConfig 从 YAML 文件加载游戏配置
// 文件中省略的字段保持默认值
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	if err := validateGameConfig(config); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return config, nil
}

// validateGameConfig 验证配置的有效性
func validateGameConfig(config *GameConfig) error {
	if config.Field.Width <= 0 || config.Field.Height <= 0 {
		return fmt.Errorf("field dimensions must be positive, got %dx%d", config.Field.Width, config.Field.Height)
	}

	if config.Formation.Columns <= 0 || config.Formation.Rows <= 0 {
		return fmt.Errorf("formation grid must be non-empty, got %d columns x %d rows", config.Formation.Columns, config.Formation.Rows)
	}
	if config.Formation.LowRows < 0 || config.Formation.LowRows > config.Formation.Rows {
		return fmt.Errorf("lowRows must be between 0 and %d, got %d", config.Formation.Rows, config.Formation.LowRows)
	}
	if config.Formation.SpacingX <= 0 || config.Formation.SpacingY <= 0 {
		return fmt.Errorf("formation spacing must be positive")
	}

	if config.Player.Lives <= 0 {
		return fmt.Errorf("player lives must be positive, got %d", config.Player.Lives)
	}
	if config.Player.Speed < 0 {
		return fmt.Errorf("player speed must be >= 0, got %d", config.Player.Speed)
	}

	if config.Projectile.MaxCount <= 0 {
		return fmt.Errorf("projectile maxCount must be positive, got %d", config.Projectile.MaxCount)
	}
	if config.Projectile.PlayerSpeed <= 0 || config.Projectile.AlienSpeed <= 0 {
		return fmt.Errorf("projectile speeds must be positive")
	}

	if config.Timing.AlienFireInterval <= 0 {
		return fmt.Errorf("alienFireInterval must be positive, got %d", config.Timing.AlienFireInterval)
	}
	if config.Timing.DeathCountdownTicks < 0 {
		return fmt.Errorf("deathCountdownTicks must be >= 0, got %d", config.Timing.DeathCountdownTicks)
	}
	if config.Timing.FrameDuration <= 0 {
		return fmt.Errorf("frameDuration must be positive, got %d", config.Timing.FrameDuration)
	}
	if config.Timing.TerminalLingerTicks < 0 {
		return fmt.Errorf("terminalLingerTicks must be >= 0, got %d", config.Timing.TerminalLingerTicks)
	}

	return nil
}
