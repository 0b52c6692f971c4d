// Package app 提供游戏应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，实现 ebiten.Game 接口：
// Update 采集输入并推进模拟一个 tick，Draw 把像素缓冲区上传到屏幕。
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/scenes"
	"github.com/decker502/invaders/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 游戏参数 YAML 路径，为空则使用内置默认值
	ConfigPath string
	// Seed 编队开火的随机种子，0 表示按当前时间取种
	Seed int64
}

// App 游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene *scenes.GameScene
	cfg   *config.GameConfig
}

// NewApp 创建并初始化游戏应用
func NewApp(appCfg Config) (*App, error) {
	if !appCfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameCfg := config.DefaultConfig()
	if appCfg.ConfigPath != "" {
		loaded, err := config.LoadGameConfig(appCfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("游戏配置加载失败: %w", err)
		}
		gameCfg = loaded
		log.Printf("[Config] 加载游戏配置: %s", appCfg.ConfigPath)
	}

	seed := appCfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	log.Printf("[App] 随机种子: %d", seed)

	return &App{
		scene: scenes.NewGameScene(gameCfg, rng),
		cfg:   gameCfg,
	}, nil
}

// Update 每 tick 调用一次：采集输入快照并推进模拟
func (a *App) Update() error {
	input := utils.GatherInputSnapshot()
	if !a.scene.Tick(input) {
		return ebiten.Termination
	}
	return nil
}

// Draw 把当前帧的像素缓冲区上传到屏幕
// 缓冲区按自顶向下行序存储 RGBA，可直接交给 WritePixels
func (a *App) Draw(screen *ebiten.Image) {
	screen.WritePixels(a.scene.Buffer().Pixels())
}

// Layout 逻辑分辨率固定为场地尺寸，窗口缩放由 ebiten 处理
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Field.Width, a.cfg.Field.Height
}
