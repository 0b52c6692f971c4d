// Package scenes 把各子系统编排成完整的对局
package scenes

import (
	"log"
	"math/rand"

	"github.com/decker502/invaders/pkg/buffer"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
	"github.com/decker502/invaders/pkg/utils"
)

// GameScene 一局完整的游戏
//
// 每 tick 按固定顺序执行：合成画面、推进动画、残骸倒计时、弹体结算、
// 玩家移动、重算前排、编队开火、玩家开火，最后统一清理实体。
// 画面在结算之前合成，呈现的是上一 tick 的状态。
type GameScene struct {
	em    *ecs.EntityManager
	cfg   *config.GameConfig
	state *game.GameState
	buf   *buffer.PixelBuffer
	pool  *game.ProjectilePool

	grid     [][]ecs.EntityID
	playerID ecs.EntityID

	anim      *systems.AnimationSystem
	player    *systems.PlayerSystem
	formation *systems.FormationSystem
	combat    *systems.CombatSystem
	render    *systems.RenderSystem

	// 终局画面剩余停留 tick 数
	lingerTicks int
}

// NewGameScene 创建并初始化一局游戏
// rng 驱动编队开火的列选择，由调用方注入
func NewGameScene(cfg *config.GameConfig, rng *rand.Rand) *GameScene {
	em := ecs.NewEntityManager()
	state := game.NewGameState()
	pool := game.NewProjectilePool(cfg.Projectile.MaxCount)

	grid := entities.NewAlienFormation(em, cfg)
	playerID := entities.NewPlayerEntity(em, cfg)

	anim := systems.NewAnimationSystem(cfg)

	s := &GameScene{
		em:          em,
		cfg:         cfg,
		state:       state,
		buf:         buffer.NewPixelBuffer(cfg.Field.Width, cfg.Field.Height),
		pool:        pool,
		grid:        grid,
		playerID:    playerID,
		anim:        anim,
		player:      systems.NewPlayerSystem(em, cfg, pool),
		formation:   systems.NewFormationSystem(em, cfg, pool, grid, rng),
		combat:      systems.NewCombatSystem(em, cfg, state, pool, grid, playerID, anim),
		lingerTicks: cfg.Timing.TerminalLingerTicks,
	}
	s.render = systems.NewRenderSystem(em, cfg, state, pool, grid, playerID, anim)

	// 开局即有前排，首个开火周期不会落空
	s.formation.RecomputeFrontRank()

	log.Printf("[GameScene] New game: %dx%d formation, %d lives",
		cfg.Formation.Columns, cfg.Formation.Rows, cfg.Player.Lives)
	return s
}

// Tick 推进一个模拟节拍
// 返回 false 表示对局会话结束（终局画面停留结束或玩家请求退出）
func (s *GameScene) Tick(input utils.InputSnapshot) bool {
	if input.Quit {
		return false
	}

	if s.state.Terminal() {
		return s.tickTerminal()
	}

	s.render.Compose(s.buf)
	s.anim.Update()

	s.formation.UpdateCountdowns()
	s.combat.Update()

	s.player.Move(s.playerID, input.Dir)

	s.formation.RecomputeFrontRank()
	s.formation.TryFire()

	if input.Fire {
		s.player.TryFire(s.playerID)
	}

	s.em.RemoveMarkedEntities()
	return true
}

// tickTerminal 终局阶段：显示结果并停留一段时间
func (s *GameScene) tickTerminal() bool {
	message := "YOU WIN"
	if s.state.Phase() == game.PhaseLost {
		message = "YOU LOSE"
	}
	s.render.RenderTerminal(s.buf, message)

	if s.lingerTicks <= 0 {
		return false
	}
	s.lingerTicks--
	return true
}

// Buffer 返回当前帧的像素缓冲区
func (s *GameScene) Buffer() *buffer.PixelBuffer { return s.buf }

// State 返回对局状态
func (s *GameScene) State() *game.GameState { return s.state }
