package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

// FormationSystem 管理外星人编队：残骸倒计时、前排代表与编队开火
//
// 编队网格由工厂创建后不再增删元素，死亡的外星人记录保留在原格位，
// 因此所有遍历顺序都是确定的。
type FormationSystem struct {
	em   *ecs.EntityManager
	cfg  *config.GameConfig
	pool *game.ProjectilePool
	grid [][]ecs.EntityID
	rng  *rand.Rand

	// 每列的前排代表（最靠近玩家的非死亡外星人；全灭时回退为顶行记录）
	frontRank []ecs.EntityID
	// 距上次开火经过的 tick 数
	fireCounter int
}

// NewFormationSystem 创建编队系统
// rng 由调用方注入，便于测试时固定种子
func NewFormationSystem(em *ecs.EntityManager, cfg *config.GameConfig, pool *game.ProjectilePool, grid [][]ecs.EntityID, rng *rand.Rand) *FormationSystem {
	return &FormationSystem{
		em:        em,
		cfg:       cfg,
		pool:      pool,
		grid:      grid,
		rng:       rng,
		frontRank: make([]ecs.EntityID, cfg.Formation.Columns),
	}
}

// UpdateCountdowns 推进所有死亡外星人的残骸倒计时
// 倒计时到 0 后保持 0，不再递减
func (s *FormationSystem) UpdateCountdowns() {
	for row := range s.grid {
		for col := range s.grid[row] {
			alien, found := ecs.GetComponent[*components.AlienComponent](s.em, s.grid[row][col])
			if !found {
				continue
			}
			if !alien.Type.Alive() && alien.DeathTicks > 0 {
				alien.DeathTicks--
			}
		}
	}
}

// RecomputeFrontRank 重算每列的前排代表
// 自底行（第 0 行）向上找第一个存活的外星人；整列全灭时保留顶行记录，
// 这样该列仍有代表条目，但不会再开火
func (s *FormationSystem) RecomputeFrontRank() {
	rows := s.cfg.Formation.Rows
	for col := 0; col < s.cfg.Formation.Columns; col++ {
		s.frontRank[col] = s.grid[rows-1][col]
		for row := 0; row < rows; row++ {
			alien, found := ecs.GetComponent[*components.AlienComponent](s.em, s.grid[row][col])
			if found && alien.Type.Alive() {
				s.frontRank[col] = s.grid[row][col]
				break
			}
		}
	}
}

// FrontRank 返回当前的前排代表表（按列索引）
func (s *FormationSystem) FrontRank() []ecs.EntityID {
	return s.frontRank
}

// TryFire 推进编队开火计时并在到点时发射
//
// 每经过配置的间隔 tick 数触发一次：等概率随机选一列，由该列前排代表
// 向下发射弹体。代表已死亡（整列全灭）或弹体池已满时本次发射作废，
// 计时器照常清零，下个周期继续。
func (s *FormationSystem) TryFire() {
	s.fireCounter++
	if s.fireCounter < s.cfg.Timing.AlienFireInterval {
		return
	}
	s.fireCounter = 0

	col := s.rng.Intn(s.cfg.Formation.Columns)
	rep := s.frontRank[col]

	alien, found := ecs.GetComponent[*components.AlienComponent](s.em, rep)
	if !found || !alien.Type.Alive() {
		return
	}

	if s.pool.Full() {
		log.Printf("[FormationSystem] Alien volley dropped, projectile pool is full")
		return
	}

	pos, found := ecs.GetComponent[*components.PositionComponent](s.em, rep)
	if !found {
		return
	}

	id := entities.NewProjectileEntity(s.em,
		pos.X+4,
		pos.Y-10,
		-s.cfg.Projectile.AlienSpeed)
	s.pool.Add(id)
}
