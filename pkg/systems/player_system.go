package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/sprites"
)

// PlayerSystem 处理玩家炮台的移动与开火
type PlayerSystem struct {
	em   *ecs.EntityManager
	cfg  *config.GameConfig
	pool *game.ProjectilePool
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, cfg *config.GameConfig, pool *game.ProjectilePool) *PlayerSystem {
	return &PlayerSystem{em: em, cfg: cfg, pool: pool}
}

// Move 按输入方向移动玩家一个 tick
// 位移为 速度×方向，结果夹在 [0, 场宽-炮台宽] 内，炮台不会越界
func (s *PlayerSystem) Move(playerID ecs.EntityID, dir int) {
	pos, found := ecs.GetComponent[*components.PositionComponent](s.em, playerID)
	if !found {
		return
	}

	pos.X += s.cfg.Player.Speed * dir

	maxX := s.cfg.Field.Width - sprites.Get(sprites.SpritePlayer).Width
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.X > maxX {
		pos.X = maxX
	}
}

// TryFire 处理玩家的开火请求
// 弹体从炮台顶部中点射出，向上飞行；弹体池满时请求被丢弃
func (s *PlayerSystem) TryFire(playerID ecs.EntityID) {
	if s.pool.Full() {
		log.Printf("[PlayerSystem] Fire request dropped, projectile pool is full")
		return
	}

	pos, found := ecs.GetComponent[*components.PositionComponent](s.em, playerID)
	if !found {
		return
	}

	mask := sprites.Get(sprites.SpritePlayer)
	id := entities.NewProjectileEntity(s.em,
		pos.X+mask.Width/2,
		pos.Y+mask.Height,
		s.cfg.Projectile.PlayerSpeed)
	s.pool.Add(id)
}
