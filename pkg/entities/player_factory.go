package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
)

// NewPlayerEntity 创建玩家炮台实体
// 位置为出生点锚点（精灵左下角），生命数取自配置
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameConfig) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{
		X: cfg.Player.SpawnX,
		Y: cfg.Player.SpawnY,
	})
	em.AddComponent(id, &components.PlayerComponent{
		Lives: cfg.Player.Lives,
	})
	return id
}
