package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
)

// NewProjectileEntity 创建弹体实体
// dir 为每 tick 的垂直位移：正值向上（玩家弹体），负值向下（外星人弹体）
func NewProjectileEntity(em *ecs.EntityManager, x, y, dir int) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.ProjectileComponent{Dir: dir})
	return id
}
