// Package entities 提供游戏实体的工厂函数
package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

// NewAlienFormation 创建外星人编队并返回按 [行][列] 排列的实体网格
//
// 网格第 0 行在场地最下方，前 lowRows 行是低阶外星人，其余为高阶。
// 第 (row, col) 个外星人的锚点为 (startX + col*spacingX, startY + row*spacingY)。
// 返回的网格决定编队的确定性遍历顺序，整局游戏中网格本身不增删元素。
func NewAlienFormation(em *ecs.EntityManager, cfg *config.GameConfig) [][]ecs.EntityID {
	f := cfg.Formation
	grid := make([][]ecs.EntityID, f.Rows)
	for row := 0; row < f.Rows; row++ {
		grid[row] = make([]ecs.EntityID, f.Columns)
		for col := 0; col < f.Columns; col++ {
			alienType := types.AlienHigh
			if row < f.LowRows {
				alienType = types.AlienLow
			}

			id := em.CreateEntity()
			em.AddComponent(id, &components.PositionComponent{
				X: f.StartX + col*f.SpacingX,
				Y: f.StartY + row*f.SpacingY,
			})
			em.AddComponent(id, &components.AlienComponent{
				Type:       alienType,
				DeathTicks: cfg.Timing.DeathCountdownTicks,
			})
			grid[row][col] = id
		}
	}
	return grid
}
