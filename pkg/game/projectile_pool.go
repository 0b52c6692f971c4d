package game

import "github.com/decker502/invaders/pkg/ecs"

// ProjectilePool 有界的弹体集合
//
// 池持有弹体实体 ID 并决定遍历顺序；容量固定，池满时 Add 返回 false，
// 调用方应放弃本次发射。移除采用交换删除：末位元素填入被删位置，
// 整体顺序不保证稳定。
type ProjectilePool struct {
	ids      []ecs.EntityID
	capacity int
}

// NewProjectilePool 创建指定容量的弹体池
func NewProjectilePool(capacity int) *ProjectilePool {
	if capacity <= 0 {
		panic("game: projectile pool capacity must be positive")
	}
	return &ProjectilePool{
		ids:      make([]ecs.EntityID, 0, capacity),
		capacity: capacity,
	}
}

// Len 返回当前弹体数量
func (p *ProjectilePool) Len() int { return len(p.ids) }

// Full 池是否已满
func (p *ProjectilePool) Full() bool { return len(p.ids) >= p.capacity }

// At 返回指定下标的弹体 ID
func (p *ProjectilePool) At(i int) ecs.EntityID { return p.ids[i] }

// Add 将弹体加入池；池满返回 false
func (p *ProjectilePool) Add(id ecs.EntityID) bool {
	if p.Full() {
		return false
	}
	p.ids = append(p.ids, id)
	return true
}

// SwapRemove 交换删除指定下标的弹体
// 末位元素移到该下标处；调用方在遍历中删除后不应推进下标
func (p *ProjectilePool) SwapRemove(i int) {
	last := len(p.ids) - 1
	p.ids[i] = p.ids[last]
	p.ids = p.ids[:last]
}
