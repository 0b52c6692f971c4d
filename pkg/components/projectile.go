package components

// ProjectileComponent 存储弹体的飞行方向
// Dir 为每 tick 的垂直位移：玩家弹体为正（向上），外星人弹体为负（向下）
type ProjectileComponent struct {
	Dir int
}
