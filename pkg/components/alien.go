package components

import "github.com/decker502/invaders/pkg/types"

// AlienComponent 存储外星人的类型与死亡倒计时
//
// 外星人被击中后 Type 置为 AlienDead，DeathTicks 开始逐 tick 递减；
// 倒计时归零后不再绘制残骸，但实体记录保留，供编队的列代表回退使用。
type AlienComponent struct {
	Type       types.AlienType // 当前类型，死亡后为 AlienDead
	DeathTicks int             // 残骸剩余显示 tick 数
}
