// Package systems 实现游戏的各个子系统：动画、渲染、移动、战斗与编队
package systems

import (
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/sprites"
	"github.com/decker502/invaders/pkg/types"
)

// AnimationSystem 管理外星人的帧动画时钟
//
// 每种外星人类型共享一个时钟，整个编队同类个体的动画完全同步；
// 时钟不属于任何实体，由调度器统一推进。
type AnimationSystem struct {
	clocks map[types.AlienType]*sprites.Clock
}

// NewAnimationSystem 创建动画系统并初始化各类型的时钟
func NewAnimationSystem(cfg *config.GameConfig) *AnimationSystem {
	d := cfg.Timing.FrameDuration
	return &AnimationSystem{
		clocks: map[types.AlienType]*sprites.Clock{
			types.AlienLow: sprites.NewLoopingClock(
				[]sprites.SpriteID{sprites.SpriteAlienLowA, sprites.SpriteAlienLowB}, d),
			types.AlienHigh: sprites.NewLoopingClock(
				[]sprites.SpriteID{sprites.SpriteAlienHighA, sprites.SpriteAlienHighB}, d),
		},
	}
}

// Update 推进所有动画时钟一个 tick
func (s *AnimationSystem) Update() {
	for _, clock := range s.clocks {
		clock.Advance()
	}
}

// CurrentSprite 返回指定类型当前动画帧的精灵 ID
// 死亡类型固定返回残骸精灵
func (s *AnimationSystem) CurrentSprite(t types.AlienType) sprites.SpriteID {
	if clock, ok := s.clocks[t]; ok {
		return clock.CurrentSprite()
	}
	return sprites.SpriteAlienDeath
}

// CurrentMask 返回指定类型当前动画帧的位图
func (s *AnimationSystem) CurrentMask(t types.AlienType) *sprites.Mask {
	return sprites.Get(s.CurrentSprite(t))
}
