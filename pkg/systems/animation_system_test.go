package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/sprites"
	"github.com/decker502/invaders/pkg/types"
)

func TestAnimationSystemAlternatesFrames(t *testing.T) {
	cfg := config.DefaultConfig()
	anim := NewAnimationSystem(cfg)

	if anim.CurrentSprite(types.AlienLow) != sprites.SpriteAlienLowA {
		t.Error("Low alien should start on frame A")
	}
	if anim.CurrentSprite(types.AlienHigh) != sprites.SpriteAlienHighA {
		t.Error("High alien should start on frame A")
	}

	// 推进一个完整帧时长后切换到第二帧
	for i := 0; i < cfg.Timing.FrameDuration; i++ {
		anim.Update()
	}
	if anim.CurrentSprite(types.AlienLow) != sprites.SpriteAlienLowB {
		t.Error("Low alien should be on frame B after one frame duration")
	}

	// 再推进一个帧时长后回到第一帧
	for i := 0; i < cfg.Timing.FrameDuration; i++ {
		anim.Update()
	}
	if anim.CurrentSprite(types.AlienLow) != sprites.SpriteAlienLowA {
		t.Error("Low alien should wrap back to frame A")
	}
}

func TestAnimationSystemSharedClockPerType(t *testing.T) {
	cfg := config.DefaultConfig()
	anim := NewAnimationSystem(cfg)

	// 同类外星人共用时钟，两次查询结果必然一致
	for i := 0; i < 7; i++ {
		anim.Update()
	}
	if anim.CurrentSprite(types.AlienHigh) != anim.CurrentSprite(types.AlienHigh) {
		t.Error("Same type should always report the same frame")
	}
}

func TestAnimationSystemDeadMask(t *testing.T) {
	cfg := config.DefaultConfig()
	anim := NewAnimationSystem(cfg)

	mask := anim.CurrentMask(types.AlienDead)
	if mask.Width != 13 || mask.Height != 7 {
		t.Errorf("Dead alien should use the 13x7 death mask, got %dx%d", mask.Width, mask.Height)
	}

	// 死亡位图不受时钟推进影响
	anim.Update()
	if anim.CurrentMask(types.AlienDead) != mask {
		t.Error("Death mask should not change with clock ticks")
	}
}

func TestAnimationSystemLiveMaskDimensions(t *testing.T) {
	cfg := config.DefaultConfig()
	anim := NewAnimationSystem(cfg)

	low := anim.CurrentMask(types.AlienLow)
	if low.Width != 11 || low.Height != 8 {
		t.Errorf("Low alien mask should be 11x8, got %dx%d", low.Width, low.Height)
	}

	high := anim.CurrentMask(types.AlienHigh)
	if high.Width != 8 || high.Height != 8 {
		t.Errorf("High alien mask should be 8x8, got %dx%d", high.Width, high.Height)
	}
}
