package sprites

// Clock 帧动画时钟
// 在固定的帧序列上循环：每 FrameDuration 个 tick 前进一帧，走完一轮后
// 回到第 0 帧。本游戏只使用循环动画，不提供单次播放模式。
//
// 时钟由帧调度器每 tick 推进一次；同一类型的所有外星人共享同一个时钟，
// 因此整个编队的动画步调一致（每类一个时钟，而非每个实体一个）。
type Clock struct {
	Frames        []SpriteID // 帧序列（精灵注册表索引）
	FrameDuration int        // 每帧持续的 tick 数
	Elapsed       int        // 当前周期内已经过的 tick 数
}

// NewLoopingClock 创建循环动画时钟
func NewLoopingClock(frames []SpriteID, frameDuration int) *Clock {
	if len(frames) == 0 {
		panic("sprites: animation clock needs at least one frame")
	}
	if frameDuration <= 0 {
		panic("sprites: animation frame duration must be positive")
	}
	return &Clock{
		Frames:        frames,
		FrameDuration: frameDuration,
	}
}

// Advance 推进一个 tick
// 走满 帧数×每帧时长 后回绕到 0，保证 Elapsed 始终落在一个周期内
func (c *Clock) Advance() {
	c.Elapsed++
	if c.Elapsed >= len(c.Frames)*c.FrameDuration {
		c.Elapsed = 0
	}
}

// CurrentFrame 返回当前帧索引
func (c *Clock) CurrentFrame() int {
	return c.Elapsed / c.FrameDuration
}

// CurrentSprite 返回当前帧对应的精灵 ID
func (c *Clock) CurrentSprite() SpriteID {
	return c.Frames[c.CurrentFrame()]
}
