package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSnapshot 存储当前 tick 的输入状态
// 每个 tick 采集一次快照传给模拟核心，核心不直接读取设备状态
type InputSnapshot struct {
	// 水平移动方向：-1 左、0 静止、+1 右
	Dir int
	// 本 tick 是否请求开火（按下瞬间触发一次）
	Fire bool
	// 是否请求退出游戏
	Quit bool
}

// GatherInputSnapshot 采集当前 tick 的键盘输入
// 左右同时按下时相互抵消
func GatherInputSnapshot() InputSnapshot {
	snapshot := InputSnapshot{}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		snapshot.Dir--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		snapshot.Dir++
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		snapshot.Fire = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		snapshot.Quit = true
	}

	return snapshot
}
