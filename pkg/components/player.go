package components

// PlayerComponent 存储玩家炮台的状态
type PlayerComponent struct {
	Lives int // 剩余生命数，归零即告负
}
