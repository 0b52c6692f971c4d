// Package game 维护对局级状态：得分、击杀数与胜负阶段
package game

// Phase 对局所处的阶段
type Phase int

const (
	// PhasePlaying 对局进行中
	PhasePlaying Phase = iota
	// PhaseWon 玩家获胜（编队全灭）
	PhaseWon
	// PhaseLost 玩家失败（生命耗尽）
	PhaseLost
)

// phaseStringMap Phase 到字符串的映射
var phaseStringMap = map[Phase]string{
	PhasePlaying: "playing",
	PhaseWon:     "won",
	PhaseLost:    "lost",
}

// String 返回阶段的字符串表示
func (p Phase) String() string {
	if s, ok := phaseStringMap[p]; ok {
		return s
	}
	return "unknown"
}

// GameState 单局游戏的状态
// 进入终局阶段后状态冻结：得分与击杀数不再变化
type GameState struct {
	score int
	kills int
	phase Phase
}

// NewGameState 创建初始状态的对局
func NewGameState() *GameState {
	return &GameState{phase: PhasePlaying}
}

// Score 返回当前得分
func (s *GameState) Score() int { return s.score }

// Kills 返回击杀总数
func (s *GameState) Kills() int { return s.kills }

// Phase 返回当前阶段
func (s *GameState) Phase() Phase { return s.phase }

// Terminal 对局是否已经结束
func (s *GameState) Terminal() bool { return s.phase != PhasePlaying }

// AddScore 累加得分；终局后忽略
func (s *GameState) AddScore(points int) {
	if s.Terminal() {
		return
	}
	s.score += points
}

// RecordKill 记录一次击杀；终局后忽略
func (s *GameState) RecordKill() {
	if s.Terminal() {
		return
	}
	s.kills++
}

// MarkWon 标记玩家获胜；已有终局结果时不覆盖
func (s *GameState) MarkWon() {
	if s.Terminal() {
		return
	}
	s.phase = PhaseWon
}

// MarkLost 标记玩家失败；已有终局结果时不覆盖
func (s *GameState) MarkLost() {
	if s.Terminal() {
		return
	}
	s.phase = PhaseLost
}
