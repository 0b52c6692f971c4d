// Package types 定义跨包共享的基础类型
package types

// AlienType 定义外星人槽位的类型与状态
// 类型转换是单向的：Low/High 被击中后变为 Dead，不再复活
type AlienType int

const (
	// AlienDead 已被击毁（槽位记录仍然保留，用于胜利计数和网格索引）
	AlienDead AlienType = iota
	// AlienLow 低阶外星人，占据离玩家最近的两排
	AlienLow
	// AlienHigh 高阶外星人，占据后三排
	AlienHigh
)

// alienTypeStringMap 外星人类型到配置字符串的映射
var alienTypeStringMap = map[AlienType]string{
	AlienDead: "dead",
	AlienLow:  "low",
	AlienHigh: "high",
}

// String 返回外星人类型的字符串表示
func (t AlienType) String() string {
	if s, ok := alienTypeStringMap[t]; ok {
		return s
	}
	return "unknown"
}

// Alive 判断该类型是否为存活的外星人
func (t AlienType) Alive() bool {
	return t == AlienLow || t == AlienHigh
}

// ScoreValue 返回击杀该类型外星人的得分
// 公式为 10 * (4 - 类型数值)：靠前的低阶外星人分值更高
func (t AlienType) ScoreValue() int {
	return 10 * (4 - int(t))
}
