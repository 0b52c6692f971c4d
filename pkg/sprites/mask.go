// Package sprites 保存编译期内置的单色位图精灵
//
// 所有精灵位图都是编译期常量数据，创建后不可变，可被任意多个绘制调用
// 按引用共享。外部通过 SpriteID 索引访问注册表中的精灵，避免在实体间
// 传递指针。
package sprites

// Mask 单色精灵位图
// 行 0 是精灵的视觉顶行；位图创建后不可变
type Mask struct {
	Width  int
	Height int
	bits   []bool
}

// newMask 从字符串行构建位图，'#' 表示置位像素
// 行宽不一致属于编译期数据错误，直接 panic
func newMask(rows ...string) *Mask {
	if len(rows) == 0 {
		panic("sprites: mask needs at least one row")
	}
	width := len(rows[0])
	bits := make([]bool, 0, width*len(rows))
	for _, row := range rows {
		if len(row) != width {
			panic("sprites: ragged mask row: " + row)
		}
		for i := 0; i < len(row); i++ {
			bits = append(bits, row[i] == '#')
		}
	}
	return &Mask{
		Width:  width,
		Height: len(rows),
		bits:   bits,
	}
}

// At 返回位图 (x, y) 处的位；y=0 为顶行
// 越界访问返回 false
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.bits[y*m.Width+x]
}
