package sprites

// 5×7 点阵字模表，按 ASCII 顺序覆盖 ' '（0x20）到 '`'（0x60）共 65 个字符
// 小写字母不在表内，调用方绘制前需自行转为大写
const (
	fontFirstChar = ' '
	fontGlyphs    = 65
)

// fontTable 按 字符-fontFirstChar 索引的字模注册表
var fontTable = [fontGlyphs]*Mask{
	// ' '
	newMask(
		".....",
		".....",
		".....",
		".....",
		".....",
		".....",
		".....",
	),
	// '!'
	newMask(
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".....",
		"..#..",
	),
	// '"'
	newMask(
		".#.#.",
		".#.#.",
		".....",
		".....",
		".....",
		".....",
		".....",
	),
	// '#'
	newMask(
		".#.#.",
		".#.#.",
		"#####",
		".#.#.",
		"#####",
		".#.#.",
		".#.#.",
	),
	// '$'
	newMask(
		"..#..",
		".###.",
		"#.#..",
		".###.",
		"..#.#",
		".###.",
		"..#..",
	),
	// '%'
	newMask(
		"##.#.",
		"##.#.",
		"..#..",
		"..#..",
		"..#..",
		".#.##",
		".#.##",
	),
	// '&'
	newMask(
		".##..",
		"#..#.",
		"#..#.",
		".##..",
		"#..#.",
		"#...#",
		".####",
	),
	// '\''
	newMask(
		"...#.",
		"..#..",
		".....",
		".....",
		".....",
		".....",
		".....",
	),
	// '('
	newMask(
		"....#",
		"...#.",
		"..#..",
		"..#..",
		"..#..",
		"...#.",
		"....#",
	),
	// ')'
	newMask(
		"#....",
		".#...",
		"..#..",
		"..#..",
		"..#..",
		".#...",
		"#....",
	),
	// '*'
	newMask(
		"..#..",
		"#.#.#",
		".###.",
		"..#..",
		".###.",
		"#.#.#",
		"..#..",
	),
	// '+'
	newMask(
		".....",
		"..#..",
		"..#..",
		"#####",
		"..#..",
		"..#..",
		".....",
	),
	// ','
	newMask(
		".....",
		".....",
		".....",
		".....",
		".....",
		"..#..",
		"..#..",
	),
	// '-'
	newMask(
		".....",
		".....",
		".....",
		"#####",
		".....",
		".....",
		".....",
	),
	// '.'
	newMask(
		".....",
		".....",
		".....",
		".....",
		".....",
		".....",
		"..#..",
	),
	// '/'
	newMask(
		"...#.",
		"...#.",
		"..#..",
		"..#..",
		"..#..",
		".#...",
		".#...",
	),
	// '0'
	newMask(
		".###.",
		"#...#",
		"#..##",
		"#.#.#",
		"##..#",
		"#...#",
		".###.",
	),
	// '1'
	newMask(
		"..#..",
		".##..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".###.",
	),
	// '2'
	newMask(
		".###.",
		"#...#",
		"....#",
		"..##.",
		".#...",
		"#....",
		"#####",
	),
	// '3'
	newMask(
		"#####",
		"....#",
		"...#.",
		"..##.",
		"....#",
		"#...#",
		".###.",
	),
	// '4'
	newMask(
		"...#.",
		"..##.",
		".#.#.",
		"#..#.",
		"#####",
		"...#.",
		"...#.",
	),
	// '5'
	newMask(
		"#####",
		"#....",
		"####.",
		"....#",
		"....#",
		"#...#",
		".###.",
	),
	// '6'
	newMask(
		".###.",
		"#...#",
		"#....",
		"####.",
		"#...#",
		"#...#",
		".###.",
	),
	// '7'
	newMask(
		"#####",
		"....#",
		"...#.",
		"..#..",
		".#...",
		".#...",
		".#...",
	),
	// '8'
	newMask(
		".###.",
		"#...#",
		"#...#",
		".###.",
		"#...#",
		"#...#",
		".###.",
	),
	// '9'
	newMask(
		".###.",
		"#...#",
		"#...#",
		".####",
		"....#",
		"#...#",
		".###.",
	),
	// ':'
	newMask(
		".....",
		"..#..",
		".....",
		".....",
		".....",
		"..#..",
		".....",
	),
	// ';'
	newMask(
		".....",
		"..#..",
		".....",
		".....",
		".....",
		"..#..",
		"..#..",
	),
	// '<'
	newMask(
		"....#",
		"...#.",
		"..#..",
		".#...",
		"..#..",
		"...#.",
		"....#",
	),
	// '='
	newMask(
		".....",
		".....",
		"#####",
		".....",
		"#####",
		".....",
		".....",
	),
	// '>'
	newMask(
		"#....",
		".#...",
		"..#..",
		"...#.",
		"..#..",
		".#...",
		"#....",
	),
	// '?'
	newMask(
		".###.",
		"#...#",
		"...#.",
		"..#..",
		"..#..",
		".....",
		"..#..",
	),
	// '@'
	newMask(
		".###.",
		"#...#",
		"#.#.#",
		"##.##",
		"#.#..",
		"#...#",
		".###.",
	),
	// 'A'
	newMask(
		"..#..",
		".#.#.",
		"#...#",
		"#...#",
		"#####",
		"#...#",
		"#...#",
	),
	// 'B'
	newMask(
		"####.",
		"#...#",
		"#...#",
		"####.",
		"#...#",
		"#...#",
		"####.",
	),
	// 'C'
	newMask(
		".###.",
		"#...#",
		"#....",
		"#....",
		"#....",
		"#...#",
		".###.",
	),
	// 'D'
	newMask(
		"####.",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"####.",
	),
	// 'E'
	newMask(
		"#####",
		"#....",
		"#....",
		"####.",
		"#....",
		"#....",
		"#####",
	),
	// 'F'
	newMask(
		"#####",
		"#....",
		"#....",
		"####.",
		"#....",
		"#....",
		"#....",
	),
	// 'G'
	newMask(
		".###.",
		"#...#",
		"#....",
		"#.###",
		"#...#",
		"#...#",
		".###.",
	),
	// 'H'
	newMask(
		"#...#",
		"#...#",
		"#...#",
		"#####",
		"#...#",
		"#...#",
		"#...#",
	),
	// 'I'
	newMask(
		".###.",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		".###.",
	),
	// 'J'
	newMask(
		"....#",
		"....#",
		"....#",
		"....#",
		"....#",
		"#...#",
		".###.",
	),
	// 'K'
	newMask(
		"#...#",
		"#..#.",
		"#.#..",
		"##...",
		"#.#..",
		"#..#.",
		"#...#",
	),
	// 'L'
	newMask(
		"#....",
		"#....",
		"#....",
		"#....",
		"#....",
		"#....",
		"#####",
	),
	// 'M'
	newMask(
		"#...#",
		"##.##",
		"#.#.#",
		"#.#.#",
		"#...#",
		"#...#",
		"#...#",
	),
	// 'N'
	newMask(
		"#...#",
		"#...#",
		"##..#",
		"#.#.#",
		"#..##",
		"#...#",
		"#...#",
	),
	// 'O'
	newMask(
		".###.",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".###.",
	),
	// 'P'
	newMask(
		"####.",
		"#...#",
		"#...#",
		"####.",
		"#....",
		"#....",
		"#....",
	),
	// 'Q'
	newMask(
		".###.",
		"#...#",
		"#...#",
		"#...#",
		"#.#.#",
		"#..##",
		".####",
	),
	// 'R'
	newMask(
		"####.",
		"#...#",
		"#...#",
		"####.",
		"#.#..",
		"#..#.",
		"#...#",
	),
	// 'S'
	newMask(
		".###.",
		"#...#",
		"#....",
		".###.",
		"#...#",
		"....#",
		".###.",
	),
	// 'T'
	newMask(
		"#####",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	),
	// 'U'
	newMask(
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".###.",
	),
	// 'V'
	newMask(
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
	),
	// 'W'
	newMask(
		"#...#",
		"#...#",
		"#...#",
		"#.#.#",
		"#.#.#",
		"##.##",
		"#...#",
	),
	// 'X'
	newMask(
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
		".#.#.",
		"#...#",
		"#...#",
	),
	// 'Y'
	newMask(
		"#...#",
		"#...#",
		".#.#.",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
	),
	// 'Z'
	newMask(
		"#####",
		"....#",
		"...#.",
		"..#..",
		".#...",
		"#....",
		"#####",
	),
	// '['
	newMask(
		"...##",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"...##",
	),
	// '\\'
	newMask(
		".#...",
		".#...",
		"..#..",
		"..#..",
		"..#..",
		"...#.",
		"...#.",
	),
	// ']'
	newMask(
		"##...",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"..#..",
		"##...",
	),
	// '^'
	newMask(
		"..#..",
		".#.#.",
		"#...#",
		".....",
		".....",
		".....",
		".....",
	),
	// '_'
	newMask(
		".....",
		".....",
		".....",
		".....",
		".....",
		".....",
		"#####",
	),
	// '`'
	newMask(
		"..#..",
		"...#.",
		".....",
		".....",
		".....",
		".....",
		".....",
	),
}

// Glyph 返回字符对应的 5×7 字模
// 表外字符返回 (nil, false)，由调用方决定跳过策略
func Glyph(ch byte) (*Mask, bool) {
	idx := int(ch) - fontFirstChar
	if idx < 0 || idx >= fontGlyphs {
		return nil, false
	}
	return fontTable[idx], true
}
