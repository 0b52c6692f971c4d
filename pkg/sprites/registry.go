package sprites

// SpriteID 精灵注册表索引
// 动画与绘制调用只保存这个小整数索引，不持有位图指针
type SpriteID int

const (
	// SpriteAlienLowA 低阶外星人动画第一帧
	SpriteAlienLowA SpriteID = iota
	// SpriteAlienLowB 低阶外星人动画第二帧
	SpriteAlienLowB
	// SpriteAlienHighA 高阶外星人动画第一帧
	SpriteAlienHighA
	// SpriteAlienHighB 高阶外星人动画第二帧
	SpriteAlienHighB
	// SpriteAlienDeath 外星人被击毁后的残骸
	SpriteAlienDeath
	// SpritePlayer 玩家炮台
	SpritePlayer
	// SpriteRocket 弹体（玩家与外星人共用）
	SpriteRocket

	spriteCount
)

var alienLowAMask = newMask(
	"..#.....#..",
	"...#...#...",
	"..#######..",
	".##.###.##.",
	"###########",
	"#.#######.#",
	"#.#.....#.#",
	"...##.##...",
)

var alienLowBMask = newMask(
	"..#.....#..",
	"#..#...#..#",
	"#.#######.#",
	"###.###.###",
	"###########",
	"..#######..",
	"..#.....#..",
	".#.......#.",
)

var alienHighAMask = newMask(
	"...##...",
	"..####..",
	".######.",
	"##.##.##",
	"########",
	".#.##.#.",
	"#......#",
	".#....#.",
)

var alienHighBMask = newMask(
	"...##...",
	"..####..",
	".######.",
	"##.##.##",
	"########",
	"..#..#..",
	".#.##.#.",
	"#.#..#.#",
)

var alienDeathMask = newMask(
	".#..#...#..#.",
	"..#..#.#..#..",
	"...#.....#...",
	"##.........##",
	"...#.....#...",
	"..#..#.#..#..",
	".#..#...#..#.",
)

var playerMask = newMask(
	"..#....#..",
	"..#....#..",
	".###..###.",
	".###..###.",
	".###..###.",
	".########.",
	".########.",
	".########.",
	".########.",
	"##########",
)

var rocketMask = newMask(
	"##",
	"##",
	"##",
	"##",
	"##",
)

// registry 按 SpriteID 排列的精灵注册表
var registry = [spriteCount]*Mask{
	SpriteAlienLowA:  alienLowAMask,
	SpriteAlienLowB:  alienLowBMask,
	SpriteAlienHighA: alienHighAMask,
	SpriteAlienHighB: alienHighBMask,
	SpriteAlienDeath: alienDeathMask,
	SpritePlayer:     playerMask,
	SpriteRocket:     rocketMask,
}

// Get 返回指定 ID 的精灵位图
// ID 越界属于编程错误，直接 panic
func Get(id SpriteID) *Mask {
	if id < 0 || id >= spriteCount {
		panic("sprites: invalid sprite id")
	}
	return registry[id]
}
