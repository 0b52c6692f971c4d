package systems

import (
	"strconv"

	"github.com/decker502/invaders/pkg/buffer"
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/sprites"
	"github.com/decker502/invaders/pkg/utils"
)

// RenderSystem 将当前模拟状态合成到像素缓冲区
// 只读取实体状态，不修改任何组件
type RenderSystem struct {
	em       *ecs.EntityManager
	cfg      *config.GameConfig
	state    *game.GameState
	pool     *game.ProjectilePool
	grid     [][]ecs.EntityID
	playerID ecs.EntityID
	anim     *AnimationSystem

	bgColor     buffer.Color
	alienColor  buffer.Color
	playerColor buffer.Color
	textColor   buffer.Color
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, cfg *config.GameConfig, state *game.GameState,
	pool *game.ProjectilePool, grid [][]ecs.EntityID, playerID ecs.EntityID, anim *AnimationSystem) *RenderSystem {
	return &RenderSystem{
		em:          em,
		cfg:         cfg,
		state:       state,
		pool:        pool,
		grid:        grid,
		playerID:    playerID,
		anim:        anim,
		bgColor:     rgbFromConfig(cfg.Colors.Background),
		alienColor:  rgbFromConfig(cfg.Colors.Alien),
		playerColor: rgbFromConfig(cfg.Colors.Player),
		textColor:   rgbFromConfig(cfg.Colors.Text),
	}
}

func rgbFromConfig(c config.RGBConfig) buffer.Color {
	return buffer.RGB(c.R, c.G, c.B)
}

// Compose 合成一帧完整画面：背景、HUD、编队、玩家与弹体
func (s *RenderSystem) Compose(buf *buffer.PixelBuffer) {
	buf.Clear(s.bgColor)
	s.drawHUD(buf)
	s.drawAliens(buf)
	s.drawPlayer(buf)
	s.drawProjectiles(buf)
}

// drawHUD 绘制得分与底部标题
func (s *RenderSystem) drawHUD(buf *buffer.PixelBuffer) {
	scoreY := s.cfg.Field.Height - 14
	utils.DrawText(buf, "SCORE", 4, scoreY, s.textColor, "left")
	utils.DrawText(buf, strconv.Itoa(s.state.Score()),
		4+utils.MeasureText("SCORE")+8, scoreY, s.textColor, "left")

	utils.DrawText(buf, "ALIEN INVADERS", s.cfg.Field.Width/2, 7, s.textColor, "center")

	// 底部标题上方的分隔线
	for x := 0; x < buf.Width(); x++ {
		buf.Set(x, 16, s.textColor)
	}
}

// drawAliens 按网格顺序绘制编队
// 存活个体取当前动画帧；死亡个体在倒计时耗尽前绘制残骸，之后不再绘制
func (s *RenderSystem) drawAliens(buf *buffer.PixelBuffer) {
	for row := range s.grid {
		for col := range s.grid[row] {
			alien, found := ecs.GetComponent[*components.AlienComponent](s.em, s.grid[row][col])
			if !found {
				continue
			}
			if !alien.Type.Alive() && alien.DeathTicks == 0 {
				continue
			}
			pos, found := ecs.GetComponent[*components.PositionComponent](s.em, s.grid[row][col])
			if !found {
				continue
			}
			buf.Blit(s.anim.CurrentMask(alien.Type), pos.X, pos.Y, s.alienColor)
		}
	}
}

// drawPlayer 绘制玩家炮台
func (s *RenderSystem) drawPlayer(buf *buffer.PixelBuffer) {
	pos, found := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	if !found {
		return
	}
	buf.Blit(sprites.Get(sprites.SpritePlayer), pos.X, pos.Y, s.playerColor)
}

// drawProjectiles 按池内顺序绘制所有弹体
// 玩家弹体用玩家色，外星人弹体用外星人色
func (s *RenderSystem) drawProjectiles(buf *buffer.PixelBuffer) {
	rocketMask := sprites.Get(sprites.SpriteRocket)
	for i := 0; i < s.pool.Len(); i++ {
		id := s.pool.At(i)
		pos, found := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if !found {
			continue
		}
		proj, found := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		if !found {
			continue
		}

		color := s.alienColor
		if proj.Dir > 0 {
			color = s.playerColor
		}
		buf.Blit(rocketMask, pos.X, pos.Y, color)
	}
}

// RenderTerminal 绘制终局画面：背景加居中的结果文字
func (s *RenderSystem) RenderTerminal(buf *buffer.PixelBuffer, message string) {
	buf.Clear(s.bgColor)
	utils.DrawText(buf, message, s.cfg.Field.Width/2, 200, s.textColor, "center")
	s.drawHUD(buf)
}
