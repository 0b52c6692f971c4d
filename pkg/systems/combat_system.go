package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/sprites"
	"github.com/decker502/invaders/pkg/types"
)

// CombatSystem 处理弹体飞行、命中判定与胜负结算
type CombatSystem struct {
	em       *ecs.EntityManager
	cfg      *config.GameConfig
	state    *game.GameState
	pool     *game.ProjectilePool
	grid     [][]ecs.EntityID
	playerID ecs.EntityID
	anim     *AnimationSystem
}

// NewCombatSystem 创建战斗系统
func NewCombatSystem(em *ecs.EntityManager, cfg *config.GameConfig, state *game.GameState,
	pool *game.ProjectilePool, grid [][]ecs.EntityID, playerID ecs.EntityID, anim *AnimationSystem) *CombatSystem {
	return &CombatSystem{
		em:       em,
		cfg:      cfg,
		state:    state,
		pool:     pool,
		grid:     grid,
		playerID: playerID,
		anim:     anim,
	}
}

// overlap 严格不等式的 AABB 重叠判定
// 两个矩形仅边缘相触（坐标差恰好等于宽高）时不算重叠
func overlap(ax, ay, aw, ah, bx, by, bw, bh int) bool {
	return ax < bx+bw && bx < ax+aw &&
		ay < by+bh && by < ay+ah
}

// Update 推进所有弹体一个 tick 并结算命中
//
// 按池内顺序逐个处理：先位移，再做出界销毁，然后与编队、玩家判定。
// 销毁采用交换删除，被删位置由末位弹体补上，此时不推进下标，
// 保证补位弹体同样在本 tick 得到处理。全部弹体结算完后检查胜利条件。
func (s *CombatSystem) Update() {
	rocketMask := sprites.Get(sprites.SpriteRocket)

	i := 0
	for i < s.pool.Len() {
		id := s.pool.At(i)
		pos, found := ecs.GetComponent[*components.PositionComponent](s.em, id)
		proj, foundProj := ecs.GetComponent[*components.ProjectileComponent](s.em, id)
		if !found || !foundProj {
			s.pool.SwapRemove(i)
			continue
		}

		pos.Y += proj.Dir

		// 飞出场地顶部或落到底部即销毁
		if pos.Y >= s.cfg.Field.Height || pos.Y < rocketMask.Height {
			s.em.DestroyEntity(id)
			s.pool.SwapRemove(i)
			continue
		}

		if s.resolveAlienHit(id, pos, rocketMask) {
			s.pool.SwapRemove(i)
			continue
		}

		if s.resolvePlayerHit(id, pos, rocketMask) {
			s.pool.SwapRemove(i)
			continue
		}

		i++
	}

	// 全部弹体结算后再判定胜利，同一 tick 的击杀全部计入
	total := s.cfg.Formation.Rows * s.cfg.Formation.Columns
	if !s.state.Terminal() && s.state.Kills() >= total {
		s.state.MarkWon()
		log.Printf("[CombatSystem] Formation destroyed, final score %d", s.state.Score())
	}
}

// resolveAlienHit 将弹体与编队逐格判定，命中即结算并返回 true
// 按网格行序扫描，第一个命中的外星人吃掉弹体，之后的不再检查
func (s *CombatSystem) resolveAlienHit(id ecs.EntityID, pos *components.PositionComponent, rocketMask *sprites.Mask) bool {
	for row := range s.grid {
		for col := range s.grid[row] {
			alien, found := ecs.GetComponent[*components.AlienComponent](s.em, s.grid[row][col])
			if !found || !alien.Type.Alive() {
				continue
			}
			alienPos, found := ecs.GetComponent[*components.PositionComponent](s.em, s.grid[row][col])
			if !found {
				continue
			}

			mask := s.anim.CurrentMask(alien.Type)
			if !overlap(pos.X, pos.Y, rocketMask.Width, rocketMask.Height,
				alienPos.X, alienPos.Y, mask.Width, mask.Height) {
				continue
			}

			s.state.AddScore(alien.Type.ScoreValue())
			s.state.RecordKill()

			// 残骸位图更宽，左移半个宽度差让残骸保持居中
			deathMask := sprites.Get(sprites.SpriteAlienDeath)
			alienPos.X -= (deathMask.Width - mask.Width) / 2
			alien.Type = types.AlienDead

			s.em.DestroyEntity(id)
			return true
		}
	}
	return false
}

// resolvePlayerHit 判定弹体是否命中玩家，命中即扣生命并返回 true
// 生命耗尽标记失败；否则炮台回到出生点重生
func (s *CombatSystem) resolvePlayerHit(id ecs.EntityID, pos *components.PositionComponent, rocketMask *sprites.Mask) bool {
	player, found := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	if !found {
		return false
	}
	playerPos, found := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	if !found {
		return false
	}

	playerMask := sprites.Get(sprites.SpritePlayer)
	if !overlap(pos.X, pos.Y, rocketMask.Width, rocketMask.Height,
		playerPos.X, playerPos.Y, playerMask.Width, playerMask.Height) {
		return false
	}

	player.Lives--
	s.em.DestroyEntity(id)

	if player.Lives <= 0 {
		s.state.MarkLost()
		log.Printf("[CombatSystem] Player destroyed, final score %d", s.state.Score())
		return true
	}

	// 重生：回到出生点，剩余生命继续
	playerPos.X = s.cfg.Player.SpawnX
	playerPos.Y = s.cfg.Player.SpawnY
	log.Printf("[CombatSystem] Player hit, %d lives remaining", player.Lives)
	return true
}
