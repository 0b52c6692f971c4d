package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/types"
)

func newFormationFixture(t *testing.T, cfg *config.GameConfig) (*FormationSystem, *ecs.EntityManager, *game.ProjectilePool, [][]ecs.EntityID) {
	t.Helper()
	em := ecs.NewEntityManager()
	pool := game.NewProjectilePool(cfg.Projectile.MaxCount)
	grid := entities.NewAlienFormation(em, cfg)
	fs := NewFormationSystem(em, cfg, pool, grid, rand.New(rand.NewSource(1)))
	return fs, em, pool, grid
}

func alienAt(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.AlienComponent {
	t.Helper()
	alien, found := ecs.GetComponent[*components.AlienComponent](em, id)
	if !found {
		t.Fatal("Entity should have alien component")
	}
	return alien
}

func TestUpdateCountdowns(t *testing.T) {
	cfg := config.DefaultConfig()
	fs, em, _, grid := newFormationFixture(t, cfg)

	dead := alienAt(t, em, grid[0][0])
	dead.Type = types.AlienDead
	living := alienAt(t, em, grid[0][1])

	fs.UpdateCountdowns()

	if dead.DeathTicks != cfg.Timing.DeathCountdownTicks-1 {
		t.Errorf("Dead alien countdown should decrement, got %d", dead.DeathTicks)
	}
	if living.DeathTicks != cfg.Timing.DeathCountdownTicks {
		t.Errorf("Living alien countdown should not move, got %d", living.DeathTicks)
	}
}

func TestUpdateCountdownsStopsAtZero(t *testing.T) {
	cfg := config.DefaultConfig()
	fs, em, _, grid := newFormationFixture(t, cfg)

	dead := alienAt(t, em, grid[0][0])
	dead.Type = types.AlienDead

	// 远超倒计时长度的推进不会让计数跌破 0
	for i := 0; i < cfg.Timing.DeathCountdownTicks*3; i++ {
		fs.UpdateCountdowns()
	}
	if dead.DeathTicks != 0 {
		t.Errorf("Countdown should floor at 0, got %d", dead.DeathTicks)
	}
}

func TestRecomputeFrontRank(t *testing.T) {
	cfg := config.DefaultConfig()
	fs, em, _, grid := newFormationFixture(t, cfg)

	fs.RecomputeFrontRank()

	// 初始时每列代表都是最底行
	for col := 0; col < cfg.Formation.Columns; col++ {
		if fs.FrontRank()[col] != grid[0][col] {
			t.Errorf("Column %d: initial front rank should be bottom row", col)
		}
	}

	// 底行死亡后代表上移一行
	alienAt(t, em, grid[0][2]).Type = types.AlienDead
	fs.RecomputeFrontRank()
	if fs.FrontRank()[2] != grid[1][2] {
		t.Error("Front rank should move up past the dead bottom alien")
	}
}

func TestRecomputeFrontRankColumnWipedOut(t *testing.T) {
	cfg := config.DefaultConfig()
	fs, em, _, grid := newFormationFixture(t, cfg)

	for row := 0; row < cfg.Formation.Rows; row++ {
		alienAt(t, em, grid[row][4]).Type = types.AlienDead
	}
	fs.RecomputeFrontRank()

	// 整列全灭时回退为顶行记录
	top := cfg.Formation.Rows - 1
	if fs.FrontRank()[4] != grid[top][4] {
		t.Error("Wiped-out column should fall back to its top row record")
	}
}

func TestFormationFireCadence(t *testing.T) {
	cfg := config.DefaultConfig()
	fs, _, pool, _ := newFormationFixture(t, cfg)
	fs.RecomputeFrontRank()

	// 间隔未满时不开火
	for i := 0; i < cfg.Timing.AlienFireInterval-1; i++ {
		fs.TryFire()
	}
	if pool.Len() != 0 {
		t.Fatalf("No volley expected before the interval elapses, got %d projectiles", pool.Len())
	}

	fs.TryFire()
	if pool.Len() != 1 {
		t.Fatalf("Expected exactly 1 projectile at the interval, got %d", pool.Len())
	}

	// 下一个周期同样在整点开火
	for i := 0; i < cfg.Timing.AlienFireInterval; i++ {
		fs.TryFire()
	}
	if pool.Len() != 2 {
		t.Errorf("Expected second volley after another interval, got %d projectiles", pool.Len())
	}
}

func TestFormationFireSpawnsBelowRepresentative(t *testing.T) {
	cfg := config.DefaultConfig()
	fs, em, pool, grid := newFormationFixture(t, cfg)
	fs.RecomputeFrontRank()

	for i := 0; i < cfg.Timing.AlienFireInterval; i++ {
		fs.TryFire()
	}
	if pool.Len() != 1 {
		t.Fatalf("Expected 1 projectile, got %d", pool.Len())
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, pool.At(0))
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, pool.At(0))

	if proj.Dir != -cfg.Projectile.AlienSpeed {
		t.Errorf("Alien projectile should fly downward at speed %d, got dir %d", cfg.Projectile.AlienSpeed, proj.Dir)
	}

	// 弹体出生点必须与某列底行代表对齐
	matched := false
	for col := 0; col < cfg.Formation.Columns; col++ {
		repPos, _ := ecs.GetComponent[*components.PositionComponent](em, grid[0][col])
		if pos.X == repPos.X+4 && pos.Y == repPos.Y-10 {
			matched = true
			break
		}
	}
	if !matched {
		t.Errorf("Projectile spawn (%d, %d) does not align with any front-rank alien", pos.X, pos.Y)
	}
}

func TestFormationFireSkipsWipedOutColumn(t *testing.T) {
	cfg := config.DefaultConfig()
	fs, em, pool, grid := newFormationFixture(t, cfg)

	// 全编队阵亡：任何列被抽中都不应开火
	for row := range grid {
		for col := range grid[row] {
			alienAt(t, em, grid[row][col]).Type = types.AlienDead
		}
	}
	fs.RecomputeFrontRank()

	for i := 0; i < cfg.Timing.AlienFireInterval*5; i++ {
		fs.TryFire()
	}
	if pool.Len() != 0 {
		t.Errorf("Dead formation should never fire, got %d projectiles", pool.Len())
	}
}

func TestFormationFireDroppedWhenPoolFull(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Projectile.MaxCount = 1
	fs, em, pool, _ := newFormationFixture(t, cfg)
	fs.RecomputeFrontRank()

	pool.Add(entities.NewProjectileEntity(em, 0, 100, 3))

	for i := 0; i < cfg.Timing.AlienFireInterval; i++ {
		fs.TryFire()
	}
	if pool.Len() != 1 {
		t.Errorf("Full pool should drop the volley, got %d projectiles", pool.Len())
	}

	// 丢弃的发射不会卡死计时器，腾出空间后的下一个整点照常开火
	pool.SwapRemove(0)
	for i := 0; i < cfg.Timing.AlienFireInterval; i++ {
		fs.TryFire()
	}
	if pool.Len() != 1 {
		t.Errorf("Cadence should resume after pool frees up, got %d projectiles", pool.Len())
	}
}
