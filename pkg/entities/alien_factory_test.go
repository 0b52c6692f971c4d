package entities

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/types"
)

func TestNewAlienFormationLayout(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultConfig()

	grid := NewAlienFormation(em, cfg)

	if len(grid) != cfg.Formation.Rows {
		t.Fatalf("Expected %d rows, got %d", cfg.Formation.Rows, len(grid))
	}
	for row := range grid {
		if len(grid[row]) != cfg.Formation.Columns {
			t.Fatalf("Row %d: expected %d columns, got %d", row, cfg.Formation.Columns, len(grid[row]))
		}
	}

	// 锚点按 起点 + 序号×间距 排布
	pos, found := ecs.GetComponent[*components.PositionComponent](em, grid[0][0])
	if !found {
		t.Fatal("Alien should have position component")
	}
	if pos.X != 30 || pos.Y != 250 {
		t.Errorf("Alien (0,0) should anchor at (30, 250), got (%d, %d)", pos.X, pos.Y)
	}

	pos, _ = ecs.GetComponent[*components.PositionComponent](em, grid[2][3])
	if pos.X != 30+3*26 || pos.Y != 250+2*23 {
		t.Errorf("Alien (2,3) should anchor at (108, 296), got (%d, %d)", pos.X, pos.Y)
	}
}

func TestNewAlienFormationTypes(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultConfig()

	grid := NewAlienFormation(em, cfg)

	// 底部 lowRows 行为低阶，其余为高阶
	for row := range grid {
		for col := range grid[row] {
			alien, found := ecs.GetComponent[*components.AlienComponent](em, grid[row][col])
			if !found {
				t.Fatalf("Alien (%d,%d) should have alien component", row, col)
			}

			want := types.AlienHigh
			if row < cfg.Formation.LowRows {
				want = types.AlienLow
			}
			if alien.Type != want {
				t.Errorf("Alien (%d,%d): expected type %v, got %v", row, col, want, alien.Type)
			}
			if alien.DeathTicks != cfg.Timing.DeathCountdownTicks {
				t.Errorf("Alien (%d,%d): expected death ticks %d, got %d",
					row, col, cfg.Timing.DeathCountdownTicks, alien.DeathTicks)
			}
		}
	}
}

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultConfig()

	id := NewPlayerEntity(em, cfg)

	pos, found := ecs.GetComponent[*components.PositionComponent](em, id)
	if !found {
		t.Fatal("Player should have position component")
	}
	if pos.X != cfg.Player.SpawnX || pos.Y != cfg.Player.SpawnY {
		t.Errorf("Player should spawn at (%d, %d), got (%d, %d)",
			cfg.Player.SpawnX, cfg.Player.SpawnY, pos.X, pos.Y)
	}

	player, found := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !found {
		t.Fatal("Player should have player component")
	}
	if player.Lives != cfg.Player.Lives {
		t.Errorf("Player should start with %d lives, got %d", cfg.Player.Lives, player.Lives)
	}
}

func TestNewProjectileEntity(t *testing.T) {
	em := ecs.NewEntityManager()

	id := NewProjectileEntity(em, 155, 35, 3)

	pos, found := ecs.GetComponent[*components.PositionComponent](em, id)
	if !found {
		t.Fatal("Projectile should have position component")
	}
	if pos.X != 155 || pos.Y != 35 {
		t.Errorf("Projectile should spawn at (155, 35), got (%d, %d)", pos.X, pos.Y)
	}

	proj, found := ecs.GetComponent[*components.ProjectileComponent](em, id)
	if !found {
		t.Fatal("Projectile should have projectile component")
	}
	if proj.Dir != 3 {
		t.Errorf("Projectile should keep dir 3, got %d", proj.Dir)
	}
}
