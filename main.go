package main

import (
	"flag"
	"log"

	"github.com/decker502/invaders/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "游戏参数 YAML 路径，留空使用内置默认值")
	seed := flag.Int64("seed", 0, "编队开火的随机种子，0 表示按当前时间取种")
	flag.Parse()

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(640, 640)
	ebiten.SetWindowTitle("Alien Invaders")

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
