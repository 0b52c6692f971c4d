// verify_sim 无窗口运行模拟核心并打印结果
//
// 用脚本化输入跑完一局：炮台左右扫射并持续开火，观察得分、击杀与
// 胜负阶段是否符合预期。不创建窗口，适合在 CI 或无显示环境下验证。
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/scenes"
	"github.com/decker502/invaders/pkg/utils"
)

var (
	seed     = flag.Int64("seed", 1, "编队开火的随机种子")
	maxTicks = flag.Int("ticks", 60000, "最多模拟的 tick 数")
	fireGap  = flag.Int("fire-gap", 20, "脚本开火间隔（tick）")
)

func main() {
	flag.Parse()

	cfg := config.DefaultConfig()
	scene := scenes.NewGameScene(cfg, rand.New(rand.NewSource(*seed)))

	// 脚本输入：在场地内往返扫射，每隔固定 tick 开一炮
	dir := 1
	ticks := 0
	for ticks < *maxTicks {
		input := utils.InputSnapshot{Dir: dir}
		if ticks%*fireGap == 0 {
			input.Fire = true
		}
		if ticks%120 == 119 {
			dir = -dir
		}

		if !scene.Tick(input) {
			break
		}
		ticks++

		if scene.State().Terminal() {
			break
		}
	}

	state := scene.State()
	fmt.Printf("ticks=%d phase=%s score=%d kills=%d\n",
		ticks, state.Phase(), state.Score(), state.Kills())

	if state.Terminal() {
		os.Exit(0)
	}
	fmt.Println("simulation did not reach a terminal state")
	os.Exit(1)
}
