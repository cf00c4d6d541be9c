package systems

import (
	"fmt"

	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFPSText refreshes the frame counter every HUD.FPSRefreshSecs.
func UpdateFPSText(ecs *ecs.ECS) {
	dt := tickSeconds()
	components.FPSText.Each(ecs.World, func(e *donburi.Entry) {
		AdvanceFPSText(components.FPSText.Get(e), dt, ebiten.ActualFPS())
	})
}

// AdvanceFPSText adds dt to the timer and rewrites the text once the refresh
// interval has passed.
func AdvanceFPSText(fps *components.FPSTextData, dt, actual float64) {
	fps.Timer += dt
	if fps.Timer < cfg.HUD.FPSRefreshSecs {
		return
	}
	fps.Timer = 0
	fps.Text = fmt.Sprintf("FPS: %.2f", actual)
}

func DrawFPSText(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.HUD.Loaded() {
		return
	}
	face := fonts.HUD.Get()
	ascent := face.Metrics().Ascent.Ceil()
	components.FPSText.Each(ecs.World, func(e *donburi.Entry) {
		fps := components.FPSText.Get(e)
		text.Draw(screen, fps.Text, face, cfg.HUD.FPSX, cfg.HUD.FPSY+ascent, cfg.HUD.FPSColor)
	})
}
