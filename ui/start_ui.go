package ui

import (
	"github.com/automoto/the-caverns/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TitleTopMargin is the gap between the top of the window and the title.
func TitleTopMargin(height int) int {
	return int(float64(height) * 0.05)
}

// StartScreen is the title screen with Start and Quit buttons.
type StartScreen struct {
	UI *ebitenui.UI

	OnStart func()
	OnQuit  func()

	height int

	titleFace  text.Face
	buttonFace text.Face
}

func NewStartScreen(onStart, onQuit func()) *StartScreen {
	s := &StartScreen{
		OnStart: onStart,
		OnQuit:  onQuit,
		height:  config.C.Height,
	}
	s.titleFace = newFace(config.Menu.TitleFontSize)
	s.buttonFace = newFace(config.Menu.ButtonFontSize)
	s.buildUI()
	return s
}

func (s *StartScreen) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// The title has its own full-window node pinned to the top.
	titleRoot := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(&widget.Insets{Top: TitleTopMargin(s.height)}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)
	title := widget.NewText(
		widget.TextOpts.Text(config.Menu.Title, &s.titleFace, config.Menu.TitleColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	titleRoot.AddChild(title)

	buttonColumn := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	buttonColumn.AddChild(newButton("Start", &s.buttonFace,
		config.Menu.ButtonWidth, config.Menu.ButtonHeight, s.OnStart))
	buttonColumn.AddChild(newButton("Quit", &s.buttonFace,
		config.Menu.ButtonWidth, config.Menu.ButtonHeight, s.OnQuit))

	rootContainer.AddChild(titleRoot)
	rootContainer.AddChild(buttonColumn)

	s.UI = &ebitenui.UI{Container: rootContainer}
}

func (s *StartScreen) Update() {
	s.UI.Update()
}

func (s *StartScreen) Draw(screen *ebiten.Image) {
	s.UI.Draw(screen)
}

// Resize rebuilds the tree when the height changes so the title margin
// follows the window.
func (s *StartScreen) Resize(width, height int) {
	if height == s.height {
		return
	}
	s.height = height
	s.buildUI()
}
