package ui

import (
	"math"

	"github.com/automoto/the-caverns/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// StorylineBounds returns the box the story text is wrapped into for a
// window of the given size.
func StorylineBounds(width, height int) (float64, float64) {
	w, h := float64(width), float64(height)
	return math.Min(math.Max(w*0.8, 1000), w-50), math.Min(math.Max(h*0.8, 500), h-50)
}

// StorylineFontSize grows the story font slightly with the window height.
func StorylineFontSize(height int) float64 {
	return config.Menu.StoryBaseFontSize + float64(height)*0.005
}

// StorylineScreen shows the intro story with a Continue button. It fades
// in when first shown.
type StorylineScreen struct {
	UI *ebitenui.UI

	OnContinue func()

	width, height int

	fade   *gween.Tween
	alpha  float32
	buffer *ebiten.Image
	drawOp ebiten.DrawImageOptions

	storyFace  text.Face
	buttonFace text.Face
}

func NewStorylineScreen(onContinue func()) *StorylineScreen {
	s := &StorylineScreen{
		OnContinue: onContinue,
		width:      config.C.Width,
		height:     config.C.Height,
		fade:       gween.New(0, 1, config.Menu.StoryFadeSeconds, ease.Linear),
	}
	s.buttonFace = newFace(config.Menu.ButtonFontSize)
	s.buildUI()
	return s
}

func (s *StorylineScreen) buildUI() {
	s.storyFace = newFace(StorylineFontSize(s.height))
	boxW, boxH := StorylineBounds(s.width, s.height)
	boxW, boxH = math.Max(boxW, 0), math.Max(boxH, 0)

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(25)),
		)),
	)

	story := widget.NewText(
		widget.TextOpts.Text(config.StoryIntroText(), &s.storyFace, config.Menu.StoryTextColor),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.MaxWidth(boxW),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(boxW), int(boxH)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	rootContainer.AddChild(story)

	continueBtn := newButton("Continue", &s.buttonFace,
		config.Menu.ContinueWidth, config.Menu.ButtonHeight, s.OnContinue)
	continueBtn.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionEnd,
	}
	rootContainer.AddChild(continueBtn)

	s.UI = &ebitenui.UI{Container: rootContainer}
}

// Alpha is the current fade-in opacity.
func (s *StorylineScreen) Alpha() float32 {
	return s.alpha
}

func (s *StorylineScreen) Update() {
	s.advance(float32(1 / float64(ebiten.TPS())))
	s.UI.Update()
}

func (s *StorylineScreen) advance(dt float32) {
	if s.fade == nil {
		s.alpha = 1
		return
	}
	alpha, finished := s.fade.Update(dt)
	s.alpha = alpha
	if finished {
		s.fade = nil
		s.alpha = 1
	}
}

func (s *StorylineScreen) Draw(screen *ebiten.Image) {
	if s.alpha >= 1 {
		s.UI.Draw(screen)
		return
	}

	b := screen.Bounds()
	if s.buffer == nil || s.buffer.Bounds().Dx() != b.Dx() || s.buffer.Bounds().Dy() != b.Dy() {
		if s.buffer != nil {
			s.buffer.Deallocate()
		}
		s.buffer = ebiten.NewImage(b.Dx(), b.Dy())
	}
	s.buffer.Clear()
	s.UI.Draw(s.buffer)

	s.drawOp.ColorScale.Reset()
	s.drawOp.ColorScale.ScaleAlpha(s.alpha)
	screen.DrawImage(s.buffer, &s.drawOp)
}

// Resize rebuilds the tree so the text box and font follow the window.
func (s *StorylineScreen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.buildUI()
}
