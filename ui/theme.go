package ui

import (
	"bytes"
	"log"
	"sync"

	"github.com/automoto/the-caverns/config"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontSource     *text.GoTextFaceSource
	fontSourceOnce sync.Once
)

func loadFontSource() *text.GoTextFaceSource {
	fontSourceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatalf("failed to load UI font: %v", err)
		}
		fontSource = src
	})
	return fontSource
}

func newFace(size float64) text.Face {
	return &text.GoTextFace{Source: loadFontSource(), Size: size}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(config.Menu.ButtonColor),
		Hover:   image.NewNineSliceColor(config.Menu.ButtonHoverColor),
		Pressed: image.NewNineSliceColor(config.Menu.ButtonHoverColor),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle: config.Menu.ButtonTextColor,
	}
}

func newButton(label string, face *text.Face, width, height int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width, height),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, face, buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}
