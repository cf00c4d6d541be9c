package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestLoadFontWithSize(t *testing.T) {
	if err := LoadFontWithSize(HUD, gomono.TTF, 25); err != nil {
		t.Fatalf("LoadFontWithSize: %v", err)
	}
	if !HUD.Loaded() {
		t.Fatal("font not registered")
	}
	if HUD.Get().Metrics().Height.Ceil() == 0 {
		t.Fatal("face has no height")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Fatal("expected parse error")
	}
	if FontName("broken").Loaded() {
		t.Fatal("broken font should not be registered")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
