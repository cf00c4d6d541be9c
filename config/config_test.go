package config

import (
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestDefaultBindingsAreWASD(t *testing.T) {
	b := DefaultBindings()
	cases := map[ActionID]ebiten.Key{
		ActionForward:  ebiten.KeyW,
		ActionBackward: ebiten.KeyS,
		ActionLeft:     ebiten.KeyA,
		ActionRight:    ebiten.KeyD,
	}
	for action, want := range cases {
		keys := b[action].Keys
		if len(keys) != 1 || keys[0] != want {
			t.Errorf("%s: got %v, want [%v]", action, keys, want)
		}
	}
}

func TestParseKeymap(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		action  ActionID
		want    []ebiten.Key
		wantErr bool
	}{
		{name: "override forward", doc: "forward: [ArrowUp, W]\n", action: ActionForward, want: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
		{name: "key prefix accepted", doc: "left: [KeyJ]\n", action: ActionLeft, want: []ebiten.Key{ebiten.KeyJ}},
		{name: "untouched action keeps default", doc: "left: [J]\n", action: ActionRight, want: []ebiten.Key{ebiten.KeyD}},
		{name: "unknown action", doc: "jump: [Space]\n", wantErr: true},
		{name: "unknown key", doc: "forward: [Banana]\n", wantErr: true},
		{name: "bad yaml", doc: "forward: [W\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseKeymap([]byte(tt.doc))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKeymap: %v", err)
			}
			got := b[tt.action].Keys
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestLoadKeymapMissingFile(t *testing.T) {
	if _, err := LoadKeymap(fstest.MapFS{}, "keymap.yaml"); err == nil {
		t.Fatal("expected error for missing keymap")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CAVERNS_ASSETS_DIR", "/tmp/assets")
	t.Setenv("CAVERNS_WIDTH", "800")
	t.Setenv("CAVERNS_DEBUG", "true")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if e.AssetsDir != "/tmp/assets" || e.Width != 800 || e.Height != 720 || !e.DrawColliders {
		t.Fatalf("unexpected env: %+v", e)
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	t.Setenv("CAVERNS_WIDTH", "wide")
	if _, err := LoadEnv(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestStoryIntroText(t *testing.T) {
	text := StoryIntroText()
	if len(StoryIntro) != 7 {
		t.Fatalf("got %d intro lines, want 7", len(StoryIntro))
	}
	want := StoryIntro[0] + "\n\n" + StoryIntro[1]
	if text[:len(want)] != want {
		t.Fatalf("intro lines not separated by blank lines: %q", text[:len(want)])
	}
}

func TestStateNames(t *testing.T) {
	if MapUnloaded.String() != "Unloaded" || MapUnloading.String() != "Unloading" {
		t.Fatal("unexpected map state names")
	}
	if LevelReady.String() != "Ready" {
		t.Fatal("unexpected level state name")
	}
	if MenuStorylineIntro.String() != "StorylineIntro" {
		t.Fatal("unexpected menu state name")
	}
}

func TestMenuColours(t *testing.T) {
	if Menu.TitleColor != Yellow {
		t.Errorf("title colour = %v, want yellow", Menu.TitleColor)
	}
	if Menu.StoryTextColor != Yellow {
		t.Errorf("story text colour = %v, want yellow", Menu.StoryTextColor)
	}
	if Menu.ButtonColor != Yellow || Menu.ButtonHoverColor != DarkYellow {
		t.Errorf("button colours = %v / %v, want yellow / dark yellow", Menu.ButtonColor, Menu.ButtonHoverColor)
	}
}
