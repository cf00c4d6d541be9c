package systems

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/automoto/the-caverns/assets"
	"github.com/automoto/the-caverns/components"
	cfg "github.com/automoto/the-caverns/config"
	"github.com/automoto/the-caverns/maps"
	"github.com/automoto/the-caverns/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a world with the resource entity, a collision space and
// a camera. Tileset images are not decoded.
func newTestECS(t *testing.T, menu cfg.GameMenuState) *ecs.ECS {
	t.Helper()

	prevLoad := loadTilesetImage
	loadTilesetImage = func(fs.FS, *maps.Tileset) (*ebiten.Image, error) { return nil, nil }
	assets.SetDir("")
	SetDataStore(newFakeStore())
	t.Cleanup(func() {
		loadTilesetImage = prevLoad
		SetDataStore(nil)
	})

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateResources(e, menu, cfg.C.Width, cfg.C.Height)
	factory.CreateSpace(e, 640, 480, 32, 32)
	factory.CreateCamera(e)
	return e
}

func countTagged(w donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(w, func(*donburi.Entry) { n++ })
	return n
}

type fakeStore struct {
	items   map[string][]byte
	loadErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[string][]byte)}
}

func (s *fakeStore) LoadItem(key string) ([]byte, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.items[key], nil
}

func (s *fakeStore) SaveItem(key string, data []byte) error {
	s.items[key] = data
	return nil
}

var errStoreDown = errors.New("store unavailable")

type fakeScreen struct {
	name          string
	updates       int
	width, height int
}

func (s *fakeScreen) Update() { s.updates++ }
func (s *fakeScreen) Draw(*ebiten.Image) {}
func (s *fakeScreen) Resize(width, height int) { s.width, s.height = width, height }

type fakeScreens struct {
	built []*fakeScreen
}

func (f *fakeScreens) StartScreen(*ecs.ECS) components.Screen {
	s := &fakeScreen{name: "start"}
	f.built = append(f.built, s)
	return s
}

func (f *fakeScreens) StorylineScreen(*ecs.ECS) components.Screen {
	s := &fakeScreen{name: "storyline"}
	f.built = append(f.built, s)
	return s
}

// openScreens lists the names of the screens attached to menu roots.
func openScreens(w donburi.World) []string {
	var names []string
	components.MenuRoot.Each(w, func(e *donburi.Entry) {
		if s, ok := components.MenuRoot.Get(e).Screen.(*fakeScreen); ok {
			names = append(names, s.name)
		}
	})
	return names
}

// tick runs the transition systems the way the scene orders them.
func tick(e *ecs.ECS) {
	UpdateStates(e)
	PromoteLoadedMap(e)
	PromoteLoadedLevel(e)
}
