package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/the-caverns/config"
	"github.com/quasilyte/gdata"
)

// StorylineIntroShownKey is the data store item recording that the intro
// was shown.
const StorylineIntroShownKey = "storyline_intro_shown"

// DataStore is the subset of *gdata.Manager the game uses.
type DataStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var dataStore DataStore

// storylineShownThisSession covers runs where the data store is unavailable.
var storylineShownThisSession bool

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.AppName,
	})
	if err != nil {
		log.Printf("[store] Warning: Could not initialize persistence: %v", err)
		return err
	}
	dataStore = m
	return nil
}

// SetDataStore replaces the backing store. A nil store disables persistence.
func SetDataStore(s DataStore) {
	dataStore = s
	storylineShownThisSession = false
}

// StorylineIntroShown reports whether the storyline intro has been shown,
// in this session or a previous one.
func StorylineIntroShown() bool {
	if storylineShownThisSession {
		return true
	}
	if dataStore == nil {
		return false
	}

	data, err := dataStore.LoadItem(StorylineIntroShownKey)
	if err != nil {
		log.Printf("[store] Warning: Could not load %s: %v", StorylineIntroShownKey, err)
		return false
	}
	if data == nil {
		return false
	}

	var shown bool
	if err := json.Unmarshal(data, &shown); err != nil {
		log.Printf("[store] Warning: Could not parse %s: %v", StorylineIntroShownKey, err)
		return false
	}
	return shown
}

// MarkStorylineIntroShown records that the intro was shown.
func MarkStorylineIntroShown() {
	storylineShownThisSession = true
	saveFlag(StorylineIntroShownKey, true)
}

// ResetProgress forgets that the storyline intro was shown.
func ResetProgress() {
	storylineShownThisSession = false
	saveFlag(StorylineIntroShownKey, false)
}

func saveFlag(key string, value bool) {
	if dataStore == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("[store] Warning: Could not serialize %s: %v", key, err)
		return
	}
	if err := dataStore.SaveItem(key, data); err != nil {
		log.Printf("[store] Warning: Could not save %s: %v", key, err)
	}
}
