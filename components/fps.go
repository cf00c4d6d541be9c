package components

import "github.com/yohamta/donburi"

// FPSTextData is the on-screen frame counter.
type FPSTextData struct {
	Timer float64
	Text  string
}

var FPSText = donburi.NewComponentType[FPSTextData]()
