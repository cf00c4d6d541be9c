package config

import "strings"

// StoryIntro is shown once, before the first game starts.
var StoryIntro = []string{
	"A darkness has fallen upon this once beautiful land.",
	"What was once full of life is now permeated with the stench of death and decay",
	"Lake crystal clear and sky pure blue turned red by the smoke that chokes the air.",
	"Where there were once animals and people living in harmony,",
	"There are now only creatures of darkness plotting their evil machinations.",
	"Where there was once a great kingdon of dwarves, their halls filled with splendor,",
	"There is now only the remains of their dark and dusty halls...",
}

// StoryIntroText joins the intro lines with a blank line between each.
func StoryIntroText() string {
	return strings.Join(StoryIntro, "\n\n")
}
