package auth

import (
	"fmt"
	"math/rand"
)

// Word lists for anonymous tag generation. Tags are display labels,
// not identifiers, so collisions are tolerated rather than checked.
var (
	tagAdjectives = []string{
		"Swift", "Brave", "Calm", "Bold", "Noble", "Wise", "Quick", "Silent", "Fierce", "Gentle",
	}
	tagNouns = []string{
		"Falcon", "River", "Eagle", "Lion", "Tiger", "Wolf", "Bear", "Hawk", "Phoenix", "Dragon",
	}
)

// GenerateAnonymousTag produces a tag of the form <Adjective><Noun>-<3digit>,
// e.g. "SwiftFalcon-417". A user's tag is generated once at
// registration and never reassigned.
func GenerateAnonymousTag() string {
	adj := tagAdjectives[rand.Intn(len(tagAdjectives))]
	noun := tagNouns[rand.Intn(len(tagNouns))]
	num := 100 + rand.Intn(900)
	return fmt.Sprintf("%s%s-%d", adj, noun, num)
}
