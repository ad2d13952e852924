package util

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Sly", "Lucky", "Bold", "Silent", "Gracious", "Happy", "Grumpy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Clever", "Prime",
	"Patient", "Daring", "Careful", "Sneaky", "Stubborn", "Wise",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Heron", "Shark", "Hippo", "Giraffe", "Lion", "Tiger",
	"Bear", "Otter", "Dolphin", "Hedgehog", "Lizard", "Owl", "Eagle", "Wolf", "Fox",
	"Badger", "Beaver", "Rhino", "Panda", "Stork", "Goose",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

// GetRandomName returns a random name by combining an adjective with an animal
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
