// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

package profile

import "github.com/thomaspetersen1/wayfinder/internal/recommend"

// Location is a point on the map attached to a persona.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Persona is a seeded demo user with display metadata. The profile inside is
// only the starting point: feedback keeps nudging it like any other user's.
type Persona struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Location    *Location             `json:"location,omitempty"`
	City        string                `json:"city,omitempty"`
	Profile     recommend.UserProfile `json:"profile"`
}

// Personas are seeded into a fresh store so the system has recognizable
// users before any real feedback exists.
var Personas = map[string]Persona{
	"alex": {
		Name:        "Alex (Norman)",
		Description: "Chill coffee lover. Walks everywhere. Prefers cozy, affordable spots. Based in Norman.",
		Location:    &Location{Lat: 35.2087, Lng: -97.4395},
		City:        "Norman",
		Profile: recommend.UserProfile{
			CategoryFood:          0.8,
			CategoryOutdoor:       0.2,
			CategoryEntertainment: 0.4,
			CategoryCulture:       0.3,
			PriceSensitivity:      0.3,
			AdventureLevel:        0.3,
		},
	},
	"jordan": {
		Name:        "Jordan (Norman)",
		Description: "Active and outdoorsy. Always exploring. Willing to drive for a good trail. Based in Norman.",
		Location:    &Location{Lat: 35.2226, Lng: -97.4395},
		City:        "Norman",
		Profile: recommend.UserProfile{
			CategoryFood:          0.3,
			CategoryOutdoor:       0.9,
			CategoryEntertainment: 0.6,
			CategoryCulture:       0.1,
			PriceSensitivity:      0.5,
			AdventureLevel:        0.8,
		},
	},
	"sam": {
		Name:        "Sam (Norman)",
		Description: "Creative and cultured. Museums, galleries, bookstores. Transit rider. Based in Norman.",
		Location:    &Location{Lat: 35.2226, Lng: -97.4395},
		City:        "Norman",
		Profile: recommend.UserProfile{
			CategoryFood:          0.4,
			CategoryOutdoor:       0.3,
			CategoryEntertainment: 0.5,
			CategoryCulture:       0.9,
			PriceSensitivity:      0.6,
			AdventureLevel:        0.5,
		},
	},
	"maya_okc": {
		Name:        "Maya (OKC)",
		Description: "Just moved to OKC after graduating. Foodie who loves trying new spots. Drives everywhere.",
		Location:    &Location{Lat: 35.4676, Lng: -97.5164},
		City:        "Oklahoma City",
		Profile: recommend.UserProfile{
			CategoryFood:          0.9,
			CategoryOutdoor:       0.4,
			CategoryEntertainment: 0.7,
			CategoryCulture:       0.5,
			PriceSensitivity:      0.4,
			AdventureLevel:        0.7,
		},
	},
	"chris_dallas": {
		Name:        "Chris (Dallas)",
		Description: "New grad in Dallas. Social butterfly. Bars, restaurants, live music. Always down for something new.",
		Location:    &Location{Lat: 32.7767, Lng: -96.7970},
		City:        "Dallas",
		Profile: recommend.UserProfile{
			CategoryFood:          0.6,
			CategoryOutdoor:       0.2,
			CategoryEntertainment: 0.9,
			CategoryCulture:       0.4,
			PriceSensitivity:      0.5,
			AdventureLevel:        0.9,
		},
	},
}
