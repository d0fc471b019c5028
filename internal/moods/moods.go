// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package moods

// Mood describes a selectable viewing mood and the TMDB genres that
// serve it. The genre lists are ordered by relevance; the first entries
// drive the discover query and the whole list drives relevance filtering.
type Mood struct {
	ID               string `json:"id"`
	Label            string `json:"label"`
	Emoji            string `json:"emoji"`
	Color            string `json:"color"`
	Description      string `json:"description"`
	GenrePreferences []int  `json:"genrePreferences"`
}

// TMDB genre IDs referenced by the mood table.
const (
	genreAction      = 28
	genreAdventure   = 12
	genreAnimation   = 16
	genreComedy      = 35
	genreCrime       = 80
	genreDocumentary = 99
	genreDrama       = 18
	genreFamily      = 10751
	genreFantasy     = 14
	genreHistory     = 36
	genreHorror      = 27
	genreMusic       = 10402
	genreMystery     = 9648
	genreRomance     = 10749
	genreSciFi       = 878
	genreThriller    = 53
)

// moodOrder fixes the enumeration order for ValidIDs and All.
var moodOrder = []string{
	"happy", "sad", "excited", "relaxed", "romantic",
	"adventurous", "scared", "thoughtful", "energetic", "nostalgic",
}

var registry = map[string]Mood{
	"happy": {
		ID:               "happy",
		Label:            "Happy",
		Emoji:            "😊",
		Color:            "bg-yellow-500",
		Description:      "Uplifting and feel-good content",
		GenrePreferences: []int{genreComedy, genreFamily, genreAnimation, genreMusic},
	},
	"sad": {
		ID:               "sad",
		Label:            "Sad",
		Emoji:            "😢",
		Color:            "bg-blue-500",
		Description:      "Emotional and touching stories",
		GenrePreferences: []int{genreDrama, genreRomance},
	},
	"excited": {
		ID:               "excited",
		Label:            "Excited",
		Emoji:            "🤩",
		Color:            "bg-orange-500",
		Description:      "High-energy and thrilling",
		GenrePreferences: []int{genreAction, genreAdventure, genreSciFi},
	},
	"relaxed": {
		ID:               "relaxed",
		Label:            "Relaxed",
		Emoji:            "😌",
		Color:            "bg-green-500",
		Description:      "Calm and soothing content",
		GenrePreferences: []int{genreDocumentary, genreHistory, genreFamily},
	},
	"romantic": {
		ID:               "romantic",
		Label:            "Romantic",
		Emoji:            "💕",
		Color:            "bg-pink-500",
		Description:      "Love stories and romantic comedies",
		GenrePreferences: []int{genreRomance, genreComedy},
	},
	"adventurous": {
		ID:               "adventurous",
		Label:            "Adventurous",
		Emoji:            "🗺️",
		Color:            "bg-purple-500",
		Description:      "Epic journeys and explorations",
		GenrePreferences: []int{genreAdventure, genreFantasy, genreAction},
	},
	"scared": {
		ID:               "scared",
		Label:            "Scared",
		Emoji:            "😱",
		Color:            "bg-red-500",
		Description:      "Horror and suspenseful thrillers",
		GenrePreferences: []int{genreHorror, genreThriller, genreMystery},
	},
	"thoughtful": {
		ID:               "thoughtful",
		Label:            "Thoughtful",
		Emoji:            "🤔",
		Color:            "bg-indigo-500",
		Description:      "Mind-bending and philosophical",
		GenrePreferences: []int{genreSciFi, genreMystery, genreDrama},
	},
	"energetic": {
		ID:               "energetic",
		Label:            "Energetic",
		Emoji:            "⚡",
		Color:            "bg-yellow-600",
		Description:      "Fast-paced and action-packed",
		GenrePreferences: []int{genreAction, genreCrime, genreThriller},
	},
	"nostalgic": {
		ID:               "nostalgic",
		Label:            "Nostalgic",
		Emoji:            "📼",
		Color:            "bg-amber-600",
		Description:      "Classic and timeless favorites",
		GenrePreferences: []int{genreDrama, genreRomance, genreComedy},
	},
}

// Lookup returns the mood for the given id. The second return value
// reports whether the id names a known mood.
func Lookup(id string) (Mood, bool) {
	m, ok := registry[id]
	return m, ok
}

// ValidIDs returns all mood ids in stable enumeration order.
func ValidIDs() []string {
	ids := make([]string, len(moodOrder))
	copy(ids, moodOrder)
	return ids
}

// All returns every mood in stable enumeration order.
func All() []Mood {
	all := make([]Mood, 0, len(moodOrder))
	for _, id := range moodOrder {
		all = append(all, registry[id])
	}
	return all
}
