package catalog

import (
	"fmt"
	"math/rand"
)

var (
	titleAdjectives = []string{
		"Silent", "Crimson", "Eternal", "Wandering", "Hidden", "Golden",
		"Shattered", "Midnight", "Radiant", "Forgotten", "Iron", "Paper",
	}
	titleNouns = []string{
		"Blade", "Garden", "Empire", "Symphony", "Horizon", "Library",
		"Voyage", "Kingdom", "Alchemist", "Summer", "Orchestra", "Frontier",
	}
	tagPool = []string{
		"action", "drama", "comedy", "fantasy", "sci-fi", "romance",
		"slice-of-life", "mystery", "sports", "historical",
	}
	statusPool = []Status{StatusWatching, StatusCompleted, StatusPlanned, StatusDropped}
)

// Generate produces n synthetic records with unique keys. The same seed
// yields the same collection, which keeps stress runs and tests
// reproducible.
func Generate(n int, seed int64) []Record {
	rng := rand.New(rand.NewSource(seed))

	records := make([]Record, n)
	for i := range records {
		kind := KindAnime
		if rng.Intn(3) == 0 {
			kind = KindManga
		}

		tags := make([]string, 0, 3)
		for _, t := range rng.Perm(len(tagPool))[:1+rng.Intn(3)] {
			tags = append(tags, tagPool[t])
		}

		records[i] = Record{
			Key:   fmt.Sprintf("rec-%06d", i),
			Title: fmt.Sprintf("%s %s %d", titleAdjectives[rng.Intn(len(titleAdjectives))], titleNouns[rng.Intn(len(titleNouns))], i),
			Kind:  kind,
			Year:  1990 + rng.Intn(36),
			// One decimal place, 1.0..10.0.
			Rating: float64(10+rng.Intn(91)) / 10,
			Status: statusPool[rng.Intn(len(statusPool))],
			Tags:   tags,
			Notes:  "",
		}
	}
	return records
}
