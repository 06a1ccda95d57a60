package globalrand

import "math/rand"

func Global(candidates []string) string {
	return candidates[rand.Intn(len(candidates))] // want `rand.Intn uses the global random source, draw through chooser.Source`
}

func Shuffle(candidates []string) {
	rand.Shuffle(len(candidates), func(i, j int) { // want `rand.Shuffle uses the global random source, draw through chooser.Source`
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
}

func Seeded(candidates []string, seed int64) string {
	rnd := rand.New(rand.NewSource(seed))
	return candidates[rnd.Intn(len(candidates))]
}
