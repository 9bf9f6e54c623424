package partition

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// RandomSplit shuffles n rows and holds out the given fraction for testing.
// Both index sets are sorted.
func RandomSplit(n int, fraction float64, seed int64) (train, test []int, err error) {
	if fraction <= 0 || fraction >= 1 {
		return nil, nil, fmt.Errorf("invalid test fraction %g", fraction)
	}
	rows := rand.New(rand.NewSource(seed)).Perm(n)
	k := int(math.Round(fraction * float64(n)))
	test = append(test, rows[:k]...)
	train = append(train, rows[k:]...)
	sort.Ints(train)
	sort.Ints(test)
	return train, test, nil
}

// StratifiedSplit holds out the given fraction of every label separately,
// so both sets keep the label proportions of the input.
func StratifiedSplit(labels []int, fraction float64, seed int64) (train, test []int, err error) {
	if fraction <= 0 || fraction >= 1 {
		return nil, nil, fmt.Errorf("invalid test fraction %g", fraction)
	}
	groups := make(map[int][]int)
	for i, l := range labels {
		groups[l] = append(groups[l], i)
	}
	keys := make([]int, 0, len(groups))
	for l := range groups {
		keys = append(keys, l)
	}
	sort.Ints(keys)

	rnd := rand.New(rand.NewSource(seed))
	for _, l := range keys {
		rows := groups[l]
		rnd.Shuffle(len(rows), func(i, j int) {
			rows[i], rows[j] = rows[j], rows[i]
		})
		k := int(math.Round(fraction * float64(len(rows))))
		test = append(test, rows[:k]...)
		train = append(train, rows[k:]...)
	}
	sort.Ints(train)
	sort.Ints(test)
	return train, test, nil
}
