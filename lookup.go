package kas

import "sort"

// lookup binary-searches items (assumed sorted per compareKeys) for key and
// returns its index, or -1 on a miss.
func lookup(items []*item, key []byte) int {
	i := sort.Search(len(items), func(i int) bool {
		return compareKeys(items[i].key, key) >= 0
	})
	if i < len(items) && compareKeys(items[i].key, key) == 0 {
		return i
	}
	return -1
}
