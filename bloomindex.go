package kas

import "github.com/bits-and-blooms/bloom/v3"

const bloomFalsePositiveRate = 0.01

// buildBloomIndex builds an in-memory-only negative-lookup accelerator
// over the parsed key set. It is never persisted: the file format has no
// room for a filter region and isn't allowed to grow one.
func buildBloomIndex(items []*item) *bloom.BloomFilter {
	n := uint(len(items))
	if n == 0 {
		n = 1
	}

	f := bloom.NewWithEstimates(n, bloomFalsePositiveRate)
	for _, it := range items {
		f.Add(it.key)
	}

	return f
}

// mightContain reports whether key could be present. false is definitive
// (the key is absent); true means "check the real index."
func mightContain(f *bloom.BloomFilter, key []byte) bool {
	if f == nil {
		return true
	}
	return f.Test(key)
}
