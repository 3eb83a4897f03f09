// Package strhash provides the DJB2 string hash. The function is pure
// and allocation-free, so constant inputs fold down to cheap lookups
// in practice. There is no seed and no collision resistance, so do
// not use it for anything security-sensitive.
package strhash

// Hash returns the 64-bit DJB2 hash of s: h = h*33 + c over the raw
// bytes, starting from 5381.
func Hash(s string) uint64 {
	h := uint64(5381)
	for i := 0; i < len(s); i++ {
		h = uint64(s[i]) + 33*h
	}
	return h
}
