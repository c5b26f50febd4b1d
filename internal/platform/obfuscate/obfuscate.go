// Package obfuscate implements the reversible XOR transform applied to
// stored passwords. It is not a cryptographic hash and must never be treated
// as one: the legacy data file format depends on this exact byte-level
// transform, so it is preserved as-is behind a clearly non-cryptographic name.
package obfuscate

const key = 0x55

// Apply XORs every byte of s with the fixed key. The transform is
// involutive: applying it twice returns the original string.
func Apply(s string) string {
	out := []byte(s)
	for i := range out {
		out[i] ^= key
	}
	return string(out)
}

// Verify reports whether plain obfuscates to stored.
func Verify(plain, stored string) bool {
	return Apply(plain) == stored
}
