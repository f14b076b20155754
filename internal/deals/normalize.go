package deals

import "strings"

// Three normalization forms live side by side here on purpose: matching,
// cache keying and seed lookup each use their own. Collapsing them changes
// observable behavior (which queries share a cache slot, which hit a seed),
// so the split is kept explicit instead of unified.

// Normalize lowercases s and strips every character that is not an ASCII
// letter or digit. Substring containment over this form is the sole
// matching primitive; there is no tokenization or fuzzy matching.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CacheKey is the result-cache key form: lowercased and trimmed, inner
// punctuation and spacing kept.
func CacheKey(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// SeedKey is the fallback-seed lookup form: lowercased with all whitespace
// removed, so "t shirt" still finds the "tshirt" seed entry.
func SeedKey(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), "")
}
