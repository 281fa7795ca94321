package charts

import "strings"

// artworkTokens maps the fixed-size image markers the provider embeds in
// artwork URLs to the highest resolution it serves. The table is ordered;
// the first matching low-resolution token wins.
var artworkTokens = []struct {
	low, high string
}{
	{"100x100bb", "600x600bb"},
	{"170x170bb", "600x600bb"},
	{"60x60bb", "600x600bb"},
	{"55x55bb", "600x600bb"},
}

// UpgradeArtwork rewrites the resolution token in an artwork URL to the
// highest known size. URLs without a recognized token pass through
// unchanged; nothing else about the URL is touched.
func UpgradeArtwork(u string) string {
	for _, t := range artworkTokens {
		if strings.Contains(u, t.low) {
			return strings.Replace(u, t.low, t.high, 1)
		}
	}
	return u
}
