// Background value types.
package css

import "strings"

// BackgroundImage represents the background-image property: none or a URL.
type BackgroundImage struct {
	URL string
}

// None reports whether no image is set.
func (bi BackgroundImage) None() bool { return bi.URL == "" }

// ParseBackgroundImage parses a background-image value. Anything that is
// not url() notation resolves to none.
func ParseBackgroundImage(s string) BackgroundImage {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return BackgroundImage{}
	}
	if strings.HasPrefix(s, "url(") && strings.HasSuffix(s, ")") {
		url := strings.TrimSpace(s[4 : len(s)-1])
		if len(url) >= 2 && (url[0] == '"' && url[len(url)-1] == '"' || url[0] == '\'' && url[len(url)-1] == '\'') {
			url = url[1 : len(url)-1]
		}
		return BackgroundImage{URL: url}
	}
	return BackgroundImage{}
}
