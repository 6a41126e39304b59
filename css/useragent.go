// The built-in user agent stylesheet.
// Based on the HTML5 specification default styles.
package css

import "sync"

// userAgentCSS contains the default browser styles applied before any
// author stylesheet.
var userAgentCSS = `
/* Block elements */
html, body, div, section, article, aside, header, footer,
nav, main, blockquote, ul, ol, li, dl, dt, dd, form, fieldset, table {
	display: block;
}

/* Inline elements */
span, a, em, strong, code, b, i, u, small, sub, sup, button {
	display: inline;
}

/* Headings */
h1 {
	display: block;
	font-size: 32px;
	font-weight: bold;
	margin-top: 0.67em;
	margin-bottom: 0.67em;
}

h2 {
	display: block;
	font-size: 24px;
	font-weight: bold;
	margin-top: 0.67em;
	margin-bottom: 0.67em;
}

h3 {
	display: block;
	font-size: 18.72px;
	font-weight: bold;
	margin-top: 0.67em;
	margin-bottom: 0.67em;
}

h4 {
	display: block;
	font-size: 16px;
	font-weight: bold;
	margin-top: 0.67em;
	margin-bottom: 0.67em;
}

h5 {
	display: block;
	font-size: 13.28px;
	font-weight: bold;
	margin-top: 0.67em;
	margin-bottom: 0.67em;
}

h6 {
	display: block;
	font-size: 10.72px;
	font-weight: bold;
	margin-top: 0.67em;
	margin-bottom: 0.67em;
}

/* Paragraphs */
p {
	display: block;
	margin-top: 1em;
	margin-bottom: 1em;
}

/* Links */
a {
	color: blue;
}

/* Body defaults. Font size is inherited from the root so a configured
   document default is not clobbered here. */
body {
	font-family: Arial;
	color: black;
	background-color: white;
	margin: 8px;
}
`

var (
	userAgentOnce  sync.Once
	userAgentSheet *Stylesheet
)

// UserAgentStylesheet returns the parsed user agent stylesheet. The sheet
// is parsed once and shared; callers must not mutate it.
func UserAgentStylesheet() *Stylesheet {
	userAgentOnce.Do(func() {
		userAgentSheet = Parse(userAgentCSS)
	})
	return userAgentSheet
}
