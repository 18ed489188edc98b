package mdwriter

// Theme defines semantic color mappings for terminal previews using ANSI
// color indices (0-15). The user's terminal theme determines the actual RGB
// values. A negative index disables the color.
type Theme struct {
	Accent int // Headings, links
	Marker int // List markers
	Code   int // Inline and block code
	Quote  int // Block quote bar
	Muted  int // URLs, rules, table borders, status bar
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Accent: 5,
		Marker: 4,
		Code:   3,
		Quote:  2,
		Muted:  8,
	}
}

// PlainTheme returns a theme with every color disabled.
func PlainTheme() Theme {
	return Theme{Accent: -1, Marker: -1, Code: -1, Quote: -1, Muted: -1}
}
