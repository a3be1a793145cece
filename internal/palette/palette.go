// Package palette holds the shared aesthetic constants for electronics
// animations. Colours live in one place so every scene keeps a consistent
// look: dark navy background, light foreground, cyan/purple accents, and an
// amber warning colour for gotchas.
package palette

const (
	BG      = "#0B0F1A" // dark navy background
	FG      = "#E6EAF2" // light foreground for text and strokes
	Accent1 = "#6EE7FF" // cyan
	Accent2 = "#A78BFA" // purple
	Warn    = "#FBBF24" // amber
)

// StrokeWidth is the default stroke width for circuit drawings, in SVG units.
const StrokeWidth = 3
