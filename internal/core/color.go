package core

// Color is the foreground color of a screen cell. The zero value keeps the
// terminal's default color.
type Color uint8

// Palette used by the runner's renderer.
const (
	ColorDefault Color = iota
	ColorRed           // Low dragons, dying unicorn
	ColorGreen         // Ground
	ColorYellow        // Coins
	ColorCyan          // Status line
	ColorWhite         // Menu entries
	ColorBrightRed     // High dragons
	ColorBrightYellow  // Stars, overlays
	ColorBrightBlue    // Shields, shielded unicorn
	ColorBrightMagenta // Unicorn, magnets, title
	ColorBrightCyan    // Crystals
	ColorBrightWhite   // HUD
	ColorOrange        // Speed bar
	ColorGray          // Rocks, hints
)

// ansi256 holds the xterm 256-color code of each palette entry.
var ansi256 = [...]string{
	ColorDefault:       "",
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// Palette lists every color in declaration order.
func Palette() []Color {
	out := make([]Color, len(ansi256))
	for i := range ansi256 {
		out[i] = Color(i)
	}
	return out
}

// ANSI returns the 256-color code, or "" for the default color and unknown
// values.
func (c Color) ANSI() string {
	if int(c) >= len(ansi256) {
		return ""
	}
	return ansi256[c]
}
