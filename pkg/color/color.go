package color

import (
	"os"

	"github.com/muesli/termenv"
)

// ANSI color indices understood by every termenv profile.
const (
	Red    = "1"
	Green  = "2"
	Yellow = "3"
	Cyan   = "6"
)

var profile = termenv.ANSI

func init() {
	if os.Getenv("NO_COLOR") != "" || !isTerminal() {
		profile = termenv.Ascii
	}
}

func isTerminal() bool {
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

func EnableColor(enable bool) {
	if enable {
		profile = termenv.ANSI
		return
	}
	profile = termenv.Ascii
}

func IsColorEnabled() bool {
	return profile != termenv.Ascii
}

// Colorize renders text in one of the palette colors, or returns it untouched
// when color is off.
func Colorize(color, text string) string {
	return profile.String(text).Foreground(profile.Color(color)).String()
}

func RedText(text string) string {
	return Colorize(Red, text)
}

func GreenText(text string) string {
	return Colorize(Green, text)
}

func YellowText(text string) string {
	return Colorize(Yellow, text)
}

func CyanText(text string) string {
	return Colorize(Cyan, text)
}

func BoldText(text string) string {
	return profile.String(text).Bold().String()
}

func Error(message string) string {
	if !IsColorEnabled() {
		return message
	}
	return RedText(message)
}

func Warning(message string) string {
	if !IsColorEnabled() {
		return message
	}
	return YellowText(message)
}
