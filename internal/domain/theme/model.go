package theme

import "strings"

// Theme define el tema visual.
// @Enum light, dark
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey es la key del tema en el kv.Store, independiente de "pets".
const StorageKey = "theme"

// Parse acepta solo light/dark.
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	default:
		return "", false
	}
}

func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// OSHint es la preferencia del sistema operativo, si el cliente la informa.
type OSHint struct {
	Theme Theme
	Known bool
}

// HintFromHeader interpreta el client hint Sec-CH-Prefers-Color-Scheme.
func HintFromHeader(v string) OSHint {
	v = strings.Trim(strings.TrimSpace(v), `"`)
	if t, ok := Parse(v); ok {
		return OSHint{Theme: t, Known: true}
	}
	return OSHint{}
}
