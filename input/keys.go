package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

var ErrUnknownKey = errors.New("input: unknown key")

var keyNames = map[string]ebiten.Key{
	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.KeyDigit0, "1": ebiten.KeyDigit1, "2": ebiten.KeyDigit2,
	"3": ebiten.KeyDigit3, "4": ebiten.KeyDigit4, "5": ebiten.KeyDigit5,
	"6": ebiten.KeyDigit6, "7": ebiten.KeyDigit7, "8": ebiten.KeyDigit8,
	"9": ebiten.KeyDigit9,

	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,

	"space":        ebiten.KeySpace,
	"shift":        ebiten.KeyShiftLeft,
	"shiftleft":    ebiten.KeyShiftLeft,
	"shiftright":   ebiten.KeyShiftRight,
	"control":      ebiten.KeyControlLeft,
	"controlleft":  ebiten.KeyControlLeft,
	"controlright": ebiten.KeyControlRight,
	"alt":          ebiten.KeyAltLeft,
	"altleft":      ebiten.KeyAltLeft,
	"altright":     ebiten.KeyAltRight,
	"escape":       ebiten.KeyEscape,
	"tab":          ebiten.KeyTab,
	"enter":        ebiten.KeyEnter,
	"backspace":    ebiten.KeyBackspace,

	"f1": ebiten.KeyF1, "f2": ebiten.KeyF2, "f3": ebiten.KeyF3, "f4": ebiten.KeyF4,
	"f5": ebiten.KeyF5, "f6": ebiten.KeyF6, "f7": ebiten.KeyF7, "f8": ebiten.KeyF8,
	"f9": ebiten.KeyF9, "f10": ebiten.KeyF10, "f11": ebiten.KeyF11, "f12": ebiten.KeyF12,
}

// ParseKey resolves a key name such as "W", "KeyW", "ArrowUp" or "space".
func ParseKey(name string) (ebiten.Key, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "key")
	s = strings.TrimPrefix(s, "arrow")
	s = strings.TrimPrefix(s, "digit")
	if k, ok := keyNames[s]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKey, name)
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		k, err := ParseKey(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
