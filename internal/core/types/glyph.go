package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Glyph - символ карты вместе с цветом, упакованные в 32 бита:
//
//	[0:8]  - символ (ASCII)
//	[8:32] - RGB-цвет 0xRRGGBB
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1
	maskColor = (1 << bitsColor) - 1
)

// MakeGlyph собирает Glyph. Лишние старшие биты цвета отбрасываются.
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// ParseGlyph разбирает запись вида "g #88CC44" из файла форм.
func ParseGlyph(s string) (Glyph, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 || len(fields[0]) != 1 {
		return 0, fmt.Errorf("glyph %q: want \"<char> #RRGGBB\"", s)
	}

	hex := strings.TrimPrefix(fields[1], "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("glyph %q: color must have 6 hex digits", s)
	}
	color, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("glyph %q: %w", s, err)
	}

	return MakeGlyph(uint32(color), fields[0][0]), nil
}

// Color возвращает цвет в формате 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// String реализует fmt.Stringer: "Glyph{char='A', color=#FFA500}".
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	// Непечатаемые символы показываем в hex
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}

	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}

// HexColor - цвет для клиента, например "#00FF00".
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}
