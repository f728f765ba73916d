package css

import (
	"fmt"
	"math"
)

// Color is a straight (non-premultiplied) sRGBA color with 8 bits per
// channel, the currency type every paint operation in pkg/raster consumes.
type Color struct {
	R, G, B, A uint8
}

// Transparent is the zero-alpha, zero-channel default color.
func Transparent() Color { return Color{} }

// ParseColor parses a single color value: #hex (3/4/6/8 digit), rgb()/rgba(),
// hsl()/hsla(), a CSS named color, or "transparent"/"currentcolor".
// currentColor resolves to true in the second return so the cascade can
// substitute the inherited text color (spec.md §4.1).
func ParseColor(value string) (c Color, isCurrentColor bool, err error) {
	t := NewTokenizer(value)
	tok, err := t.Next()
	if err != nil {
		return Color{}, false, err
	}

	switch tok.Kind {
	case TokenHash:
		col, err := parseHexColor(tok.Text, value, tok.Pos)
		return col, false, err
	case TokenIdent:
		lower := tok.Text
		if lower == "transparent" {
			return Transparent(), false, nil
		}
		if lower == "currentcolor" || lower == "currentColor" {
			return Color{}, true, nil
		}
		if named, ok := namedColors[lower]; ok {
			return named, false, nil
		}
		return Color{}, false, &ParseError{Pos: tok.Pos, Token: value, Msg: fmt.Sprintf("unknown color keyword %q", tok.Text)}
	case TokenFunction:
		return parseColorFunction(tok.Text, t, value, tok.Pos)
	default:
		return Color{}, false, &ParseError{Pos: tok.Pos, Token: value, Msg: "expected a color"}
	}
}

func parseHexColor(hash, raw string, pos int) (Color, error) {
	hex := hash[1:]
	expand := func(c byte) byte { return c<<4 | c }
	hexDigit := func(c byte) (byte, bool) {
		switch {
		case c >= '0' && c <= '9':
			return c - '0', true
		case c >= 'a' && c <= 'f':
			return c - 'a' + 10, true
		case c >= 'A' && c <= 'F':
			return c - 'A' + 10, true
		}
		return 0, false
	}
	nibble := func(i int) (byte, bool) { return hexDigit(hex[i]) }

	switch len(hex) {
	case 3, 4:
		r1, ok1 := nibble(0)
		g1, ok2 := nibble(1)
		b1, ok3 := nibble(2)
		if !ok1 || !ok2 || !ok3 {
			return Color{}, &ParseError{Pos: pos, Token: raw, Msg: "invalid hex color"}
		}
		a := byte(0xF)
		if len(hex) == 4 {
			var ok4 bool
			a, ok4 = nibble(3)
			if !ok4 {
				return Color{}, &ParseError{Pos: pos, Token: raw, Msg: "invalid hex color"}
			}
		}
		return Color{R: expand(r1), G: expand(g1), B: expand(b1), A: expand(a)}, nil
	case 6, 8:
		byteAt := func(i int) (byte, bool) {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			return hi<<4 | lo, ok1 && ok2
		}
		r, ok1 := byteAt(0)
		g, ok2 := byteAt(2)
		b, ok3 := byteAt(4)
		if !ok1 || !ok2 || !ok3 {
			return Color{}, &ParseError{Pos: pos, Token: raw, Msg: "invalid hex color"}
		}
		a := byte(0xFF)
		if len(hex) == 8 {
			var ok4 bool
			a, ok4 = byteAt(6)
			if !ok4 {
				return Color{}, &ParseError{Pos: pos, Token: raw, Msg: "invalid hex color"}
			}
		}
		return Color{R: r, G: g, B: b, A: a}, nil
	default:
		return Color{}, &ParseError{Pos: pos, Token: raw, Msg: fmt.Sprintf("invalid hex color length %d", len(hex))}
	}
}

func parseColorFunction(name string, t *Tokenizer, raw string, pos int) (Color, bool, error) {
	var nums []float64
	var isPercent []bool
	for {
		tok, err := t.Next()
		if err != nil {
			return Color{}, false, err
		}
		switch tok.Kind {
		case TokenRParen, TokenEOF:
			goto done
		case TokenComma, TokenSlash:
			continue
		case TokenNumber:
			nums = append(nums, tok.Num)
			isPercent = append(isPercent, false)
		case TokenPercentage:
			nums = append(nums, tok.Num)
			isPercent = append(isPercent, true)
		default:
			return Color{}, false, &ParseError{Pos: tok.Pos, Token: raw, Msg: "unexpected token in color function"}
		}
	}
done:
	switch name {
	case "rgb", "rgba":
		if len(nums) < 3 {
			return Color{}, false, &ParseError{Pos: pos, Token: raw, Msg: "rgb() requires 3 channels"}
		}
		chan256 := func(i int) uint8 {
			v := nums[i]
			if isPercent[i] {
				v = v / 100.0 * 255.0
			}
			return clampByte(v)
		}
		a := uint8(255)
		if len(nums) >= 4 {
			av := nums[3]
			if isPercent[3] {
				av = av / 100.0
			}
			a = clampByte(av * 255.0)
		}
		return Color{R: chan256(0), G: chan256(1), B: chan256(2), A: a}, false, nil
	case "hsl", "hsla":
		if len(nums) < 3 {
			return Color{}, false, &ParseError{Pos: pos, Token: raw, Msg: "hsl() requires 3 channels"}
		}
		h := math.Mod(nums[0], 360)
		if h < 0 {
			h += 360
		}
		s := clamp01(nums[1] / 100.0)
		l := clamp01(nums[2] / 100.0)
		r, g, b := hslToRGB(h, s, l)
		a := uint8(255)
		if len(nums) >= 4 {
			av := nums[3]
			if isPercent[3] {
				av = av / 100.0
			}
			a = clampByte(av * 255.0)
		}
		return Color{R: r, G: g, B: b, A: a}, false, nil
	default:
		return Color{}, false, &ParseError{Pos: pos, Token: raw, Msg: fmt.Sprintf("unknown color function %q", name)}
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	if s == 0 {
		g := clampByte(l * 255)
		return g, g, g
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360.0
	r := hueToRGB(p, q, hk+1.0/3.0)
	g := hueToRGB(p, q, hk)
	b := hueToRGB(p, q, hk-1.0/3.0)
	return clampByte(r * 255), clampByte(g * 255), clampByte(b * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// namedColors covers the CSS named-color keywords used across the example
// scenarios and the common web palette; it is not the full CSS Color Module
// list but can grow without touching callers.
var namedColors = map[string]Color{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"orange":  {255, 165, 0, 255},
	"purple":  {128, 0, 128, 255},
	"pink":    {255, 192, 203, 255},
	"brown":   {165, 42, 42, 255},
	"navy":    {0, 0, 128, 255},
	"teal":    {0, 128, 128, 255},
	"silver":  {192, 192, 192, 255},
	"gold":    {255, 215, 0, 255},
	"indigo":  {75, 0, 130, 255},
	"violet":  {238, 130, 238, 255},
	"maroon":  {128, 0, 0, 255},
	"olive":   {128, 128, 0, 255},
	"lime":    {0, 255, 0, 255},
	"coral":   {255, 127, 80, 255},
	"crimson": {220, 20, 60, 255},
	"khaki":   {240, 230, 140, 255},
	"salmon":  {250, 128, 114, 255},
	"beige":   {245, 245, 220, 255},
	"azure":   {240, 255, 255, 255},
	"ivory":   {255, 255, 240, 255},
	"tan":     {210, 180, 140, 255},
	"plum":    {221, 160, 221, 255},
	"orchid":  {218, 112, 214, 255},
	"skyblue": {135, 206, 235, 255},
}
