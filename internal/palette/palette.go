package palette

import (
	"strings"
)

// RGBA is an 8-bit-per-channel color. Kept free of raylib so config and tests don't need a GL context.
type RGBA struct {
	R, G, B, A uint8
}

// named is the subset of CSS color keywords a scene file is likely to use.
var named = map[string]RGBA{
	"black":     {0, 0, 0, 255},
	"white":     {255, 255, 255, 255},
	"red":       {255, 0, 0, 255},
	"green":     {0, 128, 0, 255},
	"lime":      {0, 255, 0, 255},
	"blue":      {0, 0, 255, 255},
	"yellow":    {255, 255, 0, 255},
	"orange":    {255, 165, 0, 255},
	"hotpink":   {255, 105, 180, 255},
	"pink":      {255, 192, 203, 255},
	"purple":    {128, 0, 128, 255},
	"violet":    {238, 130, 238, 255},
	"gold":      {255, 215, 0, 255},
	"gray":      {128, 128, 128, 255},
	"grey":      {128, 128, 128, 255},
	"lightgray": {211, 211, 211, 255},
	"darkgray":  {169, 169, 169, 255},
	"skyblue":   {135, 206, 235, 255},
	"teal":      {0, 128, 128, 255},
	"cyan":      {0, 255, 255, 255},
	"magenta":   {255, 0, 255, 255},
	"brown":     {165, 42, 42, 255},
	"tomato":    {255, 99, 71, 255},
	"coral":     {255, 127, 80, 255},
}

// Parse resolves a CSS color keyword (case-insensitive) or #RGB / #RRGGBB hex into RGBA.
// Returns false for anything else.
func Parse(s string) (RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, true
	}
	return parseHex(s)
}

// MustParse is Parse for colors known at compile time.
func MustParse(s string) RGBA {
	c, ok := Parse(s)
	if !ok {
		panic("palette: unknown color " + s)
	}
	return c
}

func parseHex(s string) (RGBA, bool) {
	if len(s) < 4 || s[0] != '#' {
		return RGBA{}, false
	}
	hex := s[1:]
	for i := 0; i < len(hex); i++ {
		if _, ok := hexByte(hex[i]); !ok {
			return RGBA{}, false
		}
	}
	nib := func(i int) uint8 {
		v, _ := hexByte(hex[i])
		return v
	}
	switch len(hex) {
	case 3:
		// #RGB -> RR GG BB
		return RGBA{nib(0) * 17, nib(1) * 17, nib(2) * 17, 255}, true
	case 6:
		return RGBA{nib(0)<<4 + nib(1), nib(2)<<4 + nib(3), nib(4)<<4 + nib(5), 255}, true
	}
	return RGBA{}, false
}

func hexByte(c byte) (uint8, bool) {
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
