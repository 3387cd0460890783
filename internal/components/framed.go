package components

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// BorderStyle defines predefined border character sets for framed views
type BorderStyle int

const (
	BorderStyleSingle  BorderStyle = iota // Single-line box drawing characters
	BorderStyleDouble                     // Double-line box drawing characters
	BorderStyleHeavy                      // Heavy/thick box drawing characters
	BorderStyleRounded                    // Rounded corner characters
)

// BorderChars defines the characters used for drawing borders
type BorderChars struct {
	Normal BorderStyle // Style for normal state
	Focus  BorderStyle // Style for focused state
}

// NewBorderChars creates BorderChars with normal and focus styles
func NewBorderChars(normal, focus BorderStyle) *BorderChars {
	return &BorderChars{
		Normal: normal,
		Focus:  focus,
	}
}

// NewSimpleBorderChars creates BorderChars with the same style for normal and focus
func NewSimpleBorderChars(style BorderStyle) *BorderChars {
	return NewBorderChars(style, style)
}

// getRunes returns the actual rune characters for a given style
func getRunes(style BorderStyle) (horizontal, vertical, topLeft, topRight, bottomLeft, bottomRight rune) {
	switch style {
	case BorderStyleSingle:
		return '─', '│', '┌', '┐', '└', '┘'
	case BorderStyleDouble:
		return '═', '║', '╔', '╗', '╚', '╝'
	case BorderStyleHeavy:
		return '━', '┃', '┏', '┓', '┗', '┛'
	case BorderStyleRounded:
		return '─', '│', '╭', '╮', '╰', '╯'
	default:
		return '─', '│', '┌', '┐', '└', '┘'
	}
}

// ToTviewBorders converts our BorderChars to tview's global Borders struct type
func (bc *BorderChars) ToTviewBorders() struct {
	Horizontal       rune
	Vertical         rune
	TopLeft          rune
	TopRight         rune
	BottomLeft       rune
	BottomRight      rune
	LeftT            rune
	RightT           rune
	TopT             rune
	BottomT          rune
	Cross            rune
	HorizontalFocus  rune
	VerticalFocus    rune
	TopLeftFocus     rune
	TopRightFocus    rune
	BottomLeftFocus  rune
	BottomRightFocus rune
} {
	// Get runes for normal state
	normalH, normalV, normalTL, normalTR, normalBL, normalBR := getRunes(bc.Normal)
	// Get runes for focus state
	focusH, focusV, focusTL, focusTR, focusBL, focusBR := getRunes(bc.Focus)

	return struct {
		Horizontal       rune
		Vertical         rune
		TopLeft          rune
		TopRight         rune
		BottomLeft       rune
		BottomRight      rune
		LeftT            rune
		RightT           rune
		TopT             rune
		BottomT          rune
		Cross            rune
		HorizontalFocus  rune
		VerticalFocus    rune
		TopLeftFocus     rune
		TopRightFocus    rune
		BottomLeftFocus  rune
		BottomRightFocus rune
	}{
		Horizontal:  normalH,
		Vertical:    normalV,
		TopLeft:     normalTL,
		TopRight:    normalTR,
		BottomLeft:  normalBL,
		BottomRight: normalBR,
		// Use standard junction characters for T-joints and cross
		LeftT:            '├',
		RightT:           '┤',
		TopT:             '┬',
		BottomT:          '┴',
		Cross:            '┼',
		HorizontalFocus:  focusH,
		VerticalFocus:    focusV,
		TopLeftFocus:     focusTL,
		TopRightFocus:    focusTR,
		BottomLeftFocus:  focusBL,
		BottomRightFocus: focusBR,
	}
}

// Framed draws a primitive with its own border characters. The wrapped
// primitive keeps its focus and input handling.
type Framed struct {
	tview.Primitive
	borderChars *BorderChars
}

// NewFramed wraps p; a nil borderChars uses tview's defaults.
func NewFramed(p tview.Primitive, borderChars *BorderChars) *Framed {
	return &Framed{Primitive: p, borderChars: borderChars}
}

// SetBorderChars updates the border characters for this view
func (f *Framed) SetBorderChars(borderChars *BorderChars) *Framed {
	f.borderChars = borderChars
	return f
}

// Draw swaps tview's global Borders for the duration of the wrapped Draw
// and restores them afterwards. Drawing happens on the event goroutine
// only, so the swap is not observed by other primitives.
func (f *Framed) Draw(screen tcell.Screen) {
	if f.borderChars == nil {
		f.Primitive.Draw(screen)
		return
	}
	originalBorders := tview.Borders
	tview.Borders = f.borderChars.ToTviewBorders()
	f.Primitive.Draw(screen)
	tview.Borders = originalBorders
}
