package components

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ftlview/internal/theme"
)

// SpriteView reserves screen space for a sixel image. The image itself is
// written by the SixelLayer after tview has drawn; the view only tells
// the layer where it currently is and shows fallback text when there is
// no layer or no image.
type SpriteView struct {
	*tview.Box
	id           string
	layer        *SixelLayer
	fallbackText string
	hidden       bool
}

// NewSpriteView creates a view bound to region id of layer. layer may be
// nil, in which case only the fallback text is drawn.
func NewSpriteView(id string, layer *SixelLayer) *SpriteView {
	sv := &SpriteView{
		Box:   tview.NewBox(),
		id:    id,
		layer: layer,
	}

	panelColors := theme.Current().PanelColors()
	sv.SetBackgroundColor(panelColors.Background)
	sv.SetBorderColor(panelColors.Border)
	sv.SetTitleColor(panelColors.Title)
	return sv
}

// ID is the sixel region id
func (sv *SpriteView) ID() string {
	return sv.id
}

// SetFallbackText sets the text drawn when no image is shown
func (sv *SpriteView) SetFallbackText(text string) *SpriteView {
	sv.fallbackText = text
	return sv
}

// SetFrame replaces the image data of the region
func (sv *SpriteView) SetFrame(sixelData string) {
	if sv.layer == nil {
		return
	}
	sv.hidden = false
	if _, ok := sv.layer.Region(sv.id); !ok {
		sv.layer.AddRegion(sv.id, &SixelRegion{SixelData: sixelData, Visible: true})
		return
	}
	sv.layer.UpdateRegion(sv.id, sixelData)
}

// Hide removes the image from the terminal
func (sv *SpriteView) Hide() {
	sv.hidden = true
	if sv.layer != nil {
		sv.layer.RemoveRegion(sv.id)
	}
}

// HasImage reports whether the layer holds image data for this view
func (sv *SpriteView) HasImage() bool {
	if sv.layer == nil {
		return false
	}
	r, ok := sv.layer.Region(sv.id)
	return ok && r.SixelData != ""
}

// Draw draws the box and moves the sixel region to the inner area
func (sv *SpriteView) Draw(screen tcell.Screen) {
	sv.Box.DrawForSubclass(screen, sv)

	x, y, width, height := sv.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	if sv.layer != nil && !sv.hidden {
		sv.layer.Place(sv.id, x, y, width, height)
		if sv.HasImage() {
			return
		}
	}

	if sv.fallbackText == "" {
		return
	}
	style := tcell.StyleDefault.
		Foreground(theme.Current().DefaultColors().Muted).
		Background(theme.Current().PanelColors().Background)
	for i, line := range strings.Split(sv.fallbackText, "\n") {
		if i >= height {
			break
		}
		lineWidth := len([]rune(line))
		startX := x + (width-lineWidth)/2
		if startX < x {
			startX = x
		}
		for j, char := range []rune(line) {
			if startX+j >= x+width {
				break
			}
			screen.SetContent(startX+j, y+i, char, nil, style)
		}
	}
}
