package components

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

// SixelRegion represents a screen region that contains sixel graphics
type SixelRegion struct {
	X, Y                int    // Screen coordinates
	Width, Height       int    // Current region dimensions in cells
	MaxWidth, MaxHeight int    // Maximum dimensions ever used (for clearing)
	SixelData           string // The sixel sequence
	Visible             bool   // Whether to render this region
}

// SixelLayer manages direct terminal sixel rendering outside of tview.
// Render runs after every tview draw, so regions survive screen redraws.
type SixelLayer struct {
	regions map[string]*SixelRegion
	mutex   sync.RWMutex
	out     io.Writer
	tty     *os.File
}

// NewSixelLayer creates a new sixel rendering layer writing to /dev/tty,
// or stdout when there is no controlling terminal.
func NewSixelLayer() *SixelLayer {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return NewSixelLayerWriter(os.Stdout)
	}
	sl := NewSixelLayerWriter(tty)
	sl.tty = tty
	return sl
}

// NewSixelLayerWriter creates a layer that writes its escape sequences to w.
func NewSixelLayerWriter(w io.Writer) *SixelLayer {
	return &SixelLayer{
		regions: make(map[string]*SixelRegion),
		out:     w,
	}
}

// AddRegion adds or updates a sixel region
func (sl *SixelLayer) AddRegion(id string, region *SixelRegion) {
	sl.mutex.Lock()
	defer sl.mutex.Unlock()

	existing, exists := sl.regions[id]
	if !exists {
		region.MaxWidth = region.Width
		region.MaxHeight = region.Height
		sl.regions[id] = region
		return
	}

	moved := existing.X != region.X || existing.Y != region.Y
	if moved || region.Width < existing.Width || region.Height < existing.Height {
		sl.clearRegionArea(existing)
	}
	if region.Width > existing.MaxWidth {
		existing.MaxWidth = region.Width
	}
	if region.Height > existing.MaxHeight {
		existing.MaxHeight = region.Height
	}
	existing.X = region.X
	existing.Y = region.Y
	existing.Width = region.Width
	existing.Height = region.Height
	existing.Visible = region.Visible
	if region.SixelData != "" {
		existing.SixelData = region.SixelData
	}
}

// Place moves a region to the given cell rectangle, keeping its data.
// Unknown ids create an empty, visible region.
func (sl *SixelLayer) Place(id string, x, y, width, height int) {
	sl.AddRegion(id, &SixelRegion{X: x, Y: y, Width: width, Height: height, Visible: true})
}

// RemoveRegion clears a region from the terminal and forgets it
func (sl *SixelLayer) RemoveRegion(id string) {
	sl.mutex.Lock()
	defer sl.mutex.Unlock()
	if region, exists := sl.regions[id]; exists {
		sl.clearRegionArea(region)
		delete(sl.regions, id)
	}
}

// UpdateRegion updates an existing region's sixel data
func (sl *SixelLayer) UpdateRegion(id string, sixelData string) {
	sl.mutex.Lock()
	defer sl.mutex.Unlock()
	if region, exists := sl.regions[id]; exists {
		region.SixelData = sixelData
	}
}

// SetRegionVisible sets the visibility of a region
func (sl *SixelLayer) SetRegionVisible(id string, visible bool) {
	sl.mutex.Lock()
	defer sl.mutex.Unlock()
	if region, exists := sl.regions[id]; exists {
		if !visible && region.Visible {
			sl.clearRegionArea(region)
		}
		region.Visible = visible
	}
}

// Region returns a copy of the region, for inspection.
func (sl *SixelLayer) Region(id string) (SixelRegion, bool) {
	sl.mutex.RLock()
	defer sl.mutex.RUnlock()
	r, ok := sl.regions[id]
	if !ok {
		return SixelRegion{}, false
	}
	return *r, true
}

// Render renders all visible sixel regions to the terminal, in id order
func (sl *SixelLayer) Render() {
	sl.mutex.RLock()
	defer sl.mutex.RUnlock()

	ids := make([]string, 0, len(sl.regions))
	for id := range sl.regions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		region := sl.regions[id]
		if region.Visible && region.SixelData != "" {
			// Save cursor, position, draw, restore
			fmt.Fprintf(&b, "\x1b7\x1b[%d;%dH%s\x1b8", region.Y+1, region.X+1, region.SixelData)
		}
	}
	if b.Len() > 0 {
		io.WriteString(sl.out, b.String())
	}
}

// Clear clears all regions
func (sl *SixelLayer) Clear() {
	sl.mutex.Lock()
	defer sl.mutex.Unlock()
	for _, region := range sl.regions {
		sl.clearRegionArea(region)
	}
	sl.regions = make(map[string]*SixelRegion)
}

// clearRegionArea blanks the largest area the region ever covered.
// Sixel output can bleed a cell past its region, so one cell of padding
// is cleared around it.
func (sl *SixelLayer) clearRegionArea(region *SixelRegion) {
	clearWidth := region.MaxWidth
	clearHeight := region.MaxHeight
	if clearWidth == 0 {
		clearWidth = region.Width
	}
	if clearHeight == 0 {
		clearHeight = region.Height
	}
	if clearWidth <= 0 || clearHeight <= 0 {
		return
	}
	clearWidth += 2
	clearHeight += 2

	startX := region.X
	startY := region.Y
	if startX > 0 {
		startX--
	}
	if startY > 0 {
		startY--
	}

	var b strings.Builder
	b.WriteString("\x1b7")
	blank := strings.Repeat(" ", clearWidth)
	for row := 0; row < clearHeight; row++ {
		fmt.Fprintf(&b, "\x1b[%d;%dH%s", startY+row+1, startX+1, blank)
	}
	b.WriteString("\x1b8")
	io.WriteString(sl.out, b.String())
}

// Close closes the TTY handle
func (sl *SixelLayer) Close() {
	if sl.tty != nil {
		sl.tty.Close()
		sl.tty = nil
	}
}
