package data

// AnimationData is the sprite sheet geometry of a crew race or weapon
type AnimationData struct {
	Sheet           string          `json:"sheet"`
	AnimSheetPath   string          `json:"animSheetPath"`
	AnimSheetWidth  int             `json:"animSheetWidth"`
	AnimSheetHeight int             `json:"animSheetHeight"`
	FrameWidth      int             `json:"frameWidth"`
	FrameHeight     int             `json:"frameHeight"`
	Animations      map[string]Clip `json:"animations"`

	// Weapon sheets only: the static fire frame, as a tile offset.
	FireFrame Stat `json:"fireFrame"`
	X         int  `json:"x"`
	Y         int  `json:"y"`
}

// Rows is the number of tile rows in the sheet.
func (a *AnimationData) Rows() int {
	if a.FrameHeight <= 0 {
		return 0
	}
	return a.AnimSheetHeight / a.FrameHeight
}

// Clip is a named frame sequence on a sprite sheet. X and Y are tile
// offsets; Y counts rows from the bottom of the sheet.
type Clip struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Time   Stat   `json:"time"`
}

// Fallback sheet geometry for crew races exported without animation data.
const (
	fallbackSheetWidth  = 315
	fallbackSheetHeight = 455
	fallbackFrameSize   = 35
)

// FallbackCrewAnimation synthesizes the standard walk cycle layout for a
// crew race from its name alone.
func FallbackCrewAnimation(name string) *AnimationData {
	clip := func(dir string, x, y int) Clip {
		return Clip{Name: name + "_" + dir, Length: 4, X: x, Y: y, Time: NewStat(1)}
	}
	anims := map[string]Clip{}
	for _, c := range []Clip{
		clip("walk_down", 0, 12),
		clip("walk_right", 4, 12),
		clip("walk_up", 0, 11),
		clip("walk_left", 4, 11),
	} {
		anims[c.Name] = c
	}
	return &AnimationData{
		Sheet:           name,
		AnimSheetPath:   "people/" + name + "_base.png",
		AnimSheetWidth:  fallbackSheetWidth,
		AnimSheetHeight: fallbackSheetHeight,
		FrameWidth:      fallbackFrameSize,
		FrameHeight:     fallbackFrameSize,
		Animations:      anims,
	}
}
