// Package anim computes sprite sheet frames and steps walk cycles.
package anim

import (
	"image"
	"sort"
	"strings"
	"time"

	"ftlview/internal/data"
)

// Kind of animation. At most one stepper per kind runs at a time.
type Kind int

const (
	KindCrew Kind = iota
	KindWeapon
	KindDrone
)

func (k Kind) String() string {
	switch k {
	case KindCrew:
		return "crew"
	case KindWeapon:
		return "weapon"
	case KindDrone:
		return "drone"
	}
	return "unknown"
}

// Kinds lists every animation kind.
var Kinds = []Kind{KindCrew, KindWeapon, KindDrone}

// BaseFrameInterval is the frame time of a clip with time multiplier 1.
const BaseFrameInterval = 150 * time.Millisecond

// WalkMarker selects the clip previewed for crew and crew drones.
const WalkMarker = "walk_down"

// Drawing surfaces in pixels.
var (
	CrewCanvas   = image.Pt(105, 105)
	WeaponCanvas = image.Pt(200, 200)
)

// WalkDownClip returns the first clip, by key order, whose key contains
// "walk_down".
func WalkDownClip(ad *data.AnimationData) (data.Clip, bool) {
	if ad == nil {
		return data.Clip{}, false
	}
	keys := make([]string, 0, len(ad.Animations))
	for k := range ad.Animations {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if strings.Contains(k, WalkMarker) {
			return ad.Animations[k], true
		}
	}
	return data.Clip{}, false
}

// FallbackCrewAnimation is the synthesized walk cycle for a crew race
// without animation data.
func FallbackCrewAnimation(name string) *data.AnimationData {
	return data.FallbackCrewAnimation(name)
}

// FrameInterval is 150ms divided by the clip's speed multiplier. A
// missing or zero multiplier counts as 1.
func FrameInterval(clip data.Clip) time.Duration {
	speed, ok := clip.Time.Get()
	if !ok || speed <= 0 {
		speed = 1
	}
	return time.Duration(float64(BaseFrameInterval) / speed)
}

// SourceRect is the sheet rectangle of frame. Clip rows count from the
// bottom of the sheet.
func SourceRect(ad *data.AnimationData, clip data.Clip, frame int) image.Rectangle {
	fw, fh := ad.FrameWidth, ad.FrameHeight
	x := (clip.X + frame) * fw
	y := (ad.Rows() - 1 - clip.Y) * fh
	return image.Rect(x, y, x+fw, y+fh)
}

// FireFrameRect is the weapon's static frame. Weapon sheets are not
// row-inverted. ok is false when the sheet has no fire frame.
func FireFrameRect(ad *data.AnimationData) (image.Rectangle, bool) {
	if ad == nil || !ad.FireFrame.Truthy() {
		return image.Rectangle{}, false
	}
	fw, fh := ad.FrameWidth, ad.FrameHeight
	x, y := ad.X*fw, ad.Y*fh
	return image.Rect(x, y, x+fw, y+fh), true
}

// RotatedDest is where a fw×fh tile lands on canvas after a 90° clockwise
// rotation: scaled to fit, aspect kept, centred.
func RotatedDest(canvas image.Point, fw, fh int) image.Rectangle {
	if fw <= 0 || fh <= 0 {
		return image.Rectangle{}
	}
	scale := min(float64(canvas.X)/float64(fh), float64(canvas.Y)/float64(fw))
	w := int(float64(fh) * scale)
	h := int(float64(fw) * scale)
	x := (canvas.X - w) / 2
	y := (canvas.Y - h) / 2
	return image.Rect(x, y, x+w, y+h)
}

// Plan is everything needed to run one preview.
type Plan struct {
	Kind   Kind
	Data   *data.AnimationData
	Clip   data.Clip
	Canvas image.Point
	// Static plans draw frame 0 once and never tick.
	Static bool
}

// Length is the number of frames, never less than 1.
func (p Plan) Length() int {
	if p.Static || p.Clip.Length < 1 {
		return 1
	}
	return p.Clip.Length
}

// Interval between frames.
func (p Plan) Interval() time.Duration {
	return FrameInterval(p.Clip)
}

// Rect is the sheet rectangle for frame.
func (p Plan) Rect(frame int) image.Rectangle {
	if p.Kind == KindWeapon {
		r, _ := FireFrameRect(p.Data)
		return r
	}
	return SourceRect(p.Data, p.Clip, frame)
}

// SheetPath is the sprite sheet below the image root.
func (p Plan) SheetPath() string {
	return "img/" + p.Data.AnimSheetPath
}

// WalkPlan plans a crew or crew-drone walk cycle. ok is false when the
// data has no walk_down clip.
func WalkPlan(kind Kind, ad *data.AnimationData) (Plan, bool) {
	clip, ok := WalkDownClip(ad)
	if !ok {
		return Plan{}, false
	}
	return Plan{Kind: kind, Data: ad, Clip: clip, Canvas: CrewCanvas}, true
}

// WeaponPlan plans the static weapon frame.
func WeaponPlan(ad *data.AnimationData) (Plan, bool) {
	if _, ok := FireFrameRect(ad); !ok {
		return Plan{}, false
	}
	return Plan{Kind: KindWeapon, Data: ad, Canvas: WeaponCanvas, Static: true}, true
}
