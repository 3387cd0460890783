package anim

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftlview/internal/data"
)

func TestWalkDownClipAndFallback(t *testing.T) {
	ad := FallbackCrewAnimation("human")
	assert.Equal(t, "people/human_base.png", ad.AnimSheetPath)
	assert.Equal(t, 315, ad.AnimSheetWidth)
	assert.Equal(t, 455, ad.AnimSheetHeight)
	assert.Equal(t, 13, ad.Rows())

	clip, ok := WalkDownClip(ad)
	require.True(t, ok)
	assert.Equal(t, "human_walk_down", clip.Name)
	assert.Equal(t, 4, clip.Length)
	assert.Equal(t, 12, clip.Y)

	_, ok = WalkDownClip(&data.AnimationData{Animations: map[string]data.Clip{"idle": {}}})
	assert.False(t, ok)
	_, ok = WalkDownClip(nil)
	assert.False(t, ok)
}

func TestSourceRectInvertsRows(t *testing.T) {
	ad := FallbackCrewAnimation("human")
	clip, _ := WalkDownClip(ad)

	// y=12 on a 13 row sheet is the top row
	assert.Equal(t, image.Rect(0, 0, 35, 35), SourceRect(ad, clip, 0))
	assert.Equal(t, image.Rect(105, 0, 140, 35), SourceRect(ad, clip, 3))

	up := ad.Animations["human_walk_up"]
	assert.Equal(t, image.Rect(0, 35, 35, 70), SourceRect(ad, up, 0))
}

func TestFrameInterval(t *testing.T) {
	assert.Equal(t, 150*time.Millisecond, FrameInterval(data.Clip{}))
	assert.Equal(t, 150*time.Millisecond, FrameInterval(data.Clip{Time: data.NewStat(0)}))
	assert.Equal(t, 75*time.Millisecond, FrameInterval(data.Clip{Time: data.NewStat(2)}))
	assert.Equal(t, 300*time.Millisecond, FrameInterval(data.Clip{Time: data.NewStat(0.5)}))
}

func TestFireFrameAndRotation(t *testing.T) {
	ad := &data.AnimationData{FrameWidth: 20, FrameHeight: 60, X: 2, Y: 1, FireFrame: data.NewStat(3)}
	r, ok := FireFrameRect(ad)
	require.True(t, ok)
	assert.Equal(t, image.Rect(40, 60, 60, 120), r)

	ad.FireFrame = data.NewStat(0)
	_, ok = FireFrameRect(ad)
	assert.False(t, ok, "a zero fire frame means no static frame")

	// 20x60 tile rotated is 60 wide, 20 high: scale = min(200/60, 200/20)
	dest := RotatedDest(WeaponCanvas, 20, 60)
	assert.Equal(t, 200, dest.Dx())
	assert.Equal(t, 66, dest.Dy())
	assert.Equal(t, 0, dest.Min.X)
	assert.Equal(t, 67, dest.Min.Y)
}

func TestRotate90(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{G: 255, A: 255})

	out := Rotate90(src)
	assert.Equal(t, image.Rect(0, 0, 1, 2), out.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, out.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, out.RGBAAt(0, 1))
}

func TestSpriteSourceFrame(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "img", "people"), 0o755))
	sheet := image.NewRGBA(image.Rect(0, 0, 315, 455))
	for x := 0; x < 35; x++ {
		for y := 0; y < 35; y++ {
			sheet.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	f, err := os.Create(filepath.Join(root, "img", "people", "human_base.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, sheet))
	require.NoError(t, f.Close())

	plan, ok := WalkPlan(KindCrew, FallbackCrewAnimation("human"))
	require.True(t, ok)

	src := NewSpriteSource(root)
	img, err := src.Frame(plan, 0)
	require.NoError(t, err)
	assert.Equal(t, CrewCanvas, img.Bounds().Size())
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(52, 52))

	six, err := EncodeSixel(img)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(six, "\x1bP"))

	six, err = EncodeStatic(img)
	require.NoError(t, err)
	assert.NotEmpty(t, six)

	plan, _ = WalkPlan(KindCrew, FallbackCrewAnimation("ghost"))
	_, err = src.Frame(plan, 0)
	assert.Error(t, err, "missing sheets surface as errors for the caller to swallow")
}

func TestSpriteSourceDoesNotCacheAfterRelease(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "img", "people"), 0o755))
	f, err := os.Create(filepath.Join(root, "img", "people", "human_base.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 315, 455))))
	require.NoError(t, f.Close())

	plan, ok := WalkPlan(KindCrew, FallbackCrewAnimation("human"))
	require.True(t, ok)

	src := NewSpriteSource(root)
	_, err = src.Frame(plan, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, src.Cached())

	src.Release()
	assert.Zero(t, src.Cached())

	// a tick that was already running when the modal closed
	_, err = src.Frame(plan, 1)
	require.NoError(t, err)
	assert.Zero(t, src.Cached())
}
