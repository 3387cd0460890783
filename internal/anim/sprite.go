package anim

import (
	"bytes"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/BourgeoisBear/rasterm"
	"github.com/mattn/go-sixel"
	xdraw "golang.org/x/image/draw"
)

// SpriteSource loads sheets and images below an image root and turns
// frames into sixel sequences. Sheets are cached until Release; a
// released source still loads but no longer caches, so a frame drawn
// after release cannot pin a sheet.
type SpriteSource struct {
	root string

	mu       sync.Mutex
	sheets   map[string]image.Image
	released bool
}

func NewSpriteSource(root string) *SpriteSource {
	return &SpriteSource{root: root, sheets: make(map[string]image.Image)}
}

// Load decodes the PNG at rel (relative to the image root).
func (s *SpriteSource) Load(rel string) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if img, ok := s.sheets[rel]; ok {
		return img, nil
	}

	f, err := os.Open(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", rel, err)
	}
	if !s.released {
		s.sheets[rel] = img
	}
	return img, nil
}

// Release drops cached sheets and stops caching.
func (s *SpriteSource) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sheets = make(map[string]image.Image)
	s.released = true
}

// Cached counts the sheets held in memory.
func (s *SpriteSource) Cached() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sheets)
}

// Frame renders frame of p onto a canvas-sized image.
func (s *SpriteSource) Frame(p Plan, frame int) (*image.RGBA, error) {
	sheet, err := s.Load(p.SheetPath())
	if err != nil {
		return nil, err
	}
	tile := Crop(sheet, p.Rect(frame))
	if p.Kind == KindWeapon {
		b := tile.Bounds()
		return Scale(Rotate90(tile), p.Canvas, RotatedDest(p.Canvas, b.Dx(), b.Dy())), nil
	}
	return Scale(tile, p.Canvas, image.Rectangle{Max: p.Canvas}), nil
}

// Crop returns the part of img inside r, translated to the origin.
func Crop(img image.Image, r image.Rectangle) *image.RGBA {
	r = r.Add(img.Bounds().Min).Intersect(img.Bounds())
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}

// Scale draws src into dst on a transparent canvas of size canvas, with
// nearest-neighbour sampling so pixel art stays sharp.
func Scale(src image.Image, canvas image.Point, dst image.Rectangle) *image.RGBA {
	out := image.NewRGBA(image.Rectangle{Max: canvas})
	xdraw.NearestNeighbor.Scale(out, dst, src, src.Bounds(), xdraw.Over, nil)
	return out
}

// Rotate90 rotates img 90° clockwise.
func Rotate90(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dy(), b.Dx()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Max.Y-1-y, x-b.Min.X, img.At(x, y))
		}
	}
	return out
}

// Layer composites images on top of each other, largest bounds win.
func Layer(layers ...image.Image) *image.RGBA {
	var bounds image.Rectangle
	for _, l := range layers {
		bounds = bounds.Union(image.Rectangle{Max: l.Bounds().Size()})
	}
	out := image.NewRGBA(bounds)
	for _, l := range layers {
		draw.Draw(out, out.Bounds(), l, l.Bounds().Min, draw.Over)
	}
	return out
}

// EncodeSixel encodes an animation frame. Frames are small and
// redrawn often, so no dithering.
func EncodeSixel(img image.Image) (string, error) {
	var buf bytes.Buffer
	enc := sixel.NewEncoder(&buf)
	enc.Dither = false
	if err := enc.Encode(img); err != nil {
		return "", fmt.Errorf("failed to encode sixel: %w", err)
	}
	return buf.String(), nil
}

// EncodeStatic encodes a still image through a Plan9 palette with
// Floyd-Steinberg dithering.
func EncodeStatic(img image.Image) (string, error) {
	bounds := img.Bounds()
	paletted := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(paletted, bounds, img, bounds.Min)

	var buf bytes.Buffer
	if err := rasterm.SixelWriteImage(&buf, paletted); err != nil {
		return "", fmt.Errorf("failed to encode sixel: %w", err)
	}
	return buf.String(), nil
}
