package service

import (
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	placeholderWidth  = 800
	placeholderHeight = 400
)

var defaultBanners = []struct {
	label    string
	filename string
}{
	{"Welcome to ThreadCraft", "welcome.jpg"},
	{"Premium T-Shirt Crafting", "crafting.jpg"},
	{"Our Collection", "collection.jpg"},
	{"Sustainable Fashion", "sustainable.jpg"},
	{"Design Your Perfect Tee", "design.jpg"},
	{"Join Our Community", "community.jpg"},
}

// GeneratePlaceholder writes an 800x400 dark JPEG with the label centered in
// white, used as a stand-in banner until a real asset is uploaded.
func GeneratePlaceholder(dir, filename, label string) error {
	img := image.NewRGBA(image.Rect(0, 0, placeholderWidth, placeholderHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 45, G: 50, B: 55, A: 255}}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}

	textWidth := drawer.MeasureString(label)
	drawer.Dot = fixed.Point26_6{
		X: (fixed.I(placeholderWidth) - textWidth) / 2,
		Y: fixed.I((placeholderHeight + face.Height) / 2),
	}
	drawer.DrawString(label)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	out, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return err
	}

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: 85}); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// SeedPlaceholders generates the default banner set under dir, skipping any
// file that already exists.
func SeedPlaceholders(dir string) error {
	for _, banner := range defaultBanners {
		if _, err := os.Stat(filepath.Join(dir, banner.filename)); err == nil {
			continue
		}
		if err := GeneratePlaceholder(dir, banner.filename, banner.label); err != nil {
			return err
		}
	}
	return nil
}
