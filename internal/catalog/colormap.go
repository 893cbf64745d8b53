package catalog

import (
	"encoding/json"
	"strings"
)

// ColorMapping is the derived, bidirectional association between color option
// values and image indices. It is recomputed from the product on every call
// and never cached: the product snapshot is immutable for a page view, so
// rebuilding is cheap and keeps both directions consistent.
type ColorMapping struct {
	ColorToImage map[string]int
	ImageToColor map[int]string
}

// colorStrategy fills unmapped entries from one inference source. Strategies
// run in priority order; an earlier mapping is never overwritten.
type colorStrategy func(p *Product, colors []string, m *ColorMapping)

var colorStrategies = []colorStrategy{
	mapFromVariantMetadata,
	mapFromIdenticalImages,
	mapFromImageContent,
}

// BuildColorMapping derives the color/thumbnail association for a product.
// Thumbnails no strategy can place stay unmapped; selecting them leaves the
// current color selection unchanged.
func BuildColorMapping(p *Product) ColorMapping {
	mapping := ColorMapping{
		ColorToImage: make(map[string]int),
		ImageToColor: make(map[int]string),
	}

	colors := declaredColors(p)
	if len(colors) == 0 {
		return mapping
	}

	for _, strategy := range colorStrategies {
		strategy(p, colors, &mapping)
	}
	return mapping
}

// ColorForThumbnail returns the inferred color for an image index, if any.
func ColorForThumbnail(p *Product, index int) (string, bool) {
	color, ok := BuildColorMapping(p).ImageToColor[index]
	return color, ok
}

// ThumbnailForColor returns the image index mapped to a color, if any.
func ThumbnailForColor(p *Product, color string) (int, bool) {
	index, ok := BuildColorMapping(p).ColorToImage[color]
	return index, ok
}

// declaredColors returns the values of the product's color option, in the
// declared order.
func declaredColors(p *Product) []string {
	for _, option := range p.Options {
		if strings.EqualFold(option.Name, "Color") {
			return option.Values
		}
	}
	return nil
}

// mapFromVariantMetadata uses explicit image indices on enabled variants: the
// smallest index seen wins for a color, the first color seen wins for an
// index.
func mapFromVariantMetadata(p *Product, colors []string, m *ColorMapping) {
	for _, variant := range p.Variants {
		if !variant.IsEnabled || variant.ImageIndex == nil {
			continue
		}
		color := variantColor(variant)
		if color == "" {
			continue
		}

		index := *variant.ImageIndex
		if index < 0 || index >= len(p.Images) {
			continue
		}

		if existing, ok := m.ColorToImage[color]; !ok || index < existing {
			m.ColorToImage[color] = index
		}
		if _, ok := m.ImageToColor[index]; !ok {
			m.ImageToColor[index] = color
		}
	}
}

// mapFromIdenticalImages handles catalogs that repeat one generic photo per
// color slot: when every image shares one source and no variant metadata
// mapped anything, the images are split into equal contiguous runs, one per
// declared color. A remainder that does not divide evenly merges into the
// last color's run.
func mapFromIdenticalImages(p *Product, colors []string, m *ColorMapping) {
	if len(m.ColorToImage) > 0 || len(m.ImageToColor) > 0 {
		return
	}
	if len(p.Images) == 0 || !allImagesIdentical(p.Images) {
		return
	}

	runLength := len(p.Images) / len(colors)
	if runLength == 0 {
		runLength = 1
	}

	for k, color := range colors {
		start := k * runLength
		if start >= len(p.Images) {
			break
		}
		m.ColorToImage[color] = start
	}
	for i := range p.Images {
		k := i / runLength
		if k >= len(colors) {
			k = len(colors) - 1
		}
		m.ImageToColor[i] = colors[k]
	}
}

// mapFromImageContent scans still-unmapped thumbnails for a color name in
// their alt text, source URL, or serialized metadata. First declared color
// that matches wins.
func mapFromImageContent(p *Product, colors []string, m *ColorMapping) {
	for i, image := range p.Images {
		if _, ok := m.ImageToColor[i]; ok {
			continue
		}

		haystack := imageSearchText(image)
		for _, color := range colors {
			needle := strings.ToLower(strings.TrimSpace(color))
			if needle == "" || !strings.Contains(haystack, needle) {
				continue
			}
			m.ImageToColor[i] = color
			if _, ok := m.ColorToImage[color]; !ok {
				m.ColorToImage[color] = i
			}
			break
		}
	}
}

func imageSearchText(image Image) string {
	parts := []string{image.Alt, image.Src, image.Position}
	if serialized, err := json.Marshal(image); err == nil {
		parts = append(parts, string(serialized))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func allImagesIdentical(images []Image) bool {
	for _, image := range images[1:] {
		if image.Src != images[0].Src {
			return false
		}
	}
	return true
}

func variantColor(variant Variant) string {
	for name, value := range variant.Options {
		if strings.EqualFold(name, "Color") {
			return value
		}
	}
	return ""
}
