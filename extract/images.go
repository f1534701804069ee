package extract

import (
	"bytes"
	"image"
	"io"
	"regexp"
	"sort"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	// Decoders for sizing extracted artifacts. PNG and JPEG cover the
	// common PDF filters; TIFF and BMP cover the long tail pdfcpu emits
	// for raw and CCITT streams.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// minImageSide filters out icon-sized images (bullets, rules, spacers) that
// carry no recognizable text.
const minImageSide = 10

// imagePlacementRe matches an image XObject invocation preceded by its
// transformation matrix: "a b c d e f cm ... /Name Do". The vertical scale d
// and translation f locate the drawn image on the page.
var imagePlacementRe = regexp.MustCompile(
	`([-+0-9.]+)\s+([-+0-9.]+)\s+([-+0-9.]+)\s+([-+0-9.]+)\s+([-+0-9.]+)\s+([-+0-9.]+)\s+cm\s+(?:q\s+)?/([^\s/\[\]()<>]+)\s+Do`)

// pageImages extracts the embedded raster images of one page. Failures are
// degraded: a page whose images cannot be read simply yields none, and an
// image without a recoverable placement sorts to the bottom of its page.
func pageImages(ctx *model.Context, index int, pageHeight float64) []ImageBlock {
	pageNr := index + 1

	objNrs := pdfcpu.ImageObjNrs(ctx, pageNr)
	if len(objNrs) == 0 {
		return nil
	}
	sort.Ints(objNrs)

	images, err := pdfcpu.ExtractPageImages(ctx, pageNr, false)
	if err != nil || len(images) == 0 {
		return nil
	}

	placements := imagePlacements(ctx, pageNr, pageHeight)

	var blocks []ImageBlock
	seq := 0
	for _, objNr := range objNrs {
		img, ok := images[objNr]
		if !ok {
			continue
		}
		data, err := io.ReadAll(img)
		if err != nil || len(data) == 0 {
			continue
		}

		width, height := imageSize(data)
		if width > 0 && width < minImageSide || height > 0 && height < minImageSide {
			continue
		}

		top, placed := placements[img.Name]
		if !placed {
			top = pageHeight
		}

		seq++
		blocks = append(blocks, ImageBlock{
			Page:     index,
			Top:      top,
			Data:     data,
			FileType: imageFileType(img.FileType),
			Sequence: seq,
			Width:    width,
			Height:   height,
		})
	}

	return blocks
}

// imagePlacements scans a page's content stream for image invocations and
// returns the top-down top offset per XObject resource name. Only the first
// placement of a resource counts; repeated stamps of one image keep the
// earliest position.
func imagePlacements(ctx *model.Context, pageNr int, pageHeight float64) map[string]float64 {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return nil
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return nil
	}
	return scanPlacements(string(data), pageHeight)
}

// scanPlacements applies the placement pattern to raw content stream text.
func scanPlacements(content string, pageHeight float64) map[string]float64 {
	matches := imagePlacementRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	placements := make(map[string]float64, len(matches))
	for _, m := range matches {
		d, errD := strconv.ParseFloat(m[4], 64)
		f, errF := strconv.ParseFloat(m[6], 64)
		if errD != nil || errF != nil {
			continue
		}
		name := m[7]
		if _, seen := placements[name]; seen {
			continue
		}
		// f is the bottom edge, d the drawn height; their sum is the top
		// edge in bottom-up coordinates.
		top := pageHeight - (f + d)
		if top < 0 {
			top = 0
		}
		placements[name] = top
	}
	return placements
}

// imageSize decodes just enough of an encoded image to learn its pixel
// dimensions. Unknown encodings report 0x0 and are kept.
func imageSize(data []byte) (int, int) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

// imageFileType normalizes pdfcpu's extracted file type to a usable
// extension, defaulting to PNG.
func imageFileType(t string) string {
	if t == "" {
		return "png"
	}
	return t
}
