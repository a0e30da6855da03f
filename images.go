package truchet

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Decoded is an image together with the base name of the file it came from.
type Decoded struct {
	Name string
	Img  image.Image
}

// DecodeImages decodes the files in parallel, keeping their order.
// A file that cannot be read or decoded is logged and skipped, so the
// result may be shorter than imageFiles.
func DecodeImages(imageFiles []string) []Decoded {
	imgChans := make([]chan Decoded, len(imageFiles))
	for i, fName := range imageFiles {
		imgChans[i] = make(chan Decoded, 1)
		go func(out chan<- Decoded, fName string) {
			defer close(out)
			img, err := DecodeImage(fName)
			if err != nil {
				log.Warn(err)
				return
			}
			out <- Decoded{Name: Basename(fName), Img: img}
		}(imgChans[i], fName)
	}

	decoded := make([]Decoded, 0, len(imageFiles))
	for _, imgChan := range imgChans {
		if d, ok := <-imgChan; ok {
			decoded = append(decoded, d)
		}
	}
	return decoded
}

// DecodeImage decodes a single image file.
func DecodeImage(fName string) (image.Image, error) {
	file, err := os.Open(fName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	start := time.Now()
	img, kind, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	log.Debugf("Decoded '%s' into image type '%s' (%s).", fName, kind, time.Since(start))
	return img, nil
}

// VpCenter determines where the origin of the image should be painted into
// a canvas of the given size so that it appears centered. Dimensions where
// the image is at least as large as the canvas get 0.
func VpCenter(ximg image.Image, canWidth, canHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if ximg.Bounds().Dx() < canWidth {
		xmargin = (canWidth - ximg.Bounds().Dx()) / 2
	}
	if ximg.Bounds().Dy() < canHeight {
		ymargin = (canHeight - ximg.Bounds().Dy()) / 2
	}
	return image.Point{xmargin, ymargin}
}
