package main

import (
	"image"
	"image/color"
	"image/draw"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/scottkirkwood/truchet"
)

const (
	maxWinWidth  = 1000
	maxWinHeight = 768
)

// showImages opens a window and shows each image file sent on files.
// Left and right arrows page through earlier ones; Escape or Q quits.
func showImages(files <-chan string) {
	driver.Main(func(s screen.Screen) {
		w, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  maxWinWidth,
			Height: maxWinHeight,
		})
		if err != nil {
			log.Error(err)
			return
		}
		defer w.Release()

		go func() {
			for fname := range files {
				for _, d := range truchet.DecodeImages([]string{fname}) {
					w.Send(d)
				}
			}
		}()

		var (
			sz   size.Event
			imgs []image.Image
			i    int
		)
		for {
			switch e := w.NextEvent().(type) {
			case truchet.Decoded:
				imgs = append(imgs, e.Img)
				i = len(imgs) - 1
				w.Send(paint.Event{})

			case key.Event:
				if e.Direction != key.DirPress {
					continue
				}
				switch e.Code {
				case key.CodeEscape, key.CodeQ:
					return
				case key.CodeRightArrow:
					if len(imgs) > 0 {
						i = (i + 1) % len(imgs)
						w.Send(paint.Event{})
					}
				case key.CodeLeftArrow:
					if len(imgs) > 0 {
						i = (i + len(imgs) - 1) % len(imgs)
						w.Send(paint.Event{})
					}
				}

			case paint.Event:
				if len(imgs) == 0 {
					w.Fill(sz.Bounds(), color.White, draw.Src)
					w.Publish()
					continue
				}
				if err := paintImage(s, w, imgs[i], sz); err != nil {
					log.Error(err)
					return
				}

			case size.Event:
				sz = e

			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case error:
				log.Errorf("Screen error: %v", e)
				return
			}
		}
	})
}

func paintImage(s screen.Screen, w screen.Window, img image.Image, sz size.Event) error {
	b, err := s.NewBuffer(img.Bounds().Size())
	if err != nil {
		return err
	}
	defer b.Release()
	draw.Draw(b.RGBA(), b.Bounds(), img, img.Bounds().Min, draw.Src)

	dp := truchet.VpCenter(img, sz.WidthPx, sz.HeightPx)
	if dp != (image.Point{}) {
		w.Fill(sz.Bounds(), color.Black, draw.Src)
	}
	w.Upload(dp, b, b.Bounds())
	w.Publish()
	return nil
}
