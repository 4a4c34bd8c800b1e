// Package texture decodes image assets off the render thread.
package texture

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"
	"sync"

	_ "golang.org/x/image/bmp" // BMP decoder registration
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// MaxSize is the largest edge kept after decoding; bigger images are
// downscaled preserving aspect ratio.
const MaxSize = 2048

// Image is a decoded texture ready for upload.
type Image struct {
	Name string
	RGBA *image.RGBA
}

// Decode reads path and converts it to RGBA, downscaling past MaxSize.
func Decode(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return toRGBA(src), nil
}

func toRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > MaxSize || h > MaxSize {
		if w >= h {
			h = h * MaxSize / w
			w = MaxSize
		} else {
			w = w * MaxSize / h
			h = MaxSize
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
		return dst
	}
	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// LoadAll decodes every name under dir concurrently. Failed images are
// reported in the joined error; the rest are still returned.
func LoadAll(ctx context.Context, dir string, names []string) ([]Image, error) {
	var (
		mu   sync.Mutex
		out  []Image
		errs []error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := Decode(filepath.Join(dir, name))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				return nil
			}
			out = append(out, Image{Name: name, RGBA: img})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, errors.Join(errs...)
}

// LoadAsync runs LoadAll in the background. The channel yields exactly one
// Batch and is then closed.
func LoadAsync(ctx context.Context, dir string, names []string) <-chan Batch {
	ch := make(chan Batch, 1)
	go func() {
		defer close(ch)
		imgs, err := LoadAll(ctx, dir, names)
		ch <- Batch{Images: imgs, Err: err}
	}()
	return ch
}

// Batch is the result of an asynchronous load.
type Batch struct {
	Images []Image
	Err    error
}
