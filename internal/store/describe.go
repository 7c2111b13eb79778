package store

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func init() {
	exif.RegisterParsers(mknote.All...)
}

// Details is what the viewers show about the current image.
type Details struct {
	Name    string
	Size    int64
	ModTime time.Time
	Format  string
	Width   int
	Height  int
	Taken   time.Time
}

// HumanSize formats Size like "1.2 MB".
func (d Details) HumanSize() string {
	return humanize.Bytes(uint64(d.Size))
}

// String renders a one-line summary.
func (d Details) String() string {
	parts := []string{d.Name, d.HumanSize()}
	if d.Width > 0 && d.Height > 0 {
		parts = append(parts, fmt.Sprintf("%d×%d %s", d.Width, d.Height, d.Format))
	}
	if !d.Taken.IsZero() {
		parts = append(parts, "taken "+d.Taken.Format("2006-01-02 15:04"))
	} else if !d.ModTime.IsZero() {
		parts = append(parts, "modified "+humanize.Time(d.ModTime))
	}
	return strings.Join(parts, " · ")
}

// Describe reads the header and EXIF data of img. Missing or undecodable
// metadata leaves the corresponding fields zero.
func Describe(img *Image) (Details, error) {
	d := Details{Name: img.EditName(), Size: img.Size(), ModTime: img.ModTime()}

	f, err := os.Open(img.Path())
	if err != nil {
		return d, fileError("cannot open image", img.EditName(), err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		d.Size = info.Size()
		d.ModTime = info.ModTime()
	}

	if cfg, format, err := image.DecodeConfig(f); err == nil {
		d.Width, d.Height, d.Format = cfg.Width, cfg.Height, format
	}

	if _, err := f.Seek(0, io.SeekStart); err == nil {
		if x, err := exif.Decode(f); err == nil {
			if taken, err := x.DateTime(); err == nil {
				d.Taken = taken
			}
		}
	}

	return d, nil
}
