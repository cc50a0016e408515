// Command fillgap fills the gap between two segmentation slices by
// shape-based interpolation.
//
// The two input masks are read from image files; every non-black pixel is
// foreground. For a gap of n missing slices, fillgap writes n masks with
// the interpolated foreground in the given label value:
//
//	fillgap -a slice10.png -b slice14.png -n 3 -out slice.png
//
// writes slice_1.png, slice_2.png and slice_3.png. With -n 1 the output is
// written to the given name, or to stdout if the name is "-".
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/term"
	"seehuhn.de/go/segedit"
)

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

var (
	first   = flag.String("a", "", "first mask `file`")
	second  = flag.String("b", "", "second mask `file`")
	gap     = flag.Int("n", 1, "number of missing slices between a and b")
	ratio   = flag.Float64("ratio", -1, "write a single slice at this ratio instead of filling a gap")
	out     = flag.String("out", pipeName, "output `file`; numbered when n > 1")
	label   = flag.Int("label", 255, "label value of the output foreground")
	fit     = flag.Bool("fit", false, "resample the second mask to the size of the first")
	verbose = flag.Bool("v", false, "log progress to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: fillgap -a mask.png -b mask.png [flags]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		segedit.SetLogger(slog.New(h))
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fillgap: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *first == "" || *second == "" {
		flag.Usage()
		return errors.New("both -a and -b are required")
	}
	if *label < 1 || *label > 255 {
		return fmt.Errorf("label %d out of range 1-255", *label)
	}

	a, err := loadMask(*first, image.Rectangle{})
	if err != nil {
		return err
	}
	var size image.Rectangle
	if *fit {
		size = a.Bounds()
	}
	b, err := loadMask(*second, size)
	if err != nil {
		return err
	}

	var masks []*segedit.Raster
	if *ratio >= 0 {
		r, err := segedit.Interpolate(a, b, *ratio)
		if err != nil {
			return err
		}
		masks = append(masks, r)
	} else {
		masks, err = segedit.InterpolateSeries(a, b, *gap)
		if err != nil {
			return err
		}
	}

	switch {
	case len(masks) == 0:
		return fmt.Errorf("nothing to do for n=%d", *gap)
	case len(masks) == 1:
		return saveMask(masks[0], *out)
	case *out == pipeName:
		return errors.New("stdout can only take a single slice")
	}

	ext := filepath.Ext(*out)
	base := strings.TrimSuffix(*out, ext)
	for i, s := range masks {
		if err := saveMask(s, fmt.Sprintf("%s_%d%s", base, i+1, ext)); err != nil {
			return err
		}
	}
	return nil
}

// loadMask reads a mask image. If size is not empty, the image is
// resampled to this size first; nearest neighbour resampling keeps the
// image binary.
func loadMask(name string, size image.Rectangle) (*segedit.Raster, error) {
	img, err := imaging.Open(name)
	if err != nil {
		return nil, fmt.Errorf("unable to open mask: %w", err)
	}
	if !size.Empty() && img.Bounds().Size() != size.Size() {
		segedit.Logger().Info("resampling mask",
			slog.String("file", name),
			slog.Int("width", size.Dx()), slog.Int("height", size.Dy()))
		img = imaging.Resize(img, size.Dx(), size.Dy(), imaging.NearestNeighbor)
	}
	return segedit.FromImage(img), nil
}

func saveMask(r *segedit.Raster, name string) error {
	img := r.Binary(segedit.Label(*label)).ToImage()
	if name == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return imaging.Encode(os.Stdout, img, imaging.PNG)
	}
	if err := imaging.Save(img, name); err != nil {
		return fmt.Errorf("unable to save mask: %w", err)
	}
	segedit.Logger().Info("saved mask", slog.String("file", name), slog.Int("pixels", r.Count()))
	return nil
}
