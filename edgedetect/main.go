// Command edgedetect writes an edge map of an image.
//
// Usage:
//
//	edgedetect [-sigma 2.5] [-o edges.png] in.jpg
//
// The image is converted to grayscale and blurred, then convolved with
// vertical and horizontal gradient kernels. Each output pixel is the
// magnitude of the two gradients.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"os"

	"github.com/disintegration/imaging"
)

func main() {
	log.SetFlags(0)
	sigma := flag.Float64("sigma", 2.5, "Gaussian blur `sigma` (0 disables blurring)")
	out := flag.String("o", "edges.png", "output `file`; the extension picks the format")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] image\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	img, err := imaging.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	b := img.Bounds()
	fmt.Printf("%s: %dx%d, %s\n", flag.Arg(0), b.Dx(), b.Dy(), colorModelName(img.ColorModel()))

	if err := imaging.Save(detectEdges(img, *sigma), *out); err != nil {
		log.Fatal(err)
	}
}

var (
	verticalKernel = [9]float64{
		1, 0, -1,
		1, 0, -1,
		1, 0, -1,
	}
	horizontalKernel = [9]float64{
		-1, -1, -1,
		0, 0, 0,
		1, 1, 1,
	}
)

func detectEdges(img image.Image, sigma float64) *image.Gray {
	gray := imaging.Grayscale(img)
	if sigma > 0 {
		gray = imaging.Blur(gray, sigma)
	}
	// Negative responses clamp to 0, so each kernel only sees edges
	// that get darker left to right (vertical) or lighter top to
	// bottom (horizontal).
	v := imaging.Convolve3x3(gray, verticalKernel, nil)
	h := imaging.Convolve3x3(gray, horizontalKernel, nil)
	return gradientMagnitude(v, h)
}

// gradientMagnitude combines two gradient images of the same size
// pixel by pixel as sqrt(v²+h²), clamped to 255. Only the red channel
// of each is read.
func gradientMagnitude(v, h *image.NRGBA) *image.Gray {
	b := v.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			gv := float64(v.Pix[y*v.Stride+x*4])
			gh := float64(h.Pix[y*h.Stride+x*4])
			m := math.Min(math.Sqrt(gv*gv+gh*gh), 255)
			out.Pix[y*out.Stride+x] = uint8(m)
		}
	}
	return out
}

func colorModelName(m color.Model) string {
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.NRGBAModel:
		return "NRGBA"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.YCbCrModel:
		return "YCbCr"
	case color.CMYKModel:
		return "CMYK"
	}
	return fmt.Sprintf("%T", m)
}
