package export

import (
	"image"
	"image/color"
	"image/gif"
	"io"
	"math/rand"
	"sync"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/yarbel/yesodot/internal/atom"
	"github.com/yarbel/yesodot/internal/elements"
	"github.com/yarbel/yesodot/internal/viz"
)

// GIFOptions controls offline animation rendering.
type GIFOptions struct {
	Width  int // canvas cells
	Height int
	Frames int
	FPS    int
	Seed   int64 // shell tilt seed, 0 picks flat orbits
}

// DefaultGIFOptions matches the live view's canvas proportions.
func DefaultGIFOptions() GIFOptions {
	return GIFOptions{Width: 80, Height: 24, Frames: 120, FPS: 30}
}

// Palette maps ink indices to theme colors for frame capture. Index order
// follows the ink constants, with the backdrop at index 0.
func Palette(th viz.Theme) color.Palette {
	return color.Palette{
		hexRGBA(string(th.Backdrop)),
		hexRGBA(string(th.Star)),
		hexRGBA(string(th.Orbit)),
		hexRGBA(string(th.Neutron)),
		hexRGBA(string(th.Proton)),
		hexRGBA(string(th.Electron)),
	}
}

func hexRGBA(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// FramePaletted rasterizes a canvas into an 8x16-pixels-per-cell paletted
// image, coloring each dot by its cell's ink.
func FramePaletted(c *viz.Canvas, pal color.Palette) *image.Paletted {
	charW, charH := 8, 16
	imgW, imgH := c.Width*charW, c.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), pal)
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			idx := uint8(c.Ink[row][col])
			dotW, dotH := charW/2, charH/4
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					var bit int
					switch dy {
					case 0:
						bit = 1 << (dx * 3)
					case 1:
						bit = 2 << (dx * 3)
					case 2:
						bit = 4 << (dx * 3)
					case 3:
						if dx == 0 {
							bit = 0x40
						} else {
							bit = 0x80
						}
					}
					if pattern&bit != 0 {
						for py := 0; py < dotH; py++ {
							for px := 0; px < dotW; px++ {
								img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, idx)
							}
						}
					}
				}
			}
		}
	}
	return img
}

// AtomGIF renders an orbit animation for one element without a terminal:
// the camera slowly circles while electrons advance one tick per frame.
// Frames depend only on their index, so each one renders on its own
// canvas and the results join in order.
func AtomGIF(el *elements.Element, th viz.Theme, opts GIFOptions) *gif.GIF {
	if opts.Width <= 0 || opts.Height <= 0 || opts.Frames <= 0 {
		opts = DefaultGIFOptions()
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	a := atom.New(el, rng)

	base := viz.NewCamera()
	base.Fit(a.Radius())

	pal := Palette(th)
	delay := 100 / opts.FPS
	if delay < 1 {
		delay = 1
	}

	frames := make([]*image.Paletted, opts.Frames)
	dt := 1.0 / float64(opts.FPS)

	var wg sync.WaitGroup
	for i := 0; i < opts.Frames; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cam := *base
			cam.RotY += 0.01 * float64(idx+1)

			canvas := viz.NewCanvas(opts.Width, opts.Height)
			viz.Render3D(canvas, viz.BuildAtomScene(a, float64(idx)*dt), &cam)
			frames[idx] = FramePaletted(canvas, pal)
		}(i)
	}
	wg.Wait()

	anim := &gif.GIF{LoopCount: 0}
	for _, f := range frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, delay)
	}
	return anim
}

// WriteGIF encodes the animation to w.
func WriteGIF(w io.Writer, g *gif.GIF) error {
	return gif.EncodeAll(w, g)
}
