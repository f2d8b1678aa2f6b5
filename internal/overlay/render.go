package overlay

import (
	"errors"

	"muscle-overlay/internal/landmark"
	"muscle-overlay/internal/muscle"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"
)

// ErrEmptyImage is returned when the source image has no pixels.
var ErrEmptyImage = errors.New("source image is empty")

// Options configures band rendering.
type Options struct {
	// Thickness is the band width in pixels. It does not scale with the
	// image resolution.
	Thickness int

	// Alpha is the weight of the drawn layer; the base image gets 1-Alpha.
	Alpha float64
}

// DefaultOptions returns the standard band look: 18 px bands at 45% opacity.
func DefaultOptions() Options {
	return Options{
		Thickness: 18,
		Alpha:     0.45,
	}
}

// Skip records a muscle that could not be drawn.
type Skip struct {
	Name string
	Err  error
}

// Result is the output of a render.
type Result struct {
	Image   gocv.Mat
	Bands   []Band
	Skipped []Skip
}

// Close releases the composited image.
func (r *Result) Close() error {
	return r.Image.Close()
}

// Renderer composites muscle bands over images.
type Renderer struct {
	opts Options
	log  zerolog.Logger
}

// NewRenderer creates a renderer. Zero option fields take their defaults.
func NewRenderer(opts Options, log zerolog.Logger) *Renderer {
	def := DefaultOptions()
	if opts.Thickness <= 0 {
		opts.Thickness = def.Thickness
	}
	if opts.Alpha <= 0 || opts.Alpha > 1 {
		opts.Alpha = def.Alpha
	}
	return &Renderer{opts: opts, log: log}
}

// Options returns the effective options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Render draws every muscle of def over a copy of src and returns it. Muscles
// are drawn in definition order, each blended onto the accumulated result, so
// overlapping bands darken instead of occluding. Muscles with empty or out of
// range index sets are skipped and reported in Result.Skipped. src is never
// modified. The caller must Close the result.
func (r *Renderer) Render(src gocv.Mat, lm landmark.Set, def *muscle.Definition) (*Result, error) {
	if src.Empty() {
		return nil, ErrEmptyImage
	}

	res := &Result{Image: src.Clone()}
	for _, m := range def.Muscles {
		band, err := ComputeBand(lm, m, r.opts.Thickness)
		if err != nil {
			r.log.Warn().Err(err).Str("muscle", m.Name).Msg("Skipping muscle")
			res.Skipped = append(res.Skipped, Skip{Name: m.Name, Err: err})
			continue
		}

		r.drawBand(&res.Image, band)
		res.Bands = append(res.Bands, band)
		r.log.Debug().
			Str("muscle", band.Name).
			Int("x1", band.From.X).Int("y1", band.From.Y).
			Int("x2", band.To.X).Int("y2", band.To.Y).
			Msg("Drew band")
	}

	return res, nil
}

// drawBand paints the band on a scratch copy of img and blends it back.
func (r *Renderer) drawBand(img *gocv.Mat, b Band) {
	scratch := img.Clone()
	defer scratch.Close()

	from, to := b.From.Image(), b.To.Image()
	gocv.Line(&scratch, from, to, b.Color, b.Thickness)
	gocv.Circle(&scratch, from, b.CapRadius(), b.Color, -1)
	gocv.Circle(&scratch, to, b.CapRadius(), b.Color, -1)

	gocv.AddWeighted(scratch, r.opts.Alpha, *img, 1-r.opts.Alpha, 0, img)
}
