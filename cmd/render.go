package cmd

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"muscle-overlay/internal/config"
	imgio "muscle-overlay/internal/image"
	"muscle-overlay/internal/landmark"
	"muscle-overlay/internal/muscle"
	"muscle-overlay/internal/overlay"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gocv.io/x/gocv"
)

var renderCmd = &cobra.Command{
	Use:   "render IMAGE...",
	Short: "Draw muscle bands on face images",
	Long: `Draw a semi-transparent band for every muscle of the definition file
between the centroid of its origin landmarks and the centroid of its
insertion landmarks.

With a single IMAGE the result is written to render.output (default
output.jpg) and shown in a window until a key is pressed. With several images each
result is written to --out-dir as <name>_overlay<ext>.

Examples:
  muscle-overlay render face.jpg
  muscle-overlay render face.jpg --output annotated.png --show=false
  muscle-overlay render photos/*.jpg --out-dir overlays`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("definition", "d", "", "Muscle definition file (default from render.definition)")
	renderCmd.Flags().StringP("output", "o", "", "Output file for a single image (default from render.output)")
	renderCmd.Flags().String("out-dir", ".", "Output directory when rendering several images")
	renderCmd.Flags().Int("thickness", 0, "Band thickness in pixels (default from render.thickness)")
	renderCmd.Flags().Float64("alpha", 0, "Band opacity between 0 and 1 (default from render.alpha)")
	renderCmd.Flags().Bool("show", true, "Show a single result in a window (--show=false to skip)")

	for key, flag := range map[string]string{
		"render.definition": "definition",
		"render.output":     "output",
		"render.thickness":  "thickness",
		"render.alpha":      "alpha",
		"render.show":       "show",
	} {
		_ = viper.BindPFlag(key, renderCmd.Flags().Lookup(flag))
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if len(args) == 1 {
		return renderSingle(ctx, settings.Render, settings.Landmarks, args[0])
	}

	job, err := newRenderJob(settings.Render, settings.Landmarks)
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out-dir")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	bar := progressbar.NewOptions(len(args),
		progressbar.OptionSetDescription("Rendering"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("images"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
	)

	var failed int
	for _, path := range args {
		out := filepath.Join(outDir, OverlayName(path))
		if err := job.renderFile(ctx, path, out); err != nil {
			log.Error().Err(err).Str("image", path).Msg("Render failed")
			failed++
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	fmt.Println()

	log.Info().Int("rendered", len(args)-failed).Int("failed", failed).Str("dir", outDir).Msg("Render complete")
	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(args))
	}
	return nil
}

// renderSingle decodes the image before touching the definition or the
// landmark provider, so an unreadable image fails first.
func renderSingle(ctx context.Context, rs config.RenderSettings, ls config.LandmarkSettings, path string) error {
	mat, bounds, err := imgio.LoadMat(path)
	if err != nil {
		return err
	}
	defer mat.Close()

	job, err := newRenderJob(rs, ls)
	if err != nil {
		return err
	}
	return job.render(ctx, path, mat, bounds, rs.Output, rs.Show)
}

type renderJob struct {
	renderer *overlay.Renderer
	provider landmark.Provider
	def      *muscle.Definition
}

func newRenderJob(rs config.RenderSettings, ls config.LandmarkSettings) (*renderJob, error) {
	def, err := muscle.LoadDefinition(rs.Definition)
	if err != nil {
		return nil, err
	}
	if len(def.Muscles) == 0 {
		log.Warn().Str("definition", rs.Definition).Msg("Definition has no muscles")
	}

	provider, err := newProvider(ls)
	if err != nil {
		return nil, err
	}

	return &renderJob{
		renderer: overlay.NewRenderer(overlay.Options{Thickness: rs.Thickness, Alpha: rs.Alpha}, log),
		provider: provider,
		def:      def,
	}, nil
}

func (j *renderJob) renderFile(ctx context.Context, path, out string) error {
	mat, bounds, err := imgio.LoadMat(path)
	if err != nil {
		return err
	}
	defer mat.Close()

	return j.render(ctx, path, mat, bounds, out, false)
}

func (j *renderJob) render(ctx context.Context, path string, mat gocv.Mat, bounds image.Rectangle, out string, show bool) error {
	lm, err := resolveLandmarks(ctx, j.provider, path, bounds)
	if err != nil {
		return err
	}

	result, err := j.renderer.Render(mat, lm, j.def)
	if err != nil {
		return err
	}
	defer result.Close()

	if err := imgio.Save(out, result.Image); err != nil {
		return err
	}
	log.Info().Str("image", path).Str("output", out).Int("bands", len(result.Bands)).Int("skipped", len(result.Skipped)).Msg("Rendered")

	if show {
		imgio.Show("Muscle overlay", result.Image)
	}
	return nil
}

// OverlayName returns the file name used for the overlay of path in batch
// mode: face.jpg becomes face_overlay.jpg.
func OverlayName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_overlay" + ext
}
