package cmd

import (
	imgio "muscle-overlay/internal/image"
	"muscle-overlay/internal/picker"
	"muscle-overlay/ui/mainwindow"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect IMAGE",
	Short: "Show the index of the landmark nearest to a click",
	Long: `Open IMAGE with every landmark marked. Clicking logs the index and pixel
position of the nearest landmark and highlights it. Press Q to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	img, lm, err := loadFace(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	inspection := picker.NewInspection(lm)
	base := imgio.ToRGBA(img)
	win := mainwindow.New(fyneapp.New(), "Landmark inspector", base, settings.Picker.WindowWidth, settings.Picker.WindowHeight)
	view := mainwindow.NewInspectionView(win, base)
	inspector := picker.NewInspector(view, log)

	win.OnEvent(func(ev picker.Event) {
		if err := inspector.Handle(inspection, ev); err != nil {
			log.Warn().Err(err).Msg("Inspect failed")
		}
		if inspection.Done() {
			win.Quit()
		}
	})

	view.Redraw(inspection)
	win.ShowAndRun()
	return nil
}
