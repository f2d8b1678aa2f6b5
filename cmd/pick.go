package cmd

import (
	"errors"
	"fmt"
	"os"

	imgio "muscle-overlay/internal/image"
	"muscle-overlay/internal/muscle"
	"muscle-overlay/internal/picker"
	"muscle-overlay/ui/mainwindow"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var pickCmd = &cobra.Command{
	Use:   "pick IMAGE",
	Short: "Pick the landmarks that belong to each muscle group",
	Long: `Open IMAGE with every landmark marked and record which landmarks belong to
each muscle group. The mapping file is rewritten after every change, so
closing the window at any time keeps the work done so far.

Keys:
  1-9  select a muscle group
  U    undo the last point of the selected group
  C    clear the selected group
  R    reset all groups
  Q    quit

Examples:
  # Start a new mapping file
  muscle-overlay pick face.jpg

  # Continue an existing file
  muscle-overlay pick face.jpg --output muscle_points.yaml --resume`,
	Args: cobra.ExactArgs(1),
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().StringP("output", "o", "", "Mapping file to write (default from picker.output)")
	pickCmd.Flags().Bool("resume", false, "Load the existing mapping file instead of starting empty")
	_ = viper.BindPFlag("picker.output", pickCmd.Flags().Lookup("output"))
}

func runPick(cmd *cobra.Command, args []string) error {
	resume, _ := cmd.Flags().GetBool("resume")
	groups := settings.Picker.Groups
	if len(groups) == 0 {
		groups = muscle.DefaultGroups
	}

	img, lm, err := loadFace(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	store, err := openStore(settings.Picker.Output, groups, resume)
	if err != nil {
		return err
	}

	session := picker.NewSession(lm, store, picker.NewKeymap(groups))
	log.Info().Str("session", session.ID).Str("output", store.Path()).Int("landmarks", lm.Len()).Msg("Picker started")
	for _, line := range picker.Help(session.Keymap) {
		fmt.Println(line)
	}

	base := imgio.ToRGBA(img)
	win := mainwindow.New(fyneapp.New(), "Muscle picker", base, settings.Picker.WindowWidth, settings.Picker.WindowHeight)
	view := mainwindow.NewSessionView(win, base)
	ctrl := picker.NewController(view, log)

	win.OnEvent(func(ev picker.Event) {
		if err := ctrl.Handle(session, ev); err != nil {
			switch {
			case errors.Is(err, picker.ErrNoGroupSelected):
				log.Warn().Msg("Select a muscle group first (press 1-9)")
				win.SetStatus(err.Error(), widget.WarningImportance)
			default:
				log.Error().Err(err).Stringer("event", ev).Msg("Event failed")
			}
		}
		if session.Done() {
			win.Quit()
		}
	})

	view.Redraw(session)
	win.ShowAndRun()

	log.Info().Str("output", store.Path()).Int("points", store.Mapping().Len()).Msg("Saved mapping")
	return nil
}

// openStore returns the store for a picker session. A fresh store writes
// nothing until the first edit, so an existing file survives a session that
// is closed without changes.
func openStore(path string, groups []string, resume bool) (*muscle.Store, error) {
	if resume {
		return muscle.ResumeStore(path, groups)
	}
	if _, err := os.Stat(path); err == nil {
		log.Warn().Str("output", path).Msg("Existing mapping is replaced on the first edit; use --resume to continue it")
	}
	return muscle.NewStore(path, muscle.NewMapping(groups...)), nil
}
