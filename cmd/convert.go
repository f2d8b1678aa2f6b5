package cmd

import (
	"strings"

	"muscle-overlay/internal/muscle"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [MAPPING] [DEFINITION]",
	Short: "Turn a picked mapping into a render definition",
	Long: `Pair the <name>_origin and <name>_insertion groups of a mapping file into
muscles of a render definition file. Colors come from convert.colors in
the config file or a built-in palette. Groups without a partner are
reported and skipped.

MAPPING defaults to picker.output and DEFINITION to render.definition.

Examples:
  muscle-overlay convert
  muscle-overlay convert muscle_points.yaml muscles.yaml`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := settings.Picker.Output, settings.Render.Definition
	if len(args) > 0 {
		in = args[0]
	}
	if len(args) > 1 {
		out = args[1]
	}

	mapping, err := muscle.LoadMapping(in)
	if err != nil {
		return err
	}

	def, report := muscle.Convert(mapping, muscle.ConvertOptions{Colors: settings.Convert.Colors})
	if len(report.Unpaired) > 0 {
		log.Warn().Str("groups", strings.Join(report.Unpaired, ", ")).Msg("Skipped groups without origin/insertion partner")
	}

	if err := muscle.SaveDefinition(out, def); err != nil {
		return err
	}
	log.Info().Str("output", out).Int("muscles", len(def.Muscles)).Msg("Wrote definition")
	return nil
}
