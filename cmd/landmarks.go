package cmd

import (
	"fmt"

	"muscle-overlay/internal/landmark"

	"github.com/spf13/cobra"
)

var landmarksCmd = &cobra.Command{
	Use:   "landmarks IMAGE",
	Short: "Resolve and print the landmarks of an image",
	Long: `Resolve the landmarks of IMAGE with the configured provider and print how
many were found. With --json the pixel coordinates are printed as a
detection document that can be saved as a sidecar file.

Examples:
  muscle-overlay landmarks face.jpg
  muscle-overlay landmarks face.jpg --json > face.jpg.landmarks.json`,
	Args: cobra.ExactArgs(1),
	RunE: runLandmarks,
}

func init() {
	rootCmd.AddCommand(landmarksCmd)

	landmarksCmd.Flags().Bool("json", false, "Print pixel coordinates as JSON")
}

func runLandmarks(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	_, lm, err := loadFace(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if !asJSON {
		fmt.Printf("%s: %d landmarks\n", args[0], lm.Len())
		if lm.Len() != landmark.FaceMeshSize {
			log.Warn().Int("expected", landmark.FaceMeshSize).Int("got", lm.Len()).Msg("Unexpected landmark count")
		}
		return nil
	}

	data, err := landmark.Encode(lm)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
