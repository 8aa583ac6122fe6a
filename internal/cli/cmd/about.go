package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/pagehost/internal/cli/styles"
)

var aboutShort bool

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if aboutShort {
			fmt.Println(a.BuildInfo.Version)
			return nil
		}
		fmt.Println(styles.NewAboutRenderer(a.Theme).Render(a.BuildInfo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
	aboutCmd.Flags().BoolVar(&aboutShort, "short", false, "print the version only")
}
