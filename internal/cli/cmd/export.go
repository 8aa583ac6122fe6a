package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/pagehost/internal/application/usecase"
	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/infrastructure/filesystem"
	"github.com/bnema/pagehost/internal/logging"
)

var (
	exportFormat  string
	exportDir     string
	exportTimeout time.Duration
)

var exportCmd = &cobra.Command{
	Use:   "export <url>",
	Short: "Render a page as PDF and/or PNG",
	Long: `Load url in the engine and save it as a PDF document, a PNG image, or both.

Files are written to export.dir (default: $XDG_DATA_HOME/pagehost/exports).
When one format fails the others are still saved.

Examples:
  pagehost export https://medium.com/
  pagehost export https://medium.com/ --format pdf --dir .`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "all", "pdf, png or all")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "output directory (default: export.dir from config)")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", defaultLoadTimeout, "how long to wait for the page to load")
}

func runExport(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	formats, err := entity.ParseExportFormats(exportFormat)
	if err != nil {
		return err
	}
	dir := exportDir
	if dir == "" {
		dir = a.Config.Export.Dir
	}

	ctx, stop := signalContext(a)
	defer stop()

	lp, err := openLoadedPage(ctx, a, args[0], exportTimeout)
	if err != nil {
		return err
	}
	defer lp.Close(ctx)

	state, err := lp.page.State(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to read page state")
		state.URL = lp.url
	}

	uc := usecase.NewExportPageUseCase(filesystem.New(), dir, a.Config.Export.PrintBackground)
	out, err := uc.Execute(ctx, usecase.ExportPageInput{
		Page:    lp.page,
		Formats: formats,
		Title:   state.Title,
		URL:     state.URL,
	})
	if out != nil {
		t := a.Theme
		for _, art := range out.Artifacts {
			fmt.Printf("%s %s\n", t.Badge.Render(string(art.Format)), art.Path)
		}
		failed := make([]string, 0, len(out.Failed))
		for f := range out.Failed {
			failed = append(failed, string(f))
		}
		sort.Strings(failed)
		for _, f := range failed {
			fmt.Printf("%s %v\n", t.BadgeMuted.Render(f), out.Failed[entity.ExportFormat(f)])
		}
	}
	return err
}
