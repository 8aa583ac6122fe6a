package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/pagehost/internal/application/usecase"
	"github.com/bnema/pagehost/internal/cli/model"
)

var (
	historyJSON    bool
	historyMax     int
	historySession string
)

const defaultHistoryMax = 50

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse the navigation log",
	Long: `Show the navigation policy decisions recorded during browse sessions:
which URLs were loaded in place and which were handed to the system browser.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every navigation log record",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().IntVar(&historyMax, "max", defaultHistoryMax, "maximum records to show")
	historyCmd.Flags().StringVar(&historySession, "session", "", "only show one browse session")
}

func runHistory(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	input := usecase.NavigationLogInput{SessionID: historySession, Limit: historyMax}

	if historyJSON {
		out, err := a.NavigationLogUC.List(a.Ctx(), input)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	m := model.NewHistoryModel(a.Ctx(), a.Theme, a.NavigationLogUC, input)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runHistoryClear(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if err := a.NavigationLogUC.Prune(a.Ctx(), 0); err != nil {
		return err
	}
	fmt.Println(a.Theme.SuccessStyle.Render("navigation log cleared"))
	return nil
}
