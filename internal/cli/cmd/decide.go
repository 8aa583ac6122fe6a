package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/pagehost/internal/cli/styles"
	"github.com/bnema/pagehost/internal/domain/entity"
	"github.com/bnema/pagehost/internal/domain/policy"
)

var (
	decideSubframe bool
	decideHome     string
	decideJSON     bool
)

var decideCmd = &cobra.Command{
	Use:   "decide <url>",
	Short: "Show how a navigation to url would be decided",
	Long: `Dry-run the navigation policy against the configured home URL.

Nothing is loaded and nothing is opened: the decision and the rule that
produced it are printed.

Examples:
  pagehost decide https://medium.com/some-story
  pagehost decide https://captcha.example/widget --subframe
  pagehost decide https://other.example --home https://example.com --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDecide,
}

func init() {
	rootCmd.AddCommand(decideCmd)

	decideCmd.Flags().BoolVar(&decideSubframe, "subframe", false, "treat the request as a subframe navigation")
	decideCmd.Flags().StringVar(&decideHome, "home", "", "home URL to decide against (default: home_url from config)")
	decideCmd.Flags().BoolVar(&decideJSON, "json", false, "output as JSON")
}

// decision is the printed outcome of a dry-run.
type decision struct {
	URL      string                `json:"url"`
	HomeHost string                `json:"home_host"`
	Decision string                `json:"decision"`
	Reason   entity.DecisionReason `json:"reason"`
	Subframe bool                  `json:"subframe"`
	// External is true when the URL would be handed to the system browser.
	External bool `json:"external"`

	result entity.NavigationDecision
}

func runDecide(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	home := decideHome
	if home == "" {
		home = a.Config.HomeURL
	}
	d, err := evaluate(home, args[0], decideSubframe)
	if err != nil {
		return err
	}

	if decideJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}
	fmt.Println(renderDecision(a.Theme, d))
	return nil
}

func evaluate(home, rawURL string, subframe bool) (decision, error) {
	decider, err := policy.NewNavigationDecider(home, nil)
	if err != nil {
		return decision{}, err
	}

	req := entity.NavigationRequest{URL: rawURL, Type: entity.NavigationTypeLinkActivated}
	if subframe {
		req.Target = &entity.FrameInfo{URL: rawURL, IsMainFrame: false}
	}
	result, reason := decider.Evaluate(req)

	return decision{
		URL:      rawURL,
		HomeHost: decider.HomeHost(),
		Decision: result.String(),
		Reason:   reason,
		Subframe: subframe,
		External: reason == entity.ReasonExternalHost,
		result:   result,
	}, nil
}

func renderDecision(t *styles.Theme, d decision) string {
	out := fmt.Sprintf("%s %s %s", t.DecisionBadge(d.result), t.Subtle.Render(string(d.Reason)), d.URL)
	if d.External {
		out += "\n" + t.Subtle.Render("  opens in the system browser (home host: "+d.HomeHost+")")
	}
	return out
}
