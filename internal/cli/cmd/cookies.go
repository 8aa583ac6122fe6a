package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/pagehost/internal/application/usecase"
	"github.com/bnema/pagehost/internal/cli/styles"
	"github.com/bnema/pagehost/internal/domain/entity"
	urlutil "github.com/bnema/pagehost/internal/domain/url"
)

var (
	cookiesURL     string
	cookiesDomain  string
	cookiesJSON    bool
	cookiesTimeout time.Duration

	cookiePath     string
	cookieSecure   bool
	cookieHTTPOnly bool
	cookieSameSite string
	cookieExpires  time.Duration
)

var cookiesCmd = &cobra.Command{
	Use:   "cookies",
	Short: "List and set cookies of the engine's data store",
	Long: `Inspect the cookie store the page runs with.

Both subcommands load a page first (--url, default home_url). Cookies only
outlive the command when engine.persistent_data_store is enabled.`,
}

var cookiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cookies",
	Long: `List cookies, optionally filtered by domain.

Examples:
  pagehost cookies list
  pagehost cookies list --domain medium.com --json`,
	Args: cobra.NoArgs,
	RunE: runCookiesList,
}

var cookiesSetCmd = &cobra.Command{
	Use:   "set <name=value>",
	Short: "Set a cookie",
	Long: `Store a cookie, then list the matching cookies.

The domain defaults to the host of --url.

Examples:
  pagehost cookies set theme=dark
  pagehost cookies set session=abc --domain .medium.com --secure --expires 24h`,
	Args: cobra.ExactArgs(1),
	RunE: runCookiesSet,
}

func init() {
	rootCmd.AddCommand(cookiesCmd)
	cookiesCmd.AddCommand(cookiesListCmd, cookiesSetCmd)

	cookiesCmd.PersistentFlags().StringVar(&cookiesURL, "url", "", "page to load first (default: home_url from config)")
	cookiesCmd.PersistentFlags().StringVar(&cookiesDomain, "domain", "", "cookie domain")
	cookiesCmd.PersistentFlags().DurationVar(&cookiesTimeout, "timeout", defaultLoadTimeout, "how long to wait for the page to load")
	cookiesListCmd.Flags().BoolVar(&cookiesJSON, "json", false, "output as JSON")

	cookiesSetCmd.Flags().StringVar(&cookiePath, "path", "/", "cookie path")
	cookiesSetCmd.Flags().BoolVar(&cookieSecure, "secure", false, "send only over https")
	cookiesSetCmd.Flags().BoolVar(&cookieHTTPOnly, "http-only", false, "hide from page scripts")
	cookiesSetCmd.Flags().StringVar(&cookieSameSite, "same-site", "", "strict, lax or none")
	cookiesSetCmd.Flags().DurationVar(&cookieExpires, "expires", 0, "lifetime; 0 makes a session cookie")
}

func runCookiesList(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx, stop := signalContext(a)
	defer stop()

	lp, err := openLoadedPage(ctx, a, cookiesPageURL(a.Config.HomeURL), cookiesTimeout)
	if err != nil {
		return err
	}
	defer lp.Close(ctx)

	cookies, err := usecase.NewManageCookiesUseCase().List(ctx, lp.page, cookiesDomain)
	if err != nil {
		return err
	}
	if cookiesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cookies)
	}
	printCookies(a.Theme, cookies)
	return nil
}

func runCookiesSet(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	pageURL := cookiesPageURL(a.Config.HomeURL)
	cookie, err := parseCookieArg(args[0], pageURL)
	if err != nil {
		return err
	}

	ctx, stop := signalContext(a)
	defer stop()

	lp, err := openLoadedPage(ctx, a, pageURL, cookiesTimeout)
	if err != nil {
		return err
	}
	defer lp.Close(ctx)

	uc := usecase.NewManageCookiesUseCase()
	if err := uc.Set(ctx, lp.page, cookie); err != nil {
		return err
	}
	cookies, err := uc.List(ctx, lp.page, cookie.Domain)
	if err != nil {
		return err
	}
	printCookies(a.Theme, cookies)
	return nil
}

func cookiesPageURL(home string) string {
	if cookiesURL != "" {
		return cookiesURL
	}
	return home
}

// parseCookieArg builds a cookie from "name=value" and the set flags.
func parseCookieArg(arg, pageURL string) (entity.Cookie, error) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok {
		return entity.Cookie{}, fmt.Errorf("expected name=value, got %q", arg)
	}
	sameSite, err := entity.ParseSameSite(cookieSameSite)
	if err != nil {
		return entity.Cookie{}, err
	}

	domain := cookiesDomain
	if domain == "" {
		domain = urlutil.Host(pageURL)
	}
	c := entity.Cookie{
		Name:     strings.TrimSpace(name),
		Value:    value,
		Domain:   domain,
		Path:     cookiePath,
		Secure:   cookieSecure,
		HTTPOnly: cookieHTTPOnly,
		SameSite: sameSite,
		Session:  cookieExpires <= 0,
	}
	if !c.Session {
		c.Expires = time.Now().Add(cookieExpires)
	}
	return c, c.Validate()
}

func printCookies(t *styles.Theme, cookies []entity.Cookie) {
	if len(cookies) == 0 {
		fmt.Println(t.Subtle.Render("no cookies"))
		return
	}
	for _, c := range cookies {
		flags := make([]string, 0, 3)
		if c.Secure {
			flags = append(flags, "secure")
		}
		if c.HTTPOnly {
			flags = append(flags, "httponly")
		}
		if c.SameSite != entity.SameSiteUnset {
			flags = append(flags, strings.ToLower(string(c.SameSite)))
		}
		expiry := "session"
		if !c.Session && !c.Expires.IsZero() {
			expiry = c.Expires.Format(time.RFC3339)
		}
		fmt.Printf("%s %s=%s %s %s\n",
			t.Badge.Render(c.Domain),
			c.Name,
			styles.Truncate(c.Value, 40),
			t.Subtle.Render(c.Path+" "+strings.Join(flags, ",")),
			t.Subtle.Render(expiry),
		)
	}
}
