// Package build provides domain entities for build information.
package build

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// ApplicationName is appended to the engine user agent.
const ApplicationName = "pagehost"

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/pagehost"
}

// UserAgentSuffix returns the token identifying pagehost in user agents.
func (i Info) UserAgentSuffix() string {
	v := i.Version
	if v == "" {
		v = "dev"
	}
	return ApplicationName + "/" + v
}
