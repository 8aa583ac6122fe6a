package styles

// Nerd Font icons.
const (
	IconGlobe     = "\uf0ac" // browser/web
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning

	IconArrowLeft  = "\uf060" // arrow left
	IconArrowRight = "\uf061" // arrow right
	IconArrowUp    = "\uf062" // arrow up
	IconShare      = "\uf1e0" // share
	IconDatabase   = "\uf1c0" // database
	IconConfig     = "\ue615" // config
	IconInfo       = "\uf05a" // info circle
	IconPaint      = "\uf1fc" // paint brush
)
