package entity

// DialogKind is the type of in-page JavaScript dialog.
type DialogKind string

const (
	DialogAlert        DialogKind = "alert"
	DialogConfirm      DialogKind = "confirm"
	DialogPrompt       DialogKind = "prompt"
	DialogBeforeUnload DialogKind = "beforeunload"
)

// DialogRequest is an in-page dialog the engine wants to show.
type DialogRequest struct {
	Kind    DialogKind
	Message string
	// URL is the document URL the dialog was opened from, when known.
	URL string
	// Frame is the originating frame. Nil when the engine does not say which
	// frame opened the dialog.
	Frame *FrameInfo
	// DefaultPrompt is only set for prompt dialogs.
	DefaultPrompt string
}
