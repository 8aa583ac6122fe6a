package entity

// NavigationID identifies one navigation in the engine. Empty when the page
// has not navigated yet.
type NavigationID string

// PageState is a snapshot of the observable page state.
type PageState struct {
	URL          string
	Title        string
	IsLoading    bool
	NavigationID NavigationID
	CanGoBack    bool
	CanGoForward bool
}

// PageChange is the key the host watches to react to new content: a change
// of either the navigation id or the url.
type PageChange struct {
	NavigationID NavigationID
	URL          string
}

// Change returns the page-change key of the state.
func (s PageState) Change() PageChange {
	return PageChange{NavigationID: s.NavigationID, URL: s.URL}
}

// PageEventKind is a load lifecycle transition.
type PageEventKind int

const (
	PageLoadStarted PageEventKind = iota
	PageLoadCommitted
	PageLoadFinished
	PageLoadFailed
	PageTitleChanged
)

// String returns a human-readable representation of the event kind.
func (k PageEventKind) String() string {
	switch k {
	case PageLoadStarted:
		return "started"
	case PageLoadCommitted:
		return "committed"
	case PageLoadFinished:
		return "finished"
	case PageLoadFailed:
		return "failed"
	case PageTitleChanged:
		return "title"
	default:
		return "unknown"
	}
}

// PageEvent is emitted by the engine adapter on main-frame load transitions.
type PageEvent struct {
	Kind         PageEventKind
	NavigationID NavigationID
	URL          string
	Title        string
	Err          string
}

// HistoryItem is one entry of the back/forward list.
type HistoryItem struct {
	ID    int
	URL   string
	Title string
}

// BackForwardList splits session history around the current item.
// BackList is ordered oldest first, so its last element is the previous page.
type BackForwardList struct {
	BackList    []HistoryItem
	Current     *HistoryItem
	ForwardList []HistoryItem
}

// Previous returns the item a "back" action loads.
func (l BackForwardList) Previous() (HistoryItem, bool) {
	if len(l.BackList) == 0 {
		return HistoryItem{}, false
	}
	return l.BackList[len(l.BackList)-1], true
}

// Next returns the item a "forward" action loads.
func (l BackForwardList) Next() (HistoryItem, bool) {
	if len(l.ForwardList) == 0 {
		return HistoryItem{}, false
	}
	return l.ForwardList[0], true
}

// NewBackForwardList splits entries at index current.
// An out-of-range index yields an empty list.
func NewBackForwardList(entries []HistoryItem, current int) BackForwardList {
	if current < 0 || current >= len(entries) {
		return BackForwardList{}
	}
	cur := entries[current]
	back := make([]HistoryItem, current)
	copy(back, entries[:current])
	fwd := make([]HistoryItem, len(entries)-current-1)
	copy(fwd, entries[current+1:])
	return BackForwardList{BackList: back, Current: &cur, ForwardList: fwd}
}
