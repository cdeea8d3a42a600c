package inventory

// Session is the caller-owned context for one loaded export. It holds the
// decoded document and the products of the eager expansion pass; every
// later pipeline call reads from it without touching shared state, so two
// sessions never interfere.
type Session struct {
	Raw      []Item
	Expanded []Item
	Options  Options
}

// NewSession expands the raw item set and scans its filter options.
func NewSession(raw []Item) *Session {
	expanded := Expand(raw)
	return &Session{
		Raw:      raw,
		Expanded: expanded,
		Options:  ScanOptions(expanded),
	}
}

// View runs the filter/group/sort tail of the pipeline and returns the
// ordered view. The session itself is not modified; calling View again
// with different configs recomputes from the same expanded set.
func (s *Session) View(filter FilterConfig, sortCfg SortConfig) Grouped {
	grouped := GroupItems(Filter(s.Expanded, filter))
	SortGroups(grouped, sortCfg)
	return grouped
}
