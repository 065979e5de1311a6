package escposdoc

// IndexEntry is one row of the command index.
type IndexEntry struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	DetailReference string `json:"detailReference"`
}

// String renders the entry as "<code> - <name> (<detailReference>)".
func (e IndexEntry) String() string {
	return e.Code + " - " + e.Name + " (" + e.DetailReference + ")"
}

// DetailReferences returns the detail page names of the entries in index order.
func DetailReferences(entries []IndexEntry) []string {
	refs := make([]string, 0, len(entries))
	for _, e := range entries {
		refs = append(refs, e.DetailReference)
	}
	return refs
}
