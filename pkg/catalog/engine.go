package catalog

// Query answers a listing request over a snapshot of the whole catalog.
// Facet values come from the snapshot; facet counts, totals and the page come
// from the items sel matches.
func Query(universe []Item, sel Selection, pageSize int) Result {
	matched := Filter(universe, Compile(sel))

	return Result{
		Page:      Rank(matched, sel.Sort, sel.Page, pageSize),
		Facets:    BuildFacets(universe).Count(matched),
		Selection: sel,
	}
}
