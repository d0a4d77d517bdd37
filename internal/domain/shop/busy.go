package shop

// ---------------------------------------------------------------------------
// BusyState represents the in-flight indicator for the page
// ---------------------------------------------------------------------------

// BusyScope discriminates what part of the page an operation is blocking.
type BusyScope string

const (
	// BusyScopeNone indicates no operation is in flight
	BusyScopeNone BusyScope = "NONE"
	// BusyScopePage indicates a whole-page operation (catalog load, cart clear)
	BusyScopePage BusyScope = "PAGE"
	// BusyScopeItem indicates a single row's operation (update, remove, detail)
	BusyScopeItem BusyScope = "ITEM"
)

// BusyState is a single scalar in-flight indicator. At most one item can be
// busy at a time; a second concurrent action overwrites the indicator. This is
// an accepted UI limitation, not a data-correctness issue, since every action
// still fully re-fetches the cart on completion.
type BusyState struct {
	// Scope is the busy discriminator
	Scope BusyScope
	// ItemID identifies the busy row when Scope is BusyScopeItem
	ItemID string
}

// BusyNone returns the idle state.
func BusyNone() BusyState {
	return BusyState{Scope: BusyScopeNone}
}

// BusyPage returns the whole-page busy state.
func BusyPage() BusyState {
	return BusyState{Scope: BusyScopePage}
}

// BusyItem returns the busy state for a single row.
func BusyItem(id string) BusyState {
	return BusyState{Scope: BusyScopeItem, ItemID: id}
}

// IsIdle returns true if nothing is in flight.
func (b BusyState) IsIdle() bool {
	return b.Scope == BusyScopeNone || b.Scope == ""
}

// IsPage returns true if a whole-page operation is in flight.
func (b BusyState) IsPage() bool {
	return b.Scope == BusyScopePage
}

// IsItem returns true if the given row's operation is in flight.
func (b BusyState) IsItem(id string) bool {
	return b.Scope == BusyScopeItem && b.ItemID == id
}
