// Package vnmenu implements a visual-novel style interaction overlay: a Talk/Inspect/Load/Save
// root menu over two lists of map entities, classified by the annotation on their active page.
//
// The package owns no host state. It reads the map through MapView and acts through Host.
package vnmenu

// Annotation text that marks an entity for the Talk or Inspect list. The match is exact:
// the whole annotation of the active page must be the sentinel.
const (
	TalkSentinel    = "vn_npc"
	InspectSentinel = "vn_object"
)

// Tag classifies an entity for the overlay.
type Tag int

const (
	TagNone Tag = iota
	TagTalk
	TagInspect
)

func (t Tag) String() string {
	switch t {
	case TagTalk:
		return "talk"
	case TagInspect:
		return "inspect"
	default:
		return "none"
	}
}

// MapView is the read-only access the overlay needs to the entities on the current map.
type MapView interface {
	// EntityIDs returns every entity on the map in the host's iteration order.
	EntityIDs() []int
	// EntityName returns the display name of an entity.
	EntityName(id int) string
	// ActivePageAnnotation returns the annotation text of the entity's active page,
	// or "" when it has none.
	ActivePageAnnotation(id int) string
}

// TagOf classifies an entity by its current active-page annotation.
func TagOf(view MapView, id int) Tag {
	switch view.ActivePageAnnotation(id) {
	case TalkSentinel:
		return TagTalk
	case InspectSentinel:
		return TagInspect
	default:
		return TagNone
	}
}

// ListEntry is one selectable row of a sub-list panel.
type ListEntry struct {
	Label    string
	EntityID int
}

// BuildList returns the entities carrying tag, in map iteration order. It always reads
// current map state; results are never cached.
func BuildList(view MapView, tag Tag) []ListEntry {
	entries := make([]ListEntry, 0)
	for _, id := range view.EntityIDs() {
		if TagOf(view, id) != tag {
			continue
		}
		entries = append(entries, ListEntry{
			Label:    view.EntityName(id),
			EntityID: id,
		})
	}
	return entries
}
