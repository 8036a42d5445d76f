package gamemap

import "github.com/jwebster45206/vn-menu/pkg/conditionals"

// StateView reads a map through the lens of a game state, resolving each
// entity's active page on every call. It satisfies vnmenu.MapView.
type StateView struct {
	Map   *Map
	State conditionals.GameStateView
}

// NewStateView creates a view over m evaluated against gs.
func NewStateView(m *Map, gs conditionals.GameStateView) *StateView {
	return &StateView{Map: m, State: gs}
}

// EntityIDs returns entity ids in placement order.
func (v *StateView) EntityIDs() []int {
	if v.Map == nil {
		return nil
	}
	ids := make([]int, 0, len(v.Map.Entities))
	for _, e := range v.Map.Entities {
		if e != nil {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func (v *StateView) EntityName(id int) string {
	if e := v.entity(id); e != nil {
		return e.Name
	}
	return ""
}

// ActivePageAnnotation returns the comment text of the entity's active page,
// or "" when the entity is gone or has no active page.
func (v *StateView) ActivePageAnnotation(id int) string {
	e := v.entity(id)
	if e == nil {
		return ""
	}
	return e.ActivePage(v.State).Annotation()
}

func (v *StateView) entity(id int) *Entity {
	if v.Map == nil {
		return nil
	}
	return v.Map.Entity(id)
}
