package gamemap

import (
	"strings"

	"github.com/jwebster45206/vn-menu/pkg/conditionals"
)

// AnnotationSeparator joins the lines of a multi-line comment.
const AnnotationSeparator = "\r\n"

// Page is one event page of an entity. Exactly one page (or none) is active at a time.
type Page struct {
	When *conditionals.When `json:"when,omitempty"` // nil = always eligible
	List []Command          `json:"list,omitempty"`
}

// Command is a single event command on a page.
type Command struct {
	Code       int      `json:"code"`
	Indent     int      `json:"indent,omitempty"`
	Parameters []string `json:"parameters,omitempty"`
}

// Param returns the i-th parameter, or "" when absent.
func (c Command) Param(i int) string {
	if i < 0 || i >= len(c.Parameters) {
		return ""
	}
	return c.Parameters[i]
}

// ActivePage returns the page currently in effect for the entity: the last page
// whose condition holds. Returns nil when no page holds.
func (e *Entity) ActivePage(gsView conditionals.GameStateView) *Page {
	for i := len(e.Pages) - 1; i >= 0; i-- {
		if conditionals.Holds(e.Pages[i].When, gsView) {
			return &e.Pages[i]
		}
	}
	return nil
}

// Annotation joins the text of every comment command on the page, in order.
func (p *Page) Annotation() string {
	if p == nil || len(p.List) == 0 {
		return ""
	}
	var lines []string
	for _, cmd := range p.List {
		if cmd.Code != CodeComment && cmd.Code != CodeCommentExtra {
			continue
		}
		lines = append(lines, cmd.Param(0))
	}
	return strings.Join(lines, AnnotationSeparator)
}
