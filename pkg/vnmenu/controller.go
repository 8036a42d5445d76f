package vnmenu

import "log/slog"

// Host is what the overlay needs from the game host.
type Host interface {
	// StartBehavior begins whatever interaction is bound to the entity.
	StartBehavior(entityID int)
	// OpenLoadScreen hands control to the host's load screen.
	OpenLoadScreen()
	// OpenSaveScreen hands control to the host's save screen.
	OpenSaveScreen()
	// ReturnScene closes the overlay scene and returns to the previous one.
	ReturnScene()
	// SaveEnabled reports whether saving is currently allowed.
	SaveEnabled() bool
}

// PanelKind identifies which sub-list panel is visible.
type PanelKind int

const (
	PanelNone PanelKind = iota
	PanelTalk
	PanelInspect
)

// Controller owns the root menu and both sub-list panels for a single overlay invocation.
type Controller struct {
	view    MapView
	host    Host
	logger  *slog.Logger
	root    *RootMenu
	talk    *Panel
	inspect *Panel
	visible PanelKind
	closed  bool
}

// NewController wires an overlay to a map view and a host. Call Open before dispatching input.
func NewController(view MapView, host Host, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		view:    view,
		host:    host,
		logger:  logger,
		root:    NewRootMenu(host.SaveEnabled()),
		talk:    NewPanel(TagTalk),
		inspect: NewPanel(TagInspect),
	}
}

// Open shows the root menu focused on Talk with both panels hidden.
func (c *Controller) Open() {
	c.talk.Close()
	c.inspect.Close()
	c.visible = PanelNone
	c.closed = false
	c.root.Open()
	c.logger.Debug("VN menu opened")
}

func (c *Controller) Root() *RootMenu { return c.root }
func (c *Controller) Talk() *Panel    { return c.talk }
func (c *Controller) Inspect() *Panel { return c.inspect }

// Visible returns the panel currently shown, if any.
func (c *Controller) Visible() PanelKind {
	return c.visible
}

// Closed reports whether the overlay has released control. A closed overlay ignores input.
func (c *Controller) Closed() bool {
	return c.closed
}

// ActivePanel returns the visible panel, or nil while the root menu has focus.
func (c *Controller) ActivePanel() *Panel {
	switch c.visible {
	case PanelTalk:
		return c.talk
	case PanelInspect:
		return c.inspect
	default:
		return nil
	}
}

func (c *Controller) Left() {
	if c.closed || c.visible != PanelNone {
		return
	}
	c.root.Prev()
}

func (c *Controller) Right() {
	if c.closed || c.visible != PanelNone {
		return
	}
	c.root.Next()
}

func (c *Controller) Up() {
	if c.closed {
		return
	}
	if p := c.ActivePanel(); p != nil {
		p.Up()
	}
}

func (c *Controller) Down() {
	if c.closed {
		return
	}
	if p := c.ActivePanel(); p != nil {
		p.Down()
	}
}

// Confirm activates the row under the cursor of whichever widget has focus.
func (c *Controller) Confirm() {
	if c.closed {
		return
	}
	if p := c.ActivePanel(); p != nil {
		c.confirmEntry(p)
		return
	}
	c.confirmCommand(c.root.Selected())
}

// Cancel backs out of the focused widget: a panel returns focus to the root menu,
// the root menu closes the overlay.
func (c *Controller) Cancel() {
	if c.closed {
		return
	}
	if p := c.ActivePanel(); p != nil {
		p.Close()
		c.visible = PanelNone
		c.root.Focus()
		return
	}
	c.close()
}

func (c *Controller) confirmCommand(item CommandItem) {
	if !item.Enabled {
		return
	}
	switch item.Command {
	case CommandTalk:
		c.openPanel(PanelTalk, c.talk)
	case CommandInspect:
		c.openPanel(PanelInspect, c.inspect)
	case CommandLoad:
		c.host.OpenLoadScreen()
	case CommandSave:
		c.host.OpenSaveScreen()
	}
}

func (c *Controller) openPanel(kind PanelKind, p *Panel) {
	p.Open(c.view)
	c.visible = kind
	c.root.Unfocus()
	c.logger.Debug("VN menu panel opened", "tag", p.Tag().String(), "entries", len(p.Entries()))
}

func (c *Controller) confirmEntry(p *Panel) {
	entry, ok := p.Selected()
	if !ok {
		return
	}
	c.close()
	c.logger.Debug("Starting entity behavior", "entity_id", entry.EntityID, "label", entry.Label)
	c.host.StartBehavior(entry.EntityID)
}

func (c *Controller) close() {
	c.closed = true
	c.talk.Close()
	c.inspect.Close()
	c.visible = PanelNone
	c.root.Hide()
	c.host.ReturnScene()
}
