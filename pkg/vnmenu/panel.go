package vnmenu

// PanelState is the visibility state of a sub-list panel.
type PanelState int

const (
	PanelHidden PanelState = iota
	PanelActive
)

// Panel is a vertical, scrollable list of entities bound to one tag.
type Panel struct {
	tag     Tag
	entries []ListEntry
	index   int // -1 when nothing is selected
	top     int // first visible row
	rows    int // visible rows; 0 means unlimited
	state   PanelState
}

// NewPanel creates a hidden panel listing entities tagged tag.
func NewPanel(tag Tag) *Panel {
	return &Panel{tag: tag, index: -1}
}

func (p *Panel) Tag() Tag {
	return p.tag
}

func (p *Panel) State() PanelState {
	return p.state
}

// Entries returns the rows built by the last Open.
func (p *Panel) Entries() []ListEntry {
	return p.entries
}

// Index returns the selected row, or -1 when nothing is selected.
func (p *Panel) Index() int {
	return p.index
}

// Top returns the first visible row index.
func (p *Panel) Top() int {
	return p.top
}

// SetVisibleRows sets how many rows fit on screen so the panel can keep the
// selection in view.
func (p *Panel) SetVisibleRows(rows int) {
	if rows < 0 {
		rows = 0
	}
	p.rows = rows
	p.scrollToSelection()
}

// VisibleEntries returns the rows currently scrolled into view.
func (p *Panel) VisibleEntries() []ListEntry {
	if p.rows == 0 || len(p.entries) <= p.rows {
		return p.entries
	}
	end := p.top + p.rows
	if end > len(p.entries) {
		end = len(p.entries)
	}
	return p.entries[p.top:end]
}

// Open rebuilds the list from current map state and activates the panel
// with the first row selected.
func (p *Panel) Open(view MapView) {
	p.entries = BuildList(view, p.tag)
	p.top = 0
	p.index = -1
	if len(p.entries) > 0 {
		p.index = 0
	}
	p.state = PanelActive
}

// Close hides the panel and discards the selection.
func (p *Panel) Close() {
	p.state = PanelHidden
	p.index = -1
	p.top = 0
}

// Selected returns the entry under the cursor.
func (p *Panel) Selected() (ListEntry, bool) {
	if p.index < 0 || p.index >= len(p.entries) {
		return ListEntry{}, false
	}
	return p.entries[p.index], true
}

// Down moves the cursor to the next row, wrapping around.
func (p *Panel) Down() {
	if len(p.entries) == 0 {
		return
	}
	p.index = (p.index + 1) % len(p.entries)
	p.scrollToSelection()
}

// Up moves the cursor to the previous row, wrapping around.
func (p *Panel) Up() {
	if len(p.entries) == 0 {
		return
	}
	p.index = (p.index - 1 + len(p.entries)) % len(p.entries)
	p.scrollToSelection()
}

func (p *Panel) scrollToSelection() {
	if p.rows == 0 || p.index < 0 {
		p.top = 0
		return
	}
	if p.index < p.top {
		p.top = p.index
	}
	if p.index >= p.top+p.rows {
		p.top = p.index - p.rows + 1
	}
}
