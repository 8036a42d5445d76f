package vnmenu

// Command identifies a root menu row.
type Command int

const (
	CommandTalk Command = iota
	CommandInspect
	CommandLoad
	CommandSave
)

// CommandItem is a row of the root menu.
type CommandItem struct {
	Label   string
	Command Command
	Enabled bool
}

// RootState is the visibility/focus state of the root menu.
type RootState int

const (
	RootHidden RootState = iota
	RootFocused
	RootUnfocused
)

// RootMenu is the fixed horizontal Talk/Inspect/Load/Save command list.
type RootMenu struct {
	items []CommandItem
	index int
	state RootState
}

// NewRootMenu creates a hidden root menu. saveEnabled controls whether the Save row can be chosen.
func NewRootMenu(saveEnabled bool) *RootMenu {
	return &RootMenu{
		items: []CommandItem{
			{Label: "Talk", Command: CommandTalk, Enabled: true},
			{Label: "Inspect", Command: CommandInspect, Enabled: true},
			{Label: "Load", Command: CommandLoad, Enabled: true},
			{Label: "Save", Command: CommandSave, Enabled: saveEnabled},
		},
	}
}

// Items returns the menu rows in display order.
func (r *RootMenu) Items() []CommandItem {
	return r.items
}

func (r *RootMenu) Index() int {
	return r.index
}

func (r *RootMenu) State() RootState {
	return r.state
}

// Selected returns the row under the cursor.
func (r *RootMenu) Selected() CommandItem {
	return r.items[r.index]
}

// Open shows the menu focused on the first row.
func (r *RootMenu) Open() {
	r.index = 0
	r.state = RootFocused
}

// Focus gives focus back to the menu, keeping the cursor where it was.
func (r *RootMenu) Focus() {
	r.state = RootFocused
}

// Unfocus keeps the menu visible while a sub-list panel takes input.
func (r *RootMenu) Unfocus() {
	r.state = RootUnfocused
}

func (r *RootMenu) Hide() {
	r.state = RootHidden
}

// Next moves the cursor right, wrapping around.
func (r *RootMenu) Next() {
	r.index = (r.index + 1) % len(r.items)
}

// Prev moves the cursor left, wrapping around.
func (r *RootMenu) Prev() {
	r.index = (r.index - 1 + len(r.items)) % len(r.items)
}
