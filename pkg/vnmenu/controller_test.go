package vnmenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHost records every call the overlay makes, plus whether the overlay
// was already closed when a behavior started.
type recordingHost struct {
	calls            []string
	started          []int
	closedAtStart    []bool
	controller       *Controller
	saveDisabled     bool
	returnSceneCalls int
}

func (h *recordingHost) StartBehavior(entityID int) {
	h.calls = append(h.calls, "start")
	h.started = append(h.started, entityID)
	if h.controller != nil {
		h.closedAtStart = append(h.closedAtStart, h.controller.Closed())
	}
}

func (h *recordingHost) OpenLoadScreen() { h.calls = append(h.calls, "load") }
func (h *recordingHost) OpenSaveScreen() { h.calls = append(h.calls, "save") }
func (h *recordingHost) SaveEnabled() bool {
	return !h.saveDisabled
}

func (h *recordingHost) ReturnScene() {
	h.calls = append(h.calls, "return")
	h.returnSceneCalls++
}

func openController(t *testing.T, view MapView, host *recordingHost) *Controller {
	t.Helper()
	c := NewController(view, host, testLogger())
	host.controller = c
	c.Open()
	return c
}

func TestController_Open(t *testing.T) {
	host := &recordingHost{}
	c := openController(t, scenarioMap(), host)

	assert.Equal(t, RootFocused, c.Root().State())
	assert.Equal(t, 0, c.Root().Index())
	assert.Equal(t, CommandTalk, c.Root().Selected().Command)
	assert.Equal(t, PanelHidden, c.Talk().State())
	assert.Equal(t, PanelHidden, c.Inspect().State())
	assert.Equal(t, PanelNone, c.Visible())
	assert.False(t, c.Closed())
	assert.Empty(t, host.calls)
}

func TestController_RootNavigationWraps(t *testing.T) {
	c := openController(t, scenarioMap(), &recordingHost{})

	c.Left()
	assert.Equal(t, CommandSave, c.Root().Selected().Command)
	c.Right()
	assert.Equal(t, CommandTalk, c.Root().Selected().Command)
	c.Right()
	c.Right()
	assert.Equal(t, CommandLoad, c.Root().Selected().Command)
}

func TestController_TalkThenCancel(t *testing.T) {
	host := &recordingHost{}
	c := openController(t, scenarioMap(), host)

	c.Confirm()
	require.Equal(t, PanelTalk, c.Visible())
	assert.Equal(t, PanelActive, c.Talk().State())
	assert.Equal(t, RootUnfocused, c.Root().State())
	assert.Equal(t, 0, c.Talk().Index())

	c.Cancel()
	assert.Equal(t, PanelNone, c.Visible())
	assert.Equal(t, PanelHidden, c.Talk().State())
	assert.Equal(t, -1, c.Talk().Index())
	assert.Equal(t, RootFocused, c.Root().State())
	assert.False(t, c.Closed())
	assert.Empty(t, host.started, "no behavior should be started")
	assert.Empty(t, host.calls)
}

func TestController_TalkEntryStartsBehaviorAfterClose(t *testing.T) {
	host := &recordingHost{}
	c := openController(t, scenarioMap(), host)

	c.Confirm() // Talk
	c.Confirm() // A

	assert.Equal(t, []int{1}, host.started, "exactly A's behavior should start")
	assert.Equal(t, []string{"return", "start"}, host.calls)
	assert.Equal(t, []bool{true}, host.closedAtStart, "overlay must be closed before the behavior starts")
	assert.True(t, c.Closed())
	assert.Equal(t, RootHidden, c.Root().State())
	assert.Equal(t, PanelHidden, c.Talk().State())
}

func TestController_InspectEntry(t *testing.T) {
	host := &recordingHost{}
	c := openController(t, scenarioMap(), host)

	c.Right() // Inspect
	c.Confirm()
	require.Equal(t, PanelInspect, c.Visible())
	assert.Equal(t, []ListEntry{{Label: "B", EntityID: 2}}, c.Inspect().Entries())

	c.Confirm()
	assert.Equal(t, []int{2}, host.started)
}

func TestController_LoadDelegates(t *testing.T) {
	host := &recordingHost{}
	c := openController(t, scenarioMap(), host)

	c.Right()
	c.Right()
	c.Confirm()

	assert.Equal(t, []string{"load"}, host.calls)
	assert.Empty(t, host.started)
	assert.False(t, c.Closed(), "overlay stays behind the load screen")
	assert.Equal(t, RootFocused, c.Root().State())
}

func TestController_SaveDelegates(t *testing.T) {
	host := &recordingHost{}
	c := openController(t, scenarioMap(), host)

	c.Left()
	c.Confirm()

	assert.Equal(t, []string{"save"}, host.calls)
	assert.Empty(t, host.started)
}

func TestController_SaveDisabled(t *testing.T) {
	host := &recordingHost{saveDisabled: true}
	c := openController(t, scenarioMap(), host)

	c.Left()
	require.Equal(t, CommandSave, c.Root().Selected().Command)
	assert.False(t, c.Root().Selected().Enabled)
	c.Confirm()

	assert.Empty(t, host.calls)
}

func TestController_CancelClosesOverlay(t *testing.T) {
	host := &recordingHost{}
	c := openController(t, scenarioMap(), host)

	c.Cancel()
	assert.True(t, c.Closed())
	assert.Equal(t, 1, host.returnSceneCalls)

	// Closed overlay is inert.
	c.Confirm()
	c.Cancel()
	c.Right()
	c.Down()
	assert.Equal(t, []string{"return"}, host.calls)
}

func TestController_EmptyPanel(t *testing.T) {
	host := &recordingHost{}
	view := &fakeMap{entities: []*fakeEntity{{id: 1, name: "Rock"}}}
	c := openController(t, view, host)

	assert.NotPanics(t, func() { c.Confirm() })
	require.Equal(t, PanelTalk, c.Visible())
	assert.Equal(t, PanelActive, c.Talk().State())
	assert.Empty(t, c.Talk().Entries())
	assert.Equal(t, -1, c.Talk().Index())

	assert.NotPanics(t, func() {
		c.Down()
		c.Up()
		c.Confirm()
	})
	assert.Equal(t, PanelTalk, c.Visible(), "confirm on an empty panel is a no-op")
	assert.Empty(t, host.calls)

	c.Cancel()
	assert.Equal(t, PanelNone, c.Visible())
	assert.Equal(t, RootFocused, c.Root().State())
}

func TestController_PanelRefreshesOnEveryOpen(t *testing.T) {
	view := scenarioMap()
	c := openController(t, view, &recordingHost{})

	c.Confirm()
	require.Len(t, c.Talk().Entries(), 1)
	c.Cancel()

	view.entities[2].annotation = TalkSentinel
	c.Confirm()
	assert.Equal(t, []ListEntry{{Label: "A", EntityID: 1}, {Label: "C", EntityID: 3}}, c.Talk().Entries())
	assert.Equal(t, 0, c.Talk().Index(), "selection resets on reopen")
}

func TestController_PanelNavigation(t *testing.T) {
	view := &fakeMap{entities: []*fakeEntity{
		{id: 1, name: "A", annotation: TalkSentinel},
		{id: 2, name: "B", annotation: TalkSentinel},
		{id: 3, name: "C", annotation: TalkSentinel},
	}}
	host := &recordingHost{}
	c := openController(t, view, host)

	c.Confirm()
	c.Down()
	c.Down()
	assert.Equal(t, 2, c.Talk().Index())
	c.Down()
	assert.Equal(t, 0, c.Talk().Index(), "wraps to the top")
	c.Up()
	assert.Equal(t, 2, c.Talk().Index(), "wraps to the bottom")

	// Left/right do nothing while a panel has focus.
	c.Right()
	assert.Equal(t, CommandTalk, c.Root().Selected().Command)

	c.Confirm()
	assert.Equal(t, []int{3}, host.started)
}
