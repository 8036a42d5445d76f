package vnmenu

import (
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntity struct {
	id         int
	name       string
	annotation string
}

// fakeMap is an ordered set of synthetic entities whose annotations can be changed between builds.
type fakeMap struct {
	entities []*fakeEntity
}

func (m *fakeMap) EntityIDs() []int {
	ids := make([]int, 0, len(m.entities))
	for _, e := range m.entities {
		ids = append(ids, e.id)
	}
	return ids
}

func (m *fakeMap) EntityName(id int) string {
	if e := m.find(id); e != nil {
		return e.name
	}
	return ""
}

func (m *fakeMap) ActivePageAnnotation(id int) string {
	if e := m.find(id); e != nil {
		return e.annotation
	}
	return ""
}

func (m *fakeMap) find(id int) *fakeEntity {
	for _, e := range m.entities {
		if e.id == id {
			return e
		}
	}
	return nil
}

// scenarioMap is A (talk), B (inspect), C (no annotation).
func scenarioMap() *fakeMap {
	return &fakeMap{entities: []*fakeEntity{
		{id: 1, name: "A", annotation: TalkSentinel},
		{id: 2, name: "B", annotation: InspectSentinel},
		{id: 3, name: "C"},
	}}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestTagOf(t *testing.T) {
	tests := []struct {
		annotation string
		expected   Tag
	}{
		{TalkSentinel, TagTalk},
		{InspectSentinel, TagInspect},
		{"", TagNone},
		{"vn_npc ", TagNone},
		{" vn_npc", TagNone},
		{"VN_NPC", TagNone},
		{"Vn_Object", TagNone},
		{"vn_np", TagNone},
		{"vn_npc_guard", TagNone},
		{"vn_npc\r\nshopkeeper", TagNone},
		{"vn_object\r\n", TagNone},
		{"npc", TagNone},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.annotation), func(t *testing.T) {
			view := &fakeMap{entities: []*fakeEntity{{id: 7, name: "X", annotation: tt.annotation}}}
			assert.Equal(t, tt.expected, TagOf(view, 7))
		})
	}
}

func TestTagOf_MissingEntity(t *testing.T) {
	assert.Equal(t, TagNone, TagOf(&fakeMap{}, 99))
}

func TestTag_String(t *testing.T) {
	assert.Equal(t, "talk", TagTalk.String())
	assert.Equal(t, "inspect", TagInspect.String())
	assert.Equal(t, "none", TagNone.String())
}

func TestBuildList_Scenario(t *testing.T) {
	view := scenarioMap()

	assert.Equal(t, []ListEntry{{Label: "A", EntityID: 1}}, BuildList(view, TagTalk))
	assert.Equal(t, []ListEntry{{Label: "B", EntityID: 2}}, BuildList(view, TagInspect))
}

func TestBuildList_PreservesMapOrder(t *testing.T) {
	view := &fakeMap{entities: []*fakeEntity{
		{id: 30, name: "Zed", annotation: TalkSentinel},
		{id: 10, name: "Barrel", annotation: InspectSentinel},
		{id: 20, name: "Anna", annotation: TalkSentinel},
		{id: 5, name: "Bob", annotation: "vn_npc!"},
		{id: 40, name: "Mara", annotation: TalkSentinel},
	}}

	got := BuildList(view, TagTalk)
	require.Len(t, got, 3)
	assert.Equal(t, []int{30, 20, 40}, []int{got[0].EntityID, got[1].EntityID, got[2].EntityID})
	assert.Equal(t, []string{"Zed", "Anna", "Mara"}, []string{got[0].Label, got[1].Label, got[2].Label})
}

func TestBuildList_Idempotent(t *testing.T) {
	view := scenarioMap()
	assert.Equal(t, BuildList(view, TagTalk), BuildList(view, TagTalk))
	assert.Equal(t, BuildList(view, TagInspect), BuildList(view, TagInspect))
}

func TestBuildList_ReflectsMapChanges(t *testing.T) {
	view := scenarioMap()
	require.Len(t, BuildList(view, TagTalk), 1)

	// C switches to a talk page, A loses its tag.
	view.entities[2].annotation = TalkSentinel
	view.entities[0].annotation = ""

	assert.Equal(t, []ListEntry{{Label: "C", EntityID: 3}}, BuildList(view, TagTalk))
}

func TestBuildList_Empty(t *testing.T) {
	got := BuildList(&fakeMap{}, TagTalk)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = BuildList(&fakeMap{entities: []*fakeEntity{{id: 1, name: "Rock"}}}, TagNone)
	assert.Len(t, got, 1, "TagNone lists untagged entities")
}
