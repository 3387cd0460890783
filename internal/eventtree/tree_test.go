package eventtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftlview/internal/data"
	"ftlview/internal/resolve"
)

func decodeEvents(t *testing.T, js string) []*data.EventNode {
	t.Helper()
	ds, err := data.Decode(strings.NewReader(`{"sectors":[{"ID":"S","events":` + js + `}]}`))
	require.NoError(t, err)
	return ds.Sectors[0].Events
}

func testResolver() *resolve.Resolver {
	return resolve.New(data.Blueprints{
		Weapons: []data.Weapon{{Name: "laser1", Title: "Basic Laser"}},
		Crew:    []data.Crew{{Name: "human", Title: "Human"}},
	})
}

const nestedEvents = `[
  {
    "id": "ROOT",
    "text": "root text",
    "events": [
      {"Name": "CHILD_A", "events": [{"Name": "GRANDCHILD"}]},
      {"Name": "CHILD_B", "text": "[System event - removed for brevity]"}
    ],
    "Ships": [{"Name": "PIRATE", "AutoBlueprint": "PIRATE_AUTO", "Events": [{"Name": "SHIP_EVENT"}]}],
    "quests": [{"EventName": "QUEST_X", "Name": "Quest X", "Text": "quest text", "Events": [{"Name": "Q_CHILD"}]}],
    "crew": [{"name": "human"}]
  },
  {"Name": "LEAF", "text": "just text"}
]`

func TestScenarioSingleWeaponGrant(t *testing.T) {
	events := decodeEvents(t, `[{"Name":"E1","Events":[],"weapons":[{"Name":"laser1","rarity":0}]}]`)
	tree := Build(events, testResolver())

	require.Len(t, tree.Roots, 1)
	root := tree.Roots[0]
	assert.Equal(t, "E1", root.Label)
	assert.True(t, root.Expandable())
	assert.Empty(t, tree.Children(root))

	require.Len(t, root.Tags, 1)
	require.Len(t, root.Tags[0].Tags, 1)
	assert.Equal(t, Tag{Category: resolve.Weapon, Key: "laser1", Title: "Basic Laser"}, root.Tags[0].Tags[0])
}

func TestExpandableIffChildCollection(t *testing.T) {
	tests := []struct {
		name string
		js   string
		want bool
	}{
		{"empty", `[{"Name":"E"}]`, false},
		{"empty lists", `[{"Name":"E","events":[],"Events":[],"Ships":[],"weapons":[],"quests":[]}]`, false},
		{"long text only", `[{"Name":"E","text":"` + strings.Repeat("a", 300) + `"}]`, false},
		{"lower events", `[{"Name":"E","events":[{"Name":"C"}]}]`, true},
		{"upper events", `[{"Name":"E","Events":[{"Name":"C"}]}]`, true},
		{"ships", `[{"Name":"E","Ships":[{"Name":"S"}]}]`, true},
		{"crew", `[{"Name":"E","crew":[{"name":"human"}]}]`, true},
		{"augments", `[{"Name":"E","augments":[{"Name":"A"}]}]`, true},
		{"drones", `[{"Name":"E","drones":[{"Name":"D"}]}]`, true},
		{"quests", `[{"Name":"E","quests":[{"EventName":"Q"}]}]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := Build(decodeEvents(t, tt.js), nil)
			require.Len(t, tree.Roots, 1)
			assert.Equal(t, tt.want, tree.Roots[0].Expandable())
		})
	}
}

func TestChildOrderAndSyntheticNodes(t *testing.T) {
	tree := Build(decodeEvents(t, nestedEvents), testResolver())
	root := tree.Roots[0]

	children := tree.Children(root)
	require.Len(t, children, 4)
	assert.Equal(t, "CHILD_A", children[0].Label)
	assert.Equal(t, "CHILD_B", children[1].Label)
	assert.True(t, children[1].Suppressed)

	ship := children[2]
	assert.Equal(t, KindShip, ship.Kind)
	assert.Equal(t, "PIRATE", ship.Label)
	assert.Equal(t, "Auto Blueprint: PIRATE_AUTO", ship.Text)
	assert.Equal(t, "0/ships/0", ship.Path)

	quest := children[3]
	assert.Equal(t, KindQuest, quest.Kind)
	assert.Equal(t, "QUEST_X", quest.Label)
	assert.Equal(t, "Quest X", quest.Name)
	assert.Equal(t, "quest-QUEST_X", quest.Anchor)

	assert.Equal(t, "Human", root.Tags[0].Tags[0].Title)
}

func TestInitialCollapseAndToggleIndependence(t *testing.T) {
	tree := Build(decodeEvents(t, nestedEvents), nil)
	root := tree.Roots[0]
	childA := tree.Children(root)[0]

	assert.False(t, tree.Collapsed(root))
	assert.True(t, tree.Collapsed(childA))

	require.True(t, tree.Toggle(childA.Path))
	assert.False(t, tree.Collapsed(childA))

	// collapsing the parent hides the child but keeps its own state
	require.True(t, tree.Toggle(root.Path))
	assert.True(t, tree.Collapsed(root))
	assert.False(t, tree.Collapsed(childA))
	assert.Len(t, tree.Visible(), 2)

	require.True(t, tree.Toggle(root.Path))
	labels := []string{}
	for _, n := range tree.Visible() {
		labels = append(labels, n.Label)
	}
	assert.Equal(t, []string{"ROOT", "CHILD_A", "GRANDCHILD", "CHILD_B", "PIRATE", "QUEST_X", "LEAF"}, labels)

	assert.False(t, tree.Toggle(tree.Roots[1].Path), "short leaves have nothing to fold")
	assert.False(t, tree.Toggle("9/events/9"))
}

func TestLongTextLeafTogglesToFullText(t *testing.T) {
	long := strings.Repeat("x", 150)
	tree := Build(decodeEvents(t, `[{"Name":"ROOT","events":[{"Name":"LEAF","text":"`+long+`"}]}]`), nil)
	leaf := tree.Children(tree.Roots[0])[0]

	assert.False(t, leaf.Expandable())
	assert.True(t, leaf.Foldable())
	assert.True(t, tree.Collapsed(leaf))
	assert.Equal(t, strings.Repeat("x", PreviewLength)+"...", leaf.Preview())

	require.True(t, tree.Toggle(leaf.Path))
	assert.False(t, tree.Collapsed(leaf))
	assert.Empty(t, tree.Children(leaf))

	require.True(t, tree.Toggle(leaf.Path))
	assert.True(t, tree.Collapsed(leaf))
}

func TestActivateLabelAndTags(t *testing.T) {
	tree := Build(decodeEvents(t, nestedEvents), testResolver())
	var got []Selection
	tree.OnSelect(func(sel Selection) { got = append(got, sel) })

	root := tree.Roots[0]
	ship := tree.Children(root)[2]
	tree.ActivateLabel(ship)
	assert.Equal(t, []Selection{{Category: resolve.Ship, Key: "PIRATE_AUTO"}}, got)
	assert.True(t, tree.Collapsed(ship), "ship label does not toggle")

	tree.ActivateTag(root.Tags[0].Tags[0])
	assert.Equal(t, Selection{Category: resolve.Crew, Key: "human"}, got[1])
	assert.False(t, tree.Collapsed(root))

	tree.ActivateLabel(root)
	assert.True(t, tree.Collapsed(root))
	assert.Len(t, got, 2)
}

func TestFindAnchorOnlySearchesBuiltNodes(t *testing.T) {
	js := `[{"Name":"ROOT","events":[{"Name":"MID","quests":[{"EventName":"DEEP"}]}],"quests":[{"EventName":"TOP"}]}]`
	tree := Build(decodeEvents(t, js), nil)

	top, ok := tree.FindAnchor("quest-TOP")
	require.True(t, ok)
	assert.Equal(t, "TOP", top.Label)

	_, ok = tree.FindAnchor("quest-DEEP")
	assert.False(t, ok, "MID has not been expanded yet")

	mid := tree.Children(tree.Roots[0])[0]
	require.True(t, tree.Toggle(mid.Path))
	deep, ok := tree.FindAnchor("quest-DEEP")
	require.True(t, ok)
	assert.Equal(t, "0/events/0/quests/0", deep.Path)
}

func TestReveal(t *testing.T) {
	js := `[{"Name":"ROOT","events":[{"Name":"MID","events":[{"Name":"LOW","events":[{"Name":"BOTTOM"}]}]}]}]`
	tree := Build(decodeEvents(t, js), nil)
	mid := tree.Children(tree.Roots[0])[0]
	low := tree.Children(mid)[0]
	bottom := tree.Children(low)[0]

	tree.Reveal(bottom.Path)
	assert.False(t, tree.Collapsed(mid))
	assert.False(t, tree.Collapsed(low))
	assert.True(t, tree.Collapsed(bottom))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", Preview("short"))
	exact := strings.Repeat("a", PreviewLength)
	assert.Equal(t, exact, Preview(exact))
	long := strings.Repeat("é", PreviewLength+5)
	assert.Equal(t, strings.Repeat("é", PreviewLength)+"...", Preview(long))
}
