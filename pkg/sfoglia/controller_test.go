package sfoglia

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/stack"
)

func testRoutes() []route.Node {
	return []route.Node{
		{Pattern: "", View: "home", Children: []route.Node{
			{Pattern: "profile", View: "profile", Children: []route.Node{
				{Pattern: "edit", View: "profile-edit"},
			}},
			{Pattern: "settings", View: "settings"},
		}},
	}
}

type fixture struct {
	ctrl  *Controller
	host  *stack.MemoryHost
	sched *internal.ManualScheduler
}

func newFixture(t *testing.T, mutate func(*Options)) *fixture {
	t.Helper()
	host := stack.NewMemoryHost("/")
	sched := internal.NewManualScheduler()

	opts := DefaultOptions()
	opts.sched = sched
	unconstrained := false
	opts.constrained = &unconstrained
	if mutate != nil {
		mutate(&opts)
	}

	ctrl, err := New(host, testRoutes(), opts)
	require.NoError(t, err)
	t.Cleanup(ctrl.Detach)

	return &fixture{ctrl: ctrl, host: host, sched: sched}
}

// settle runs a close sequence to completion in virtual time.
func (f *fixture) settle() {
	f.sched.Advance(constants.CloseSettleDelay + constants.CloseUnmarkDelay)
}

func TestNewNilHost(t *testing.T) {
	_, err := New(nil, testRoutes(), DefaultOptions())
	assert.ErrorIs(t, err, ErrNilHost)
}

func TestPushDerivesStack(t *testing.T) {
	f := newFixture(t, nil)

	assert.False(t, f.ctrl.HasOpenDrawers())

	f.ctrl.Push("/profile")
	f.ctrl.Push("/settings")

	entries := f.ctrl.CurrentStack()
	require.Len(t, entries, 2)
	assert.True(t, f.ctrl.HasOpenDrawers())
	assert.Equal(t, "/profile", entries[0].Path)
	assert.Equal(t, "/settings", entries[1].Path)
	assert.Equal(t, []int{0, 1}, []int{entries[0].Level, entries[1].Level})
}

func TestHostBackPopsOneLevel(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Push("/profile")
	f.ctrl.Push("/settings")

	f.host.Back()
	entries := f.ctrl.CurrentStack()
	require.Len(t, entries, 1)
	assert.Equal(t, "/profile", entries[0].Path)
}

func TestRenderModelResolvesViews(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Push("/profile/edit?tab=avatar")
	panels := f.ctrl.RenderModel()

	require.Len(t, panels, 1)
	assert.Equal(t, "profile-edit", panels[0].View)
	assert.Nil(t, panels[0].Placeholder)
	assert.Equal(t, "avatar", panels[0].Params.Get("tab"))
}

func TestRenderModelNotFoundPlaceholder(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Push("/missing")
	panels := f.ctrl.RenderModel()

	require.Len(t, panels, 1)
	assert.Nil(t, panels[0].View)
	require.NotNil(t, panels[0].Placeholder)
	assert.Equal(t, PlaceholderNotFound, panels[0].Placeholder.Kind)
	assert.Equal(t, "/missing", panels[0].Placeholder.Path)
	assert.Contains(t, panels[0].Placeholder.Detail, "/missing")
}

func TestRenderModelRootPlaceholder(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Push("/")
	panels := f.ctrl.RenderModel()

	require.Len(t, panels, 1)
	assert.Nil(t, panels[0].View)
	require.NotNil(t, panels[0].Placeholder)
	assert.Equal(t, PlaceholderRoot, panels[0].Placeholder.Kind)
}

func TestCloseTopPopsAfterSettle(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Push("/profile")
	f.ctrl.Push("/settings")
	f.sched.Advance(constants.OpenFlipDelay)

	f.ctrl.Close(1)

	// The persisted stack has not shrunk yet; the panel is mid-close.
	require.Len(t, f.ctrl.CurrentStack(), 2)
	assert.True(t, f.ctrl.RenderModel()[1].Pose.Closing)

	f.settle()
	entries := f.ctrl.CurrentStack()
	require.Len(t, entries, 1)
	assert.Equal(t, "/profile", entries[0].Path)
}

func TestMidStackCloseClosesEverythingAbove(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.ReplaceAll([]string{"/profile", "/settings", "/profile/edit"})
	f.sched.Advance(constants.OpenFlipDelay)

	f.ctrl.Close(1)
	f.settle()

	entries := f.ctrl.CurrentStack()
	require.Len(t, entries, 1)
	assert.Equal(t, "/profile", entries[0].Path)
}

func TestDepthStepsDownDuringSiblingClose(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.ReplaceAll([]string{"/profile", "/settings", "/profile/edit"})
	f.sched.Advance(constants.OpenFlipDelay)

	before := f.ctrl.RenderModel()
	require.Equal(t, -2*constants.DefaultStackGap, before[0].Pose.OffsetY)

	f.ctrl.Close(1)

	// Before the persisted stack shrinks, the bottom panel's depth has
	// already decreased by one.
	during := f.ctrl.RenderModel()
	assert.Equal(t, -constants.DefaultStackGap, during[0].Pose.OffsetY)
	assert.Equal(t, 0.0, during[2].Pose.OffsetY)
}

func TestDragCommitClosesPanel(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Push("/profile")
	f.sched.Advance(constants.OpenFlipDelay)

	panels := f.ctrl.RenderModel()
	require.True(t, panels[0].Press(gesture.SurfaceBody, 0, 800))
	panels[0].Move(240) // exactly the dismiss threshold

	assert.Equal(t, gesture.OutcomeCommitted, panels[0].Release())
	assert.True(t, f.ctrl.RenderModel()[0].Pose.Closing)

	f.settle()
	assert.False(t, f.ctrl.HasOpenDrawers())
}

func TestDragCancelKeepsPanel(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Push("/profile")
	f.sched.Advance(constants.OpenFlipDelay)

	panels := f.ctrl.RenderModel()
	require.True(t, panels[0].Press(gesture.SurfaceBody, 0, 800))
	panels[0].Move(239)

	assert.Equal(t, gesture.OutcomeCanceled, panels[0].Release())

	f.sched.Advance(time.Second)
	assert.True(t, f.ctrl.HasOpenDrawers())
	assert.False(t, f.ctrl.RenderModel()[0].Pose.Closing)
}

func TestDraggingPoseSuppressesAnimation(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Push("/profile")
	f.sched.Advance(constants.OpenFlipDelay)

	f.ctrl.PanelPress(0, gesture.SurfaceBody, 0, 800)
	f.ctrl.PanelMove(0, 80)

	pose := f.ctrl.RenderModel()[0].Pose
	assert.False(t, pose.Animate)
	assert.InDelta(t, 0.1, pose.DragFraction, 1e-9)
}

func TestPressOnClosingPanelIgnored(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Push("/profile")
	f.ctrl.Close(0)

	assert.False(t, f.ctrl.PanelPress(0, gesture.SurfaceBody, 0, 800))
}

func TestHandleOnlyOption(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.HandleOnly = true })

	f.ctrl.Push("/profile")

	assert.False(t, f.ctrl.PanelPress(0, gesture.SurfaceBody, 0, 800))
	assert.True(t, f.ctrl.PanelPress(0, gesture.SurfaceHandle, 0, 800))
}

func TestOutsidePressClosesTopOnly(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Push("/profile")
	f.ctrl.Push("/settings")
	f.sched.Advance(constants.OutsidePressGrace)

	f.ctrl.OutsidePress(10, 10)
	f.settle()

	entries := f.ctrl.CurrentStack()
	require.Len(t, entries, 1)
	assert.Equal(t, "/profile", entries[0].Path)
}

func TestOutsidePressIgnoredDuringGrace(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Push("/profile")

	f.ctrl.OutsidePress(10, 10)
	f.sched.Advance(time.Second)

	assert.True(t, f.ctrl.HasOpenDrawers())
}

func TestOutsidePressRespectsProtectedRegion(t *testing.T) {
	f := newFixture(t, func(o *Options) {
		o.ProtectedRegion = func(x, y float64) bool { return y < 50 }
	})

	f.ctrl.Push("/profile")
	f.sched.Advance(constants.OutsidePressGrace)

	// A press on the notification overlay never dismisses.
	f.ctrl.OutsidePress(200, 20)
	f.sched.Advance(time.Second)
	assert.True(t, f.ctrl.HasOpenDrawers())

	f.ctrl.OutsidePress(200, 400)
	f.settle()
	assert.False(t, f.ctrl.HasOpenDrawers())
}

func TestOutsidePressEmptyStack(t *testing.T) {
	f := newFixture(t, nil)

	f.sched.Advance(constants.OutsidePressGrace)
	f.ctrl.OutsidePress(10, 10) // must not panic or navigate

	assert.False(t, f.ctrl.HasOpenDrawers())
}

func TestStaleCallbacksDegradeToNoOps(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Push("/profile")
	panels := f.ctrl.RenderModel()

	f.ctrl.CloseAll()
	require.False(t, f.ctrl.HasOpenDrawers())

	// Callbacks captured from the old render model reference a level that
	// no longer exists.
	panels[0].Close()
	assert.False(t, panels[0].Press(gesture.SurfaceBody, 0, 800))
	panels[0].Move(100)
	assert.Equal(t, gesture.OutcomeNone, panels[0].Release())

	f.sched.Advance(time.Second)
	assert.False(t, f.ctrl.HasOpenDrawers())
}

func TestOnRenderFires(t *testing.T) {
	f := newFixture(t, nil)

	renders := 0
	f.ctrl.OnRender(func() { renders++ })

	f.ctrl.Push("/profile")
	assert.Greater(t, renders, 0)

	before := renders
	f.sched.Advance(constants.OpenFlipDelay)
	assert.Greater(t, renders, before, "open flip must trigger a render")
}

func TestOpenFlagFlipsInRenderModel(t *testing.T) {
	f := newFixture(t, nil)

	f.ctrl.Push("/profile")
	assert.False(t, f.ctrl.RenderModel()[0].Pose.Open)

	f.sched.Advance(constants.OpenFlipDelay)
	assert.True(t, f.ctrl.RenderModel()[0].Pose.Open)
}

func TestPlaceholderTranslation(t *testing.T) {
	f := newFixture(t, func(o *Options) { o.Languages = []string{"it"} })

	require.NoError(t, f.ctrl.MessageBundle().AddMessages(language.Italian, &i18n.Message{
		ID:    "PlaceholderRootTitle",
		Other: "Impossibile aprire questa pagina",
	}))

	f.ctrl.Push("/")
	panels := f.ctrl.RenderModel()

	require.NotNil(t, panels[0].Placeholder)
	assert.Equal(t, "Impossibile aprire questa pagina", panels[0].Placeholder.Title)
}
