package tui

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ftlview/internal/anim"
	"ftlview/internal/catalog"
	"ftlview/internal/components"
	"ftlview/internal/config"
	"ftlview/internal/data"
	"ftlview/internal/detail"
	"ftlview/internal/eventtree"
	"ftlview/internal/log"
	"ftlview/internal/resolve"
	"ftlview/internal/theme"
	tuicomp "ftlview/internal/tui/components"
	"ftlview/internal/tui/handlers"
)

const (
	pageMain  = "main"
	pageModal = "modal"

	pageOverview = "overview"
	pageDetail   = "detail"
	pageMessage  = "message"

	navWidth    = 34
	modalWidth  = 100
	modalHeight = 32
)

// ViewerApp represents the main tview application
type ViewerApp struct {
	app    *tview.Application
	cfg    config.Config
	loader *data.Loader

	ctx    context.Context
	cancel context.CancelFunc

	// Layout
	pages     *tview.Pages
	mainGrid  *tview.Grid
	mainPages *tview.Pages
	message   *tview.TextView

	// UI Components
	header   *tuicomp.HeaderComponent
	status   *tuicomp.StatusComponent
	nav      *tuicomp.NavComponent
	overview *tuicomp.OverviewComponent
	detail   *tuicomp.DetailComponent
	events   *tuicomp.EventTreeComponent
	modal    *tuicomp.ModalComponent

	// Input handling
	inputHandler *handlers.InputHandler

	// Sprites; layer is nil when sixel output is off. sprites belongs to
	// the open modal and is nil while it is closed.
	layer   *tuicomp.SixelLayer
	stepper *anim.Stepper
	sprites *anim.SpriteSource

	// Loaded data
	store    *data.Store
	resolver *resolve.Resolver
	catalog  *catalog.Catalog

	// State
	panel        *detail.Panel
	hideCommon   bool
	loadFailed   bool
	modalVisible bool
	helpVisible  bool
	lastFocus    tview.Primitive

	version, commit, date string
}

// NewApplication creates and configures the tview application
func NewApplication(cfg config.Config) *ViewerApp {
	if err := theme.GetThemeManager().SetTheme(cfg.Theme); err != nil {
		log.Warn("unknown theme, using default", "theme", cfg.Theme, "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	va := &ViewerApp{
		app:          tview.NewApplication(),
		cfg:          cfg,
		loader:       data.NewLoader(),
		ctx:          ctx,
		cancel:       cancel,
		header:       tuicomp.NewHeaderComponent(),
		status:       tuicomp.NewStatusComponent(),
		nav:          tuicomp.NewNavComponent(),
		overview:     tuicomp.NewOverviewComponent(),
		events:       tuicomp.NewEventTreeComponent(),
		inputHandler: handlers.NewInputHandler(),
		stepper:      anim.NewStepper(nil),
	}
	if cfg.Sixel {
		va.layer = tuicomp.NewSixelLayer()
	}
	va.detail = tuicomp.NewDetailComponent(va.events)
	va.modal = tuicomp.NewModalComponent(va.layer)

	va.setupUI()
	va.setupInputHandling()
	return va
}

// setupUI configures the user interface layout
func (va *ViewerApp) setupUI() {
	va.message = theme.NewPanelView()
	va.message.SetDynamicColors(true)
	va.message.SetTextAlign(tview.AlignCenter)
	va.message.SetBorder(true)

	va.mainPages = tview.NewPages()
	va.mainPages.AddPage(pageOverview, va.overview.GetWrapper(), true, false)
	va.mainPages.AddPage(pageDetail, va.detail.GetWrapper(), true, false)
	va.mainPages.AddPage(pageMessage, va.message, true, true)

	panelFrame := components.NewBorderChars(components.BorderStyleSingle, components.BorderStyleDouble)
	modalFrame := components.NewSimpleBorderChars(components.BorderStyleDouble)

	va.mainGrid = tview.NewGrid().
		SetRows(1, 0, 1).
		SetColumns(navWidth, 0).
		SetBorders(false)
	va.mainGrid.AddItem(va.header.GetWrapper(), 0, 0, 1, 2, 0, 0, false)
	va.mainGrid.AddItem(components.NewFramed(va.nav.GetView(), panelFrame), 1, 0, 1, 1, 0, 0, true)
	va.mainGrid.AddItem(components.NewFramed(va.mainPages, panelFrame), 1, 1, 1, 1, 0, 0, false)
	va.mainGrid.AddItem(va.status.GetWrapper(), 2, 0, 1, 2, 0, 0, false)

	va.pages = tview.NewPages()
	va.pages.AddPage(pageMain, va.mainGrid, true, true)
	va.pages.AddPage(pageModal, centered(components.NewFramed(va.modal.GetWrapper(), modalFrame), modalWidth, modalHeight), true, false)

	va.nav.SetSelectHandler(va.selectSector)
	va.overview.SetSelectHandler(va.selectSector)
	va.detail.SetRowHandler(va.activateRow)

	va.app.SetRoot(va.pages, true)
	if va.layer != nil {
		va.app.SetAfterDrawFunc(func(screen tcell.Screen) {
			va.layer.Render()
		})
	}
}

func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}

// setupInputHandling registers the shortcuts of every input mode
func (va *ViewerApp) setupInputHandling() {
	loading := va.inputHandler.Shortcuts(handlers.InputModeLoading)
	loading.RegisterShortcut("q", "Quit", va.exit)
	loading.RegisterShortcut("r", "Retry", func() {
		if va.loadFailed {
			va.startLoad()
		}
	})

	browse := va.inputHandler.Shortcuts(handlers.InputModeBrowse)
	browse.RegisterShortcut("q", "Quit", va.exit)
	browse.RegisterShortcut("h", "Hide common", va.toggleHideCommon)
	browse.RegisterShortcut("o", "Overview", va.showOverview)
	browse.RegisterShortcut("Tab", "Focus", va.toggleFocus)
	browse.RegisterShortcut("?", "Help", va.showHelp)
	for i, tab := range detail.Tabs {
		desc := ""
		if i == 0 {
			desc = fmt.Sprintf("Tabs 1-%d", len(detail.Tabs))
		}
		browse.RegisterShortcut(fmt.Sprintf("%d", i+1), desc, func() { va.switchTab(tab) })
	}

	modal := va.inputHandler.Shortcuts(handlers.InputModeModal)
	modal.RegisterShortcut("Esc", "Close", va.closeModal)
	modal.RegisterShortcut("q", "", va.closeModal)

	va.inputHandler.SetModeChangeCallback(func(handlers.InputMode) {
		va.status.SetHelp(va.inputHandler.HelpLine())
	})
	va.status.SetHelp(va.inputHandler.HelpLine())

	va.app.SetInputCapture(va.inputHandler.HandleKeyEvent)
}

// Run loads the data in the background and starts the TUI
func (va *ViewerApp) Run() error {
	va.startLoad()
	err := va.app.Run()
	va.shutdown()
	return err
}

// Stop stops the TUI; Run returns afterwards
func (va *ViewerApp) Stop() {
	va.app.Stop()
}

func (va *ViewerApp) exit() {
	log.Info("exit requested")
	va.app.Stop()
}

func (va *ViewerApp) shutdown() {
	va.cancel()
	va.stepper.StopAll()
	if va.sprites != nil {
		va.sprites.Release()
	}
	if va.panel != nil {
		va.panel.Close()
	}
	if va.catalog != nil {
		if err := va.catalog.Close(); err != nil {
			log.Warn("failed to close catalog", "error", err)
		}
	}
	if va.layer != nil {
		va.layer.Clear()
		va.layer.Close()
	}
}

// startLoad fetches the dataset and indexes the catalog off the UI
// goroutine; the result is applied on it.
func (va *ViewerApp) startLoad() {
	va.loadFailed = false
	va.inputHandler.SetInputMode(handlers.InputModeLoading)
	va.status.SetLoading()
	va.showMessage(theme.Colorize(theme.Current().DefaultColors().Waiting, "Loading sector data..."))

	go func() {
		ds, err := va.loader.Load(va.ctx, va.cfg.DataSource)
		var cat *catalog.Catalog
		if err == nil {
			cat = va.openCatalog(ds.Sectors)
		}
		va.app.QueueUpdateDraw(func() {
			if err != nil {
				va.onLoadFailed(err)
				return
			}
			va.onLoaded(ds, cat)
		})
	}()
}

// openCatalog indexes the sectors for "found in" lookups. The viewer
// works without it, so failures are only logged.
func (va *ViewerApp) openCatalog(sectors []data.Sector) *catalog.Catalog {
	cat, err := catalog.Open(va.ctx)
	if err != nil {
		log.Warn("catalog unavailable", "error", err)
		return nil
	}
	if err := cat.Index(va.ctx, sectors); err != nil {
		log.Warn("catalog indexing failed", "error", err)
		cat.Close()
		return nil
	}
	return cat
}

func (va *ViewerApp) onLoaded(ds *data.Dataset, cat *catalog.Catalog) {
	va.store = data.NewStore(ds)
	va.resolver = resolve.New(va.store.Blueprints())
	if va.catalog != nil {
		va.catalog.Close()
	}
	va.catalog = cat

	all := va.store.Sectors()
	va.nav.SetSectors(all)
	va.overview.SetBuckets(va.nav.Buckets())
	va.status.SetLoaded(len(all))
	va.inputHandler.SetInputMode(handlers.InputModeBrowse)
	va.showOverview()
	va.app.SetFocus(va.nav.GetView())
}

func (va *ViewerApp) onLoadFailed(err error) {
	va.loadFailed = true
	va.status.SetError(err)
	colors := theme.Current().StatusColors()
	va.showMessage(theme.Colorize(colors.ErrorFg, "Failed to load sector data") + "\n\n" +
		tview.Escape(err.Error()) + "\n\nPress r to retry or q to quit")
}

func (va *ViewerApp) showMessage(text string) {
	va.message.SetText("\n\n" + text)
	va.mainPages.SwitchToPage(pageMessage)
}

// showOverview returns to the sector listing
func (va *ViewerApp) showOverview() {
	if va.panel != nil {
		va.panel.Close()
		va.panel = nil
	}
	va.nav.SetSelected("")
	va.mainPages.SwitchToPage(pageOverview)
}

// selectSector shows s in the detail panel
func (va *ViewerApp) selectSector(s *data.Sector) {
	log.Info("sector selected", "id", s.ID, "name", s.Name)
	if va.panel != nil {
		va.panel.Close()
	}

	p := detail.New(s, va.resolver, detail.Options{HideCommon: va.hideCommon})
	if va.catalog != nil {
		p.SetOffers(va.catalog)
	}
	p.SetAfterFunc(func(d time.Duration, f func()) detail.Timer {
		return time.AfterFunc(d, func() { va.app.QueueUpdateDraw(f) })
	})
	p.OnHighlightEnd = func(string) {
		va.events.SetHighlight("")
	}

	tree := eventtree.Build(s.Events, va.resolver)
	tree.OnSelect(va.openSelection)
	va.events.SetTree(tree)

	va.panel = p
	va.detail.SetPanel(p)
	va.nav.SetSelected(s.ID)
	va.mainPages.SwitchToPage(pageDetail)
	va.app.SetFocus(va.detail.Focusable())
}

func (va *ViewerApp) activateRow(row detail.Row) {
	if va.panel == nil {
		return
	}
	if row.IsItem {
		if m, ok := va.panel.SelectRow(va.ctx, row); ok {
			va.showModal(m)
		}
		return
	}
	if row.QuestEvent != "" {
		va.jumpToQuest(row.QuestEvent)
	}
}

// jumpToQuest opens the event tree on the quest's event and highlights it
func (va *ViewerApp) jumpToQuest(eventName string) {
	found := va.panel.ScrollToQuest(eventName, va.events.Locate)
	va.events.SetHighlight(va.panel.Highlighted())
	va.detail.Refresh()
	va.app.SetFocus(va.detail.Focusable())
	if !found {
		log.Debug("quest event not in tree", "event", eventName)
	}
}

func (va *ViewerApp) openSelection(sel eventtree.Selection) {
	if va.panel == nil {
		return
	}
	if m, ok := va.panel.Select(va.ctx, sel); ok {
		va.showModal(m)
	}
}

func (va *ViewerApp) switchTab(tab detail.Tab) {
	if va.panel == nil {
		return
	}
	va.panel.SetActive(tab)
	va.detail.Refresh()
	if !va.nav.GetView().HasFocus() {
		va.app.SetFocus(va.detail.Focusable())
	}
}

func (va *ViewerApp) toggleHideCommon() {
	va.hideCommon = !va.hideCommon
	va.header.SetHideCommon(va.hideCommon)
	if va.hideCommon {
		va.status.SetMessage("Showing only non-purchasable items")
	} else {
		va.status.SetMessage("")
	}
	if va.panel != nil {
		va.panel.SetOptions(detail.Options{HideCommon: va.hideCommon})
		va.detail.Refresh()
	}
}

func (va *ViewerApp) toggleFocus() {
	if !va.nav.GetView().HasFocus() {
		va.app.SetFocus(va.nav.GetView())
		return
	}
	if va.panel != nil {
		va.app.SetFocus(va.detail.Focusable())
	} else {
		va.app.SetFocus(va.overview.Focusable())
	}
}

// showModal displays the item dialog and starts its sprite previews
func (va *ViewerApp) showModal(m *detail.Modal) {
	if va.modalVisible {
		va.stopSprites()
	} else {
		va.lastFocus = va.app.GetFocus()
	}
	log.Debug("open modal", "category", m.Category, "key", m.Key)

	va.modal.SetModal(m)
	va.modalVisible = true
	va.pages.ShowPage(pageModal)
	va.inputHandler.SetInputMode(handlers.InputModeModal)
	va.app.SetFocus(va.modal.Focusable())
	va.startSprites(m)
}

// closeModal stops the previews before their regions are removed, so no
// late frame can redraw a closed dialog.
func (va *ViewerApp) closeModal() {
	if va.helpVisible {
		va.closeHelp()
		return
	}
	if !va.modalVisible {
		return
	}
	va.stopSprites()
	va.modalVisible = false
	va.pages.HidePage(pageModal)
	va.inputHandler.SetInputMode(handlers.InputModeBrowse)
	if va.lastFocus != nil {
		va.app.SetFocus(va.lastFocus)
	}
}

func (va *ViewerApp) stopSprites() {
	va.stepper.StopAll()
	va.modal.Close()
	if va.sprites != nil {
		va.sprites.Release()
		va.sprites = nil
	}
}

func (va *ViewerApp) startSprites(m *detail.Modal) {
	va.sprites = anim.NewSpriteSource(va.cfg.ImageRoot)
	if va.layer == nil {
		return
	}
	if m.Animation != nil {
		va.animate(*m.Animation, va.modal.Animation(), va.sprites)
	}
	if len(m.Images) > 0 {
		go va.drawImages(m, va.modal.Image(), va.sprites)
	}
}

// animate runs plan on the stepper. Frames are encoded on the stepper's
// goroutine and handed to the UI loop, which drops them once a newer run
// of the same kind has started.
func (va *ViewerApp) animate(plan anim.Plan, view *tuicomp.SpriteView, src *anim.SpriteSource) {
	va.stepper.Start(plan, func(gen uint64, frame int) {
		if gen != va.stepper.Current(plan.Kind) {
			return
		}
		img, err := src.Frame(plan, frame)
		if err == nil {
			var six string
			six, err = anim.EncodeSixel(img)
			if err == nil {
				va.app.QueueUpdateDraw(func() {
					if va.modalVisible && gen == va.stepper.Current(plan.Kind) {
						view.SetFrame(six)
					}
				})
				return
			}
		}
		log.Warn("sprite frame failed", "kind", plan.Kind, "sheet", plan.SheetPath(), "error", err)
		va.app.QueueUpdate(func() {
			if gen == va.stepper.Current(plan.Kind) {
				va.stepper.Stop(plan.Kind)
			}
		})
	})
}

func (va *ViewerApp) drawImages(m *detail.Modal, view *tuicomp.SpriteView, src *anim.SpriteSource) {
	layers := make([]image.Image, 0, len(m.Images))
	for _, path := range m.Images {
		img, err := src.Load(path)
		if err != nil {
			log.Warn("image unavailable", "path", path, "error", err)
			continue
		}
		layers = append(layers, img)
	}
	if len(layers) == 0 {
		return
	}
	six, err := anim.EncodeStatic(anim.Layer(layers...))
	if err != nil {
		log.Warn("image encoding failed", "key", m.Key, "error", err)
		return
	}
	va.app.QueueUpdateDraw(func() {
		if va.modalVisible && va.modal.Modal() == m {
			view.SetFrame(six)
		}
	})
}
