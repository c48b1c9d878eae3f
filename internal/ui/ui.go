package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Alfredofh/game-collector-front/internal/models"
	"github.com/Alfredofh/game-collector-front/internal/notify"
	"github.com/Alfredofh/game-collector-front/internal/reconcile"
	"github.com/Alfredofh/game-collector-front/internal/services"
	"github.com/Alfredofh/game-collector-front/internal/session"
	"github.com/Alfredofh/game-collector-front/internal/shared"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CollectionListView ViewState = iota
	GameListView
	InputView
	ConfirmView
)

// inputMode distinguishes what the text input is naming.
type inputMode int

const (
	inputCreate inputMode = iota
	inputRename
)

// targetKind distinguishes what a pending confirmation would delete.
type targetKind int

const (
	targetCollection targetKind = iota
	targetGame
)

// deleteTarget identifies the record awaiting confirmation.
type deleteTarget struct {
	kind targetKind
	id   int
	name string
}

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	catalog services.Catalog
	library services.Library
	guard   *session.Guard
	notices *notify.Center

	width  int
	height int

	collectionList list.Model
	collections    []models.Collection
	gameList       list.Model
	detail         *models.CollectionDetail

	input    textinput.Model
	mode     inputMode
	renameID int
	pending  *deleteTarget

	err  error
	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, catalog services.Catalog, library services.Library, guard *session.Guard) *Model {
	input := textinput.New()
	input.Placeholder = "Collection name"
	input.CharLimit = 120

	return &Model{
		ctx:     ctx,
		view:    CollectionListView,
		catalog: catalog,
		library: library,
		guard:   guard,
		notices: notify.NewCenter(notify.DefaultTTL),
		input:   input,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init checks the session and fetches the collection list.
func (m *Model) Init() tea.Cmd {
	if decision := m.guard.Check("/collections"); !decision.Allow {
		m.err = errors.New(shared.MsgNotAuthorized)
		return tea.Quit
	}
	return m.fetchCollections()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.collectionList.SetSize(msg.Width-4, msg.Height-8)
		m.gameList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case CollectionListView:
			return m.handleCollectionListKeys(msg)
		case GameListView:
			return m.handleGameListKeys(msg)
		case InputView:
			return m.handleInputKeys(msg)
		case ConfirmView:
			return m.handleConfirmKeys(msg)
		}

	case collectionsFetchedMsg:
		if msg.err != nil {
			return m, m.pushError(msg.err)
		}
		m.collections = msg.collections
		m.rebuildCollectionList()
		return m, nil

	case gamesFetchedMsg:
		if msg.err != nil {
			return m, m.pushError(msg.err)
		}
		m.detail = msg.detail
		m.rebuildGameList()
		m.view = GameListView
		return m, nil

	case collectionSavedMsg:
		if msg.err != nil {
			return m, m.pushError(msg.err)
		}
		m.collections = reconcile.Apply(m.collections, msg.op)
		m.rebuildCollectionList()
		m.view = CollectionListView
		if msg.op.Kind == reconcile.OpCreate {
			return m, m.pushSuccess("Collection created")
		}
		return m, m.pushSuccess("Collection renamed")

	case collectionDeletedMsg:
		if msg.err != nil {
			return m, m.pushError(msg.err)
		}
		m.collections = reconcile.Apply(m.collections, reconcile.Removed[models.Collection](msg.id))
		m.rebuildCollectionList()
		m.view = CollectionListView
		return m, m.pushSuccess("Collection deleted")

	case gameRemovedMsg:
		if msg.err != nil {
			return m, m.pushError(msg.err)
		}
		if m.detail != nil {
			m.detail.VideoGames = reconcile.Apply(m.detail.VideoGames, reconcile.Removed[models.VideoGame](msg.id))
			m.rebuildGameList()
		}
		m.view = GameListView
		return m, m.pushSuccess("Game removed")

	case notifyTickMsg:
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var body string
	switch m.view {
	case CollectionListView:
		body = m.renderCollectionList()
	case GameListView:
		body = m.renderGameList()
	case InputView:
		body = m.renderInput()
	case ConfirmView:
		body = m.renderConfirm()
	}

	if notices := m.renderNotices(); notices != "" {
		return fmt.Sprintf("%s\n%s", notices, body)
	}
	return body
}

func (m *Model) handleCollectionListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if item, ok := m.collectionList.SelectedItem().(collectionItem); ok {
			return m, m.fetchGames(item.collection.CollectionID)
		}
	case "c":
		m.mode = inputCreate
		m.input.SetValue("")
		m.input.Focus()
		m.view = InputView
		return m, textinput.Blink
	case "r":
		if item, ok := m.collectionList.SelectedItem().(collectionItem); ok {
			m.mode = inputRename
			m.renameID = item.collection.CollectionID
			m.input.SetValue(item.collection.Name)
			m.input.Focus()
			m.view = InputView
			return m, textinput.Blink
		}
	case "d":
		if item, ok := m.collectionList.SelectedItem().(collectionItem); ok {
			m.pending = &deleteTarget{kind: targetCollection, id: item.collection.CollectionID, name: item.collection.Name}
			m.view = ConfirmView
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.collectionList, cmd = m.collectionList.Update(msg)
	return m, cmd
}

func (m *Model) handleGameListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = CollectionListView
		return m, nil
	case "d":
		if item, ok := m.gameList.SelectedItem().(gameItem); ok {
			m.pending = &deleteTarget{kind: targetGame, id: item.game.GameID, name: item.game.Name}
			m.view = ConfirmView
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.gameList, cmd = m.gameList.Update(msg)
	return m, cmd
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = CollectionListView
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			return m, m.pushWarning("A name is required")
		}
		if m.mode == inputCreate {
			return m, m.createCollection(name)
		}
		return m, m.renameCollection(m.renameID, name)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "n", "esc":
		if m.pending != nil && m.pending.kind == targetGame {
			m.view = GameListView
		} else {
			m.view = CollectionListView
		}
		m.pending = nil
		return m, nil
	case "y":
		if m.pending == nil {
			m.view = CollectionListView
			return m, nil
		}
		target := *m.pending
		m.pending = nil
		if target.kind == targetCollection {
			return m, m.deleteCollection(target.id)
		}
		return m, m.removeGame(target.id)
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case CollectionListView:
		m.collectionList, cmd = m.collectionList.Update(msg)
	case GameListView:
		m.gameList, cmd = m.gameList.Update(msg)
	}
	return m, cmd
}

func (m *Model) rebuildCollectionList() {
	items := make([]list.Item, len(m.collections))
	for i, collection := range m.collections {
		items[i] = collectionItem{collection: collection}
	}
	m.collectionList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.collectionList.Title = "Collections"
	m.collectionList.SetSize(m.width-4, m.height-8)
}

func (m *Model) rebuildGameList() {
	items := make([]list.Item, len(m.detail.VideoGames))
	for i, game := range m.detail.VideoGames {
		items[i] = gameItem{game: game}
	}
	m.gameList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.gameList.Title = fmt.Sprintf("Games in '%s'", m.detail.Name)
	m.gameList.SetSize(m.width-4, m.height-8)
}

func (m *Model) fetchCollections() tea.Cmd {
	return func() tea.Msg {
		collections, err := m.catalog.List(m.ctx)
		return collectionsFetchedMsg{collections: collections, err: err}
	}
}

func (m *Model) fetchGames(id int) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.catalog.Get(m.ctx, id)
		return gamesFetchedMsg{detail: detail, err: err}
	}
}

func (m *Model) createCollection(name string) tea.Cmd {
	return func() tea.Msg {
		created, err := m.catalog.Create(m.ctx, name)
		if err != nil {
			return collectionSavedMsg{err: err}
		}
		return collectionSavedMsg{op: reconcile.Created(*created)}
	}
}

func (m *Model) renameCollection(id int, name string) tea.Cmd {
	return func() tea.Msg {
		updated, err := m.catalog.Update(m.ctx, id, name)
		if err != nil {
			return collectionSavedMsg{err: err}
		}
		return collectionSavedMsg{op: reconcile.Updated(*updated)}
	}
}

func (m *Model) deleteCollection(id int) tea.Cmd {
	return func() tea.Msg {
		return collectionDeletedMsg{id: id, err: m.catalog.Delete(m.ctx, id)}
	}
}

func (m *Model) removeGame(id int) tea.Cmd {
	return func() tea.Msg {
		return gameRemovedMsg{id: id, err: m.library.Remove(m.ctx, id)}
	}
}

// pushError maps a failure onto its user-facing message and schedules the
// re-render that clears it.
func (m *Model) pushError(err error) tea.Cmd {
	if errors.Is(err, shared.ErrNotAuthorized) {
		m.notices.Errorf(shared.MsgNotAuthorized)
	} else {
		m.notices.Errorf(shared.MsgLoadFailed)
	}
	return m.notifyTick()
}

func (m *Model) pushSuccess(message string) tea.Cmd {
	m.notices.Successf(message)
	return m.notifyTick()
}

func (m *Model) pushWarning(message string) tea.Cmd {
	m.notices.Infof(message)
	return m.notifyTick()
}

func (m *Model) notifyTick() tea.Cmd {
	return tea.Tick(notify.DefaultTTL+50*time.Millisecond, func(t time.Time) tea.Msg {
		return notifyTickMsg(t)
	})
}

func (m *Model) renderNotices() string {
	visible := m.notices.Visible()
	if len(visible) == 0 {
		return ""
	}

	lines := make([]string, len(visible))
	for i, notice := range visible {
		switch notice.Kind {
		case notify.Success:
			lines[i] = styles.ok.Render(notice.Message)
		case notify.Error:
			lines[i] = styles.err.Render(notice.Message)
		default:
			lines[i] = styles.warn.Render(notice.Message)
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCollectionList() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.create, m.keys.rename, m.keys.remove, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.collectionList.View(), helpView)
}

func (m *Model) renderGameList() string {
	helpKeys := []key.Binding{m.keys.remove, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.gameList.View(), helpView)
}

func (m *Model) renderInput() string {
	var title string
	if m.mode == inputCreate {
		title = styles.title.Render("New collection")
	} else {
		title = styles.title.Render("Rename collection")
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.back}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", title, m.input.View(), helpView)
}

func (m *Model) renderConfirm() string {
	if m.pending == nil {
		return ""
	}

	var title string
	if m.pending.kind == targetCollection {
		title = styles.title.Render(fmt.Sprintf("Delete collection '%s'?", m.pending.name))
	} else {
		title = styles.title.Render(fmt.Sprintf("Remove '%s' from this collection?", m.pending.name))
	}
	warning := styles.warn.Render("This cannot be undone.")

	helpKeys := []key.Binding{m.keys.yes, m.keys.no}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", title, warning, helpView)
}
