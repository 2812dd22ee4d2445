package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/nmarks/rolo/internal/config"
	"github.com/nmarks/rolo/internal/database/repository"
	"github.com/nmarks/rolo/internal/identity"
	"github.com/nmarks/rolo/internal/service"
)

// App ties together views.
type App struct {
	ctx      context.Context
	repos    Repos
	services Services
	cfg      config.Config
	palette  identity.Palette
	state    appState

	contacts   []repository.Contact
	visible    []repository.Contact
	duplicates []service.DuplicatePair
	tags       []repository.Tag

	cursor    int
	dupCursor int
	searching bool
	query     string
	status    string

	modal       modalState
	inputBuffer string
	inputField  int
	draft       contactDraft

	// import flow
	importPath string
	lastImport *service.ImportResult
}

type Repos struct {
	Contacts *repository.ContactRepo
	Tags     *repository.TagRepo
}

type Services struct {
	Import      *service.ImportService
	Dedupe      *service.Deduper
	Maintenance *service.MaintenanceService
}

type appState string

const (
	viewContacts   appState = "contacts"
	viewDuplicates appState = "duplicates"
	viewImport     appState = "import"
)

type modalState string

const (
	modalNone         modalState = ""
	modalNewContact   modalState = "newContact"
	modalConfirmDel   modalState = "confirmDelete"
	modalConfirmReset modalState = "confirmReset"
)

// contactDraft holds the new-contact modal fields in entry order.
type contactDraft struct {
	Name  string
	Email string
	Phone string
}

func New(ctx context.Context, cfg config.Config, repos Repos, services Services) *App {
	return &App{
		ctx:        ctx,
		repos:      repos,
		services:   services,
		cfg:        cfg,
		palette:    identity.DefaultPalette(),
		state:      viewContacts,
		importPath: "contacts.csv",
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadContacts(), a.loadTags())
}

// commands

func (a *App) loadContacts() tea.Cmd {
	return func() tea.Msg {
		list, err := a.repos.Contacts.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return contactsMsg(list)
	}
}

func (a *App) loadTags() tea.Cmd {
	return func() tea.Msg {
		tags, err := a.repos.Tags.List(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return tagListMsg(tags)
	}
}

func (a *App) scanDuplicatesCmd() tea.Cmd {
	return func() tea.Msg {
		pairs, err := a.services.Dedupe.FindDuplicates(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return duplicatesMsg(pairs)
	}
}

func (a *App) mergeCmd(pair service.DuplicatePair) tea.Cmd {
	return func() tea.Msg {
		if err := a.services.Dedupe.Merge(a.ctx, pair.A, pair.B); err != nil {
			return errMsg{err}
		}
		return statusMsg("merged " + pair.B.Name + " into " + pair.A.Name)
	}
}

func (a *App) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return errMsg{err}
		}
		defer f.Close()
		res, err := a.services.Import.ImportCSV(a.ctx, f)
		if err != nil {
			return errMsg{err}
		}
		return importDoneMsg{Result: res}
	}
}

func (a *App) saveDraftCmd(d contactDraft) tea.Cmd {
	return func() tea.Msg {
		c := repository.Contact{
			ID:    uuid.NewString(),
			Name:  strings.TrimSpace(d.Name),
			Email: strings.TrimSpace(d.Email),
		}
		if p := strings.TrimSpace(d.Phone); p != "" {
			c.Phone = &p
		}
		if c.Name == "" && c.Email == "" {
			return statusMsg("nothing to save: name and email both empty")
		}
		if err := a.repos.Contacts.Insert(a.ctx, c); err != nil {
			return errMsg{err}
		}
		return statusMsg("added " + identity.InitialsWithFallback(c.Name, c.Email) + " " + c.Name)
	}
}

func (a *App) deleteCmd(c repository.Contact) tea.Cmd {
	return func() tea.Msg {
		if err := a.repos.Contacts.Delete(a.ctx, c.ID); err != nil {
			return errMsg{err}
		}
		return statusMsg("deleted " + c.Name)
	}
}

func (a *App) resetCmd() tea.Cmd {
	return func() tea.Msg {
		if err := a.services.Maintenance.Reset(a.ctx); err != nil {
			return errMsg{err}
		}
		return statusMsg("all data wiped")
	}
}

func (a *App) toggleStarCmd(c repository.Contact) tea.Cmd {
	return func() tea.Msg {
		c.Starred = !c.Starred
		if err := a.repos.Contacts.Update(a.ctx, c); err != nil {
			return errMsg{err}
		}
		return statusMsg("")
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		if a.searching {
			return a.handleSearchKey(m)
		}
		if a.state == viewImport {
			return a.handleImportKey(m)
		}
		switch m.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "c":
			a.state = viewContacts
		case "u":
			if a.state == viewDuplicates {
				a.status = "scanning..."
				return a, a.scanDuplicatesCmd()
			}
			a.state = viewDuplicates
		case "i":
			a.state = viewImport
			a.status = ""
		case "/":
			if a.state == viewContacts {
				a.searching = true
				a.query = ""
				a.applyFilter()
			}
		case "up", "k":
			if a.state == viewContacts && a.cursor > 0 {
				a.cursor--
			}
			if a.state == viewDuplicates && a.dupCursor > 0 {
				a.dupCursor--
			}
		case "down", "j":
			if a.state == viewContacts && a.cursor < len(a.visible)-1 {
				a.cursor++
			}
			if a.state == viewDuplicates && a.dupCursor < len(a.duplicates)-1 {
				a.dupCursor++
			}
		case "n":
			if a.state == viewContacts {
				a.modal = modalNewContact
				a.draft = contactDraft{}
				a.inputField = 0
				a.inputBuffer = ""
			}
			if a.state == viewDuplicates && len(a.duplicates) > 0 {
				// not a duplicate: drop the pair from the queue
				a.duplicates = append(a.duplicates[:a.dupCursor], a.duplicates[a.dupCursor+1:]...)
				if a.dupCursor >= len(a.duplicates) && a.dupCursor > 0 {
					a.dupCursor--
				}
			}
		case "y":
			if a.state == viewDuplicates && len(a.duplicates) > 0 {
				pair := a.duplicates[a.dupCursor]
				a.duplicates = append(a.duplicates[:a.dupCursor], a.duplicates[a.dupCursor+1:]...)
				if a.dupCursor >= len(a.duplicates) && a.dupCursor > 0 {
					a.dupCursor--
				}
				return a, tea.Sequence(a.mergeCmd(pair), a.loadContacts())
			}
		case "s":
			if a.state == viewContacts && len(a.visible) > 0 {
				return a, tea.Sequence(a.toggleStarCmd(a.visible[a.cursor]), a.loadContacts())
			}
		case "backspace", "delete", "x":
			if a.state == viewContacts && len(a.visible) > 0 {
				a.modal = modalConfirmDel
			}
		case "ctrl+r":
			a.modal = modalConfirmReset
		}
	case contactsMsg:
		a.contacts = []repository.Contact(m)
		a.applyFilter()
	case tagListMsg:
		a.tags = []repository.Tag(m)
	case duplicatesMsg:
		a.duplicates = []service.DuplicatePair(m)
		a.dupCursor = 0
		a.status = fmt.Sprintf("%d candidate pairs", len(a.duplicates))
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	case importDoneMsg:
		a.lastImport = &m.Result
		a.status = fmt.Sprintf("imported %d, skipped %d", m.Result.Imported, m.Result.Skipped)
		a.state = viewContacts
		return a, a.loadContacts()
	}
	return a, nil
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.searching = false
		a.query = ""
		a.applyFilter()
	case "enter":
		a.searching = false
	case "backspace":
		if len(a.query) > 0 {
			runes := []rune(a.query)
			a.query = string(runes[:len(runes)-1])
			a.applyFilter()
		}
	default:
		if m.Type == tea.KeyRunes {
			a.query += string(m.Runes)
			a.applyFilter()
		} else if m.Type == tea.KeySpace {
			a.query += " "
			a.applyFilter()
		}
	}
	return a, nil
}

func (a *App) handleImportKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "esc":
		a.state = viewContacts
		return a, nil
	case "q", "ctrl+c":
		return a, tea.Quit
	case "enter":
		a.status = "importing..."
		return a, a.importCmd(a.importPath)
	case "backspace":
		if len(a.importPath) > 0 {
			a.importPath = a.importPath[:len(a.importPath)-1]
		}
	default:
		if m.Type == tea.KeyRunes {
			a.importPath += string(m.Runes)
		}
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.modal == modalConfirmReset {
		switch m.String() {
		case "y":
			a.modal = modalNone
			return a, tea.Sequence(a.resetCmd(), a.loadContacts(), a.loadTags())
		case "n", "esc":
			a.modal = modalNone
		}
		return a, nil
	}
	if a.modal == modalConfirmDel {
		switch m.String() {
		case "y", "enter":
			a.modal = modalNone
			if len(a.visible) > 0 {
				return a, tea.Sequence(a.deleteCmd(a.visible[a.cursor]), a.loadContacts())
			}
		case "n", "esc":
			a.modal = modalNone
		}
		return a, nil
	}

	// new-contact modal
	switch m.String() {
	case "esc":
		a.modal = modalNone
	case "enter", "tab":
		a.storeDraftField()
		a.inputField++
		a.inputBuffer = ""
		if a.inputField > 2 {
			a.modal = modalNone
			return a, tea.Sequence(a.saveDraftCmd(a.draft), a.loadContacts())
		}
	case "backspace":
		if len(a.inputBuffer) > 0 {
			runes := []rune(a.inputBuffer)
			a.inputBuffer = string(runes[:len(runes)-1])
		}
	default:
		if m.Type == tea.KeyRunes {
			a.inputBuffer += string(m.Runes)
		} else if m.Type == tea.KeySpace {
			a.inputBuffer += " "
		}
	}
	return a, nil
}

func (a *App) storeDraftField() {
	switch a.inputField {
	case 0:
		a.draft.Name = a.inputBuffer
	case 1:
		a.draft.Email = a.inputBuffer
	case 2:
		a.draft.Phone = a.inputBuffer
	}
}

// applyFilter recomputes the visible slice from the full contact list
// and the current query.
func (a *App) applyFilter() {
	a.visible = service.Search(a.contacts, a.query)
	if a.cursor >= len(a.visible) {
		a.cursor = 0
	}
}

func (a *App) View() string {
	var body string
	switch a.state {
	case viewDuplicates:
		body = a.renderDuplicates()
	case viewImport:
		body = a.renderImport()
	default:
		body = a.renderContacts()
	}
	if a.modal != modalNone {
		body += "\n\n" + a.renderModal()
	}
	return body
}

// messages
type contactsMsg []repository.Contact

type tagListMsg []repository.Tag

type duplicatesMsg []service.DuplicatePair

type statusMsg string

type errMsg struct{ error }

type importDoneMsg struct {
	Result service.ImportResult
}

// styles
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func (a *App) renderContacts() string {
	title := titleStyle.Render("Contacts")
	out := title + "\n"
	if a.searching || a.query != "" {
		out += fmt.Sprintf("search: %s█\n", a.query)
	}
	if len(a.visible) == 0 {
		out += dimStyle.Render("no contacts") + "\n"
	}
	for i, c := range a.visible {
		marker := " "
		if i == a.cursor {
			marker = "▶"
		}
		star := " "
		if c.Starred {
			star = "★"
		}
		tagText := ""
		if len(c.Tags) > 0 {
			var names []string
			for _, t := range c.Tags {
				names = append(names, t.Name)
			}
			tagText = " " + dimStyle.Render("["+strings.Join(names, ", ")+"]")
		}
		out += fmt.Sprintf("%s %s %s %-28s %-34s%s\n", marker, renderBadge(c, a.palette), star, c.Name, c.Email, tagText)
	}
	out += "[/] Search  [n] New  [s] Star  [x] Delete  [u] Duplicates  [i] Import CSV  [q] Quit"
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderDuplicates() string {
	title := titleStyle.Render("Duplicate Review")
	if len(a.duplicates) == 0 {
		out := title + "\nNo candidate pairs. Press [u] to scan.\n[c] Contacts  [i] Import CSV  [q] Quit"
		if a.status != "" {
			out += "\n" + a.status
		}
		return out
	}
	pair := a.duplicates[a.dupCursor]
	out := fmt.Sprintf("%s\nPair %d of %d  Similarity: %.2f (%s)\nA: %s %-28s %s\nB: %s %-28s %s\n[y] Merge B into A  [n] Not a duplicate  [u] Rescan  [c] Contacts  [q] Quit",
		title, a.dupCursor+1, len(a.duplicates), pair.Similarity, pair.Reason,
		renderBadge(pair.A, a.palette), pair.A.Name, pair.A.Email,
		renderBadge(pair.B, a.palette), pair.B.Name, pair.B.Email)
	if a.status != "" {
		out += "\n" + a.status
	}
	return out
}

func (a *App) renderImport() string {
	title := titleStyle.Render("Import CSV")
	body := fmt.Sprintf("CSV path: %s\nColumns: name, email, phone, company. Press Enter to import.\n[enter] Import  [esc] Back  [q] Quit", a.importPath)
	if len(a.tags) > 0 {
		var names []string
		for _, t := range a.tags {
			names = append(names, t.Name)
		}
		body += "\n" + dimStyle.Render("tags: "+strings.Join(names, ", "))
	}
	if a.lastImport != nil {
		body += fmt.Sprintf("\nLast import: %d imported, %d skipped, %d errors", a.lastImport.Imported, a.lastImport.Skipped, len(a.lastImport.Errors))
		if len(a.lastImport.Errors) > 0 {
			body += "\nFirst error: " + a.lastImport.Errors[0].Error()
			if len(a.lastImport.Errors) > 1 {
				body += fmt.Sprintf(" (+%d more)", len(a.lastImport.Errors)-1)
			}
		}
	}
	if a.status != "" {
		body += "\n" + a.status
	}
	return fmt.Sprintf("%s\n%s", title, body)
}

func (a *App) renderModal() string {
	if a.modal == modalConfirmReset {
		return "Wipe ALL contacts and tags? This cannot be undone. [y] Yes  [n] No"
	}
	if a.modal == modalConfirmDel {
		c := a.visible[a.cursor]
		return fmt.Sprintf("Delete %s <%s>? [y] Yes  [n] No", c.Name, c.Email)
	}
	labels := []string{"Name", "Email", "Phone"}
	out := titleStyle.Render("New Contact") + "\n"
	fields := []string{a.draft.Name, a.draft.Email, a.draft.Phone}
	for i, label := range labels {
		val := fields[i]
		if i == a.inputField {
			val = a.inputBuffer + "█"
		}
		out += fmt.Sprintf("%-6s %s\n", label+":", val)
	}
	out += "[enter/tab] Next field  [esc] Cancel"
	return out
}
