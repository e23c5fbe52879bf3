// Package tui is the terminal front end of The Menu. It renders the session
// and turns key presses into session intents.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/themenu/internal/assets"
	"github.com/jask/themenu/internal/flow"
	"github.com/jask/themenu/internal/order"
	"github.com/jask/themenu/internal/session"
)

const searchLimit = 8

type alert struct {
	title   string
	message string
}

// App is the bubbletea model. It also serves as the session's Notifier, so
// alerts raised while handling a key are queued and shown as a modal.
type App struct {
	sess   *session.Session
	art    *assets.Table
	keys   keyMap
	width  int
	height int

	alerts []alert
	status string

	// focus indexes the fields of the profile and bookings forms, or the
	// rows of the dietary screen.
	focus  int
	cursor int

	searching    bool
	query        string
	results      []searchResult
	resultCursor int
}

type searchResult struct {
	id       string
	name     string
	category string
	price    int
}

// dietaryRows is the dietary screen order: preference flags, allergy flags,
// then the free-text note.
var dietaryRows = append(append([]order.DietaryFlag{}, order.PreferenceFlags...), order.AllergyFlags...)

// New builds the session with the App wired in as its Notifier.
func New(opts session.Options, art *assets.Table) (*App, error) {
	if art == nil {
		art = assets.Default()
	}
	a := &App{art: art, keys: newKeyMap()}
	opts.Notifier = a
	s, err := session.New(opts)
	if err != nil {
		return nil, err
	}
	a.sess = s
	return a, nil
}

// Session exposes the underlying state, mainly for tests.
func (a *App) Session() *session.Session { return a.sess }

// Notify queues an alert.
func (a *App) Notify(title, message string) {
	a.alerts = append(a.alerts, alert{title: title, message: message})
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, a.keys.QuitHard) {
			return a, tea.Quit
		}
		if len(a.alerts) > 0 {
			if key.Matches(m, a.keys.Dismiss) {
				a.alerts = a.alerts[1:]
			}
			return a, nil
		}
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.sess.Screen() {
	case flow.Landing:
		return a.handleLandingKey(m)
	case flow.Profile:
		return a.handleFormKey(m, order.ProfileFields, a.sess.SetProfileField, a.sess.Profile().Get)
	case flow.Menu:
		if a.searching {
			return a.handleSearchKey(m)
		}
		return a.handleMenuKey(m)
	case flow.Bookings:
		return a.handleFormKey(m, order.BookingFields, a.sess.SetBookingField, a.sess.Booking().Get)
	case flow.Dietary:
		return a.handleDietaryKey(m)
	case flow.Thanks:
		return a.handleThanksKey(m)
	}
	return a, nil
}

func (a *App) handleLandingKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Start):
		a.dispatch(session.GoNext())
	}
	return a, nil
}

func (a *App) handleFormKey(
	m tea.KeyMsg,
	fields []order.Field,
	set func(order.Field, string) error,
	get func(order.Field) (string, error),
) (tea.Model, tea.Cmd) {
	a.focus = clamp(a.focus, len(fields))
	switch {
	case key.Matches(m, a.keys.Submit):
		a.dispatch(session.GoNext())
		return a, nil
	case key.Matches(m, a.keys.Back):
		a.dispatch(session.GoBack())
		return a, nil
	case key.Matches(m, a.keys.NextField):
		a.focus = (a.focus + 1) % len(fields)
		return a, nil
	case key.Matches(m, a.keys.PrevField):
		a.focus = (a.focus + len(fields) - 1) % len(fields)
		return a, nil
	}

	field := fields[a.focus]
	value, err := get(field)
	if err != nil {
		a.status = err.Error()
		return a, nil
	}
	if next, ok := editText(value, m); ok {
		if err := set(field, next); err != nil {
			a.status = err.Error()
		}
	}
	return a, nil
}

func (a *App) handleMenuKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := a.sess.Items()
	a.cursor = clamp(a.cursor, len(items))
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Back):
		a.dispatch(session.GoBack())
	case key.Matches(m, a.keys.PrevCat):
		a.shiftCategory(-1)
	case key.Matches(m, a.keys.NextCat):
		a.shiftCategory(1)
	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(m, a.keys.Down):
		if a.cursor < len(items)-1 {
			a.cursor++
		}
	case key.Matches(m, a.keys.Add):
		if len(items) > 0 {
			a.dispatch(session.AddItem(items[a.cursor].ID))
		}
	case key.Matches(m, a.keys.Remove):
		if len(items) > 0 {
			a.dispatch(session.RemoveItem(items[a.cursor].ID))
		}
	case key.Matches(m, a.keys.Book):
		a.dispatch(session.GoNext())
	case key.Matches(m, a.keys.Search):
		a.searching = true
		a.query = ""
		a.results = nil
		a.resultCursor = 0
	}
	return a, nil
}

func (a *App) shiftCategory(delta int) {
	cats := a.sess.Catalog().Categories()
	if len(cats) == 0 {
		return
	}
	idx := 0
	for i, c := range cats {
		if c == a.sess.Category() {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(cats)) % len(cats)
	if a.dispatch(session.SelectCategory(cats[idx])) == nil {
		a.cursor = 0
	}
}

func (a *App) handleSearchKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.searching = false
		return a, nil
	case tea.KeyUp:
		if a.resultCursor > 0 {
			a.resultCursor--
		}
		return a, nil
	case tea.KeyDown:
		if a.resultCursor < len(a.results)-1 {
			a.resultCursor++
		}
		return a, nil
	case tea.KeyEnter:
		if len(a.results) > 0 {
			a.dispatch(session.AddItem(a.results[a.resultCursor].id))
		}
		return a, nil
	}
	if next, ok := editText(a.query, m); ok {
		a.query = next
		a.runSearch()
	}
	return a, nil
}

func (a *App) runSearch() {
	matches := a.sess.Catalog().Search(a.query, searchLimit)
	a.results = a.results[:0]
	for _, mt := range matches {
		a.results = append(a.results, searchResult{
			id:       mt.Item.ID,
			name:     mt.Item.Name,
			category: mt.Category,
			price:    mt.Item.Price,
		})
	}
	a.resultCursor = clamp(a.resultCursor, len(a.results))
}

func (a *App) handleDietaryKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(dietaryRows) + 1
	a.focus = clamp(a.focus, rows)
	switch {
	case key.Matches(m, a.keys.Submit):
		a.dispatch(session.GoNext())
		return a, nil
	case key.Matches(m, a.keys.Back):
		a.dispatch(session.GoBack())
		return a, nil
	case key.Matches(m, a.keys.NextField):
		a.focus = (a.focus + 1) % rows
		return a, nil
	case key.Matches(m, a.keys.PrevField):
		a.focus = (a.focus + rows - 1) % rows
		return a, nil
	}

	if a.focus < len(dietaryRows) {
		if key.Matches(m, a.keys.Toggle) {
			if err := a.sess.ToggleDietary(dietaryRows[a.focus]); err != nil {
				a.status = err.Error()
			}
		}
		return a, nil
	}
	if next, ok := editText(a.sess.Dietary().TellMeMore, m); ok {
		a.sess.SetTellMeMore(next)
	}
	return a, nil
}

func (a *App) handleThanksKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Done):
		a.dispatch(session.GoNext())
	case key.Matches(m, a.keys.Back):
		a.dispatch(session.GoBack())
	}
	return a, nil
}

// dispatch forwards an intent. Validation failures already surfaced as an
// alert; anything else lands in the status line.
func (a *App) dispatch(in session.Intent) error {
	before := a.sess.Screen()
	err := a.sess.Dispatch(in)
	var ve *order.ValidationError
	a.status = ""
	if err != nil && !errors.As(err, &ve) {
		a.status = err.Error()
	}
	if a.sess.Screen() != before {
		a.focus = 0
		a.cursor = 0
		a.searching = false
	}
	return err
}

// editText applies a text-editing key to value.
func editText(value string, m tea.KeyMsg) (string, bool) {
	switch m.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		r := []rune(value)
		if len(r) == 0 {
			return value, false
		}
		return string(r[:len(r)-1]), true
	case tea.KeyCtrlU:
		return "", value != ""
	case tea.KeySpace:
		return value + " ", true
	case tea.KeyRunes:
		return value + string(m.Runes), true
	}
	return value, false
}

func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
