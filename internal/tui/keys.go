package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	QuitHard  key.Binding
	Start     key.Binding
	Submit    key.Binding
	Back      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevCat   key.Binding
	NextCat   key.Binding
	Add       key.Binding
	Remove    key.Binding
	Book      key.Binding
	Search    key.Binding
	Toggle    key.Binding
	Done      key.Binding
	Dismiss   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		QuitHard:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Start:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev field")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevCat:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←/h", "prev category")),
		NextCat:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/l", "next category")),
		Add:       key.NewBinding(key.WithKeys("enter", "a", "+"), key.WithHelp("enter/+", "add to cart")),
		Remove:    key.NewBinding(key.WithKeys("x", "-", "delete"), key.WithHelp("x/-", "remove from cart")),
		Book:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "book")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Done:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Dismiss:   key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "ok")),
	}
}

func (k keyMap) landingHelp() []key.Binding {
	return []key.Binding{k.Start, k.Quit}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.Submit, k.Back, k.QuitHard}
}

func (k keyMap) menuHelp() []key.Binding {
	return []key.Binding{k.PrevCat, k.NextCat, k.Up, k.Add, k.Remove, k.Search, k.Book, k.Back, k.Quit}
}

func (k keyMap) searchHelp() []key.Binding {
	return []key.Binding{k.Up, k.Add, withHelp(k.Back, "esc", "close search"), k.QuitHard}
}

func (k keyMap) dietaryHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Toggle, withHelp(k.Submit, "enter", "book"), k.Back, k.QuitHard}
}

func (k keyMap) thanksHelp() []key.Binding {
	return []key.Binding{k.Done, k.Back, k.Quit}
}

func withHelp(b key.Binding, keys, desc string) key.Binding {
	b.SetHelp(keys, desc)
	return b
}
