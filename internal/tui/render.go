package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/themenu/internal/assets"
	"github.com/jask/themenu/internal/flow"
	"github.com/jask/themenu/internal/order"
	"github.com/jask/themenu/internal/session"
)

const appName = "The Menu"

var fieldLabels = map[order.Field]string{
	order.FieldName:            "Name",
	order.FieldEmail:           "Email",
	order.FieldContact:         "Contact Number",
	order.FieldPassword:        "Password",
	order.FieldConfirmPassword: "Confirm Password",
	order.FieldDate:            "Date:",
	order.FieldGuests:          "Guests:",
	order.FieldLocation:        "Location:",
	order.FieldSpecialRequests: "Special Requests:",
}

func (a *App) View() string {
	var body string
	var help []key.Binding
	switch a.sess.Screen() {
	case flow.Landing:
		body, help = a.renderLanding(), a.keys.landingHelp()
	case flow.Profile:
		body, help = a.renderProfile(), a.keys.formHelp()
	case flow.Menu:
		if a.searching {
			body, help = a.renderSearch(), a.keys.searchHelp()
		} else {
			body, help = a.renderMenu(), a.keys.menuHelp()
		}
	case flow.Bookings:
		body, help = a.renderBookings(), a.keys.formHelp()
	case flow.Dietary:
		body, help = a.renderDietary(), a.keys.dietaryHelp()
	case flow.Thanks:
		body, help = a.renderThanks(), a.keys.thanksHelp()
	}
	if a.status != "" {
		body += "\n\n" + statusErrStyle.Render(a.status)
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		"",
		lipgloss.NewStyle().Padding(0, 2).Render(body),
		"",
		renderFooter(help, a.width),
	)
	if len(a.alerts) == 0 {
		return view
	}
	return centerCard(view, a.renderAlert(a.alerts[0]), a.width, a.height)
}

func (a *App) renderHeader() string {
	left := titleStyle.Render(a.art.Render(assets.LogoKey) + " " + appName)
	right := ""
	if s := a.sess.Screen(); s != flow.Landing {
		right = mutedStyle.Render(strings.ToUpper(string(s)))
	}
	if s := a.sess.Screen(); s == flow.Menu || s == flow.Bookings || s == flow.Dietary {
		right += "  " + cursorStyle.Render(fmt.Sprintf("CART (%d)", a.sess.Cart().ItemCount()))
	}
	line := left
	if right != "" {
		line += "  " + right
	}
	if a.width <= 0 {
		return headerBarStyle.Render(line)
	}
	return headerBarStyle.Width(a.width).Render(line)
}

func renderFooter(bindings []key.Binding, width int) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+helpDescStyle.Render(h.Desc))
	}
	line := strings.Join(parts, helpDescStyle.Render("  ·  "))
	if width <= 0 {
		return footerStyle.Render(line)
	}
	return footerStyle.Width(width).Render(line)
}

func (a *App) renderAlert(al alert) string {
	style := modalStyle
	if al.title == session.TitleError {
		style = modalErrStyle
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(al.title),
		"",
		al.message,
		"",
		helpKeyStyle.Render("OK")+" "+helpDescStyle.Render("(enter)"),
	)
	return style.Render(content)
}

func (a *App) renderLanding() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(a.art.Render(assets.LogoKey)+"  "+strings.ToUpper(appName)),
		"",
		subtitleStyle.Render("A New Experience Every Night"),
		mutedStyle.Render("BY CHRISTOFFEL"),
		"",
		activeTabStyle.Render("START"),
	)
}

func (a *App) renderProfile() string {
	p := a.sess.Profile()
	lines := []string{titleStyle.Render("Create Your Profile"), ""}
	for i, f := range order.ProfileFields {
		v, _ := p.Get(f)
		if f == order.FieldPassword || f == order.FieldConfirmPassword {
			v = strings.Repeat("•", len([]rune(v)))
		}
		lines = append(lines, renderInput(fieldLabels[f], v, i == a.focus))
	}
	lines = append(lines, "", buttons("BACK", "NEXT"))
	return strings.Join(lines, "\n")
}

func (a *App) renderBookings() string {
	b := a.sess.Booking()
	lines := []string{titleStyle.Render("Bookings"), ""}
	for i, f := range order.BookingFields {
		v, _ := b.Get(f)
		lines = append(lines, renderInput(fieldLabels[f], v, i == a.focus))
	}
	lines = append(lines,
		mutedStyle.Render(fmt.Sprintf("Guests must be between %d and %d.", order.MinGuests, order.MaxGuests)),
		"",
		buttons("BACK", "NEXT"),
	)
	return strings.Join(lines, "\n")
}

func renderInput(label, value string, focused bool) string {
	style := inputStyle
	marker := "  "
	if focused {
		style = focusedInputStyle
		marker = cursorStyle.Render("▸ ")
		value += cursorStyle.Render("▏")
	}
	return marker + labelStyle.Render(label) + "\n  " + style.Render(value)
}

func buttons(labels ...string) string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = inactiveTabStyle.Render(l)
	}
	return strings.Join(out, "  ")
}

func (a *App) renderTabs() string {
	var tabs []string
	for _, c := range a.sess.Catalog().Categories() {
		if c == a.sess.Category() {
			tabs = append(tabs, activeTabStyle.Render(c))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(c))
		}
	}
	return strings.Join(tabs, " ")
}

func (a *App) renderMenu() string {
	prices := a.sess.Prices()
	cart := a.sess.Cart()
	lines := []string{
		titleStyle.Render("Welcome to The Menu"),
		subtitleStyle.Render("Seasonal tasting experience"),
		"",
		a.renderTabs(),
		"",
	}
	items := a.sess.Items()
	for i, it := range items {
		marker := "  "
		name := it.Name
		if i == a.cursor {
			marker = cursorStyle.Render("▸ ")
			name = cursorStyle.Render(name)
		}
		qty := ""
		if n := cart.Quantity(it.ID); n > 0 {
			qty = mutedStyle.Render(" ×" + strconv.Itoa(n))
		}
		lines = append(lines,
			marker+a.art.Render(it.Image)+" "+name+"  "+priceStyle.Render(prices.Format(it.Price))+qty,
			"    "+mutedStyle.Render(it.Description),
		)
	}
	if len(items) == 0 {
		lines = append(lines, mutedStyle.Render("  Nothing on this part of the menu tonight."))
	}
	if !cart.IsEmpty() {
		lines = append(lines, "", a.renderCartSummary())
	}
	lines = append(lines, "", buttons("BOOK"))
	return strings.Join(lines, "\n")
}

func (a *App) renderCartSummary() string {
	cart := a.sess.Cart()
	summary := fmt.Sprintf("Total: %s\n%d items", a.sess.Prices().Format(cart.Total()), cart.ItemCount())
	return cartBoxStyle.Render(summary + "\n" + activeTabStyle.Render("CHECKOUT"))
}

func (a *App) renderSearch() string {
	lines := []string{
		titleStyle.Render("Search the menu"),
		"",
		renderInput("Dish", a.query, true),
		"",
	}
	if a.query != "" && len(a.results) == 0 {
		lines = append(lines, mutedStyle.Render("  No dishes match."))
	}
	for i, r := range a.results {
		marker := "  "
		name := r.name
		if i == a.resultCursor {
			marker = cursorStyle.Render("▸ ")
			name = cursorStyle.Render(name)
		}
		lines = append(lines, marker+name+"  "+
			priceStyle.Render(a.sess.Prices().Format(r.price))+"  "+
			mutedStyle.Render(r.category))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderDietary() string {
	d := a.sess.Dietary()
	lines := []string{titleStyle.Render("Dietary Preferences")}
	for i, f := range dietaryRows {
		if i == len(order.PreferenceFlags) {
			lines = append(lines, "", titleStyle.Render("Allergies"))
		}
		box := "[ ]"
		if d.Has(f) {
			box = "[x]"
		}
		marker := "  "
		label := f.Label()
		if i == a.focus {
			marker = cursorStyle.Render("▸ ")
			label = cursorStyle.Render(label)
		}
		lines = append(lines, marker+box+" "+label)
	}
	lines = append(lines,
		"",
		renderInput("Tell me more", d.TellMeMore, a.focus == len(dietaryRows)),
		"",
		buttons("BACK", "BOOK"),
	)
	return strings.Join(lines, "\n")
}

func (a *App) renderThanks() string {
	sum := a.sess.Summary()
	lines := []string{
		subtitleStyle.Render("Thanks for choosing"),
		titleStyle.Render(appName + "!"),
		"",
	}
	for _, l := range sum.Lines {
		lines = append(lines, fmt.Sprintf("  %d × %s  %s",
			l.Quantity, l.Item.Name, priceStyle.Render(a.sess.Prices().Format(l.Subtotal()))))
	}
	if len(sum.Lines) > 0 {
		lines = append(lines, fmt.Sprintf("  Total: %s (%d items)", sum.Total, sum.ItemCount), "")
	}
	lines = append(lines,
		labelStyle.Render("Date: ")+sum.Date,
		labelStyle.Render("Guests: ")+sum.Guests,
		labelStyle.Render("Location: ")+sum.Location,
	)
	if sum.Requests != "" {
		lines = append(lines, labelStyle.Render("Special Requests: ")+sum.Requests)
	}
	if len(sum.Dietary) > 0 {
		lines = append(lines, labelStyle.Render("Dietary: ")+strings.Join(sum.Dietary, ", "))
	}
	if sum.Note != "" {
		lines = append(lines, labelStyle.Render("Note: ")+sum.Note)
	}
	if sum.Reference != "" {
		lines = append(lines, "", mutedStyle.Render("Reference "+sum.Reference))
	}
	lines = append(lines, "", buttons("BACK", "DONE"))
	return strings.Join(lines, "\n")
}
