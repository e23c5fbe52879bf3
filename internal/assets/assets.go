// Package assets maps menu image keys to something a terminal can draw.
package assets

import (
	"errors"
	"strings"
)

// LogoKey is the fallback artwork.
const LogoKey = "TheMenuLogo.png"

// ErrBlank is returned when a handle has nothing to draw.
var ErrBlank = errors.New("assets: blank handle")

// Handle is a renderable image stand-in.
type Handle struct {
	Key   string
	Glyph string
	Alt   string
}

// Render returns the glyph, or the alt text in brackets when there is no
// glyph. It fails only when both are blank.
func (h Handle) Render() (string, error) {
	if strings.TrimSpace(h.Glyph) != "" {
		return h.Glyph, nil
	}
	if alt := strings.TrimSpace(h.Alt); alt != "" {
		return "[" + alt + "]", nil
	}
	return "", ErrBlank
}

// Table resolves image keys.
type Table struct {
	handles  map[string]Handle
	fallback Handle
}

// NewTable builds a table whose fallback is the LogoKey entry of handles.
func NewTable(handles []Handle) *Table {
	t := &Table{handles: make(map[string]Handle, len(handles))}
	for _, h := range handles {
		t.handles[h.Key] = h
	}
	t.fallback = t.handles[LogoKey]
	if t.fallback.Key == "" {
		t.fallback = Handle{Key: LogoKey, Glyph: "✦", Alt: "The Menu"}
	}
	return t
}

// Resolve returns the handle for key, or the logo when key is unknown.
func (t *Table) Resolve(key string) Handle {
	if h, ok := t.handles[key]; ok {
		return h
	}
	return t.fallback
}

// Render resolves key and draws it, falling back to the logo when the
// resolved handle cannot be drawn.
func (t *Table) Render(key string) string {
	if s, err := t.Resolve(key).Render(); err == nil {
		return s
	}
	s, err := t.fallback.Render()
	if err != nil {
		return "?"
	}
	return s
}

// Default is the table for the house menu artwork.
func Default() *Table {
	return NewTable([]Handle{
		{Key: LogoKey, Glyph: "✦", Alt: "The Menu"},
		{Key: "ButternutSagesoupStarter.jpg", Glyph: "🍲", Alt: "soup"},
		{Key: "OctopusStarter.jpg", Glyph: "🐙", Alt: "octopus"},
		{Key: "SnailsStarter.jpg", Glyph: "🐌", Alt: "snails"},
		{Key: "StickyWingsStarter.jpg", Glyph: "🍗", Alt: "wings"},
		{Key: "BaobunsStarter.jpg", Glyph: "🥟", Alt: "bao"},
		{Key: "ChickenVergieMain.jpg", Glyph: "🍗", Alt: "chicken"},
		{Key: "GrilledRibeyeSteakMain.jpg", Glyph: "🥩", Alt: "steak"},
		{Key: "PanSearedDuckBreastWithCrispyPotatoesCharredMain.jpg", Glyph: "🦆", Alt: "duck"},
		{Key: "SeaFoodPastaMain.jpg", Glyph: "🍝", Alt: "pasta"},
		{Key: "VegetableSaladMain.jpg", Glyph: "🥗", Alt: "salad"},
		{Key: "BrownieVanillaIceCreamDessert.jpg", Glyph: "🍫", Alt: "brownie"},
		{Key: "CheeseCakeDessert.jpg", Glyph: "🍰", Alt: "cheesecake"},
		{Key: "ChocolateBoomDessert.jpg", Glyph: "💥", Alt: "chocolate"},
		{Key: "ChocolateCrackermuseDessert.jpg", Glyph: "🍮", Alt: "mousse"},
		{Key: "WaffleIcecreamDessert.jpg", Glyph: "🧇", Alt: "waffle"},
		{Key: "CherryDrinkBeverage.jpg", Glyph: "🍒", Alt: "cherry"},
		{Key: "GinTonicBeverage.jpg", Glyph: "🍸", Alt: "gin"},
		{Key: "OrangeJuiceBeverage.jpg", Glyph: "🍊", Alt: "juice"},
		{Key: "RedWineBeverage.jpg", Glyph: "🍷", Alt: "red wine"},
		{Key: "WhiteWineBeverage.jpg", Glyph: "🥂", Alt: "white wine"},
	})
}
