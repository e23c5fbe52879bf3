package order

import "fmt"

// DietaryFlag is one of the yes/no dietary or allergy options.
type DietaryFlag string

const (
	Vegetarian DietaryFlag = "vegetarian"
	Vegan      DietaryFlag = "vegan"
	GlutenFree DietaryFlag = "glutenFree"
	Dairy      DietaryFlag = "dairy"
	Nuts       DietaryFlag = "nuts"
	Shellfish  DietaryFlag = "shellfish"
)

// Preference flags come first, allergies after.
var (
	PreferenceFlags = []DietaryFlag{Vegetarian, Vegan, GlutenFree}
	AllergyFlags    = []DietaryFlag{Dairy, Nuts, Shellfish}
)

var flagLabels = map[DietaryFlag]string{
	Vegetarian: "Vegetarian",
	Vegan:      "Vegan",
	GlutenFree: "Gluten Free",
	Dairy:      "Dairy",
	Nuts:       "Nuts",
	Shellfish:  "Shellfish",
}

// Label is the display name of the flag.
func (f DietaryFlag) Label() string {
	if l, ok := flagLabels[f]; ok {
		return l
	}
	return string(f)
}

// DietaryPreferences has no cross-field rules; every flag is independent.
type DietaryPreferences struct {
	Vegetarian bool
	Vegan      bool
	GlutenFree bool
	Dairy      bool
	Nuts       bool
	Shellfish  bool
	TellMeMore string
}

func (d *DietaryPreferences) flag(f DietaryFlag) (*bool, error) {
	switch f {
	case Vegetarian:
		return &d.Vegetarian, nil
	case Vegan:
		return &d.Vegan, nil
	case GlutenFree:
		return &d.GlutenFree, nil
	case Dairy:
		return &d.Dairy, nil
	case Nuts:
		return &d.Nuts, nil
	case Shellfish:
		return &d.Shellfish, nil
	}
	return nil, fmt.Errorf("dietary: unknown flag %q", f)
}

// Has reports whether f is set. Unknown flags are never set.
func (d DietaryPreferences) Has(f DietaryFlag) bool {
	p, err := d.flag(f)
	return err == nil && *p
}

// Toggle returns d with f inverted.
func (d DietaryPreferences) Toggle(f DietaryFlag) (DietaryPreferences, error) {
	p, err := d.flag(f)
	if err != nil {
		return d, err
	}
	*p = !*p
	return d, nil
}

// SetTellMeMore returns d with the free-text note replaced.
func (d DietaryPreferences) SetTellMeMore(text string) DietaryPreferences {
	d.TellMeMore = text
	return d
}

// Selected lists the labels of every set flag, preferences before allergies.
func (d DietaryPreferences) Selected() []string {
	var out []string
	for _, f := range append(append([]DietaryFlag{}, PreferenceFlags...), AllergyFlags...) {
		if d.Has(f) {
			out = append(out, f.Label())
		}
	}
	return out
}
