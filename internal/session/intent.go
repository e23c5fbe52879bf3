package session

import "fmt"

// IntentKind is a user action emitted by the presentation layer.
type IntentKind string

const (
	IntentSubmitProfile  IntentKind = "submitProfile"
	IntentAddItem        IntentKind = "addItem"
	IntentRemoveItem     IntentKind = "removeItem"
	IntentSelectCategory IntentKind = "selectCategory"
	IntentSubmitBooking  IntentKind = "submitBooking"
	IntentSubmitDietary  IntentKind = "submitDietary"
	IntentGoBack         IntentKind = "goBack"
	IntentGoNext         IntentKind = "goNext"
)

// Intent is one user action. Arg carries the item ID or category name for
// the intents that need one.
type Intent struct {
	Kind IntentKind
	Arg  string
}

func (i Intent) String() string {
	if i.Arg == "" {
		return string(i.Kind)
	}
	return fmt.Sprintf("%s(%s)", i.Kind, i.Arg)
}

func SubmitProfile() Intent             { return Intent{Kind: IntentSubmitProfile} }
func AddItem(id string) Intent          { return Intent{Kind: IntentAddItem, Arg: id} }
func RemoveItem(id string) Intent       { return Intent{Kind: IntentRemoveItem, Arg: id} }
func SelectCategory(name string) Intent { return Intent{Kind: IntentSelectCategory, Arg: name} }
func SubmitBooking() Intent             { return Intent{Kind: IntentSubmitBooking} }
func SubmitDietary() Intent             { return Intent{Kind: IntentSubmitDietary} }
func GoBack() Intent                    { return Intent{Kind: IntentGoBack} }
func GoNext() Intent                    { return Intent{Kind: IntentGoNext} }
