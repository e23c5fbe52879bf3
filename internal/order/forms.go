package order

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Field names an editable form field.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldContact         Field = "contact"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"

	FieldDate            Field = "date"
	FieldGuests          Field = "guests"
	FieldLocation        Field = "location"
	FieldSpecialRequests Field = "specialRequests"

	FieldTellMeMore Field = "tellMeMore"
)

// ProfileFields lists the profile form in display and validation order.
var ProfileFields = []Field{FieldName, FieldEmail, FieldContact, FieldPassword, FieldConfirmPassword}

// BookingFields lists the booking form in display order.
var BookingFields = []Field{FieldDate, FieldGuests, FieldLocation, FieldSpecialRequests}

const (
	MinGuests = 1
	MaxGuests = 20
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ProfileForm is the account details captured before browsing the menu.
type ProfileForm struct {
	Name            string
	Email           string
	Contact         string
	Password        string
	ConfirmPassword string
}

// Get returns the value of a profile field.
func (f ProfileForm) Get(field Field) (string, error) {
	switch field {
	case FieldName:
		return f.Name, nil
	case FieldEmail:
		return f.Email, nil
	case FieldContact:
		return f.Contact, nil
	case FieldPassword:
		return f.Password, nil
	case FieldConfirmPassword:
		return f.ConfirmPassword, nil
	}
	return "", fmt.Errorf("profile: unknown field %q", field)
}

// UpdateProfileField returns form with field set to value.
func UpdateProfileField(form ProfileForm, field Field, value string) (ProfileForm, error) {
	switch field {
	case FieldName:
		form.Name = value
	case FieldEmail:
		form.Email = value
	case FieldContact:
		form.Contact = value
	case FieldPassword:
		form.Password = value
	case FieldConfirmPassword:
		form.ConfirmPassword = value
	default:
		return form, fmt.Errorf("profile: unknown field %q", field)
	}
	return form, nil
}

// ValidateProfile checks completeness, then password confirmation, then the
// email shape. Only the first failure is reported.
func ValidateProfile(form ProfileForm) error {
	for _, field := range ProfileFields {
		v, _ := form.Get(field)
		if blank(v) {
			return invalid(MissingField, field, "Please fill in all fields.")
		}
	}
	if form.Password != form.ConfirmPassword {
		return invalid(PasswordMismatch, FieldConfirmPassword, "Passwords do not match.")
	}
	if !emailPattern.MatchString(form.Email) {
		return invalid(InvalidEmail, FieldEmail, "Please enter a valid email address.")
	}
	return nil
}

// BookingForm is the table reservation request.
type BookingForm struct {
	Date            string
	Guests          string
	Location        string
	SpecialRequests string
}

func (f BookingForm) Get(field Field) (string, error) {
	switch field {
	case FieldDate:
		return f.Date, nil
	case FieldGuests:
		return f.Guests, nil
	case FieldLocation:
		return f.Location, nil
	case FieldSpecialRequests:
		return f.SpecialRequests, nil
	}
	return "", fmt.Errorf("booking: unknown field %q", field)
}

// UpdateBookingField returns form with field set to value.
func UpdateBookingField(form BookingForm, field Field, value string) (BookingForm, error) {
	switch field {
	case FieldDate:
		form.Date = value
	case FieldGuests:
		form.Guests = value
	case FieldLocation:
		form.Location = value
	case FieldSpecialRequests:
		form.SpecialRequests = value
	default:
		return form, fmt.Errorf("booking: unknown field %q", field)
	}
	return form, nil
}

// GuestCount parses the guests field. ok is false when it is not an integer.
func (f BookingForm) GuestCount() (n int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(f.Guests))
	return n, err == nil
}

// ValidateBooking requires date, guests and location, and a guest count in
// [MinGuests, MaxGuests]. Special requests are optional.
func ValidateBooking(form BookingForm) error {
	if blank(form.Date) || blank(form.Guests) || blank(form.Location) {
		field := FieldDate
		switch {
		case blank(form.Date):
		case blank(form.Guests):
			field = FieldGuests
		default:
			field = FieldLocation
		}
		return invalid(MissingField, field, "Please fill in all booking details.")
	}
	n, ok := form.GuestCount()
	if !ok || n < MinGuests || n > MaxGuests {
		return invalid(InvalidGuestCount, FieldGuests,
			fmt.Sprintf("Please enter a valid number of guests (%d-%d).", MinGuests, MaxGuests))
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
