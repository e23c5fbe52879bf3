package order

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func validProfile() ProfileForm {
	return ProfileForm{
		Name:            "Thandi",
		Email:           "thandi@example.co.za",
		Contact:         "0821234567",
		Password:        "secret",
		ConfirmPassword: "secret",
	}
}

func requireKind(t *testing.T, err error, kind ErrorKind) *ValidationError {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, kind), "want %s, got %v", kind, err)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	return ve
}

func TestValidateProfile(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateProfile(validProfile()))

	ve := requireKind(t, ValidateProfile(ProfileForm{}), MissingField)
	require.Equal(t, "Please fill in all fields.", ve.Message)
	require.Equal(t, FieldName, ve.Field)

	f := validProfile()
	f.Contact = "   "
	ve = requireKind(t, ValidateProfile(f), MissingField)
	require.Equal(t, FieldContact, ve.Field)
}

func TestValidateProfileCheckOrder(t *testing.T) {
	t.Parallel()

	f := validProfile()
	f.ConfirmPassword = "other"
	ve := requireKind(t, ValidateProfile(f), PasswordMismatch)
	require.False(t, errors.Is(ve, MissingField))
	require.Equal(t, "Passwords do not match.", ve.Message)

	// mismatch wins over a bad email
	f.Email = "not-an-email"
	requireKind(t, ValidateProfile(f), PasswordMismatch)

	// missing wins over everything
	f.Name = ""
	requireKind(t, ValidateProfile(f), MissingField)
}

func TestValidateProfileEmail(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"a@b.co":           true,
		"first.last@x.org": true,
		"no-at-sign.com":   false,
		"a@nodot":          false,
		"a b@c.com":        false,
		"a@@b.com":         false,
		"@b.com":           false,
	}
	for email, ok := range cases {
		f := validProfile()
		f.Email = email
		err := ValidateProfile(f)
		if ok {
			require.NoError(t, err, email)
			continue
		}
		ve := requireKind(t, err, InvalidEmail)
		require.Equal(t, "Please enter a valid email address.", ve.Message)
	}
}

func TestUpdateProfileField(t *testing.T) {
	t.Parallel()

	var f ProfileForm
	var err error
	for i, field := range ProfileFields {
		f, err = UpdateProfileField(f, field, string(rune('a'+i)))
		require.NoError(t, err)
	}
	require.Equal(t, ProfileForm{Name: "a", Email: "b", Contact: "c", Password: "d", ConfirmPassword: "e"}, f)

	_, err = UpdateProfileField(f, FieldGuests, "3")
	require.Error(t, err)
	_, err = f.Get("nickname")
	require.Error(t, err)
}

// A field holding only spaces counts as missing, which is stricter than a
// plain emptiness check: "   " is not a name.
func TestWhitespaceOnlyFieldsAreMissing(t *testing.T) {
	t.Parallel()

	for _, field := range ProfileFields {
		f, err := UpdateProfileField(validProfile(), field, " \t ")
		require.NoError(t, err)
		ve := requireKind(t, ValidateProfile(f), MissingField)
		require.Equal(t, field, ve.Field)
	}

	b := BookingForm{Date: "Friday", Guests: "4", Location: "  "}
	ve := requireKind(t, ValidateBooking(b), MissingField)
	require.Equal(t, FieldLocation, ve.Field)

	b.Location = "Stellenbosch"
	require.NoError(t, ValidateBooking(b))
}

func TestValidateBooking(t *testing.T) {
	t.Parallel()

	base := BookingForm{Date: "2026-10-20", Guests: "4", Location: "Stellenbosch"}
	require.NoError(t, ValidateBooking(base))

	ve := requireKind(t, ValidateBooking(BookingForm{}), MissingField)
	require.Equal(t, "Please fill in all booking details.", ve.Message)

	noLoc := base
	noLoc.Location = ""
	ve = requireKind(t, ValidateBooking(noLoc), MissingField)
	require.Equal(t, FieldLocation, ve.Field)

	// special requests are optional
	withNote := base
	withNote.SpecialRequests = "window seat"
	require.NoError(t, ValidateBooking(withNote))
}

func TestValidateBookingGuestBounds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		guests string
		ok     bool
	}{
		{"1", true},
		{"20", true},
		{" 7 ", true},
		{"0", false},
		{"21", false},
		{"-3", false},
		{"four", false},
		{"2.5", false},
	}
	for _, tc := range cases {
		f := BookingForm{Date: "Friday", Guests: tc.guests, Location: "Cape Town"}
		err := ValidateBooking(f)
		if tc.ok {
			require.NoError(t, err, tc.guests)
			continue
		}
		ve := requireKind(t, err, InvalidGuestCount)
		require.Equal(t, "Please enter a valid number of guests (1-20).", ve.Message)
	}
}

func TestUpdateBookingField(t *testing.T) {
	t.Parallel()

	f, err := UpdateBookingField(BookingForm{}, FieldGuests, "12")
	require.NoError(t, err)
	n, ok := f.GuestCount()
	require.True(t, ok)
	require.Equal(t, 12, n)

	_, err = UpdateBookingField(f, FieldEmail, "x")
	require.Error(t, err)
}

func TestDietaryToggle(t *testing.T) {
	t.Parallel()

	var d DietaryPreferences
	d, err := d.Toggle(Vegan)
	require.NoError(t, err)
	d, err = d.Toggle(Nuts)
	require.NoError(t, err)
	require.True(t, d.Vegan)
	require.True(t, d.Has(Nuts))
	require.Equal(t, []string{"Vegan", "Nuts"}, d.Selected())

	d, err = d.Toggle(Vegan)
	require.NoError(t, err)
	require.False(t, d.Vegan)

	_, err = d.Toggle("halal")
	require.Error(t, err)

	d = d.SetTellMeMore("no coriander")
	require.Equal(t, "no coriander", d.TellMeMore)
}
