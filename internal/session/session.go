// Package session holds the state of one ordering session and applies user
// intents to it.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jask/themenu/internal/catalog"
	"github.com/jask/themenu/internal/flow"
	"github.com/jask/themenu/internal/order"
)

// Alert titles.
const (
	TitleError       = "Error"
	TitleAddedToCart = "Added to Cart"
)

var (
	ErrUnknownItem     = errors.New("session: unknown menu item")
	ErrUnknownCategory = errors.New("session: unknown category")
	ErrUnknownIntent   = errors.New("session: unknown intent")
)

// Notifier shows a message the user has to acknowledge.
type Notifier interface {
	Notify(title, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(title, message string)

func (f NotifierFunc) Notify(title, message string) { f(title, message) }

// Options configures a Session. Only Catalog is required.
type Options struct {
	Catalog         *catalog.Catalog
	Notifier        Notifier
	Logger          logrus.FieldLogger
	Prices          order.PriceFormatter
	DefaultCategory string
	// NewReference issues booking references; defaults to random UUIDs.
	NewReference func() string
}

// Session is the application state of one run: current screen, forms, cart
// and category filter. It is not safe for concurrent use; the UI loop is the
// only mutator.
type Session struct {
	nav      *flow.Navigator
	catalog  *catalog.Catalog
	notifier Notifier
	log      logrus.FieldLogger
	prices   order.PriceFormatter
	newRef   func() string

	profile   order.ProfileForm
	booking   order.BookingForm
	dietary   order.DietaryPreferences
	cart      order.Cart
	category  string
	reference string
}

func New(opts Options) (*Session, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("session: catalog is required")
	}
	s := &Session{
		nav:      flow.New(),
		catalog:  opts.Catalog,
		notifier: opts.Notifier,
		log:      opts.Logger,
		prices:   opts.Prices,
		newRef:   opts.NewReference,
		category: opts.Catalog.Default(),
	}
	if s.notifier == nil {
		s.notifier = NotifierFunc(func(string, string) {})
	}
	if s.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		s.log = l
	}
	if s.prices.Prefix == "" {
		s.prices.Prefix = order.DefaultCurrency
	}
	if s.newRef == nil {
		s.newRef = func() string { return uuid.NewString() }
	}
	if opts.DefaultCategory != "" {
		if !opts.Catalog.Has(opts.DefaultCategory) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, opts.DefaultCategory)
		}
		s.category = opts.DefaultCategory
	}
	return s, nil
}

func (s *Session) Screen() flow.Screen               { return s.nav.Current() }
func (s *Session) Catalog() *catalog.Catalog         { return s.catalog }
func (s *Session) Profile() order.ProfileForm        { return s.profile }
func (s *Session) Booking() order.BookingForm        { return s.booking }
func (s *Session) Dietary() order.DietaryPreferences { return s.dietary }
func (s *Session) Cart() order.Cart                  { return s.cart }
func (s *Session) Category() string                  { return s.category }
func (s *Session) Prices() order.PriceFormatter      { return s.prices }

// Reference is the booking reference issued on the last dietary submit.
func (s *Session) Reference() string { return s.reference }

// Items is the catalog slice for the active category.
func (s *Session) Items() []order.MenuItem {
	return s.catalog.Items(s.category)
}

// SetProfileField records a keystroke-level edit of the profile form.
func (s *Session) SetProfileField(field order.Field, value string) error {
	f, err := order.UpdateProfileField(s.profile, field, value)
	if err != nil {
		return err
	}
	s.profile = f
	return nil
}

// SetBookingField records an edit of the booking form.
func (s *Session) SetBookingField(field order.Field, value string) error {
	f, err := order.UpdateBookingField(s.booking, field, value)
	if err != nil {
		return err
	}
	s.booking = f
	return nil
}

// ToggleDietary flips one dietary flag.
func (s *Session) ToggleDietary(flag order.DietaryFlag) error {
	d, err := s.dietary.Toggle(flag)
	if err != nil {
		return err
	}
	s.dietary = d
	return nil
}

// SetTellMeMore replaces the dietary free-text note.
func (s *Session) SetTellMeMore(text string) {
	s.dietary = s.dietary.SetTellMeMore(text)
}

// Dispatch applies one intent. Validation failures are reported through the
// Notifier and returned; the screen is left unchanged.
func (s *Session) Dispatch(in Intent) error {
	from := s.nav.Current()
	log := s.log.WithFields(logrus.Fields{"intent": in.String(), "screen": from})

	var err error
	switch in.Kind {
	case IntentSubmitProfile:
		err = s.advance(flow.Profile, func() error { return order.ValidateProfile(s.profile) })
	case IntentSubmitBooking:
		err = s.advance(flow.Bookings, func() error { return order.ValidateBooking(s.booking) })
	case IntentSubmitDietary:
		err = s.advance(flow.Dietary, nil)
		if err == nil {
			s.reference = s.newRef()
			log = log.WithField("reference", s.reference)
		}
	case IntentAddItem:
		err = s.addItem(in.Arg)
		if cat, ok := s.catalog.CategoryOf(in.Arg); ok {
			log = log.WithField("category", cat)
		}
	case IntentRemoveItem:
		s.cart = s.cart.Remove(in.Arg)
	case IntentSelectCategory:
		if !s.catalog.Has(in.Arg) {
			err = fmt.Errorf("%w: %q", ErrUnknownCategory, in.Arg)
			break
		}
		s.category = in.Arg
	case IntentGoBack:
		s.nav.Back()
	case IntentGoNext:
		return s.next()
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownIntent, in.Kind)
	}

	var ve *order.ValidationError
	switch {
	case errors.As(err, &ve):
		log.WithField("kind", ve.Kind).Info("validation failed")
	case err != nil:
		log.WithError(err).Warn("intent rejected")
	case s.nav.Current() != from:
		log.WithField("to", s.nav.Current()).Info("screen changed")
	default:
		log.WithFields(logrus.Fields{"items": s.cart.ItemCount(), "total": s.cart.Total()}).Debug("intent applied")
	}
	return err
}

// next resolves the generic forward action of the current screen.
func (s *Session) next() error {
	switch s.nav.Current() {
	case flow.Profile:
		return s.Dispatch(SubmitProfile())
	case flow.Bookings:
		return s.Dispatch(SubmitBooking())
	case flow.Dietary:
		return s.Dispatch(SubmitDietary())
	}
	from := s.nav.Current()
	if err := s.nav.AdvanceIfValid(from, nil); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"screen": from, "to": s.nav.Current()}).Info("screen changed")
	return nil
}

func (s *Session) advance(from flow.Screen, validate func() error) error {
	err := s.nav.AdvanceIfValid(from, validate)
	var ve *order.ValidationError
	if errors.As(err, &ve) {
		s.notifier.Notify(TitleError, ve.Message)
	}
	return err
}

func (s *Session) addItem(id string) error {
	item, ok := s.catalog.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	s.cart = s.cart.Add(item)
	s.notifier.Notify(TitleAddedToCart, fmt.Sprintf("%s has been added to your cart", item.Name))
	return nil
}
