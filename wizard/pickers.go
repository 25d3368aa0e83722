package wizard

import (
	"context"
	"regexp"

	"github.com/gapbbong/survey-1cl/log"
	"github.com/gapbbong/survey-1cl/model"
	"github.com/gapbbong/survey-1cl/normalize"
)

// Address is what the postal-code lookup widget hands back.
type Address struct {
	Zonecode         string
	Address          string
	Bname            string
	BuildingName     string
	Apartment        string
	UserSelectedType string
}

// AddressLookup and ContactPicker wrap the third-party pickers. Both are
// opaque, user-driven and may simply be cancelled; a cancellation comes
// back as an error and is logged, not surfaced.
type AddressLookup interface {
	Lookup(ctx context.Context) (Address, error)
}

type ContactPicker interface {
	Pick(ctx context.Context) (tel string, err error)
}

var reTownSuffix = regexp.MustCompile(`[동로가]$`)

// FullAddress composes the display address the way the postal widget's
// road-name flow does: neighborhood and building name appended in
// parentheses when applicable.
func (a Address) FullAddress() string {
	full := a.Address
	if a.UserSelectedType != "R" {
		return full
	}
	extra := ""
	if a.Bname != "" && reTownSuffix.MatchString(a.Bname) {
		extra = a.Bname
	}
	if a.BuildingName != "" && a.Apartment == "Y" {
		if extra != "" {
			extra += ", " + a.BuildingName
		} else {
			extra = a.BuildingName
		}
	}
	if extra != "" {
		full += " (" + extra + ")"
	}
	return full
}

// PickAddress runs the postal-code widget and writes zip code and address
// into the form, synthesizing change events so autosave and readiness see
// the fields as if they were typed.
func (w *Wizard) PickAddress(ctx context.Context) error {
	if w.address == nil {
		return ErrNoPicker
	}

	addr, err := w.address.Lookup(ctx)
	if err != nil {
		log.Debugf("wizard.pick_address: %s", err)
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.d.Set(model.FieldZipCode, model.Single(addr.Zonecode))
	w.d.Set(model.FieldHomeAddress, model.Single(addr.FullAddress()))
	w.bus.Publish(Event{Kind: FieldChanged, Field: model.FieldZipCode})
	w.bus.Publish(Event{Kind: FieldChanged, Field: model.FieldHomeAddress})
	return nil
}

// PickContact fills the named phone field from the contact picker,
// canonicalizing whatever number shape the contact carries.
func (w *Wizard) PickContact(ctx context.Context, field string) error {
	if w.contacts == nil {
		return ErrNoPicker
	}

	spec, ok := w.schema.Lookup(field)
	if !ok || spec.Control != "tel" {
		return ErrUnknownField
	}

	tel, err := w.contacts.Pick(ctx)
	if err != nil {
		log.Debugf("wizard.pick_contact: %s", err)
		return err
	}
	if tel == "" {
		return &ValidationError{Field: field, Message: MsgNoContactNumber}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.d.Set(field, model.Single(normalize.ContactDigits(tel)))
	w.bus.Publish(Event{Kind: FieldChanged, Field: field})
	return nil
}
