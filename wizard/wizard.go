// Package wizard orchestrates the three-step survey flow: verify identity,
// fill the survey, done. It owns the session state, the event bus wiring
// for autosave and readiness, the verification and submission state
// machines, and the picker integrations.
package wizard

import (
	"context"
	"strings"
	"sync"

	"github.com/gapbbong/survey-1cl/draft"
	"github.com/gapbbong/survey-1cl/log"
	"github.com/gapbbong/survey-1cl/model"
	"github.com/gapbbong/survey-1cl/normalize"
	"github.com/gapbbong/survey-1cl/readiness"
	"github.com/gapbbong/survey-1cl/registry"
	"github.com/gapbbong/survey-1cl/validate"
)

type Step int

const (
	StepVerify Step = iota
	StepSurvey
	StepDone
)

type VerifyState int

const (
	VerifyAwaitingNumber VerifyState = iota
	VerifyAwaitingPassword
	Verified
)

type SubmitState int

const (
	SubmitEditing SubmitState = iota
	SubmitAwaitingConfirmation
	SubmitSubmitting
	SubmitDone
	SubmitFailed
)

// Registry is the slice of the registry client the wizard needs.
type Registry interface {
	Lookup(ctx context.Context, num string) (registry.Student, string, error)
	InsertRecord(ctx context.Context, ref string, payload model.SubmissionPayload) error
	UpdateSummary(ctx context.Context, num string, summary map[string]string) error
}

type Wizard struct {
	schema   *model.Schema
	registry Registry
	store    *draft.Store
	address  AddressLookup
	contacts ContactPicker

	// mu serializes access to everything below. Network calls happen with
	// mu released so field edits keep working while the loading flag is up.
	mu          sync.Mutex
	bus         *Bus
	session     Session
	d           *model.FormDraft
	consent     bool
	step        Step
	verifyState VerifyState
	submitState SubmitState
	pending     *Confirmation
	ready       model.ReadinessResult
	loading     bool
}

func New(schema *model.Schema, reg Registry, store *draft.Store, address AddressLookup, contacts ContactPicker) *Wizard {
	w := &Wizard{
		schema:   schema,
		registry: reg,
		store:    store,
		address:  address,
		contacts: contacts,
		bus:      NewBus(),
		d:        model.NewFormDraft(),
	}
	// listener order must not matter: autosave reads only the draft,
	// readiness writes only its own cache
	w.bus.Subscribe(w.autosaveListener)
	w.bus.Subscribe(w.readinessListener)
	w.readiness()
	return w
}

func (w *Wizard) autosaveListener(e Event) {
	if e.Kind != FieldChanged && e.Kind != ConsentChanged {
		return
	}
	w.store.Save(w.d)
}

func (w *Wizard) readinessListener(e Event) {
	if e.Kind != FieldChanged && e.Kind != ConsentChanged {
		return
	}
	w.readiness()
}

func (w *Wizard) readiness() {
	w.ready = readiness.Evaluate(w.schema, w.d, w.consent)
}

// Resume re-hydrates a saved draft at startup. A restored student number
// skips the wizard ahead to the survey step, but the identity itself is
// gone with the old session: submitting will demand re-verification.
func (w *Wizard) Resume() {
	w.mu.Lock()
	defer w.mu.Unlock()

	loaded := w.store.Load()
	if loaded == nil {
		return
	}
	w.d = loaded
	if loaded.StudentNumber != "" {
		w.session.StudentNumber = loaded.StudentNumber
		w.step = StepSurvey
		log.Infof("wizard.resume: draft for %s, skipping to survey", loaded.StudentNumber)
	} else {
		log.Info("wizard.resume: draft restored")
	}
	w.readiness()
}

// Start advances from the verify step once identity is established.
func (w *Wizard) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.verifyState != Verified {
		return ErrNotVerified
	}
	w.step = StepSurvey
	w.bus.Publish(Event{Kind: StepChanged, Step: StepSurvey})
	return nil
}

// InputField applies the per-keystroke normalization for the named field
// and records the result, returning the canonical value for echo.
func (w *Wizard) InputField(name, raw string) (model.FieldValue, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	spec, ok := w.schema.Lookup(name)
	if !ok || spec.Kind == model.KindMulti {
		return model.FieldValue{}, ErrUnknownField
	}

	value := raw
	switch {
	case spec.Control == "tel":
		value = normalize.PhoneKeystroke(w.d.Get(name).Value, raw)
	case name == model.FieldInstagramHandle:
		value = normalize.HandleKeystroke(raw)
	case name == model.FieldPersonalityType:
		value = normalize.Code4Keystroke(raw)
	}

	v := model.Single(value)
	w.d.Set(name, v)
	w.bus.Publish(Event{Kind: FieldChanged, Field: name})
	return v, nil
}

// BlurField applies focus-loss normalization and returns an advisory
// format warning, if any. Warnings never block anything; required-ness and
// final format checks happen at submit time.
func (w *Wizard) BlurField(name string) (warning string, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	spec, ok := w.schema.Lookup(name)
	if !ok || spec.Kind == model.KindMulti {
		return "", ErrUnknownField
	}

	value := w.d.Get(name).Value
	switch {
	case spec.Control == "tel":
		if val := strings.TrimSpace(value); val != "" && !validate.Phone(val) {
			warning = MsgPhoneFormat
		}
	case name == model.FieldInstagramHandle:
		normalized := normalize.HandleBlur(value)
		if normalized != value {
			w.d.Set(name, model.Single(normalized))
			w.bus.Publish(Event{Kind: FieldChanged, Field: name})
		}
	case name == model.FieldPersonalityType:
		warning = code4Warning(validate.Code4(value))
	}
	return warning, nil
}

func code4Warning(verdict validate.Code4Verdict) string {
	switch verdict {
	case validate.Code4TooLong:
		return MsgCode4TooLong
	case validate.Code4BadFull:
		return MsgCode4BadFull
	case validate.Code4BadSingle:
		return MsgCode4BadSingle
	case validate.Code4BadPartial:
		return MsgCode4BadPartial
	default:
		return ""
	}
}

// SetMulti replaces the selection of a grouped checkbox field.
func (w *Wizard) SetMulti(name string, values []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	spec, ok := w.schema.Lookup(name)
	if !ok || spec.Kind != model.KindMulti {
		return ErrUnknownField
	}
	w.d.Set(name, model.Multi(values...))
	w.bus.Publish(Event{Kind: FieldChanged, Field: name})
	return nil
}

func (w *Wizard) SetConsent(given bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.consent = given
	w.bus.Publish(Event{Kind: ConsentChanged})
}

func (w *Wizard) Readiness() model.ReadinessResult {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ready
}

// Draft returns a copy of the current answers for display.
func (w *Wizard) Draft() *model.FormDraft {
	w.mu.Lock()
	defer w.mu.Unlock()

	copied := model.NewFormDraft()
	copied.StudentNumber = w.d.StudentNumber
	for name, value := range w.d.Fields {
		copied.Set(name, value)
	}
	return copied
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) VerifyState() VerifyState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.verifyState
}

func (w *Wizard) SubmitState() SubmitState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitState
}

// Loading reports whether a network call is outstanding. The surface shows
// an overlay off this flag; input is deliberately not locked while it is
// up (soft deterrent, matching the original behavior).
func (w *Wizard) Loading() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.loading
}

func (w *Wizard) setLoading(on bool) {
	w.mu.Lock()
	w.loading = on
	w.mu.Unlock()
}
