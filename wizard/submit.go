package wizard

import (
	"context"

	"github.com/gofrs/uuid"

	"github.com/gapbbong/survey-1cl/log"
	"github.com/gapbbong/survey-1cl/model"
	"github.com/gapbbong/survey-1cl/readiness"
	"github.com/gapbbong/survey-1cl/validate"
)

// valueBudget caps each value shown on the confirmation list.
const valueBudget = 40

// PrimaryContactFallback is shown on the confirmation excerpt when no
// primary contact was chosen.
const PrimaryContactFallback = "미지정"

// Confirmation stages a payload behind an explicit user accept. The token
// ties the accept to exactly this build of the payload.
type Confirmation struct {
	Token   string             `json:"token"`
	Summary Summary            `json:"summary"`
	Items   []ConfirmationItem `json:"items"`

	payload model.SubmissionPayload
}

// Summary is the short "key fields" excerpt shown on top of the full list.
type Summary struct {
	StudentPhone   string `json:"student_phone"`
	Address        string `json:"address"`
	PrimaryContact string `json:"primary_contact"`
}

type ConfirmationItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// RequestSubmit validates the whole form and stages the payload for
// confirmation. The check order is fixed: required fields, then the three
// phone fields, then handle, then code-4. The first failure names the
// field so the surface can focus and scroll to it.
func (w *Wizard) RequestSubmit() (*Confirmation, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.session.Identity == nil {
		return nil, ErrIdentityLost
	}
	if !w.consent {
		return nil, ErrConsentRequired
	}

	if err := w.validateForm(); err != nil {
		w.submitState = SubmitEditing
		return nil, err
	}

	payload := buildPayload(w.schema, w.d, w.session)
	token, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	w.pending = &Confirmation{
		Token:   token.String(),
		Summary: buildSummary(payload),
		Items:   confirmationItems(w.schema, payload),
		payload: payload,
	}
	w.submitState = SubmitAwaitingConfirmation
	w.bus.Publish(Event{Kind: SubmitRequested})
	return w.pending, nil
}

func (w *Wizard) validateForm() error {
	for _, spec := range w.schema.Fields() {
		if spec.Required && !validate.RequiredFilled(w.d.Get(spec.Name)) {
			return &ValidationError{Field: spec.Name, Label: readiness.CleanLabel(spec.Label), Message: MsgMissingRequired}
		}
	}

	for _, name := range []string{model.FieldStudentPhone, model.FieldPrimaryGuardianPhone, model.FieldSecondaryGuardianPhone} {
		value := w.d.Get(name).Value
		if value == "" {
			continue
		}
		if !validate.Phone(value) {
			spec, _ := w.schema.Lookup(name)
			label := readiness.CleanLabel(spec.Label)
			return &ValidationError{Field: name, Label: label, Message: label + " " + MsgPhoneFormat}
		}
	}

	if handle := w.d.Get(model.FieldInstagramHandle).Value; handle != "" && !validate.Handle(handle) {
		return &ValidationError{Field: model.FieldInstagramHandle, Label: "인스타 ID", Message: MsgHandleInvalid}
	}

	if code := w.d.Get(model.FieldPersonalityType).Value; code != "" && !validate.Code4(code).Valid() {
		return &ValidationError{Field: model.FieldPersonalityType, Label: "MBTI", Message: MsgCode4Invalid}
	}
	return nil
}

func buildSummary(p model.SubmissionPayload) Summary {
	primary := p[model.FieldPrimaryContact]
	if primary == "" {
		primary = PrimaryContactFallback
	}
	return Summary{
		StudentPhone:   p[model.FieldStudentPhone],
		Address:        p[model.FieldHomeAddress],
		PrimaryContact: primary,
	}
}

func confirmationItems(schema *model.Schema, p model.SubmissionPayload) []ConfirmationItem {
	items := []ConfirmationItem{}
	for _, spec := range schema.Fields() {
		if spec.Control == "password" {
			continue
		}
		value, ok := p[spec.Name]
		if !ok {
			continue
		}
		items = append(items, ConfirmationItem{Label: readiness.CleanLabel(spec.Label), Value: truncate(value)})
	}
	items = append(items,
		ConfirmationItem{Label: "학적", Value: p[model.FieldEnrollmentStatus]},
		ConfirmationItem{Label: "학번", Value: p[model.FieldStudentNumber]},
		ConfirmationItem{Label: "이름", Value: p[model.FieldStudentName]},
	)
	return items
}

func truncate(value string) string {
	runes := []rune(value)
	if len(runes) <= valueBudget {
		return value
	}
	return string(runes[:valueBudget]) + "…"
}

// Confirm performs the remote write for a staged payload. Only the insert
// decides success; the summary update afterwards is best-effort. The draft
// is deliberately left in local storage either way.
func (w *Wizard) Confirm(ctx context.Context, token string) error {
	w.mu.Lock()
	if w.pending == nil || w.pending.Token != token {
		w.mu.Unlock()
		return ErrNoPending
	}
	// claim the stage before releasing the lock, so a second accept of
	// the same token cannot race the insert into a duplicate record
	pending := w.pending
	w.pending = nil
	identity := *w.session.Identity
	w.submitState = SubmitSubmitting
	w.loading = true
	w.mu.Unlock()

	err := w.registry.InsertRecord(ctx, identity.Ref, pending.payload)
	if err == nil {
		if sumErr := w.registry.UpdateSummary(ctx, identity.StudentNumber, summaryFields(pending.payload)); sumErr != nil {
			log.Warnf("wizard.submit.summary: %s", sumErr)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.loading = false

	if err != nil {
		w.submitState = SubmitFailed
		log.Errorf("wizard.submit.insert: %s", err)
		return err
	}

	w.submitState = SubmitDone
	w.step = StepDone
	w.bus.Publish(Event{Kind: StepChanged, Step: StepDone})
	log.Infof("wizard.submit: record stored for %s", identity.StudentNumber)
	return nil
}

// CancelConfirmation discards the staged payload and returns to editing.
// Nothing was committed and the stored draft is untouched.
func (w *Wizard) CancelConfirmation(token string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending == nil || w.pending.Token != token {
		return ErrNoPending
	}
	w.pending = nil
	w.submitState = SubmitEditing
	return nil
}
