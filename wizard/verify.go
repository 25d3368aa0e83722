package wizard

import (
	"context"
	"strings"

	"github.com/gapbbong/survey-1cl/log"
	"github.com/gapbbong/survey-1cl/model"
)

// Verify runs one round of the identity exchange. With a password on file
// and none supplied it parks the flow at AwaitingPassword and the caller
// re-prompts; the comparison itself is exact string equality against the
// value stored on the latest record (see the plaintext note in DESIGN.md).
func (w *Wizard) Verify(ctx context.Context, num, password string) (model.Identity, error) {
	num = strings.TrimSpace(num)
	if num == "" {
		return model.Identity{}, ErrNumberRequired
	}

	w.setLoading(true)
	student, stored, err := w.registry.Lookup(ctx, num)
	w.setLoading(false)
	if err != nil {
		log.Debugf("wizard.verify.lookup: %s", err)
		return model.Identity{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if stored != "" && password == "" {
		w.verifyState = VerifyAwaitingPassword
		return model.Identity{}, ErrPasswordRequired
	}
	if stored != "" && password != stored {
		w.verifyState = VerifyAwaitingPassword
		return model.Identity{}, ErrPasswordMismatch
	}

	identity := model.Identity{
		StudentNumber: num,
		DisplayName:   student.Name,
		Ref:           student.Ref,
		HasPassword:   stored != "",
	}
	w.verifyState = Verified
	w.session.Identity = &identity
	w.session.StoredPassword = stored
	w.session.StudentNumber = num
	w.d.StudentNumber = num

	if stored != "" {
		// pre-fill the survey's own password fields with the verified value
		w.d.Set(model.FieldPassword, model.Single(stored))
		w.d.Set(model.FieldPasswordConfirm, model.Single(stored))
		w.bus.Publish(Event{Kind: FieldChanged, Field: model.FieldPassword})
		w.bus.Publish(Event{Kind: FieldChanged, Field: model.FieldPasswordConfirm})
	} else {
		w.store.Save(w.d)
	}

	log.Infof("wizard.verify: %s verified", num)
	return identity, nil
}
