package routes

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/gapbbong/survey-1cl/app"
	"github.com/gapbbong/survey-1cl/httpx"
	"github.com/gapbbong/survey-1cl/log"
	"github.com/gapbbong/survey-1cl/model"
	"github.com/gapbbong/survey-1cl/registry"
	"github.com/gapbbong/survey-1cl/wizard"
)

func VerifyStudent(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if app.Loading() {
			httpx.LogStatus(w, http.StatusConflict, log.DebugLevel, "verify.busy")
			return
		}

		var body struct {
			Num      string `json:"num"`
			Password string `json:"password"`
		}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		identity, err := app.Verify(r.Context(), body.Num, body.Password)
		switch {
		case err == nil:
			render.JSON(w, r, identity)
		case errors.Is(err, wizard.ErrNumberRequired):
			httpx.ErrorJSON(w, r, http.StatusBadRequest, "verify.number_required", wizard.MsgEnterNumber)
		case errors.Is(err, registry.ErrNotFound):
			httpx.ErrorJSON(w, r, http.StatusNotFound, "verify.not_found", wizard.MsgNotFound)
		case errors.Is(err, wizard.ErrPasswordRequired):
			httpx.ErrorJSON(w, r, http.StatusUnauthorized, "verify.password_required", wizard.MsgPasswordRequired)
		case errors.Is(err, wizard.ErrPasswordMismatch):
			httpx.ErrorJSON(w, r, http.StatusUnauthorized, "verify.password_mismatch", wizard.MsgPasswordMismatch)
		default:
			log.Errorf("verify.lookup: %s", err)
			httpx.ErrorJSON(w, r, http.StatusBadGateway, "verify.transport", wizard.MsgVerifyTransport)
		}
	}
}

func StartSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := app.Start(); err != nil {
			httpx.ErrorJSON(w, r, http.StatusConflict, "start.not_verified", wizard.MsgIdentityLost)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func GetState(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]any{
			"step":         app.Step(),
			"verify_state": app.VerifyState(),
			"submit_state": app.SubmitState(),
			"loading":      app.Loading(),
			"readiness":    app.Readiness(),
		})
	}
}

func GetDraft(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d := app.Draft()
		render.JSON(w, r, map[string]any{
			"fields":         d.Fields,
			"student_number": d.StudentNumber,
		})
	}
}

func GetReadiness(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, app.Readiness())
	}
}

// FieldEvent multiplexes the three control events the form emits: per
// keystroke input, focus loss, and grouped checkbox changes.
func FieldEvent(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		var body struct {
			Event  string   `json:"event"`
			Value  string   `json:"value"`
			Values []string `json:"values"`
		}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		switch body.Event {
		case "input":
			value, err := app.InputField(name, body.Value)
			if err != nil {
				httpx.LogStatus(w, http.StatusNotFound, log.DebugLevel, "field.unknown")
				return
			}
			render.JSON(w, r, map[string]any{"value": value})
		case "blur":
			warning, err := app.BlurField(name)
			if err != nil {
				httpx.LogStatus(w, http.StatusNotFound, log.DebugLevel, "field.unknown")
				return
			}
			render.JSON(w, r, map[string]any{
				"value":   app.Draft().Get(name),
				"warning": warning,
			})
		case "change":
			if err := app.SetMulti(name, body.Values); err != nil {
				httpx.LogStatus(w, http.StatusNotFound, log.DebugLevel, "field.unknown")
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			httpx.LogStatusMsg(w, http.StatusBadRequest, log.DebugLevel, "field.bad_event", "unsupported field event %q", body.Event)
		}
	}
}

func SetConsent(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Given bool `json:"given"`
		}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}
		app.SetConsent(body.Given)
		render.JSON(w, r, app.Readiness())
	}
}

func PickAddress(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := app.Wizard.PickAddress(r.Context())
		switch {
		case err == nil:
			render.JSON(w, r, map[string]any{
				"zip_code":     app.Draft().Get(model.FieldZipCode).Value,
				"home_address": app.Draft().Get(model.FieldHomeAddress).Value,
			})
		case errors.Is(err, wizard.ErrNoPicker):
			httpx.LogStatus(w, http.StatusServiceUnavailable, log.DebugLevel, "picker.address_unavailable")
		default:
			// user dismissal included: nothing happened, nothing to report
			log.Debug("picker.address_dismissed:", err)
			w.WriteHeader(http.StatusNoContent)
		}
	}
}

func PickContact(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Field string `json:"field"`
		}
		err := render.DecodeJSON(r.Body, &body)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		err = app.Wizard.PickContact(r.Context(), body.Field)
		var vErr *wizard.ValidationError
		switch {
		case err == nil:
			render.JSON(w, r, map[string]any{"value": app.Draft().Get(body.Field).Value})
		case errors.Is(err, wizard.ErrNoPicker):
			httpx.LogStatus(w, http.StatusServiceUnavailable, log.DebugLevel, "picker.contact_unavailable")
		case errors.Is(err, wizard.ErrUnknownField):
			httpx.LogStatus(w, http.StatusNotFound, log.DebugLevel, "picker.field_unknown")
		case errors.As(err, &vErr):
			httpx.ErrorJSON(w, r, http.StatusUnprocessableEntity, "picker.no_number", vErr.Message)
		default:
			log.Debug("picker.contact_dismissed:", err)
			w.WriteHeader(http.StatusNoContent)
		}
	}
}

func RequestSubmit(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if app.Loading() {
			httpx.LogStatus(w, http.StatusConflict, log.DebugLevel, "submit.busy")
			return
		}

		confirmation, err := app.Wizard.RequestSubmit()
		var vErr *wizard.ValidationError
		switch {
		case err == nil:
			render.Status(r, http.StatusCreated)
			render.JSON(w, r, confirmation)
		case errors.Is(err, wizard.ErrIdentityLost):
			httpx.ErrorJSON(w, r, http.StatusConflict, "submit.identity_lost", wizard.MsgIdentityLost)
		case errors.Is(err, wizard.ErrConsentRequired):
			httpx.ErrorJSON(w, r, http.StatusForbidden, "submit.consent_required", wizard.MsgConsentRequired)
		case errors.As(err, &vErr):
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, map[string]any{
				"code":    "submit.validation",
				"field":   vErr.Field,
				"label":   vErr.Label,
				"message": vErr.Message,
			})
		default:
			httpx.LogInternalError(w, "submit.stage", err)
		}
	}
}

func ConfirmSubmission(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if app.Loading() {
			httpx.LogStatus(w, http.StatusConflict, log.DebugLevel, "submit.busy")
			return
		}

		err := app.Confirm(r.Context(), chi.URLParam(r, "token"))
		switch {
		case err == nil:
			render.JSON(w, r, map[string]any{"state": "done"})
		case errors.Is(err, wizard.ErrNoPending):
			httpx.LogStatus(w, http.StatusNotFound, log.DebugLevel, "submit.no_pending")
		case errors.Is(err, registry.ErrDuplicate):
			httpx.ErrorJSON(w, r, http.StatusConflict, "submit.duplicate", wizard.UserMessage(err))
		case errors.Is(err, registry.ErrSchemaMismatch), errors.Is(err, registry.ErrBadReference):
			httpx.ErrorJSON(w, r, http.StatusInternalServerError, "submit.backend", wizard.UserMessage(err))
		case errors.Is(err, registry.ErrTransport):
			httpx.ErrorJSON(w, r, http.StatusBadGateway, "submit.transport", wizard.UserMessage(err))
		default:
			// unrecognized backend code: the message carries it for escalation
			httpx.ErrorJSON(w, r, http.StatusInternalServerError, "submit.unknown", wizard.UserMessage(err))
		}
	}
}

func CancelSubmission(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := app.CancelConfirmation(chi.URLParam(r, "token")); err != nil {
			httpx.LogStatus(w, http.StatusNotFound, log.DebugLevel, "submit.no_pending")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
