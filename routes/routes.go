package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gapbbong/survey-1cl/app"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)

	root.Mount("/api", apiRouter(app))
	root.Mount("/", servePublicFiles())

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Post("/verify", VerifyStudent(app))
	api.Post("/start", StartSurvey(app))
	api.Get("/state", GetState(app))
	api.Get("/draft", GetDraft(app))
	api.Get("/readiness", GetReadiness(app))

	api.Post("/fields/{name}", FieldEvent(app))
	api.Post("/consent", SetConsent(app))

	api.Post("/pickers/address", PickAddress(app))
	api.Post("/pickers/contact", PickContact(app))

	api.Post("/submissions", RequestSubmit(app))
	api.Post("/submissions/{token}/confirm", ConfirmSubmission(app))
	api.Delete("/submissions/{token}", CancelSubmission(app))

	return api
}

func servePublicFiles() http.Handler {
	return http.FileServer(http.Dir("public"))
}
