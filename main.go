package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gapbbong/survey-1cl/app"
	"github.com/gapbbong/survey-1cl/config"
	"github.com/gapbbong/survey-1cl/database"
	"github.com/gapbbong/survey-1cl/draft"
	"github.com/gapbbong/survey-1cl/log"
	"github.com/gapbbong/survey-1cl/model"
	"github.com/gapbbong/survey-1cl/registry"
	"github.com/gapbbong/survey-1cl/routes"
	"github.com/gapbbong/survey-1cl/wizard"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	schema := model.SurveySchema()
	store := draft.NewStore(database.NewKV(db), schema)
	students := registry.New(cfg)

	// address and contact pickers come from the hosting surface; headless
	// deployments run without them and the wizard reports them unavailable
	wiz := wizard.New(schema, students, store, nil, nil)
	wiz.Resume()

	app := app.App{
		Wizard: wiz,
		Config: cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
