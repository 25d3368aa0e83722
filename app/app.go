package app

import (
	"github.com/gapbbong/survey-1cl/config"
	"github.com/gapbbong/survey-1cl/wizard"
)

type App struct {
	*wizard.Wizard
	config.Config
}
