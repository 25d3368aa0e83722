package httpx

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"github.com/gapbbong/survey-1cl/log"
)

// Will log an error, and send an HTTP response with status 500 and default text
func LogInternalError(w http.ResponseWriter, code string, err error) {
	log.Errorf("%s: %s", code, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Will log an error code at the given level, and send
// an HTTP response with status and default text
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	log.Log(level, code)
	http.Error(w, http.StatusText(status), status)
}

// Will log an error code and message at the given level,
// and send an HTTP response with the given status and formatted message
func LogStatusMsg(w http.ResponseWriter, status int, level log.Level, code string, msg string, args ...any) {
	errMsg := fmt.Sprintf(msg, args...)
	log.Log(level, code+":", errMsg)
	http.Error(w, errMsg, status)
}

// ErrorJSON logs an error code and renders a machine-readable error body
// with the user guidance the surface should show.
func ErrorJSON(w http.ResponseWriter, r *http.Request, status int, code string, message string) {
	log.Debugf("%s: %d", code, status)
	render.Status(r, status)
	render.JSON(w, r, map[string]any{
		"code":    code,
		"message": message,
	})
}
