package shared

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/go-playground/form"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

var Decoder = form.NewDecoder()

var ErrMissingParam = errors.New("missing path parameter")

// GetParam returns a named path parameter from the request route.
func GetParam(r *http.Request, name string) (string, error) {
	v, ok := mux.Vars(r)[name]
	if !ok || v == "" {
		return "", errors.Wrap(ErrMissingParam, name)
	}
	return v, nil
}

// SetFlash stores a one-shot value in a cookie that the next render
// consumes via composables.UseFlash.
func SetFlash(w http.ResponseWriter, name string, value []byte) {
	http.SetCookie(w, &http.Cookie{
		Name:  name,
		Value: base64.URLEncoding.EncodeToString(value),
		Path:  "/",
	})
}

func SetFlashMap[K comparable, V any](w http.ResponseWriter, name string, value map[K]V) {
	b, err := json.Marshal(value)
	if err != nil {
		panic(errors.Wrap(err, "failed to marshal flash map"))
	}
	SetFlash(w, name, b)
}

// Redirect sends the browser to the given path. HTMX requests get the
// HX-Redirect header instead of a 302 so the swap happens client side.
func Redirect(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("Hx-Request") == "true" {
		w.Header().Set("Hx-Redirect", path)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, path, http.StatusFound)
}
