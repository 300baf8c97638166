package controllers

import (
	"net/http"
	"unicode"

	"github.com/swrzee/console/modules/core/infrastructure/api"
	"github.com/swrzee/console/modules/dashboard/domain/entities/view"
	"github.com/swrzee/console/modules/dashboard/presentation/templates/pages/dashboard"
	"github.com/swrzee/console/pkg/composables"
)

// renderError surfaces an upstream failure. Authentication failures
// bounce through login; everything else renders the page shell for the
// active tab with the upstream message inline.
func renderError(w http.ResponseWriter, r *http.Request, active view.View, err error) {
	message := api.GenericErrorMessage
	if apiErr, ok := api.AsError(err); ok {
		if apiErr.Unauthorized() {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		message = apiErr.Message
	}
	props := &dashboard.FetchErrorProps{
		PageProps: pageProps(r, active),
		Message:   message,
	}
	w.WriteHeader(http.StatusBadGateway)
	if rerr := dashboard.FetchError(props).Render(r.Context(), w); rerr != nil {
		composables.UseLogger(r.Context()).WithError(rerr).Error("failed to render error page")
	}
}

// apiFieldNames maps upstream validation paths onto form field names
// where capitalizing the first letter is not enough.
var apiFieldNames = map[string]string{
	"serviceName":     "Name",
	"dropdownOptions": "Features",
	"batchId":         "BatchID",
	"userId":          "UserID",
}

func fieldErrorsFrom(apiErr *api.Error) map[string]string {
	out := make(map[string]string, len(apiErr.Fields))
	for path, message := range apiErr.Fields {
		name, ok := apiFieldNames[path]
		if !ok && path != "" {
			runes := []rune(path)
			runes[0] = unicode.ToUpper(runes[0])
			name = string(runes)
		}
		if name != "" {
			out[name] = message
		}
	}
	return out
}
