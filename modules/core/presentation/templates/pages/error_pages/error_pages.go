package error_pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/swrzee/console/modules/core/presentation/templates/layouts"
)

// NotFoundContent renders the 404 page.
func NotFoundContent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, `<div class="login-card"><h1>Page not found</h1><p>The page you are looking for does not exist.</p><a href="/dashboard">Back to dashboard</a></div>`)
			return err
		})
		return layouts.Base(&layouts.BaseProps{Title: "Not Found"}).Render(templ.WithChildren(ctx, content), w)
	})
}
