package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/swrzee/console/modules/core/presentation/assets"
)

type BaseProps struct {
	Title string
}

// Base is the outer HTML document shared by every page.
func Base(props *BaseProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<title>`+templ.EscapeString(props.Title)+`</title>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<link rel="stylesheet" href="/static/`+assets.HashFS.HashName("app.css")+`"></head><body class="bg-gray-50">`); err != nil {
			return err
		}
		if children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</body></html>`); err != nil {
			return err
		}
		return nil
	})
}

type AuthenticatedProps struct {
	BaseProps
	UserName string
}

// Authenticated wraps Base with the console header and logout control.
func Authenticated(props *AuthenticatedProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := io.WriteString(w, `<header class="header"><a href="/dashboard" class="brand">Swrzee Console</a><div class="header-right"><span class="user-name">`+templ.EscapeString(props.UserName)+`</span><form method="post" action="/logout"><button type="submit" class="btn-link">Logout</button></form></div></header><main class="content">`); err != nil {
				return err
			}
			if children != nil {
				if err := children.Render(ctx, w); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</main>`); err != nil {
				return err
			}
			return nil
		})
		return Base(&props.BaseProps).Render(templ.WithChildren(ctx, content), w)
	})
}
