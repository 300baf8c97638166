package dashboard

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/swrzee/console/modules/core/presentation/templates/layouts"
	"github.com/swrzee/console/modules/dashboard/domain/entities/view"
)

type PageProps struct {
	UserName string
	Active   view.View
}

func nav(w io.Writer, active view.View) error {
	if _, err := io.WriteString(w, `<nav class="tabs">`); err != nil {
		return err
	}
	for _, v := range view.All() {
		class := "tab"
		if v == active {
			class = "tab tab-active"
		}
		if _, err := io.WriteString(w, `<a class="`+class+`" href="`+templ.EscapeString(v.URL())+`">`+templ.EscapeString(v.Title())+`</a>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</nav>`)
	return err
}

type FetchErrorProps struct {
	PageProps
	Message string
}

// FetchError renders the page shell with the upstream failure inline,
// so the user keeps the tab bar and can retry from where they are.
func FetchError(props *FetchErrorProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, `<div class="alert alert-error">`+templ.EscapeString(props.Message)+`</div>`)
			return err
		})
		return Page(&props.PageProps).Render(templ.WithChildren(ctx, content), w)
	})
}

// Page wraps tab content in the authenticated layout with the tab bar.
func Page(props *PageProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if err := nav(w, props.Active); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `<main class="tab-content">`); err != nil {
				return err
			}
			if children != nil {
				if err := children.Render(ctx, w); err != nil {
					return err
				}
			}
			_, err := io.WriteString(w, `</main>`)
			return err
		})
		layout := layouts.Authenticated(&layouts.AuthenticatedProps{
			BaseProps: layouts.BaseProps{Title: props.Active.Title()},
			UserName:  props.UserName,
		})
		return layout.Render(templ.WithChildren(ctx, content), w)
	})
}
