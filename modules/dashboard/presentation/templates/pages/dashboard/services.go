package dashboard

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/swrzee/console/modules/dashboard/presentation/viewmodels"
)

type ServicesProps struct {
	PageProps
	Services []viewmodels.Service
}

// Services renders active service offerings as a card grid.
func Services(props *ServicesProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := io.WriteString(w, `<div class="toolbar"><a class="btn btn-primary" href="/services/new">New Service</a></div>`); err != nil {
				return err
			}
			if len(props.Services) == 0 {
				_, err := io.WriteString(w, `<p class="empty">No services yet</p>`)
				return err
			}
			if _, err := io.WriteString(w, `<div class="card-grid">`); err != nil {
				return err
			}
			for _, s := range props.Services {
				if err := serviceCard(w, s); err != nil {
					return err
				}
			}
			_, err := io.WriteString(w, `</div>`)
			return err
		})
		return Page(&props.PageProps).Render(templ.WithChildren(ctx, content), w)
	})
}

func serviceCard(w io.Writer, s viewmodels.Service) error {
	badge := `<span class="badge badge-muted">Inactive</span>`
	if s.Active {
		badge = `<span class="badge badge-ok">Active</span>`
	}
	if _, err := io.WriteString(w, `<div class="card"><div class="card-head"><h3>`+templ.EscapeString(s.Name)+`</h3>`+badge+`</div><p>`+templ.EscapeString(s.Description)+`</p><p class="price">`+templ.EscapeString(s.Price)+`</p>`); err != nil {
		return err
	}
	if s.Duration != "" {
		if _, err := io.WriteString(w, `<p class="muted">`+templ.EscapeString(s.Duration)+`</p>`); err != nil {
			return err
		}
	}
	if len(s.Options) > 0 {
		if _, err := io.WriteString(w, `<ul class="features">`); err != nil {
			return err
		}
		for _, opt := range s.Options {
			if _, err := io.WriteString(w, `<li>`+templ.EscapeString(opt)+`</li>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</ul>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `<div class="card-actions"><a class="danger" href="/services/`+url.PathEscape(s.ID)+`/delete">Delete</a></div></div>`)
	return err
}
