package services

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/swrzee/console/modules/core/presentation/templates/layouts"
	"github.com/swrzee/console/modules/dashboard/presentation/viewmodels"
)

func page(title, userName string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		layout := layouts.Authenticated(&layouts.AuthenticatedProps{
			BaseProps: layouts.BaseProps{Title: title},
			UserName:  userName,
		})
		return layout.Render(templ.WithChildren(ctx, content), w)
	})
}

func fieldError(w io.Writer, errorsMap map[string]string, field string) error {
	msg, ok := errorsMap[field]
	if !ok {
		return nil
	}
	_, err := io.WriteString(w, `<p class="field-error">`+templ.EscapeString(msg)+`</p>`)
	return err
}

type NewProps struct {
	UserName     string
	Values       map[string]string
	ErrorMessage string
	ErrorsMap    map[string]string
}

// New renders the service creation form. Features go in as one textarea,
// one feature per line.
func New(props *NewProps) templ.Component {
	return page("New Service", props.UserName, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="form-card"><h1>New Service</h1>`); err != nil {
			return err
		}
		if props.ErrorMessage != "" {
			if _, err := io.WriteString(w, `<div class="alert alert-error">`+templ.EscapeString(props.ErrorMessage)+`</div>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<form method="post" action="/services"><label>Name<input type="text" name="Name" value="`+templ.EscapeString(props.Values["Name"])+`" required></label>`); err != nil {
			return err
		}
		if err := fieldError(w, props.ErrorsMap, "Name"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<label>Description<textarea name="Description" rows="3">`+templ.EscapeString(props.Values["Description"])+`</textarea></label>`); err != nil {
			return err
		}
		if err := fieldError(w, props.ErrorsMap, "Description"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<label>Price (₹)<input type="number" name="Price" min="0" step="0.01" value="`+templ.EscapeString(props.Values["Price"])+`" required></label>`); err != nil {
			return err
		}
		if err := fieldError(w, props.ErrorsMap, "Price"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<label>Duration (months)<input type="number" name="Duration" min="1" value="`+templ.EscapeString(props.Values["Duration"])+`" required></label>`); err != nil {
			return err
		}
		if err := fieldError(w, props.ErrorsMap, "Duration"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<label>Features (one per line)<textarea name="Features" rows="4">`+templ.EscapeString(props.Values["Features"])+`</textarea></label>`); err != nil {
			return err
		}
		if err := fieldError(w, props.ErrorsMap, "Features"); err != nil {
			return err
		}
		checked := ""
		if props.Values["IsActive"] != "false" {
			checked = " checked"
		}
		_, err := io.WriteString(w, `<label class="checkbox"><input type="checkbox" name="IsActive" value="true"`+checked+`>Active</label><button type="submit" class="btn btn-primary">Create Service</button> <a href="/dashboard?tab=services">Cancel</a></form></div>`)
		return err
	}))
}

type DeleteProps struct {
	UserName string
	Service  viewmodels.Service
}

func Delete(props *DeleteProps) templ.Component {
	return page("Delete Service", props.UserName, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="form-card"><h1>Delete service</h1><p>This permanently removes <strong>`+templ.EscapeString(props.Service.Name)+`</strong>.</p><form method="post" action="/services/`+url.PathEscape(props.Service.ID)+`/delete"><button type="submit" class="btn btn-danger">Delete</button> <a href="/dashboard?tab=services">Cancel</a></form></div>`)
		return err
	}))
}
