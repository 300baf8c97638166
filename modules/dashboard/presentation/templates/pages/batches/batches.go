package batches

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

func textInput(w io.Writer, name, label, typ, value string, errorsMap map[string]string) error {
	if _, err := io.WriteString(w, `<label>`+label+`<input type="`+typ+`" name="`+name+`" value="`+templ.EscapeString(value)+`"></label>`); err != nil {
		return err
	}
	return fieldError(w, errorsMap, name)
}

type NewProps struct {
	UserName     string
	Values       map[string]string
	Selected     map[string]bool
	Services     []viewmodels.Service
	ErrorMessage string
	ErrorsMap    map[string]string
}

// New renders the batch creation form with the course services to bundle.
func New(props *NewProps) templ.Component {
	return page("New Batch", props.UserName, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="form-card"><h1>New Batch</h1>`); err != nil {
			return err
		}
		if props.ErrorMessage != "" {
			if _, err := io.WriteString(w, `<div class="alert alert-error">`+templ.EscapeString(props.ErrorMessage)+`</div>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<form method="post" action="/batches">`); err != nil {
			return err
		}
		fields := []struct {
			name  string
			label string
			typ   string
		}{
			{"BatchID", "Batch ID", "text"},
			{"ProgramName", "Program name", "text"},
			{"CourseCredit", "Course credit", "number"},
			{"StartDate", "Start date", "date"},
			{"EndDate", "End date", "date"},
			{"Year", "Year", "number"},
			{"TotalFee", "Total fee (₹)", "number"},
			{"MinPercentage", "Minimum attendance (%)", "number"},
			{"GraceDays", "Grace days", "number"},
		}
		for _, f := range fields {
			if err := textInput(w, f.name, f.label, f.typ, props.Values[f.name], props.ErrorsMap); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<fieldset><legend>Services</legend>`); err != nil {
			return err
		}
		for _, s := range props.Services {
			checked := ""
			if props.Selected[s.ID] {
				checked = " checked"
			}
			if _, err := io.WriteString(w, `<label class="checkbox"><input type="checkbox" name="Services" value="`+templ.EscapeString(s.ID)+`"`+checked+`>`+templ.EscapeString(s.Name)+`</label>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</fieldset>`); err != nil {
			return err
		}
		if err := fieldError(w, props.ErrorsMap, "Services"); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<button type="submit" class="btn btn-primary">Create Batch</button> <a href="/dashboard?tab=batches">Cancel</a></form></div>`)
		return err
	}))
}

type StudentsProps struct {
	UserName string
	Batch    viewmodels.Batch
	Students []viewmodels.User
}

// Students lists the batch roster with per-row removal.
func Students(props *StudentsProps) templ.Component {
	return page(props.Batch.BatchID+" Students", props.UserName, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<article class="detail"><header><h1>`+templ.EscapeString(props.Batch.ProgramName)+`</h1><span class="badge">`+templ.EscapeString(props.Batch.BatchID)+`</span></header>`); err != nil {
			return err
		}
		if len(props.Students) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No students enrolled</p><a href="/dashboard?tab=batches">Back to batches</a></article>`)
			return err
		}
		if _, err := io.WriteString(w, `<table class="list"><thead><tr><th>User ID</th><th>Name</th><th>Email</th><th>Payment</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		batchID := url.PathEscape(props.Batch.ID)
		for _, s := range props.Students {
			if _, err := io.WriteString(w, `<tr><td>`+templ.EscapeString(s.UserID)+`</td><td>`+templ.EscapeString(s.Name)+`</td><td>`+templ.EscapeString(s.Email)+`</td><td>`+templ.EscapeString(s.PaymentStatus)+`</td><td class="actions"><form method="post" action="/batches/`+batchID+`/students/`+url.PathEscape(s.ID)+`/remove"><button type="submit" class="danger">Remove</button></form></td></tr>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table><a href="/dashboard?tab=batches">Back to batches</a></article>`)
		return err
	}))
}

type DeleteProps struct {
	UserName string
	Batch    viewmodels.Batch
}

func Delete(props *DeleteProps) templ.Component {
	return page("Delete Batch", props.UserName, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="form-card"><h1>Delete batch</h1><p>This permanently removes <strong>`+templ.EscapeString(props.Batch.BatchID)+`</strong> (`+templ.EscapeString(props.Batch.ProgramName)+`).</p><form method="post" action="/batches/`+url.PathEscape(props.Batch.ID)+`/delete"><button type="submit" class="btn btn-danger">Delete</button> <a href="/dashboard?tab=batches">Cancel</a></form></div>`)
		return err
	}))
}
