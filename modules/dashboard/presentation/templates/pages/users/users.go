package users

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

func fact(w io.Writer, label, value string) error {
	if value == "" {
		return nil
	}
	_, err := io.WriteString(w, `<div class="fact"><p class="fact-label">`+templ.EscapeString(label)+`</p><p class="fact-value">`+templ.EscapeString(value)+`</p></div>`)
	return err
}

type ShowProps struct {
	UserName string
	User     viewmodels.User
}

// Show renders the full user profile.
func Show(props *ShowProps) templ.Component {
	return page(props.User.Name, props.UserName, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		u := props.User
		if _, err := io.WriteString(w, `<article class="detail"><header><h1>`+templ.EscapeString(u.Name)+`</h1><span class="badge">`+templ.EscapeString(u.UserID)+`</span></header><div class="fact-grid">`); err != nil {
			return err
		}
		facts := []struct{ label, value string }{
			{"Email", u.Email},
			{"Phone", u.PhoneNumber},
			{"Role", u.Role},
			{"Batch", u.BatchID},
			{"Department", u.Department},
			{"Roll Number", u.RollNumber},
			{"Semester", u.Semester},
			{"Institution", u.Institution},
			{"Father's Name", u.FatherName},
			{"Grade", u.Grade},
			{"Course Credit Score", u.CourseCreditScore},
			{"Address", u.Address},
			{"Attendance", u.AttendanceLabel},
			{"Payment", u.PaymentStatus},
			{"Status", u.ActiveStatus},
			{"Last Login", u.LastLogin},
			{"Joined", u.Created},
		}
		for _, f := range facts {
			if err := fact(w, f.label, f.value); err != nil {
				return err
			}
		}
		id := url.PathEscape(u.ID)
		_, err := io.WriteString(w, `</div><div class="card-actions"><a class="btn" href="/users/`+id+`/edit">Edit</a> <a class="btn" href="/users/`+id+`/assign">Assign Batch</a> <a href="/dashboard?tab=users">Back to users</a></div></article>`)
		return err
	}))
}

type EditProps struct {
	UserName     string
	ID           string
	Values       map[string]string
	ErrorMessage string
	ErrorsMap    map[string]string
}

// Edit renders the user edit form, re-populated on validation failure.
func Edit(props *EditProps) templ.Component {
	return page("Edit User", props.UserName, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="form-card"><h1>Edit User</h1>`); err != nil {
			return err
		}
		if props.ErrorMessage != "" {
			if _, err := io.WriteString(w, `<div class="alert alert-error">`+templ.EscapeString(props.ErrorMessage)+`</div>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<form method="post" action="/users/`+url.PathEscape(props.ID)+`/edit">`); err != nil {
			return err
		}
		fields := []struct {
			name  string
			label string
			typ   string
		}{
			{"FirstName", "First name", "text"},
			{"LastName", "Last name", "text"},
			{"BatchID", "Batch ID", "text"},
			{"Department", "Department", "text"},
			{"RollNumber", "Roll number", "text"},
			{"Semester", "Semester", "number"},
			{"Institution", "Institution", "text"},
			{"FatherName", "Father's name", "text"},
			{"CourseCreditScore", "Course credit score", "number"},
			{"Grade", "Grade", "text"},
		}
		for _, f := range fields {
			if _, err := io.WriteString(w, `<label>`+f.label+`<input type="`+f.typ+`" name="`+f.name+`" value="`+templ.EscapeString(props.Values[f.name])+`"></label>`); err != nil {
				return err
			}
			if err := fieldError(w, props.ErrorsMap, f.name); err != nil {
				return err
			}
		}
		if err := checkbox(w, "PaymentStatus", "Payment received", props.Values["PaymentStatus"] == "true"); err != nil {
			return err
		}
		if err := checkbox(w, "ActiveStatus", "Active", props.Values["ActiveStatus"] == "true"); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<button type="submit" class="btn btn-primary">Save</button> <a href="/dashboard?tab=users">Cancel</a></form></div>`)
		return err
	}))
}

func checkbox(w io.Writer, name, label string, checked bool) error {
	attr := ""
	if checked {
		attr = " checked"
	}
	_, err := io.WriteString(w, `<label class="checkbox"><input type="checkbox" name="`+name+`" value="true"`+attr+`>`+label+`</label>`)
	return err
}

type AssignProps struct {
	UserName     string
	User         viewmodels.User
	Batches      []viewmodels.Batch
	ErrorMessage string
}

// Assign renders the batch selector for enrolling a student.
func Assign(props *AssignProps) templ.Component {
	return page("Assign Batch", props.UserName, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="form-card"><h1>Assign `+templ.EscapeString(props.User.Name)+` to a batch</h1>`); err != nil {
			return err
		}
		if props.ErrorMessage != "" {
			if _, err := io.WriteString(w, `<div class="alert alert-error">`+templ.EscapeString(props.ErrorMessage)+`</div>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<form method="post" action="/users/`+url.PathEscape(props.User.ID)+`/assign"><label>Batch<select name="BatchID" required><option value="">Select a batch</option>`); err != nil {
			return err
		}
		for _, b := range props.Batches {
			selected := ""
			if b.BatchID == props.User.BatchID {
				selected = " selected"
			}
			if _, err := io.WriteString(w, `<option value="`+templ.EscapeString(b.ID)+`"`+selected+`>`+templ.EscapeString(b.BatchID+" – "+b.ProgramName)+`</option>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</select></label><button type="submit" class="btn btn-primary">Assign</button> <a href="/dashboard?tab=users">Cancel</a></form></div>`)
		return err
	}))
}

type DeleteProps struct {
	UserName string
	User     viewmodels.User
}

// Delete renders the destructive-action confirmation.
func Delete(props *DeleteProps) templ.Component {
	return page("Delete User", props.UserName, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="form-card"><h1>Delete user</h1><p>This permanently removes <strong>`+templ.EscapeString(props.User.Name)+`</strong> (`+templ.EscapeString(props.User.UserID)+`).</p><form method="post" action="/users/`+url.PathEscape(props.User.ID)+`/delete"><button type="submit" class="btn btn-danger">Delete</button> <a href="/dashboard?tab=users">Cancel</a></form></div>`)
		return err
	}))
}
