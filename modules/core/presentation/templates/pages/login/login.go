package login

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/swrzee/console/modules/core/presentation/templates/layouts"
)

type LoginProps struct {
	Email        string
	Next         string
	ErrorMessage string
	ErrorsMap    map[string]string
}

func fieldError(w io.Writer, errorsMap map[string]string, field string) error {
	msg, ok := errorsMap[field]
	if !ok {
		return nil
	}
	_, err := io.WriteString(w, `<p class="field-error">`+templ.EscapeString(msg)+`</p>`)
	return err
}

// Index renders the login form.
func Index(props *LoginProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			action := "/login"
			if props.Next != "" {
				action += "?next=" + url.QueryEscape(props.Next)
			}
			if _, err := io.WriteString(w, `<div class="login-card"><h1>Sign in</h1>`); err != nil {
				return err
			}
			if props.ErrorMessage != "" {
				if _, err := io.WriteString(w, `<div class="alert alert-error">`+templ.EscapeString(props.ErrorMessage)+`</div>`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `<form method="post" action="`+templ.EscapeString(action)+`"><label>Email<input type="email" name="Email" value="`+templ.EscapeString(props.Email)+`" required></label>`); err != nil {
				return err
			}
			if err := fieldError(w, props.ErrorsMap, "Email"); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `<label>Password<input type="password" name="Password" required></label>`); err != nil {
				return err
			}
			if err := fieldError(w, props.ErrorsMap, "Password"); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `<button type="submit" class="btn btn-primary">Sign in</button></form><a class="muted" href="/login/super-admin">Create super admin account</a></div>`); err != nil {
				return err
			}
			return nil
		})
		return layouts.Base(&layouts.BaseProps{Title: "Sign in"}).Render(templ.WithChildren(ctx, content), w)
	})
}

type SuperAdminProps struct {
	Values       map[string]string
	ErrorMessage string
	ErrorsMap    map[string]string
	Created      bool
}

// SuperAdmin renders the one-time super admin registration form.
func SuperAdmin(props *SuperAdminProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := io.WriteString(w, `<div class="login-card"><h1>Create Super Admin Account</h1>`); err != nil {
				return err
			}
			if props.Created {
				if _, err := io.WriteString(w, `<div class="alert alert-success">Super admin created. You can now <a href="/login">sign in</a>.</div></div>`); err != nil {
					return err
				}
				return nil
			}
			if props.ErrorMessage != "" {
				if _, err := io.WriteString(w, `<div class="alert alert-error">`+templ.EscapeString(props.ErrorMessage)+`</div>`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `<form method="post" action="/login/super-admin">`); err != nil {
				return err
			}
			if err := accountFields(w, props.Values, props.ErrorsMap); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `<button type="submit" class="btn btn-primary">Create Super Admin</button></form></div>`); err != nil {
				return err
			}
			return nil
		})
		return layouts.Base(&layouts.BaseProps{Title: "Create Super Admin"}).Render(templ.WithChildren(ctx, content), w)
	})
}

type AdminProps struct {
	Values       map[string]string
	ErrorMessage string
	ErrorsMap    map[string]string
}

// Admin renders the admin creation form shown to a superadmin after login.
func Admin(props *AdminProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := io.WriteString(w, `<div class="login-card"><h1>Create Admin Account</h1>`); err != nil {
				return err
			}
			if props.ErrorMessage != "" {
				if _, err := io.WriteString(w, `<div class="alert alert-error">`+templ.EscapeString(props.ErrorMessage)+`</div>`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `<form method="post" action="/login/admins">`); err != nil {
				return err
			}
			if err := accountFields(w, props.Values, props.ErrorsMap); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `<button type="submit" class="btn btn-primary">Create Admin</button></form><a class="muted" href="/dashboard">Skip to dashboard</a></div>`); err != nil {
				return err
			}
			return nil
		})
		return layouts.Base(&layouts.BaseProps{Title: "Create Admin"}).Render(templ.WithChildren(ctx, content), w)
	})
}

func accountFields(w io.Writer, values, errorsMap map[string]string) error {
	fields := []struct {
		name  string
		label string
		typ   string
	}{
		{"FirstName", "First name", "text"},
		{"LastName", "Last name", "text"},
		{"Email", "Email", "email"},
		{"PhoneNumber", "Phone number", "tel"},
		{"Password", "Password", "password"},
	}
	for _, f := range fields {
		value := ""
		if f.typ != "password" {
			value = values[f.name]
		}
		if _, err := io.WriteString(w, `<label>`+f.label+`<input type="`+f.typ+`" name="`+f.name+`" value="`+templ.EscapeString(value)+`" required></label>`); err != nil {
			return err
		}
		if err := fieldError(w, errorsMap, f.name); err != nil {
			return err
		}
	}
	return nil
}
