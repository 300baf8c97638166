package dashboard

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/swrzee/console/pkg/projection"

	"github.com/swrzee/console/modules/dashboard/domain/entities/view"
	"github.com/swrzee/console/modules/dashboard/presentation/viewmodels"
)

type UsersProps struct {
	PageProps
	Result projection.Result[viewmodels.User]
	State  projection.State
	Stats  viewmodels.UserStats
}

func usersURL(st projection.State) string {
	v := url.Values{}
	v.Set("tab", string(view.Users))
	st.Encode(v.Set)
	return "/dashboard?" + v.Encode()
}

func sortHeader(w io.Writer, st projection.State, field, label string) error {
	marker := ""
	if st.Sort == field {
		if st.Order == projection.SortDesc {
			marker = " ▼"
		} else {
			marker = " ▲"
		}
	}
	_, err := io.WriteString(w, `<th><a href="`+templ.EscapeString(usersURL(st.Toggle(field)))+`">`+templ.EscapeString(label+marker)+`</a></th>`)
	return err
}

func statCell(w io.Writer, label string, value int) error {
	_, err := io.WriteString(w, `<div class="stat"><span class="stat-label">`+templ.EscapeString(label)+`</span><span class="stat-value">`+strconv.Itoa(value)+`</span></div>`)
	return err
}

// Users renders the searchable, sortable, paginated user list.
func Users(props *UsersProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if err := usersToolbar(w, props); err != nil {
				return err
			}
			if err := usersTable(w, props); err != nil {
				return err
			}
			return usersPagination(w, props)
		})
		return Page(&props.PageProps).Render(templ.WithChildren(ctx, content), w)
	})
}

func usersToolbar(w io.Writer, props *UsersProps) error {
	if _, err := io.WriteString(w, `<div class="stats-strip">`); err != nil {
		return err
	}
	if err := statCell(w, "Total", props.Stats.Total); err != nil {
		return err
	}
	if err := statCell(w, "Regular", props.Stats.Regular); err != nil {
		return err
	}
	if err := statCell(w, "Administrators", props.Stats.Admins); err != nil {
		return err
	}
	if err := statCell(w, "Super Administrators", props.Stats.SuperAdmins); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `</div><form class="toolbar" method="get" action="/dashboard"><input type="hidden" name="tab" value="`+string(view.Users)+`">`); err != nil {
		return err
	}
	if props.State.Sort != "" {
		if _, err := io.WriteString(w, `<input type="hidden" name="sort" value="`+templ.EscapeString(props.State.Sort)+`"><input type="hidden" name="order" value="`+string(props.State.Order)+`">`); err != nil {
			return err
		}
	}
	checked := ""
	if props.State.IncludeExcluded {
		checked = " checked"
	}
	_, err := io.WriteString(w, `<input type="search" name="q" placeholder="Search users" value="`+templ.EscapeString(props.State.Query)+`"><label class="checkbox"><input type="checkbox" name="admins" value="1"`+checked+`>Show admins</label><button type="submit" class="btn">Search</button></form>`)
	return err
}

func usersTable(w io.Writer, props *UsersProps) error {
	if _, err := io.WriteString(w, `<table class="list"><thead><tr>`); err != nil {
		return err
	}
	columns := []struct {
		field string
		label string
	}{
		{"userId", "User ID"},
		{"firstName", "Name"},
		{"email", "Email"},
		{"role", "Role"},
		{"batchId", "Batch"},
		{"paymentStatus", "Payment"},
		{"activeStatus", "Status"},
	}
	for _, col := range columns {
		if err := sortHeader(w, props.State, col.field, col.label); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `<th></th></tr></thead><tbody>`); err != nil {
		return err
	}
	if len(props.Result.Items) == 0 {
		if _, err := io.WriteString(w, `<tr><td colspan="8" class="empty">No users found</td></tr>`); err != nil {
			return err
		}
	}
	for _, u := range props.Result.Items {
		if err := userRow(w, u); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</tbody></table>`)
	return err
}

func userRow(w io.Writer, u viewmodels.User) error {
	cells := []string{u.UserID, u.Name, u.Email, u.Role, u.BatchID, u.PaymentStatus, u.ActiveStatus}
	if _, err := io.WriteString(w, `<tr>`); err != nil {
		return err
	}
	for _, c := range cells {
		if _, err := io.WriteString(w, `<td>`+templ.EscapeString(c)+`</td>`); err != nil {
			return err
		}
	}
	id := url.PathEscape(u.ID)
	_, err := io.WriteString(w, `<td class="actions"><a href="/users/`+id+`">View</a> <a href="/users/`+id+`/edit">Edit</a> <a href="/users/`+id+`/assign">Assign</a> <a class="danger" href="/users/`+id+`/delete">Delete</a></td></tr>`)
	return err
}

func usersPagination(w io.Writer, props *UsersProps) error {
	if props.Result.TotalPages <= 1 {
		return nil
	}
	if _, err := io.WriteString(w, `<div class="pagination">`); err != nil {
		return err
	}
	for page := 1; page <= props.Result.TotalPages; page++ {
		if page == props.Result.Page {
			if _, err := io.WriteString(w, `<span class="page page-current">`+strconv.Itoa(page)+`</span>`); err != nil {
				return err
			}
			continue
		}
		st := props.State
		st.Page = page
		if _, err := io.WriteString(w, `<a class="page" href="`+templ.EscapeString(usersURL(st))+`">`+strconv.Itoa(page)+`</a>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}
