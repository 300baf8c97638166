package dashboard

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/swrzee/console/modules/dashboard/presentation/viewmodels"
)

type BatchesProps struct {
	PageProps
	Batches []viewmodels.Batch
}

// Batches renders the running batches for the current year.
func Batches(props *BatchesProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := io.WriteString(w, `<div class="toolbar"><a class="btn btn-primary" href="/batches/new">New Batch</a></div>`); err != nil {
				return err
			}
			if len(props.Batches) == 0 {
				_, err := io.WriteString(w, `<p class="empty">No running batches</p>`)
				return err
			}
			for _, b := range props.Batches {
				if err := batchCard(w, b); err != nil {
					return err
				}
			}
			return nil
		})
		return Page(&props.PageProps).Render(templ.WithChildren(ctx, content), w)
	})
}

func batchCard(w io.Writer, b viewmodels.Batch) error {
	if _, err := io.WriteString(w, `<div class="card card-wide"><div class="card-head"><h3>`+templ.EscapeString(b.ProgramName)+`</h3><span class="badge">`+templ.EscapeString(b.BatchID)+`</span><span class="badge badge-ok">`+templ.EscapeString(b.Status)+`</span></div>`); err != nil {
		return err
	}
	facts := []struct {
		label string
		value string
	}{
		{"Duration", b.Duration},
		{"Dates", b.StartDate + " – " + b.EndDate},
		{"Total Fee", b.TotalFee},
		{"Students", strconv.Itoa(b.StudentCount)},
		{"Course Credit", strconv.Itoa(b.CourseCredit)},
		{"Min Attendance", strconv.Itoa(b.MinAttendance) + "%"},
	}
	if _, err := io.WriteString(w, `<div class="fact-grid">`); err != nil {
		return err
	}
	for _, f := range facts {
		if _, err := io.WriteString(w, `<div class="fact"><p class="fact-label">`+templ.EscapeString(f.label)+`</p><p class="fact-value">`+templ.EscapeString(f.value)+`</p></div>`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `</div>`); err != nil {
		return err
	}
	if len(b.Services) > 0 {
		if _, err := io.WriteString(w, `<p class="muted">Services: `+templ.EscapeString(strings.Join(b.Services, ", "))+`</p>`); err != nil {
			return err
		}
	}
	id := url.PathEscape(b.ID)
	_, err := io.WriteString(w, `<div class="card-actions"><a href="/batches/`+id+`/students">Students</a> <a class="danger" href="/batches/`+id+`/delete">Delete</a></div></div>`)
	return err
}
