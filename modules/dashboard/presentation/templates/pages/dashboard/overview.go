package dashboard

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/swrzee/console/modules/dashboard/presentation/viewmodels"
)

type OverviewProps struct {
	PageProps
	Overview viewmodels.Overview
}

func kpiCard(w io.Writer, label, value string) error {
	_, err := io.WriteString(w, `<div class="kpi-card"><p class="kpi-label">`+templ.EscapeString(label)+`</p><p class="kpi-value">`+templ.EscapeString(value)+`</p></div>`)
	return err
}

// Overview renders the revenue and user KPIs plus the two-week payment series.
func Overview(props *OverviewProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := io.WriteString(w, `<div class="kpi-grid">`); err != nil {
				return err
			}
			if err := kpiCard(w, "Total Revenue", props.Overview.TotalRevenue); err != nil {
				return err
			}
			if err := kpiCard(w, "Total Users", strconv.Itoa(props.Overview.TotalUsers)); err != nil {
				return err
			}
			if err := kpiCard(w, "Recent Payments", strconv.Itoa(props.Overview.RecentPayments)); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `</div><section class="chart"><h2>Payments, last 14 days</h2><table class="series"><thead><tr><th>Date</th><th>Success</th><th>Failed</th></tr></thead><tbody>`); err != nil {
				return err
			}
			for _, row := range props.Overview.Series {
				if _, err := io.WriteString(w, `<tr><td>`+templ.EscapeString(row.Date)+`</td><td data-day="`+strconv.Itoa(row.Day)+`">₹`+templ.EscapeString(row.Success)+`</td><td>₹`+templ.EscapeString(row.Failed)+`</td></tr>`); err != nil {
					return err
				}
			}
			_, err := io.WriteString(w, `</tbody></table></section>`)
			return err
		})
		return Page(&props.PageProps).Render(templ.WithChildren(ctx, content), w)
	})
}
