package admin

import (
	"fmt"
	"html"
	"time"

	"github.com/JaimeStill/scaffold/internal/entities"
	"github.com/rohanthewiz/element"
)

func layout(b *element.Builder, title string, body func()) string {
	b.Html().R(
		b.Head().R(
			b.Title().T(html.EscapeString(title)),
		),
		b.Body().R(
			b.H1().T(html.EscapeString(title)),
			func() any { body(); return nil }(),
		),
	)
	return b.String()
}

// pager holds the navigation state of a list page. Prev and Next are empty
// when there is no neighbouring page.
type pager struct {
	Page, Pages, Total int
	Prev, Next         string
}

func listPage(name, path string, fields []entities.Field, records []entities.Record, nav pager) string {
	b := element.NewBuilder()

	return layout(b, name, func() {
		b.P().R(
			b.A("href", path+"/create").T("New " + html.EscapeString(name)),
		)

		if len(records) == 0 {
			b.P().T("No records.")
			return
		}

		b.Table().R(
			b.Tr().R(
				func() any {
					for _, f := range fields {
						b.Th().T(html.EscapeString(f.Name))
					}
					return nil
				}(),
			),
			func() any {
				for _, rec := range records {
					b.Tr().R(
						func() any {
							for _, f := range fields {
								b.Td().T(html.EscapeString(cell(rec[f.Name])))
							}
							return nil
						}(),
					)
				}
				return nil
			}(),
		)

		b.P().R(
			func() any {
				if nav.Prev != "" {
					b.A("href", nav.Prev, "rel", "prev").T("Previous")
					b.T(" ")
				}
				b.T(fmt.Sprintf("Page %d of %d (%d records)", nav.Page, nav.Pages, nav.Total))
				if nav.Next != "" {
					b.T(" ")
					b.A("href", nav.Next, "rel", "next").T("Next")
				}
				return nil
			}(),
		)
	})
}

func formPage(name, path string, fields []entities.Field) string {
	b := element.NewBuilder()

	return layout(b, "New "+name, func() {
		b.Form("method", "POST", "action", path).R(
			func() any {
				for _, f := range fields {
					attrs := []string{"type", inputType(f), "name", f.Name}
					if !f.Nullable && !f.HasDefault {
						attrs = append(attrs, "required", "required")
					}
					b.P().R(
						b.Label().R(
							b.T(html.EscapeString(f.Name) + " "),
							b.Input(attrs...),
						),
					)
				}
				return nil
			}(),
			b.Button("type", "submit").T("Create"),
		)
		b.P().R(
			b.A("href", path).T("Back"),
		)
	})
}

func inputType(f entities.Field) string {
	switch f.Type {
	case "integer", "bigint", "smallint", "numeric", "real", "double precision":
		return "number"
	case "boolean":
		return "checkbox"
	case "date":
		return "date"
	}
	return "text"
}

func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
