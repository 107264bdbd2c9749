package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/kilnworks/safetydesk/pkg/types"
)

const emailRule = "------------------------------------------------------------"

// Email composes a plain-text summary of one record suitable for a mail
// body: the list columns as a header block, then every remaining field in
// schema order.
func Email(rec types.Record, schema types.Schema) (subject, body string) {
	subject = fmt.Sprintf("%s #%s", schema.Title, rec.ID)

	var b strings.Builder
	fmt.Fprintln(&b, strings.ToUpper(schema.Title))
	fmt.Fprintln(&b, emailRule)
	for _, col := range schema.ListColumns {
		fmt.Fprintf(&b, "%s: %s\n", Header(col), orDash(rec.Value(col)))
	}
	fmt.Fprintln(&b, emailRule)
	for _, field := range schema.EditableFields {
		if contains(schema.ListColumns, field) {
			continue
		}
		fmt.Fprintf(&b, "%s:\n%s\n\n", Header(field), orDash(rec.Value(field)))
	}
	return subject, strings.TrimRight(b.String(), "\n")
}

// MailtoURL builds a mailto URL for the composed message. Spaces are
// percent-encoded; mail clients do not decode "+".
func MailtoURL(subject, body string) string {
	enc := func(s string) string {
		return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	}
	return fmt.Sprintf("mailto:?subject=%s&body=%s", enc(subject), enc(body))
}

func orDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}

func contains(list []string, v string) bool {
	for _, e := range list {
		if e == v {
			return true
		}
	}
	return false
}
