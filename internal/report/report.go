// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders aggregated role results into the HTML digest.
package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/pdiddy/job-digest/pkg/types"
)

// timestampLayout matches the header format of the generated report:
// date, time, and zone abbreviation in the local time zone.
const timestampLayout = "2006-01-02 15:04 MST"

// reportHTML is the digest document. Titles and snippets pass through
// the template's contextual escaping; the link is inserted as the anchor
// target unescaped via the href func, trusting the search API's URL
// field.
const reportHTML = `<html><body><h2>Job search results — {{.Generated}}</h2>
{{- range .Sections}}
<h3>{{.Role}} — {{len .Items}} results</h3>
<ul>
{{- if not .Items}}
<li>No results found.</li>
{{- end}}
{{- range .Items}}
<li><a href='{{href .Link}}'>{{.DisplayTitle}}</a><br/><small>{{.Snippet}}</small></li>
{{- end}}
</ul>
{{- end}}
<hr/><p>Generated automatically.</p></body></html>`

var reportTmpl = template.Must(template.New("digest").Funcs(template.FuncMap{
	"href": func(link string) template.URL { return template.URL(link) },
}).Parse(reportHTML))

type reportData struct {
	Generated string
	Sections  []types.RoleSection
}

// Render produces the full HTML report for the given sections. Pure
// except for the caller-supplied timestamp, which appears in the heading
// in the local time zone.
func Render(sections []types.RoleSection, now time.Time) (string, error) {
	var b strings.Builder
	data := reportData{
		Generated: now.Format(timestampLayout),
		Sections:  sections,
	}
	if err := reportTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("executing report template: %w", err)
	}
	return b.String(), nil
}
