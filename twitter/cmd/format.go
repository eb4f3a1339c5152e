package cmd

import (
	"strings"
	"text/template"

	"github.com/dichro/tuit/twitter/api"
	"github.com/golang/glog"
)

const (
	statusTmplStr  = "@{{ .Author }}\t\t{{ .CreatedAt }}\n\t{{ .Text }}"
	messageTmplStr = "@{{ .Sender }} -> @{{ .Recipient }}\n\t{{ .Text }}"

	entrySeparator = "\n\n"
)

var (
	statusTmpl  = template.Must(template.New("status").Parse(statusTmplStr))
	messageTmpl = template.Must(template.New("message").Parse(messageTmplStr))
)

func render(t *template.Template, v interface{}) string {
	var b strings.Builder
	if err := t.Execute(&b, v); err != nil {
		glog.Error(err)
	}
	return b.String()
}

func formatStatus(s api.Status) string { return render(statusTmpl, s) }

func formatMessage(m api.DirectMessage) string { return render(messageTmpl, m) }

func formatStatuses(ss []api.Status) string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		out = append(out, formatStatus(s))
	}
	return strings.Join(out, entrySeparator)
}

func formatMessages(ms []api.DirectMessage) string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, formatMessage(m))
	}
	return strings.Join(out, entrySeparator)
}
