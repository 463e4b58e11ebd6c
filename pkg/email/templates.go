package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// Field is one labelled line of a notification
type Field struct {
	Label string
	Value string
}

// FormatFields renders fields as "Label: value" lines
func FormatFields(fields []Field) string {
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(f.Label)
		sb.WriteString(": ")
		sb.WriteString(f.Value)
		sb.WriteString("\n")
	}
	return sb.String()
}

// fieldsEmailTemplate is the HTML template for submission and contact notifications
const fieldsEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; white-space: pre-wrap; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
        </div>
        <div class="content">
            {{range .Fields}}
            <div class="field">
                <div class="label">{{.Label}}:</div>
                <div class="value">{{.Value}}</div>
            </div>
            {{end}}
        </div>
    </div>
</body>
</html>`

// welcomeEmailTemplate is sent to new subscribers
const welcomeEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thank You for Subscribing!</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thank You for Subscribing!</h1>
        </div>
        <div class="content">
            <p>{{.Text}}</p>
        </div>
    </div>
</body>
</html>`

var (
	fieldsTmpl  = template.Must(template.New("fields").Parse(fieldsEmailTemplate))
	welcomeTmpl = template.Must(template.New("welcome").Parse(welcomeEmailTemplate))
)

// RenderFieldsHTML renders a titled list of fields. Values are HTML-escaped.
func RenderFieldsHTML(title string, fields []Field) (string, error) {
	var body bytes.Buffer
	data := struct {
		Title  string
		Fields []Field
	}{Title: title, Fields: fields}
	if err := fieldsTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

// RenderWelcomeHTML wraps the plain welcome text in the subscriber template
func RenderWelcomeHTML(text string) (string, error) {
	var body bytes.Buffer
	if err := welcomeTmpl.Execute(&body, struct{ Text string }{text}); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}
