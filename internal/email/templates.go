package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Built-in templates, keyed by Kind. The markup follows the client's
// branding; links point into ClientURL.
var templateSources = map[Kind]string{
	KindJobAlert: `
<div style="background-color: #f3f9ff; padding: 40px 0; font-family: Arial, Helvetica, sans-serif;">
  <div style="width: 500px; margin: 0 auto; border-radius: 8px; background-color: white; padding: 30px;">
    <h2 style="text-align: center; color: #1abc9c;">Enlistco</h2>
    <h4 style="text-align: center; font-weight: 400;">Your job alert for {{.SeekerTitle}}</h4>
    <hr />
    <div style="padding: 20px 0;">
      <a href="{{.ClientURL}}/job/{{.PostID}}" style="text-decoration: none; color: #1abc9c; font-size: 20px;">{{.JobTitle}}</a>
      <p style="margin: 5px 0 0 0; color: #555555;">{{.Company}}, {{.JobLocation}} ({{.Workplace}})</p>
      <p style="margin: 5px 0; color: #555555;">${{.Salary}}</p>
    </div>
    <a href="{{.ClientURL}}/job/{{.PostID}}" style="padding: 8px 15px; border-radius: 5px; background-color: #1abc9c; text-decoration: none; color: white;">See Job</a>
  </div>
</div>`,

	KindVerify: `
<div style="background-color: #F1F5F9; padding: 40px 0; font-family: Arial, Helvetica, sans-serif;">
  <div style="width: 500px; margin: 0 auto; border-radius: 8px; background-color: white; padding: 30px;">
    <h2 style="text-align: center; color: #1abc9c;">Enlistco</h2>
    <h1 style="text-align: center; color: gray;">Please verify your email</h1>
    <p style="text-align: center;">To help us confirm it's you, please click the button below to activate your account.</p>
    <p style="text-align: center;">
      <a href="{{.URL}}" style="padding: 15px 20px; border-radius: 5px; background-color: #1abc9c; text-decoration: none; color: #ffffff;">Verify email address</a>
    </p>
  </div>
</div>`,

	KindReset: `
<div style="background-color: #F1F5F9; padding: 40px 0; font-family: Arial, Helvetica, sans-serif;">
  <div style="width: 500px; margin: 0 auto; border-radius: 8px; background-color: white; padding: 30px;">
    <h2 style="text-align: center; color: #1abc9c;">Enlistco</h2>
    <h1 style="text-align: center; color: gray;">Reset your password</h1>
    <p style="text-align: center;">
      <a href="{{.URL}}" style="padding: 15px 20px; border-radius: 5px; background-color: #1abc9c; text-decoration: none; color: #ffffff;">Reset password</a>
    </p>
  </div>
</div>`,

	KindOfferLetter: `
<div style="background-color: #f3f9ff; padding: 40px 0; font-family: Arial, Helvetica, sans-serif;">
  <div style="width: 500px; margin: 0 auto; border-radius: 8px; background-color: white; padding: 30px;">
    <h2 style="text-align: center; color: #1abc9c;">Enlistco</h2>
    <h3>Congratulations{{if .SeekerName}}, {{.SeekerName}}{{end}}!</h3>
    <p>You have received an offer letter for the position of <b>{{.JobTitle}}</b> at <b>{{.Company}}</b>.</p>
    <p>Sign in to your account to review the details.</p>
  </div>
</div>`,

	KindCoverLetter: `
<div style="background-color: #f3f9ff; padding: 40px 0; font-family: Arial, Helvetica, sans-serif;">
  <div style="width: 500px; margin: 0 auto; border-radius: 8px; background-color: white; padding: 30px;">
    <h2 style="text-align: center; color: #1abc9c;">Enlistco</h2>
    <h3>New application for {{.JobTitle}}</h3>
    <p>From: {{.SeekerEmail}}</p>
    <hr />
    <p>{{.CoverLetter}}</p>
  </div>
</div>`,

	KindContactUs: `
<div style="font-family: Arial, Helvetica, sans-serif;">
  <h3>Contact form message</h3>
  <p><b>Name:</b> {{.Name}}</p>
  <p><b>Email:</b> {{.Email}}</p>
  <hr />
  <p>{{.Message}}</p>
</div>`,
}

// TemplateManager renders the built-in templates.
type TemplateManager struct {
	templates map[Kind]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[Kind]*template.Template),
	}

	for kind, src := range templateSources {
		t, err := template.New(string(kind)).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", kind, err)
		}
		tm.templates[kind] = t
	}

	return tm, nil
}

// Render executes the template for kind with data.
func (tm *TemplateManager) Render(kind Kind, data interface{}) (string, error) {
	t, ok := tm.templates[kind]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", kind)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", kind, err)
	}
	return buf.String(), nil
}
