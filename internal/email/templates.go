package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const verificationTemplate = `
<html>
  <body style="font-family: sans-serif;">
    <h2>Confirm your email</h2>
    <p>Welcome to StockPulse. Click the link below to verify your email address:</p>
    <p><a href="{{.VerifyURL}}">Verify email</a></p>
    <p>The link expires in {{.TTL}}. If you did not create an account, ignore this message.</p>
  </body>
</html>`

const passwordResetTemplate = `
<html>
  <body style="font-family: sans-serif;">
    <h2>Reset your password</h2>
    <p>We received a request to reset your StockPulse password.</p>
    <p><a href="{{.ResetURL}}">Reset password</a></p>
    <p>The link expires in {{.TTL}} and can be used once. If you did not request this, ignore this message.</p>
  </body>
</html>`

// TemplateManager renders the built-in HTML mail templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{templates: make(map[string]*template.Template)}
	// Built-ins cannot fail to parse; treat an error as a programming bug.
	if err := tm.AddTemplate("verification", verificationTemplate); err != nil {
		panic(err)
	}
	if err := tm.AddTemplate("password_reset", passwordResetTemplate); err != nil {
		panic(err)
	}
	return tm
}

// Render executes the named template with data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// AddTemplate registers or replaces a template.
func (tm *TemplateManager) AddTemplate(name, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
