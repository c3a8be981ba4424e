package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// LeadEmailData holds everything the notification templates print.
// Values are raw user input; html/template escapes them on render.
type LeadEmailData struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	Service     string
	Budget      string
	Message     string
	SubmittedAt string
	WhatsAppURL string
	Project     *ProjectData
}

// ProjectData is the calculator part of a lead, already formatted for display.
type ProjectData struct {
	Type        string
	Pages       int
	Design      string
	Timeline    string
	Features    []string
	EstimateMin string
	EstimateMax string
	TimeMin     int
	TimeMax     int
}

// Renderer turns lead data into notification HTML.
type Renderer struct {
	contact    *template.Template
	calculator *template.Template
}

func NewRenderer() (*Renderer, error) {
	contact, err := template.New("contact").Parse(baseStyle + contactEmailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse contact template: %w", err)
	}
	calculator, err := template.New("calculator").Parse(baseStyle + calculatorEmailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calculator template: %w", err)
	}
	return &Renderer{contact: contact, calculator: calculator}, nil
}

// RenderContact renders the contact form notification.
func (r *Renderer) RenderContact(data LeadEmailData) (string, error) {
	return execute(r.contact, data)
}

// RenderCalculator renders the cost calculator notification. Project must be set.
func (r *Renderer) RenderCalculator(data LeadEmailData) (string, error) {
	if data.Project == nil {
		return "", fmt.Errorf("calculator email requires project data")
	}
	return execute(r.calculator, data)
}

func execute(tmpl *template.Template, data LeadEmailData) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute email template %s: %w", tmpl.Name(), err)
	}
	return body.String(), nil
}

const baseStyle = `{{define "style"}}
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
        .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
        .field { margin-bottom: 20px; }
        .label { font-weight: bold; color: #667eea; margin-bottom: 5px; }
        .value { background: white; padding: 10px; border-radius: 5px; border-left: 3px solid #667eea; }
        .estimate-box { background: white; padding: 20px; border-radius: 10px; text-align: center; border: 2px solid #667eea; margin: 20px 0; }
        .estimate-price { font-size: 28px; font-weight: bold; color: #667eea; }
        .button { display: inline-block; background: #25D366; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; margin-top: 20px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
{{end}}`

const contactEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Nuevo Lead</title>
    {{template "style"}}
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🎯 Nuevo Lead Recibido</h1>
            <p>Formulario de contacto del sitio web</p>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">👤 Nombre:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">📧 Email:</div>
                <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
            </div>
            <div class="field">
                <div class="label">📱 Teléfono:</div>
                <div class="value"><a href="tel:{{.Phone}}">{{.Phone}}</a></div>
            </div>
            {{if .Company}}
            <div class="field">
                <div class="label">🏢 Empresa:</div>
                <div class="value">{{.Company}}</div>
            </div>
            {{end}}
            <div class="field">
                <div class="label">🎯 Servicio de Interés:</div>
                <div class="value">{{.Service}}</div>
            </div>
            <div class="field">
                <div class="label">💰 Presupuesto:</div>
                <div class="value">{{.Budget}}</div>
            </div>
            <div class="field">
                <div class="label">💬 Mensaje:</div>
                <div class="value">{{.Message}}</div>
            </div>
            <div class="field">
                <div class="label">📅 Fecha y Hora:</div>
                <div class="value">{{.SubmittedAt}}</div>
            </div>
            <div style="text-align: center;">
                <a href="{{.WhatsAppURL}}" class="button">💬 Contactar por WhatsApp</a>
            </div>
        </div>
        <div class="footer">
            <p>Este correo fue generado por el formulario de contacto de TechFlow AI.</p>
        </div>
    </div>
</body>
</html>`

const calculatorEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Lead Calculadora</title>
    {{template "style"}}
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💰 Nuevo Lead - Calculadora de Costos</h1>
            <p>Un prospecto generó una cotización en el sitio web</p>
        </div>
        <div class="content">
            <h2>👤 Información de Contacto</h2>
            <div class="field">
                <div class="label">Nombre:</div>
                <div class="value">{{.Name}}</div>
            </div>
            <div class="field">
                <div class="label">Email:</div>
                <div class="value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>
            </div>
            <div class="field">
                <div class="label">Teléfono:</div>
                <div class="value"><a href="tel:{{.Phone}}">{{.Phone}}</a></div>
            </div>
            {{if .Company}}
            <div class="field">
                <div class="label">Empresa:</div>
                <div class="value">{{.Company}}</div>
            </div>
            {{end}}
            {{with .Project}}
            <h2>📋 Detalles del Proyecto</h2>
            <div class="field">
                <div class="label">Tipo de Proyecto:</div>
                <div class="value">{{.Type}}</div>
            </div>
            <div class="field">
                <div class="label">Páginas:</div>
                <div class="value">{{.Pages}}</div>
            </div>
            <div class="field">
                <div class="label">Diseño:</div>
                <div class="value">{{.Design}}</div>
            </div>
            <div class="field">
                <div class="label">Timeline:</div>
                <div class="value">{{.Timeline}}</div>
            </div>
            <div class="field">
                <div class="label">Funcionalidades:</div>
                <div class="value">{{if .Features}}{{range $i, $f := .Features}}{{if $i}}, {{end}}{{$f}}{{end}}{{else}}Ninguna{{end}}</div>
            </div>
            <div class="estimate-box">
                <p>Estimado del Proyecto</p>
                <div class="estimate-price">{{.EstimateMin}} - {{.EstimateMax}} COP</div>
                <p>⏱️ Tiempo estimado: {{.TimeMin}}-{{.TimeMax}} semanas</p>
            </div>
            {{end}}
            <h2>✅ Próximos Pasos</h2>
            <ul>
                <li>Contactar en las próximas 2 horas</li>
                <li>Preparar propuesta detallada basada en la cotización</li>
                <li>Agendar llamada de descubrimiento</li>
            </ul>
            <p><strong>📅 Fecha:</strong> {{.SubmittedAt}}</p>
            <div style="text-align: center;">
                <a href="{{.WhatsAppURL}}" class="button">💬 Contactar por WhatsApp</a>
            </div>
        </div>
        <div class="footer">
            <p>Este correo fue generado por la calculadora de costos de TechFlow AI.</p>
        </div>
    </div>
</body>
</html>`
