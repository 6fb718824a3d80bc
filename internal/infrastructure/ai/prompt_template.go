package ai

import (
	"bytes"
	"text/template"

	"github.com/doeshing/cosmo-health/internal/domain"
)

const systemTemplate = `Ты — медицинский ассистент для космических полётов. Используй следующие протоколы для диагностики и рекомендаций:

{{.Reference}}

Отвечай на русском языке строго в указанном формате, без лишних пояснений.`

const userTemplate = `{{range .Fields}}{{.Label}}: {{.Value}}
{{end}}
На основе протоколов дай рекомендации и три наиболее вероятных состояния (болезни) с указанием процентов вероятности (сумма 100%). Ответ оформи в виде:
Рекомендации: ...
Состояния:
- Название1 — XX%
- Название2 — YY%
- Название3 — ZZ%.`

var (
	systemPrompt = template.Must(template.New("system").Parse(systemTemplate))
	userPrompt   = template.Must(template.New("user").Parse(userTemplate))
)

type templateData struct {
	Reference string
	Fields    []domain.VitalField
}

// BuildMessages renders the system and user messages for one analysis.
// The reference text is embedded verbatim in the system message.
func BuildMessages(reference string, vitals domain.VitalSigns) []domain.PromptMessage {
	data := templateData{Reference: reference, Fields: vitals.Fields()}
	return []domain.PromptMessage{
		{Role: domain.RoleSystem, Content: executeTemplate(systemPrompt, data)},
		{Role: domain.RoleUser, Content: executeTemplate(userPrompt, data)},
	}
}

// executeTemplate panics only if the static templates above are broken.
func executeTemplate(tmpl *template.Template, data templateData) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.String()
}
