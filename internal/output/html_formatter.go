package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/slabtax/internal/domain"
)

// HTMLFormatter produces a standalone HTML page with the comparison table.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr": FormatCurrency,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.Comparison) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Comparison
		Rows    [][3]string
		Summary string
	}{results, comparisonRows(results), SummaryMessage(results)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
