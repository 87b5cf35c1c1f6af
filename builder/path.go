package builder

import (
	"regexp"

	"github.com/erraggy/oasdesc/oas"
)

// placeholderPattern matches "{name}" path template placeholders.
var placeholderPattern = regexp.MustCompile(`\{([^}]*)\}`)

// Path returns the PathItem for template, creating it on first request.
//
// On creation, every "{name}" placeholder becomes a required path parameter,
// in left-to-right order. paramDescriptions are matched to placeholders by
// position: placeholders without a description get none, and surplus
// descriptions are dropped.
//
// Later calls with the same template return the same PathItem and ignore
// summary and paramDescriptions.
func (d *Description) Path(template, summary string, paramDescriptions ...string) *oas.PathItem {
	if item, exists := d.doc.Paths[template]; exists {
		return item
	}

	item := &oas.PathItem{
		Summary:    summary,
		Parameters: pathParameters(template, paramDescriptions),
	}
	d.doc.Paths[template] = item
	d.logger.Debug("created path", "path", template, "parameters", len(item.Parameters))
	return item
}

// pathParameters builds one required path parameter per placeholder.
// It returns nil when the template has no placeholders.
func pathParameters(template string, descriptions []string) []*oas.Parameter {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}

	params := make([]*oas.Parameter, 0, len(matches))
	for i, m := range matches {
		p := &oas.Parameter{
			Name:     m[1],
			In:       oas.ParamInPath,
			Required: oas.Bool(true),
		}
		if i < len(descriptions) {
			p.Description = descriptions[i]
		}
		params = append(params, p)
	}
	return params
}

// PathNames returns the placeholder names of a path template in order.
func PathNames(template string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(template, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Webhook returns the webhook PathItem for name, creating it on first request.
func (d *Description) Webhook(name string) *oas.PathItem {
	if d.doc.Webhooks == nil {
		d.doc.Webhooks = make(map[string]*oas.PathItem)
	}
	if item, exists := d.doc.Webhooks[name]; exists {
		return item
	}
	item := &oas.PathItem{}
	d.doc.Webhooks[name] = item
	d.logger.Debug("created webhook", "name", name)
	return item
}

// AddOperation attaches op to the method slot of template's PathItem,
// creating the PathItem when needed.
func (d *Description) AddOperation(method, template string, op *oas.Operation) error {
	if err := d.Path(template, "").SetOperation(method, op); err != nil {
		return &BuilderError{
			Component: ComponentOperation,
			Method:    method,
			Path:      template,
			Cause:     err,
		}
	}
	return nil
}
