package shape

import (
	"reflect"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// anonymousName names struct types that have no declared name.
const anonymousName = "AnonymousType"

// recordName returns the name a struct type is registered under: its declared
// name without package path. Generic instantiations have their type arguments
// folded in, e.g. "Page[github.com/acme/models.User]" → "PageUser".
func recordName(t reflect.Type) string {
	name := t.Name()
	if name == "" {
		return anonymousName
	}
	if !strings.Contains(name, "[") {
		return name
	}
	var sb strings.Builder
	sb.WriteString(baseTypeName(name))
	for _, param := range genericParams(name) {
		sb.WriteString(paramName(param))
	}
	return sb.String()
}

// paramName reduces a generic argument to a title-cased identifier.
func paramName(param string) string {
	param = strings.TrimLeft(param, "*[]")
	var sb strings.Builder
	sb.WriteString(shortName(baseTypeName(param)))
	for _, nested := range genericParams(param) {
		sb.WriteString(paramName(nested))
	}
	// Caser values are stateful; one per call.
	titled := cases.Title(language.English, cases.NoLower).String(sb.String())
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, titled)
}

// baseTypeName strips generic parameters: "Response[User]" → "Response".
func baseTypeName(name string) string {
	if idx := strings.Index(name, "["); idx != -1 {
		return name[:idx]
	}
	return name
}

// shortName strips a package path: "github.com/acme/models.User" → "User".
func shortName(name string) string {
	if idx := strings.LastIndex(name, "."); idx != -1 {
		return name[idx+1:]
	}
	return name
}

// genericParams extracts the top-level type arguments of a generic type name.
// "Map[string,List[int]]" → ["string", "List[int]"].
func genericParams(name string) []string {
	start := strings.Index(name, "[")
	end := strings.LastIndex(name, "]")
	if start == -1 || end == -1 || end <= start {
		return nil
	}

	var (
		params  []string
		current strings.Builder
		depth   int
	)
	for _, r := range name[start+1 : end] {
		switch r {
		case '[':
			depth++
			current.WriteRune(r)
		case ']':
			depth--
			current.WriteRune(r)
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(current.String()))
				current.Reset()
				continue
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		params = append(params, strings.TrimSpace(current.String()))
	}
	return params
}
