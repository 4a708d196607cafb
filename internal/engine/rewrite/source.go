package rewrite

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"text/template"
)

const internalPrefix = "__flowpack"

var moduleTemplate = template.Must(template.New("module").Funcs(template.FuncMap{
	"quote": quote,
}).Parse(`import { init as __flowpackInit, get as __flowpackGet } from {{ quote .BundleURL }};
await (globalThis.__flowpackBundleReady ??= __flowpackInit('default'));
const __flowpackModule = (await __flowpackGet({{ quote .ScopeKey }}))();
{{- if .Bindings }}
const { {{ range $i, $b := .Bindings }}{{ if $i }}, {{ end }}{{ $b.Destructure }}{{ end }} } = __flowpackModule;
export { {{ range $i, $b := .Bindings }}{{ if $i }}, {{ end }}{{ $b.Export }}{{ end }} };
{{- else }}
export {};
{{- end }}
`))

type moduleSource struct {
	BundleURL string
	ScopeKey  string
	Bindings  []binding
}

// binding is one export rendered as a destructuring pattern and an export specifier.
type binding struct {
	Destructure string
	Export      string
}

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

var reservedWords = map[string]struct{}{
	"await": {}, "break": {}, "case": {}, "catch": {}, "class": {}, "const": {},
	"continue": {}, "debugger": {}, "default": {}, "delete": {}, "do": {}, "else": {},
	"enum": {}, "export": {}, "extends": {}, "false": {}, "finally": {}, "for": {},
	"function": {}, "if": {}, "implements": {}, "import": {}, "in": {}, "instanceof": {},
	"interface": {}, "let": {}, "new": {}, "null": {}, "package": {}, "private": {},
	"protected": {}, "public": {}, "return": {}, "static": {}, "super": {}, "switch": {},
	"this": {}, "throw": {}, "true": {}, "try": {}, "typeof": {}, "var": {}, "void": {},
	"while": {}, "with": {}, "yield": {},
}

func isBindable(name string) bool {
	if !identifierPattern.MatchString(name) {
		return false
	}
	_, reserved := reservedWords[name]
	return !reserved
}

func bindings(exports []string) []binding {
	out := make([]binding, 0, len(exports))
	aliases := 0
	for _, name := range exports {
		if isBindable(name) {
			out = append(out, binding{Destructure: name, Export: name})
			continue
		}

		local := internalPrefix + "Export" + strconv.Itoa(aliases)
		aliases++

		key, exported := name, name
		if !identifierPattern.MatchString(name) {
			key, exported = quote(name), quote(name)
		}
		out = append(out, binding{
			Destructure: key + ": " + local,
			Export:      local + " as " + exported,
		})
	}
	return out
}

func render(src moduleSource) (string, error) {
	var buf bytes.Buffer
	if err := moduleTemplate.Execute(&buf, src); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// quote renders s as a JavaScript string literal.
func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
