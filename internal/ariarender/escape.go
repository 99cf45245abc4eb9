package ariarender

import (
	"encoding/json"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var plainScalarRe = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_./-]*$`)

var reservedScalars = map[string]bool{
	"true": true, "false": true, "null": true, "~": true, "yes": true, "no": true,
}

// jsonQuoteName double-quotes a value the way spec.md §4.5 wants accessible
// names rendered: JSON string escaping, not YAML's.
func jsonQuoteName(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}

// yamlEscapeKeyIfNeeded and yamlEscapeValueIfNeeded are the YAML-escape
// external collaborators spec.md §6 lists — used for prop keys/values, which
// spec.md §4.5 does not require JSON quoting for. A plain scalar is left
// bare; anything else is quoted the way gopkg.in/yaml.v3 itself would quote
// it, so the renderer's escaping stays consistent with a real YAML emitter.
func yamlEscapeKeyIfNeeded(s string) string { return yamlEscapeScalarIfNeeded(s) }

func yamlEscapeValueIfNeeded(s string) string { return yamlEscapeScalarIfNeeded(s) }

func yamlEscapeScalarIfNeeded(s string) string {
	if s != "" && plainScalarRe.MatchString(s) && !reservedScalars[strings.ToLower(s)] {
		return s
	}
	out, err := yaml.Marshal(s)
	if err != nil {
		return jsonQuoteName(s)
	}
	return strings.TrimRight(string(out), "\n")
}
