package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/traworker/internal/exposure"
	"gopkg.in/yaml.v3"
)

// EncodeResults serialises results as "json" or "yaml". A single result is
// written as an object, several as a list. YAML keeps the JSON field names
// and order.
func EncodeResults(results []*exposure.Result, format string) ([]byte, error) {
	var v any = results
	if len(results) == 1 {
		v = results[0]
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding results: %w", err)
	}

	switch format {
	case "json":
		return append(data, '\n'), nil
	case "yaml":
		return jsonToYAML(data)
	}
	return nil, fmt.Errorf("unsupported output format %q", format)
}

// jsonToYAML re-emits JSON as block-style YAML. JSON is valid YAML, so the
// parsed node tree keeps key order; only the flow styles are reset.
func jsonToYAML(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("converting to yaml: %w", err)
	}
	resetStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("converting to yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("converting to yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		resetStyle(c)
	}
}
