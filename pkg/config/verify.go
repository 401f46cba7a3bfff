package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// schemaNode is the subset of json schema keywords checked by the verifier
type schemaNode struct {
	Ref        string                 `json:"$ref"`
	Defs       map[string]*schemaNode `json:"$defs"`
	Type       string                 `json:"type"`
	Properties map[string]*schemaNode `json:"properties"`
	Required   []string               `json:"required"`
	Enum       []any                  `json:"enum"`
	Pattern    string                 `json:"pattern"`
	Minimum    *float64               `json:"minimum"`
}

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// Checked are required properties, enums, string patterns and numeric minimums.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	var root schemaNode
	if err := json.Unmarshal([]byte(embeddedSchema), &root); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := verifyNode(&root, root.Defs, "", configMap); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

func verifyNode(node *schemaNode, defs map[string]*schemaNode, path string, value any) error {
	if node.Ref != "" {
		ref, ok := defs[strings.TrimPrefix(node.Ref, "#/$defs/")]
		if !ok {
			return fmt.Errorf("%s: unknown schema reference %s", pathName(path), node.Ref)
		}
		node = ref
	}

	if len(node.Enum) > 0 && !slices.Contains(node.Enum, value) {
		return fmt.Errorf("%s: %v is not one of %v", pathName(path), value, node.Enum)
	}

	switch v := value.(type) {
	case string:
		if node.Pattern != "" {
			re, err := regexp.Compile(node.Pattern)
			if err != nil {
				return fmt.Errorf("%s: bad pattern %q: %w", pathName(path), node.Pattern, err)
			}
			if !re.MatchString(v) {
				return fmt.Errorf("%s: %q doesn't match %s", pathName(path), v, node.Pattern)
			}
		}
	case float64:
		if node.Minimum != nil && v < *node.Minimum {
			return fmt.Errorf("%s: %v is less than minimum %v", pathName(path), v, *node.Minimum)
		}
	case map[string]any:
		for _, name := range node.Required {
			if _, ok := v[name]; !ok {
				return fmt.Errorf("%s: missing required property %s", pathName(path), name)
			}
		}
		names := make([]string, 0, len(node.Properties))
		for name := range node.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			child, ok := v[name]
			if !ok {
				continue
			}
			if err := verifyNode(node.Properties[name], defs, path+"."+name, child); err != nil {
				return err
			}
		}
	}
	return nil
}

func pathName(path string) string {
	if path == "" {
		return "config"
	}
	return strings.TrimPrefix(path, ".")
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
