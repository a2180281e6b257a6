// Package yamlv3 provides a config.Parser built on gopkg.in/yaml.v3.
//
// It produces the same node trees as config/parser/yaml: scalars are resolved
// by their YAML 1.2 tag, aliases are followed and "<<" merge keys are applied
// without overriding keys written explicitly in the mapping.
//
//	documents, err := yamlv3.NewParser().Parse(data)
package yamlv3
