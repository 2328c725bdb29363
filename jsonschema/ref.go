package jsonschema

// DefinitionsPath is the pointer prefix under which named definitions live in
// a bundled document.
const DefinitionsPath = "#/definitions/"

// DefinitionRef returns the $ref target for a named definition.
func DefinitionRef(name string) string { return DefinitionsPath + name }

// Document bundles inline definition schemas under "definitions" so that
// $ref targets emitted by reference-named serializers resolve within one
// document.
func Document(definitions map[string]map[string]any) map[string]any {
	defs := make(map[string]any, len(definitions))
	for name, schema := range definitions {
		defs[name] = schema
	}
	return map[string]any{"definitions": defs}
}
