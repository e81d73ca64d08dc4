package content

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema guards the shape of inbound document payloads before they
// are decoded into SiteContent. It deliberately allows unknown fields so
// older panels and newer documents stay compatible; it only pins the types
// that would corrupt the store if wrong.
const documentSchema = `{
	"type": "object",
	"properties": {
		"videoUrl":    {"type": "string"},
		"logoUrl":     {"type": "string"},
		"logoSize":    {"type": "integer"},
		"loaderImage": {"type": "string"},
		"posterImage": {"type": "string"},
		"aiPrompt":    {"type": "string"},
		"enableDarkRoom": {"type": "boolean"},
		"menuItems":  {"$ref": "#/$defs/idList"},
		"works":      {"$ref": "#/$defs/idList"},
		"articles":   {"$ref": "#/$defs/idList"},
		"eventsList": {"$ref": "#/$defs/idList"}
	},
	"$defs": {
		"idList": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id"],
				"properties": {
					"id": {"type": "string"}
				}
			}
		}
	}
}`

var compiledDocumentSchema = jsonschema.MustCompileString("site_content.json", documentSchema)

// ValidatePayload checks a raw JSON document against the content schema.
// Schema violations wrap ErrPayloadInvalid so the HTTP layer can answer 422.
func ValidatePayload(raw []byte) error {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("%w: %v", ErrPayloadInvalid, err)
	}
	if err := compiledDocumentSchema.Validate(value); err != nil {
		return fmt.Errorf("%w: %v", ErrPayloadInvalid, err)
	}
	return nil
}
