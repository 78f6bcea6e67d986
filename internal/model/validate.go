package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed session.schema.json
var sessionSchema string

// ValidateRecord checks a raw imported session record against the
// embedded session schema. The schema is shipped inside the binary so
// validation does not depend on a templates directory being present.
func ValidateRecord(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(sessionSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("invalid JSON file: %w", err)
	}
	if res.Valid() {
		return nil
	}
	var msgs []string
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
