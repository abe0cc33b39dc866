package http

import (
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// openAPIDocument serves a prebuilt JSON document through the swag registry,
// which echo-swagger reads for /swagger/doc.json.
type openAPIDocument struct {
	json string
}

func (d openAPIDocument) ReadDoc() string {
	return d.json
}

var registerSwaggerOnce sync.Once

// registerSwagger publishes doc under swag.Name. swag.Register panics on a second
// registration, so only the first document wins.
func registerSwagger(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, openAPIDocument{json: string(raw)})
	})
	return nil
}
