package formatter

import "encoding/json"

type responseBuilder struct{}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

// NewResponseBuilder creates a new response builder for serializing views
func NewResponseBuilder() *responseBuilder {
	return newResponseBuilder()
}

// BuildJSON serializes a result view to JSON
func (rb *responseBuilder) BuildJSON(view ResultView) []byte {
	b, _ := json.Marshal(view)
	return b
}
