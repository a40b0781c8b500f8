package intake

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"inheritance-engine/internal/model"
)

// LoadFile reads an EstateRequest from a .json file or, for any other
// extension, a YAML file.
func LoadFile(path string) (model.EstateRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.EstateRequest{}, fmt.Errorf("read request file: %w", err)
	}
	return Decode(data, strings.EqualFold(filepath.Ext(path), ".json"))
}

// Decode parses a request document. Unknown fields are rejected so that a
// misspelled relative is not silently treated as absent.
func Decode(data []byte, isJSON bool) (model.EstateRequest, error) {
	var req model.EstateRequest
	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return req, fmt.Errorf("decode json request: %w", err)
		}
		return req, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("decode yaml request: %w", err)
	}
	return req, nil
}
