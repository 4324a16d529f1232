package jsonschema

import (
	"encoding/base64"
	"encoding/xml"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// builtinContentEncodings mirrors the teacher's Compiler.Decoders default
// set (spec §6 "contentEncoding"): only "base64" ships by default, since
// it is the only encoding IANA and the JSON Schema spec itself name.
var builtinContentEncodings = map[string]ContentDecoder{
	"base64": func(value string) ([]byte, error) {
		return base64.StdEncoding.DecodeString(value)
	},
}

// builtinContentMediaTypes mirrors the teacher's Compiler.MediaTypes
// default set (spec §6 "contentMediaType"), extended with goccy/go-yaml
// for "application/yaml" per this module's domain-stack wiring.
var builtinContentMediaTypes = map[string]ContentMediaChecker{
	"application/json": func(data []byte) (any, error) {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, ErrJSONUnmarshal
		}
		return v, nil
	},
	"application/xml": func(data []byte) (any, error) {
		var v any
		if err := xml.Unmarshal(data, &v); err != nil {
			return nil, ErrXMLUnmarshal
		}
		return v, nil
	},
	"application/yaml": func(data []byte) (any, error) {
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, ErrYAMLUnmarshal
		}
		return v, nil
	},
}
