package jsonschema

// contentKeyword implements draft 7+'s contentEncoding/contentMediaType/
// contentSchema trio as one unit, since contentSchema only means
// anything in terms of contentMediaType's decoded value, which in turn
// only means anything in terms of contentEncoding's decoded bytes (spec
// §6). Each stage is independently optional; a string instance with none
// of the three configured never reaches this keyword at all.
//
// This implementation decodes directly from the instance string's UTF-8
// bytes for contentMediaType when no contentEncoding is configured,
// which covers the overwhelming majority of real schemas (base64 JSON,
// base64 images, or plain UTF-8 JSON/XML/YAML); chaining an arbitrary
// contentEncoding into an arbitrary contentMediaType decoder is
// supported whenever a decoder is registered for that pair.
type contentKeyword struct {
	encodingName  string
	decode        ContentDecoder // nil if no contentEncoding keyword
	mediaTypeName string
	check         ContentMediaChecker // nil if no contentMediaType keyword
	schema        *Schema             // nil if no contentSchema keyword
	assert        bool
}

func (k *contentKeyword) Name() string { return "contentEncoding" }

func (k *contentKeyword) Evaluate(ec *EvalContext) {
	s, ok := ec.Instance.(string)
	if !ok {
		return
	}

	data := []byte(s)
	if k.decode != nil {
		decoded, err := k.decode(s)
		if err != nil {
			if k.assert {
				loc := ec.NodeResult.SchemaLocation + "/contentEncoding"
				ec.NodeResult.fail(newValidationError(KindContentEncoding, loc, ec.Path.String(), ec.Instance,
					"does not match contentEncoding "+k.encodingName, map[string]any{"contentEncoding": k.encodingName}))
			}
			return
		}
		data = decoded
		ec.NodeResult.annotate("contentEncoding", k.encodingName)
	}

	if k.check == nil {
		return
	}
	parsed, err := k.check(data)
	if err != nil {
		if k.assert {
			loc := ec.NodeResult.SchemaLocation + "/contentMediaType"
			ec.NodeResult.fail(newValidationError(KindContentMediaType, loc, ec.Path.String(), ec.Instance,
				"does not match contentMediaType "+k.mediaTypeName, map[string]any{"contentMediaType": k.mediaTypeName}))
		}
		return
	}
	ec.NodeResult.annotate("contentMediaType", k.mediaTypeName)

	if k.schema == nil {
		return
	}
	evaluateChild(ec, k.schema, parsed, ec.Path)
	ec.NodeResult.annotate("contentSchema", true)
}
