package jsonschema

import (
	"fmt"
	"regexp"
)

type minPropertiesKeyword struct{ limit int }

func (k *minPropertiesKeyword) Name() string { return "minProperties" }

func (k *minPropertiesKeyword) Evaluate(ec *EvalContext) {
	obj, ok := ec.Instance.(map[string]any)
	if !ok {
		return
	}
	if len(obj) < k.limit {
		loc := ec.NodeResult.SchemaLocation + "/minProperties"
		ec.NodeResult.fail(newValidationError(KindMinProperties, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("must have at least %d propert(ies)", k.limit),
			map[string]any{"minProperties": k.limit, "actual": len(obj)}))
	}
}

type maxPropertiesKeyword struct{ limit int }

func (k *maxPropertiesKeyword) Name() string { return "maxProperties" }

func (k *maxPropertiesKeyword) Evaluate(ec *EvalContext) {
	obj, ok := ec.Instance.(map[string]any)
	if !ok {
		return
	}
	if len(obj) > k.limit {
		loc := ec.NodeResult.SchemaLocation + "/maxProperties"
		ec.NodeResult.fail(newValidationError(KindMaxProperties, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("must have at most %d propert(ies)", k.limit),
			map[string]any{"maxProperties": k.limit, "actual": len(obj)}))
	}
}

type requiredKeyword struct{ names []string }

func (k *requiredKeyword) Name() string { return "required" }

func (k *requiredKeyword) Evaluate(ec *EvalContext) {
	obj, ok := ec.Instance.(map[string]any)
	if !ok {
		return
	}
	var missing []string
	for _, name := range k.names {
		if _, present := obj[name]; !present {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		loc := ec.NodeResult.SchemaLocation + "/required"
		ec.NodeResult.fail(newValidationError(KindRequired, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("missing required propert(ies): %v", missing),
			map[string]any{"missing": missing}))
	}
}

// propertiesKeyword implements "properties": evaluate the schema
// registered under each key against the instance value at that key, for
// every key the instance and this keyword's map both have.
type propertiesKeyword struct {
	schemas map[string]*Schema
}

func (k *propertiesKeyword) Name() string { return "properties" }

func (k *propertiesKeyword) Evaluate(ec *EvalContext) {
	obj, ok := ec.Instance.(map[string]any)
	if !ok {
		return
	}
	var matched []string
	for name, schema := range k.schemas {
		value, present := obj[name]
		if !present {
			continue
		}
		evaluateChild(ec, schema, value, ec.Path.pushKey(name))
		matched = append(matched, name)
	}
	ec.NodeResult.annotate("properties", matched)
}

// patternPropertiesKeyword implements "patternProperties": every
// instance property whose name matches a pattern is checked against
// that pattern's schema; a property may match — and be checked against
// — more than one pattern.
type patternPropertiesKeyword struct {
	patterns []patternSchema
}

type patternSchema struct {
	re     *regexp.Regexp
	source string
	schema *Schema
}

func (k *patternPropertiesKeyword) Name() string { return "patternProperties" }

func (k *patternPropertiesKeyword) Evaluate(ec *EvalContext) {
	obj, ok := ec.Instance.(map[string]any)
	if !ok {
		return
	}
	var matched []string
	for name, value := range obj {
		hit := false
		for _, p := range k.patterns {
			if p.re.MatchString(name) {
				evaluateChild(ec, p.schema, value, ec.Path.pushKey(name))
				hit = true
			}
		}
		if hit {
			matched = append(matched, name)
		}
	}
	ec.NodeResult.annotate("patternProperties", matched)
}

// additionalPropertiesKeyword implements "additionalProperties": applies
// to every instance property not already claimed by "properties" or
// "patternProperties" on the same node (siblings, resolved at compile
// time into the exclude set this keyword carries).
type additionalPropertiesKeyword struct {
	declaredNames []string
	patterns      []*regexp.Regexp
	schema        *Schema // nil paired with boolFalse meaning "additionalProperties: false"
	boolFalse     bool
}

func (k *additionalPropertiesKeyword) Name() string { return "additionalProperties" }

func (k *additionalPropertiesKeyword) Evaluate(ec *EvalContext) {
	obj, ok := ec.Instance.(map[string]any)
	if !ok {
		return
	}
	declared := make(map[string]bool, len(k.declaredNames))
	for _, n := range k.declaredNames {
		declared[n] = true
	}
	var matched []string
	var rejected []string
	for name, value := range obj {
		if declared[name] {
			continue
		}
		if k.matchesPattern(name) {
			continue
		}
		if k.boolFalse {
			rejected = append(rejected, name)
			continue
		}
		evaluateChild(ec, k.schema, value, ec.Path.pushKey(name))
		matched = append(matched, name)
	}
	if len(rejected) > 0 {
		loc := ec.NodeResult.SchemaLocation + "/additionalProperties"
		ec.NodeResult.fail(newValidationError(KindAdditionalProperties, loc, ec.Path.String(), ec.Instance,
			fmt.Sprintf("unexpected propert(ies): %v", rejected),
			map[string]any{"unexpected": rejected}))
	}
	ec.NodeResult.annotate("additionalProperties", matched)
}

func (k *additionalPropertiesKeyword) matchesPattern(name string) bool {
	for _, re := range k.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// propertyNamesKeyword implements "propertyNames": every instance
// property name, treated as a one-element string instance, is checked
// against a schema.
type propertyNamesKeyword struct {
	schema *Schema
}

func (k *propertyNamesKeyword) Name() string { return "propertyNames" }

func (k *propertyNamesKeyword) Evaluate(ec *EvalContext) {
	obj, ok := ec.Instance.(map[string]any)
	if !ok {
		return
	}
	for name := range obj {
		evaluateChild(ec, k.schema, name, ec.Path.pushKey(name))
	}
}

// dependentRequiredKeyword implements 2019-09+'s "dependentRequired":
// if the triggering property is present, a list of other properties
// must also be present.
type dependentRequiredKeyword struct {
	deps map[string][]string
}

func (k *dependentRequiredKeyword) Name() string { return "dependentRequired" }

func (k *dependentRequiredKeyword) Evaluate(ec *EvalContext) {
	obj, ok := ec.Instance.(map[string]any)
	if !ok {
		return
	}
	for trigger, required := range k.deps {
		if _, present := obj[trigger]; !present {
			continue
		}
		var missing []string
		for _, name := range required {
			if _, ok := obj[name]; !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			loc := ec.NodeResult.SchemaLocation + "/dependentRequired/" + escapePointerSegment(trigger)
			ec.NodeResult.fail(newValidationError(KindDependentRequired, loc, ec.Path.String(), ec.Instance,
				fmt.Sprintf("%q requires propert(ies) %v", trigger, missing),
				map[string]any{"trigger": trigger, "missing": missing}))
		}
	}
}

// dependentSchemasKeyword implements 2019-09+'s "dependentSchemas": if
// the triggering property is present, the whole instance must also
// satisfy an associated schema.
type dependentSchemasKeyword struct {
	deps map[string]*Schema
}

func (k *dependentSchemasKeyword) Name() string { return "dependentSchemas" }

func (k *dependentSchemasKeyword) Evaluate(ec *EvalContext) {
	obj, ok := ec.Instance.(map[string]any)
	if !ok {
		return
	}
	for trigger, schema := range k.deps {
		if _, present := obj[trigger]; !present {
			continue
		}
		evaluateChild(ec, schema, ec.Instance, ec.Path)
	}
}

// dependenciesKeyword implements the pre-2019-09 combined
// "dependencies" keyword, where each entry is either a property-name
// list (dependentRequired's predecessor) or a schema (dependentSchemas'
// predecessor).
type dependenciesKeyword struct {
	propertyDeps map[string][]string
	schemaDeps   map[string]*Schema
}

func (k *dependenciesKeyword) Name() string { return "dependencies" }

func (k *dependenciesKeyword) Evaluate(ec *EvalContext) {
	obj, ok := ec.Instance.(map[string]any)
	if !ok {
		return
	}
	for trigger, required := range k.propertyDeps {
		if _, present := obj[trigger]; !present {
			continue
		}
		var missing []string
		for _, name := range required {
			if _, ok := obj[name]; !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			loc := ec.NodeResult.SchemaLocation + "/dependencies/" + escapePointerSegment(trigger)
			ec.NodeResult.fail(newValidationError(KindDependentRequired, loc, ec.Path.String(), ec.Instance,
				fmt.Sprintf("%q requires propert(ies) %v", trigger, missing),
				map[string]any{"trigger": trigger, "missing": missing}))
		}
	}
	for trigger, schema := range k.schemaDeps {
		if _, present := obj[trigger]; !present {
			continue
		}
		evaluateChild(ec, schema, ec.Instance, ec.Path)
	}
}
