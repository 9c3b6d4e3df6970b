package models

import (
	"fmt"
	"strconv"
)

type EntityKind int

const (
	EntityScalar EntityKind = iota
	EntityRaw
)

// Entity is one extracted slot value. The backend sends entities as bare
// strings, numbers, or {"value": ...}/{"raw": ...} wrappers; DecodeEntities
// normalizes all of them at the wire boundary so downstream code switches on
// Kind instead of probing optional fields.
type Entity struct {
	Kind  EntityKind
	Value string
}

func DecodeEntities(raw map[string]any) map[string]Entity {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]Entity, len(raw))
	for key, v := range raw {
		switch val := v.(type) {
		case string:
			out[key] = Entity{Kind: EntityScalar, Value: val}
		case float64:
			out[key] = Entity{Kind: EntityScalar, Value: strconv.FormatFloat(val, 'f', -1, 64)}
		case bool:
			out[key] = Entity{Kind: EntityScalar, Value: strconv.FormatBool(val)}
		case map[string]any:
			if inner, ok := val["value"]; ok {
				out[key] = Entity{Kind: EntityScalar, Value: stringify(inner)}
			} else if inner, ok := val["raw"]; ok {
				out[key] = Entity{Kind: EntityRaw, Value: stringify(inner)}
			}
		}
	}
	return out
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
