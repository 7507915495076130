package conv

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// RequestKey normalizes a JSON-RPC id into a map key: numbers compare by value, strings
// by text, and a number never matches a string of the same digits
func RequestKey(id interface{}) string {
	raw, ok := id.(json.RawMessage)
	if !ok {
		var err error
		if raw, err = json.Marshal(id); err != nil {
			return fmt.Sprintf("%T:%v", id, id)
		}
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return "raw:" + string(raw)
	}
	switch actual := value.(type) {
	case float64:
		return "number:" + strconv.FormatFloat(actual, 'f', -1, 64)
	case string:
		return "string:" + actual
	case nil:
		return "null"
	}
	return "raw:" + string(raw)
}

// Convert re-shapes source into T using JSON encoding
func Convert[T any](source interface{}) (*T, error) {
	data, err := json.Marshal(source)
	if err != nil {
		return nil, err
	}
	ret := new(T)
	if err = json.Unmarshal(data, ret); err != nil {
		return nil, err
	}
	return ret, nil
}
