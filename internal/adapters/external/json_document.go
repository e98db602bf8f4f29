package external

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"weathercli.app/internal/core/weather"
	"weathercli.app/pkg/errors"
)

// jsonObject is a loosely typed decoded JSON object with checked accessors.
// Paths are dot separated; numeric segments index into arrays.
type jsonObject map[string]interface{}

func (o jsonObject) lookup(path string) (interface{}, error) {
	var current interface{} = map[string]interface{}(o)

	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			next, ok := node[segment]
			if !ok || next == nil {
				return nil, missingField(path)
			}
			current = next
		case []interface{}:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, missingField(path)
			}
			current = node[idx]
		default:
			return nil, missingField(path)
		}
	}
	return current, nil
}

func (o jsonObject) number(path string) (float64, error) {
	v, err := o.lookup(path)
	if err != nil {
		return 0, err
	}
	n, ok := v.(float64)
	if !ok {
		return 0, wrongType(path, "number")
	}
	return n, nil
}

func (o jsonObject) text(path string) (string, error) {
	v, err := o.lookup(path)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", wrongType(path, "string")
	}
	return s, nil
}

func (o jsonObject) list(path string) ([]jsonObject, error) {
	v, err := o.lookup(path)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, wrongType(path, "array")
	}

	objects := make([]jsonObject, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, wrongType(fmt.Sprintf("%s.%d", path, i), "object")
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// optionalNumber is number with a missing field mapped to weather.ErrUnavailable
func (o jsonObject) optionalNumber(path string) (float64, error) {
	n, err := o.number(path)
	if isMissing(err) {
		return 0, weather.ErrUnavailable
	}
	return n, err
}

// optionalText is text with a missing field mapped to weather.ErrUnavailable
func (o jsonObject) optionalText(path string) (string, error) {
	s, err := o.text(path)
	if isMissing(err) {
		return "", weather.ErrUnavailable
	}
	return s, err
}

type missingFieldError struct {
	path string
}

func (e *missingFieldError) Error() string {
	return fmt.Sprintf("missing field '%s'", e.path)
}

func missingField(path string) error {
	return errors.NewDecodeError(fmt.Sprintf("missing field '%s'", path), &missingFieldError{path: path})
}

func wrongType(path, expected string) error {
	return errors.NewDecodeError(fmt.Sprintf("field '%s' is not a %s", path, expected), nil)
}

func isMissing(err error) bool {
	var missing *missingFieldError
	return err != nil && stderrors.As(err, &missing)
}
