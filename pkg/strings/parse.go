package strings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type (
	SupportedValueParsingTypes interface {
		string | bool | int | int64 | float64 | time.Duration | uuid.UUID
	}

	SupportedPointerParsingTypes interface {
		*string | *bool | *int | *int64 | *float64 | *time.Duration | *uuid.UUID
	}
)

func ParseTypedValue[T SupportedValueParsingTypes | SupportedPointerParsingTypes](value string) (T, error) {
	var result T
	var parsed any
	var err error

	switch any(result).(type) {
	case string:
		parsed = value
	case *string:
		parsed = &value
	case bool:
		parsed, err = strconv.ParseBool(value)
	case *bool:
		parsed, err = toPointer(strconv.ParseBool(value))
	case int:
		parsed, err = strconv.Atoi(value)
	case *int:
		parsed, err = toPointer(strconv.Atoi(value))
	case int64:
		parsed, err = strconv.ParseInt(value, 10, 64)
	case *int64:
		parsed, err = toPointer(strconv.ParseInt(value, 10, 64))
	case float64:
		parsed, err = strconv.ParseFloat(value, 64)
	case *float64:
		parsed, err = toPointer(strconv.ParseFloat(value, 64))
	case time.Duration:
		parsed, err = time.ParseDuration(value)
	case *time.Duration:
		parsed, err = toPointer(time.ParseDuration(value))
	case uuid.UUID:
		parsed, err = uuid.Parse(value)
	case *uuid.UUID:
		parsed, err = toPointer(uuid.Parse(value))
	default:
		return result, fmt.Errorf("unsupported type %T", result)
	}
	if err != nil {
		return result, fmt.Errorf("parse %q as %T: %w", value, result, err)
	}

	return parsed.(T), nil
}

func toPointer[T any](value T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}

	return &value, nil
}
