package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldStrategy is the structured log field key for the extraction strategy name.
	FieldStrategy = "extract_strategy"
	// FieldProfileField is the structured log field key for the profile field being extracted.
	FieldProfileField = "profile_field"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// ExtractionFields returns standard zap fields describing which extractor
// strategy produced a profile field. Empty values are ignored to keep log
// entries compact when a strategy yielded nothing.
func ExtractionFields(field, strategy string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProfileField, Value: field},
		StringField{Key: FieldStrategy, Value: strategy},
	)
}
