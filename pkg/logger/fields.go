package logger

import (
	"fmt"
	"reflect"
)

// LoggingDetail is a piece of structured information attached to a log entry.
type LoggingDetail interface{ addTo(*Logger, logEntry) }

func Field(key string, value any) LoggingDetail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(l *Logger, e logEntry) {
	e[l.getKeyFormatter()(f.Key)] = l.toFieldValue(f.Value)
}

type Fields map[string]any

func (fields Fields) addTo(l *Logger, e logEntry) {
	for k, v := range fields {
		Field(k, v).addTo(l, e)
	}
}

func ErrField(err error) LoggingDetail {
	if err == nil {
		return nullLoggingDetail{}
	}
	return Field("error", Fields{"message": err.Error()})
}

func (l *Logger) toFieldValue(val any) any {
	if val == nil {
		return nil
	}
	switch val := val.(type) {
	case Fields:
		le := logEntry{}
		val.addTo(l, le)
		return map[string]any(le)
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return fmt.Sprintf("%v", val)
		}
		vs := map[string]any{}
		for _, key := range rv.MapKeys() {
			vs[l.getKeyFormatter()(key.String())] = l.toFieldValue(rv.MapIndex(key).Interface())
		}
		return vs
	case reflect.Struct, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return fmt.Sprintf("%v", val)
	default:
		return val
	}
}

type logEntry map[string]any

func (le logEntry) Merge(oth logEntry) logEntry {
	for k, v := range oth {
		le[k] = v
	}
	return le
}

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(*Logger, logEntry) {}
