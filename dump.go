package tracelog

import (
	"fmt"
	"reflect"
)

// Maximum recursion depth to prevent stack overflow
const maxDumpDepth = 10

// Dump logs the contents of the provided value at the debug level,
// one record per field or element. Structs dump their exported fields,
// maps and slices their elements, basic types their value. Pointer
// cycles are detected and reported instead of recursed into.
func (s *Service) Dump(v interface{}) {
	if s == nil || !s.isInitialized.Load() {
		return
	}
	if !s.threshold.Enables(LevelDebug) {
		return
	}

	if v == nil {
		s.Debug("Dump: <nil>")
		return
	}

	visited := make(map[uintptr]bool)
	s.dumpValue(v, emptyString, visited, 0)
}

func (s *Service) dumpValue(v interface{}, prefix string, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		s.Debug(fmt.Sprintf("%s: <max depth reached>", prefix))
		return
	}
	if v == nil {
		s.Debug(fmt.Sprintf("%s: <nil>", prefix))
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers with cycle detection. Pointer() is
	// only legal on a handful of kinds, so unwrap kind by kind.
	for {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				s.Debug(fmt.Sprintf("%s: <nil>", prefix))
				return
			}
			val = val.Elem()
			continue
		case reflect.Ptr:
			if val.IsNil() {
				s.Debug(fmt.Sprintf("%s: <nil>", prefix))
				return
			}
			ptr := val.Pointer()
			if visited[ptr] {
				s.Debug(fmt.Sprintf("%s: <circular reference>", prefix))
				return
			}
			visited[ptr] = true
			val = val.Elem()
		default:
		}
		break
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		if prefix == emptyString {
			s.Debug(fmt.Sprintf("Struct: %s", typ.Name()))
		} else {
			s.Debug(fmt.Sprintf("%s: %s {", prefix, typ.Name()))
		}

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)
			if !fieldVal.CanInterface() {
				continue
			}
			fieldPrefix := field.Name
			if prefix != emptyString {
				fieldPrefix = prefix + "." + field.Name
			}
			s.dumpValue(fieldVal.Interface(), fieldPrefix, visited, depth+1)
		}

		if prefix != emptyString {
			s.Debug(fmt.Sprintf("%s: }", prefix))
		}

	case reflect.Map:
		s.Debug(fmt.Sprintf("%s: map[%s]%s (len: %d) {",
			prefix, typ.Key().String(), typ.Elem().String(), val.Len()))

		iter := val.MapRange()
		for iter.Next() {
			keyStr := fmt.Sprintf("%v", iter.Key().Interface())
			s.dumpValue(iter.Value().Interface(), prefix+"["+keyStr+"]", visited, depth+1)
		}

		s.Debug(fmt.Sprintf("%s: }", prefix))

	case reflect.Slice, reflect.Array:
		s.Debug(fmt.Sprintf("%s: %s (len: %d, cap: %d) {",
			prefix, typ.String(), val.Len(), val.Cap()))

		const maxElements = 10
		for i := 0; i < val.Len() && i < maxElements; i++ {
			elemPrefix := fmt.Sprintf("%s[%d]", prefix, i)
			elem := val.Index(i)
			if elem.CanInterface() {
				s.dumpValue(elem.Interface(), elemPrefix, visited, depth+1)
			} else {
				s.dumpValue(reflect.New(elem.Type()).Elem().Interface(), elemPrefix, visited, depth+1)
			}
		}
		if val.Len() > maxElements {
			s.Debug(fmt.Sprintf("%s: ... (%d more elements)", prefix, val.Len()-maxElements))
		}

		s.Debug(fmt.Sprintf("%s: }", prefix))

	default:
		if val.IsValid() && val.CanInterface() {
			s.Debug(fmt.Sprintf("%s: %v", prefix, val.Interface()))
		} else {
			s.Debug(fmt.Sprintf("%s: %v", prefix, v))
		}
	}
}
