package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

// FieldInfo describes one exported field. Stringer fields are shown through
// their String method instead of being expanded.
type FieldInfo struct {
	Name     string
	Type     reflect.Type
	Index    int
	IsStruct bool
	IsArray  bool
	Stringer bool
}

// ReflectionCache memoizes the exported fields of the value types shown in
// the inspector.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fields = append(fields, FieldInfo{
				Name:     field.Name,
				Type:     field.Type,
				Index:    i,
				IsStruct: field.Type.Kind() == reflect.Struct,
				IsArray:  field.Type.Kind() == reflect.Array,
				Stringer: field.Type.Implements(stringerType),
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()
