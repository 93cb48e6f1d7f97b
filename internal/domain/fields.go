package domain

// FieldMap is the single source of truth for which application-facing
// field names are legal for an operation and which storage column each
// one maps to. Anything absent from the map never reaches storage.
type FieldMap map[string]string

// Column resolves an application field name to its storage column.
func (m FieldMap) Column(appField string) (string, bool) {
	col, ok := m[appField]
	return col, ok
}

// MapPayload translates an app-level payload to column-keyed values,
// silently dropping fields that are not in the map.
func (m FieldMap) MapPayload(payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		if col, ok := m[k]; ok {
			out[col] = v
		}
	}
	return out
}
