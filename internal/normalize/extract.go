package normalize

import "strconv"

// Ключи известных обёрток extended-JSON. Значение под обёрткой хранится
// строкой (числовые типы) либо строкой с hex-идентификатором ($oid).
var numericWrapperKeys = []string{"$numberInt", "$numberLong", "$numberDouble"}

// extractID извлекает идентификатор документа: сначала "id", затем "_id".
// Любая форма записи сводится к обычной строке.
func extractID(raw map[string]any) string {
	for _, key := range []string{"id", "_id"} {
		if v, ok := raw[key]; ok {
			if s := unwrapString(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// extractRef извлекает строковую ссылку на другой документ
func extractRef(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	return unwrapString(v)
}

// extractString извлекает строковое поле, пустая строка при отсутствии
func extractString(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// extractNumber извлекает числовое поле. Стратегии по порядку:
// примитив, обёртка extended-JSON, числовая строка. Иначе 0.
func extractNumber(raw map[string]any, key string) int {
	v, ok := raw[key]
	if !ok {
		return 0
	}
	return unwrapNumber(v)
}

func unwrapString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// числовой идентификатор сводим к строковой записи
		return strconv.FormatInt(int64(val), 10)
	case map[string]any:
		if s, ok := val["$oid"].(string); ok {
			return s
		}
		for _, key := range numericWrapperKeys {
			if inner, ok := val[key].(string); ok {
				return inner
			}
		}
	}
	return ""
}

func unwrapNumber(v any) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case string:
		if n, err := strconv.ParseFloat(val, 64); err == nil {
			return int(n)
		}
	case map[string]any:
		for _, key := range numericWrapperKeys {
			if inner, ok := val[key]; ok {
				return unwrapNumber(inner)
			}
		}
	}
	return 0
}
