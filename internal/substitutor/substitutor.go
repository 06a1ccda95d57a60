package substitutor

import (
	"sort"
	"strings"
)

// Token возвращает текст плейсхолдера вида ${name}
func Token(name string) string {
	return "${" + name + "}"
}

// Substitute заменяет каждое вхождение ${name} на bindings[name].
// Плейсхолдеры без значения остаются в тексте как есть.
func Substitute(template string, bindings map[string]string) string {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	result := template
	for _, name := range names {
		result = strings.ReplaceAll(result, Token(name), bindings[name])
	}
	return result
}
