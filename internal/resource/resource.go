package resource

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TemplateName - имя шаблона внутри Bundle
const TemplateName = "template.txt"

//go:embed template.txt
var Bundle embed.FS

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrResourceRead     = errors.New("resource read failure")
)

// LoadTemplate читает шаблон, встроенный в бинарник
func LoadTemplate() (string, error) {
	return Load(Bundle, TemplateName)
}

// Load читает файл name из fsys целиком и декодирует его как UTF-8.
// Файл закрывается при любом исходе.
func Load(fsys fs.FS, name string) (string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return "", fmt.Errorf("%w: open %s: %w", ErrResourceRead, name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(transform.NewReader(f, unicode.UTF8.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrResourceRead, name, err)
	}

	return string(data), nil
}
