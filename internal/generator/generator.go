package generator

import (
	"fmt"
	"io"

	"github.com/kazakovdmitriy/classgen/internal/chooser"
	"github.com/kazakovdmitriy/classgen/internal/model"
	"github.com/kazakovdmitriy/classgen/internal/substitutor"
	"go.uber.org/zap"
)

// TemplateLoader возвращает текст шаблона
type TemplateLoader func() (string, error)

// Generator разыгрывает значения плейсхолдеров и подставляет их в шаблон
type Generator struct {
	source       chooser.Source
	placeholders []model.Placeholder
	logger       *zap.Logger
}

// New создает генератор
func New(source chooser.Source, placeholders []model.Placeholder, logger *zap.Logger) *Generator {
	return &Generator{
		source:       source,
		placeholders: placeholders,
		logger:       logger,
	}
}

// Draw выбирает по одному значению на каждый плейсхолдер.
// Выборы независимы, одинаковые значения допустимы.
func (g *Generator) Draw() (map[string]string, error) {
	bindings := make(map[string]string, len(g.placeholders))

	for _, p := range g.placeholders {
		value, err := chooser.Pick(g.source, p.Candidates)
		if err != nil {
			return nil, fmt.Errorf("failed to draw %s: %w", p.Name, err)
		}

		g.logger.Debug("placeholder drawn",
			zap.String("placeholder", p.Name),
			zap.String("value", value),
		)
		bindings[p.Name] = value
	}

	return bindings, nil
}

// Generate подставляет свежие значения в template
func (g *Generator) Generate(template string) (string, error) {
	bindings, err := g.Draw()
	if err != nil {
		return "", err
	}
	return substitutor.Substitute(template, bindings), nil
}

// Run загружает шаблон, генерирует текст и пишет его в w одной записью.
// При ошибке в w ничего не пишется.
func Run(w io.Writer, load TemplateLoader, g *Generator) error {
	template, err := load()
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}
	g.logger.Info("template loaded", zap.Int("bytes", len(template)))

	source, err := g.Generate(template)
	if err != nil {
		return fmt.Errorf("failed to generate source: %w", err)
	}

	if _, err := io.WriteString(w, source+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	g.logger.Info("source generated", zap.Int("placeholders", len(g.placeholders)))
	return nil
}
