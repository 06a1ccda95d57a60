package main

import (
	"io"
	stdlog "log"
	"os"

	"github.com/kazakovdmitriy/classgen/internal/chooser"
	"github.com/kazakovdmitriy/classgen/internal/config"
	"github.com/kazakovdmitriy/classgen/internal/generator"
	"github.com/kazakovdmitriy/classgen/internal/logger"
	"github.com/kazakovdmitriy/classgen/internal/model"
	"github.com/kazakovdmitriy/classgen/internal/resource"
	"go.uber.org/zap"
)

var loadTemplate generator.TemplateLoader = resource.LoadTemplate

func main() {
	cfg := config.ParseGeneratorConfig(os.Args[1:])

	log, err := logger.InitializeOrDefault(cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer log.Sync()

	if err := run(os.Stdout, cfg, loadTemplate, log); err != nil {
		log.Fatal("generation failed", zap.Error(err))
	}
}

func run(w io.Writer, cfg *config.GeneratorFlags, load generator.TemplateLoader, log *zap.Logger) error {
	log.Debug("starting generator", zap.Int64("seed", cfg.Seed))

	g := generator.New(chooser.NewSource(cfg.Seed), model.DefaultPlaceholders(), log)
	return generator.Run(w, load, g)
}
