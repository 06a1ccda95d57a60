package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/spf13/pflag"
)

// GeneratorFlags - настройки запуска генератора.
// Все поля необязательны, запуск без аргументов использует значения по умолчанию.
type GeneratorFlags struct {
	LogLevel string `env:"CLASSGEN_LOGLEVEL"`
	Seed     int64  `env:"CLASSGEN_SEED"`
}

// ParseGeneratorConfig собирает настройки: значения по умолчанию, затем флаги, затем окружение
func ParseGeneratorConfig(args []string) *GeneratorFlags {
	var cfg GeneratorFlags

	setDefaultGeneratorFlag(&cfg)
	parseGeneratorFlag(&cfg, args)
	parseGeneratorEnv(&cfg)

	return &cfg
}

func setDefaultGeneratorFlag(cfg *GeneratorFlags) {
	cfg.LogLevel = "info"
}

func parseGeneratorEnv(cfg *GeneratorFlags) {
	err := env.Parse(cfg)
	if err != nil {
		log.Printf("Warning: failed to parse environment variables: %v", err)
	}
}

func parseGeneratorFlag(cfg *GeneratorFlags, args []string) {
	flags := pflag.NewFlagSet("classgen", pflag.ContinueOnError)
	// неизвестные флаги пропускаются, остальные разбираются дальше
	flags.ParseErrorsWhitelist.UnknownFlags = true

	flags.StringVarP(&cfg.LogLevel, "loglevel", "g", cfg.LogLevel, "Logger level")
	flags.Int64VarP(&cfg.Seed, "seed", "s", cfg.Seed, "Random seed, 0 seeds from current time")

	if err := flags.Parse(args); err != nil {
		log.Printf("Error parsing command-line flags: %v", err)
	}

	if flags.NArg() > 0 {
		log.Printf("Ignoring positional arguments: %v", flags.Args())
	}
}
