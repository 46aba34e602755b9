package app

import (
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
	"github.com/castellano-app/castellano-backend/internal/utils"
)

type Config struct {
	Port             string
	DefaultVerbClass string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:             utils.GetEnv("PORT", "8080", log),
		DefaultVerbClass: utils.GetEnv("DEFAULT_VERB_CLASS", "top20", log),
	}
}
