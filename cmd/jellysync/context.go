package main

import (
	"log/slog"
	"strings"
	"sync"

	"jellysync/internal/config"
	"jellysync/internal/logging"
)

type commandContext struct {
	configFlag    *string
	dryRunFlag    *bool
	verboseFlag   *bool
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string, dryRunFlag, verboseFlag *bool, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		dryRunFlag:    dryRunFlag,
		verboseFlag:   verboseFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return config.DefaultPath
	}
	if path := strings.TrimSpace(*c.configFlag); path != "" {
		return path
	}
	return config.DefaultPath
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = config.Load(c.configPath())
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		level := "info"
		if c.verboseFlag != nil && *c.verboseFlag {
			level = "debug"
		}
		format := "console"
		if c.logFormatFlag != nil {
			format = *c.logFormatFlag
		}
		c.logger, c.loggerErr = logging.New(logging.Options{Level: level, Format: format})
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) dryRun() bool {
	return c.dryRunFlag != nil && *c.dryRunFlag
}
