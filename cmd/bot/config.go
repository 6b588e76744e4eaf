package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	BufferSize        int           `env:"BUFFER_SIZE,default=256" validate:"gte=1"`
	SinkTimeout       time.Duration `env:"SINK_TIMEOUT,default=2s" validate:"gt=0"`
	DrainTimeout      time.Duration `env:"DRAIN_TIMEOUT,default=10s" validate:"gt=0"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	SessionTTL        time.Duration `env:"SESSION_TTL,default=0s" validate:"gte=0"`
	JanitorInterval   time.Duration `env:"JANITOR_INTERVAL,default=1m" validate:"gt=0"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=0s" validate:"gte=0"`
	MaxAttempts       int           `env:"MAX_ATTEMPTS,default=6" validate:"min=1,max=6"`
	ForfeitOnNoise    bool          `env:"FORFEIT_ON_NOISE,default=true"`
	CommandPrefixes   string        `env:"COMMAND_PREFIXES,default=./#!" validate:"required"`
	WordLanguages     string        `env:"WORD_LANGUAGES,default=es" validate:"required"`
	CharReplacement   string        `env:"CHARACTER_REPLACEMENT,default=*"`
	RandomSeed        uint64        `env:"RANDOM_SEED"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO" validate:"required"`
	Colours           bool          `env:"COLOURS,default=true"`
	Host              string        `env:"HOST,default=localhost"`
	Port              int           `env:"PORT,default=8080" validate:"min=1,max=65535"`
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := CharacterRune(c.CharReplacement); err != nil {
		return err
	}
	return nil
}

func (c Config) Languages() []string {
	var languages []string
	for _, language := range strings.Split(c.WordLanguages, ",") {
		if language = strings.TrimSpace(language); language != "" {
			languages = append(languages, language)
		}
	}
	return languages
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
