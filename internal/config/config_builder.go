package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

const envFileKey = "ENV_FILE"

const defaultEnvFile = ".env"

type configBuilder struct {
	environ map[string]string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		environ: make(map[string]string),
	}
}

// build parses the collected environment into cfg.
func (b *configBuilder) build(cfg any) error {
	if b.err != nil {
		return fmt.Errorf("error occured during building config: %w", b.err)
	}

	return parseEnv(cfg, b.environ)
}

// withEnv adds the process environment. Values already collected are
// overwritten.
func (b *configBuilder) withEnv() *configBuilder {
	envs := normalizeKeys(environToMap(os.Environ()))
	if err := mergo.Merge(&b.environ, envs, mergo.WithOverride); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error merging env configs: %w", err))
	}

	return b
}

// withDotEnv adds values from the dotenv file for keys not collected yet.
func (b *configBuilder) withDotEnv() *configBuilder {
	path := b.environ[envFileKey]
	if path == "" {
		path = defaultEnvFile
	}

	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return b
	}
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error reading env file %q: %w", path, err))
		return b
	}

	if err = mergo.Merge(&b.environ, normalizeKeys(values)); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error merging env file configs: %w", err))
	}

	return b
}

// withoutEmpty fails the build for every key in keys that is present with an
// empty value. caarlos0/env substitutes envDefault for empty values, which is
// only acceptable for plain strings.
func (b *configBuilder) withoutEmpty(keys ...string) *configBuilder {
	for _, key := range keys {
		if value, ok := b.environ[key]; ok && value == "" {
			b.err = errors.Join(b.err, fmt.Errorf("%w: %s", ErrEmptyValue, key))
		}
	}

	return b
}

func environToMap(environ []string) map[string]string {
	envs := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		envs[key] = value
	}
	return envs
}

// normalizeKeys upper-cases variable names so lookups are case-insensitive.
// When names collide a non-empty value wins, and among non-empty values the
// upper-case spelling wins.
func normalizeKeys(envs map[string]string) map[string]string {
	normalized := make(map[string]string, len(envs))
	for key, value := range envs {
		upper := strings.ToUpper(key)
		if existing, ok := normalized[upper]; ok && existing != "" && (value == "" || key != upper) {
			continue
		}
		normalized[upper] = value
	}
	return normalized
}
