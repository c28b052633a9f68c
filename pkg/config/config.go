// Package config parses env-tagged structs with caarlos0/env, loading .env
// files through godotenv first. Each struct type is parsed once per process
// and served from a cache afterwards, so every component reads the same
// settings no matter how many times it asks.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// ErrParsingConfig wraps failures from env.Parse or a .env file load.
	ErrParsingConfig = errors.New("config: parse failed")
	// ErrNilPointer is returned when Load receives a nil target.
	ErrNilPointer = errors.New("config: nil target")
)

var (
	dotenvOnce sync.Once

	mu     sync.Mutex
	loaded = make(map[string]any)
)

// Load parses the process environment into v. The first call for a given
// struct type does the parse; later calls return the cached value. A .env
// file in the working directory is applied once before the first parse and
// its absence is not an error.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() { _ = godotenv.Load() })

	key := typeKey[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	loaded[key] = *v
	return nil
}

// MustLoad is Load for settings the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// LoadEnv applies the named .env files to the process environment in order,
// later files overriding earlier ones. Unlike the implicit load in Load, a
// missing file is an error because the caller asked for it by name.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Overload(filenames...); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv for env files the process cannot start without.
func MustLoadEnv(filenames ...string) {
	if err := LoadEnv(filenames...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// ResetCache drops every cached struct so the next Load re-parses the
// environment. Intended for tests that mutate env vars between loads.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	loaded = make(map[string]any)
}

// ForceReload re-parses the environment into v, replacing the cached value
// for its type. Use after t.Setenv or LoadEnv changed the environment.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	mu.Lock()
	delete(loaded, typeKey[T]())
	mu.Unlock()

	return Load(v)
}

func typeKey[T any]() string {
	t := reflect.TypeOf(*new(T))
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
