// SPDX-License-Identifier: MIT

// Package config loads application.yaml based configuration for every other
// package in the module, keyed by the owning application's yaml key.
package config

import (
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

//nolint:gochecknoinits // Configs are loaded once, for the whole runtime.
func init() {
	loadFirstApplicationConfigFile()
	dotEnvPath := `.env`
	for i := 0; i < 5; i++ {
		if err := godotenv.Load(dotEnvPath); err == nil {
			break
		}
		dotEnvPath = `../` + dotEnvPath
	}
}

func MustLoadFromKey(key string, cfg any) {
	if err := viper.UnmarshalKey(key, cfg); err != nil {
		log.Panic(errors.Wrapf(err, "failed to load config by key %q", key))
	}
}

func loadFirstApplicationConfigFile() {
	for _, configFile := range candidateApplicationConfigFiles() {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err == nil {
			return
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Panic(err)
		}
	}

	log.Panic(errors.New("could not find any application.yaml files"))
}

func candidateApplicationConfigFiles() []string {
	var hints []string
	if workingDir, err := os.Getwd(); err == nil {
		hints = append(hints, workingDir)
	}
	//nolint:dogsled // Only the caller file matters.
	_, callerFile, _, _ := runtime.Caller(0)
	hints = append(hints, filepath.Join(filepath.Dir(callerFile), ".."))

	var files []string
	for _, dir := range hints {
		files = append(files, filepath.Join(dir, ".testdata", "application.yaml"), filepath.Join(dir, "application.yaml"))
	}

	return files
}
