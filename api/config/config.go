// Licensed to NASA JPL under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. NASA JPL licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Library configuration as read from strings/JSON, with env var overrides
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/maven-iuvs/core/core/datafiles"
	"github.com/maven-iuvs/core/core/fileaccess"
	"github.com/maven-iuvs/core/core/logger"
)

// Config combines env vars and config JSON values
type Config struct {
	// Archive root on the local machine (or the S3 bucket root prefix)
	DataRoot string

	// "production" or "stage"
	EnvironmentName string

	// Where the ancillary arrays are installed. Defaults to <DataRoot>/anc
	AncPath string

	// Where the ephemeris kernels live. Defaults to <DataRoot>/spice
	SpicePath string

	// Optional S3 bucket. When set, file access goes through S3 instead of
	// the local file system
	DataBucket string

	LogLevel logger.LogLevel
}

// NewConfigFromFile - reads config from the JSON file at configFilePath,
// through the same storage layer the rest of the library reads with.
// A .env file in the working directory is loaded first so env var overrides
// can be kept alongside the config file.
func NewConfigFromFile(configFilePath string) (Config, error) {
	var cfg Config

	// Not having a .env is fine
	godotenv.Load()

	fs := &fileaccess.FSAccess{}
	err := fs.ReadJSON(filepath.Dir(configFilePath), filepath.Base(configFilePath), &cfg, false)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file at %s: %v", configFilePath, err)
	}
	return buildConfig(cfg)
}

// NewConfigFromJsonString - reads config from a JSON string, env var
// overrides still apply
func NewConfigFromJsonString(configJson string) (Config, error) {
	var cfg Config

	godotenv.Load()

	if err := json.Unmarshal([]byte(configJson), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %v", err)
	}
	return buildConfig(cfg)
}

func buildConfig(cfg Config) (Config, error) {
	// Override Config with any values explicitly set in Env Vars (IUVS_CONFIG_*)
	// Ex: export IUVS_CONFIG_EnvironmentName="stage"
	reflection := reflect.ValueOf(&cfg).Elem()
	for i := 0; i < reflection.NumField(); i++ {
		fieldName := reflection.Type().Field(i).Name
		field := reflection.Field(i)
		if val, present := os.LookupEnv(fmt.Sprintf("IUVS_CONFIG_%s", fieldName)); present {
			switch field.Kind() {
			case reflect.String:
				field.SetString(val)
			case reflect.Int, reflect.Int32:
				i, err := strconv.Atoi(val)
				if err != nil {
					fmt.Printf("Could not cast value IUVS_CONFIG_%s=%s to Int", fieldName, val)
					continue
				}
				field.SetInt(int64(i))
			}
		}
	}

	applyDefaults(&cfg)

	if cfg.EnvironmentName != datafiles.EnvProduction && cfg.EnvironmentName != datafiles.EnvStage {
		return cfg, fmt.Errorf("invalid EnvironmentName \"%v\"", cfg.EnvironmentName)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.EnvironmentName == "" {
		cfg.EnvironmentName = datafiles.EnvProduction
	}
	if cfg.AncPath == "" && cfg.DataRoot != "" {
		cfg.AncPath = filepath.Join(cfg.DataRoot, "anc")
	}
	if cfg.SpicePath == "" && cfg.DataRoot != "" {
		cfg.SpicePath = filepath.Join(cfg.DataRoot, "spice")
	}
}
