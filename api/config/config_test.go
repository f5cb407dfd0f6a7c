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

package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

// Check config is read from a JSON file and defaults are filled in
func Test_InitializeConfigWithFile(t *testing.T) {
	cfg, err := NewConfigFromFile("./example_config.json")
	if err != nil {
		t.Fatalf("Error initializing config: %v", err)
	}
	if cfg.DataRoot != "/data/maven" {
		t.Errorf("cfg.DataRoot got %q; want: %q", cfg.DataRoot, "/data/maven")
	}
	if want := filepath.Join("/data/maven", "anc"); cfg.AncPath != want {
		t.Errorf("cfg.AncPath got %q; want: %q", cfg.AncPath, want)
	}
	if want := filepath.Join("/data/maven", "spice"); cfg.SpicePath != want {
		t.Errorf("cfg.SpicePath got %q; want: %q", cfg.SpicePath, want)
	}
}

// Check config is read from a JSON string
func Test_InitializeConfigWithJsonString(t *testing.T) {
	want := "stage"
	configStr := fmt.Sprintf(`{"DataRoot": "/data/maven", "EnvironmentName": "%s"}`, want)
	cfg, err := NewConfigFromJsonString(configStr)
	if err != nil {
		t.Fatalf("Error initializing config: %v", err)
	}
	if cfg.EnvironmentName != want {
		t.Errorf("cfg.EnvironmentName got %q; want: %q", cfg.EnvironmentName, want)
	}
}

// Check that the config can be overridden with Environment Variables
func Test_OverrideConfigWithEnvVars(t *testing.T) {
	want := "ENV-SET-DataBucket"
	t.Setenv("IUVS_CONFIG_DataBucket", want)
	cfg, err := NewConfigFromFile("./example_config.json")
	if err != nil {
		t.Fatalf("Error initializing config: %v", err)
	}
	if cfg.DataBucket != want {
		t.Errorf("cfg.DataBucket got %q; want: %q", cfg.DataBucket, want)
	}
}

// Check that a missing config file reports the path
func Test_MissingConfigFile(t *testing.T) {
	_, err := NewConfigFromFile("./no_such_config.json")
	if err == nil {
		t.Fatalf("expected error for missing config file; got nil")
	}
	if !strings.Contains(err.Error(), "no_such_config.json") {
		t.Errorf("error %q doesn't name the missing file", err.Error())
	}
}

// Check that an unknown environment name is rejected
func Test_RejectBadEnvironmentName(t *testing.T) {
	_, err := NewConfigFromJsonString(`{"DataRoot": "/data/maven", "EnvironmentName": "qa"}`)
	if err == nil {
		t.Errorf("expected error for EnvironmentName \"qa\"; got nil")
	}
}
