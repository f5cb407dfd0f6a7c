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

// Logging for archive scans and product loads. Discovery and the parallel
// l1b reader take an ILogger so library users control where per-file noise
// (skipped names, read progress) ends up.
package logger

// LogLevel - log level type
type LogLevel int

const (

	// LogDebug - DEBUG log level, per-file read progress
	LogDebug LogLevel = iota

	// LogInfo - INFO log level, eg names skipped during a scan
	LogInfo LogLevel = iota

	// LogError - ERROR log level (does not call os.Exit!)
	LogError LogLevel = iota
)

var logLevelPrefix = map[LogLevel]string{
	LogDebug: "DEBUG",
	LogInfo:  "INFO",
	LogError: "ERROR",
}

// ILogger - Generic logger interface
type ILogger interface {
	Printf(level LogLevel, format string, a ...interface{})
	Debugf(format string, a ...interface{})
	Infof(format string, a ...interface{})
	Errorf(format string, a ...interface{})
}

// GetLogLevelName - name of a log level, eg for printing in a config dump
func GetLogLevelName(level LogLevel) string {
	if name, ok := logLevelPrefix[level]; ok {
		return name
	}
	return "UNKNOWN"
}
