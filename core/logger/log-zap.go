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

package logger

import (
	"go.uber.org/zap"
)

// ZapLogger - structured logging via uber zap, for long-running pipeline runs
// where plain line logs are too hard to search through
type ZapLogger struct {
	log      *zap.SugaredLogger
	logLevel LogLevel
}

func MakeZapLogger() (*ZapLogger, error) {
	z, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{log: z.Sugar()}, nil
}

func (l *ZapLogger) Printf(level LogLevel, format string, a ...interface{}) {
	if level < l.logLevel {
		return
	}
	switch level {
	case LogDebug:
		l.log.Debugf(format, a...)
	case LogError:
		l.log.Errorf(format, a...)
	default:
		l.log.Infof(format, a...)
	}
}
func (l *ZapLogger) Debugf(format string, a ...interface{}) {
	l.Printf(LogDebug, format, a...)
}
func (l *ZapLogger) Infof(format string, a ...interface{}) {
	l.Printf(LogInfo, format, a...)
}
func (l *ZapLogger) Errorf(format string, a ...interface{}) {
	l.Printf(LogError, format, a...)
}

func (l *ZapLogger) SetLogLevel(level LogLevel) {
	l.logLevel = level
}

// Close - flushes any buffered log entries
func (l *ZapLogger) Close() error {
	return l.log.Sync()
}
