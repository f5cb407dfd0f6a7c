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

package ephemeris

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
)

const secondsPerDay = 86400

// EphemerisTime - seconds past the J2000 epoch for t. This is the time tag
// carried in l1b integration records.
func EphemerisTime(t time.Time) float64 {
	return (julian.TimeToJD(t.UTC()) - base.J2000) * secondsPerDay
}

// TimeFromEphemerisTime - inverse of EphemerisTime, returns UTC
func TimeFromEphemerisTime(et float64) time.Time {
	return julian.JDToTime(base.J2000 + et/secondsPerDay).UTC()
}

// julianDay - the Julian day number queries run on. Queries accept UTC and
// ignore the ~minute offset to dynamical time, which is far below the
// accuracy of the planetary theory for these angles.
func julianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}
