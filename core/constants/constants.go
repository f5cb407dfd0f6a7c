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

// Instrument constants for IUVS. Most values come from the IUVS instrument
// paper (doi:10.1007/s11214-014-0098-7), table 3 unless noted.
package constants

import "math"

// SpatialSlitThickness - thickness of the slit [mm]
const SpatialSlitThickness = 0.1

// SpatialSlitLength - length of the slit [mm]
const SpatialSlitLength = 19.8

// TelescopeFocalLength - focal length of the IUVS telescope mirror [mm].
// The paper only quotes 100mm to 1 significant figure, this is the value
// the ray tracing code uses.
const TelescopeFocalLength = 99.5

// AngularSlitWidth - width of the slit [degrees]
const AngularSlitWidth = SpatialSlitLength / TelescopeFocalLength * 180 / math.Pi

// PixelLength - length of an IUVS detector pixel [mm], detector length over 1024 pixels
const PixelLength = 22.0 / 1024.0

// PixelAngularSize - angular size of a detector pixel [sr]
const PixelAngularSize = PixelLength / TelescopeFocalLength * SpatialSlitThickness / TelescopeFocalLength

// MinimumMirrorAngle - minimum angle [degrees] the scan mirror can obtain
const MinimumMirrorAngle = 30.2508544921875

// MaximumMirrorAngle - maximum angle [degrees] the scan mirror can obtain
const MaximumMirrorAngle = 59.6502685546875

// DayNightVoltageBoundary - MCP voltage defining the boundary between dayside
// and nightside detector settings
const DayNightVoltageBoundary = 790
