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

// Discovery of IUVS data product files under the fixed archive layout:
//
//	<root>/iuvs-data/{production|stage}/orbit<block>/orbit<orbit>/<files>
//
// The root can be a local directory or an S3 bucket, via fileaccess.
package datafiles

import (
	"path"

	"github.com/maven-iuvs/core/core/orbit"
)

// DataDirName - top level directory holding data products under the archive root
const DataDirName = "iuvs-data"

// The two pipeline environments the archive carries
const (
	EnvProduction = "production"
	EnvStage      = "stage"
)

// BlockDirectory - archive-relative directory holding all orbits of the block
// containing the given orbit, eg "iuvs-data/production/orbit03400"
func BlockDirectory(env string, o orbit.Orbit) string {
	return path.Join(DataDirName, env, o.BlockCode())
}

// OrbitDirectory - archive-relative directory holding one orbit's products,
// eg "iuvs-data/production/orbit03400/orbit03453"
func OrbitDirectory(env string, o orbit.Orbit) string {
	return path.Join(DataDirName, env, o.BlockCode(), o.Code())
}
