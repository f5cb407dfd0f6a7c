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

// Geometry queries (sub-solar point, solar longitude, Mars-Sun distance)
// against planetary ephemeris kernels stored under <root>/spice/.
//
// Kernels here are VSOP87 planetary theory files read by the meeus library.
// Unlike the classic toolkit-style process-wide kernel pool, the furnished
// kernels live in an explicit Pool handle owned by the caller: furnish once,
// query as often as needed, Clear when done. A Pool is safe for concurrent
// queries but Furnish/Clear must not race with queries.
package ephemeris

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/soniakeys/meeus/v3/planetposition"
)

// KernelDirName - directory holding ephemeris kernels under an archive root
const KernelDirName = "spice"

// CoverageError - a geometry query was made without the required kernel
// coverage (empty or cleared pool)
type CoverageError struct {
	Query string
}

func (e CoverageError) Error() string {
	return fmt.Sprintf("no ephemeris coverage for %v: no kernels furnished", e.Query)
}

// Pool - the set of furnished ephemeris kernels
type Pool struct {
	mars *planetposition.V87Planet
}

// Furnish - load the Mars planetary theory from kernelDir (the spice/
// directory itself, not the archive root). The returned Pool is ready for
// geometry queries.
func Furnish(kernelDir string) (*Pool, error) {
	mars, err := planetposition.LoadPlanetPath(planetposition.Mars, kernelDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to furnish Mars ephemeris kernel from \"%v\"", kernelDir)
	}
	return &Pool{mars: mars}, nil
}

// Clear - drop all furnished kernels. Queries after this fail with
// CoverageError until a new pool is furnished.
func (p *Pool) Clear() {
	p.mars = nil
}

// Furnished - whether the pool currently holds kernels
func (p *Pool) Furnished() bool {
	return p != nil && p.mars != nil
}
