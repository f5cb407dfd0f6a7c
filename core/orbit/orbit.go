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

// MAVEN orbit numbers and the directory sharding scheme built on them.
// Orbits are grouped into fixed-size blocks, eg with block size 100 orbit
// 3453 lives under the orbit03400 block directory.
package orbit

import "fmt"

// DefaultBlockSize - how many consecutive orbits share one block directory.
// This has been 100 for the whole mission so far but is not guaranteed by
// any interface document, so it's a parameter rather than baked in.
const DefaultBlockSize = 100

// Orbit - one numbered MAVEN orbit. Immutable value type.
type Orbit struct {
	number    int
	blockSize int
}

// MakeOrbit - orbit with the standard block size
func MakeOrbit(number int) Orbit {
	return MakeOrbitWithBlockSize(number, DefaultBlockSize)
}

// MakeOrbitWithBlockSize - orbit with a caller-chosen block size
func MakeOrbitWithBlockSize(number int, blockSize int) Orbit {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return Orbit{number: number, blockSize: blockSize}
}

// Number - the orbit number
func (o Orbit) Number() int {
	return o.number
}

// Code - the zero-padded orbit code used in file names and directories, eg "orbit03453"
func (o Orbit) Code() string {
	return fmt.Sprintf("orbit%05d", o.number)
}

// Block - first orbit number of the block containing this orbit, eg 3400 for orbit 3453
func (o Orbit) Block() int {
	return o.number / o.blockSize * o.blockSize
}

// BlockCode - the block directory name, eg "orbit03400"
func (o Orbit) BlockCode() string {
	return fmt.Sprintf("orbit%05d", o.Block())
}
