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

package l1b

import (
	"reflect"
	"testing"

	"github.com/maven-iuvs/core/core/fileaccess"
	"github.com/maven-iuvs/core/core/logger"
)

func TestSwathNumbers(t *testing.T) {
	cases := []struct {
		name string
		fov  []float64
		want []int
	}{
		{"empty", []float64{}, []int{}},
		{"single swath", []float64{10, 20, 30}, []int{0, 0, 0}},
		{"reset starts new swath", []float64{10, 20, 30, 5, 15, 25}, []int{0, 0, 0, 1, 1, 1}},
		{"three swaths", []float64{10, 20, 5, 15, 2, 12}, []int{0, 0, 1, 1, 2, 2}},
		{"flat angle stays in swath", []float64{10, 10, 20}, []int{0, 0, 0}},
	}

	for _, c := range cases {
		got := SwathNumbers(c.fov)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%v: got %v; want %v", c.name, got, c.want)
		}
	}
}

func TestIsDayside(t *testing.T) {
	day := &File{Observation: Observation{MCPVolt: 560}}
	if !day.IsDayside() {
		t.Errorf("560V observation not reported as dayside")
	}

	night := &File{Observation: Observation{MCPVolt: 850}}
	if night.IsDayside() {
		t.Errorf("850V observation reported as dayside")
	}

	// The boundary itself is nightside
	boundary := &File{Observation: Observation{MCPVolt: 790}}
	if boundary.IsDayside() {
		t.Errorf("790V observation reported as dayside")
	}
}

func TestFieldsOfView(t *testing.T) {
	f := &File{Integrations: []Integration{{FieldOfView: 10}, {FieldOfView: 20}}}
	if got := f.FieldsOfView(); !reflect.DeepEqual(got, []float64{10, 20}) {
		t.Errorf("got %v; want [10 20]", got)
	}
}

func TestReadMissingFile(t *testing.T) {
	mem := fileaccess.MakeMemFileAccess()
	_, err := Read(mem, "archive", "orbit03400/missing.fits")
	if err == nil {
		t.Errorf("reading a missing product: got nil error")
	}
}

func TestReadGarbage(t *testing.T) {
	mem := fileaccess.MakeMemFileAccess()
	mem.AddObject("archive", "orbit03400/garbage.fits", []byte("not a FITS file"))

	_, err := Read(mem, "archive", "orbit03400/garbage.fits")
	if err == nil {
		t.Errorf("reading garbage bytes: got nil error")
	}
}

func TestReadFilesFirstErrorWins(t *testing.T) {
	mem := fileaccess.MakeMemFileAccess()

	_, err := ReadFiles(mem, "archive", []string{"a.fits", "b.fits"}, &logger.NullLogger{})
	if err == nil {
		t.Errorf("reading missing products in parallel: got nil error")
	}
}

func TestReadFilesEmpty(t *testing.T) {
	mem := fileaccess.MakeMemFileAccess()

	files, err := ReadFiles(mem, "archive", []string{}, &logger.NullLogger{})
	if err != nil {
		t.Errorf("got error %v; want nil", err)
	}
	if len(files) != 0 {
		t.Errorf("got %v files; want 0", len(files))
	}
}
