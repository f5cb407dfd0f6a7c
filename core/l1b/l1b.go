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

// Reading IUVS level-1b FITS products: the observation and integration
// tables needed for calibration and image reconstruction.
package l1b

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"

	"github.com/astrogo/fitsio"
	"github.com/maven-iuvs/core/core/constants"
	"github.com/maven-iuvs/core/core/fileaccess"
	"github.com/pkg/errors"
)

// Observation - per-file instrument settings from the observation table.
// The table has one row; we keep that row.
type Observation struct {
	IntegrationTime float64 `fits:"INT_TIME"`
	MCPVolt         float64 `fits:"MCP_VOLT"`
	MCPGain         float64 `fits:"MCP_GAIN"`
}

// Integration - one row of the integration table
type Integration struct {
	EphemerisTime float64 `fits:"ET"`
	FieldOfView   float64 `fits:"FOV_DEG"`
}

// File - the tables read from one l1b product
type File struct {
	Path         string
	Observation  Observation
	Integrations []Integration
}

// IsDayside - dayside products run the detector below the day/night voltage
// boundary
func (f *File) IsDayside() bool {
	return f.Observation.MCPVolt < constants.DayNightVoltageBoundary
}

// FieldsOfView - the mirror field of view of each integration, in order
func (f *File) FieldsOfView() []float64 {
	fovs := make([]float64, len(f.Integrations))
	for i, integ := range f.Integrations {
		fovs[i] = integ.FieldOfView
	}
	return fovs
}

// SwathNumbers - assigns each integration to a swath. The scan mirror sweeps
// the field of view upward through a swath and snaps back down to start the
// next one, so a decrease between consecutive integrations starts a new
// swath. Swaths are numbered from 0.
func SwathNumbers(fieldOfView []float64) []int {
	swaths := make([]int, len(fieldOfView))
	swath := 0
	for i := range fieldOfView {
		if i > 0 && fieldOfView[i] < fieldOfView[i-1] {
			swath++
		}
		swaths[i] = swath
	}
	return swaths
}

// Read - reads one l1b product (.fits or .fits.gz) through the given storage
// layer
func Read(fs fileaccess.FileAccess, root string, filePath string) (*File, error) {
	data, err := fs.ReadObject(root, filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read l1b product \"%v\"", filePath)
	}

	if strings.HasSuffix(filePath, ".gz") {
		data, err = gunzip(data)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decompress l1b product \"%v\"", filePath)
		}
	}

	fits, err := fitsio.Open(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open l1b product \"%v\"", filePath)
	}
	defer fits.Close()

	result := &File{Path: filePath}

	obsRows, err := readTable(fits, "observation", func() interface{} { return &Observation{} })
	if err != nil {
		return nil, errors.Wrapf(err, "l1b product \"%v\"", filePath)
	}
	if len(obsRows) < 1 {
		return nil, errors.Errorf("l1b product \"%v\": observation table is empty", filePath)
	}
	result.Observation = *obsRows[0].(*Observation)

	integRows, err := readTable(fits, "integration", func() interface{} { return &Integration{} })
	if err != nil {
		return nil, errors.Wrapf(err, "l1b product \"%v\"", filePath)
	}
	result.Integrations = make([]Integration, len(integRows))
	for i, row := range integRows {
		result.Integrations[i] = *row.(*Integration)
	}

	return result, nil
}

func gunzip(data []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gz.Close()
	return io.ReadAll(gz)
}

// readTable - reads all rows of the named binary table into fresh records
// from makeRec. HDU names are matched case-insensitively, the products ship
// with uppercase extension names.
func readTable(fits *fitsio.File, name string, makeRec func() interface{}) ([]interface{}, error) {
	var table *fitsio.Table
	for _, hdu := range fits.HDUs() {
		t, ok := hdu.(*fitsio.Table)
		if ok && strings.EqualFold(t.Name(), name) {
			table = t
			break
		}
	}
	if table == nil {
		return nil, errors.Errorf("no \"%v\" table found", name)
	}

	rows, err := table.Read(0, table.NumRows())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read \"%v\" table", name)
	}
	defer rows.Close()

	result := []interface{}{}
	for rows.Next() {
		rec := makeRec()
		if err := rows.Scan(rec); err != nil {
			return nil, errors.Wrapf(err, "failed to scan \"%v\" table row %v", name, len(result))
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed reading \"%v\" table", name)
	}
	return result, nil
}
