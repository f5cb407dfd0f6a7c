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

// Loaders for the standard ancillary arrays used when working with IUVS data:
// surface/magnetic field maps, MUV spectral templates and instrument curves.
//
// The ancillary tree is distributed out-of-band (it is too big for version
// control) and has to be placed by the user. Fixed layout under the anc root:
//
//	maps/        lat/lon gridded maps
//	templates/   1024-element MUV spectral templates
//	instruments/ flatfield, sensitivity and voltage correction curves
package anc

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sbinet/npyio"

	"github.com/maven-iuvs/core/core/fileaccess"
)

// Array - an ancillary array: numpy shape plus flattened float64 data in
// row-major order
type Array struct {
	Shape []int
	Data  []float64
}

// Len - total element count
func (a Array) Len() int {
	return len(a.Data)
}

// Column - one column of a 2D array, eg wavelengths out of an (N, 2) curve
func (a Array) Column(col int) ([]float64, error) {
	if len(a.Shape) != 2 {
		return nil, fmt.Errorf("Column needs a 2D array, shape is %v", a.Shape)
	}
	cols := a.Shape[1]
	if col < 0 || col >= cols {
		return nil, fmt.Errorf("column %v out of range, array has %v columns", col, cols)
	}

	result := make([]float64, a.Shape[0])
	for row := range result {
		result[row] = a.Data[row*cols+col]
	}
	return result, nil
}

// Reader - loads ancillary arrays from a fixed layout under ancRoot
type Reader struct {
	fs      fileaccess.FileAccess
	ancRoot string
}

func MakeReader(fs fileaccess.FileAccess, ancRoot string) Reader {
	return Reader{fs: fs, ancRoot: ancRoot}
}

// Maps. Shapes: mars surface (1800, 3600, 4) RGBA, field line probability
// maps (180, 360). Zeroth axis latitude -90..90, first axis east longitude
// 0..360.

func (r Reader) LoadMapMarsSurface() (Array, error) {
	return r.loadNpy("maps/mars_surface.npy")
}

func (r Reader) LoadMapMagneticFieldClosedProbability() (Array, error) {
	return r.loadNpy("maps/magnetic_field_closed_probability.npy")
}

func (r Reader) LoadMapMagneticFieldOpenProbability() (Array, error) {
	return r.loadNpy("maps/magnetic_field_open_probability.npy")
}

// MUV spectral templates, 1024 elements each, uncalibrated DNs

func (r Reader) LoadTemplateCOCameron() (Array, error) {
	return r.loadNpy("templates/co_cameron_bands.npy")
}

func (r Reader) LoadTemplateCOPlus1stNegative() (Array, error) {
	return r.loadNpy("templates/co+_first_negative.npy")
}

func (r Reader) LoadTemplateCO2PlusFDB() (Array, error) {
	return r.loadNpy("templates/co2+_fox_duffendack_barker.npy")
}

func (r Reader) LoadTemplateCO2PlusUVD() (Array, error) {
	return r.loadNpy("templates/co2+_ultraviolet_doublet.npy")
}

func (r Reader) LoadTemplateN2VK() (Array, error) {
	return r.loadNpy("templates/nitrogen_vegard_kaplan.npy")
}

func (r Reader) LoadTemplateNONightglow() (Array, error) {
	return r.loadNpy("templates/no_nightglow.npy")
}

func (r Reader) LoadTemplateOxygen2972() (Array, error) {
	return r.loadNpy("templates/oxygen_2972.npy")
}

func (r Reader) LoadTemplateSolarContinuum() (Array, error) {
	return r.loadNpy("templates/solar_continuum.npy")
}

// Instrument curves

func (r Reader) LoadMUVFlatfield() (Array, error) {
	return r.loadNpy("instruments/muv_flatfield.npy")
}

// LoadMUVSensitivityCurveObservational - (N, 2) array of wavelength [nm] vs
// sensitivity [DN/kR], derived from observations
func (r Reader) LoadMUVSensitivityCurveObservational() (Array, error) {
	return r.loadNpy("instruments/muv_sensitivity_curve_observational.npy")
}

func (r Reader) LoadVoltageCorrectionVoltage() (Array, error) {
	return r.loadNpy("instruments/voltage_correction_voltage.npy")
}

func (r Reader) LoadVoltageCorrectionCoefficients() (Array, error) {
	return r.loadNpy("instruments/voltage_correction_coefficients.npy")
}

// TemplateWavelengths - the wavelength centers [nm] the MUV templates are
// sampled at. Computed, not stored on disk.
func TemplateWavelengths() []float64 {
	const n = 1024
	const lo = 174.00487653
	const hi = 341.44029638

	result := make([]float64, n)
	for i := range result {
		result[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return result
}

func (r Reader) loadNpy(ancPath string) (Array, error) {
	fileData, err := r.fs.ReadObject(r.ancRoot, ancPath)
	if err != nil {
		if r.fs.IsNotFoundError(err) {
			return Array{}, errors.Wrapf(err, "ancillary file \"%v\" not found under \"%v\", has the anc directory been installed?", ancPath, r.ancRoot)
		}
		return Array{}, err
	}

	npy, err := npyio.NewReader(bytes.NewReader(fileData))
	if err != nil {
		return Array{}, errors.Wrapf(err, "failed to read ancillary file \"%v\"", ancPath)
	}

	result := Array{Shape: npy.Header.Descr.Shape}
	if err = npy.Read(&result.Data); err != nil {
		return Array{}, errors.Wrapf(err, "failed to read ancillary file \"%v\"", ancPath)
	}

	return result, nil
}
