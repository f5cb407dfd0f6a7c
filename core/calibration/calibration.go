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

// Detector gain correction and sensitivity ("calibration") curves for MUV
// observations, built from the instrument curves in the ancillary tree.
package calibration

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/maven-iuvs/core/core/anc"
	"github.com/maven-iuvs/core/core/constants"
)

// ReferenceMCPGain - the MCP gain the voltage correction coefficients were fit at
const ReferenceMCPGain = 50.909455

// VoltageCorrection - the MCP voltage correction lookup: for each tabulated
// voltage, the (a, b) fit coefficients
type VoltageCorrection struct {
	Voltage []float64
	A       []float64
	B       []float64
}

// LoadVoltageCorrection - read the voltage correction tables from the
// ancillary tree
func LoadVoltageCorrection(r anc.Reader) (VoltageCorrection, error) {
	voltage, err := r.LoadVoltageCorrectionVoltage()
	if err != nil {
		return VoltageCorrection{}, err
	}
	coefficients, err := r.LoadVoltageCorrectionCoefficients()
	if err != nil {
		return VoltageCorrection{}, err
	}

	a, err := coefficients.Column(0)
	if err != nil {
		return VoltageCorrection{}, err
	}
	b, err := coefficients.Column(1)
	if err != nil {
		return VoltageCorrection{}, err
	}

	if len(voltage.Data) != len(a) {
		return VoltageCorrection{}, fmt.Errorf("voltage table length %v does not match coefficient rows %v", len(voltage.Data), len(a))
	}

	return VoltageCorrection{Voltage: voltage.Data, A: a, B: b}, nil
}

// GainCorrection - estimated DN of a dark-subtracted observation corrected
// for the MCP voltage gain. The input slice is not modified.
func GainCorrection(detectorDarkSubtracted []float64, spatialBinSize int, spectralBinSize int, integrationTime float64, mcpVolt float64, mcpGain float64, vc VoltageCorrection) ([]float64, error) {
	a, err := interpolate(vc.Voltage, vc.A, mcpVolt)
	if err != nil {
		return nil, err
	}
	b, err := interpolate(vc.Voltage, vc.B, mcpVolt)
	if err != nil {
		return nil, err
	}

	binScale := float64(spatialBinSize) * float64(spectralBinSize) * integrationTime

	result := make([]float64, len(detectorDarkSubtracted))
	for i, dn := range detectorDarkSubtracted {
		normalized := dn / binScale
		corrected := math.Exp(a + b*math.Log(normalized))
		result[i] = corrected / normalized * mcpGain / ReferenceMCPGain
	}
	return result, nil
}

// CalibrationCurve - the sensitivity curve [DN/kR] for a set of observation
// parameters, rebinned onto the given bin center wavelengths.
//
// This uses wavelength as a proxy for where a bin falls on the detector, bin
// edges would be a better metric in the future.
func CalibrationCurve(wavelengthCenter []float64, mcpGain float64, integrationTime float64, spatialBinSize float64, sensitivityCurve anc.Array) ([]float64, error) {
	wavelengths, err := sensitivityCurve.Column(0)
	if err != nil {
		return nil, err
	}
	sensitivities, err := sensitivityCurve.Column(1)
	if err != nil {
		return nil, err
	}

	factor := 4 * math.Pi * 1e-9 / mcpGain / constants.PixelAngularSize / integrationTime / spatialBinSize

	result := make([]float64, len(wavelengthCenter))
	for i, wavelength := range wavelengthCenter {
		rebinned, err := interpolate(wavelengths, sensitivities, wavelength)
		if err != nil {
			return nil, err
		}
		result[i] = rebinned * factor
	}
	return result, nil
}

// Linear interpolation with endpoint clamping, matching how the Python data
// pipeline rebins these curves
func interpolate(xs []float64, ys []float64, x float64) (float64, error) {
	if len(xs) < 2 {
		return 0, fmt.Errorf("need at least 2 samples to interpolate, got %v", len(xs))
	}

	if x <= xs[0] {
		return ys[0], nil
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1], nil
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return 0, err
	}
	return pl.Predict(x), nil
}
