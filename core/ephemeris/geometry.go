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
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/spatial/r3"
)

// AstronomicalUnitKm - km per AU
const AstronomicalUnitKm = 149597870.7

// Obliquity of the ecliptic at J2000, degrees
const obliquityJ2000 = 23.4392911

// IAU rotation model for Mars. Right ascension and declination of the north
// pole (degrees, T in Julian centuries past J2000) and the prime meridian
// angle W (degrees, d in days past J2000).
const (
	marsPoleRA0       = 317.68143
	marsPoleRARate    = -0.1061
	marsPoleDec0      = 52.88650
	marsPoleDecRate   = -0.0609
	marsMeridian0     = 176.630
	marsMeridianRate  = 350.89198226
	julianCenturyDays = 36525
)

// MarsSunDistance - distance from Mars to the Sun at t, in km
func (p *Pool) MarsSunDistance(t time.Time) (float64, error) {
	if !p.Furnished() {
		return 0, CoverageError{Query: "MarsSunDistance"}
	}
	_, _, r := p.mars.Position2000(julianDay(t))
	return r * AstronomicalUnitKm, nil
}

// SolarLongitude - Mars solar longitude Ls at t, degrees in [0, 360).
// Ls is the angle from the Mars northern spring equinox to the current Sun
// direction, measured along the orbit: 0 at northern spring equinox, 90 at
// northern summer solstice.
func (p *Pool) SolarLongitude(t time.Time) (float64, error) {
	if !p.Furnished() {
		return 0, CoverageError{Query: "SolarLongitude"}
	}
	jde := julianDay(t)
	pos := p.positionEq(jde)

	// Orbit normal from a central-difference velocity over one day
	vel := r3.Sub(p.positionEq(jde+0.5), p.positionEq(jde-0.5))
	h := r3.Unit(r3.Cross(pos, vel))

	k := marsPole(jde)
	sun := r3.Unit(r3.Scale(-1, pos))
	return solarLongitude(h, k, sun), nil
}

// SubSolarPoint - planetocentric latitude and east longitude of the
// sub-solar point on Mars at t, degrees. Longitude is in [0, 360).
func (p *Pool) SubSolarPoint(t time.Time) (lat float64, lon float64, err error) {
	if !p.Furnished() {
		return 0, 0, CoverageError{Query: "SubSolarPoint"}
	}
	jde := julianDay(t)
	sun := r3.Unit(r3.Scale(-1, p.positionEq(jde)))
	lat, lon = latLon(sun, jde)
	return lat, lon, nil
}

// positionEq - heliocentric Mars position in the J2000 equatorial frame, AU
func (p *Pool) positionEq(jde float64) r3.Vec {
	lng, blat, r := p.mars.Position2000(jde)
	l := lng.Rad()
	b := blat.Rad()
	ecl := r3.Vec{
		X: r * math.Cos(b) * math.Cos(l),
		Y: r * math.Cos(b) * math.Sin(l),
		Z: r * math.Sin(b),
	}
	return eclipticToEquatorial(ecl)
}

func eclipticToEquatorial(v r3.Vec) r3.Vec {
	sinE, cosE := math.Sincos(obliquityJ2000 * math.Pi / 180)
	return r3.Vec{
		X: v.X,
		Y: v.Y*cosE - v.Z*sinE,
		Z: v.Y*sinE + v.Z*cosE,
	}
}

// marsPoleAngles - right ascension and declination of the Mars north pole at
// jde, radians
func marsPoleAngles(jde float64) (ra float64, dec float64) {
	tc := (jde - base.J2000) / julianCenturyDays
	ra = (marsPoleRA0 + marsPoleRARate*tc) * math.Pi / 180
	dec = (marsPoleDec0 + marsPoleDecRate*tc) * math.Pi / 180
	return ra, dec
}

// marsPole - unit vector along the Mars north pole in the J2000 equatorial
// frame
func marsPole(jde float64) r3.Vec {
	ra, dec := marsPoleAngles(jde)
	return r3.Vec{
		X: math.Cos(dec) * math.Cos(ra),
		Y: math.Cos(dec) * math.Sin(ra),
		Z: math.Sin(dec),
	}
}

// solarLongitude - Ls in degrees from the orbit normal h, pole k and unit
// Sun direction, all in the same inertial frame. The northern spring equinox
// direction is k cross h: the Sun crosses the equator northward there.
func solarLongitude(h, k, sun r3.Vec) float64 {
	e := r3.Unit(r3.Cross(k, h))
	sinLs := r3.Dot(r3.Cross(e, sun), h)
	cosLs := r3.Dot(e, sun)
	return unit.PMod(math.Atan2(sinLs, cosLs)*180/math.Pi, 360)
}

// latLon - planetocentric latitude and east longitude (degrees) of the unit
// direction dir in the Mars body-fixed frame at jde
func latLon(dir r3.Vec, jde float64) (lat float64, lon float64) {
	ra, _ := marsPoleAngles(jde)
	k := marsPole(jde)
	// Node of the Mars equator on the J2000 equator, 90 degrees ahead of
	// the pole's right ascension
	node := r3.Vec{X: -math.Sin(ra), Y: math.Cos(ra), Z: 0}

	d := jde - base.J2000
	w := unit.PMod(marsMeridian0+marsMeridianRate*d, 360) * math.Pi / 180
	sinW, cosW := math.Sin(w), math.Cos(w)

	// Prime meridian direction: node rotated by W about the pole. W grows
	// with time, so longitudes measured from it increase eastward.
	xb := r3.Add(r3.Scale(cosW, node), r3.Scale(sinW, r3.Cross(k, node)))
	yb := r3.Cross(k, xb)

	sinLat := r3.Dot(dir, k)
	if sinLat > 1 {
		sinLat = 1
	} else if sinLat < -1 {
		sinLat = -1
	}
	lat = math.Asin(sinLat) * 180 / math.Pi
	lon = unit.PMod(math.Atan2(r3.Dot(dir, yb), r3.Dot(dir, xb))*180/math.Pi, 360)
	return lat, lon
}
