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

// File name parser and pattern writer for the strict IUVS data product naming
// convention, eg:
//
//	mvn_iuv_l1b_apoapse-orbit03453-muv_20160708T044652_v13_r01.fits.gz
//
// Fields are underscore separated in a fixed order: spacecraft, instrument,
// level, observation description (segment-orbitNNNNN-channel, where the
// segment itself may contain hyphens, eg relay-echelle), timestamp, version
// and revision. The extension is everything after the first dot.
package iuvsfilename

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const timestampLayout = "20060102T150405"

// FormatError - the name does not follow the IUVS filename convention
type FormatError struct {
	Name   string
	Reason string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("\"%v\" is not an IUVS data filename: %v", e.Name, e.Reason)
}

// DataFilename - all metadata parsed out of one IUVS data product filename.
// Immutable once constructed by ParseFileName.
type DataFilename struct {
	Spacecraft string // mvn
	Instrument string // iuv
	Level      string // eg l1b
	Segment    string // apoapse, periapse, inlimb, outlimb, relay-echelle...
	Orbit      int
	Channel    string // muv, fuv, ech
	Timestamp  string // eg 20160708T044652
	Time       time.Time

	Version        int  // from vNN
	RevisionLetter byte // eg 'r' in r01
	Revision       int  // eg 1 in r01

	Extension string // eg fits.gz

	name string
}

// Filename - the name this was parsed from (without any leading directories)
func (d DataFilename) Filename() string {
	return d.name
}

// GroupKey - every field EXCEPT version/revision concatenated. Files sharing
// a group key are the same observation at different pipeline versions, which
// is what latest/outdated selection compares within.
func (d DataFilename) GroupKey() string {
	return strings.Join([]string{
		d.Spacecraft, d.Instrument, d.Level, d.Segment,
		strconv.Itoa(d.Orbit), d.Channel, d.Timestamp, d.Extension,
	}, "|")
}

// NewerThan - the explicit version ordering: higher version wins, then higher
// revision letter, then higher revision number. Comparisons are on the parsed
// numbers so v9 < v10 comes out right.
func (d DataFilename) NewerThan(other DataFilename) bool {
	if d.Version != other.Version {
		return d.Version > other.Version
	}
	if d.RevisionLetter != other.RevisionLetter {
		return d.RevisionLetter > other.RevisionLetter
	}
	return d.Revision > other.Revision
}

// ParseFileName - parse an IUVS data product filename. Paths are accepted,
// only the base name is looked at.
func ParseFileName(fileName string) (DataFilename, error) {
	name := filepath.Base(fileName)
	result := DataFilename{name: name}

	dotIdx := strings.Index(name, ".")
	if dotIdx < 0 {
		return result, FormatError{name, "no extension"}
	}
	stem := name[0:dotIdx]
	result.Extension = name[dotIdx+1:]

	parts := strings.Split(stem, "_")
	if len(parts) != 7 {
		return result, FormatError{name, fmt.Sprintf("expected 7 underscore-separated fields, got %v", len(parts))}
	}

	result.Spacecraft = parts[0]
	result.Instrument = parts[1]
	result.Level = parts[2]

	if err := result.parseDescription(parts[3]); err != nil {
		return result, err
	}

	result.Timestamp = parts[4]
	t, err := time.Parse(timestampLayout, result.Timestamp)
	if err != nil {
		return result, FormatError{name, "bad timestamp: " + result.Timestamp}
	}
	result.Time = t

	if result.Version, err = parsePrefixedNumber(parts[5], "v"); err != nil {
		return result, FormatError{name, "bad version: " + parts[5]}
	}

	if len(parts[6]) < 2 || !isAlpha(parts[6][0]) {
		return result, FormatError{name, "bad revision: " + parts[6]}
	}
	result.RevisionLetter = parts[6][0]
	if result.Revision, err = parseDigits(parts[6][1:]); err != nil {
		return result, FormatError{name, "bad revision: " + parts[6]}
	}

	return result, nil
}

// The description field is segment-orbitNNNNN-channel, with possible hyphens
// inside the segment itself
func (d *DataFilename) parseDescription(description string) error {
	parts := strings.Split(description, "-")

	orbitIdx := -1
	for c, part := range parts {
		if strings.HasPrefix(part, "orbit") {
			orbitIdx = c
			break
		}
	}
	if orbitIdx < 1 || orbitIdx != len(parts)-2 {
		return FormatError{d.name, "bad observation description: " + description}
	}

	orbitNum, err := parseDigits(strings.TrimPrefix(parts[orbitIdx], "orbit"))
	if err != nil {
		return FormatError{d.name, "bad orbit number in: " + description}
	}

	d.Segment = strings.Join(parts[0:orbitIdx], "-")
	d.Orbit = orbitNum
	d.Channel = parts[orbitIdx+1]
	return nil
}

// MakePattern - glob pattern matching data files for the given fields. Empty
// segment/channel or orbit <= 0 wildcard that field, eg
// MakePattern("apoapse", 3453, "muv") gives "*apoapse*orbit03453*muv*.fits.gz".
func MakePattern(segment string, orbitNumber int, channel string) string {
	orbitPart := ""
	if orbitNumber > 0 {
		orbitPart = fmt.Sprintf("orbit%05d", orbitNumber)
	}

	pattern := "*" + segment + "*" + orbitPart + "*" + channel + "*.fits.gz"
	for strings.Contains(pattern, "**") {
		pattern = strings.ReplaceAll(pattern, "**", "*")
	}
	return pattern
}

func parsePrefixedNumber(field string, prefix string) (int, error) {
	if !strings.HasPrefix(field, prefix) {
		return 0, fmt.Errorf("missing %v prefix", prefix)
	}
	return parseDigits(field[len(prefix):])
}

// Strictly digits, so signs and spaces Atoi would take (eg in "v-13") fail
func parseDigits(field string) (int, error) {
	if len(field) <= 0 {
		return 0, fmt.Errorf("empty number")
	}
	for c := 0; c < len(field); c++ {
		if field[c] < '0' || field[c] > '9' {
			return 0, fmt.Errorf("non-digit in number: %v", field)
		}
	}
	return strconv.Atoi(field)
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
