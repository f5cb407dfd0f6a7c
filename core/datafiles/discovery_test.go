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

package datafiles

import (
	"errors"
	"reflect"
	"testing"

	"github.com/maven-iuvs/core/core/fileaccess"
	"github.com/maven-iuvs/core/core/iuvsfilename"
	"github.com/maven-iuvs/core/core/logger"
	"github.com/maven-iuvs/core/core/orbit"
)

const testRoot = "archive"

func makeTestArchive() *fileaccess.MemFileAccess {
	mem := fileaccess.MakeMemFileAccess()
	seed := []string{
		"iuvs-data/production/orbit03400/orbit03453/mvn_iuv_l1b_apoapse-orbit03453-muv_20160708T044652_v12_r02.fits.gz",
		"iuvs-data/production/orbit03400/orbit03453/mvn_iuv_l1b_apoapse-orbit03453-muv_20160708T044652_v13_r01.fits.gz",
		"iuvs-data/production/orbit03400/orbit03453/mvn_iuv_l1b_apoapse-orbit03453-fuv_20160708T044652_v13_r01.fits.gz",
		"iuvs-data/production/orbit03400/orbit03453/mvn_iuv_l1b_periapse-orbit03453-muv_20160708T095344_v13_r01.fits.gz",
		"iuvs-data/production/orbit03400/orbit03462/mvn_iuv_l1b_apoapse-orbit03462-muv_20160710T011731_v13_r01.fits.gz",
		"iuvs-data/production/orbit03500/orbit03521/mvn_iuv_l1b_apoapse-orbit03521-muv_20160721T120233_v13_r01.fits.gz",
		"iuvs-data/stage/orbit03400/orbit03453/mvn_iuv_l1b_apoapse-orbit03453-muv_20160708T044652_v14_s01.fits.gz",
		"iuvs-data/production/orbit03400/orbit03453/README.txt",
		// Matches apoapse/muv glob patterns but violates the filename convention
		"iuvs-data/production/orbit03400/orbit03453/mvn_iuv_l1b_apoapse-orbit03453-muv_badtimestamp_v13_r01.fits.gz",
	}
	for _, p := range seed {
		mem.AddObject(testRoot, p, []byte("data"))
	}
	return mem
}

func TestFindAllFilePaths(t *testing.T) {
	mem := makeTestArchive()

	pattern := iuvsfilename.MakePattern("apoapse", 3453, "muv")
	paths, err := FindAllFilePaths(mem, testRoot, pattern, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("FindAllFilePaths failed: %v", err)
	}

	want := []string{
		"iuvs-data/production/orbit03400/orbit03453/mvn_iuv_l1b_apoapse-orbit03453-muv_20160708T044652_v12_r02.fits.gz",
		"iuvs-data/production/orbit03400/orbit03453/mvn_iuv_l1b_apoapse-orbit03453-muv_20160708T044652_v13_r01.fits.gz",
		"iuvs-data/stage/orbit03400/orbit03453/mvn_iuv_l1b_apoapse-orbit03453-muv_20160708T044652_v14_s01.fits.gz",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("FindAllFilePaths got %v; want %v", paths, want)
	}
}

func TestFindAllFilePathsNoMatchesIsEmpty(t *testing.T) {
	mem := makeTestArchive()

	paths, err := FindAllFilePaths(mem, testRoot, iuvsfilename.MakePattern("apoapse", 99999, "muv"), &logger.NullLogger{})
	if err != nil {
		t.Fatalf("FindAllFilePaths failed: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no matches, got %v", paths)
	}
}

func TestLatestAndOutdatedPartition(t *testing.T) {
	mem := makeTestArchive()
	pattern := iuvsfilename.MakePattern("", 3453, "muv")

	all, err := FindAllFilePaths(mem, testRoot, pattern, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("FindAllFilePaths failed: %v", err)
	}
	latest, err := FindLatestFilePaths(mem, testRoot, pattern, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("FindLatestFilePaths failed: %v", err)
	}
	outdated, err := FindOutdatedFilePaths(mem, testRoot, pattern, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("FindOutdatedFilePaths failed: %v", err)
	}

	if len(latest)+len(outdated) != len(all) {
		t.Errorf("latest (%v) + outdated (%v) != all (%v)", latest, outdated, all)
	}
	for _, l := range latest {
		for _, o := range outdated {
			if l == o {
				t.Errorf("%v is in both latest and outdated", l)
			}
		}
	}

	// v12_r02 is superseded by v13_r01 which is superseded by v14_s01
	wantLatest := []string{
		"iuvs-data/production/orbit03400/orbit03453/mvn_iuv_l1b_periapse-orbit03453-muv_20160708T095344_v13_r01.fits.gz",
		"iuvs-data/stage/orbit03400/orbit03453/mvn_iuv_l1b_apoapse-orbit03453-muv_20160708T044652_v14_s01.fits.gz",
	}
	if !reflect.DeepEqual(latest, wantLatest) {
		t.Errorf("FindLatestFilePaths got %v; want %v", latest, wantLatest)
	}
}

// A file matching the glob pattern but violating the filename convention must
// be ignored by every finder, otherwise it would show up in FindAllFilePaths
// while landing in neither the latest nor the outdated partition
func TestBadConventionMatchesIgnoredByAllFinders(t *testing.T) {
	mem := fileaccess.MakeMemFileAccess()
	good := "iuvs-data/production/orbit03400/orbit03453/mvn_iuv_l1b_apoapse-orbit03453-muv_20160708T044652_v13_r01.fits.gz"
	bad := "iuvs-data/production/orbit03400/orbit03453/mvn_iuv_l1b_apoapse-orbit03453-muv_badtimestamp_v13_r01.fits.gz"
	mem.AddObject(testRoot, good, []byte("data"))
	mem.AddObject(testRoot, bad, []byte("data"))

	pattern := iuvsfilename.MakePattern("apoapse", 3453, "muv")

	all, err := FindAllFilePaths(mem, testRoot, pattern, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("FindAllFilePaths failed: %v", err)
	}
	if !reflect.DeepEqual(all, []string{good}) {
		t.Errorf("FindAllFilePaths got %v; want only %v", all, good)
	}

	latest, err := FindLatestFilePaths(mem, testRoot, pattern, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("FindLatestFilePaths failed: %v", err)
	}
	outdated, err := FindOutdatedFilePaths(mem, testRoot, pattern, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("FindOutdatedFilePaths failed: %v", err)
	}
	if len(latest)+len(outdated) != len(all) {
		t.Errorf("latest (%v) + outdated (%v) != all (%v)", latest, outdated, all)
	}
	if !reflect.DeepEqual(latest, []string{good}) {
		t.Errorf("FindLatestFilePaths got %v; want only %v", latest, good)
	}
}

func TestFindLatestFilePathsFromBlock(t *testing.T) {
	mem := makeTestArchive()

	o := orbit.MakeOrbit(3453)
	pattern := iuvsfilename.MakePattern("apoapse", 3453, "muv")
	paths, err := FindLatestFilePathsFromBlock(mem, testRoot, EnvProduction, o, pattern, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("FindLatestFilePathsFromBlock failed: %v", err)
	}

	want := []string{
		"iuvs-data/production/orbit03400/orbit03453/mvn_iuv_l1b_apoapse-orbit03453-muv_20160708T044652_v13_r01.fits.gz",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("FindLatestFilePathsFromBlock got %v; want %v", paths, want)
	}
}

func TestFindLatestApoapseMUVFilePathsFromBlock(t *testing.T) {
	mem := makeTestArchive()

	paths, err := FindLatestApoapseMUVFilePathsFromBlock(mem, testRoot, EnvProduction, 3462, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("FindLatestApoapseMUVFilePathsFromBlock failed: %v", err)
	}
	want := []string{
		"iuvs-data/production/orbit03400/orbit03462/mvn_iuv_l1b_apoapse-orbit03462-muv_20160710T011731_v13_r01.fits.gz",
	}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("got %v; want %v", paths, want)
	}

	// An orbit whose block directory doesn't exist is just empty
	paths, err = FindLatestApoapseMUVFilePathsFromBlock(mem, testRoot, EnvProduction, 90000, &logger.NullLogger{})
	if err != nil {
		t.Fatalf("expected empty result, got error %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no paths, got %v", paths)
	}
}

func TestFindUniqueFilePath(t *testing.T) {
	mem := makeTestArchive()

	// Exactly one latest periapse muv file
	got, err := FindUniqueFilePath(mem, testRoot, iuvsfilename.MakePattern("periapse", 3453, "muv"), &logger.NullLogger{})
	if err != nil {
		t.Fatalf("FindUniqueFilePath failed: %v", err)
	}
	want := "iuvs-data/production/orbit03400/orbit03453/mvn_iuv_l1b_periapse-orbit03453-muv_20160708T095344_v13_r01.fits.gz"
	if got != want {
		t.Errorf("FindUniqueFilePath got %v; want %v", got, want)
	}

	// Multiple latest apoapse muv files (different orbits) must fail
	_, err = FindUniqueFilePath(mem, testRoot, iuvsfilename.MakePattern("apoapse", 0, "muv"), &logger.NullLogger{})
	var nfErr NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nfErr.Matches < 2 {
		t.Errorf("NotFoundError.Matches got %v; want >= 2", nfErr.Matches)
	}

	// Zero matches must fail too
	_, err = FindUniqueFilePath(mem, testRoot, iuvsfilename.MakePattern("apoapse", 99999, "muv"), &logger.NullLogger{})
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
