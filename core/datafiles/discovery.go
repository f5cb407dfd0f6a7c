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
	"fmt"
	"path"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/maven-iuvs/core/core/fileaccess"
	"github.com/maven-iuvs/core/core/iuvsfilename"
	"github.com/maven-iuvs/core/core/logger"
	"github.com/maven-iuvs/core/core/orbit"
)

// NotFoundError - a single-result accessor matched zero or more than one file
type NotFoundError struct {
	Pattern string
	Matches int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("expected exactly 1 file matching \"%v\", found %v", e.Pattern, e.Matches)
}

// FindAllFilePaths - every data product under the archive whose name matches
// pattern (see iuvsfilename.MakePattern), in lexicographic order. Names that
// match the pattern but violate the filename convention are logged and
// ignored, so all finders work from the same match set and latest+outdated
// always partition it. No matches is an empty result, not an error. Storage
// errors (missing root, permissions) propagate unmodified.
func FindAllFilePaths(fs fileaccess.FileAccess, root string, pattern string, jobLog logger.ILogger) ([]string, error) {
	return findUnder(fs, root, DataDirName+"/", pattern, false, jobLog)
}

// FindLatestFilePaths - as FindAllFilePaths but keeps only the newest
// version/revision of each observation
func FindLatestFilePaths(fs fileaccess.FileAccess, root string, pattern string, jobLog logger.ILogger) ([]string, error) {
	all, err := FindAllFilePaths(fs, root, pattern, jobLog)
	if err != nil {
		return nil, err
	}
	return sortedKeys(iuvsfilename.LatestFileVersions(all, jobLog)), nil
}

// FindOutdatedFilePaths - the complement of FindLatestFilePaths: every file
// superseded by a newer version/revision of the same observation
func FindOutdatedFilePaths(fs fileaccess.FileAccess, root string, pattern string, jobLog logger.ILogger) ([]string, error) {
	all, err := FindAllFilePaths(fs, root, pattern, jobLog)
	if err != nil {
		return nil, err
	}
	return sortedKeys(iuvsfilename.OutdatedFileVersions(all, jobLog)), nil
}

// FindLatestFilePathsFromBlock - latest files restricted to the one block
// directory containing the given orbit. A block directory that doesn't exist
// simply has no files, orbits with no data are normal in the archive.
func FindLatestFilePathsFromBlock(fs fileaccess.FileAccess, root string, env string, o orbit.Orbit, pattern string, jobLog logger.ILogger) ([]string, error) {
	matches, err := findUnder(fs, root, BlockDirectory(env, o)+"/", pattern, true, jobLog)
	if err != nil {
		return nil, err
	}
	return sortedKeys(iuvsfilename.LatestFileVersions(matches, jobLog)), nil
}

// FindLatestApoapseMUVFilePathsFromBlock - the most common query: latest
// apoapse MUV files for one orbit
func FindLatestApoapseMUVFilePathsFromBlock(fs fileaccess.FileAccess, root string, env string, orbitNumber int, jobLog logger.ILogger) ([]string, error) {
	o := orbit.MakeOrbit(orbitNumber)
	pattern := iuvsfilename.MakePattern("apoapse", orbitNumber, "muv")
	return FindLatestFilePathsFromBlock(fs, root, env, o, pattern, jobLog)
}

// FindUniqueFilePath - for callers that require exactly one (latest) match.
// Fails with NotFoundError on zero or multiple matches.
func FindUniqueFilePath(fs fileaccess.FileAccess, root string, pattern string, jobLog logger.ILogger) (string, error) {
	matches, err := FindLatestFilePaths(fs, root, pattern, jobLog)
	if err != nil {
		return "", err
	}
	if len(matches) != 1 {
		return "", NotFoundError{Pattern: pattern, Matches: len(matches)}
	}
	return matches[0], nil
}

func findUnder(fs fileaccess.FileAccess, root string, prefix string, pattern string, emptyIfMissing bool, jobLog logger.ILogger) ([]string, error) {
	listing, err := fs.ListObjects(root, prefix)
	if err != nil {
		if emptyIfMissing && fs.IsNotFoundError(err) {
			return []string{}, nil
		}
		return nil, err
	}

	result := []string{}
	for _, filePath := range listing {
		matched, err := path.Match(pattern, path.Base(filePath))
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}
		if _, err := iuvsfilename.ParseFileName(filePath); err != nil {
			jobLog.Infof("Ignoring \"%v\": %v", filePath, err)
			continue
		}
		result = append(result, filePath)
	}

	slices.Sort(result)
	return result, nil
}

func sortedKeys(files map[string]iuvsfilename.DataFilename) []string {
	keys := maps.Keys(files)
	slices.Sort(keys)
	return keys
}
