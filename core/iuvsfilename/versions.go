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

package iuvsfilename

import (
	"github.com/maven-iuvs/core/core/logger"
)

// Run through all file names, return a map of file name->parsed meta data for
// the latest files in the list. Files are grouped by every field except
// version/revision, and within each group the file NewerThan all others wins.
// Names that don't parse are logged and skipped, they never supersede anything.
func LatestFileVersions(fileNames []string, jobLog logger.ILogger) map[string]DataFilename {
	latest, _ := partitionFileVersions(fileNames, jobLog)
	return latest
}

// OutdatedFileVersions - the complement of LatestFileVersions within the same
// input: every parseable file superseded by a newer version/revision.
func OutdatedFileVersions(fileNames []string, jobLog logger.ILogger) map[string]DataFilename {
	_, outdated := partitionFileVersions(fileNames, jobLog)
	return outdated
}

func partitionFileVersions(fileNames []string, jobLog logger.ILogger) (map[string]DataFilename, map[string]DataFilename) {
	byGroup := map[string]map[string]DataFilename{}

	for _, file := range fileNames {
		meta, err := ParseFileName(file)
		if err != nil {
			jobLog.Infof("Failed to parse \"%v\": %v", file, err)
			continue
		}

		key := meta.GroupKey()
		if _, ok := byGroup[key]; !ok {
			byGroup[key] = map[string]DataFilename{}
		}
		byGroup[key][file] = meta
	}

	latest := map[string]DataFilename{}
	outdated := map[string]DataFilename{}

	for _, lookup := range byGroup {
		selectedName := ""
		var selectedMeta DataFilename

		for name, meta := range lookup {
			if len(selectedName) <= 0 || meta.NewerThan(selectedMeta) {
				selectedName = name
				selectedMeta = meta
			}
		}

		latest[selectedName] = selectedMeta
		for name, meta := range lookup {
			if name != selectedName {
				outdated[name] = meta
			}
		}
	}

	return latest, outdated
}
