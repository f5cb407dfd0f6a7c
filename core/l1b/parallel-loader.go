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
	"sync"

	"github.com/maven-iuvs/core/core/fileaccess"
	"github.com/maven-iuvs/core/core/logger"
)

// ReadFiles - Reads multiple l1b products in parallel. An orbit typically has
// a handful of swath files per segment and they are read independently, so
// this centralises the fan-out that larger operations (image reconstruction,
// calibration over a whole orbit) need. Results are in the same order as
// filePaths. The first read error wins.
func ReadFiles(fs fileaccess.FileAccess, root string, filePaths []string, jobLog logger.ILogger) ([]*File, error) {
	var wg sync.WaitGroup

	files := make([]*File, len(filePaths))
	loadErrors := []error{}

	wg.Add(len(filePaths))

	// Mutex for accessing the results above
	mu := sync.Mutex{}

	var loadFunc = func(idx int, filePath string) {
		defer wg.Done()

		jobLog.Debugf("  Reading l1b product: %v", filePath)

		file, err := Read(fs, root, filePath)

		mu.Lock()
		defer mu.Unlock()

		if err != nil {
			loadErrors = append(loadErrors, err)
		} else {
			jobLog.Debugf("  Finished l1b product: %v", filePath)
			files[idx] = file
		}
	}

	for idx, filePath := range filePaths {
		go loadFunc(idx, filePath)
	}

	// Wait for all
	wg.Wait()

	if len(loadErrors) > 0 {
		return nil, loadErrors[0]
	}

	return files, nil
}
