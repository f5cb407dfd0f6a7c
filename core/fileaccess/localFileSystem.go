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

package fileaccess

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Implementation of file access using the local file system
type FSAccess struct {
}

func (fs *FSAccess) ListObjects(rootPath string, prefix string) ([]string, error) {
	result := []string{}

	rootOnly := path.Join(rootPath) // Using path.Join to make it match the fullPath cleans off ./ for example
	fullPath := fs.filePath(rootPath, prefix)

	err := filepath.Walk(fullPath, func(pathFound string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			// Return paths relative to the root, using forward slashes so they
			// look the same as S3 keys
			toSave := filepath.ToSlash(pathFound)
			if strings.HasPrefix(toSave, rootOnly) {
				toSave = toSave[len(rootOnly)+1:]
			}
			result = append(result, toSave)
		}
		return nil
	})

	return result, err
}

func (fs *FSAccess) ReadObject(rootPath string, filePath string) ([]byte, error) {
	return os.ReadFile(fs.filePath(rootPath, filePath))
}

func (fs *FSAccess) ReadJSON(rootPath string, filePath string, itemsPtr interface{}, emptyIfNotFound bool) error {
	fileData, err := fs.ReadObject(rootPath, filePath)

	if err != nil {
		if emptyIfNotFound && fs.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	return json.Unmarshal(fileData, itemsPtr)
}

func (fs *FSAccess) IsNotFoundError(err error) bool {
	return os.IsNotExist(err)
}

func (fs *FSAccess) filePath(rootPath string, filePath string) string {
	return path.Join(rootPath, filePath)
}
