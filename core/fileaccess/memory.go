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
	"fmt"
	"sort"
	"strings"
)

// MemFileAccess - in-memory implementation for unit tests, so discovery code
// can be tested without touching disk or AWS
type MemFileAccess struct {
	files map[string]map[string][]byte // root -> path -> contents
}

type memNotFoundError struct {
	path string
}

func (e memNotFoundError) Error() string {
	return fmt.Sprintf("%v not found", e.path)
}

func MakeMemFileAccess() *MemFileAccess {
	return &MemFileAccess{files: map[string]map[string][]byte{}}
}

// AddObject - seed test data
func (m *MemFileAccess) AddObject(root string, path string, data []byte) {
	if _, ok := m.files[root]; !ok {
		m.files[root] = map[string][]byte{}
	}
	m.files[root][path] = data
}

func (m *MemFileAccess) ListObjects(root string, prefix string) ([]string, error) {
	result := []string{}
	for path := range m.files[root] {
		if strings.HasPrefix(path, prefix) {
			result = append(result, path)
		}
	}
	sort.Strings(result)
	return result, nil
}

func (m *MemFileAccess) ReadObject(root string, path string) ([]byte, error) {
	if data, ok := m.files[root][path]; ok {
		return data, nil
	}
	return nil, memNotFoundError{path}
}

func (m *MemFileAccess) ReadJSON(root string, path string, itemsPtr interface{}, emptyIfNotFound bool) error {
	fileData, err := m.ReadObject(root, path)
	if err != nil {
		if emptyIfNotFound && m.IsNotFoundError(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(fileData, itemsPtr)
}

func (m *MemFileAccess) IsNotFoundError(err error) bool {
	_, ok := err.(memNotFoundError)
	return ok
}
