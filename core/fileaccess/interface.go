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

// Generic read interface over an IUVS archive. Mission archives live either
// on a local disk mirror or in an S3 bucket with the same layout, so all
// discovery and loading code is written against this interface.
//
// "root" is the archive root: a directory path for the local implementation,
// a bucket name for S3. Paths under it always use forward slashes.

type FileAccess interface {
	// ListObjects - every file under root whose path starts with prefix.
	// Returned paths are relative to root.
	ListObjects(root string, prefix string) ([]string, error)

	ReadObject(root string, path string) ([]byte, error)

	ReadJSON(root string, path string, itemsPtr interface{}, emptyIfNotFound bool) error

	IsNotFoundError(err error) bool
}
