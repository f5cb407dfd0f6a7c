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
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// Implementation of file access using an AWS S3 bucket holding a mirror of
// the archive layout
type S3Access struct {
	s3Api s3iface.S3API
}

func MakeS3Access(s3Api s3iface.S3API) S3Access {
	return S3Access{s3Api: s3Api}
}

// ListObjects - calls AWS ListObjectsV2 and if a continuation token is returned this keeps looping
// and storing more items until no more continuation tokens are left.
func (s3Access S3Access) ListObjects(bucket string, prefix string) ([]string, error) {
	continuationToken := ""
	result := []string{}

	params := s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	}

	for {
		if len(continuationToken) > 0 {
			params.ContinuationToken = aws.String(continuationToken)
		}

		listing, err := s3Access.s3Api.ListObjectsV2(&params)
		if err != nil {
			return []string{}, err
		}

		for _, item := range listing.Contents {
			if item.Key != nil {
				result = append(result, *item.Key)
			}
		}

		if listing.IsTruncated != nil && *listing.IsTruncated && listing.NextContinuationToken != nil {
			continuationToken = *listing.NextContinuationToken
		} else {
			break
		}
	}

	return result, nil
}

func (s3Access S3Access) ReadObject(bucket string, path string) ([]byte, error) {
	result, err := s3Access.s3Api.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return nil, err
	}
	defer result.Body.Close()

	return io.ReadAll(result.Body)
}

func (s3Access S3Access) ReadJSON(bucket string, s3Path string, itemsPtr interface{}, emptyIfNotFound bool) error {
	fileData, err := s3Access.ReadObject(bucket, s3Path)

	if err != nil {
		if emptyIfNotFound && s3Access.IsNotFoundError(err) {
			return nil
		}
		return err
	}

	return json.Unmarshal(fileData, itemsPtr)
}

func (s3Access S3Access) IsNotFoundError(err error) bool {
	if aerr, ok := err.(awserr.Error); ok {
		switch aerr.Code() {
		case s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket, "NotFound":
			return true
		}
	}
	return false
}
