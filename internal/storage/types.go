// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package storage

import (
	"context"
	"errors"
)

var ErrObjectNotFound = errors.New("对象不存在")

// Storage 对象存储，兼容 S3 协议的都可以用，例如 R2 和 MinIO
//
//go:generate mockgen -source=./types.go -destination=./mocks/storage.mock.go -package=storagemocks -typed=true Storage
type Storage interface {
	Put(ctx context.Context, key string, contentType string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	// URL 对象的访问地址
	URL(key string) string
}
