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

package repository

import (
	"context"
	"testing"

	"github.com/ecodeclub/careerlens/internal/job/internal/domain"
	cachemocks "github.com/ecodeclub/careerlens/internal/job/internal/repository/cache/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedJobRepository_FindById_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := cachemocks.NewMockJobCache(ctrl)
	want := domain.Job{Id: 1, Title: "Go Developer", Status: domain.StatusPublished}
	c.EXPECT().Get(gomock.Any(), int64(1)).Return(want, nil)

	// 命中缓存的时候不会访问数据库
	repo := NewCachedJobRepository(nil, c)
	job, err := repo.FindById(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, want, job)
}

func TestCachedJobRepository_FindByIds_Empty(t *testing.T) {
	repo := NewCachedJobRepository(nil, nil)
	jobs, err := repo.FindByIds(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
