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

	"github.com/ecodeclub/careerlens/internal/user/internal/domain"
	cachemocks "github.com/ecodeclub/careerlens/internal/user/internal/repository/cache/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedUserRepository_FindById(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := cachemocks.NewMockUserCache(ctrl)
	want := domain.User{
		Id:    1,
		Name:  "cached",
		Email: "cached@example.com",
		Role:  domain.RoleRecruiter,
	}
	c.EXPECT().Get(gomock.Any(), int64(1)).Return(want, nil)
	// 命中缓存不会访问数据库
	repo := NewCachedUserRepository(nil, c)
	u, err := repo.FindById(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, want, u)
}

func TestCachedUserRepository_FindByIds(t *testing.T) {
	repo := NewCachedUserRepository(nil, nil)
	us, err := repo.FindByIds(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, us)
}
