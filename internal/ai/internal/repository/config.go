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

	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"github.com/ecodeclub/careerlens/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/careerlens/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var ErrConfigNotFound = dao.ErrRecordNotFound

type ConfigRepository interface {
	GetConfig(ctx context.Context, biz string) (domain.BizConfig, error)
	Save(ctx context.Context, cfg domain.BizConfig) (int64, error)
	List(ctx context.Context) ([]domain.BizConfig, error)
	GetById(ctx context.Context, id int64) (domain.BizConfig, error)
}

// CachedConfigRepository 每一次调用大模型都要读配置，所以一定要有缓存
type CachedConfigRepository struct {
	dao    dao.ConfigDAO
	cache  cache.ConfigCache
	logger *elog.Component
}

func NewCachedConfigRepository(dao dao.ConfigDAO, c cache.ConfigCache) ConfigRepository {
	return &CachedConfigRepository{dao: dao, cache: c, logger: elog.DefaultLogger}
}

func (repo *CachedConfigRepository) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	res, err := repo.cache.Get(ctx, biz)
	if err == nil {
		return res, nil
	}
	entity, err := repo.dao.GetConfig(ctx, biz)
	if err != nil {
		return domain.BizConfig{}, err
	}
	res = repo.toDomain(entity)
	if err1 := repo.cache.Set(ctx, res); err1 != nil {
		repo.logger.Error("回写 AI 配置缓存失败", elog.FieldErr(err1), elog.String("biz", biz))
	}
	return res, nil
}

func (repo *CachedConfigRepository) Save(ctx context.Context, cfg domain.BizConfig) (int64, error) {
	id, err := repo.dao.Save(ctx, repo.toEntity(cfg))
	if err != nil {
		return 0, err
	}
	if err1 := repo.cache.Delete(ctx, cfg.Biz); err1 != nil {
		repo.logger.Error("删除 AI 配置缓存失败", elog.FieldErr(err1), elog.String("biz", cfg.Biz))
	}
	return id, nil
}

func (repo *CachedConfigRepository) List(ctx context.Context) ([]domain.BizConfig, error) {
	res, err := repo.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.BizConfig) domain.BizConfig {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedConfigRepository) GetById(ctx context.Context, id int64) (domain.BizConfig, error) {
	res, err := repo.dao.GetById(ctx, id)
	return repo.toDomain(res), err
}

func (repo *CachedConfigRepository) toDomain(c dao.BizConfig) domain.BizConfig {
	return domain.BizConfig{
		Id:             c.Id,
		Biz:            c.Biz,
		Model:          c.Model,
		Price:          c.Price,
		Temperature:    c.Temperature,
		TopP:           c.TopP,
		SystemPrompt:   c.SystemPrompt,
		MaxInput:       c.MaxInput,
		PromptTemplate: c.PromptTemplate,
		Utime:          c.Utime,
	}
}

func (repo *CachedConfigRepository) toEntity(c domain.BizConfig) dao.BizConfig {
	// biz 是唯一标识，按照 biz 覆盖
	return dao.BizConfig{
		Biz:            c.Biz,
		MaxInput:       c.MaxInput,
		Model:          c.Model,
		Price:          c.Price,
		Temperature:    c.Temperature,
		TopP:           c.TopP,
		SystemPrompt:   c.SystemPrompt,
		PromptTemplate: c.PromptTemplate,
	}
}
