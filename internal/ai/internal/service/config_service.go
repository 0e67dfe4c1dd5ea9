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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"github.com/ecodeclub/careerlens/internal/ai/internal/repository"
)

var (
	ErrInvalidConfig  = errors.New("无效的配置")
	ErrConfigNotFound = repository.ErrConfigNotFound
)

// ConfigService 管理后台维护每个 biz 的模型、价格和 prompt
type ConfigService interface {
	Save(ctx context.Context, cfg domain.BizConfig) (int64, error)
	List(ctx context.Context) ([]domain.BizConfig, error)
	GetById(ctx context.Context, id int64) (domain.BizConfig, error)
}

type configService struct {
	repo repository.ConfigRepository
}

func NewConfigService(repo repository.ConfigRepository) ConfigService {
	return &configService{
		repo: repo,
	}
}

func (s *configService) Save(ctx context.Context, cfg domain.BizConfig) (int64, error) {
	cfg.Biz = strings.TrimSpace(cfg.Biz)
	cfg.Model = strings.TrimSpace(cfg.Model)
	if err := validate(cfg); err != nil {
		return 0, err
	}
	return s.repo.Save(ctx, cfg)
}

func validate(cfg domain.BizConfig) error {
	switch {
	case cfg.Biz == "" || cfg.Model == "":
		return fmt.Errorf("%w: biz 和 model 不能为空", ErrInvalidConfig)
	case cfg.Price < 0 || cfg.MaxInput < 0:
		return fmt.Errorf("%w: price 和 maxInput 不能为负数", ErrInvalidConfig)
	case cfg.Temperature < 0 || cfg.Temperature > 2:
		return fmt.Errorf("%w: temperature 的范围是 [0, 2]", ErrInvalidConfig)
	case cfg.TopP < 0 || cfg.TopP > 1:
		return fmt.Errorf("%w: topP 的范围是 [0, 1]", ErrInvalidConfig)
	// 没有占位符的话用户的输入就丢了
	case cfg.PromptTemplate != "" && !strings.Contains(cfg.PromptTemplate, "%s"):
		return fmt.Errorf("%w: promptTemplate 缺少 %%s", ErrInvalidConfig)
	}
	return nil
}

func (s *configService) List(ctx context.Context) ([]domain.BizConfig, error) {
	return s.repo.List(ctx)
}

func (s *configService) GetById(ctx context.Context, id int64) (domain.BizConfig, error) {
	if id <= 0 {
		return domain.BizConfig{}, ErrConfigNotFound
	}
	return s.repo.GetById(ctx, id)
}
