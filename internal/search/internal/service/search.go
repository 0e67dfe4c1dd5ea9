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
	"strings"

	"github.com/ecodeclub/careerlens/internal/search/internal/domain"
	"github.com/ecodeclub/careerlens/internal/search/internal/repository"
)

type SearchService interface {
	SearchJobs(ctx context.Context, keywords string, offset, limit int) (domain.SearchResult, error)
}

type searchService struct {
	repo repository.JobRepository
}

func NewSearchSvc(repo repository.JobRepository) SearchService {
	return &searchService{repo: repo}
}

func (s *searchService) SearchJobs(ctx context.Context, keywords string, offset, limit int) (domain.SearchResult, error) {
	return s.repo.Search(ctx, strings.TrimSpace(keywords), offset, limit)
}
