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

	"github.com/ecodeclub/careerlens/internal/search/internal/domain"
	"github.com/ecodeclub/careerlens/internal/search/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type JobRepository interface {
	Upsert(ctx context.Context, job domain.Job) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, keywords string, offset, limit int) (domain.SearchResult, error)
}

type jobRepository struct {
	dao dao.JobDAO
}

func NewJobRepository(d dao.JobDAO) JobRepository {
	return &jobRepository{dao: d}
}

func (r *jobRepository) Upsert(ctx context.Context, job domain.Job) error {
	return r.dao.Upsert(ctx, dao.Job(job))
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *jobRepository) Search(ctx context.Context, keywords string, offset, limit int) (domain.SearchResult, error) {
	jobs, total, err := r.dao.Search(ctx, keywords, offset, limit)
	if err != nil {
		return domain.SearchResult{}, err
	}
	return domain.SearchResult{
		Total: total,
		Jobs: slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
			return domain.Job(src)
		}),
	}, nil
}
