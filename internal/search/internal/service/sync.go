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

	"github.com/ecodeclub/careerlens/internal/search/internal/domain"
	"github.com/ecodeclub/careerlens/internal/search/internal/repository"
)

type SyncService interface {
	Upsert(ctx context.Context, job domain.Job) error
	Delete(ctx context.Context, id int64) error
}

type syncService struct {
	repo repository.JobRepository
}

func NewSyncSvc(repo repository.JobRepository) SyncService {
	return &syncService{repo: repo}
}

func (s *syncService) Upsert(ctx context.Context, job domain.Job) error {
	return s.repo.Upsert(ctx, job)
}

func (s *syncService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
