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
	"math"
	"strings"

	"github.com/ecodeclub/careerlens/internal/job/internal/domain"
	"github.com/ecodeclub/careerlens/internal/job/internal/event"
	"github.com/ecodeclub/careerlens/internal/job/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrJobNotFound      = errors.New("职位不存在")
	ErrPermissionDenied = errors.New("无权操作该职位")
	ErrInvalidJob       = errors.New("职位信息不合法")
)

//go:generate mockgen -source=./job.go -destination=../../mocks/job.mock.go -package=jobmocks -typed=true Service
type Service interface {
	// Save Id 为 0 的时候创建，否则只能更新自己的职位
	Save(ctx context.Context, job domain.Job) (int64, error)
	Delete(ctx context.Context, rid, id int64) error
	MyJobs(ctx context.Context, rid int64, offset, limit int) ([]domain.Job, int64, error)
	// List 公开的职位列表，不包含被屏蔽的
	List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error)
	// AdminList 包含被屏蔽的职位
	AdminList(ctx context.Context, offset, limit int) ([]domain.Job, int64, error)
	Detail(ctx context.Context, id int64) (domain.Job, error)
	FindByIds(ctx context.Context, ids []int64) (map[int64]domain.Job, error)
	Block(ctx context.Context, id int64) error
	Unblock(ctx context.Context, id int64) error
}

type service struct {
	repo     repository.JobRepository
	producer event.JobSyncEventProducer
	logger   *elog.Component
}

func NewService(repo repository.JobRepository, producer event.JobSyncEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Save(ctx context.Context, job domain.Job) (int64, error) {
	job, err := s.normalize(job)
	if err != nil {
		return 0, err
	}
	if job.Id == 0 {
		job.Status = domain.StatusPublished
		job.Id, err = s.repo.Create(ctx, job)
		if err != nil {
			return 0, err
		}
	} else {
		cnt, err := s.repo.Update(ctx, job)
		if err != nil {
			return 0, err
		}
		if cnt == 0 {
			return 0, s.ownerErr(ctx, job.Id)
		}
	}
	s.syncUpsert(ctx, job.Id)
	return job.Id, nil
}

func (s *service) normalize(job domain.Job) (domain.Job, error) {
	job.Title = strings.TrimSpace(job.Title)
	if job.Title == "" {
		return domain.Job{}, ErrInvalidJob
	}
	if job.Type == "" {
		job.Type = domain.JobTypeFullTime
	}
	if !job.Type.Valid() {
		return domain.Job{}, ErrInvalidJob
	}
	if math.IsNaN(job.MinExperience) || math.IsInf(job.MinExperience, 0) || job.MinExperience < 0 {
		return domain.Job{}, ErrInvalidJob
	}
	if job.Salary.Min < 0 || job.Salary.Max < 0 ||
		(job.Salary.Max > 0 && job.Salary.Min > job.Salary.Max) {
		return domain.Job{}, ErrInvalidJob
	}
	if job.Salary.Currency == "" {
		job.Salary.Currency = domain.DefaultCurrency
	}
	job.Skills = slice.FilterMap(job.Skills, func(idx int, src string) (string, bool) {
		src = strings.TrimSpace(src)
		return src, src != ""
	})
	return job, nil
}

// ownerErr 没有更新到数据的时候，区分职位不存在和不是自己的职位
func (s *service) ownerErr(ctx context.Context, id int64) error {
	_, err := s.repo.FindById(ctx, id)
	switch {
	case errors.Is(err, repository.ErrJobNotFound):
		return ErrJobNotFound
	case err != nil:
		return err
	}
	return ErrPermissionDenied
}

func (s *service) Delete(ctx context.Context, rid, id int64) error {
	cnt, err := s.repo.Delete(ctx, rid, id)
	if err != nil {
		return err
	}
	if cnt == 0 {
		return s.ownerErr(ctx, id)
	}
	s.produce(ctx, event.NewDeleteEvent(id))
	return nil
}

func (s *service) MyJobs(ctx context.Context, rid int64, offset, limit int) ([]domain.Job, int64, error) {
	return s.repo.ListByRecruiter(ctx, rid, offset, limit)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error) {
	return s.repo.List(ctx, domain.StatusPublished, offset, limit)
}

func (s *service) AdminList(ctx context.Context, offset, limit int) ([]domain.Job, int64, error) {
	return s.repo.List(ctx, "", offset, limit)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Job, error) {
	job, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrJobNotFound) {
		return domain.Job{}, ErrJobNotFound
	}
	return job, err
}

func (s *service) FindByIds(ctx context.Context, ids []int64) (map[int64]domain.Job, error) {
	jobs, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Job, len(jobs))
	for _, job := range jobs {
		res[job.Id] = job
	}
	return res, nil
}

func (s *service) Block(ctx context.Context, id int64) error {
	return s.updateStatus(ctx, id, domain.StatusBlocked)
}

func (s *service) Unblock(ctx context.Context, id int64) error {
	return s.updateStatus(ctx, id, domain.StatusPublished)
}

func (s *service) updateStatus(ctx context.Context, id int64, status domain.Status) error {
	_, err := s.Detail(ctx, id)
	if err != nil {
		return err
	}
	err = s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	s.syncUpsert(ctx, id)
	return nil
}

// syncUpsert 重新查一遍，保证同步到搜索的是完整的数据
func (s *service) syncUpsert(ctx context.Context, id int64) {
	job, err := s.repo.FindById(ctx, id)
	if err != nil {
		s.logger.Error("查询职位失败，无法同步到搜索", elog.FieldErr(err), elog.Int64("id", id))
		return
	}
	s.produce(ctx, event.NewUpsertEvent(job))
}

func (s *service) produce(ctx context.Context, evt event.JobSyncEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送职位同步事件失败", elog.FieldErr(err),
			elog.String("op", evt.Op), elog.Int64("id", evt.Job.Id))
	}
}
