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

	"github.com/ecodeclub/careerlens/internal/job/internal/domain"
	"github.com/ecodeclub/careerlens/internal/job/internal/repository/cache"
	"github.com/ecodeclub/careerlens/internal/job/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
)

var ErrJobNotFound = dao.ErrRecordNotFound

type JobRepository interface {
	Create(ctx context.Context, job domain.Job) (int64, error)
	Update(ctx context.Context, job domain.Job) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Job, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Job, error)
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Job, int64, error)
	ListByRecruiter(ctx context.Context, rid int64, offset, limit int) ([]domain.Job, int64, error)
	Delete(ctx context.Context, rid, id int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

// CachedJobRepository 只缓存详情，列表直接查数据库
type CachedJobRepository struct {
	dao    dao.JobDAO
	cache  cache.JobCache
	logger *elog.Component
}

func NewCachedJobRepository(d dao.JobDAO, c cache.JobCache) JobRepository {
	return &CachedJobRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedJobRepository) Create(ctx context.Context, job domain.Job) (int64, error) {
	return repo.dao.Create(ctx, repo.toEntity(job))
}

func (repo *CachedJobRepository) Update(ctx context.Context, job domain.Job) (int64, error) {
	cnt, err := repo.dao.Update(ctx, repo.toEntity(job))
	if err != nil {
		return 0, err
	}
	repo.evict(ctx, job.Id)
	return cnt, nil
}

func (repo *CachedJobRepository) FindById(ctx context.Context, id int64) (domain.Job, error) {
	job, err := repo.cache.Get(ctx, id)
	if err == nil {
		return job, nil
	}
	entity, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	job = repo.toDomain(entity)
	if err1 := repo.cache.Set(ctx, job); err1 != nil {
		repo.logger.Error("回写职位缓存失败", elog.FieldErr(err1), elog.Int64("id", id))
	}
	return job, nil
}

func (repo *CachedJobRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Job, error) {
	if len(ids) == 0 {
		return []domain.Job{}, nil
	}
	jobs, err := repo.dao.FindByIds(ctx, ids)
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return repo.toDomain(src)
	}), err
}

func (repo *CachedJobRepository) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Job, int64, error) {
	jobs, err := repo.dao.List(ctx, status.String(), offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := repo.dao.Count(ctx, status.String())
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return repo.toDomain(src)
	}), total, nil
}

func (repo *CachedJobRepository) ListByRecruiter(ctx context.Context, rid int64, offset, limit int) ([]domain.Job, int64, error) {
	jobs, err := repo.dao.ListByRecruiter(ctx, rid, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := repo.dao.CountByRecruiter(ctx, rid)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return repo.toDomain(src)
	}), total, nil
}

func (repo *CachedJobRepository) Delete(ctx context.Context, rid, id int64) (int64, error) {
	cnt, err := repo.dao.Delete(ctx, rid, id)
	if err != nil {
		return 0, err
	}
	repo.evict(ctx, id)
	return cnt, nil
}

func (repo *CachedJobRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	err := repo.dao.UpdateStatus(ctx, id, status.String())
	if err != nil {
		return err
	}
	repo.evict(ctx, id)
	return nil
}

// evict 删除缓存失败只记录日志，缓存会自己过期
func (repo *CachedJobRepository) evict(ctx context.Context, id int64) {
	if err := repo.cache.Delete(ctx, id); err != nil {
		repo.logger.Error("删除职位缓存失败", elog.FieldErr(err), elog.Int64("id", id))
	}
}

func (repo *CachedJobRepository) toEntity(job domain.Job) dao.Job {
	skills := job.Skills
	if skills == nil {
		skills = []string{}
	}
	return dao.Job{
		Id:          job.Id,
		RecruiterId: job.RecruiterId,
		Title:       job.Title,
		Description: job.Description,
		Skills: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   skills,
		},
		MinExperience:  job.MinExperience,
		Type:           job.Type.String(),
		Location:       job.Location,
		IsRemote:       job.IsRemote,
		SalaryMin:      job.Salary.Min,
		SalaryMax:      job.Salary.Max,
		SalaryCurrency: job.Salary.Currency,
		Status:         job.Status.String(),
	}
}

func (repo *CachedJobRepository) toDomain(job dao.Job) domain.Job {
	return domain.Job{
		Id:            job.Id,
		RecruiterId:   job.RecruiterId,
		Title:         job.Title,
		Description:   job.Description,
		Skills:        append([]string{}, job.Skills.Val...),
		MinExperience: job.MinExperience,
		Type:          domain.JobType(job.Type),
		Location:      job.Location,
		IsRemote:      job.IsRemote,
		Salary: domain.Salary{
			Min:      job.SalaryMin,
			Max:      job.SalaryMax,
			Currency: job.SalaryCurrency,
		},
		Status: domain.Status(job.Status),
		Ctime:  job.Ctime,
		Utime:  job.Utime,
	}
}
