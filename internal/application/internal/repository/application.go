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

	"github.com/ecodeclub/careerlens/internal/application/internal/domain"
	"github.com/ecodeclub/careerlens/internal/application/internal/repository/dao"
	"github.com/ecodeclub/careerlens/internal/match"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

var (
	ErrApplicationNotFound = dao.ErrRecordNotFound
	ErrDuplicated          = dao.ErrDuplicated
)

type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Application, error)
	FindByJobAndApplicant(ctx context.Context, jobId, applicantId int64) (domain.Application, error)
	FindByApplicant(ctx context.Context, applicantId int64) ([]domain.Application, error)
	FindByJob(ctx context.Context, jobId int64) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (repo *applicationRepository) Create(ctx context.Context, app domain.Application) (int64, error) {
	return repo.dao.Insert(ctx, repo.toEntity(app))
}

func (repo *applicationRepository) FindById(ctx context.Context, id int64) (domain.Application, error) {
	app, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	return repo.toDomain(app), nil
}

func (repo *applicationRepository) FindByJobAndApplicant(ctx context.Context, jobId, applicantId int64) (domain.Application, error) {
	app, err := repo.dao.FindByJobAndApplicant(ctx, jobId, applicantId)
	if err != nil {
		return domain.Application{}, err
	}
	return repo.toDomain(app), nil
}

func (repo *applicationRepository) FindByApplicant(ctx context.Context, applicantId int64) ([]domain.Application, error) {
	apps, err := repo.dao.FindByApplicant(ctx, applicantId)
	if err != nil {
		return nil, err
	}
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return repo.toDomain(src)
	}), nil
}

func (repo *applicationRepository) FindByJob(ctx context.Context, jobId int64) ([]domain.Application, error) {
	apps, err := repo.dao.FindByJob(ctx, jobId)
	if err != nil {
		return nil, err
	}
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return repo.toDomain(src)
	}), nil
}

func (repo *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return repo.dao.UpdateStatus(ctx, id, status.String())
}

func (repo *applicationRepository) toEntity(app domain.Application) dao.Application {
	return dao.Application{
		Id:          app.Id,
		SN:          app.SN,
		JobId:       app.JobId,
		ApplicantId: app.ApplicantId,
		ResumeId:    app.ResumeId,
		Status:      app.Status.String(),
		MatchScore:  app.Match.MatchScore,
		Analysis: sqlx.JsonColumn[dao.Analysis]{
			Val: dao.Analysis{
				MatchedSkills: app.Match.MatchedSkills,
				MissingSkills: app.Match.MissingSkills,
				ExperienceGap: app.Match.ExperienceGap,
				Summary:       app.Match.Summary,
				AIFeedback:    app.Match.AIFeedback,
			},
			Valid: true,
		},
	}
}

func (repo *applicationRepository) toDomain(app dao.Application) domain.Application {
	analysis := app.Analysis.Val
	return domain.Application{
		Id:          app.Id,
		SN:          app.SN,
		JobId:       app.JobId,
		ApplicantId: app.ApplicantId,
		ResumeId:    app.ResumeId,
		Status:      domain.Status(app.Status),
		Match: match.MatchResult{
			MatchScore:    app.MatchScore,
			MatchedSkills: analysis.MatchedSkills,
			MissingSkills: analysis.MissingSkills,
			ExperienceGap: analysis.ExperienceGap,
			Summary:       analysis.Summary,
			AIFeedback:    analysis.AIFeedback,
		},
		Ctime: app.Ctime,
		Utime: app.Utime,
	}
}
