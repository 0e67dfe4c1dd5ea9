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

	"github.com/ecodeclub/careerlens/internal/resume/internal/domain"
	"github.com/ecodeclub/careerlens/internal/resume/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

var (
	ErrResumeNotFound  = dao.ErrRecordNotFound
	ErrAlreadyAnalyzed = dao.ErrAlreadyAnalyzed
)

type ResumeRepository interface {
	Create(ctx context.Context, r domain.Resume) (int64, error)
	FindByUid(ctx context.Context, uid int64) (domain.Resume, error)
	FindById(ctx context.Context, id int64) (domain.Resume, error)
	MarkParsed(ctx context.Context, id int64, text string, parsedAt int64) error
	MarkFailed(ctx context.Context, id int64) error
	SaveInsights(ctx context.Context, id int64, insights domain.Insights) error
	Delete(ctx context.Context, id int64) error
}

type resumeRepository struct {
	dao dao.ResumeDAO
}

func NewResumeRepository(d dao.ResumeDAO) ResumeRepository {
	return &resumeRepository{dao: d}
}

func (r *resumeRepository) Create(ctx context.Context, resume domain.Resume) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(resume))
}

func (r *resumeRepository) FindByUid(ctx context.Context, uid int64) (domain.Resume, error) {
	res, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.Resume{}, err
	}
	return r.toDomain(res), nil
}

func (r *resumeRepository) FindById(ctx context.Context, id int64) (domain.Resume, error) {
	res, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Resume{}, err
	}
	return r.toDomain(res), nil
}

func (r *resumeRepository) MarkParsed(ctx context.Context, id int64, text string, parsedAt int64) error {
	return r.dao.UpdateParsed(ctx, id, text, domain.ParseStatusSuccess.String(), parsedAt)
}

func (r *resumeRepository) MarkFailed(ctx context.Context, id int64) error {
	return r.dao.UpdateParseStatus(ctx, id, domain.ParseStatusFailed.String())
}

func (r *resumeRepository) SaveInsights(ctx context.Context, id int64, insights domain.Insights) error {
	return r.dao.SaveInsights(ctx, id, r.toEntity(domain.Resume{Insights: insights}))
}

func (r *resumeRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *resumeRepository) toEntity(resume domain.Resume) dao.Resume {
	skills := resume.Skills
	if skills == nil {
		skills = []string{}
	}
	return dao.Resume{
		Id:          resume.Id,
		Uid:         resume.Uid,
		ObjectKey:   resume.ObjectKey,
		FileName:    resume.FileName,
		ContentType: resume.ContentType,
		TextContent: resume.TextContent,
		ParseStatus: resume.ParseStatus.String(),
		ParsedAt:    resume.ParsedAt,
		Skills: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   skills,
		},
		ExperienceYears: resume.ExperienceYears,
		Summary:         resume.Summary,
		WorkExperience: sqlx.JsonColumn[[]dao.WorkExperience]{
			Valid: true,
			Val: slice.Map(resume.WorkExperience, func(idx int, src domain.WorkExperience) dao.WorkExperience {
				return dao.WorkExperience(src)
			}),
		},
		AnalyzedAt: resume.AnalyzedAt,
	}
}

func (r *resumeRepository) toDomain(resume dao.Resume) domain.Resume {
	return domain.Resume{
		Id:          resume.Id,
		Uid:         resume.Uid,
		ObjectKey:   resume.ObjectKey,
		FileName:    resume.FileName,
		ContentType: resume.ContentType,
		TextContent: resume.TextContent,
		ParseStatus: domain.ParseStatus(resume.ParseStatus),
		ParsedAt:    resume.ParsedAt,
		Insights: domain.Insights{
			Skills:          append([]string{}, resume.Skills.Val...),
			ExperienceYears: resume.ExperienceYears,
			Summary:         resume.Summary,
			WorkExperience: slice.Map(resume.WorkExperience.Val, func(idx int, src dao.WorkExperience) domain.WorkExperience {
				return domain.WorkExperience(src)
			}),
		},
		AnalyzedAt: resume.AnalyzedAt,
		Ctime:      resume.Ctime,
		Utime:      resume.Utime,
	}
}
