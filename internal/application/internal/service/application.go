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

	"github.com/ecodeclub/careerlens/internal/application/internal/domain"
	"github.com/ecodeclub/careerlens/internal/application/internal/event"
	"github.com/ecodeclub/careerlens/internal/application/internal/repository"
	"github.com/ecodeclub/careerlens/internal/job"
	"github.com/ecodeclub/careerlens/internal/match"
	"github.com/ecodeclub/careerlens/internal/pkg/snowflake"
	"github.com/ecodeclub/careerlens/internal/resume"
	"github.com/ecodeclub/careerlens/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrResumeRequired      = errors.New("缺少简历")
	ErrJobNotFound         = errors.New("职位不存在")
	ErrOwnJob              = errors.New("不能投递自己发布的职位")
	ErrResumeNotFound      = errors.New("简历不存在")
	ErrPermissionDenied    = errors.New("无权操作")
	ErrAlreadyApplied      = errors.New("已经投递过该职位")
	ErrApplicationNotFound = errors.New("投递记录不存在")
	ErrInvalidStatus       = errors.New("状态不合法")
)

//go:generate mockgen -source=./application.go -destination=../../mocks/application.mock.go -package=applicationmocks -typed=true Service
type Service interface {
	Apply(ctx context.Context, uid, jobId, resumeId int64) (domain.Application, error)
	// Preview 投递之前看看匹配度，不会保存任何东西
	Preview(ctx context.Context, uid, jobId int64) (match.MatchResult, error)
	MyApplications(ctx context.Context, uid int64) ([]domain.Application, error)
	// Applicants 只有职位的发布者可以查看
	Applicants(ctx context.Context, rid, jobId int64) (domain.Job, []domain.Application, error)
	UpdateStatus(ctx context.Context, rid, id int64, status domain.Status) error
}

type service struct {
	repo      repository.ApplicationRepository
	jobSvc    job.Service
	resumeSvc resume.Service
	matchSvc  match.Service
	userSvc   user.UserService
	sn        snowflake.Generator
	producer  event.ApplicationStatusEventProducer
	logger    *elog.Component
}

func NewService(repo repository.ApplicationRepository,
	jobSvc job.Service,
	resumeSvc resume.Service,
	matchSvc match.Service,
	userSvc user.UserService,
	sn snowflake.Generator,
	producer event.ApplicationStatusEventProducer) Service {
	return &service{
		repo:      repo,
		jobSvc:    jobSvc,
		resumeSvc: resumeSvc,
		matchSvc:  matchSvc,
		userSvc:   userSvc,
		sn:        sn,
		producer:  producer,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) Apply(ctx context.Context, uid, jobId, resumeId int64) (domain.Application, error) {
	if resumeId <= 0 {
		return domain.Application{}, ErrResumeRequired
	}
	j, err := s.publishedJob(ctx, jobId)
	if err != nil {
		return domain.Application{}, err
	}
	if j.RecruiterId == uid {
		return domain.Application{}, ErrOwnJob
	}
	_, err = s.repo.FindByJobAndApplicant(ctx, jobId, uid)
	switch {
	case err == nil:
		return domain.Application{}, ErrAlreadyApplied
	case !errors.Is(err, repository.ErrApplicationNotFound):
		return domain.Application{}, err
	}
	candidate, err := s.resumeSvc.Profile(ctx, uid, resumeId)
	if err != nil {
		return domain.Application{}, s.resumeErr(err)
	}
	sn, err := s.sn.Generate(snowflake.AppApplication)
	if err != nil {
		return domain.Application{}, err
	}
	app := domain.Application{
		SN:          sn.String(),
		JobId:       jobId,
		ApplicantId: uid,
		ResumeId:    resumeId,
		Status:      domain.StatusApplied,
		Match:       s.matchSvc.Evaluate(ctx, uid, j.Requirements(), candidate),
		Job:         newJob(j),
	}
	app.Id, err = s.repo.Create(ctx, app)
	if errors.Is(err, repository.ErrDuplicated) {
		// 并发投递
		return domain.Application{}, ErrAlreadyApplied
	}
	return app, err
}

func (s *service) Preview(ctx context.Context, uid, jobId int64) (match.MatchResult, error) {
	var (
		eg        errgroup.Group
		j         job.Job
		candidate match.CandidateProfile
	)
	eg.Go(func() error {
		var err error
		j, err = s.publishedJob(ctx, jobId)
		return err
	})
	eg.Go(func() error {
		r, err := s.resumeSvc.Mine(ctx, uid)
		if err != nil {
			return s.resumeErr(err)
		}
		candidate, err = s.resumeSvc.Profile(ctx, uid, r.Id)
		return s.resumeErr(err)
	})
	if err := eg.Wait(); err != nil {
		return match.MatchResult{}, err
	}
	return s.matchSvc.Evaluate(ctx, uid, j.Requirements(), candidate), nil
}

func (s *service) MyApplications(ctx context.Context, uid int64) ([]domain.Application, error) {
	apps, err := s.repo.FindByApplicant(ctx, uid)
	if err != nil || len(apps) == 0 {
		return apps, err
	}
	jobIds := slice.Map(apps, func(idx int, src domain.Application) int64 {
		return src.JobId
	})
	jobs, err := s.jobSvc.FindByIds(ctx, jobIds)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		// 职位被删除了就只有 Id
		j, ok := jobs[apps[i].JobId]
		if ok {
			apps[i].Job = newJob(j)
		} else {
			apps[i].Job = domain.Job{Id: apps[i].JobId}
		}
	}
	return apps, nil
}

func (s *service) Applicants(ctx context.Context, rid, jobId int64) (domain.Job, []domain.Application, error) {
	var (
		eg   errgroup.Group
		j    job.Job
		apps []domain.Application
	)
	eg.Go(func() error {
		var err error
		j, err = s.jobSvc.Detail(ctx, jobId)
		if errors.Is(err, job.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return err
	})
	eg.Go(func() error {
		var err error
		apps, err = s.repo.FindByJob(ctx, jobId)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Job{}, nil, err
	}
	if j.RecruiterId != rid {
		return domain.Job{}, nil, ErrPermissionDenied
	}
	if len(apps) == 0 {
		return newJob(j), apps, nil
	}
	uids := slice.Map(apps, func(idx int, src domain.Application) int64 {
		return src.ApplicantId
	})
	users, err := s.userSvc.FindByIds(ctx, uids)
	if err != nil {
		return domain.Job{}, nil, err
	}
	for i := range apps {
		u := users[apps[i].ApplicantId]
		apps[i].Applicant = domain.Applicant{
			Id:         apps[i].ApplicantId,
			Name:       u.Name,
			Email:      u.Email,
			Headline:   u.Profile.Headline,
			PictureURL: u.Profile.PictureURL,
		}
	}
	return newJob(j), apps, nil
}

func (s *service) UpdateStatus(ctx context.Context, rid, id int64, status domain.Status) error {
	if !status.Updatable() {
		return ErrInvalidStatus
	}
	app, err := s.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return ErrApplicationNotFound
		}
		return err
	}
	j, err := s.jobSvc.Detail(ctx, app.JobId)
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return ErrJobNotFound
		}
		return err
	}
	if j.RecruiterId != rid {
		return ErrPermissionDenied
	}
	err = s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	app.Status = status
	evt := event.NewApplicationStatusEvent(app, j.Title)
	if err1 := s.producer.Produce(ctx, evt); err1 != nil {
		// 状态已经改了，通知丢了不影响
		s.logger.Error("发送投递状态事件失败",
			elog.FieldErr(err1),
			elog.Int64("aid", app.Id))
	}
	return nil
}

// publishedJob 被屏蔽的职位当作不存在
func (s *service) publishedJob(ctx context.Context, jobId int64) (job.Job, error) {
	j, err := s.jobSvc.Detail(ctx, jobId)
	if err != nil {
		if errors.Is(err, job.ErrJobNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	if j.Blocked() {
		return job.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (s *service) resumeErr(err error) error {
	switch {
	case errors.Is(err, resume.ErrResumeNotFound):
		return ErrResumeNotFound
	case errors.Is(err, resume.ErrPermissionDenied):
		return ErrPermissionDenied
	}
	return err
}

func newJob(j job.Job) domain.Job {
	return domain.Job{
		Id:       j.Id,
		Title:    j.Title,
		Location: j.Location,
		Type:     j.Type.String(),
	}
}
