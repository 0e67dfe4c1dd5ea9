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
	"time"

	"github.com/ecodeclub/careerlens/internal/ai"
	"github.com/ecodeclub/careerlens/internal/match"
	"github.com/ecodeclub/careerlens/internal/resume/internal/domain"
	"github.com/ecodeclub/careerlens/internal/resume/internal/event"
	"github.com/ecodeclub/careerlens/internal/resume/internal/repository"
	"github.com/ecodeclub/careerlens/internal/storage"
	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	ErrResumeExists     = errors.New("已经上传过简历，请先删除")
	ErrResumeNotFound   = errors.New("简历不存在")
	ErrPermissionDenied = errors.New("无权操作该简历")
	ErrEmptyResumeText  = errors.New("简历文本为空")
	ErrAnalysisFailed   = errors.New("简历分析失败")
)

//go:generate mockgen -source=./service.go -destination=../../mocks/resume.mock.go -package=resumemocks -typed=true Service
type Service interface {
	// Upload 返回 ErrParsingFailed 的时候简历依旧保存下来了，状态为 failed
	Upload(ctx context.Context, uid int64, file domain.UploadFile) (domain.Resume, error)
	Mine(ctx context.Context, uid int64) (domain.Resume, error)
	Delete(ctx context.Context, uid, id int64) error
	// Analyze 已经分析过的直接返回，不会再调用大模型
	Analyze(ctx context.Context, uid int64) (domain.Resume, error)
	// Profile 投递用的候选人画像，resumeId 必须属于 uid
	Profile(ctx context.Context, uid, resumeId int64) (match.CandidateProfile, error)
}

type service struct {
	repo     repository.ResumeRepository
	storage  storage.Storage
	llm      ai.LLMService
	producer event.ResumeParsedEventProducer
	logger   *elog.Component
}

func NewService(repo repository.ResumeRepository,
	st storage.Storage,
	llm ai.LLMService,
	producer event.ResumeParsedEventProducer) Service {
	return &service{
		repo:     repo,
		storage:  st,
		llm:      llm,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Upload(ctx context.Context, uid int64, file domain.UploadFile) (domain.Resume, error) {
	contentType, err := DetectContentType(file.Name, file.ContentType)
	if err != nil {
		return domain.Resume{}, err
	}
	_, err = s.repo.FindByUid(ctx, uid)
	switch {
	case err == nil:
		return domain.Resume{}, ErrResumeExists
	case !errors.Is(err, repository.ErrResumeNotFound):
		return domain.Resume{}, err
	}

	key := fmt.Sprintf("resumes/%d/%s%s", uid, uuid.NewString(), Extension(contentType))
	err = s.storage.Put(ctx, key, contentType, file.Data)
	if err != nil {
		return domain.Resume{}, err
	}
	resume := domain.Resume{
		Uid:         uid,
		ObjectKey:   key,
		FileName:    file.Name,
		ContentType: contentType,
		ParseStatus: domain.ParseStatusPending,
	}
	resume.Id, err = s.repo.Create(ctx, resume)
	if err != nil {
		// 唯一索引冲突说明并发上传了
		if err1 := s.storage.Delete(ctx, key); err1 != nil {
			s.logger.Error("删除孤立的简历文件失败", elog.FieldErr(err1), elog.String("key", key))
		}
		return domain.Resume{}, err
	}

	text, err := ExtractText(contentType, file.Data)
	if err != nil {
		s.logger.Warn("提取简历文本失败", elog.FieldErr(err), elog.Int64("uid", uid))
		if err1 := s.repo.MarkFailed(ctx, resume.Id); err1 != nil {
			return domain.Resume{}, err1
		}
		resume.ParseStatus = domain.ParseStatusFailed
		return s.withURL(resume), err
	}
	parsedAt := time.Now().UnixMilli()
	err = s.repo.MarkParsed(ctx, resume.Id, text, parsedAt)
	if err != nil {
		return domain.Resume{}, err
	}
	resume.TextContent = text
	resume.ParseStatus = domain.ParseStatusSuccess
	resume.ParsedAt = parsedAt

	if err1 := s.producer.Produce(ctx, event.ResumeParsedEvent{Uid: uid, ResumeId: resume.Id}); err1 != nil {
		// 用户还可以手动触发分析
		s.logger.Error("发送简历解析事件失败", elog.FieldErr(err1), elog.Int64("uid", uid))
	}
	return s.withURL(resume), nil
}

func (s *service) Mine(ctx context.Context, uid int64) (domain.Resume, error) {
	resume, err := s.findByUid(ctx, uid)
	if err != nil {
		return domain.Resume{}, err
	}
	return s.withURL(resume), nil
}

func (s *service) Delete(ctx context.Context, uid, id int64) error {
	resume, err := s.repo.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return err
	}
	if resume.Uid != uid {
		return ErrPermissionDenied
	}
	err = s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	// 记录已经删掉了，文件删除失败只会留下孤立文件
	if err1 := s.storage.Delete(ctx, resume.ObjectKey); err1 != nil {
		s.logger.Error("删除简历文件失败", elog.FieldErr(err1), elog.String("key", resume.ObjectKey))
	}
	return nil
}

func (s *service) Analyze(ctx context.Context, uid int64) (domain.Resume, error) {
	resume, err := s.findByUid(ctx, uid)
	if err != nil {
		return domain.Resume{}, err
	}
	if resume.Analyzed() {
		return s.withURL(resume), nil
	}
	if strings.TrimSpace(resume.TextContent) == "" {
		return domain.Resume{}, ErrEmptyResumeText
	}
	insights, err := s.extractInsights(ctx, uid, resume.TextContent)
	if err != nil {
		return domain.Resume{}, err
	}
	err = s.repo.SaveInsights(ctx, resume.Id, insights)
	switch {
	case errors.Is(err, repository.ErrAlreadyAnalyzed):
		// 别人先写进去了，以数据库为准
		resume, err = s.findByUid(ctx, uid)
		if err != nil {
			return domain.Resume{}, err
		}
		return s.withURL(resume), nil
	case err != nil:
		return domain.Resume{}, err
	}
	resume.Insights = insights
	resume.AnalyzedAt = time.Now().UnixMilli()
	return s.withURL(resume), nil
}

// extractInsights 返回的不是 JSON 的时候重试一次
func (s *service) extractInsights(ctx context.Context, uid int64, text string) (domain.Insights, error) {
	const maxAttempts = 2
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		resp, err := s.llm.Invoke(ctx, ai.LLMRequest{
			Biz:   ai.BizResumeInsights,
			Uid:   uid,
			Tid:   shortuuid.New(),
			Input: []string{text},
		})
		if err != nil {
			return domain.Insights{}, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
		}
		insights, err := NormalizeInsights(resp.Answer)
		if err == nil {
			return insights, nil
		}
		lastErr = err
		s.logger.Warn("AI 返回的简历分析结果无法解析", elog.Int64("uid", uid), elog.Int("attempt", i+1))
	}
	return domain.Insights{}, fmt.Errorf("%w: %w", ErrAnalysisFailed, lastErr)
}

func (s *service) Profile(ctx context.Context, uid, resumeId int64) (match.CandidateProfile, error) {
	resume, err := s.repo.FindById(ctx, resumeId)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return match.CandidateProfile{}, ErrResumeNotFound
		}
		return match.CandidateProfile{}, err
	}
	if resume.Uid != uid {
		return match.CandidateProfile{}, ErrPermissionDenied
	}
	return match.CandidateProfile{
		Skills:          resume.Skills,
		ExperienceYears: resume.ExperienceYears,
		Summary:         resume.Summary,
		WorkExperience: slice.Map(resume.WorkExperience, func(idx int, src domain.WorkExperience) match.WorkExperience {
			return match.WorkExperience{
				Company:     src.Company,
				Role:        src.Role,
				StartDate:   src.StartDate,
				EndDate:     src.EndDate,
				Description: src.Description,
			}
		}),
	}, nil
}

func (s *service) findByUid(ctx context.Context, uid int64) (domain.Resume, error) {
	resume, err := s.repo.FindByUid(ctx, uid)
	if errors.Is(err, repository.ErrResumeNotFound) {
		return domain.Resume{}, ErrResumeNotFound
	}
	return resume, err
}

func (s *service) withURL(r domain.Resume) domain.Resume {
	r.FileURL = s.storage.URL(r.ObjectKey)
	return r
}
