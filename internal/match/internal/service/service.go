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

	"github.com/ecodeclub/careerlens/internal/match/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/match.mock.go -package=matchmocks -typed=true Service
type Service interface {
	// Compute 只计算分数，不生成反馈
	Compute(job domain.JobRequirements, candidate domain.CandidateProfile) domain.MatchResult
	// Evaluate 计算分数并且生成反馈，投递和预览都走这里
	Evaluate(ctx context.Context, uid int64, job domain.JobRequirements, candidate domain.CandidateProfile) domain.MatchResult
}

var scoreHistogram = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "careerlens_match_score",
	Help:    "Distribution of computed match scores",
	Buckets: prometheus.LinearBuckets(0, 10, 11),
})

type service struct {
	composer *FeedbackComposer
}

func NewService(composer *FeedbackComposer) Service {
	return &service{composer: composer}
}

func (s *service) Compute(job domain.JobRequirements, candidate domain.CandidateProfile) domain.MatchResult {
	return ComputeMatch(job, candidate)
}

func (s *service) Evaluate(ctx context.Context, uid int64, job domain.JobRequirements, candidate domain.CandidateProfile) domain.MatchResult {
	res := ComputeMatch(job, candidate)
	scoreHistogram.Observe(float64(res.MatchScore))
	res.AIFeedback = s.composer.Compose(ctx, uid, res.MatchedSkills, res.MissingSkills, res.ExperienceGap)
	return res
}
