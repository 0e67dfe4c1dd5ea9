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

	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"github.com/ecodeclub/careerlens/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/ekit/sqlx"
)

type LLMLogRepo interface {
	SaveLog(ctx context.Context, l domain.LLMRecord) (int64, error)
	FindByTid(ctx context.Context, tid string) (domain.LLMRecord, error)
}

// 调用日志
type llmLogRepo struct {
	logDao dao.LLMRecordDAO
}

func NewLLMLogRepo(logDao dao.LLMRecordDAO) LLMLogRepo {
	return &llmLogRepo{
		logDao: logDao,
	}
}

func (g *llmLogRepo) SaveLog(ctx context.Context, l domain.LLMRecord) (int64, error) {
	return g.logDao.Save(ctx, g.toEntity(l))
}

func (g *llmLogRepo) FindByTid(ctx context.Context, tid string) (domain.LLMRecord, error) {
	r, err := g.logDao.FindByTid(ctx, tid)
	if err != nil {
		return domain.LLMRecord{}, err
	}
	return domain.LLMRecord{
		Id:             r.Id,
		Tid:            r.Tid,
		Uid:            r.Uid,
		Biz:            r.Biz,
		Tokens:         r.Tokens,
		Amount:         r.Amount,
		Input:          r.Input.Val,
		Status:         domain.RecordStatus(r.Status),
		PromptTemplate: r.PromptTemplate.String,
		Answer:         r.Answer.String,
		Ctime:          r.Ctime,
		Utime:          r.Utime,
	}, nil
}

func (g *llmLogRepo) toEntity(r domain.LLMRecord) dao.LLMRecord {
	return dao.LLMRecord{
		Id:     r.Id,
		Tid:    r.Tid,
		Uid:    r.Uid,
		Biz:    r.Biz,
		Tokens: r.Tokens,
		Amount: r.Amount,
		Input: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   r.Input,
		},
		Status:         r.Status.ToUint8(),
		PromptTemplate: sqlx.NewNullString(r.PromptTemplate),
		Answer:         sqlx.NewNullString(r.Answer),
	}
}
