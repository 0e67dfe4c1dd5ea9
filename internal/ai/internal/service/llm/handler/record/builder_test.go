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

package record

import (
	"context"
	"strings"
	"testing"

	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	records []domain.LLMRecord
	ctxErr  error
}

func (f *fakeRepo) SaveLog(ctx context.Context, l domain.LLMRecord) (int64, error) {
	f.ctxErr = ctx.Err()
	f.records = append(f.records, l)
	return int64(len(f.records)), nil
}

func (f *fakeRepo) FindByTid(ctx context.Context, tid string) (domain.LLMRecord, error) {
	return domain.LLMRecord{}, nil
}

func TestHandlerBuilder_Next(t *testing.T) {
	testCases := []struct {
		name       string
		input      []string
		respErr    error
		cancel     bool
		wantRecord domain.LLMRecord
	}{
		{
			name:  "成功",
			input: []string{"go, mysql"},
			wantRecord: domain.LLMRecord{
				Tid: "tid-1", Uid: 1, Biz: domain.BizMatchFeedback,
				Input:  []string{"go, mysql"},
				Status: domain.RecordStatusSuccess,
				Tokens: 10, Amount: 2, Answer: "good fit",
			},
		},
		{
			name:    "失败",
			input:   []string{"go"},
			respErr: assert.AnError,
			wantRecord: domain.LLMRecord{
				Tid: "tid-1", Uid: 1, Biz: domain.BizMatchFeedback,
				Input:  []string{"go"},
				Status: domain.RecordStatusFailed,
			},
		},
		{
			name:   "输入太长被截断，调用方取消了也要保存",
			input:  []string{strings.Repeat("简", maxRecordedInput+10)},
			cancel: true,
			wantRecord: domain.LLMRecord{
				Tid: "tid-1", Uid: 1, Biz: domain.BizMatchFeedback,
				Input:  []string{strings.Repeat("简", maxRecordedInput)},
				Status: domain.RecordStatusSuccess,
				Tokens: 10, Amount: 2, Answer: "good fit",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			hdl := NewHandler(repo).Next(handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
				if tc.cancel {
					cancel()
				}
				if tc.respErr != nil {
					return domain.LLMResponse{}, tc.respErr
				}
				return domain.LLMResponse{Tokens: 10, Amount: 2, Answer: "good fit"}, nil
			}))
			_, err := hdl.Handle(ctx, domain.LLMRequest{Tid: "tid-1", Uid: 1, Biz: domain.BizMatchFeedback, Input: tc.input})
			assert.ErrorIs(t, err, tc.respErr)
			require.Len(t, repo.records, 1)
			assert.Equal(t, tc.wantRecord, repo.records[0])
			assert.NoError(t, repo.ctxErr)
		})
	}
}
