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

package integration

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/ecodeclub/careerlens/internal/ai"
	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"github.com/ecodeclub/careerlens/internal/ai/internal/integration/startup"
	cachemocks "github.com/ecodeclub/careerlens/internal/ai/internal/repository/cache/mocks"
	"github.com/ecodeclub/careerlens/internal/ai/internal/repository/dao"
	hdlmocks "github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler/mocks"
	"github.com/ecodeclub/careerlens/internal/ai/internal/web"
	"github.com/ecodeclub/careerlens/internal/test"
	testioc "github.com/ecodeclub/careerlens/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LLMServiceSuite struct {
	suite.Suite
	db *egorm.Component
}

func TestLLMService(t *testing.T) {
	suite.Run(t, new(LLMServiceSuite))
}

func (s *LLMServiceSuite) SetupSuite() {
	s.db = testioc.InitDB()
	ai.InitTableOnce(s.db)
}

func (s *LLMServiceSuite) TearDownTest() {
	err := s.db.Exec("DELETE FROM ai_llm_records").Error
	require.NoError(s.T(), err)
	err = s.db.Where("biz NOT IN ?", []string{domain.BizResumeInsights, domain.BizMatchFeedback}).
		Delete(&dao.BizConfig{}).Error
	require.NoError(s.T(), err)
}

func (s *LLMServiceSuite) TestSeededConfigs() {
	t := s.T()
	var cfgs []dao.BizConfig
	err := s.db.Order("biz").Find(&cfgs).Error
	require.NoError(t, err)
	require.Len(t, cfgs, 2)
	assert.Equal(t, domain.BizMatchFeedback, cfgs[0].Biz)
	assert.Equal(t, domain.BizResumeInsights, cfgs[1].Biz)
	assert.True(t, strings.Contains(cfgs[1].PromptTemplate, "%s"))

	// 再初始化一次不会覆盖已有的配置
	err = s.db.Model(&dao.BizConfig{}).Where("biz = ?", domain.BizMatchFeedback).
		Update("model", "custom-model").Error
	require.NoError(t, err)
	err = dao.InitTables(s.db)
	require.NoError(t, err)
	var cfg dao.BizConfig
	err = s.db.Where("biz = ?", domain.BizMatchFeedback).First(&cfg).Error
	require.NoError(t, err)
	assert.Equal(t, "custom-model", cfg.Model)
	err = s.db.Model(&dao.BizConfig{}).Where("biz = ?", domain.BizMatchFeedback).
		Update("model", "gpt-4o-mini").Error
	require.NoError(t, err)
}

func (s *LLMServiceSuite) TestInvoke() {
	testCases := []struct {
		name   string
		req    domain.LLMRequest
		before func(t *testing.T, ctrl *gomock.Controller) (*cachemocks.MockConfigCache, *hdlmocks.MockHandler)

		wantErr    error
		wantResp   domain.LLMResponse
		wantRecord bool
		wantStatus domain.RecordStatus
	}{
		{
			name: "缓存未命中，读取数据库配置",
			req: domain.LLMRequest{
				Biz:   domain.BizMatchFeedback,
				Uid:   123,
				Tid:   "tid-1",
				Input: []string{"go", "kafka", "1"},
			},
			before: func(t *testing.T, ctrl *gomock.Controller) (*cachemocks.MockConfigCache, *hdlmocks.MockHandler) {
				c := cachemocks.NewMockConfigCache(ctrl)
				c.EXPECT().Get(gomock.Any(), domain.BizMatchFeedback).
					Return(domain.BizConfig{}, errors.New("cache miss"))
				c.EXPECT().Set(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, cfg domain.BizConfig) error {
						assert.Equal(t, domain.BizMatchFeedback, cfg.Biz)
						return nil
					})
				hdl := hdlmocks.NewMockHandler(ctrl)
				hdl.EXPECT().Handle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
						prompt := req.Prompt()
						assert.Contains(t, prompt, "Matched skills: go")
						assert.Contains(t, prompt, "Missing skills: kafka")
						assert.Equal(t, "gpt-4o-mini", req.Config.Model)
						return domain.LLMResponse{Tokens: 100, Answer: "Great fit."}, nil
					})
				return c, hdl
			},
			wantResp:   domain.LLMResponse{Tokens: 100, Answer: "Great fit."},
			wantRecord: true,
			wantStatus: domain.RecordStatusSuccess,
		},
		{
			name: "缓存命中",
			req: domain.LLMRequest{
				Biz:   "cached",
				Uid:   123,
				Tid:   "tid-2",
				Input: []string{"world"},
			},
			before: func(t *testing.T, ctrl *gomock.Controller) (*cachemocks.MockConfigCache, *hdlmocks.MockHandler) {
				c := cachemocks.NewMockConfigCache(ctrl)
				c.EXPECT().Get(gomock.Any(), "cached").
					Return(domain.BizConfig{Biz: "cached", PromptTemplate: "hello %s", Price: 10}, nil)
				hdl := hdlmocks.NewMockHandler(ctrl)
				hdl.EXPECT().Handle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
						assert.Equal(t, "hello world", req.Prompt())
						return domain.LLMResponse{Tokens: 1500, Amount: req.Config.Amount(1500), Answer: "hi"}, nil
					})
				return c, hdl
			},
			wantResp:   domain.LLMResponse{Tokens: 1500, Amount: 15, Answer: "hi"},
			wantRecord: true,
			wantStatus: domain.RecordStatusSuccess,
		},
		{
			name: "平台调用失败",
			req: domain.LLMRequest{
				Biz:   "cached",
				Uid:   123,
				Tid:   "tid-3",
				Input: []string{"world"},
			},
			before: func(t *testing.T, ctrl *gomock.Controller) (*cachemocks.MockConfigCache, *hdlmocks.MockHandler) {
				c := cachemocks.NewMockConfigCache(ctrl)
				c.EXPECT().Get(gomock.Any(), "cached").
					Return(domain.BizConfig{Biz: "cached", PromptTemplate: "hello %s"}, nil)
				hdl := hdlmocks.NewMockHandler(ctrl)
				hdl.EXPECT().Handle(gomock.Any(), gomock.Any()).
					Return(domain.LLMResponse{}, errors.New("mock platform error"))
				return c, hdl
			},
			wantErr:    errors.New("mock platform error"),
			wantRecord: true,
			wantStatus: domain.RecordStatusFailed,
		},
		{
			name: "输入过长",
			req: domain.LLMRequest{
				Biz:   "short",
				Uid:   123,
				Tid:   "tid-4",
				Input: []string{"这段输入超过了五个字"},
			},
			before: func(t *testing.T, ctrl *gomock.Controller) (*cachemocks.MockConfigCache, *hdlmocks.MockHandler) {
				c := cachemocks.NewMockConfigCache(ctrl)
				c.EXPECT().Get(gomock.Any(), "short").
					Return(domain.BizConfig{Biz: "short", PromptTemplate: "%s", MaxInput: 5}, nil)
				return c, hdlmocks.NewMockHandler(ctrl)
			},
			wantErr: ai.ErrInputTooLong,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c, hdl := tc.before(t, ctrl)
			mou, err := startup.InitModule(s.db, c, hdl)
			require.NoError(t, err)
			resp, err := mou.Svc.Invoke(context.Background(), tc.req)
			if tc.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tc.wantErr, ai.ErrInputTooLong) {
					assert.ErrorIs(t, err, ai.ErrInputTooLong)
				} else {
					assert.Equal(t, tc.wantErr.Error(), err.Error())
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantResp, resp)
			}
			var record dao.LLMRecord
			err = s.db.Where("tid = ?", tc.req.Tid).First(&record).Error
			if !tc.wantRecord {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus.ToUint8(), record.Status)
			assert.Equal(t, tc.req.Uid, record.Uid)
			assert.Equal(t, tc.req.Input, record.Input.Val)
			assert.Equal(t, tc.wantResp.Answer, record.Answer.String)
			assert.Equal(t, tc.wantResp.Tokens, record.Tokens)
		})
	}
}

func (s *LLMServiceSuite) TestAdminConfig() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	c := cachemocks.NewMockConfigCache(ctrl)
	c.EXPECT().Delete(gomock.Any(), "new_biz").Return(nil).Times(2)
	mou, err := startup.InitModule(s.db, c, hdlmocks.NewMockHandler(ctrl))
	require.NoError(t, err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid:  1,
			Data: map[string]string{"role": "admin"},
		}))
	})
	mou.AdminHandler.PrivateRoutes(server.Engine)

	save := func(cfg web.Config) int64 {
		req, err := http.NewRequest(http.MethodPost, "/ai/config/save",
			iox.NewJSONReader(web.ConfigRequest{Config: cfg}))
		require.NoError(t, err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[int64]()
		server.ServeHTTP(recorder, req)
		require.Equal(t, 200, recorder.Code)
		return recorder.MustScan().Data
	}
	id := save(web.Config{Biz: "new_biz", Model: "m1", PromptTemplate: "%s", Price: 3})
	assert.True(t, id > 0)
	// 同一个 biz 再保存一次就是更新
	id2 := save(web.Config{Biz: "new_biz", Model: "m2", PromptTemplate: "%s!", Price: 4})
	assert.Equal(t, id, id2)

	req, err := http.NewRequest(http.MethodPost, "/ai/config/detail",
		iox.NewJSONReader(web.ConfigInfoReq{Id: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Config]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	detail := recorder.MustScan().Data
	assert.Equal(t, "m2", detail.Model)
	assert.Equal(t, "%s!", detail.PromptTemplate)
	assert.Equal(t, int64(4), detail.Price)

	req, err = http.NewRequest(http.MethodGet, "/ai/config/list", nil)
	require.NoError(t, err)
	listRecorder := test.NewJSONResponseRecorder[[]web.Config]()
	server.ServeHTTP(listRecorder, req)
	require.Equal(t, 200, listRecorder.Code)
	assert.Len(t, listRecorder.MustScan().Data, 3)

	req, err = http.NewRequest(http.MethodPost, "/ai/config/detail",
		iox.NewJSONReader(web.ConfigInfoReq{Id: id + 1000}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[web.Config]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 416002, recorder.MustScan().Code)
}

func (s *LLMServiceSuite) TestAdminConfig_Invalid() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mou, err := startup.InitModule(s.db, cachemocks.NewMockConfigCache(ctrl), hdlmocks.NewMockHandler(ctrl))
	require.NoError(t, err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	mou.AdminHandler.PrivateRoutes(server.Engine)
	req, err := http.NewRequest(http.MethodPost, "/ai/config/save",
		iox.NewJSONReader(web.ConfigRequest{Config: web.Config{Biz: "no_model"}}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 416001, recorder.MustScan().Code)
}
