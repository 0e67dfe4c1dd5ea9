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
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/ecodeclub/careerlens/internal/ai"
	aimocks "github.com/ecodeclub/careerlens/internal/ai/mocks"
	"github.com/ecodeclub/careerlens/internal/resume"
	"github.com/ecodeclub/careerlens/internal/resume/internal/errs"
	"github.com/ecodeclub/careerlens/internal/resume/internal/integration/startup"
	"github.com/ecodeclub/careerlens/internal/resume/internal/repository/dao"
	"github.com/ecodeclub/careerlens/internal/resume/internal/web"
	"github.com/ecodeclub/careerlens/internal/storage"
	storagemocks "github.com/ecodeclub/careerlens/internal/storage/mocks"
	"github.com/ecodeclub/careerlens/internal/test"
	testioc "github.com/ecodeclub/careerlens/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
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

const uid = 123

const insightsAnswer = "```json\n" + `{"skills":["Go","MySQL"],"experienceYears":4,"summary":"Backend engineer",
"workExperience":[{"company":"Acme","designation":"SDE","duration":"2020 – 2024","summary":"APIs"}]}` + "\n```"

type HandlerTestSuite struct {
	suite.Suite
	db *egorm.Component
}

func TestResumeHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	resume.InitResumeDAO(s.db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("DELETE FROM resumes").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) newServer(st storage.Storage, llm ai.LLMService, role string) *egin.Component {
	module, err := startup.InitModule(s.db, testioc.InitMQ(), st, llm)
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"role": role},
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	return server
}

func (s *HandlerTestSuite) newResume(uid int64, text string) dao.Resume {
	r := dao.Resume{
		Uid:         uid,
		ObjectKey:   "resumes/123/old.pdf",
		FileName:    "old.pdf",
		ContentType: "application/pdf",
		TextContent: text,
		ParseStatus: "success",
		Skills:      sqlx.JsonColumn[[]string]{Valid: true, Val: []string{}},
		Ctime:       1,
		Utime:       1,
	}
	err := s.db.Create(&r).Error
	require.NoError(s.T(), err)
	return r
}

func (s *HandlerTestSuite) TestUpload() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		mock     func(ctrl *gomock.Controller) storage.Storage
		role     string
		filename string
		data     []byte

		wantHTTPCode int
		wantCode     int
		wantStatus   string
		after        func(t *testing.T)
	}{
		{
			name: "上传 docx 成功",
			mock: func(ctrl *gomock.Controller) storage.Storage {
				st := storagemocks.NewMockStorage(ctrl)
				st.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, key, contentType string, data []byte) error {
						assert.True(s.T(), strings.HasPrefix(key, "resumes/123/"))
						assert.True(s.T(), strings.HasSuffix(key, ".docx"))
						return nil
					})
				st.EXPECT().URL(gomock.Any()).DoAndReturn(func(key string) string {
					return "https://cdn.example.com/" + key
				})
				return st
			},
			role:         "applicant",
			filename:     "cv.docx",
			data:         newDocx(s.T(), "John Doe", "• Go developer"),
			wantHTTPCode: http.StatusOK,
			wantStatus:   "success",
			after: func(t *testing.T) {
				var r dao.Resume
				err := s.db.Where("uid = ?", uid).First(&r).Error
				require.NoError(t, err)
				assert.Equal(t, "success", r.ParseStatus)
				assert.Contains(t, r.TextContent, "John Doe")
				assert.Contains(t, r.TextContent, "- Go developer")
				assert.True(t, r.ParsedAt > 0)
				assert.Equal(t, int64(0), r.AnalyzedAt)
			},
		},
		{
			name: "解析失败依旧保存",
			mock: func(ctrl *gomock.Controller) storage.Storage {
				st := storagemocks.NewMockStorage(ctrl)
				st.EXPECT().Put(gomock.Any(), gomock.Any(), "application/pdf", gomock.Any()).Return(nil)
				st.EXPECT().URL(gomock.Any()).Return("https://cdn.example.com/cv.pdf")
				return st
			},
			role:         "applicant",
			filename:     "cv.pdf",
			data:         []byte("definitely not a pdf"),
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.ParsingFailed.Code,
			wantStatus:   "failed",
			after: func(t *testing.T) {
				var r dao.Resume
				err := s.db.Where("uid = ?", uid).First(&r).Error
				require.NoError(t, err)
				assert.Equal(t, "failed", r.ParseStatus)
				assert.Empty(t, r.TextContent)
			},
		},
		{
			name: "不支持的文件类型",
			mock: func(ctrl *gomock.Controller) storage.Storage {
				return storagemocks.NewMockStorage(ctrl)
			},
			role:         "applicant",
			filename:     "cv.txt",
			data:         []byte("hello"),
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.UnsupportedFileType.Code,
			after:        s.assertNoResume,
		},
		{
			name: "已经有简历了",
			before: func(t *testing.T) {
				s.newResume(uid, "old")
			},
			mock: func(ctrl *gomock.Controller) storage.Storage {
				return storagemocks.NewMockStorage(ctrl)
			},
			role:         "applicant",
			filename:     "cv.pdf",
			data:         []byte("%PDF-1.4"),
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.ResumeExists.Code,
			after:        func(t *testing.T) {},
		},
		{
			name: "存储失败",
			mock: func(ctrl *gomock.Controller) storage.Storage {
				st := storagemocks.NewMockStorage(ctrl)
				st.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("mock s3 error"))
				return st
			},
			role:         "applicant",
			filename:     "cv.pdf",
			data:         []byte("%PDF-1.4"),
			wantHTTPCode: http.StatusInternalServerError,
			wantCode:     errs.SystemError.Code,
			after:        s.assertNoResume,
		},
		{
			name: "没有文件",
			mock: func(ctrl *gomock.Controller) storage.Storage {
				return storagemocks.NewMockStorage(ctrl)
			},
			role:         "applicant",
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.InvalidFile.Code,
			after:        s.assertNoResume,
		},
		{
			name: "招聘者不能上传",
			mock: func(ctrl *gomock.Controller) storage.Storage {
				return storagemocks.NewMockStorage(ctrl)
			},
			role:         "recruiter",
			filename:     "cv.pdf",
			data:         []byte("%PDF-1.4"),
			wantHTTPCode: http.StatusForbidden,
			after:        s.assertNoResume,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			defer s.TearDownTest()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			if tc.before != nil {
				tc.before(t)
			}
			server := s.newServer(tc.mock(ctrl), aimocks.NewMockService(ctrl), tc.role)

			req := newUploadRequest(t, tc.filename, tc.data)
			recorder := test.NewJSONResponseRecorder[web.Resume]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantHTTPCode, recorder.Code)
			if tc.wantHTTPCode != http.StatusForbidden {
				res := recorder.MustScan()
				assert.Equal(t, tc.wantCode, res.Code)
				assert.Equal(t, tc.wantStatus, res.Data.ParseStatus)
			}
			tc.after(t)
		})
	}
}

func (s *HandlerTestSuite) TestMine() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := storagemocks.NewMockStorage(ctrl)
	st.EXPECT().URL("resumes/123/old.pdf").Return("https://cdn.example.com/resumes/123/old.pdf")
	server := s.newServer(st, aimocks.NewMockService(ctrl), "applicant")

	req, err := http.NewRequest(http.MethodGet, "/resume/mine", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Resume]()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, errs.ResumeNotFound.Code, recorder.MustScan().Code)

	r := s.newResume(uid, "text")
	recorder = test.NewJSONResponseRecorder[web.Resume]()
	server.ServeHTTP(recorder, req)
	res := recorder.MustScan()
	assert.Equal(t, 0, res.Code)
	assert.Equal(t, r.Id, res.Data.Id)
	assert.Equal(t, "https://cdn.example.com/resumes/123/old.pdf", res.Data.FileURL)
	assert.Equal(t, []string{}, res.Data.Skills)
}

func (s *HandlerTestSuite) TestDelete() {
	testCases := []struct {
		name   string
		before func(t *testing.T) int64
		mock   func(ctrl *gomock.Controller) storage.Storage

		wantHTTPCode int
		wantCode     int
		wantLeft     int64
	}{
		{
			name: "删除自己的简历",
			before: func(t *testing.T) int64 {
				return s.newResume(uid, "text").Id
			},
			mock: func(ctrl *gomock.Controller) storage.Storage {
				st := storagemocks.NewMockStorage(ctrl)
				st.EXPECT().Delete(gomock.Any(), "resumes/123/old.pdf").Return(nil)
				return st
			},
			wantLeft: 0,
		},
		{
			name: "别人的简历",
			before: func(t *testing.T) int64 {
				return s.newResume(456, "text").Id
			},
			mock: func(ctrl *gomock.Controller) storage.Storage {
				return storagemocks.NewMockStorage(ctrl)
			},
			wantCode: errs.PermissionDenied.Code,
			wantLeft: 1,
		},
		{
			name: "简历不存在",
			before: func(t *testing.T) int64 {
				return 10000
			},
			mock: func(ctrl *gomock.Controller) storage.Storage {
				return storagemocks.NewMockStorage(ctrl)
			},
			wantCode: errs.ResumeNotFound.Code,
		},
		{
			name: "删除文件失败",
			before: func(t *testing.T) int64 {
				return s.newResume(uid, "text").Id
			},
			mock: func(ctrl *gomock.Controller) storage.Storage {
				st := storagemocks.NewMockStorage(ctrl)
				st.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("mock s3 error"))
				return st
			},
			wantLeft: 0,
		},
		{
			name: "先删记录再删文件",
			before: func(t *testing.T) int64 {
				return s.newResume(uid, "text").Id
			},
			mock: func(ctrl *gomock.Controller) storage.Storage {
				st := storagemocks.NewMockStorage(ctrl)
				st.EXPECT().Delete(gomock.Any(), "resumes/123/old.pdf").
					DoAndReturn(func(ctx context.Context, key string) error {
						var cnt int64
						err := s.db.Model(&dao.Resume{}).Count(&cnt).Error
						require.NoError(s.T(), err)
						assert.Equal(s.T(), int64(0), cnt)
						return nil
					})
				return st
			},
			wantLeft: 0,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			defer s.TearDownTest()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			id := tc.before(t)
			server := s.newServer(tc.mock(ctrl), aimocks.NewMockService(ctrl), "applicant")

			req, err := http.NewRequest(http.MethodPost, "/resume/delete", iox.NewJSONReader(web.IdReq{Id: id}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			server.ServeHTTP(recorder, req)
			wantHTTPCode := tc.wantHTTPCode
			if wantHTTPCode == 0 {
				wantHTTPCode = http.StatusOK
			}
			require.Equal(t, wantHTTPCode, recorder.Code)
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)

			var cnt int64
			err = s.db.Model(&dao.Resume{}).Count(&cnt).Error
			require.NoError(t, err)
			assert.Equal(t, tc.wantLeft, cnt)
		})
	}
}

func (s *HandlerTestSuite) TestAnalyze() {
	testCases := []struct {
		name   string
		before func(t *testing.T)
		mock   func(ctrl *gomock.Controller) ai.LLMService

		wantCode   int
		wantSkills []string
		after      func(t *testing.T)
	}{
		{
			name: "分析成功",
			before: func(t *testing.T) {
				s.newResume(uid, "John Doe Go MySQL")
			},
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				llm := aimocks.NewMockService(ctrl)
				llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
						assert.Equal(s.T(), ai.BizResumeInsights, req.Biz)
						assert.Equal(s.T(), int64(uid), req.Uid)
						assert.NotEmpty(s.T(), req.Tid)
						assert.Equal(s.T(), []string{"John Doe Go MySQL"}, req.Input)
						return ai.LLMResponse{Answer: insightsAnswer}, nil
					})
				return llm
			},
			wantSkills: []string{"Go", "MySQL"},
			after: func(t *testing.T) {
				var r dao.Resume
				err := s.db.Where("uid = ?", uid).First(&r).Error
				require.NoError(t, err)
				assert.Equal(t, []string{"Go", "MySQL"}, r.Skills.Val)
				assert.Equal(t, float64(4), r.ExperienceYears)
				assert.Equal(t, "Backend engineer", r.Summary)
				assert.Equal(t, []dao.WorkExperience{
					{Company: "Acme", Role: "SDE", StartDate: "2020", EndDate: "2024", Description: "APIs"},
				}, r.WorkExperience.Val)
				assert.True(t, r.AnalyzedAt > 0)
			},
		},
		{
			name: "第一次回答不是 JSON，重试成功",
			before: func(t *testing.T) {
				s.newResume(uid, "resume text")
			},
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				llm := aimocks.NewMockService(ctrl)
				first := llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: "Sorry, I cannot help"}, nil)
				llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: insightsAnswer}, nil).After(first.Call)
				return llm
			},
			wantSkills: []string{"Go", "MySQL"},
			after:      func(t *testing.T) {},
		},
		{
			name: "两次回答都不是 JSON",
			before: func(t *testing.T) {
				s.newResume(uid, "resume text")
			},
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				llm := aimocks.NewMockService(ctrl)
				llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{Answer: "no json here"}, nil).Times(2)
				return llm
			},
			wantCode: errs.AnalysisFailed.Code,
			after:    s.assertNotAnalyzed,
		},
		{
			name: "大模型调用失败不重试",
			before: func(t *testing.T) {
				s.newResume(uid, "resume text")
			},
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				llm := aimocks.NewMockService(ctrl)
				llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
					Return(ai.LLMResponse{}, errors.New("mock timeout"))
				return llm
			},
			wantCode: errs.AnalysisFailed.Code,
			after:    s.assertNotAnalyzed,
		},
		{
			name: "已经分析过的不再调用大模型",
			before: func(t *testing.T) {
				r := s.newResume(uid, "resume text")
				err := s.db.Model(&dao.Resume{}).Where("id = ?", r.Id).Updates(map[string]any{
					"skills":      sqlx.JsonColumn[[]string]{Valid: true, Val: []string{"rust"}},
					"analyzed_at": 100,
				}).Error
				require.NoError(t, err)
			},
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				return aimocks.NewMockService(ctrl)
			},
			wantSkills: []string{"rust"},
			after:      func(t *testing.T) {},
		},
		{
			name: "简历没有文本",
			before: func(t *testing.T) {
				s.newResume(uid, "   ")
			},
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				return aimocks.NewMockService(ctrl)
			},
			wantCode: errs.EmptyResumeText.Code,
			after:    s.assertNotAnalyzed,
		},
		{
			name: "没有简历",
			mock: func(ctrl *gomock.Controller) ai.LLMService {
				return aimocks.NewMockService(ctrl)
			},
			wantCode: errs.ResumeNotFound.Code,
			after:    s.assertNoResume,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			defer s.TearDownTest()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			if tc.before != nil {
				tc.before(t)
			}
			st := storagemocks.NewMockStorage(ctrl)
			st.EXPECT().URL(gomock.Any()).Return("https://cdn.example.com/x").AnyTimes()
			server := s.newServer(st, tc.mock(ctrl), "applicant")

			req, err := http.NewRequest(http.MethodPost, "/resume/analyze", nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Resume]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode == 0 {
				assert.Equal(t, tc.wantSkills, res.Data.Skills)
			}
			tc.after(t)
		})
	}
}

func (s *HandlerTestSuite) TestAnalyzeAgainAfterNoSkills() {
	t := s.T()
	defer s.TearDownTest()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	llm := aimocks.NewMockService(ctrl)
	first := llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		Return(ai.LLMResponse{Answer: `{"skills":[],"summary":"nothing"}`}, nil)
	llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		Return(ai.LLMResponse{Answer: insightsAnswer}, nil).After(first.Call)
	st := storagemocks.NewMockStorage(ctrl)
	st.EXPECT().URL(gomock.Any()).Return("https://cdn.example.com/x").AnyTimes()
	module, err := startup.InitModule(s.db, testioc.InitMQ(), st, llm)
	require.NoError(t, err)
	s.newResume(uid, "John Doe Go MySQL")

	r, err := module.Svc.Analyze(context.Background(), uid)
	require.NoError(t, err)
	assert.Empty(t, r.Skills)
	assert.Equal(t, "nothing", r.Summary)

	// 上一次没有提取到技能，再次分析的结果要写进去
	r, err = module.Svc.Analyze(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "MySQL"}, r.Skills)

	var entity dao.Resume
	err = s.db.Where("uid = ?", uid).First(&entity).Error
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "MySQL"}, entity.Skills.Val)
	assert.Equal(t, 2, entity.SkillCount)
	assert.Equal(t, "Backend engineer", entity.Summary)

	// 已经有技能了，不会再调用大模型
	r, err = module.Svc.Analyze(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "MySQL"}, r.Skills)
}

func (s *HandlerTestSuite) TestProfile() {
	t := s.T()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	module, err := startup.InitModule(s.db, testioc.InitMQ(),
		storagemocks.NewMockStorage(ctrl), aimocks.NewMockService(ctrl))
	require.NoError(t, err)
	r := s.newResume(uid, "text")
	err = s.db.Model(&dao.Resume{}).Where("id = ?", r.Id).Updates(map[string]any{
		"skills":           sqlx.JsonColumn[[]string]{Valid: true, Val: []string{"go"}},
		"experience_years": 2.5,
		"analyzed_at":      100,
	}).Error
	require.NoError(t, err)

	profile, err := module.Svc.Profile(context.Background(), uid, r.Id)
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, profile.Skills)
	assert.Equal(t, 2.5, profile.ExperienceYears)

	_, err = module.Svc.Profile(context.Background(), 456, r.Id)
	assert.ErrorIs(t, err, resume.ErrPermissionDenied)
	_, err = module.Svc.Profile(context.Background(), uid, r.Id+1000)
	assert.ErrorIs(t, err, resume.ErrResumeNotFound)
	s.TearDownTest()
}

func (s *HandlerTestSuite) assertNoResume(t *testing.T) {
	var cnt int64
	err := s.db.Model(&dao.Resume{}).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)
}

func (s *HandlerTestSuite) assertNotAnalyzed(t *testing.T) {
	var r dao.Resume
	err := s.db.Where("uid = ?", uid).First(&r).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), r.AnalyzedAt)
	assert.Empty(t, r.Skills.Val)
}

func newUploadRequest(t *testing.T, filename string, data []byte) *http.Request {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	req, err := http.NewRequest(http.MethodPost, "/resume/upload", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func newDocx(t *testing.T, paragraphs ...string) []byte {
	var sb strings.Builder
	for _, p := range paragraphs {
		sb.WriteString("<w:p><w:r><w:t>" + p + "</w:t></w:r></w:p>")
	}
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	files := map[string]string{
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8"?>` +
			`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			sb.String() + `</w:body></w:document>`,
	}
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}
