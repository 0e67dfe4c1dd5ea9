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
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/careerlens/internal/application/internal/errs"
	"github.com/ecodeclub/careerlens/internal/application/internal/event"
	"github.com/ecodeclub/careerlens/internal/application/internal/integration/startup"
	"github.com/ecodeclub/careerlens/internal/application/internal/repository/dao"
	"github.com/ecodeclub/careerlens/internal/application/internal/web"
	"github.com/ecodeclub/careerlens/internal/job"
	jobmocks "github.com/ecodeclub/careerlens/internal/job/mocks"
	"github.com/ecodeclub/careerlens/internal/match"
	matchmocks "github.com/ecodeclub/careerlens/internal/match/mocks"
	"github.com/ecodeclub/careerlens/internal/pkg/snowflake"
	"github.com/ecodeclub/careerlens/internal/resume"
	resumemocks "github.com/ecodeclub/careerlens/internal/resume/mocks"
	"github.com/ecodeclub/careerlens/internal/test"
	testioc "github.com/ecodeclub/careerlens/internal/test/ioc"
	"github.com/ecodeclub/careerlens/internal/user"
	usermocks "github.com/ecodeclub/careerlens/internal/user/mocks"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
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

type HandlerTestSuite struct {
	suite.Suite
	db       *egorm.Component
	q        mq.MQ
	consumer mq.Consumer
	sn       snowflake.Generator

	jobSvc    *jobmocks.MockService
	resumeSvc *resumemocks.MockService
	matchSvc  *matchmocks.MockService
	userSvc   *usermocks.MockUserService

	applicant *egin.Component
	recruiter *egin.Component
}

func TestApplicationHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.q = testioc.InitMQ()
	var err error
	s.consumer, err = s.q.Consumer(event.ApplicationStatusEventName, "application_integration_test")
	require.NoError(s.T(), err)
	s.sn, err = snowflake.NewCustomSnowFlake(0, 1)
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
}

// SetupTest 每个测试都用新的 mock，避免预期互相影响
func (s *HandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.jobSvc = jobmocks.NewMockService(ctrl)
	s.resumeSvc = resumemocks.NewMockService(ctrl)
	s.matchSvc = matchmocks.NewMockService(ctrl)
	s.userSvc = usermocks.NewMockUserService(ctrl)
	module, err := startup.InitModule(s.db, s.q, s.jobSvc, s.resumeSvc, s.matchSvc, s.userSvc, s.sn)
	require.NoError(s.T(), err)

	s.applicant = s.newServer("applicant")
	module.Hdl.PrivateRoutes(s.applicant.Engine)
	s.recruiter = s.newServer("recruiter")
	module.Hdl.PrivateRoutes(s.recruiter.Engine)
}

func (s *HandlerTestSuite) newServer(role string) *egin.Component {
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid:  uid,
			Data: map[string]string{"role": role},
		}))
	})
	return server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("DELETE FROM applications").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TearDownSuite() {
	_ = s.consumer.Close()
}

func (s *HandlerTestSuite) TestApply() {
	candidate := match.CandidateProfile{
		Skills:          []string{"Go", "Redis"},
		ExperienceYears: 3,
		Summary:         "backend engineer",
	}
	matchRes := match.MatchResult{
		MatchScore:    50,
		MatchedSkills: []string{"Go"},
		MissingSkills: []string{"MySQL"},
		Summary:       "You match 1 out of 2 required skills.",
		AIFeedback:    "Learn MySQL.",
	}
	testCases := []struct {
		name   string
		server *egin.Component
		before func(t *testing.T)
		req    web.ApplyReq

		wantHTTPCode int
		wantCode     int
		after        func(t *testing.T, res web.Application)
	}{
		{
			name:   "投递成功",
			server: s.applicant,
			before: func(t *testing.T) {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(1)).Return(s.newJob(1, 456, job.StatusPublished), nil)
				s.resumeSvc.EXPECT().Profile(gomock.Any(), int64(uid), int64(11)).Return(candidate, nil)
				s.matchSvc.EXPECT().Evaluate(gomock.Any(), int64(uid), match.JobRequirements{
					Skills:             []string{"Go", "MySQL"},
					MinExperienceYears: 2,
				}, candidate).Return(matchRes)
			},
			req:          web.ApplyReq{JobId: 1, ResumeId: 11},
			wantHTTPCode: http.StatusOK,
			after: func(t *testing.T, res web.Application) {
				assert.True(t, res.Id > 0)
				assert.NotEmpty(t, res.SN)
				assert.Equal(t, "applied", res.Status)
				assert.Equal(t, "Go Developer", res.Job.Title)
				assert.Equal(t, 50, res.Analysis.MatchScore)

				var app dao.Application
				err := s.db.Where("id = ?", res.Id).First(&app).Error
				require.NoError(t, err)
				assert.Equal(t, res.SN, app.SN)
				assert.Equal(t, int64(1), app.JobId)
				assert.Equal(t, int64(uid), app.ApplicantId)
				assert.Equal(t, int64(11), app.ResumeId)
				assert.Equal(t, "applied", app.Status)
				assert.Equal(t, 50, app.MatchScore)
				assert.Equal(t, dao.Analysis{
					MatchedSkills: []string{"Go"},
					MissingSkills: []string{"MySQL"},
					Summary:       "You match 1 out of 2 required skills.",
					AIFeedback:    "Learn MySQL.",
				}, app.Analysis.Val)
				assert.True(t, app.Ctime > 0)
			},
		},
		{
			name:         "没有简历",
			server:       s.applicant,
			before:       func(t *testing.T) {},
			req:          web.ApplyReq{JobId: 1},
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.ResumeRequired.Code,
		},
		{
			name:   "职位不存在",
			server: s.applicant,
			before: func(t *testing.T) {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(job.Job{}, job.ErrJobNotFound)
			},
			req:          web.ApplyReq{JobId: 2, ResumeId: 11},
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.JobNotFound.Code,
		},
		{
			name:   "职位被屏蔽",
			server: s.applicant,
			before: func(t *testing.T) {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(3)).Return(s.newJob(3, 456, job.StatusBlocked), nil)
			},
			req:          web.ApplyReq{JobId: 3, ResumeId: 11},
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.JobNotFound.Code,
		},
		{
			name:   "投递自己的职位",
			server: s.applicant,
			before: func(t *testing.T) {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(4)).Return(s.newJob(4, uid, job.StatusPublished), nil)
			},
			req:          web.ApplyReq{JobId: 4, ResumeId: 11},
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.OwnJob.Code,
		},
		{
			name:   "重复投递",
			server: s.applicant,
			before: func(t *testing.T) {
				s.insert(t, dao.Application{SN: "sn-5", JobId: 5, ApplicantId: uid, ResumeId: 11, Status: "applied"})
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(s.newJob(5, 456, job.StatusPublished), nil)
			},
			req:          web.ApplyReq{JobId: 5, ResumeId: 11},
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.AlreadyApplied.Code,
		},
		{
			name:   "简历不属于自己",
			server: s.applicant,
			before: func(t *testing.T) {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(6)).Return(s.newJob(6, 456, job.StatusPublished), nil)
				s.resumeSvc.EXPECT().Profile(gomock.Any(), int64(uid), int64(12)).
					Return(match.CandidateProfile{}, resume.ErrPermissionDenied)
			},
			req:          web.ApplyReq{JobId: 6, ResumeId: 12},
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.PermissionDenied.Code,
		},
		{
			name:   "简历不存在",
			server: s.applicant,
			before: func(t *testing.T) {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(7)).Return(s.newJob(7, 456, job.StatusPublished), nil)
				s.resumeSvc.EXPECT().Profile(gomock.Any(), int64(uid), int64(13)).
					Return(match.CandidateProfile{}, resume.ErrResumeNotFound)
			},
			req:          web.ApplyReq{JobId: 7, ResumeId: 13},
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.ResumeNotFound.Code,
		},
		{
			name:   "查找职位出错",
			server: s.applicant,
			before: func(t *testing.T) {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(8)).Return(job.Job{}, errors.New("mock db error"))
			},
			req:          web.ApplyReq{JobId: 8, ResumeId: 11},
			wantHTTPCode: http.StatusInternalServerError,
			wantCode:     errs.SystemError.Code,
		},
		{
			name:         "recruiter 不能投递",
			server:       s.recruiter,
			before:       func(t *testing.T) {},
			req:          web.ApplyReq{JobId: 1, ResumeId: 11},
			wantHTTPCode: http.StatusForbidden,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			defer s.TearDownTest()
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost, "/applications/apply", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.Application]()
			tc.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantHTTPCode, recorder.Code)
			if tc.wantHTTPCode == http.StatusForbidden {
				return
			}
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.after != nil {
				tc.after(t, res.Data)
			}
		})
	}
}

func (s *HandlerTestSuite) TestPreview() {
	candidate := match.CandidateProfile{Skills: []string{"Go"}, ExperienceYears: 1}
	testCases := []struct {
		name   string
		before func(t *testing.T)
		jobId  int64

		wantCode int
		wantRes  web.MatchResult
	}{
		{
			name: "预览成功",
			before: func(t *testing.T) {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(1)).Return(s.newJob(1, 456, job.StatusPublished), nil)
				s.resumeSvc.EXPECT().Mine(gomock.Any(), int64(uid)).Return(resume.Resume{Id: 11, Uid: uid}, nil)
				s.resumeSvc.EXPECT().Profile(gomock.Any(), int64(uid), int64(11)).Return(candidate, nil)
				gap := 1.0
				s.matchSvc.EXPECT().Evaluate(gomock.Any(), int64(uid), gomock.Any(), candidate).Return(match.MatchResult{
					MatchScore:    50,
					MatchedSkills: []string{"Go"},
					MissingSkills: []string{"MySQL"},
					ExperienceGap: &gap,
					Summary:       "summary",
					AIFeedback:    "feedback",
				})
			},
			jobId: 1,
			wantRes: web.MatchResult{
				MatchScore:    50,
				MatchedSkills: []string{"Go"},
				MissingSkills: []string{"MySQL"},
				ExperienceGap: func() *float64 { gap := 1.0; return &gap }(),
				Summary:       "summary",
				AIFeedback:    "feedback",
			},
		},
		{
			name: "没有上传简历",
			before: func(t *testing.T) {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(1)).Return(s.newJob(1, 456, job.StatusPublished), nil).AnyTimes()
				s.resumeSvc.EXPECT().Mine(gomock.Any(), int64(uid)).Return(resume.Resume{}, resume.ErrResumeNotFound)
			},
			jobId:    1,
			wantCode: errs.ResumeNotFound.Code,
		},
		{
			name: "职位被屏蔽",
			before: func(t *testing.T) {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(s.newJob(2, 456, job.StatusBlocked), nil)
				s.resumeSvc.EXPECT().Mine(gomock.Any(), int64(uid)).Return(resume.Resume{Id: 11, Uid: uid}, nil).AnyTimes()
				s.resumeSvc.EXPECT().Profile(gomock.Any(), int64(uid), int64(11)).Return(candidate, nil).AnyTimes()
			},
			jobId:    2,
			wantCode: errs.JobNotFound.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost, "/applications/preview",
				iox.NewJSONReader(web.JobIdReq{JobId: tc.jobId}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.MatchResult]()
			s.applicant.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantRes, res.Data)

			// 预览不会保存
			var cnt int64
			err = s.db.Model(&dao.Application{}).Count(&cnt).Error
			require.NoError(t, err)
			assert.Equal(t, int64(0), cnt)
		})
	}
}

func (s *HandlerTestSuite) TestMyApplications() {
	t := s.T()
	// 没有投递过的时候不会去查职位
	res := s.myApplications(t)
	assert.Len(t, res.Applications, 0)

	s.insert(t, dao.Application{SN: "sn-1", JobId: 1, ApplicantId: uid, ResumeId: 11, Status: "applied", MatchScore: 80, Ctime: 1})
	s.insert(t, dao.Application{SN: "sn-2", JobId: 2, ApplicantId: uid, ResumeId: 11, Status: "rejected", MatchScore: 30, Ctime: 3})
	s.insert(t, dao.Application{SN: "sn-3", JobId: 1, ApplicantId: 456, ResumeId: 12, Status: "applied", Ctime: 2})
	// 职位 2 已经被删除了
	s.jobSvc.EXPECT().FindByIds(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, ids []int64) (map[int64]job.Job, error) {
		assert.ElementsMatch(t, []int64{1, 2}, ids)
		return map[int64]job.Job{1: s.newJob(1, 456, job.StatusPublished)}, nil
	})

	res = s.myApplications(t)
	require.Len(t, res.Applications, 2)
	assert.Equal(t, "sn-2", res.Applications[0].SN)
	assert.Equal(t, "rejected", res.Applications[0].Status)
	assert.Equal(t, web.Job{Id: 2}, res.Applications[0].Job)
	assert.Equal(t, "sn-1", res.Applications[1].SN)
	assert.Equal(t, 80, res.Applications[1].Analysis.MatchScore)
	assert.Equal(t, "Go Developer", res.Applications[1].Job.Title)
	assert.Nil(t, res.Applications[1].Applicant)
	s.TearDownTest()
}

func (s *HandlerTestSuite) myApplications(t *testing.T) web.ApplicationList {
	req, err := http.NewRequest(http.MethodGet, "/applications/mine", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ApplicationList]()
	s.applicant.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan().Data
}

func (s *HandlerTestSuite) TestApplicants() {
	testCases := []struct {
		name   string
		before func(t *testing.T)
		jobId  int64

		wantCode int
		after    func(t *testing.T, res web.ApplicantList)
	}{
		{
			name: "按照分数排序",
			before: func(t *testing.T) {
				s.insert(t, dao.Application{SN: "sn-1", JobId: 1, ApplicantId: 1001, ResumeId: 1, Status: "applied", MatchScore: 60, Ctime: 2})
				s.insert(t, dao.Application{SN: "sn-2", JobId: 1, ApplicantId: 1002, ResumeId: 2, Status: "applied", MatchScore: 90, Ctime: 3})
				s.insert(t, dao.Application{SN: "sn-3", JobId: 1, ApplicantId: 1003, ResumeId: 3, Status: "rejected", MatchScore: 60, Ctime: 1})
				s.insert(t, dao.Application{SN: "sn-4", JobId: 2, ApplicantId: 1001, ResumeId: 1, Status: "applied", MatchScore: 99, Ctime: 1})
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(1)).Return(s.newJob(1, uid, job.StatusPublished), nil)
				s.userSvc.EXPECT().FindByIds(gomock.Any(), gomock.Any()).Return(map[int64]user.User{
					1001: {Id: 1001, Name: "Tom", Email: "tom@example.com"},
					1002: {Id: 1002, Name: "Jerry", Email: "jerry@example.com", Profile: user.Profile{Headline: "Gopher"}},
					1003: {Id: 1003, Name: "Spike", Email: "spike@example.com"},
				}, nil)
			},
			jobId: 1,
			after: func(t *testing.T, res web.ApplicantList) {
				assert.Equal(t, "Go Developer", res.Job.Title)
				require.Len(t, res.Applicants, 3)
				assert.Equal(t, "sn-2", res.Applicants[0].SN)
				assert.Equal(t, &web.Applicant{
					Id:       1002,
					Name:     "Jerry",
					Email:    "jerry@example.com",
					Headline: "Gopher",
				}, res.Applicants[0].Applicant)
				assert.Equal(t, "sn-3", res.Applicants[1].SN)
				assert.Equal(t, "Spike", res.Applicants[1].Applicant.Name)
				assert.Equal(t, "sn-1", res.Applicants[2].SN)
				assert.Equal(t, "Tom", res.Applicants[2].Applicant.Name)
			},
		},
		{
			name: "没有人投递",
			before: func(t *testing.T) {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(1)).Return(s.newJob(1, uid, job.StatusPublished), nil)
			},
			jobId: 1,
			after: func(t *testing.T, res web.ApplicantList) {
				assert.Equal(t, int64(1), res.Job.Id)
				assert.Len(t, res.Applicants, 0)
			},
		},
		{
			name: "不是自己的职位",
			before: func(t *testing.T) {
				s.insert(t, dao.Application{SN: "sn-1", JobId: 3, ApplicantId: 1001, ResumeId: 1, Status: "applied"})
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(3)).Return(s.newJob(3, 456, job.StatusPublished), nil)
			},
			jobId:    3,
			wantCode: errs.PermissionDenied.Code,
			after:    func(t *testing.T, res web.ApplicantList) {},
		},
		{
			name: "职位不存在",
			before: func(t *testing.T) {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(4)).Return(job.Job{}, job.ErrJobNotFound)
			},
			jobId:    4,
			wantCode: errs.JobNotFound.Code,
			after:    func(t *testing.T, res web.ApplicantList) {},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			defer s.TearDownTest()
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost, "/applications/recruiter/applicants",
				iox.NewJSONReader(web.JobIdReq{JobId: tc.jobId}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.ApplicantList]()
			s.recruiter.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			tc.after(t, res.Data)
		})
	}
}

func (s *HandlerTestSuite) TestUpdateStatus() {
	testCases := []struct {
		name   string
		server *egin.Component
		before func(t *testing.T) int64
		status string

		wantHTTPCode int
		wantCode     int
		wantEvent    bool
		wantStatus   string
	}{
		{
			name:   "加入候选",
			server: s.recruiter,
			before: func(t *testing.T) int64 {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(1)).Return(s.newJob(1, uid, job.StatusPublished), nil)
				return s.insert(t, dao.Application{SN: "sn-1", JobId: 1, ApplicantId: 1001, ResumeId: 1, Status: "applied"})
			},
			status:       "shortlisted",
			wantHTTPCode: http.StatusOK,
			wantEvent:    true,
			wantStatus:   "shortlisted",
		},
		{
			name:   "不能改回 applied",
			server: s.recruiter,
			before: func(t *testing.T) int64 {
				return s.insert(t, dao.Application{SN: "sn-1", JobId: 1, ApplicantId: 1001, ResumeId: 1, Status: "shortlisted"})
			},
			status:       "applied",
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.InvalidStatus.Code,
			wantStatus:   "shortlisted",
		},
		{
			name:   "投递不存在",
			server: s.recruiter,
			before: func(t *testing.T) int64 {
				return 10000
			},
			status:       "selected",
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.ApplicationNotFound.Code,
		},
		{
			name:   "不是自己的职位",
			server: s.recruiter,
			before: func(t *testing.T) int64 {
				s.jobSvc.EXPECT().Detail(gomock.Any(), int64(2)).Return(s.newJob(2, 456, job.StatusPublished), nil)
				return s.insert(t, dao.Application{SN: "sn-2", JobId: 2, ApplicantId: 1001, ResumeId: 1, Status: "applied"})
			},
			status:       "rejected",
			wantHTTPCode: http.StatusOK,
			wantCode:     errs.PermissionDenied.Code,
			wantStatus:   "applied",
		},
		{
			name:   "求职者不能修改",
			server: s.applicant,
			before: func(t *testing.T) int64 {
				return s.insert(t, dao.Application{SN: "sn-3", JobId: 3, ApplicantId: uid, ResumeId: 1, Status: "applied"})
			},
			status:       "selected",
			wantHTTPCode: http.StatusForbidden,
			wantStatus:   "applied",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			defer s.TearDownTest()
			id := tc.before(t)
			req, err := http.NewRequest(http.MethodPost, "/applications/recruiter/status",
				iox.NewJSONReader(web.UpdateStatusReq{Id: id, Status: tc.status}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			tc.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantHTTPCode, recorder.Code)
			if tc.wantHTTPCode == http.StatusOK {
				assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
			}
			if tc.wantStatus != "" {
				var app dao.Application
				err = s.db.Where("id = ?", id).First(&app).Error
				require.NoError(t, err)
				assert.Equal(t, tc.wantStatus, app.Status)
			}
			if tc.wantEvent {
				evt := s.nextEvent(t)
				assert.Equal(t, event.ApplicationStatusEvent{
					ApplicationId: id,
					SN:            "sn-1",
					JobId:         1,
					JobTitle:      "Go Developer",
					ApplicantId:   1001,
					Status:        tc.status,
				}, evt)
			}
		})
	}
}

func (s *HandlerTestSuite) newJob(id, rid int64, status job.Status) job.Job {
	return job.Job{
		Id:            id,
		RecruiterId:   rid,
		Title:         "Go Developer",
		Skills:        []string{"Go", "MySQL"},
		MinExperience: 2,
		Type:          "full-time",
		Location:      "Bangalore",
		Status:        status,
	}
}

func (s *HandlerTestSuite) insert(t *testing.T, app dao.Application) int64 {
	if !app.Analysis.Valid {
		app.Analysis = sqlx.JsonColumn[dao.Analysis]{Valid: true}
	}
	err := s.db.Create(&app).Error
	require.NoError(t, err)
	return app.Id
}

func (s *HandlerTestSuite) nextEvent(t *testing.T) event.ApplicationStatusEvent {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := s.consumer.Consume(ctx)
	require.NoError(t, err)
	var evt event.ApplicationStatusEvent
	err = json.Unmarshal(msg.Value, &evt)
	require.NoError(t, err)
	return evt
}
