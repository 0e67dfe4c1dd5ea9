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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/careerlens/internal/application"
	"github.com/ecodeclub/careerlens/internal/cos"
	"github.com/ecodeclub/careerlens/internal/job"
	"github.com/ecodeclub/careerlens/internal/pkg/middleware"
	"github.com/ecodeclub/careerlens/internal/resume"
	"github.com/ecodeclub/careerlens/internal/search"
	"github.com/ecodeclub/careerlens/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	jobHdl *job.Handler,
	searchHdl *search.Handler,
	resumeHdl *resume.Handler,
	appHdl *application.Handler,
	cosHdl *cos.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(corsMiddleware())
	res.Use(middleware.NewMetricsBuilder("careerlens", prometheus.DefaultRegisterer).
		IgnorePaths("/hello").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	jobHdl.PublicRoutes(res.Engine)
	searchHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	jobHdl.PrivateRoutes(res.Engine)
	resumeHdl.PrivateRoutes(res.Engine)
	appHdl.PrivateRoutes(res.Engine)
	cosHdl.PrivateRoutes(res.Engine)
	return res
}

func corsMiddleware() gin.HandlerFunc {
	// 前端的域名，例如 careerlens.app
	domains := slice.FilterMap(econf.GetStringSlice("cors.allowDomains"), func(idx int, src string) (string, bool) {
		src = strings.TrimSpace(src)
		return src, src != ""
	})
	return cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, d := range domains {
				if strings.Contains(origin, d) {
					return true
				}
			}
			return false
		},
	})
}
