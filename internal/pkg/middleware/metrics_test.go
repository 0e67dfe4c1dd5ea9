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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder(t *testing.T) {
	reg := prometheus.NewRegistry()
	server := gin.New()
	server.Use(NewMetricsBuilder("careerlens", reg).IgnorePaths("/hello").Build())
	server.GET("/jobs/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	server.GET("/hello", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, path := range []string{"/jobs/1", "/jobs/2", "/hello", "/not-found"} {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		server.ServeHTTP(httptest.NewRecorder(), req)
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	counts := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "careerlens_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var path, code string
			for _, l := range m.GetLabel() {
				switch l.GetName() {
				case "path":
					path = l.GetValue()
				case "status_code":
					code = l.GetValue()
				}
			}
			counts[path+" "+code] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{
		"/jobs/:id 200": 2,
		"unknown 404":   1,
	}, counts)
}
