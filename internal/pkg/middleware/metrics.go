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
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsBuilder struct {
	durationVec *prometheus.HistogramVec
	counterVec  *prometheus.CounterVec
	inFlight    prometheus.Gauge
	ignored     map[string]struct{}
}

// NewMetricsBuilder reg 传 prometheus.DefaultRegisterer 就是注册到全局
func NewMetricsBuilder(namespace string, reg prometheus.Registerer) *MetricsBuilder {
	factory := promauto.With(reg)
	labels := []string{"method", "path", "status_code"}
	return &MetricsBuilder{
		durationVec: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			// 上传简历和调用大模型的接口会比较慢
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, labels),
		counterVec: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, labels),
		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Number of HTTP requests being served",
		}),
		ignored: map[string]struct{}{},
	}
}

// IgnorePaths 这些路径不统计，例如健康检查
func (b *MetricsBuilder) IgnorePaths(paths ...string) *MetricsBuilder {
	for _, p := range paths {
		b.ignored[p] = struct{}{}
	}
	return b
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.FullPath()
		if path == "" {
			// 没有匹配上路由，用原始路径会导致标签爆炸
			path = "unknown"
		}
		if _, ok := b.ignored[path]; ok {
			ctx.Next()
			return
		}
		start := time.Now()
		b.inFlight.Inc()
		defer b.inFlight.Dec()

		ctx.Next()

		method := ctx.Request.Method
		statusCode := strconv.Itoa(ctx.Writer.Status())
		b.durationVec.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		b.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
