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

package metrics

import (
	"context"
	"time"

	"github.com/ecodeclub/careerlens/internal/ai/internal/domain"
	"github.com/ecodeclub/careerlens/internal/ai/internal/service/llm/handler"
	"github.com/prometheus/client_golang/prometheus"
)

type HandlerBuilder struct {
	duration *prometheus.SummaryVec
	tokens   *prometheus.CounterVec
}

var _ handler.Builder = &HandlerBuilder{}

// NewHandler 重复注册的时候复用已经注册的指标
func NewHandler(namespace string) *HandlerBuilder {
	duration := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: namespace,
		Subsystem: "llm",
		Name:      "invoke_duration_ms",
		Help:      "LLM 调用耗时",
		Objectives: map[float64]float64{
			0.5:  0.01,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, []string{"biz", "status"})
	tokens := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "llm",
		Name:      "tokens_total",
		Help:      "LLM 消耗的 token 数",
	}, []string{"biz"})
	return &HandlerBuilder{
		duration: register(duration),
		tokens:   register(tokens),
	}
}

func register[T prometheus.Collector](c T) T {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}
	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}
	panic(err)
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		start := time.Now()
		resp, err := next.Handle(ctx, req)
		status := "success"
		if err != nil {
			status = "failed"
		}
		h.duration.WithLabelValues(req.Biz, status).
			Observe(float64(time.Since(start).Milliseconds()))
		h.tokens.WithLabelValues(req.Biz).Add(float64(resp.Tokens))
		return resp, err
	})
}
