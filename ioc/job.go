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
	"context"
	"time"

	"github.com/ecodeclub/careerlens/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cronJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "careerlens",
	Name:      "cron_job_duration_seconds",
	Help:      "Duration of cron job runs",
}, []string{"job", "success"})

func initCronJobs(userModule *user.Module) []ecron.Ecron {
	// key 是配置文件里面 cron 下面的名字
	jobs := map[string]ecron.NamedJob{
		"cron.clearResetTokens": userModule.ClearJob,
	}
	res := make([]ecron.Ecron, 0, len(jobs))
	for key, job := range jobs {
		res = append(res, ecron.Load(key).Build(ecron.WithJob(observe(job, cronJobDuration))))
	}
	return res
}

// observe 记录每次运行的耗时和结果
func observe(job ecron.NamedJob, vec *prometheus.HistogramVec) ecron.FuncJob {
	name := job.Name()
	logger := elog.DefaultLogger.With(elog.String("cronjob", name))
	return func(ctx context.Context) error {
		start := time.Now()
		err := job.Run(ctx)
		duration := time.Since(start)
		success := "true"
		if err != nil {
			success = "false"
			logger.Error("执行失败", elog.FieldErr(err), elog.FieldCost(duration))
		} else {
			logger.Debug("执行完毕", elog.FieldCost(duration))
		}
		vec.WithLabelValues(name, success).Observe(duration.Seconds())
		return err
	}
}
