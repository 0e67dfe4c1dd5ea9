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
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJob struct {
	err error
}

func (f fakeJob) Name() string {
	return "fakeJob"
}

func (f fakeJob) Run(ctx context.Context) error {
	return f.err
}

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: "test_cron_job_duration_seconds"}, []string{"job", "success"})
	require.NoError(t, reg.Register(vec))

	assert.NoError(t, observe(fakeJob{}, vec)(context.Background()))
	assert.ErrorIs(t, observe(fakeJob{err: assert.AnError}, vec)(context.Background()), assert.AnError)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	counts := map[string]uint64{}
	for _, m := range families[0].GetMetric() {
		for _, l := range m.GetLabel() {
			if l.GetName() == "success" {
				counts[l.GetValue()] = m.GetHistogram().GetSampleCount()
			}
		}
	}
	assert.Equal(t, map[string]uint64{"true": 1, "false": 1}, counts)
}
