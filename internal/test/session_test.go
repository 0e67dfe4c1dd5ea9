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

package test

import (
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionProvider(t *testing.T) {
	var _ session.Provider = &SessionProvider{}
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx := &gctx.Context{Context: c}
	sp := &SessionProvider{}

	_, err := sp.Get(ctx)
	assert.Error(t, err)
	assert.Error(t, sp.Destroy(ctx))

	_, err = sp.NewSession(ctx, 12, map[string]string{"role": "applicant"}, nil)
	require.NoError(t, err)
	sess, err := sp.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), sess.Claims().Uid)
	assert.Equal(t, "applicant", sess.Claims().Get("role").StringOrDefault(""))

	err = sp.Destroy(ctx)
	require.NoError(t, err)
	_, err = sp.Get(ctx)
	assert.Error(t, err)
}
