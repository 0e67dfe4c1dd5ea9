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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RoleKey 角色放在 jwt 的数据里面
const RoleKey = "role"

type CheckRoleMiddlewareBuilder struct {
	roles  []string
	sp     session.Provider
	logger *elog.Component
}

// NewCheckRoleMiddlewareBuilder 只允许 roles 中的角色访问
func NewCheckRoleMiddlewareBuilder(roles ...string) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		roles:  roles,
		logger: elog.DefaultLogger,
	}
}

func (c *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.session(gctx)
		if err != nil {
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		role := sess.Claims().Get(RoleKey).StringOrDefault("")
		if !slice.Contains(c.roles, role) {
			c.logger.Debug("角色无权访问", elog.Int64("uid", sess.Claims().Uid),
				elog.String("role", role), elog.String("path", ctx.FullPath()))
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}
	}
}

func (c *CheckRoleMiddlewareBuilder) session(ctx *ginx.Context) (session.Session, error) {
	if c.sp != nil {
		return c.sp.Get(ctx)
	}
	return session.Get(ctx)
}
