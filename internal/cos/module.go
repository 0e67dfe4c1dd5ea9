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

package cos

import (
	"net/http"

	"github.com/ecodeclub/careerlens/internal/cos/internal/web"
	"github.com/gotomicro/ego/core/econf"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

type (
	Handler = web.Handler
	Config  = web.Config
)

func InitHandler() *Handler {
	var cfg Config
	err := econf.UnmarshalKey("cos", &cfg)
	if err != nil {
		panic(err)
	}
	c := sts.NewClient(cfg.SecretID, cfg.SecretKey, http.DefaultClient)
	return web.NewHandler(c, cfg)
}
