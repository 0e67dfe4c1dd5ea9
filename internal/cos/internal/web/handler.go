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

package web

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/ecodeclub/careerlens/internal/cos/internal/errs"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidFileTypeResult = ginx.Result{
		Code: errs.InvalidFileType.Code,
		Msg:  errs.InvalidFileType.Msg,
	}
)

// CredentialClient 就是 sts.Client，抽出来方便测试
//
//go:generate mockgen -source=./handler.go -destination=./mocks/sts.mock.go -package=stsmocks -typed=true CredentialClient
type CredentialClient interface {
	GetCredential(opt *sts.CredentialOptions) (*sts.CredentialResult, error)
}

type Config struct {
	SecretID  string `yaml:"secretID"`
	SecretKey string `yaml:"secretKey"`
	AppID     string `yaml:"appID"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

type Handler struct {
	client CredentialClient
	// 临时密钥的权限
	actions []string
	cfg     Config
}

func NewHandler(client CredentialClient, cfg Config) *Handler {
	return &Handler{
		client: client,
		cfg:    cfg,
		actions: []string{
			// 简单上传
			"name/cos:PostObject",
			"name/cos:PutObject",
		},
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	cos := server.Group("/cos")
	cos.POST("/authorization", ginx.BS[TmpAuthCodeReq](h.TempAuthCode))
}

// TempAuthCode 临时密钥只能往自己的目录里面上传图片
func (h *Handler) TempAuthCode(ctx *ginx.Context, req TmpAuthCodeReq, sess session.Session) (ginx.Result, error) {
	if !strings.HasPrefix(req.Type, "image/") {
		return invalidFileTypeResult, nil
	}
	name := path.Base(strings.TrimSpace(req.Key))
	if name == "." || name == "/" || name == "" {
		return invalidFileTypeResult, nil
	}
	key := fmt.Sprintf("pictures/%d/%s", sess.Claims().Uid, name)
	// 存储桶的命名格式为 BucketName-APPID
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s-%s/%s",
		h.cfg.Region, h.cfg.AppID,
		h.cfg.Bucket, h.cfg.AppID, key)
	opt := &sts.CredentialOptions{
		DurationSeconds: int64((30 * time.Minute).Seconds()),
		Region:          h.cfg.Region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{
				{
					Action: h.actions,
					Effect: "allow",
					Resource: []string{
						resource,
					},
					Condition: map[string]map[string]interface{}{
						"string_equal": {
							"cos:content-type": req.Type,
						},
					},
				},
			},
		},
	}

	res, err := h.client.GetCredential(opt)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: COSTmpAuthCode{
			SecretId:     res.Credentials.TmpSecretID,
			SecretKey:    res.Credentials.TmpSecretKey,
			SessionToken: res.Credentials.SessionToken,
			StartTime:    res.StartTime,
			ExpiredTime:  res.ExpiredTime,
			Key:          key,
		},
	}, nil
}
