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

package aliyun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	dm20151123 "github.com/alibabacloud-go/dm-20151123/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	credential "github.com/aliyun/credentials-go/credentials"

	"github.com/ecodeclub/careerlens/internal/email"
)

const defaultEndpoint = "dm.aliyuncs.com"

var _ email.Service = (*Service)(nil)

type Config struct {
	AccessKeyID     string `yaml:"accessKeyID"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	// 控制台配置的发信地址，例如 noreply@mail.careerlens.app
	AccountName string `yaml:"accountName"`
	// 默认的发信人昵称
	FromAlias string `yaml:"fromAlias"`
	// 邮件标签，方便在控制台统计
	Tag      string `yaml:"tag"`
	Endpoint string `yaml:"endpoint"`
}

// Service 阿里云邮件推送
type Service struct {
	client *dm20151123.Client
	cfg    Config
}

func NewService(cfg Config) (*Service, error) {
	cred, err := credential.NewCredential(&credential.Config{
		Type:            tea.String("access_key"),
		AccessKeyId:     tea.String(cfg.AccessKeyID),
		AccessKeySecret: tea.String(cfg.AccessKeySecret),
	})
	if err != nil {
		return nil, fmt.Errorf("创建阿里云凭证失败: %w", err)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	client, err := dm20151123.NewClient(&openapi.Config{
		Credential: cred,
		Endpoint:   tea.String(cfg.Endpoint),
	})
	if err != nil {
		return nil, fmt.Errorf("创建邮件推送客户端失败: %w", err)
	}
	return &Service{client: client, cfg: cfg}, nil
}

func (s *Service) SendMail(ctx context.Context, mail email.Mail) error {
	if err := mail.Validate(); err != nil {
		return err
	}
	// SDK 不支持 context，发之前检查一下
	if err := ctx.Err(); err != nil {
		return err
	}
	request := s.newRequest(mail)
	_, err := s.client.SingleSendMailWithOptions(request, &util.RuntimeOptions{})
	if err != nil {
		return s.handleError(err)
	}
	return nil
}

func (s *Service) newRequest(mail email.Mail) *dm20151123.SingleSendMailRequest {
	alias := mail.From
	if alias == "" {
		alias = s.cfg.FromAlias
	}
	request := &dm20151123.SingleSendMailRequest{
		AccountName: tea.String(s.cfg.AccountName),
		// 1 表示随机账号
		AddressType:    tea.Int32(1),
		ToAddress:      tea.String(mail.To),
		Subject:        tea.String(mail.Subject),
		HtmlBody:       tea.String(string(mail.Body)),
		ReplyToAddress: tea.Bool(false),
	}
	if alias != "" {
		request.FromAlias = tea.String(alias)
	}
	if s.cfg.Tag != "" {
		request.TagName = tea.String(s.cfg.Tag)
	}
	return request
}

func (s *Service) handleError(err error) error {
	var sdkErr *tea.SDKError
	if !errors.As(err, &sdkErr) {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	var sb strings.Builder
	sb.WriteString("阿里云邮件推送失败: ")
	sb.WriteString(tea.StringValue(sdkErr.Message))
	var data map[string]any
	if sdkErr.Data != nil && json.Unmarshal([]byte(tea.StringValue(sdkErr.Data)), &data) == nil {
		if recommend, ok := data["Recommend"]; ok {
			sb.WriteString(fmt.Sprintf(" | 建议: %v", recommend))
		}
		if requestId, ok := data["RequestId"]; ok {
			sb.WriteString(fmt.Sprintf(" | RequestId: %v", requestId))
		}
	}
	return errors.New(sb.String())
}
