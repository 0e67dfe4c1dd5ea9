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

package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/careerlens/internal/application/internal/event"
	"github.com/ecodeclub/careerlens/internal/email"
	smsclient "github.com/ecodeclub/careerlens/internal/sms/client"
	"github.com/ecodeclub/careerlens/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type Config struct {
	// 为空的时候不发短信
	SMSTemplateID string
}

// StatusNotifyConsumer 通知失败只记录日志，消息不会重新投递
type StatusNotifyConsumer struct {
	userSvc  user.UserService
	mailSvc  email.Service
	smsCli   smsclient.Client
	cfg      Config
	consumer mq.Consumer
	logger   *elog.Component
}

func NewStatusNotifyConsumer(userSvc user.UserService,
	mailSvc email.Service,
	smsCli smsclient.Client,
	cfg Config,
	q mq.MQ) (*StatusNotifyConsumer, error) {
	const groupID = "application_status_notify"
	consumer, err := q.Consumer(event.ApplicationStatusEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &StatusNotifyConsumer{
		userSvc:  userSvc,
		mailSvc:  mailSvc,
		smsCli:   smsCli,
		cfg:      cfg,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *StatusNotifyConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.ApplicationStatusEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	u, err := c.userSvc.Profile(ctx, evt.ApplicantId)
	if err != nil {
		return fmt.Errorf("查找投递者失败 uid %d: %w", evt.ApplicantId, err)
	}
	return errors.Join(
		c.sendMail(ctx, u, evt),
		c.sendSMS(u, evt),
	)
}

func (c *StatusNotifyConsumer) sendMail(ctx context.Context, u user.User, evt event.ApplicationStatusEvent) error {
	if u.Email == "" {
		return nil
	}
	body := fmt.Sprintf(`<h2>Hello %s,</h2>
<p>The status of your application <b>%s</b> for <b>%s</b> has been updated to <b>%s</b>.</p>
<p>Log in to Career Lens to see the details.</p>`, u.Name, evt.SN, evt.JobTitle, evt.Status)
	err := c.mailSvc.SendMail(ctx, email.Mail{
		To:      u.Email,
		Subject: fmt.Sprintf("Application update - %s", evt.JobTitle),
		Body:    []byte(body),
	})
	if err != nil {
		return fmt.Errorf("发送邮件失败 application %d: %w", evt.ApplicationId, err)
	}
	return nil
}

func (c *StatusNotifyConsumer) sendSMS(u user.User, evt event.ApplicationStatusEvent) error {
	if u.Profile.Phone == "" || c.cfg.SMSTemplateID == "" {
		return nil
	}
	_, err := c.smsCli.Send(smsclient.SendReq{
		PhoneNumbers: []string{u.Profile.Phone},
		TemplateID:   c.cfg.SMSTemplateID,
		TemplateParam: map[string]string{
			"job":    evt.JobTitle,
			"status": evt.Status,
		},
	})
	if err != nil {
		return fmt.Errorf("发送短信失败 application %d: %w", evt.ApplicationId, err)
	}
	return nil
}

func (c *StatusNotifyConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				c.logger.Error("投递状态通知失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *StatusNotifyConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
