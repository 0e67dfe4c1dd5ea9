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

package email

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

//go:generate mockgen -source=./type.go -package=emailmocks -destination=./mocks/email.mock.go -typed Service
type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

// ErrInvalidMail 收件人或者标题不合法，重试也没有意义
var ErrInvalidMail = errors.New("非法邮件")

type Mail struct {
	// 发件人昵称，为空的时候由具体的实现决定
	From    string
	To      string
	Subject string
	// HTML 正文
	Body []byte
}

func (m Mail) Validate() error {
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: 标题为空", ErrInvalidMail)
	}
	if _, err := mail.ParseAddress(m.To); err != nil {
		return fmt.Errorf("%w: 收件人 %q: %w", ErrInvalidMail, m.To, err)
	}
	return nil
}
