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

package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/careerlens/internal/email"
	emailmocks "github.com/ecodeclub/careerlens/internal/email/mocks"
	"github.com/ecodeclub/ekit/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_SendMail(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) email.Service
		wantErr error
	}{
		{
			name: "第一次就成功",
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
				return svc
			},
		},
		{
			name: "重试之后成功",
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("mock error")).Times(2)
				svc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
				return svc
			},
		},
		{
			name: "超过重试次数",
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("mock error")).Times(4)
				return svc
			},
			wantErr: ErrOverRetryTimes,
		},
		{
			name: "超时不重试",
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(context.DeadlineExceeded)
				return svc
			},
			wantErr: context.DeadlineExceeded,
		},
		{
			name: "非法邮件不重试",
			mock: func(ctrl *gomock.Controller) email.Service {
				svc := emailmocks.NewMockService(ctrl)
				svc.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(email.ErrInvalidMail)
				return svc
			},
			wantErr: email.ErrInvalidMail,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), func() retry.Strategy {
				s, err := retry.NewFixedIntervalRetryStrategy(time.Millisecond, 3)
				require.NoError(t, err)
				return s
			})
			err := svc.SendMail(context.Background(), email.Mail{To: "to@example.com"})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
