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

package failover

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/careerlens/internal/email"
	emailmocks "github.com/ecodeclub/careerlens/internal/email/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_SendMail(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) []email.Service
		wantErr error
	}{
		{
			name: "发送成功",
			mock: func(ctrl *gomock.Controller) []email.Service {
				svc0 := emailmocks.NewMockService(ctrl)
				svc1 := emailmocks.NewMockService(ctrl)
				// 第一次从下标 1 开始
				svc1.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
				return []email.Service{svc0, svc1}
			},
		},
		{
			name: "第一个失败换下一个",
			mock: func(ctrl *gomock.Controller) []email.Service {
				svc0 := emailmocks.NewMockService(ctrl)
				svc1 := emailmocks.NewMockService(ctrl)
				svc1.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
				svc0.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(nil)
				return []email.Service{svc0, svc1}
			},
		},
		{
			name: "全部失败",
			mock: func(ctrl *gomock.Controller) []email.Service {
				svc0 := emailmocks.NewMockService(ctrl)
				svc1 := emailmocks.NewMockService(ctrl)
				svc0.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
				svc1.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
				return []email.Service{svc0, svc1}
			},
			wantErr: ErrAllFailed,
		},
		{
			name: "被取消",
			mock: func(ctrl *gomock.Controller) []email.Service {
				svc0 := emailmocks.NewMockService(ctrl)
				svc0.EXPECT().SendMail(gomock.Any(), gomock.Any()).Return(context.Canceled)
				return []email.Service{svc0}
			},
			wantErr: context.Canceled,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			err := svc.SendMail(context.Background(), email.Mail{
				To:      "to@example.com",
				Subject: "test",
				Body:    []byte("test"),
			})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
