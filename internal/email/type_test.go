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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMail_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mail    Mail
		wantErr error
	}{
		{
			name: "合法",
			mail: Mail{To: "alice@example.com", Subject: "hi"},
		},
		{
			name: "带昵称的收件人",
			mail: Mail{To: "Alice <alice@example.com>", Subject: "hi"},
		},
		{
			name:    "标题为空",
			mail:    Mail{To: "alice@example.com", Subject: "  "},
			wantErr: ErrInvalidMail,
		},
		{
			name:    "收件人不合法",
			mail:    Mail{To: "alice", Subject: "hi"},
			wantErr: ErrInvalidMail,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.mail.Validate(), tc.wantErr)
		})
	}
}
