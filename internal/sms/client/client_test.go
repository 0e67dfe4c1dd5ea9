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

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleClient_Send(t *testing.T) {
	c := NewConsoleClient()
	resp, err := c.Send(SendReq{
		PhoneNumbers: []string{"+919876543210", "13800000000"},
		TemplateID:   "application_status",
		TemplateParam: map[string]string{
			"status": "shortlisted",
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, map[string]SendRespStatus{
		"9876543210":  {Code: OK},
		"13800000000": {Code: OK},
	}, resp.PhoneNumbers)
}

func TestConsoleClient_SendWithoutPhone(t *testing.T) {
	_, err := NewConsoleClient().Send(SendReq{TemplateID: "application_status"})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestRenderParams(t *testing.T) {
	assert.Equal(t, "job=Go Engineer, status=selected",
		renderParams(map[string]string{"status": "selected", "job": "Go Engineer"}))
	assert.Equal(t, "", renderParams(nil))
}

func TestTrimCountryCode(t *testing.T) {
	assert.Equal(t, "9876543210", trimCountryCode("+919876543210"))
	assert.Equal(t, "13800000000", trimCountryCode("+8613800000000"))
	assert.Equal(t, "12345", trimCountryCode("12345"))
}
