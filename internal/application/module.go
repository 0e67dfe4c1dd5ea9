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

package application

import (
	"github.com/ecodeclub/careerlens/internal/application/internal/domain"
	"github.com/ecodeclub/careerlens/internal/application/internal/event/consumer"
	"github.com/ecodeclub/careerlens/internal/application/internal/service"
	"github.com/ecodeclub/careerlens/internal/application/internal/web"
)

type (
	Service     = service.Service
	Handler     = web.Handler
	Application = domain.Application
	Status      = domain.Status
)

const (
	StatusApplied     = domain.StatusApplied
	StatusShortlisted = domain.StatusShortlisted
	StatusSelected    = domain.StatusSelected
	StatusRejected    = domain.StatusRejected
)

type Module struct {
	Svc Service
	Hdl *Handler
	C   *consumer.StatusNotifyConsumer
}
