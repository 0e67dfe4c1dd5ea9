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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// App 不同的业务占用不同的 app 段，生成的 ID 不会冲突
type App uint

const (
	AppApplication App = 0
)

//go:generate mockgen -source=./snowflake.go -destination=./mocks/snowflake.mock.go -package=snowflakemocks -typed Generator
type Generator interface {
	Generate(app App) (ID, error)
}

type CustomSnowFlake struct {
	// 键为 app
	nodes syncx.Map[App, *snowflake.Node]
}

const (
	maxNode uint = 31
	maxApp  uint = 31
)

var (
	ErrExceedNode = errors.New("node超出限制")
	ErrExceedApp  = errors.New("app超出限制")
	ErrUnknownApp = errors.New("未知的app")
)

// +---------------------------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  5 Bit APPID | 5 Bit NodeID  |   12 Bit Sequence ID |
// +---------------------------------------------------------------------------------------+

// NewCustomSnowFlake nodeId 表示第几个节点，apps 表示有几个业务，从 0 开始
func NewCustomSnowFlake(nodeId uint, apps uint) (*CustomSnowFlake, error) {
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w", ErrExceedNode)
	}
	if apps > maxApp+1 {
		return nil, fmt.Errorf("%w", ErrExceedApp)
	}
	res := &CustomSnowFlake{}
	for i := uint(0); i < apps; i++ {
		nid := (i << 5) | nodeId
		n, err := snowflake.NewNode(int64(nid))
		if err != nil {
			return nil, err
		}
		res.nodes.Store(App(i), n)
	}
	return res, nil
}

func (c *CustomSnowFlake) Generate(app App) (ID, error) {
	n, ok := c.nodes.Load(app)
	if !ok {
		return 0, fmt.Errorf("%w %d", ErrUnknownApp, app)
	}
	return ID(n.Generate()), nil
}

type ID int64

func (f ID) App() App {
	node := snowflake.ID(f).Node()
	return App(node >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}

// String 对外展示的编号
func (f ID) String() string {
	return snowflake.ID(f).Base58()
}
