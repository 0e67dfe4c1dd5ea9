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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

type options struct {
	v *viper.Viper
}

// output 优先级：命令行 > CAREERLENS_OUTPUT > 配置文件
func (o *options) output() string {
	return strings.ToLower(o.v.GetString("output"))
}

func newRootCmd() *cobra.Command {
	opts := &options{v: viper.New()}
	var cfgFile string
	root := &cobra.Command{
		Use:           "matchctl",
		Short:         "Offline tools for the CareerLens match engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.careerlens.yaml)")
	root.PersistentFlags().StringP("output", "o", outputText, "output format: text, json or yaml")
	_ = opts.v.BindPFlag("output", root.PersistentFlags().Lookup("output"))
	root.AddCommand(newScoreCmd(opts), newNormalizeCmd(opts))
	return root
}

// write 结构化输出，返回 false 表示需要调用方按照文本渲染
func (o *options) write(w io.Writer, val any) (bool, error) {
	switch o.output() {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(val)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(val); err != nil {
			return true, err
		}
		return true, enc.Close()
	default:
		return false, nil
	}
}

func (o *options) load(cfgFile string) error {
	o.v.SetDefault("output", outputText)
	o.v.SetEnvPrefix("CAREERLENS")
	o.v.AutomaticEnv()
	if cfgFile == "" {
		cfgFile = defaultConfigFile()
	}
	if cfgFile != "" {
		o.v.SetConfigFile(cfgFile)
		o.v.SetConfigType("yaml")
		if err := o.v.ReadInConfig(); err != nil {
			return fmt.Errorf("读取配置文件失败 %s: %w", cfgFile, err)
		}
	}
	switch o.output() {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("不支持的输出格式 %q", o.output())
	}
}

// defaultConfigFile 不存在的时候返回空串
func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".careerlens.yaml")
	if _, err = os.Stat(path); err != nil {
		return ""
	}
	return path
}
