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
	"fmt"
	"io"
	"os"

	"github.com/ecodeclub/careerlens/internal/resume"
	"github.com/spf13/cobra"
)

type workExperience struct {
	Company     string `json:"company" yaml:"company"`
	Role        string `json:"role" yaml:"role"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate" yaml:"endDate"`
	Description string `json:"description" yaml:"description"`
}

type insights struct {
	Skills          []string         `json:"skills" yaml:"skills"`
	ExperienceYears float64          `json:"experienceYears" yaml:"experienceYears"`
	Summary         string           `json:"summary" yaml:"summary"`
	WorkExperience  []workExperience `json:"workExperience" yaml:"workExperience"`
}

func newNormalizeCmd(opts *options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:     "normalize",
		Short:   "Normalize a saved LLM answer into resume insights",
		Example: `  matchctl normalize --file answer.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("读取文件失败 %s: %w", file, err)
			}
			in, err := resume.NormalizeInsights(string(raw))
			if err != nil {
				return err
			}
			res := newInsights(in)
			if ok, err := opts.write(cmd.OutOrStdout(), res); ok {
				return err
			}
			renderInsights(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "file containing the raw LLM answer")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newInsights(in resume.Insights) insights {
	res := insights{
		Skills:          in.Skills,
		ExperienceYears: in.ExperienceYears,
		Summary:         in.Summary,
		WorkExperience:  make([]workExperience, 0, len(in.WorkExperience)),
	}
	for _, we := range in.WorkExperience {
		res.WorkExperience = append(res.WorkExperience, workExperience(we))
	}
	return res
}

func renderInsights(w io.Writer, in insights) {
	fmt.Fprintln(w, titleStyle.Render("Resume Insights"))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Skills:"), joinOrNone(in.Skills))
	fmt.Fprintf(w, "%s %.1f\n", labelStyle.Render("Experience:"), in.ExperienceYears)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Summary:"), in.Summary)
	for _, we := range in.WorkExperience {
		fmt.Fprintf(w, "  %s %s @ %s %s\n",
			dimStyle.Render("-"), we.Role, we.Company,
			dimStyle.Render(fmt.Sprintf("(%s - %s)", we.StartDate, we.EndDate)))
	}
}
