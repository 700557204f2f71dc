// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package prompts

import "github.com/charmbracelet/huh"

// GenerateAnswers holds the values collected by RunGenerateForm.
type GenerateAnswers struct {
	Models     string
	Output     string
	Layout     string
	Exceptions string // comma separated
	Save       bool   // persist the answers to a config file
}

// LayoutSelect returns a select field for choosing the output layout.
func LayoutSelect(value *string, layouts []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(layouts))
	for i, l := range layouts {
		options[i] = huh.NewOption(l, l)
	}
	return huh.NewSelect[string]().
		Title("Output layout").
		Options(options...).
		Value(value)
}

// RunGenerateForm runs the interactive form for the run command. Fields
// already holding a value are prefilled.
func RunGenerateForm(a *GenerateAnswers, layouts []string, canSave bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Models snapshot path").
				Description("A snapshot file or a directory of snapshots").
				Placeholder("./src/models").
				Validate(requiredValidator("models path")).
				Value(&a.Models),
			huh.NewInput().
				Title("Output file").
				Placeholder("./src/interfaces/mongoose.gen.ts").
				Validate(requiredValidator("output file")).
				Value(&a.Output),
		),
		huh.NewGroup(
			LayoutSelect(&a.Layout, layouts),
			huh.NewInput().
				Title("Models to skip").
				Description("Comma separated, leave empty to generate every model").
				Validate(modelListValidator).
				Value(&a.Exceptions),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save these answers to mtgen.yaml?").
				Value(&a.Save),
		).WithHideFunc(func() bool { return !canSave }),
	).WithTheme(Theme()).Run()
}
