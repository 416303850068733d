// Package prompt turns a resolved update status into user-facing output: an
// interactive dialog with update/dismiss actions, or a passive banner.
package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/viper"
	"github.com/storecheck-cli/storecheck/checker"
	"github.com/storecheck-cli/storecheck/key"
	"github.com/storecheck-cli/storecheck/open"
)

// Options parameterizes the dialog. Zero values fall back to the configured
// defaults (see DefaultOptions).
type Options struct {
	Title        string
	Body         string // text/template over bodyContext
	UpdateLabel  string
	DismissLabel string
	AllowDismiss bool

	// LaunchApp names the application used to open the store link; empty
	// means the system default handler.
	LaunchApp string

	// OnDismiss runs when the user dismisses the dialog; nil means plain close.
	OnDismiss func()
}

// DefaultOptions reads the dialog configuration from the global settings.
func DefaultOptions() Options {
	return Options{
		Title:        viper.GetString(key.PromptTitle),
		Body:         viper.GetString(key.PromptBody),
		UpdateLabel:  viper.GetString(key.PromptUpdateLabel),
		DismissLabel: viper.GetString(key.PromptDismissLabel),
		AllowDismiss: viper.GetBool(key.PromptAllowDismiss),
		LaunchApp:    viper.GetString(key.PromptLaunchApp),
	}
}

// bodyContext is the data available to the body template.
type bodyContext struct {
	LocalVersion string
	StoreVersion string
	StoreLink    string
	Notes        string
}

// Seams for tests: the survey interaction and the URL launcher.
var (
	askOne = survey.AskOne
	launch = open.StartWith
)

// Show renders the update dialog for a resolved status. Choosing the update
// action launches the store link; a launch failure is the one condition that
// surfaces as an error, since there is no sensible silent fallback. Dismissal
// runs the configured callback.
func Show(status checker.Status, opts Options) error {
	body, err := renderBody(status, opts.Body)
	if err != nil {
		return fmt.Errorf("render dialog body: %w", err)
	}

	choices := []string{opts.UpdateLabel}
	if opts.AllowDismiss {
		choices = append(choices, opts.DismissLabel)
	}

	var choice string
	question := &survey.Select{
		Message: fmt.Sprintf("%s\n%s", opts.Title, body),
		Options: choices,
		Default: opts.UpdateLabel,
	}
	if err := askOne(question, &choice); err != nil {
		return fmt.Errorf("prompt: %w", err)
	}

	if choice == opts.UpdateLabel {
		if err := launch(status.StoreLink, opts.LaunchApp); err != nil {
			return fmt.Errorf("open store link: %w", err)
		}
		return nil
	}

	if opts.OnDismiss != nil {
		opts.OnDismiss()
	}
	return nil
}

// renderBody executes the body template against the status.
func renderBody(status checker.Status, body string) (string, error) {
	tmpl, err := template.New("body").Parse(body)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	err = tmpl.Execute(&b, bodyContext{
		LocalVersion: status.LocalVersion,
		StoreVersion: status.StoreVersion,
		StoreLink:    status.StoreLink,
		Notes:        status.ReleaseNotes.OrEmpty(),
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
