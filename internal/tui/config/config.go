// Package config provides the interactive editor for calcit preferences.
package config

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"calcit.dev/calcit/internal/config"
	"calcit.dev/calcit/internal/tui"
)

const exitOption = "Exit"

// Prompter asks the user questions; survey.AskOne in production
type Prompter func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// TUIAction lets the user edit preferences until they choose Exit.
// Each accepted change is saved immediately.
func TUIAction(cfg *config.UserConfig, splog *tui.Splog) error {
	return EditWith(survey.AskOne, cfg, splog)
}

// EditWith runs the editor loop with the given prompter
func EditWith(ask Prompter, cfg *config.UserConfig, splog *tui.Splog) error {
	for {
		options := make([]string, 0, len(config.Keys)+1)
		for _, key := range config.Keys {
			value, err := cfg.Get(key)
			if err != nil {
				return err
			}
			options = append(options, fmt.Sprintf("%s: %s", key, value))
		}
		options = append(options, exitOption)

		var selected int
		err := ask(&survey.Select{
			Message: "Select a preference to edit:",
			Options: options,
		}, &selected)
		if errors.Is(err, terminal.InterruptErr) {
			return nil
		}
		if err != nil {
			return err
		}
		if selected >= len(config.Keys) {
			return nil
		}

		key := config.Keys[selected]
		value, err := promptValue(ask, cfg, key)
		if errors.Is(err, terminal.InterruptErr) {
			continue
		}
		if err != nil {
			return err
		}

		if err := cfg.Set(key, value); err != nil {
			splog.Warn("%v", err)
			continue
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		splog.Info("Set %s to: %s", key, value)
	}
}

func promptValue(ask Prompter, cfg *config.UserConfig, key string) (string, error) {
	switch key {
	case config.KeyAltScreen:
		enabled := cfg.UseAltScreen()
		if err := ask(&survey.Confirm{
			Message: "Use the full terminal for the keypad?",
			Default: enabled,
		}, &enabled); err != nil {
			return "", err
		}
		return fmt.Sprintf("%t", enabled), nil

	default:
		current, err := cfg.Get(key)
		if err != nil {
			return "", err
		}
		var value string
		if err := ask(&survey.Input{
			Message: fmt.Sprintf("Enter %s (current: %s):", key, current),
			Default: current,
		}, &value, survey.WithValidator(func(ans interface{}) error {
			if key == config.KeyAccent {
				return config.ValidateAccent(fmt.Sprint(ans))
			}
			return nil
		})); err != nil {
			return "", err
		}
		return value, nil
	}
}
