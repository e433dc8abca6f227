package main

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-adminforms/pkg/form"
)

// promptRecord walks the derived field configs in order and collects a raw
// record from terminal input. Values stay in the loose shapes form controls
// produce (strings, bools, string slices); validation and preparation run
// afterwards, exactly as they would for a browser form.
func promptRecord(configs []form.FieldConfig) (map[string]any, error) {
	data := make(map[string]any, len(configs))

	for _, cfg := range configs {
		// The id field is display-only; the backend assigns it.
		if cfg.Name == "id" {
			continue
		}

		value, err := promptField(cfg)
		if err != nil {
			return nil, fmt.Errorf("prompt %s: %w", cfg.Name, err)
		}
		if value != nil {
			data[cfg.Name] = value
		}
	}

	return data, nil
}

func promptField(cfg form.FieldConfig) (any, error) {
	message := cfg.Label
	if cfg.Required {
		message += " (required)"
	}

	switch cfg.Type {
	case form.InputCheckbox:
		confirmed := false
		if err := survey.AskOne(&survey.Confirm{Message: message}, &confirmed); err != nil {
			return nil, err
		}
		return confirmed, nil

	case form.InputSelect:
		if len(cfg.Options) == 0 {
			// Relation fields arrive without choices; fall back to free
			// text entry of the related record id(s).
			return promptText(message, cfg.Placeholder)
		}
		if cfg.Multiple {
			var picked []string
			prompt := &survey.MultiSelect{Message: message, Options: cfg.Options}
			if err := survey.AskOne(prompt, &picked); err != nil {
				return nil, err
			}
			if len(picked) == 0 {
				return nil, nil
			}
			return picked, nil
		}
		var picked string
		prompt := &survey.Select{Message: message, Options: cfg.Options}
		if err := survey.AskOne(prompt, &picked); err != nil {
			return nil, err
		}
		return picked, nil

	case form.InputTextarea:
		var text string
		if err := survey.AskOne(&survey.Multiline{Message: message}, &text); err != nil {
			return nil, err
		}
		if text == "" {
			return nil, nil
		}
		return text, nil

	default:
		return promptText(message, cfg.Placeholder)
	}
}

func promptText(message, placeholder string) (any, error) {
	var text string
	prompt := &survey.Input{Message: message, Help: placeholder}
	if err := survey.AskOne(prompt, &text); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return text, nil
}
