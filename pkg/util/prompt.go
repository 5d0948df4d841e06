package util

import (
	"os"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
)

var promptTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . | bold }} ",
	Valid:   "{{ . | green }} ",
	Invalid: "{{ . | red }} ",
	Success: "{{ . | bold }} ",
}

// PromptForPassword reads a masked credential from the terminal.
func PromptForPassword(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Templates: promptTemplates,
		Mask:      rune('•'),
		Validate: func(input string) error {
			if input == "" {
				return errors.New("please enter a password")
			}
			return nil
		},
	}

	for {
		result, err := prompt.Run()
		if err != nil {
			if err == promptui.ErrInterrupt {
				os.Exit(-1)
			}
			continue
		}

		return result, nil
	}
}

// PromptForInput reads one line, re-prompting until validate accepts it.
// A nil validate accepts anything, including an empty line.
func PromptForInput(label string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Templates: promptTemplates,
		Validate:  validate,
	}

	result, err := prompt.Run()
	if err != nil {
		if err == promptui.ErrInterrupt {
			return "", errors.New("interrupted")
		}
		return "", errors.Wrap(err, "failed to read input")
	}

	return result, nil
}

// PromptForSelect picks one item from a fixed list. The returned index
// follows the items slice; err is non-nil when the user bails out.
func PromptForSelect(label string, items []string) (int, string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
	}

	idx, value, err := prompt.Run()
	if err != nil {
		if err == promptui.ErrInterrupt {
			return 0, "", errors.New("interrupted")
		}
		return 0, "", errors.Wrap(err, "failed to read selection")
	}

	return idx, value, nil
}
