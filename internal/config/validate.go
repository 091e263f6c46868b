package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ValidateKeys checks for duplicate keybindings and invalid key strings.
func ValidateKeys(keys *KeyBindings) error {
	// Build a map of key -> action names for duplicate detection
	keyMap := make(map[string][]string)

	v := reflect.ValueOf(keys).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldName := t.Field(i).Name

		if field.Kind() != reflect.String {
			continue
		}

		keyStr := field.String()
		if keyStr == "" {
			return fmt.Errorf("missing key for %s", fieldName)
		}

		// Validate that the key string can be parsed
		key, err := ParseKey(keyStr)
		if err != nil {
			return fmt.Errorf("invalid key for %s: %w", fieldName, err)
		}

		// ctrl+Q and ctrl+q are the same key; q and Q are not
		normalizedKey := strings.ToLower(strings.TrimSpace(keyStr))
		if key.IsRune() {
			normalizedKey = string(key.Rune())
		}
		keyMap[normalizedKey] = append(keyMap[normalizedKey], fieldName)
	}

	// Check for duplicates
	var duplicates []string
	for key, actions := range keyMap {
		if len(actions) > 1 {
			duplicates = append(duplicates, fmt.Sprintf("key %q is used by: %s", key, strings.Join(actions, ", ")))
		}
	}

	if len(duplicates) > 0 {
		sort.Strings(duplicates)
		return fmt.Errorf("duplicate keybindings found:\n  %s", strings.Join(duplicates, "\n  "))
	}

	return nil
}

// ValidateTheme checks that every palette entry and frame color names a
// known color.
func ValidateTheme(theme *Theme) error {
	for from, to := range theme.Palette {
		if !ValidateColor(from) {
			return fmt.Errorf("invalid palette color %q", from)
		}
		if !ValidateColor(to) {
			return fmt.Errorf("invalid palette color %q for %s", to, from)
		}
	}
	if theme.FrameTerminal != "" && !ValidateColor(theme.FrameTerminal) {
		return fmt.Errorf("invalid frame_terminal color %q", theme.FrameTerminal)
	}
	if theme.FrameCommand != "" && !ValidateColor(theme.FrameCommand) {
		return fmt.Errorf("invalid frame_command color %q", theme.FrameCommand)
	}
	return nil
}

// ValidateColor checks if a color string is valid for gocui.
func ValidateColor(color string) bool {
	validColors := map[string]bool{
		"default": true,
		"black":   true,
		"red":     true,
		"green":   true,
		"yellow":  true,
		"blue":    true,
		"magenta": true,
		"cyan":    true,
		"white":   true,
	}
	return validColors[strings.ToLower(color)]
}
