package schema

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// InputMode selects how Parse reads its input.
type InputMode string

const (
	ModeJSON       InputMode = "json"
	ModeTypeScript InputMode = "typescript"
	ModeAuto       InputMode = "auto"
)

// ParseMode validates a user supplied input type. An empty string means auto.
func ParseMode(s string) (InputMode, error) {
	switch m := InputMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeJSON, ModeTypeScript, ModeAuto:
		return m, nil
	case "":
		return ModeAuto, nil
	}
	return "", fmt.Errorf("unknown input type %q (expected json, typescript or auto)", s)
}

// Parse routes input to the JSON or declaration analyzer. In auto mode the
// order is: JSON when the text opens with { or [ and that produced something
// usable, then declaration text when it mentions "interface", "type " or a
// colon, and finally JSON again so the caller gets a JSON error.
func Parse(input string, mode InputMode) ParsedSchema {
	switch mode {
	case ModeJSON:
		return ParseJSON(input)
	case ModeTypeScript:
		return ParseDeclaration(input)
	}

	log := logrus.WithField("mode", ModeAuto)
	trimmed := strings.TrimSpace(input)

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		result := ParseJSON(input)
		if !result.HasErrors() || len(result.Fields) > 0 {
			log.WithField("detected", ModeJSON).Debug("input routed")
			return result
		}
	}

	if strings.Contains(trimmed, "interface") ||
		strings.Contains(trimmed, "type ") ||
		strings.Contains(trimmed, ":") {
		log.WithField("detected", ModeTypeScript).Debug("input routed")
		return ParseDeclaration(input)
	}

	log.WithField("detected", ModeJSON).Debug("input routed (fallback)")
	return ParseJSON(input)
}
