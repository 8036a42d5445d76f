package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/text/cases"

	"github.com/jwebster45206/vn-menu/pkg/conditionals"
	"github.com/jwebster45206/vn-menu/pkg/gamemap"
	"github.com/jwebster45206/vn-menu/pkg/vnmenu"
)

var (
	colorError   = color.Style{color.FgRed, color.OpBold}
	colorWarning = color.Style{color.FgYellow}
	colorOK      = color.Style{color.FgGreen, color.OpBold}
	colorSubtle  = color.Style{color.FgGray}
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <map.json> [map.json...]\n", os.Args[0])
		os.Exit(1)
	}

	failed := false
	for _, filename := range os.Args[1:] {
		colorSubtle.Printf("Validating %s...\n", filename)
		validator := &MapValidator{}
		if err := validator.validateFile(filename); err != nil {
			colorError.Printf("Validation failed: %v\n", err)
			failed = true
			continue
		}
		for _, w := range validator.warnings {
			colorWarning.Println(w)
		}
		colorOK.Printf("%s is valid!\n", filename)
	}

	if failed {
		os.Exit(1)
	}
}

// MapValidator collects every problem in a map file instead of stopping at the first one.
type MapValidator struct {
	errors   []string
	warnings []string
}

// Parameters each known command needs.
var requiredParams = map[int]int{
	gamemap.CodeEnd:          0,
	gamemap.CodeTextHeader:   0,
	gamemap.CodeComment:      1,
	gamemap.CodeSetVar:       2,
	gamemap.CodeOpenMenu:     0,
	gamemap.CodeTextLine:     1,
	gamemap.CodeCommentExtra: 1,
}

var sentinels = []string{vnmenu.TalkSentinel, vnmenu.InspectSentinel}

func (v *MapValidator) validateFile(filename string) error {
	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("map file must have .json extension: %s", baseName)
	}
	if !isValidMapFilename(strings.TrimSuffix(baseName, ".json")) {
		return fmt.Errorf("map filename '%s' must be lowercase snake_case (e.g., old_village.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return v.validateData(filename, data)
}

func (v *MapValidator) validateData(filename string, data []byte) error {
	v.errors = nil
	v.warnings = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	// Decode without gamemap.Validate so every problem is reported, not just the first.
	var m gamemap.Map
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&m); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	v.validateMap(&m)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *MapValidator) validateMap(m *gamemap.Map) {
	if strings.TrimSpace(m.Name) == "" {
		v.addError("map has no name")
	}
	if len(m.Entities) == 0 {
		v.addWarning("map has no entities")
	}

	seen := mapset.New[int]()
	for i, e := range m.Entities {
		if e == nil {
			v.addError(fmt.Sprintf("entity at index %d is null", i))
			continue
		}
		if seen.Has(e.ID) {
			v.addError(fmt.Sprintf("entity id %d is used more than once", e.ID))
		}
		seen.Put(e.ID)

		if strings.TrimSpace(e.Name) == "" {
			v.addError(fmt.Sprintf("entity %d has no name", e.ID))
		}
		for p := range e.Pages {
			v.validatePage(e, p)
		}
	}
}

func (v *MapValidator) validatePage(e *gamemap.Entity, index int) {
	page := &e.Pages[index]
	context := fmt.Sprintf("entity %d (%s) page %d", e.ID, e.Name, index)

	if page.When != nil {
		v.validateWhen(page.When, context)
	}

	for i, cmd := range page.List {
		need, known := requiredParams[cmd.Code]
		if !known {
			v.addError(fmt.Sprintf("%s command %d has unknown code %d", context, i, cmd.Code))
			continue
		}
		if len(cmd.Parameters) < need {
			v.addError(fmt.Sprintf("%s command %d (code %d) needs %d parameter(s), has %d",
				context, i, cmd.Code, need, len(cmd.Parameters)))
			continue
		}
		if cmd.Code == gamemap.CodeSetVar && !isValidVariableName(cmd.Param(0)) {
			v.addError(fmt.Sprintf("%s command %d sets invalid variable name '%s' - should be lowercase snake_case",
				context, i, cmd.Param(0)))
		}
	}

	if near := nearMissSentinel(page.Annotation()); near != "" {
		v.addWarning(fmt.Sprintf("%s annotation %q looks like %q but only an exact match is listed",
			context, page.Annotation(), near))
	}
}

func (v *MapValidator) validateWhen(when *conditionals.When, context string) {
	for varName := range when.Vars {
		if !isValidVariableName(varName) {
			v.addError(fmt.Sprintf("%s has invalid variable name '%s' - should be lowercase snake_case", context, varName))
		}
	}
	if when.MinTurns != nil && *when.MinTurns < 0 {
		v.addError(fmt.Sprintf("%s has negative min_turns %d", context, *when.MinTurns))
	}
}

// nearMissSentinel returns the sentinel an annotation was probably meant to be,
// or "" when it is an exact sentinel or nothing like one.
func nearMissSentinel(annotation string) string {
	if annotation == "" {
		return ""
	}
	fold := cases.Fold()
	for _, s := range sentinels {
		if annotation == s {
			return ""
		}
	}
	for _, s := range sentinels {
		switch {
		case fold.String(strings.TrimSpace(annotation)) == fold.String(s):
			return s
		case strings.Contains(annotation, s):
			return s
		case levenshtein.ComputeDistance(annotation, s) <= 2:
			return s
		}
	}
	return ""
}

func (v *MapValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

func (v *MapValidator) addWarning(msg string) {
	v.warnings = append(v.warnings, "  ! "+msg)
}

var (
	validVarRegex      = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
	validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)
)

func isValidVariableName(name string) bool {
	return validVarRegex.MatchString(name)
}

func isValidMapFilename(name string) bool {
	// Allow 'x.' prefix for experimental maps
	name = strings.TrimPrefix(name, "x.")
	return validFilenameRegex.MatchString(name)
}
