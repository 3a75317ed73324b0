package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// unquoted values may be selectors or calls, e.g. with=Logging.LogMethod or with=Fallback()
var propertiesRegexp = regexp.MustCompile(`(\w+)=(?:"([^"]*)"|(-?[\w.()]+))`)

var knownProperties = []string{"with", "priority", "description"}

type DecorateAnnotation struct {
	logger      *zerolog.Logger
	description string
	properties  map[string]string
}

func (a DecorateAnnotation) With() (with string, found bool) {
	with, found = a.properties["with"]
	return with, found && with != ""
}

func (a DecorateAnnotation) Priority() (priority int, found bool) {
	if priorityStr, exists := a.properties["priority"]; exists {
		if priority, err := strconv.Atoi(priorityStr); err == nil {
			return priority, true
		}
		a.logger.Warn().Msgf("Error parsing priority property: %s, skipping it", priorityStr)
	}
	return 0, false
}

// Description is the description property, or the text of the doc comment around the annotation.
func (a DecorateAnnotation) Description() string {
	if description, found := a.properties["description"]; found {
		return description
	}
	return a.description
}

func (a DecorateAnnotation) UnknownProperties() []string {
	var unknown []string
	for key := range a.properties {
		if !contains(knownProperties, key) {
			unknown = append(unknown, key)
		}
	}
	return unknown
}

func (a DecorateAnnotation) String() string {
	return fmt.Sprintf("DecorateAnnotation(%v)", a.properties)
}

// parseDecorateAnnotations returns one annotation per @decorate line of docText, a member can be
// decorated several times. Other lines make the description shared by every annotation.
func parseDecorateAnnotations(logger *zerolog.Logger, docText string) []DecorateAnnotation {
	var (
		descriptionLines []string
		annotationLines  []string
	)
	for _, line := range strings.Split(docText, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "//"))

		if strings.HasPrefix(line, decorateAnnotationTag) {
			annotationLines = append(annotationLines, line)
		} else if line != "" && !strings.HasPrefix(line, "@") {
			descriptionLines = append(descriptionLines, line)
		}
	}

	description := strings.TrimSpace(strings.Join(descriptionLines, "\n"))
	annotations := make([]DecorateAnnotation, 0, len(annotationLines))
	for _, line := range annotationLines {
		annotations = append(annotations, DecorateAnnotation{
			logger:      logger,
			description: description,
			properties:  parseProperties(line, decorateAnnotationTag),
		})
	}
	return annotations
}

func parseProperties(line string, tag string) map[string]string {
	properties := make(map[string]string)

	if line == "" {
		return properties
	}

	content := strings.TrimPrefix(line, tag)
	content = strings.TrimSpace(content)

	if content == "" {
		return properties
	}

	// key=value or key="value"
	matches := propertiesRegexp.FindAllStringSubmatch(content, -1)

	for _, match := range matches {
		key := match[1]
		// match[2] is quoted value, match[3] is unquoted value
		value := match[2]
		if value == "" {
			value = match[3]
		}
		properties[key] = value
	}

	return properties
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
