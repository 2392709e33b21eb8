package notifier

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Шаблон письма с тремя подстановками: {{code}}, {{amount}}, {{expiration}}.
// Неизвестный тег - ошибка при создании, а не молча неподставленный текст

var tagRegexp = regexp.MustCompile(`\{\{([^{}]*)\}\}`)

var knownTags = map[string]struct{}{
	"code":       {},
	"amount":     {},
	"expiration": {},
}

var ErrUnknownTag = errors.New("unknown template tag")

type Template struct {
	body string
}

func NewTemplate(body string) (Template, error) {
	for _, match := range tagRegexp.FindAllStringSubmatch(body, -1) {
		tag := match[1]
		if _, ok := knownTags[tag]; !ok {
			return Template{}, fmt.Errorf("%w: %q", ErrUnknownTag, tag)
		}
	}
	return Template{body: body}, nil
}

func (template Template) Render(code string, amount string, expiration string) string {
	body := template.body
	body = strings.ReplaceAll(body, "{{code}}", code)
	body = strings.ReplaceAll(body, "{{amount}}", amount)
	body = strings.ReplaceAll(body, "{{expiration}}", expiration)
	return body
}
