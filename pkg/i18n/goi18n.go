package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var goi18nUnmarshalers = map[string]goi18n.UnmarshalFunc{
	"json": json.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
	"toml": toml.Unmarshal,
}

// goTemplateField matches "{{.Name}}" and "{{ .Name }}".
var goTemplateField = regexp.MustCompile(`\{\{\s*\.([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// WithGoI18nDir loads go-i18n message files ("active.en.toml", "en.json", ...).
// The locale comes from the file name, as go-i18n does it. Dotted message IDs
// become nested keys. Messages with plural forms become plural mappings, and
// "{{.Field}}" template fields become "{{Field}}" placeholders, with
// PluralCount mapped to count.
func WithGoI18nDir(fsys fs.FS) Option {
	return func(s *Store) error {
		return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			format := strings.TrimPrefix(strings.ToLower(path.Ext(filePath)), ".")
			if _, ok := goi18nUnmarshalers[format]; !ok {
				return nil
			}

			data, err := fs.ReadFile(fsys, filePath)
			if err != nil {
				return fmt.Errorf("reading %q: %w", filePath, err)
			}
			return s.addMessageFile(filePath, data)
		})
	}
}

func (s *Store) addMessageFile(filePath string, data []byte) error {
	mf, err := goi18n.ParseMessageFileBytes(data, filePath, goi18nUnmarshalers)
	if err != nil {
		return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
	}
	lang := mf.Tag.String()
	if lang == "" || lang == "und" {
		return fmt.Errorf("%w: %q: cannot determine locale", ErrInvalidFile, filePath)
	}

	for _, msg := range mf.Messages {
		keys := strings.Split(msg.ID, ".")
		node := messageNode(msg)
		for i := len(keys) - 1; i >= 0; i-- {
			node = NewMapping(map[string]*Node{keys[i]: node})
		}
		if err := s.merge(lang, node); err != nil {
			return fmt.Errorf("%q: message %q: %w", filePath, msg.ID, err)
		}
	}
	return nil
}

// messageNode turns a message into a scalar, or into a plural mapping when
// any form besides "other" is set.
func messageNode(msg *goi18n.Message) *Node {
	forms := map[string]string{
		"zero": msg.Zero,
		"one":  msg.One,
		"two":  msg.Two,
		"few":  msg.Few,
		"many": msg.Many,
	}

	fields := make(map[string]*Node, len(forms)+1)
	for category, text := range forms {
		if text != "" {
			fields[category] = NewScalar(convertTemplate(msg, text))
		}
	}
	if len(fields) == 0 {
		return NewScalar(convertTemplate(msg, msg.Other))
	}
	fields["other"] = NewScalar(convertTemplate(msg, msg.Other))
	return NewMapping(fields)
}

func convertTemplate(msg *goi18n.Message, text string) string {
	if msg.LeftDelim != "" && msg.LeftDelim != "{{" {
		text = strings.ReplaceAll(text, msg.LeftDelim, "{{")
	}
	if msg.RightDelim != "" && msg.RightDelim != "}}" {
		text = strings.ReplaceAll(text, msg.RightDelim, "}}")
	}
	return goTemplateField.ReplaceAllStringFunc(text, func(m string) string {
		name := goTemplateField.FindStringSubmatch(m)[1]
		if name == "PluralCount" {
			name = "count"
		}
		return "{{" + name + "}}"
	})
}
