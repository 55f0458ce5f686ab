// Package script renders the build script handed to the external compiler.
package script

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.trai.ch/py2sec/internal/core/domain"
	"go.trai.ch/py2sec/internal/core/ports"
	"go.trai.ch/zerr"
)

// legacySlots is the number of %s placeholders a positional template must have.
const legacySlots = 4

//go:embed default.py.template
var defaultTemplate []byte

var _ ports.ScriptGenerator = (*Generator)(nil)

// DefaultTemplate returns the template written by py2sec init.
func DefaultTemplate() []byte {
	return append([]byte(nil), defaultTemplate...)
}

// Generator renders build scripts from named or positional templates.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// view is the record exposed to named templates.
type view struct {
	Files    []string
	FileList string
	Version  string
	Jobs     int
	Quiet    string
}

// Generate removes any previous script and writes a freshly rendered one.
func (g *Generator) Generate(templatePath, scriptPath string, params domain.ScriptParams) error {
	if err := os.Remove(scriptPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Join(domain.ErrScriptWriteFailed, zerr.With(zerr.Wrap(err, "remove previous script"), "path", scriptPath))
	}

	raw, err := readTemplate(templatePath)
	if err != nil {
		return err
	}

	rendered, err := Render(string(raw), params)
	if err != nil {
		return zerr.With(err, "template", templatePath)
	}

	if err := os.WriteFile(scriptPath, []byte(rendered), domain.FilePerm); err != nil {
		return errors.Join(domain.ErrScriptWriteFailed, zerr.With(zerr.Wrap(err, "write script"), "path", scriptPath))
	}
	return nil
}

// readTemplate loads the template at path. An empty path, or a missing file
// carrying the default template name, selects the embedded default.
func readTemplate(path string) ([]byte, error) {
	if path == "" {
		return defaultTemplate, nil
	}
	//nolint:gosec // Template path is provided by the user
	raw, err := os.ReadFile(path)
	if err == nil {
		return raw, nil
	}
	if errors.Is(err, os.ErrNotExist) && filepath.Base(path) == domain.TemplateFileName {
		return defaultTemplate, nil
	}
	return nil, errors.Join(domain.ErrTemplateNotFound, zerr.With(zerr.Wrap(err, "read template"), "path", path))
}

// Scaffold writes the default template to path. An existing file is only
// replaced when overwrite is set.
func (g *Generator) Scaffold(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.Join(domain.ErrTemplateExists, zerr.With(zerr.New("refusing to overwrite"), "path", path))
		}
	}
	if err := os.WriteFile(path, defaultTemplate, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrScriptWriteFailed, zerr.With(zerr.Wrap(err, "write template"), "path", path))
	}
	return nil
}

// Render renders a template source with params. Sources containing "{{" are
// Go templates; anything else is a positional template with four %s slots.
func Render(src string, params domain.ScriptParams) (string, error) {
	if strings.Contains(src, "{{") {
		return renderNamed(src, params)
	}
	return renderPositional(src, params)
}

func renderNamed(src string, params domain.ScriptParams) (string, error) {
	tmpl, err := template.New("build").
		Option("missingkey=error").
		Funcs(template.FuncMap{"hasPrefix": strings.HasPrefix}).
		Parse(src)
	if err != nil {
		return "", errors.Join(domain.ErrTemplateInvalid, zerr.Wrap(err, "parse"))
	}

	var sb strings.Builder
	err = tmpl.Execute(&sb, view{
		Files:    params.Files,
		FileList: params.FileList(),
		Version:  params.Version,
		Jobs:     params.Jobs,
		Quiet:    params.QuietLiteral(),
	})
	if err != nil {
		return "", errors.Join(domain.ErrTemplateInvalid, zerr.Wrap(err, "execute"))
	}
	return sb.String(), nil
}

// renderPositional substitutes the file list, version, jobs and quiet flag into
// the %s slots in that order. %% renders a literal percent sign.
func renderPositional(src string, params domain.ScriptParams) (string, error) {
	values := []string{params.FileList(), params.Version, params.JobsLiteral(), params.QuietLiteral()}

	var sb strings.Builder
	slot := 0
	for i := 0; i < len(src); i++ {
		if src[i] != '%' {
			sb.WriteByte(src[i])
			continue
		}
		if i+1 >= len(src) {
			return "", errors.Join(domain.ErrTemplateInvalid, zerr.New("incomplete format at end of template"))
		}
		i++
		switch src[i] {
		case '%':
			sb.WriteByte('%')
		case 's':
			if slot < len(values) {
				sb.WriteString(values[slot])
			}
			slot++
		default:
			return "", errors.Join(domain.ErrTemplateInvalid,
				zerr.With(zerr.New("unsupported format character"), "char", string(src[i])))
		}
	}

	if slot != legacySlots {
		return "", errors.Join(domain.ErrTemplateInvalid,
			zerr.With(zerr.New("positional template must have exactly four %s slots"), "slots", slot))
	}
	return sb.String(), nil
}
