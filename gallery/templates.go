package gallery

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"galgen/config"
)

// atlasNameValues is what we make available for atlas name template expansion.
type atlasNameValues struct {
	Page int // 1-based atlas page number
}

func expandAtlasName(field string, page int) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(config.AtlasNameTemplateFieldName)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", config.AtlasNameTemplateFieldName, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, atlasNameValues{Page: page}); err != nil {
		return "", err
	}
	if buf.Len() == 0 {
		return "", fmt.Errorf("template field %s expanded to an empty name", config.AtlasNameTemplateFieldName)
	}
	return buf.String(), nil
}
