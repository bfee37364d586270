package translator

import (
	"context"
	"fmt"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// GetTranslator returns the process-wide shader translator, creating it on
// first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, translatorErr
}

// Translate converts WebGL2 source for stage ("vertex" or "fragment") into
// the desktop GLSL 4.10 dialect. The returned map takes each declared
// variable's source name to the name it carries in the translated code.
func Translate(source, stage string) (string, map[string]string, error) {
	t, err := GetTranslator()
	if err != nil {
		return "", nil, fmt.Errorf("failed to create shader translator: %w", err)
	}
	out, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return "", nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	names := make(map[string]string, len(out.Variables))
	for name, v := range out.Variables {
		names[name] = v.MappedName
	}
	return out.Code, names, nil
}
