package sphinx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/insilica/srvcdocs/internal/config"
	derrors "github.com/insilica/srvcdocs/internal/errors"
	"gopkg.in/yaml.v3"
)

// Render writes s to w in format (python, json or yaml).
func Render(w io.Writer, s *Settings, format string) error {
	var buf bytes.Buffer
	var err error

	switch format {
	case config.FormatPython, "":
		err = renderPython(&buf, s)
	case config.FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(s)
	case config.FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(s)
		if err == nil {
			err = enc.Close()
		}
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return derrors.RenderFailed(format, err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return derrors.RenderFailed(format, err)
	}
	return nil
}
