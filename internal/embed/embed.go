package embed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/fchimpan/seg7/internal/display"
)

// LibraryVersion is the published browser build the HTML snippet loads.
const LibraryVersion = "1.1.0"

const cdnBase = "https://cdn.jsdelivr.net/npm/fun-7-segment@" + LibraryVersion + "/dist/"

// Options mirrors the constructor options of the browser library.
type Options struct {
	Text        string `json:"text" yaml:"text"`
	DigitCount  int    `json:"digitCount" yaml:"digitCount"`
	ScrollSpeed int64  `json:"scrollSpeed" yaml:"scrollSpeed"`
	Scrolling   bool   `json:"scrolling" yaml:"scrolling"`
	RainbowMode bool   `json:"rainbowMode" yaml:"rainbowMode"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
}

func FromConfig(cfg display.Config) Options {
	return Options{
		Text:        cfg.Text,
		DigitCount:  cfg.DigitCount,
		ScrollSpeed: cfg.ScrollSpeed.Milliseconds(),
		Scrolling:   cfg.Scrolling,
		RainbowMode: cfg.Rainbow,
		Color:       string(cfg.Color),
	}
}

// FromState captures a running display's configuration.
func FromState(st display.State) Options {
	return Options{
		Text:        string(st.Text),
		DigitCount:  st.DigitCount,
		ScrollSpeed: st.ScrollSpeed.Milliseconds(),
		Scrolling:   st.Scrolling,
		RainbowMode: st.Rainbow,
		Color:       string(st.Color),
	}
}

type Format string

const (
	FormatHTML Format = "html"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var Formats = []Format{FormatHTML, FormatJSON, FormatYAML}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatHTML, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (expected html, json or yaml)", s)
}

// Render produces a snippet that rebuilds a display with opts.
func Render(format Format, opts Options) (string, error) {
	switch format {
	case FormatHTML:
		return HTML(opts)
	case FormatJSON:
		b, err := json.MarshalIndent(opts, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal json: %w", err)
		}
		return string(b) + "\n", nil
	case FormatYAML:
		b, err := yaml.Marshal(opts)
		if err != nil {
			return "", fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return string(b), nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>7-Segment Display</title>
    <link rel="stylesheet" href="{{.CDN}}fun-7-segment.min.css">
</head>
<body>
    <div id="display"></div>

    <script src="{{.CDN}}fun-7-segment.min.js"></script>
    <script>
        const display = new SegmentDisplay('#display', {
            text: '{{js .Text}}',
            digitCount: {{.DigitCount}},
            scrollSpeed: {{.ScrollSpeed}},
            scrolling: {{.Scrolling}},
            rainbowMode: {{.RainbowMode}}{{if .Color}},
            color: '{{js .Color}}'{{end}}
        });
    </script>
</body>
</html>
`))

// HTML returns a standalone page that loads the browser build from the CDN.
func HTML(opts Options) (string, error) {
	var b bytes.Buffer
	data := struct {
		Options
		CDN string
	}{Options: opts, CDN: cdnBase}
	if err := pageTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}
	return b.String(), nil
}
