package page

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"sync"

	"github.com/marlonwill444-cyber/mdigitalartz-leonardo/internal/log"
	"github.com/samber/do"
)

//go:embed assets/gallery.html
var galleryTmpl string

type Params struct {
	Image      string
	Model      string
	Prompt     string
	Generation string
}

type Templator struct {
	tmpl *template.Template
	once sync.Once
}

func NewTemplator(i *do.Injector) (*Templator, error) {
	return &Templator{}, nil
}

func (t *Templator) Template(ctx context.Context, params Params) ([]byte, error) {
	t.once.Do(func() {
		t.tmpl = template.Must(template.New("gallery").Parse(galleryTmpl))
	})

	logger := log.FromContextOrDiscard(ctx).WithGroup("templator")
	logger.Info("rendering gallery page", "image", params.Image)

	var data bytes.Buffer
	if err := t.tmpl.Execute(&data, params); err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}
