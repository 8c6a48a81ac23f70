package template

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/QuangTung97/promo-engagement/config"
	"github.com/QuangTung97/promo-engagement/model"
	"github.com/QuangTung97/promo-engagement/service/engagement"
)

// FallbackLanguage is used when no template exists for the user language
const FallbackLanguage = "en"

type templateKey struct {
	cardType model.CardType
	language string
}

type entry struct {
	title *template.Template
	body  *template.Template
}

// Renderer renders notification texts from localized templates, implements engagement.TemplateRenderer
type Renderer struct {
	templates map[templateKey]entry
}

var _ engagement.TemplateRenderer = &Renderer{}

// New parses all configured templates, an unknown card type or malformed template is an error
func New(configs []config.TemplateConfig) (*Renderer, error) {
	templates := map[templateKey]entry{}
	for _, c := range configs {
		cardType, ok := model.ParseCardType(c.CardType)
		if !ok {
			return nil, fmt.Errorf("template: unknown card type %q", c.CardType)
		}
		name := c.CardType + "." + c.Language

		title, err := template.New(name + ".title").Option("missingkey=error").Parse(c.Title)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}
		body, err := template.New(name + ".body").Option("missingkey=error").Parse(c.Body)
		if err != nil {
			return nil, fmt.Errorf("template %s: %w", name, err)
		}

		templates[templateKey{cardType: cardType, language: c.Language}] = entry{
			title: title,
			body:  body,
		}
	}
	return &Renderer{templates: templates}, nil
}

func (r *Renderer) lookup(cardType model.CardType, language string) (entry, bool) {
	e, ok := r.templates[templateKey{cardType: cardType, language: language}]
	if ok {
		return e, true
	}
	e, ok = r.templates[templateKey{cardType: cardType, language: FallbackLanguage}]
	return e, ok
}

// Render ...
func (r *Renderer) Render(
	_ context.Context, cardType model.CardType, language string, params engagement.TemplateParams,
) (engagement.Rendered, error) {
	e, ok := r.lookup(cardType, language)
	if !ok {
		return engagement.Rendered{}, fmt.Errorf("no template for card type %s", cardType)
	}

	var title bytes.Buffer
	if err := e.title.Execute(&title, params); err != nil {
		return engagement.Rendered{}, err
	}
	var body bytes.Buffer
	if err := e.body.Execute(&body, params); err != nil {
		return engagement.Rendered{}, err
	}

	return engagement.Rendered{
		Title: title.String(),
		Body:  body.String(),
	}, nil
}
