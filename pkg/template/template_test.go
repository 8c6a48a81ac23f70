package template

import (
	"context"
	"testing"

	"github.com/QuangTung97/promo-engagement/config"
	"github.com/QuangTung97/promo-engagement/model"
	"github.com/QuangTung97/promo-engagement/service/engagement"
	"github.com/stretchr/testify/assert"
)

func newRenderer(t *testing.T) *Renderer {
	r, err := New([]config.TemplateConfig{
		{CardType: "microsurvey", Language: "en", Title: "Quick question", Body: "{{.Content}}"},
		{CardType: "microsurvey", Language: "vi", Title: "Câu hỏi nhanh", Body: "{{.Content}}"},
		{CardType: "info", Language: "en", Title: "{{.CampaignName}}", Body: "Step {{.StepSeq}}: {{.Content}}"},
	})
	assert.Equal(t, nil, err)
	return r
}

func TestRenderer_Render__User_Language(t *testing.T) {
	r := newRenderer(t)

	result, err := r.Render(context.Background(), model.CardTypeMicrosurvey, "vi", engagement.TemplateParams{
		Content: "Bạn đi làm bằng gì?",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, engagement.Rendered{
		Title: "Câu hỏi nhanh",
		Body:  "Bạn đi làm bằng gì?",
	}, result)
}

func TestRenderer_Render__Fallback_Language(t *testing.T) {
	r := newRenderer(t)

	result, err := r.Render(context.Background(), model.CardTypeInfo, "de", engagement.TemplateParams{
		CampaignName: "Bike week",
		Content:      "Ride to work",
		StepSeq:      1,
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, engagement.Rendered{
		Title: "Bike week",
		Body:  "Step 1: Ride to work",
	}, result)
}

func TestRenderer_Render__Missing_Card_Type(t *testing.T) {
	r := newRenderer(t)

	_, err := r.Render(context.Background(), model.CardTypeGoEarly, "en", engagement.TemplateParams{})
	assert.Equal(t, "no template for card type go-early", err.Error())
}

func TestNew__Unknown_Card_Type(t *testing.T) {
	_, err := New([]config.TemplateConfig{
		{CardType: "banner", Language: "en", Title: "x", Body: "y"},
	})
	assert.Equal(t, `template: unknown card type "banner"`, err.Error())
}

func TestNew__Malformed_Template(t *testing.T) {
	_, err := New([]config.TemplateConfig{
		{CardType: "info", Language: "en", Title: "{{.CampaignName", Body: "y"},
	})
	assert.Error(t, err)
}

func TestNew__Config_Templates(t *testing.T) {
	conf := config.LoadTestConfig("../..")

	r, err := New(conf.Template)
	assert.Equal(t, nil, err)

	for _, cardType := range []model.CardType{
		model.CardTypeInfo, model.CardTypeGoEarly, model.CardTypeGoLater,
		model.CardTypeChangeMode, model.CardTypeMicrosurvey, model.CardTypeDuoMatch,
	} {
		_, ok := r.lookup(cardType, "en")
		assert.True(t, ok, cardType.String())
	}
}
