package config

import (
	"testing"
	"time"

	"github.com/QuangTung97/promo-engagement/model"
	"github.com/stretchr/testify/assert"
)

func TestMySQLConfig_DSN(t *testing.T) {
	c := MySQLConfig{
		Host:     "localhost",
		Port:     3306,
		Database: "engagement",
		Username: "root",
		Password: "1",
		Options: []MySQLOption{
			{Key: "multiStatements", Value: "true"},
			{Key: "loc", Value: "Asia/Ho_Chi_Minh"},
		},
	}
	assert.Equal(t,
		"root:1@tcp(localhost:3306)/engagement?multiStatements=true&loc=Asia%2FHo_Chi_Minh&parseTime=true",
		c.DSN())
}

func TestEngineConfig_TTLOf(t *testing.T) {
	c := DefaultEngineConfig()
	assert.Equal(t, 5*time.Minute, c.TTLOf(model.CardTypeMicrosurvey))
	assert.Equal(t, 30*time.Minute, c.TTLOf(model.CardTypeGoEarly))
	assert.Equal(t, 30*time.Minute, c.TTLOf(model.CardTypeGoLater))
	assert.Equal(t, 30*time.Minute, c.TTLOf(model.CardTypeChangeMode))
	assert.Equal(t, 30*24*time.Hour, c.TTLOf(model.CardTypeInfo))
	assert.Equal(t, 30*24*time.Hour, c.TTLOf(model.CardTypeDuoMatch))
	assert.Equal(t, "1", c.FirstActionReward().String())
}

func TestConfig_Validate(t *testing.T) {
	c := defaultConfig()
	assert.Equal(t, nil, c.Validate())

	c.Engine.SlotSize = 7 * time.Minute
	assert.Error(t, c.Validate())

	c = defaultConfig()
	c.Engine.DefaultFirstActionReward = "abc"
	assert.Error(t, c.Validate())

	c = defaultConfig()
	c.Engine.SweepWorkers = 0
	assert.Error(t, c.Validate())
}

func TestLoadTestConfig(t *testing.T) {
	conf := LoadTestConfig("..")
	assert.Equal(t, "engagement_test", conf.MySQL.Database)
	assert.Equal(t, 5*time.Minute, conf.Engine.TTL.Microsurvey)
	assert.Equal(t, 10*time.Minute, conf.Engine.ResendDelay)
	assert.NotEmpty(t, conf.Template)
}

func TestServerListen(t *testing.T) {
	s := ServerListen{Host: "localhost", Port: 10080}
	assert.Equal(t, ":10080", s.ListenString())
	assert.Equal(t, "localhost:10080", s.String())
}
