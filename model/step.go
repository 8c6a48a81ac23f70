package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StepComplete is the branch target meaning no further step
const StepComplete = 0

// Step is one question or card of a campaign, immutable once the campaign starts
type Step struct {
	CampaignID int64  `db:"campaign_id"`
	Seq        int    `db:"seq"`
	Content    string `db:"content"`

	MultiSelect bool     `db:"multi_select"`
	Choices     Choices  `db:"choices"`
	Branches    Branches `db:"branches"`
}

// NullStep ...
type NullStep struct {
	Valid bool
	Step  Step
}

// Choice ...
type Choice struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Branch routes an answer set to the next step.
// A branch with empty Answers matches any valid answer not matched by another branch.
type Branch struct {
	Answers []string `json:"answers"`
	Next    int      `json:"next"`
}

// Choices ...
type Choices []Choice

// Branches ...
type Branches []Branch

// Value ...
func (c Choices) Value() (driver.Value, error) {
	return jsonValue(c)
}

// Scan ...
func (c *Choices) Scan(src interface{}) error {
	return jsonScan(src, c)
}

// Value ...
func (b Branches) Value() (driver.Value, error) {
	return jsonValue(b)
}

// Scan ...
func (b *Branches) Scan(src interface{}) error {
	return jsonScan(src, b)
}

func jsonValue(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func jsonScan(src interface{}, dest interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported json column type")
	}
}
