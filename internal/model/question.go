package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Question is one multiple-choice item of a Test. Options holds exactly four
// strings as a JSON column; CorrectOption is the 0-based index into it and
// must never leave the server before grading.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestID        string         `json:"test_id" gorm:"not null;index"`
	Label         string         `json:"label" gorm:"not null"` // "q-1".."q-10"
	Prompt        string         `json:"prompt" gorm:"type:text;not null"`
	Options       datatypes.JSON `json:"options" gorm:"not null"`
	CorrectOption int            `json:"correct_option" gorm:"not null"`
	Points        int            `json:"points" gorm:"not null"`
	OrderInTest   int            `json:"order_in_test" gorm:"not null"`
}

// OptionList decodes the Options JSON column.
func (q *Question) OptionList() []string {
	var opts []string
	if err := json.Unmarshal(q.Options, &opts); err != nil {
		return nil
	}
	return opts
}

// EncodeOptions marshals the given options into the JSON column format.
func EncodeOptions(opts []string) (datatypes.JSON, error) {
	raw, err := json.Marshal(opts)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
