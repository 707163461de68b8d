package choices

import (
	"errors"
)

// DefaultEmptyLabel is the label of the blank option.
const DefaultEmptyLabel = "---------"

// InvalidChoiceMessage is the field error shown for a value outside the
// option set.
const InvalidChoiceMessage = "Select a valid choice. That choice is not one of the available choices."

type Choice struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Field is one select column of a tabular editor. The option set can be
// swapped per request with SetOptions without rebuilding the field, and the
// blank option appears in Choices() exactly once no matter how often it is
// read. Value 0 stands for the blank option.
type Field struct {
	emptyLabel *string
	options    []Choice
	members    map[int]bool
}

func NewField(emptyLabel *string) *Field {
	return &Field{emptyLabel: emptyLabel, members: map[int]bool{}}
}

// EmptyLabel returns a pointer to a copy of label, for Field construction.
func EmptyLabel(label string) *string {
	return &label
}

// SetOptions replaces the backing option rows. Order is preserved as given.
func (f *Field) SetOptions(options []Choice) {
	f.options = options
	f.members = make(map[int]bool, len(options))
	for _, option := range options {
		f.members[option.Value] = true
	}
}

func (f *Field) Choices() []Choice {
	choices := make([]Choice, 0, len(f.options)+1)
	if f.emptyLabel != nil {
		choices = append(choices, Choice{Value: 0, Label: *f.emptyLabel})
	}
	choices = append(choices, f.options...)
	return choices
}

// Validate checks membership of value in the current option set. The blank
// value is not a member, requiredness is the caller's concern.
func (f *Field) Validate(value int) error {
	if !f.members[value] {
		return errors.New(InvalidChoiceMessage)
	}
	return nil
}
