package formset

import (
	"fmt"
	"strings"

	"debatab/choices"
)

// Messages matching the form layer's wording.
const (
	RequiredMessage  = "This field is required."
	NonFieldErrors   = "__all__"
	missingRowFormat = "Row %d does not exist."
)

// Pair holds the two foreign keys of one relation row.
type Pair [2]int

// Row is one persisted relation row.
type Row struct {
	Id     int
	Values Pair
}

// ChangeSet is the validated outcome of a submission, ready to persist.
// Updates carry rows whose values actually changed, unchanged forms are not
// re-saved.
type ChangeSet struct {
	Creates   []Pair
	Updates   []Row
	DeleteIds []int
}

// Descriptor configures the tabular editor for one relation: the two columns
// with their choice fields, what the viewer may do, navigation targets, and
// closures binding it to storage. Editors are assembled per request, the
// permission-dependent parts (Extra, CanDelete, Disabled) are set by the
// caller.
type Descriptor struct {
	RelationNoun string // singular, e.g. "adjudicator-team conflict"
	FieldNames   [2]string
	Fields       [2]*choices.Field

	Extra     int
	CanDelete bool
	Disabled  bool

	PageTitle string
	SaveText  string

	SameViewURL string
	SuccessURL  string

	LoadRows func() ([]Row, error)
	Persist  func(changes ChangeSet) (nsaved int, ndeleted int, err error)
}

type FieldView struct {
	Name    string           `json:"name"`
	Choices []choices.Choice `json:"choices"`
}

type FormView struct {
	Id     *int           `json:"id,omitempty"`
	Values map[string]int `json:"values"`
}

// View is the GET rendition of the editor.
type View struct {
	PageTitle string      `json:"page_title"`
	SaveText  string      `json:"save_text"`
	CanEdit   bool        `json:"can_edit"`
	CanDelete bool        `json:"can_delete"`
	Disabled  bool        `json:"disabled"`
	Extra     int         `json:"extra"`
	Fields    []FieldView `json:"fields"`
	Forms     []FormView  `json:"forms"`
}

type SubmittedForm struct {
	Id     *int           `json:"id,omitempty"`
	Values map[string]int `json:"values"`
	Delete bool           `json:"delete,omitempty"`
}

type Submission struct {
	Forms   []SubmittedForm `json:"forms"`
	AddMore bool            `json:"add_more,omitempty"`
}

// FieldError locates one validation failure: the submitted form index, the
// field name (or __all__ for whole-form errors) and the message.
type FieldError struct {
	Form    int    `json:"form"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result reports what a valid submission persisted.
type Result struct {
	Nsaved   int      `json:"nsaved"`
	Ndeleted int      `json:"ndeleted"`
	Messages []string `json:"messages"`
	Redirect string   `json:"redirect"`
}

// Build renders the editor: existing rows in storage order followed by Extra
// blank forms.
func Build(d *Descriptor) (*View, error) {
	rows, err := d.LoadRows()
	if err != nil {
		return nil, err
	}
	forms := make([]FormView, 0, len(rows)+d.Extra)
	for _, row := range rows {
		id := row.Id
		forms = append(forms, FormView{
			Id:     &id,
			Values: d.formValues(row.Values),
		})
	}
	for i := 0; i < d.Extra; i++ {
		forms = append(forms, FormView{Values: d.formValues(Pair{})})
	}
	return &View{
		PageTitle: d.PageTitle,
		SaveText:  d.SaveText,
		CanEdit:   !d.Disabled,
		CanDelete: d.CanDelete,
		Disabled:  d.Disabled,
		Extra:     d.Extra,
		Fields: []FieldView{
			{Name: d.FieldNames[0], Choices: d.Fields[0].Choices()},
			{Name: d.FieldNames[1], Choices: d.Fields[1].Choices()},
		},
		Forms: forms,
	}, nil
}

func (d *Descriptor) formValues(pair Pair) map[string]int {
	return map[string]int{
		d.FieldNames[0]: pair[0],
		d.FieldNames[1]: pair[1],
	}
}

// Submit validates the payload against the current rows and persists the
// resulting change set. Validation failures come back as field errors and
// nothing is written. Uniqueness is checked against the stored rows as they
// are now: a pair freed by a delete in the same submission still counts as
// taken.
func Submit(d *Descriptor, submission *Submission) (*Result, []FieldError, error) {
	if d.Disabled {
		return nil, nil, fmt.Errorf("submission to a disabled %s editor", d.RelationNoun)
	}
	rows, err := d.LoadRows()
	if err != nil {
		return nil, nil, err
	}
	existing := make(map[int]Pair, len(rows))
	existingPairs := make(map[Pair]int, len(rows))
	for _, row := range rows {
		existing[row.Id] = row.Values
		existingPairs[row.Values] = row.Id
	}

	fieldErrors := make([]FieldError, 0)
	changes := ChangeSet{}

	type pendingForm struct {
		index int
		id    *int
		pair  Pair
	}
	pending := make([]pendingForm, 0, len(submission.Forms))

	for i, form := range submission.Forms {
		var original *Pair
		if form.Id != nil {
			values, ok := existing[*form.Id]
			if !ok {
				fieldErrors = append(fieldErrors, FieldError{
					Form: i, Field: NonFieldErrors, Message: fmt.Sprintf(missingRowFormat, *form.Id),
				})
				continue
			}
			original = &values
		}
		// Without delete rights the flag is ignored and the form is treated
		// as a plain edit.
		if form.Delete && d.CanDelete {
			if form.Id != nil {
				changes.DeleteIds = append(changes.DeleteIds, *form.Id)
			}
			continue
		}

		pair := Pair{form.Values[d.FieldNames[0]], form.Values[d.FieldNames[1]]}
		if form.Id == nil && pair[0] == 0 && pair[1] == 0 {
			// Untouched extra form.
			continue
		}
		valid := true
		for f := 0; f < 2; f++ {
			if pair[f] == 0 {
				fieldErrors = append(fieldErrors, FieldError{Form: i, Field: d.FieldNames[f], Message: RequiredMessage})
				valid = false
				continue
			}
			if err := d.Fields[f].Validate(pair[f]); err != nil {
				fieldErrors = append(fieldErrors, FieldError{Form: i, Field: d.FieldNames[f], Message: err.Error()})
				valid = false
			}
		}
		if !valid {
			continue
		}
		if original != nil && *original == pair {
			// Unchanged, not re-saved.
			continue
		}
		if ownerId, taken := existingPairs[pair]; taken && (form.Id == nil || ownerId != *form.Id) {
			fieldErrors = append(fieldErrors, FieldError{
				Form: i, Field: NonFieldErrors, Message: d.existsMessage(),
			})
			continue
		}
		pending = append(pending, pendingForm{index: i, id: form.Id, pair: pair})
	}

	seen := make(map[Pair]bool, len(pending))
	for _, form := range pending {
		if seen[form.pair] {
			fieldErrors = append(fieldErrors, FieldError{
				Form: form.index, Field: NonFieldErrors, Message: d.duplicateMessage(),
			})
			continue
		}
		seen[form.pair] = true
		if form.id == nil {
			changes.Creates = append(changes.Creates, form.pair)
		} else {
			changes.Updates = append(changes.Updates, Row{Id: *form.id, Values: form.pair})
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	nsaved, ndeleted, err := d.Persist(changes)
	if err != nil {
		return nil, nil, err
	}

	redirect := d.SuccessURL
	if submission.AddMore {
		redirect = d.SameViewURL
	}
	return &Result{
		Nsaved:   nsaved,
		Ndeleted: ndeleted,
		Messages: d.messages(nsaved, ndeleted),
		Redirect: redirect,
	}, nil, nil
}

func (d *Descriptor) duplicateMessage() string {
	return fmt.Sprintf("Please correct the duplicate data for %s and %s, which must be unique.",
		d.FieldNames[0], d.FieldNames[1])
}

func (d *Descriptor) existsMessage() string {
	return fmt.Sprintf("%s with this %s and %s already exists.",
		capitalize(d.RelationNoun), capitalize(d.FieldNames[0]), capitalize(d.FieldNames[1]))
}

func (d *Descriptor) messages(nsaved int, ndeleted int) []string {
	messages := make([]string, 0, 2)
	if nsaved > 0 {
		messages = append(messages, fmt.Sprintf("Saved %d %s.", nsaved, pluralize(d.RelationNoun, nsaved)))
	}
	if ndeleted > 0 {
		messages = append(messages, fmt.Sprintf("Deleted %d %s.", ndeleted, pluralize(d.RelationNoun, ndeleted)))
	}
	if nsaved == 0 && ndeleted == 0 {
		messages = append(messages, fmt.Sprintf("No changes were made to %s.", pluralize(d.RelationNoun, 2)))
	}
	return messages
}

func pluralize(noun string, count int) string {
	if count == 1 {
		return noun
	}
	return noun + "s"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
