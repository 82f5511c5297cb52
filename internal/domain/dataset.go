package domain

import (
	"regexp"
)

var datasetIDPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Dataset is a catalog entry shown to users as a dataset card.
type Dataset struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	IconURL     string `json:"icon_url" yaml:"icon_url"`
	Featured    bool   `json:"featured" yaml:"featured"`
}

// Validate checks that the dataset can be addressed by ID exactly as stored.
// Display fields are free text and may be empty.
func (d *Dataset) Validate() error {
	if d.ID == "" {
		return New(CodeDatasetIDRequired, "Dataset ID is required").WithField("id")
	}
	if !datasetIDPattern.MatchString(d.ID) {
		return New(CodeDatasetIDInvalid, "Dataset ID must be a lowercase slug").
			WithField("id").
			WithDetail("value", d.ID)
	}
	return nil
}
