package models

type JobSource string

const (
	SourceLinkedIn JobSource = "linkedin"
	SourceIndeed   JobSource = "indeed"
	SourceReed     JobSource = "reed"
	SourceHH       JobSource = "hh"
)

type JobPosting struct {
	URL         string    `json:"url" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description"`
	Source      JobSource `json:"source,omitempty"`
}
