// Package types provides shared types used across multiple packages.
// This package has no dependencies on other answers packages to avoid import cycles.
package types

// Section codes with special meaning in the table of contents.
const (
	// SectionReview marks a chapter's review exercises.
	SectionReview = "R"
	// SectionProblemSet marks a chapter's problem set ("P.S.") pages.
	SectionProblemSet = "PS"
)

// RawProblem is a single problem reference as typed by the user.
// Both fields are kept verbatim.
type RawProblem struct {
	Page  string `json:"page" yaml:"page"`
	Label string `json:"label" yaml:"label"`
}

// ResolvedProblem is a RawProblem located in the table of contents.
type ResolvedProblem struct {
	RawProblem `yaml:",inline"`
	PageNum    int    `json:"page_num" yaml:"page_num"`
	Chapter    string `json:"chapter" yaml:"chapter"`
	Section    string `json:"section" yaml:"section"`
}

// IsReview reports whether the problem belongs to a review exercise section.
func (p ResolvedProblem) IsReview() bool {
	return p.Section == SectionReview
}

// Title returns the human readable name of the problem.
func (p ResolvedProblem) Title() string {
	if p.IsReview() {
		return "Review Exercise " + p.Label
	}
	return "Problem " + p.Label
}
