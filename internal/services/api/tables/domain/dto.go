// Package domain holds DTOs for the reference table surface
package domain

// ExpandInput names one chart column to expand. Column 0 is the CP
// sentinel column
type ExpandInput struct {
	Table  string `json:"table"  validate:"required,min=2,max=2" example:"SP"`
	Column int    `json:"column" validate:"min=0,max=99" example:"7"`
}

// Expansion is the ordered member list of one chart column
type Expansion struct {
	Table   string `json:"table"   example:"SP"`
	Column  int    `json:"column"  example:"7"`
	Numbers []int  `json:"numbers"`
}

// Chart summarizes one reference chart
type Chart struct {
	Table   string `json:"table" example:"SP"`
	Columns []int  `json:"columns"`
}

// Overview is the whole reference dataset at a glance
type Overview struct {
	DatasetVersion int     `json:"dataset_version" example:"1"`
	Panas          int     `json:"panas"           example:"220"`
	Charts         []Chart `json:"charts"`
}
