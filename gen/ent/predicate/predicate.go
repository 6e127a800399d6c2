// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BatchItem is the predicate function for batchitem builders.
type BatchItem func(*sql.Selector)

// BatchJob is the predicate function for batchjob builders.
type BatchJob func(*sql.Selector)
