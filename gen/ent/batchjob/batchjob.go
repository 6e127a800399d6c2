// Code generated by ent, DO NOT EDIT.

package batchjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the batchjob type in the database.
	Label = "batch_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTotalItems holds the string denoting the total_items field in the database.
	FieldTotalItems = "total_items"
	// FieldCompletedItems holds the string denoting the completed_items field in the database.
	FieldCompletedItems = "completed_items"
	// FieldFailedItems holds the string denoting the failed_items field in the database.
	FieldFailedItems = "failed_items"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldResultFile holds the string denoting the result_file field in the database.
	FieldResultFile = "result_file"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// Table holds the table name of the batchjob in the database.
	Table = "batch_jobs"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "batch_items"
	// ItemsInverseTable is the table name for the BatchItem entity.
	// It exists in this package in order to avoid circular dependency with the "batchitem" package.
	ItemsInverseTable = "batch_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "job_id"
)

// Columns holds all SQL columns for batchjob fields.
var Columns = []string{
	FieldID,
	FieldFilename,
	FieldStatus,
	FieldTotalItems,
	FieldCompletedItems,
	FieldFailedItems,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldResultFile,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// TotalItemsValidator is a validator for the "total_items" field. It is called by the builders before save.
	TotalItemsValidator func(int) error
	// DefaultCompletedItems holds the default value on creation for the "completed_items" field.
	DefaultCompletedItems int
	// CompletedItemsValidator is a validator for the "completed_items" field. It is called by the builders before save.
	CompletedItemsValidator func(int) error
	// DefaultFailedItems holds the default value on creation for the "failed_items" field.
	DefaultFailedItems int
	// FailedItemsValidator is a validator for the "failed_items" field. It is called by the builders before save.
	FailedItemsValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BatchJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalItems orders the results by the total_items field.
func ByTotalItems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalItems, opts...).ToFunc()
}

// ByCompletedItems orders the results by the completed_items field.
func ByCompletedItems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedItems, opts...).ToFunc()
}

// ByFailedItems orders the results by the failed_items field.
func ByFailedItems(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedItems, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByResultFile orders the results by the result_file field.
func ByResultFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultFile, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
