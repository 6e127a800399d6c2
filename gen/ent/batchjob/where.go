// Code generated by ent, DO NOT EDIT.

package batchjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pvillanueva/fup-consult/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLTE(FieldID, id))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldFilename, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldStatus, v))
}

// TotalItems applies equality check predicate on the "total_items" field. It's identical to TotalItemsEQ.
func TotalItems(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldTotalItems, v))
}

// CompletedItems applies equality check predicate on the "completed_items" field. It's identical to CompletedItemsEQ.
func CompletedItems(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldCompletedItems, v))
}

// FailedItems applies equality check predicate on the "failed_items" field. It's identical to FailedItemsEQ.
func FailedItems(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldFailedItems, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldCompletedAt, v))
}

// ResultFile applies equality check predicate on the "result_file" field. It's identical to ResultFileEQ.
func ResultFile(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldResultFile, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldErrorMessage, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldContainsFold(FieldFilename, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldContainsFold(FieldStatus, v))
}

// TotalItemsEQ applies the EQ predicate on the "total_items" field.
func TotalItemsEQ(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldTotalItems, v))
}

// TotalItemsNEQ applies the NEQ predicate on the "total_items" field.
func TotalItemsNEQ(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNEQ(FieldTotalItems, v))
}

// TotalItemsIn applies the In predicate on the "total_items" field.
func TotalItemsIn(vs ...int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIn(FieldTotalItems, vs...))
}

// TotalItemsNotIn applies the NotIn predicate on the "total_items" field.
func TotalItemsNotIn(vs ...int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotIn(FieldTotalItems, vs...))
}

// TotalItemsGT applies the GT predicate on the "total_items" field.
func TotalItemsGT(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGT(FieldTotalItems, v))
}

// TotalItemsGTE applies the GTE predicate on the "total_items" field.
func TotalItemsGTE(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGTE(FieldTotalItems, v))
}

// TotalItemsLT applies the LT predicate on the "total_items" field.
func TotalItemsLT(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLT(FieldTotalItems, v))
}

// TotalItemsLTE applies the LTE predicate on the "total_items" field.
func TotalItemsLTE(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLTE(FieldTotalItems, v))
}

// CompletedItemsEQ applies the EQ predicate on the "completed_items" field.
func CompletedItemsEQ(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldCompletedItems, v))
}

// CompletedItemsNEQ applies the NEQ predicate on the "completed_items" field.
func CompletedItemsNEQ(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNEQ(FieldCompletedItems, v))
}

// CompletedItemsIn applies the In predicate on the "completed_items" field.
func CompletedItemsIn(vs ...int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIn(FieldCompletedItems, vs...))
}

// CompletedItemsNotIn applies the NotIn predicate on the "completed_items" field.
func CompletedItemsNotIn(vs ...int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotIn(FieldCompletedItems, vs...))
}

// CompletedItemsGT applies the GT predicate on the "completed_items" field.
func CompletedItemsGT(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGT(FieldCompletedItems, v))
}

// CompletedItemsGTE applies the GTE predicate on the "completed_items" field.
func CompletedItemsGTE(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGTE(FieldCompletedItems, v))
}

// CompletedItemsLT applies the LT predicate on the "completed_items" field.
func CompletedItemsLT(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLT(FieldCompletedItems, v))
}

// CompletedItemsLTE applies the LTE predicate on the "completed_items" field.
func CompletedItemsLTE(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLTE(FieldCompletedItems, v))
}

// FailedItemsEQ applies the EQ predicate on the "failed_items" field.
func FailedItemsEQ(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldFailedItems, v))
}

// FailedItemsNEQ applies the NEQ predicate on the "failed_items" field.
func FailedItemsNEQ(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNEQ(FieldFailedItems, v))
}

// FailedItemsIn applies the In predicate on the "failed_items" field.
func FailedItemsIn(vs ...int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIn(FieldFailedItems, vs...))
}

// FailedItemsNotIn applies the NotIn predicate on the "failed_items" field.
func FailedItemsNotIn(vs ...int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotIn(FieldFailedItems, vs...))
}

// FailedItemsGT applies the GT predicate on the "failed_items" field.
func FailedItemsGT(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGT(FieldFailedItems, v))
}

// FailedItemsGTE applies the GTE predicate on the "failed_items" field.
func FailedItemsGTE(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGTE(FieldFailedItems, v))
}

// FailedItemsLT applies the LT predicate on the "failed_items" field.
func FailedItemsLT(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLT(FieldFailedItems, v))
}

// FailedItemsLTE applies the LTE predicate on the "failed_items" field.
func FailedItemsLTE(v int) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLTE(FieldFailedItems, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotNull(FieldCompletedAt))
}

// ResultFileEQ applies the EQ predicate on the "result_file" field.
func ResultFileEQ(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldResultFile, v))
}

// ResultFileNEQ applies the NEQ predicate on the "result_file" field.
func ResultFileNEQ(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNEQ(FieldResultFile, v))
}

// ResultFileIn applies the In predicate on the "result_file" field.
func ResultFileIn(vs ...string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIn(FieldResultFile, vs...))
}

// ResultFileNotIn applies the NotIn predicate on the "result_file" field.
func ResultFileNotIn(vs ...string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotIn(FieldResultFile, vs...))
}

// ResultFileGT applies the GT predicate on the "result_file" field.
func ResultFileGT(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGT(FieldResultFile, v))
}

// ResultFileGTE applies the GTE predicate on the "result_file" field.
func ResultFileGTE(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGTE(FieldResultFile, v))
}

// ResultFileLT applies the LT predicate on the "result_file" field.
func ResultFileLT(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLT(FieldResultFile, v))
}

// ResultFileLTE applies the LTE predicate on the "result_file" field.
func ResultFileLTE(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLTE(FieldResultFile, v))
}

// ResultFileContains applies the Contains predicate on the "result_file" field.
func ResultFileContains(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldContains(FieldResultFile, v))
}

// ResultFileHasPrefix applies the HasPrefix predicate on the "result_file" field.
func ResultFileHasPrefix(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldHasPrefix(FieldResultFile, v))
}

// ResultFileHasSuffix applies the HasSuffix predicate on the "result_file" field.
func ResultFileHasSuffix(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldHasSuffix(FieldResultFile, v))
}

// ResultFileIsNil applies the IsNil predicate on the "result_file" field.
func ResultFileIsNil() predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIsNull(FieldResultFile))
}

// ResultFileNotNil applies the NotNil predicate on the "result_file" field.
func ResultFileNotNil() predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotNull(FieldResultFile))
}

// ResultFileEqualFold applies the EqualFold predicate on the "result_file" field.
func ResultFileEqualFold(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEqualFold(FieldResultFile, v))
}

// ResultFileContainsFold applies the ContainsFold predicate on the "result_file" field.
func ResultFileContainsFold(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldContainsFold(FieldResultFile, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.BatchJob {
	return predicate.BatchJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.BatchJob {
	return predicate.BatchJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.BatchJob {
	return predicate.BatchJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.BatchJob {
	return predicate.BatchJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.BatchItem) predicate.BatchJob {
	return predicate.BatchJob(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BatchJob) predicate.BatchJob {
	return predicate.BatchJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BatchJob) predicate.BatchJob {
	return predicate.BatchJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BatchJob) predicate.BatchJob {
	return predicate.BatchJob(sql.NotPredicates(p))
}
