// Code generated by ent, DO NOT EDIT.

package batchitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/pvillanueva/fup-consult/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldJobID, v))
}

// Ruc applies equality check predicate on the "ruc" field. It's identical to RucEQ.
func Ruc(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldRuc, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldStatus, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldRetryCount, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldMaxRetries, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldCreatedAt, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldProcessedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNotIn(FieldJobID, vs...))
}

// RucEQ applies the EQ predicate on the "ruc" field.
func RucEQ(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldRuc, v))
}

// RucNEQ applies the NEQ predicate on the "ruc" field.
func RucNEQ(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNEQ(FieldRuc, v))
}

// RucIn applies the In predicate on the "ruc" field.
func RucIn(vs ...string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldIn(FieldRuc, vs...))
}

// RucNotIn applies the NotIn predicate on the "ruc" field.
func RucNotIn(vs ...string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNotIn(FieldRuc, vs...))
}

// RucGT applies the GT predicate on the "ruc" field.
func RucGT(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGT(FieldRuc, v))
}

// RucGTE applies the GTE predicate on the "ruc" field.
func RucGTE(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGTE(FieldRuc, v))
}

// RucLT applies the LT predicate on the "ruc" field.
func RucLT(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLT(FieldRuc, v))
}

// RucLTE applies the LTE predicate on the "ruc" field.
func RucLTE(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLTE(FieldRuc, v))
}

// RucContains applies the Contains predicate on the "ruc" field.
func RucContains(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldContains(FieldRuc, v))
}

// RucHasPrefix applies the HasPrefix predicate on the "ruc" field.
func RucHasPrefix(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldHasPrefix(FieldRuc, v))
}

// RucHasSuffix applies the HasSuffix predicate on the "ruc" field.
func RucHasSuffix(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldHasSuffix(FieldRuc, v))
}

// RucEqualFold applies the EqualFold predicate on the "ruc" field.
func RucEqualFold(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEqualFold(FieldRuc, v))
}

// RucContainsFold applies the ContainsFold predicate on the "ruc" field.
func RucContainsFold(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldContainsFold(FieldRuc, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldContainsFold(FieldStatus, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLTE(FieldRetryCount, v))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLTE(FieldMaxRetries, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.BatchItem {
	return predicate.BatchItem(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ResultDataIsNil applies the IsNil predicate on the "result_data" field.
func ResultDataIsNil() predicate.BatchItem {
	return predicate.BatchItem(sql.FieldIsNull(FieldResultData))
}

// ResultDataNotNil applies the NotNil predicate on the "result_data" field.
func ResultDataNotNil() predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNotNull(FieldResultData))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLTE(FieldCreatedAt, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.BatchItem {
	return predicate.BatchItem(sql.FieldLTE(FieldProcessedAt, v))
}

// ProcessedAtIsNil applies the IsNil predicate on the "processed_at" field.
func ProcessedAtIsNil() predicate.BatchItem {
	return predicate.BatchItem(sql.FieldIsNull(FieldProcessedAt))
}

// ProcessedAtNotNil applies the NotNil predicate on the "processed_at" field.
func ProcessedAtNotNil() predicate.BatchItem {
	return predicate.BatchItem(sql.FieldNotNull(FieldProcessedAt))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.BatchItem {
	return predicate.BatchItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.BatchJob) predicate.BatchItem {
	return predicate.BatchItem(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BatchItem) predicate.BatchItem {
	return predicate.BatchItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BatchItem) predicate.BatchItem {
	return predicate.BatchItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BatchItem) predicate.BatchItem {
	return predicate.BatchItem(sql.NotPredicates(p))
}
