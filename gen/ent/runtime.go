// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/pvillanueva/fup-consult/db/ent/schema"
	"github.com/pvillanueva/fup-consult/gen/ent/batchitem"
	"github.com/pvillanueva/fup-consult/gen/ent/batchjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	batchitemFields := schema.BatchItem{}.Fields()
	_ = batchitemFields
	// batchitemDescRuc is the schema descriptor for ruc field.
	batchitemDescRuc := batchitemFields[2].Descriptor()
	// batchitem.RucValidator is a validator for the "ruc" field. It is called by the builders before save.
	batchitem.RucValidator = func() func(string) error {
		validators := batchitemDescRuc.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(ruc string) error {
			for _, fn := range fns {
				if err := fn(ruc); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// batchitemDescStatus is the schema descriptor for status field.
	batchitemDescStatus := batchitemFields[3].Descriptor()
	// batchitem.DefaultStatus holds the default value on creation for the status field.
	batchitem.DefaultStatus = batchitemDescStatus.Default.(string)
	// batchitem.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batchitem.StatusValidator = batchitemDescStatus.Validators[0].(func(string) error)
	// batchitemDescRetryCount is the schema descriptor for retry_count field.
	batchitemDescRetryCount := batchitemFields[4].Descriptor()
	// batchitem.DefaultRetryCount holds the default value on creation for the retry_count field.
	batchitem.DefaultRetryCount = batchitemDescRetryCount.Default.(int)
	// batchitem.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	batchitem.RetryCountValidator = batchitemDescRetryCount.Validators[0].(func(int) error)
	// batchitemDescMaxRetries is the schema descriptor for max_retries field.
	batchitemDescMaxRetries := batchitemFields[5].Descriptor()
	// batchitem.DefaultMaxRetries holds the default value on creation for the max_retries field.
	batchitem.DefaultMaxRetries = batchitemDescMaxRetries.Default.(int)
	// batchitem.MaxRetriesValidator is a validator for the "max_retries" field. It is called by the builders before save.
	batchitem.MaxRetriesValidator = batchitemDescMaxRetries.Validators[0].(func(int) error)
	// batchitemDescCreatedAt is the schema descriptor for created_at field.
	batchitemDescCreatedAt := batchitemFields[8].Descriptor()
	// batchitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	batchitem.DefaultCreatedAt = batchitemDescCreatedAt.Default.(func() time.Time)
	// batchitemDescID is the schema descriptor for id field.
	batchitemDescID := batchitemFields[0].Descriptor()
	// batchitem.DefaultID holds the default value on creation for the id field.
	batchitem.DefaultID = batchitemDescID.Default.(func() uuid.UUID)
	batchjobFields := schema.BatchJob{}.Fields()
	_ = batchjobFields
	// batchjobDescFilename is the schema descriptor for filename field.
	batchjobDescFilename := batchjobFields[1].Descriptor()
	// batchjob.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	batchjob.FilenameValidator = batchjobDescFilename.Validators[0].(func(string) error)
	// batchjobDescStatus is the schema descriptor for status field.
	batchjobDescStatus := batchjobFields[2].Descriptor()
	// batchjob.DefaultStatus holds the default value on creation for the status field.
	batchjob.DefaultStatus = batchjobDescStatus.Default.(string)
	// batchjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batchjob.StatusValidator = batchjobDescStatus.Validators[0].(func(string) error)
	// batchjobDescTotalItems is the schema descriptor for total_items field.
	batchjobDescTotalItems := batchjobFields[3].Descriptor()
	// batchjob.TotalItemsValidator is a validator for the "total_items" field. It is called by the builders before save.
	batchjob.TotalItemsValidator = batchjobDescTotalItems.Validators[0].(func(int) error)
	// batchjobDescCompletedItems is the schema descriptor for completed_items field.
	batchjobDescCompletedItems := batchjobFields[4].Descriptor()
	// batchjob.DefaultCompletedItems holds the default value on creation for the completed_items field.
	batchjob.DefaultCompletedItems = batchjobDescCompletedItems.Default.(int)
	// batchjob.CompletedItemsValidator is a validator for the "completed_items" field. It is called by the builders before save.
	batchjob.CompletedItemsValidator = batchjobDescCompletedItems.Validators[0].(func(int) error)
	// batchjobDescFailedItems is the schema descriptor for failed_items field.
	batchjobDescFailedItems := batchjobFields[5].Descriptor()
	// batchjob.DefaultFailedItems holds the default value on creation for the failed_items field.
	batchjob.DefaultFailedItems = batchjobDescFailedItems.Default.(int)
	// batchjob.FailedItemsValidator is a validator for the "failed_items" field. It is called by the builders before save.
	batchjob.FailedItemsValidator = batchjobDescFailedItems.Validators[0].(func(int) error)
	// batchjobDescCreatedAt is the schema descriptor for created_at field.
	batchjobDescCreatedAt := batchjobFields[6].Descriptor()
	// batchjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	batchjob.DefaultCreatedAt = batchjobDescCreatedAt.Default.(func() time.Time)
	// batchjobDescID is the schema descriptor for id field.
	batchjobDescID := batchjobFields[0].Descriptor()
	// batchjob.DefaultID holds the default value on creation for the id field.
	batchjob.DefaultID = batchjobDescID.Default.(func() uuid.UUID)
}
