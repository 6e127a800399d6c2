// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BatchItemsColumns holds the columns for the "batch_items" table.
	BatchItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "ruc", Type: field.TypeString, Size: 11},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "max_retries", Type: field.TypeInt, Default: 3},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "result_data", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// BatchItemsTable holds the schema information for the "batch_items" table.
	BatchItemsTable = &schema.Table{
		Name:       "batch_items",
		Columns:    BatchItemsColumns,
		PrimaryKey: []*schema.Column{BatchItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "batch_items_batch_jobs_items",
				Columns:    []*schema.Column{BatchItemsColumns[9]},
				RefColumns: []*schema.Column{BatchJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "batchitem_job_id_ruc",
				Unique:  true,
				Columns: []*schema.Column{BatchItemsColumns[9], BatchItemsColumns[1]},
			},
			{
				Name:    "batchitem_job_id_status",
				Unique:  false,
				Columns: []*schema.Column{BatchItemsColumns[9], BatchItemsColumns[2]},
			},
			{
				Name:    "batchitem_ruc",
				Unique:  false,
				Columns: []*schema.Column{BatchItemsColumns[1]},
			},
		},
	}
	// BatchJobsColumns holds the columns for the "batch_jobs" table.
	BatchJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "total_items", Type: field.TypeInt},
		{Name: "completed_items", Type: field.TypeInt, Default: 0},
		{Name: "failed_items", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "result_file", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// BatchJobsTable holds the schema information for the "batch_jobs" table.
	BatchJobsTable = &schema.Table{
		Name:       "batch_jobs",
		Columns:    BatchJobsColumns,
		PrimaryKey: []*schema.Column{BatchJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batchjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{BatchJobsColumns[2], BatchJobsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BatchItemsTable,
		BatchJobsTable,
	}
)

func init() {
	BatchItemsTable.ForeignKeys[0].RefTable = BatchJobsTable
	BatchItemsTable.Annotation = &entsql.Annotation{
		Table: "batch_items",
	}
	BatchJobsTable.Annotation = &entsql.Annotation{
		Table: "batch_jobs",
	}
}
