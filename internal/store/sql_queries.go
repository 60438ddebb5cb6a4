// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GreenTech Painting

package store

const (
	insertRun = `
		INSERT INTO sync_history (
			ts,
			reference,
			customer_name,
			items_count,
			subtotal,
			currency,
			status,
			pdf_path,
			estimate_id,
			error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
)

// historyColumns is the column set returned by every history listing query,
// in scan order.
var historyColumns = []string{
	"id",
	"ts",
	"reference",
	"customer_name",
	"items_count",
	"subtotal",
	"currency",
	"status",
	"pdf_path",
	"estimate_id",
	"error",
}
