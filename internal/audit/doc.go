// Package audit records registry operations in the audit_logs table.
//
// Every controller operation, successful or not, produces one Entry. The
// journal is diagnostic only: nothing reads it back to rebuild the home.
package audit
