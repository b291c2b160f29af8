// Package errors provides coded errors for questseed and classifies
// document-database failures for logs and the upload ledger.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unclassified error.
	CodeUnknown Code = "UNKNOWN"

	// Fixture errors
	CodeFixtureInvalid         Code = "FIXTURE_INVALID"
	CodeFixtureDuplicateID     Code = "FIXTURE_DUPLICATE_ID"
	CodeFixtureUnknownCategory Code = "FIXTURE_UNKNOWN_CATEGORY"

	// Write errors, mirroring the transport status of the failed call
	CodeWriteCanceled          Code = "WRITE_CANCELED"
	CodeWriteDeadlineExceeded  Code = "WRITE_DEADLINE_EXCEEDED"
	CodeWritePermissionDenied  Code = "WRITE_PERMISSION_DENIED"
	CodeWriteUnauthenticated   Code = "WRITE_UNAUTHENTICATED"
	CodeWriteNotFound          Code = "WRITE_NOT_FOUND"
	CodeWriteInvalidArgument   Code = "WRITE_INVALID_ARGUMENT"
	CodeWriteResourceExhausted Code = "WRITE_RESOURCE_EXHAUSTED"
	CodeWriteUnavailable       Code = "WRITE_UNAVAILABLE"
	CodeWriteInternal          Code = "WRITE_INTERNAL"
)

// FromGRPC maps a transport status code to a write error code.
func FromGRPC(code codes.Code) Code {
	switch code {
	case codes.Canceled:
		return CodeWriteCanceled
	case codes.DeadlineExceeded:
		return CodeWriteDeadlineExceeded
	case codes.PermissionDenied:
		return CodeWritePermissionDenied
	case codes.Unauthenticated:
		return CodeWriteUnauthenticated
	case codes.NotFound:
		return CodeWriteNotFound
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return CodeWriteInvalidArgument
	case codes.ResourceExhausted:
		return CodeWriteResourceExhausted
	case codes.Unavailable, codes.Aborted:
		return CodeWriteUnavailable
	case codes.Internal, codes.DataLoss, codes.Unimplemented:
		return CodeWriteInternal
	default:
		return CodeUnknown
	}
}
