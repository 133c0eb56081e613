package bucketcache

import (
	"fmt"
)

// BucketInitError reports a failed bucket guard during New. At most one of
// CheckErr/MakeErr is set: the existence probe failed, or the probe reported
// the bucket missing and creating it failed. This is the only error surface
// of the backend; steady-state operations are fail-soft.
type BucketInitError struct {
	Bucket   string
	CheckErr error
	MakeErr  error
}

func (e *BucketInitError) Error() string {
	switch {
	case e.CheckErr != nil:
		return fmt.Sprintf("bucket %q init: existence check failed: %v", e.Bucket, e.CheckErr)
	case e.MakeErr != nil:
		return fmt.Sprintf("bucket %q init: create failed: %v", e.Bucket, e.MakeErr)
	default:
		return fmt.Sprintf("bucket %q init: unknown error", e.Bucket)
	}
}

func (e *BucketInitError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.CheckErr != nil {
		errs = append(errs, e.CheckErr)
	}
	if e.MakeErr != nil {
		errs = append(errs, e.MakeErr)
	}
	return errs
}
