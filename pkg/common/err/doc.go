// Package err provides the shared structured error type used across the
// project. Every failure kind the object store can raise has a code here;
// callers match with errors.Is against a code-only *Error or with IsCode.
package err
