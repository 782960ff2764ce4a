// Package integrations provides the shared HTTP plumbing of the package index
// and source host clients.
//
// # Overview
//
// Each remote service has its own subpackage:
//
//   - [pypi]: Python Package Index JSON API (release metadata)
//   - [github]: GitHub REST API (repository contents, tags, raw files)
//
// # Client Pattern
//
// Service clients embed [Client] and add typed methods:
//
//	client := pypi.NewClient("", 10*time.Second)
//	pkg, err := client.FetchPackage(ctx, "fastapi", "")  // "" = latest
//
// [Client] handles:
//   - Default headers and a User-Agent on every request
//   - An explicit per-request timeout ([DefaultTimeout] when unset)
//   - Status classification into [StatusError]
//   - HTTP hooks from the observability package
//
// It never retries and never caches: a call is exactly one round trip.
//
// # Errors
//
// Any non-200 answer is a [*StatusError] carrying the status code and URL.
// Under errors.Is a 404 matches [ErrNotFound] and every other status matches
// [ErrNetwork]. Transport failures (DNS, connection, timeout) wrap [ErrNetwork].
//
//	if integrations.IsNotFound(err) {
//	    // the revision or package doesn't exist
//	}
//
// [pypi]: github.com/matzehuels/licensetracker/pkg/integrations/pypi
// [github]: github.com/matzehuels/licensetracker/pkg/integrations/github
package integrations
