// Package pypi provides an HTTP client for the Python Package Index JSON API.
//
// # Overview
//
// This package fetches release metadata from PyPI (https://pypi.org): the
// resolved version, summary, declared license name, and declared project URLs.
//
// # Usage
//
//	client := pypi.NewClient("", 10*time.Second)
//
//	pkg, err := client.FetchPackage(ctx, "django", "4.2.7")  // "" = latest
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(pkg.Name, pkg.Version, pkg.License)
//	for _, u := range pkg.ProjectURLs {
//	    fmt.Println(u.Label, u.URL)
//	}
//
// # Version pinning
//
// A pinned request targets /{name}/{version}/json. PyPI answering with a
// different version is treated as a hard failure coded
// errors.ErrCodeVersionMismatch.
//
// # Project URL order
//
// [ProjectURLs] keeps the order in which PyPI serialized the project_urls
// object, because repository detection picks the first matching entry.
package pypi
