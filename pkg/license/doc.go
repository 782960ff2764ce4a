// Package license resolves the license files of Python packages.
//
// # Pipeline
//
// Analyzing one package runs three steps:
//
//  1. Fetch release metadata from the index ([MetadataProvider]).
//  2. Pick the first project URL that points at a known source host
//     ([RepoURLResolver]). Only GitHub is recognized by default.
//  3. List the repository root at the release version and download every
//     entry whose name contains "license" ([Resolver]).
//
// If the version is not a valid ref in the repository, the tag list is
// searched for the first tag naming the version and the listing is retried
// exactly once against that tag.
//
// # Outcomes
//
// A package without a findable license file is skipped, not failed:
// [Analyzer.Analyze] returns an [Outcome] whose Skipped field is set and a nil
// error. Every other error is fatal and stops a [Batch].
//
// # Usage
//
//	analyzer := license.NewAnalyzer(
//	    pypi.NewClient("", 10*time.Second),
//	    nil,
//	    license.NewResolver(github.NewClient("", 10*time.Second), logger),
//	    logger,
//	)
//
//	refs, err := license.ParsePackageRefs([]string{"packaging==21.3", "requests"})
//	if err != nil {
//	    return err
//	}
//	outcomes, err := license.NewBatch(analyzer, 4).Run(ctx, refs, nil)
package license
