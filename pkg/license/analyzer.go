package license

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensetracker/pkg/errors"
	"github.com/matzehuels/licensetracker/pkg/integrations/pypi"
	"github.com/matzehuels/licensetracker/pkg/observability"
)

// MetadataProvider fetches release metadata from a package index.
// [pypi.Client] implements it.
type MetadataProvider interface {
	FetchPackage(ctx context.Context, name, version string) (*pypi.PackageInfo, error)
}

// Analyzer turns a package reference into a resolved [Dependency].
//
// An Analyzer holds no per-package state and is safe for concurrent use when
// its collaborators are.
type Analyzer struct {
	provider MetadataProvider
	urls     *RepoURLResolver
	resolver *Resolver
	logger   *log.Logger
}

// NewAnalyzer wires a metadata provider, repository URL resolver and license
// resolver together. A nil urls resolver recognizes GitHub only; a nil logger
// uses log.Default().
func NewAnalyzer(provider MetadataProvider, urls *RepoURLResolver, resolver *Resolver, logger *log.Logger) *Analyzer {
	if urls == nil {
		urls = NewRepoURLResolver()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Analyzer{
		provider: provider,
		urls:     urls,
		resolver: resolver,
		logger:   logger,
	}
}

// Analyze resolves the license files of ref.
//
// A package without any findable license file is not an error: the returned
// Outcome is marked skipped and err is nil. Every other failure (index
// lookup, missing repository URL, transport errors) is returned as err and
// should abort the run.
func (a *Analyzer) Analyze(ctx context.Context, ref PackageRef) (Outcome, error) {
	hooks := observability.Analysis()
	hooks.OnAnalyzeStart(ctx, ref.Name, ref.Version)
	start := time.Now()

	dep, err := a.analyze(ctx, ref)
	if err != nil {
		if nl, ok := errors.AsNoLicenseFound(err); ok {
			skipped := *nl
			skipped.Name = ref.Name
			if skipped.Version == "" {
				skipped.Version = ref.Version
			}
			a.logger.Debug("no license found", "package", ref.Name, "version", skipped.Version, "reason", skipped.Reason)
			hooks.OnSkipped(ctx, ref.Name, skipped.Version, skipped.Reason)
			hooks.OnAnalyzeComplete(ctx, ref.Name, skipped.Version, 0, time.Since(start), nil)
			return Outcome{Ref: ref, Skipped: &skipped}, nil
		}
		hooks.OnAnalyzeComplete(ctx, ref.Name, ref.Version, 0, time.Since(start), err)
		return Outcome{Ref: ref}, err
	}

	a.logger.Debug("resolved licenses", "package", dep.Name, "version", dep.Version, "files", len(dep.Licenses))
	hooks.OnAnalyzeComplete(ctx, dep.Name, dep.Version, len(dep.Licenses), time.Since(start), nil)
	return Outcome{Ref: ref, Dependency: dep}, nil
}

func (a *Analyzer) analyze(ctx context.Context, ref PackageRef) (*Dependency, error) {
	info, err := a.provider.FetchPackage(ctx, ref.Name, ref.Version)
	if err != nil {
		return nil, err
	}

	repoURL, err := a.urls.Extract(info.ProjectURLs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref.Name, err)
	}
	a.logger.Debug("found repository", "package", ref.Name, "repo", repoURL)

	files, err := a.resolver.Resolve(ctx, repoURL, info.Version)
	if err != nil {
		return nil, err
	}

	return &Dependency{
		Name:        ref.Name,
		Version:     info.Version,
		LicenseName: info.License,
		Summary:     info.Summary,
		RepoURL:     VersionedURL(repoURL, info.Version),
		Licenses:    files,
	}, nil
}
