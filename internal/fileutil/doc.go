// Package fileutil resolves fortune source paths into the files to read.
//
// # Resolution Rules
//
//   - Every source path must exist; the first missing one aborts with a
//     models.SourceError of kind PathNotFound and no files are returned.
//   - A file named directly is always included, whatever its extension.
//   - A directory is walked recursively. Regular files are included unless
//     their extension is in ResolveOptions.ExcludeExtensions (matched
//     case-insensitively, with or without a leading dot). Hidden
//     directories are walked too. Symlinks inside a walk are not followed.
//   - Entries the walker cannot read are skipped and reported in
//     ResolveResult.Skipped rather than failing the whole resolution.
//   - The result is deduplicated and sorted lexicographically, so
//     overlapping or repeated sources resolve to the same list.
//
// # Usage
//
//	result, err := fileutil.Resolve([]string{"fortunes", "extra/zen"}, fileutil.ResolveOptions{
//	    ExcludeExtensions: fileutil.DefaultExcludeExtensions,
//	})
//	if err != nil {
//	    return err
//	}
//	for _, f := range result.Files {
//	    fmt.Println(f)
//	}
//
// With AllowStdin set, the source "-" is passed through untouched so the
// parser can read standard input in its place.
package fileutil
