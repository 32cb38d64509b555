// Package novelfull implements a providers.Provider for NovelFull-style web
// novel sites. Every operation is one page fetch followed by one selector
// pass over the returned HTML.
package novelfull
