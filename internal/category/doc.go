// Package category defines the fixed set of Basketball-Reference stat
// categories and the per-category rules the pipeline consumes: URL slug,
// multi-level-header flag, header disambiguation rules, counting-stat suffix,
// and column retention policy.
package category
