// Package normalize turns extracted stat tables into canonical
// row-per-player-season records: it flattens two-level headers, canonicalizes
// column names, aligns rows to player identifiers, consolidates traded
// players' team rows, decomposes award strings, and applies per-category
// schema rules. Every stage is a pure transformation; persistence lives in
// the store package.
package normalize
